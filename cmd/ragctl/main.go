// Command ragctl ingests and queries collections without the server, and
// talks to a running API for prompts and mail.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ragctl",
		Short:         "Operate the RAG assistant from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("api-url", "http://localhost:8080", "Base URL of a running API (ask, email)")

	root.AddCommand(
		newIngestCmd(),
		newQueryCmd(),
		newAskCmd(),
		newEmailCmd(),
		newGmailAuthCmd(),
	)
	return root
}
