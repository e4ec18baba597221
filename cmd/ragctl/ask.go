package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"rag-assistant/pkg/response"
)

func newAskCmd() *cobra.Command {
	var showSources bool

	cmd := &cobra.Command{
		Use:     "ask <message>",
		Short:   "Send a message to a running API",
		Example: `  ragctl ask "what did I write about goroutines?"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}

			var out promptResult
			res, err := client.R().
				SetContext(cmd.Context()).
				SetBody(map[string]string{"message": strings.Join(args, " ")}).
				SetResult(&out).
				SetError(&response.DetailResp{}).
				Post("/prompt")
			if err != nil {
				return fmt.Errorf("post /prompt: %w", err)
			}
			if res.IsError() {
				return apiError(res)
			}

			printAnswer(cmd.OutOrStdout(), out, showSources)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSources, "sources", true, "Print the snippets used for the answer")
	return cmd
}

func printAnswer(w io.Writer, res promptResult, showSources bool) {
	r := res.Routing
	fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("operation=%s primary=%s secondary=%v confidence=%.2f",
		r.Operation, r.PrimarySource, r.SecondarySources, r.Confidence)))
	fmt.Fprintln(w, rule())
	fmt.Fprintln(w, answerStyle.Render(res.Answer))

	if !showSources || len(res.Sources) == 0 {
		return
	}
	fmt.Fprintln(w, rule())
	for i, s := range res.Sources {
		file, _ := s.Metadata["file"].(string)
		fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("[%d] %s %s (score=%.4f)", i+1, s.Collection, file, s.Score)))
	}
}
