package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"rag-assistant/pkg/gmail"
)

func newGmailAuthCmd() *cobra.Command {
	var credsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "gmail-auth",
		Short: "Authorize read-only Gmail access and save token.json",
		Long: `Run this once locally. It prints a Google consent URL; sign in, paste the
authorization code back, and the token is written for the API to use.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}

			config, err := gmail.OAuthConfig(data)
			if err != nil {
				return fmt.Errorf("%w (make sure %q is an OAuth Desktop App credentials file)", err, credsPath)
			}

			out := cmd.OutOrStdout()
			authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
			fmt.Fprintln(out, rule())
			fmt.Fprintln(out, titleStyle.Render("Step 1: open this URL and sign in with your Google account:"))
			fmt.Fprintln(out)
			fmt.Fprintln(out, authURL)
			fmt.Fprintln(out)
			fmt.Fprintln(out, rule())
			fmt.Fprint(out, titleStyle.Render("Step 2: paste the authorization code and press Enter: "))

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := config.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}
			if err := gmail.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintf(out, "%s token saved to %s, restart the API to enable mail\n", okStyle.Render("done"), tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "OAuth client credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", "token.json", "Where to write the token")
	return cmd
}
