package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"rag-assistant/pkg/response"
)

type latestMail struct {
	Answer  string `json:"answer"`
	Sources []struct {
		Sender      string `json:"sender"`
		Subject     string `json:"subject"`
		Date        string `json:"date"`
		BodyPreview string `json:"body_preview"`
	} `json:"sources"`
}

type recentMail struct {
	Emails []struct {
		Sender  string `json:"sender"`
		Subject string `json:"subject"`
		Date    string `json:"date"`
	} `json:"emails"`
}

func newEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Read mail through a running API",
	}

	latest := &cobra.Command{
		Use:   "latest <sender>",
		Short: "Show the newest message from a sender",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out latestMail
			if err := getEnvelope(cmd, "/api/v1/email/latest", map[string]string{"sender": args[0]}, &out); err != nil {
				return err
			}
			printLatest(cmd.OutOrStdout(), out)
			return nil
		},
	}

	var limit int
	recent := &cobra.Command{
		Use:   "recent",
		Short: "List the newest inbox messages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var out recentMail
			if err := getEnvelope(cmd, "/api/v1/email/recent", map[string]string{"limit": strconv.Itoa(limit)}, &out); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, e := range out.Emails {
				fmt.Fprintf(w, "%s  %s  %s\n", labelStyle.Render(e.Date), e.Sender, e.Subject)
			}
			return nil
		},
	}
	recent.Flags().IntVar(&limit, "limit", 10, "Number of messages")

	cmd.AddCommand(latest, recent)
	return cmd
}

// getEnvelope GETs path and decodes the envelope's data into out.
func getEnvelope(cmd *cobra.Command, path string, query map[string]string, out any) error {
	client, err := newAPIClient(cmd)
	if err != nil {
		return err
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	res, err := client.R().
		SetContext(cmd.Context()).
		SetQueryParams(query).
		SetResult(&env).
		SetError(&response.Resp{}).
		Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if res.IsError() {
		return apiError(res)
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("get %s: empty response", path)
	}
	return json.Unmarshal(env.Data, out)
}

func printLatest(w io.Writer, m latestMail) {
	fmt.Fprintln(w, answerStyle.Render(m.Answer))
	for _, s := range m.Sources {
		fmt.Fprintln(w, rule())
		fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("From: %s  Date: %s", s.Sender, s.Date)))
		fmt.Fprintln(w, titleStyle.Render(s.Subject))
		fmt.Fprintln(w, s.BodyPreview)
	}
}
