package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rag-assistant/internal/model"
	"rag-assistant/internal/retrieval"
	retrievalUC "rag-assistant/internal/retrieval/usecase"
)

const queryPreviewChars = 1000

func newQueryCmd() *cobra.Command {
	var (
		source   string
		question string
		k        int
	)

	cmd := &cobra.Command{
		Use:     "query",
		Short:   "Search collections and print the closest chunks",
		Example: `  ragctl query --source all --question "What is Docker networking?"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys, err := targetKeys(source)
			if err != nil {
				return err
			}
			if k <= 0 {
				return fmt.Errorf("k must be positive")
			}

			cfg, logger, idx, err := loadDeps()
			if err != nil {
				return err
			}

			uc := retrievalUC.New(idx, logger, retrievalUC.Options{
				Timeout:  cfg.Retrieval.Timeout,
				Strategy: retrieval.MergeByScore,
			})
			hits := uc.SearchSources(cmd.Context(), keys, question, k, k)
			printHits(cmd.OutOrStdout(), question, hits)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "all", "Collection to search: cs, general or all")
	cmd.Flags().StringVar(&question, "question", "", "Question to search for")
	cmd.Flags().IntVarP(&k, "k", "k", 5, "Number of results")
	_ = cmd.MarkFlagRequired("question")
	return cmd
}

func printHits(w io.Writer, question string, hits []model.RetrievalHit) {
	if len(hits) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Top %d matches for: %q", len(hits), question)))
	fmt.Fprintln(w)
	for i, h := range hits {
		fmt.Fprintf(w, "=== Result %d (collection=%s, score=%.4f) ===\n", i+1, h.CollectionKey, h.Score)
		fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("File: %s  [chunk %s]", h.File(), h.ChunkIndex(i))))
		if p, ok := h.Metadata["filepath"].(string); ok {
			fmt.Fprintln(w, labelStyle.Render("Path: "+p))
		}
		fmt.Fprintln(w, rule())
		fmt.Fprintln(w, truncateRunes(h.Text, queryPreviewChars))
		fmt.Fprintln(w)
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
