package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rag-assistant/internal/retrieval/ingest"
)

func newIngestCmd() *cobra.Command {
	var (
		source string
		clear  bool
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load .txt, .md and .pdf files into a collection",
		Example: `  ragctl ingest --source cs --clear
  ragctl ingest --source all`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys, err := targetKeys(source)
			if err != nil {
				return err
			}

			cfg, logger, idx, err := loadDeps()
			if err != nil {
				return err
			}

			in, err := ingest.New(idx, logger, ingest.Options{
				ChunkSize:    cfg.Ingest.ChunkSize,
				ChunkOverlap: cfg.Ingest.ChunkOverlap,
				BatchSize:    cfg.Ingest.BatchSize,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, key := range keys {
				dir, ok := cfg.Ingest.Dirs[key]
				if !ok {
					return fmt.Errorf("no ingest directory configured for %q", key)
				}
				res, err := in.Ingest(cmd.Context(), ingest.Request{CollectionKey: key, Dir: dir, Clear: clear})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s ingested %d chunk(s) from %d file(s) into %s\n",
					okStyle.Render("done"), res.Chunks, res.Files, key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "all", "Collection to ingest: cs, general or all")
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the target collection before ingesting")
	return cmd
}
