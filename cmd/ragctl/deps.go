package main

import (
	"fmt"

	"rag-assistant/config"
	"rag-assistant/internal/retrieval"
	"rag-assistant/pkg/log"
	pkgQdrant "rag-assistant/pkg/qdrant"
	"rag-assistant/pkg/voyage"

	qdrantRepo "rag-assistant/internal/retrieval/repository/qdrant"
)

// index is what the offline commands need from the vector store.
type index interface {
	retrieval.Index
	retrieval.Writer
}

func loadDeps() (*config.Config, log.Logger, index, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("voyage: %w", err)
	}
	embedder = embedder.WithModel(cfg.Voyage.Model).WithBaseURL(cfg.Voyage.BaseURL)

	client := pkgQdrant.NewClient(cfg.Qdrant.URL)
	if cfg.Qdrant.APIKey != "" {
		client = client.WithAPIKey(cfg.Qdrant.APIKey)
	}

	idx, err := qdrantRepo.New(client, embedder, logger, qdrantRepo.Options{
		Collections: cfg.Qdrant.Collections,
		VectorSize:  cfg.Qdrant.VectorSize,
		Distance:    cfg.Qdrant.Distance,
		CacheSize:   cfg.Voyage.CacheSize,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("qdrant repository: %w", err)
	}
	return cfg, logger, idx, nil
}

// targetKeys expands a --source value into collection keys.
func targetKeys(source string) ([]string, error) {
	switch source {
	case retrieval.KeyCS, retrieval.KeyGeneral:
		return []string{source}, nil
	case "all":
		return []string{retrieval.KeyCS, retrieval.KeyGeneral}, nil
	default:
		return nil, fmt.Errorf("source must be one of cs, general, all (got %q)", source)
	}
}
