package summarizer

import (
	"context"
)

// Generator is the text generation backend.
type Generator interface {
	Generate(ctx context.Context, prompt, model string) (string, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	// Summarize condenses a whole collection into one summary.
	Summarize(ctx context.Context, collectionKey string) (string, error)
}
