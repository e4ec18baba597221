package orchestrator

import (
	"context"

	"rag-assistant/internal/model"
)

// Generator is the text generation backend used for answers.
type Generator interface {
	Generate(ctx context.Context, prompt, model string) (string, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	// Handle routes one message and runs the matching operation. Only
	// generation failures and blank input are returned as errors.
	Handle(ctx context.Context, message string) (model.OperationResult, error)
}
