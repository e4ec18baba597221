package ollama

import "context"

// IOllama generates text with a named local model.
// Implementations are safe for concurrent use.
type IOllama interface {
	Generate(ctx context.Context, prompt, model string) (string, error)
}
