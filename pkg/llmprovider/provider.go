package llmprovider

import "context"

// Provider defines the interface for a text completion backend.
type Provider interface {
	// GenerateContent sends a single prompt and returns the completion
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "groq", "ollama")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request is a normalized single-prompt completion request.
type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response is a normalized completion response.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption when the backend reports it.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Validator inspects a successful response. A non-nil error makes the
// manager treat the response as a failure and move to the next provider.
type Validator func(resp *Response) error
