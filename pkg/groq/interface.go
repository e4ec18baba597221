package groq

import "context"

// IGroq defines the interface for the Groq chat completions client.
type IGroq interface {
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
