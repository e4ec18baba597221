package ollama

import "time"

// Config configures the client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}
