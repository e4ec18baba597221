package groq

import "time"

const (
	// DefaultBaseURL is Groq's OpenAI-compatible endpoint root.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default routing model.
	DefaultModel = "llama3-70b-8192"

	DefaultTimeout     = 20 * time.Second
	DefaultTemperature = 0.1
	DefaultMaxTokens   = 256
)
