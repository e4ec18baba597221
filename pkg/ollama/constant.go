package ollama

import "time"

const (
	// DefaultBaseURL is the local Ollama daemon.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultTimeout bounds a single generate call.
	DefaultTimeout = 90 * time.Second

	generatePath = "/api/generate"
)
