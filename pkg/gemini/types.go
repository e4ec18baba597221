package gemini

import (
	"errors"
	"net/http"
	"time"
)

var (
	ErrAPIKeyRequired = errors.New("gemini: API key is required")
	ErrEmptyResponse  = errors.New("gemini: response has no text")
)

// Config configures the client. Zero values take the package defaults.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate checks the required fields.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrAPIKeyRequired
	}
	return nil
}

// GenerateRequest is the body of models/{model}:generateContent.
type GenerateRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a text segment.
type Part struct {
	Text string `json:"text"`
}

// GenerationConfig holds optional generation settings.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// Usage is the token accounting reported by the API.
type Usage struct {
	PromptTokens     int
	CandidatesTokens int
	TotalTokens      int
}

// Completion is the text of the first candidate.
type Completion struct {
	Text  string
	Usage Usage
}
