package groq

import "errors"

var (
	ErrAPIKeyRequired = errors.New("groq: API key is required")
	ErrStatus         = errors.New("groq: unexpected status")
	ErrEmptyChoices   = errors.New("groq: response has no choices")
)
