package ollama

import "errors"

var (
	// ErrConnection is returned when the daemon cannot be reached or the call times out.
	ErrConnection = errors.New("ollama: connection failed")

	// ErrStatus is returned for any non-200 response.
	ErrStatus = errors.New("ollama: unexpected status")

	// ErrMalformedResponse is returned when the body has no string "response" field.
	ErrMalformedResponse = errors.New("ollama: malformed response")
)
