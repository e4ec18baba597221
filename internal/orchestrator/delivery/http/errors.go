package http

import (
	"errors"
	"net/http"

	"rag-assistant/internal/orchestrator"
)

// mapError picks the status for a use-case error. The error text is always
// reported as the detail.
func (h *handler) mapError(err error) int {
	switch {
	case errors.Is(err, orchestrator.ErrEmptyMessage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
