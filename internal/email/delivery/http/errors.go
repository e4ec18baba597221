package http

import (
	"errors"
	"net/http"

	"rag-assistant/internal/email"
	pkgErrors "rag-assistant/pkg/errors"
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, email.ErrEmptySender):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, email.ErrMailNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
