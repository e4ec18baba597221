package http

import (
	"github.com/gin-gonic/gin"

	"rag-assistant/internal/email"
	"rag-assistant/pkg/log"
)

// Handler is the public interface for the email HTTP delivery layer.
type Handler interface {
	Latest(c *gin.Context)
	Recent(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc email.UseCase
}

// New creates a new HTTP handler for the email domain.
func New(l log.Logger, uc email.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
