package http

import (
	"github.com/gin-gonic/gin"

	"rag-assistant/internal/orchestrator"
	"rag-assistant/pkg/log"
)

// Handler is the public interface for the prompt HTTP delivery layer.
type Handler interface {
	Prompt(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc orchestrator.UseCase
}

// New creates a new HTTP handler for prompts.
func New(l log.Logger, uc orchestrator.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
