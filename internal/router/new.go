package router

import (
	"rag-assistant/pkg/log"
)

// SemanticRouter classifies messages with an LLM provider chain.
type SemanticRouter struct {
	llm Backend
	l   log.Logger
}

var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter.
func New(llm Backend, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
