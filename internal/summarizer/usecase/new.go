package usecase

import (
	"rag-assistant/internal/retrieval"
	"rag-assistant/internal/summarizer"
	"rag-assistant/pkg/log"
)

type implUseCase struct {
	retrieval retrieval.UseCase
	gen       summarizer.Generator
	l         log.Logger
	opts      summarizer.Options
}

var _ summarizer.UseCase = (*implUseCase)(nil)

// New creates a new summarizer UseCase.
func New(r retrieval.UseCase, gen summarizer.Generator, l log.Logger, opts summarizer.Options) *implUseCase {
	if opts.MaxCharsPerBatch <= 0 {
		opts.MaxCharsPerBatch = summarizer.DefaultMaxCharsPerBatch
	}
	return &implUseCase{
		retrieval: r,
		gen:       gen,
		l:         l,
		opts:      opts,
	}
}
