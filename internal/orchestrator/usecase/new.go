package usecase

import (
	"rag-assistant/internal/orchestrator"
	"rag-assistant/internal/prompt"
	"rag-assistant/internal/retrieval"
	"rag-assistant/internal/router"
	"rag-assistant/internal/summarizer"
	"rag-assistant/pkg/log"
)

const (
	defaultSpeculativeK   = 5
	defaultPerCollectionK = 3
	defaultTotalCap       = 5
)

type implUseCase struct {
	router     router.Router
	retrieval  retrieval.UseCase
	summarizer summarizer.UseCase
	gen        orchestrator.Generator
	l          log.Logger
	opts       orchestrator.Options
}

var _ orchestrator.UseCase = (*implUseCase)(nil)

// New creates a new orchestrator UseCase. All collaborators are shared
// across requests and must be safe for concurrent use.
func New(
	r router.Router,
	ret retrieval.UseCase,
	sum summarizer.UseCase,
	gen orchestrator.Generator,
	l log.Logger,
	opts orchestrator.Options,
) *implUseCase {
	if opts.Mode == "" {
		opts.Mode = orchestrator.ModeConcurrent
	}
	if opts.DefaultCollection == "" {
		opts.DefaultCollection = retrieval.KeyCS
	}
	if opts.SummarizeCollection == "" {
		opts.SummarizeCollection = retrieval.KeyCS
	}
	if opts.SpeculativeK <= 0 {
		opts.SpeculativeK = defaultSpeculativeK
	}
	if opts.PerCollectionK <= 0 {
		opts.PerCollectionK = defaultPerCollectionK
	}
	if opts.TotalCap <= 0 {
		opts.TotalCap = defaultTotalCap
	}
	if opts.MaxContextChars <= 0 {
		opts.MaxContextChars = prompt.DefaultMaxContextChars
	}

	return &implUseCase{
		router:     r,
		retrieval:  ret,
		summarizer: sum,
		gen:        gen,
		l:          l,
		opts:       opts,
	}
}
