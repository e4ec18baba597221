package usecase

import (
	"time"

	"rag-assistant/internal/retrieval"
	"rag-assistant/pkg/log"
)

// Options tune how collections are queried.
type Options struct {
	Timeout  time.Duration // per collection call; 0 disables
	Strategy retrieval.MergeStrategy
}

// implUseCase is the private implementation of retrieval.UseCase.
type implUseCase struct {
	index retrieval.Index
	l     log.Logger
	opts  Options
}

var _ retrieval.UseCase = (*implUseCase)(nil)

// New creates a new retrieval UseCase implementation.
func New(index retrieval.Index, l log.Logger, opts Options) *implUseCase {
	if opts.Strategy == "" {
		opts.Strategy = retrieval.MergeConcatenate
	}
	return &implUseCase{
		index: index,
		l:     l,
		opts:  opts,
	}
}
