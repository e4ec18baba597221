package ingest

import (
	"fmt"

	"github.com/tmc/langchaingo/textsplitter"

	"rag-assistant/internal/retrieval"
	"rag-assistant/pkg/log"
)

// Ingester loads files from disk, chunks them and hands them to a retrieval.Writer.
type Ingester struct {
	writer   retrieval.Writer
	splitter textsplitter.TextSplitter
	l        log.Logger
	opts     Options
}

// New validates opts and builds an Ingester.
func New(writer retrieval.Writer, l log.Logger, opts Options) (*Ingester, error) {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.ChunkOverlap < 0 {
		return nil, fmt.Errorf("%w: overlap cannot be negative", ErrInvalidOptions)
	}
	if opts.ChunkOverlap >= opts.ChunkSize {
		return nil, fmt.Errorf("%w: overlap %d must be smaller than size %d", ErrInvalidOptions, opts.ChunkOverlap, opts.ChunkSize)
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	return &Ingester{
		writer: writer,
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(opts.ChunkSize),
			textsplitter.WithChunkOverlap(opts.ChunkOverlap),
		),
		l:    l,
		opts: opts,
	}, nil
}
