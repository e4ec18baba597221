package qdrant

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"rag-assistant/internal/retrieval"
	"rag-assistant/pkg/log"
	pkgQdrant "rag-assistant/pkg/qdrant"
	"rag-assistant/pkg/voyage"
)

const (
	defaultVectorSize = 1024
	defaultCacheSize  = 512
	scrollPageSize    = 256
)

// Options configures the collection index.
type Options struct {
	Collections map[string]string // collection key -> qdrant collection name
	VectorSize  int
	Distance    string
	CacheSize   int // query embeddings kept in memory
}

type implRepository struct {
	client      *pkgQdrant.Client
	embedder    voyage.IVoyage
	collections map[string]string
	vectorSize  int
	distance    string
	queryCache  *lru.Cache[string, []float32]
	l           log.Logger
}

var (
	_ retrieval.Index  = (*implRepository)(nil)
	_ retrieval.Writer = (*implRepository)(nil)
)

// New creates a Qdrant-backed index over the configured collections.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, l log.Logger, opts Options) (*implRepository, error) {
	if opts.VectorSize <= 0 {
		opts.VectorSize = defaultVectorSize
	}
	if opts.Distance == "" {
		opts.Distance = pkgQdrant.DistanceCosine
	}
	distance, err := pkgQdrant.ParseDistance(opts.Distance)
	if err != nil {
		return nil, err
	}
	opts.Distance = distance
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}

	cache, err := lru.New[string, []float32](opts.CacheSize)
	if err != nil {
		return nil, err
	}

	collections := make(map[string]string, len(opts.Collections))
	for k, v := range opts.Collections {
		collections[k] = v
	}

	return &implRepository{
		client:      client,
		embedder:    embedder,
		collections: collections,
		vectorSize:  opts.VectorSize,
		distance:    opts.Distance,
		queryCache:  cache,
		l:           l,
	}, nil
}
