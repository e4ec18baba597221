package retrieval

import (
	"context"

	"rag-assistant/internal/model"
)

// Index is the vector index collaborator. Query returns hits sorted by
// ascending score; GetAll returns every stored chunk in no particular order.
type Index interface {
	Query(ctx context.Context, collectionKey, queryText string, k int) ([]model.RetrievalHit, error)
	GetAll(ctx context.Context, collectionKey string) ([]model.RetrievalHit, error)
}

// Writer populates collections. It is used by ingestion only, never on the request path.
type Writer interface {
	Upsert(ctx context.Context, collectionKey string, docs []Document) error
	Clear(ctx context.Context, collectionKey string) error
}

//go:generate mockery --name UseCase
type UseCase interface {
	// Search queries one collection. A failing collection yields no hits.
	Search(ctx context.Context, collectionKey, queryText string, k int) []model.RetrievalHit
	// SearchSources queries every key with perCollection results each and merges to limit.
	SearchSources(ctx context.Context, keys []string, queryText string, perCollection, limit int) []model.RetrievalHit
	// All loads a whole collection. A failing collection yields no hits.
	All(ctx context.Context, collectionKey string) []model.RetrievalHit
}
