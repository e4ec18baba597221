package usecase

import (
	"context"
	"time"

	"rag-assistant/internal/model"
	"rag-assistant/internal/retrieval"
	"rag-assistant/pkg/metrics"
)

// Search queries a single collection. Errors are logged and degrade to no hits.
func (uc *implUseCase) Search(ctx context.Context, collectionKey, queryText string, k int) []model.RetrievalHit {
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	hits, err := uc.index.Query(ctx, collectionKey, queryText, k)
	metrics.ObserveRetrieval(collectionKey, start, err)
	if err != nil {
		uc.l.Warnf(ctx, "internal.retrieval.usecase.Search: collection=%s: %v", collectionKey, err)
		return []model.RetrievalHit{}
	}
	if hits == nil {
		return []model.RetrievalHit{}
	}
	return hits
}

// SearchSources queries keys in order and merges the results with the configured strategy.
func (uc *implUseCase) SearchSources(ctx context.Context, keys []string, queryText string, perCollection, limit int) []model.RetrievalHit {
	lists := make([][]model.RetrievalHit, 0, len(keys))
	for _, key := range keys {
		lists = append(lists, uc.Search(ctx, key, queryText, perCollection))
	}
	return retrieval.Merge(lists, uc.opts.Strategy, limit)
}

// All loads every chunk of a collection. Errors are logged and degrade to no hits.
func (uc *implUseCase) All(ctx context.Context, collectionKey string) []model.RetrievalHit {
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	hits, err := uc.index.GetAll(ctx, collectionKey)
	metrics.ObserveRetrieval(collectionKey, start, err)
	if err != nil {
		uc.l.Warnf(ctx, "internal.retrieval.usecase.All: collection=%s: %v", collectionKey, err)
		return []model.RetrievalHit{}
	}
	return hits
}

func (uc *implUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.opts.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, uc.opts.Timeout)
}
