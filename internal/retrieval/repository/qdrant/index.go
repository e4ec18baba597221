package qdrant

import (
	"context"
	"fmt"

	"rag-assistant/internal/model"
	"rag-assistant/internal/retrieval"
	pkgQdrant "rag-assistant/pkg/qdrant"
)

// Query embeds the text and returns the k nearest chunks, nearest first.
func (r *implRepository) Query(ctx context.Context, collectionKey, queryText string, k int) ([]model.RetrievalHit, error) {
	name, err := r.collectionName(collectionKey)
	if err != nil {
		return nil, err
	}
	if k <= 0 {
		return []model.RetrievalHit{}, nil
	}

	vector, err := r.queryVector(ctx, queryText)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to embed query: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	resp, err := r.client.SearchPoints(ctx, name, pkgQdrant.SearchRequest{
		Vector:      vector,
		Limit:       k,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search %s: %v", name, err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	hits := make([]model.RetrievalHit, 0, len(resp.Result))
	for _, p := range resp.Result {
		hit := toHit(collectionKey, p.ID, p.Payload)
		hit.Score = r.toDistance(p.Score)
		hits = append(hits, hit)
	}

	r.l.Debugf(ctx, "qdrant repository: %d hits from %s", len(hits), name)
	return hits, nil
}

// GetAll scrolls through every point of the collection.
func (r *implRepository) GetAll(ctx context.Context, collectionKey string) ([]model.RetrievalHit, error) {
	name, err := r.collectionName(collectionKey)
	if err != nil {
		return nil, err
	}

	var (
		hits   []model.RetrievalHit
		offset interface{}
	)
	for {
		page, err := r.client.ScrollPoints(ctx, name, pkgQdrant.ScrollRequest{
			Limit:       scrollPageSize,
			Offset:      offset,
			WithPayload: true,
		})
		if err != nil {
			r.l.Errorf(ctx, "qdrant repository: failed to scroll %s: %v", name, err)
			return nil, fmt.Errorf("failed to scroll: %w", err)
		}
		for _, p := range page.Result.Points {
			hits = append(hits, toHit(collectionKey, p.ID, p.Payload))
		}
		if page.Result.NextPageOffset == nil || len(page.Result.Points) == 0 {
			break
		}
		offset = page.Result.NextPageOffset
	}

	if hits == nil {
		hits = []model.RetrievalHit{}
	}
	r.l.Infof(ctx, "qdrant repository: loaded %d chunks from %s", len(hits), name)
	return hits, nil
}

func (r *implRepository) collectionName(key string) (string, error) {
	name, ok := r.collections[key]
	if !ok || name == "" {
		return "", fmt.Errorf("%w: %q", retrieval.ErrUnknownCollection, key)
	}
	return name, nil
}

func (r *implRepository) queryVector(ctx context.Context, text string) ([]float32, error) {
	if v, ok := r.queryCache.Get(text); ok {
		return v, nil
	}
	v, err := r.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, err
	}
	r.queryCache.Add(text, v)
	return v, nil
}

// toDistance maps a Qdrant score onto "lower is better".
// Cosine and Dot are similarities; Euclid and Manhattan already are distances.
func (r *implRepository) toDistance(score float64) float64 {
	if pkgQdrant.IsSimilarity(r.distance) {
		return 1 - score
	}
	return score
}
