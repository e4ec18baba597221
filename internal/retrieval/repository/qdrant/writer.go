package qdrant

import (
	"context"
	"fmt"

	"rag-assistant/internal/retrieval"
	pkgQdrant "rag-assistant/pkg/qdrant"
)

// Upsert embeds docs and writes them, creating the collection on first use.
// Re-ingesting a document id overwrites the stored point.
func (r *implRepository) Upsert(ctx context.Context, collectionKey string, docs []retrieval.Document) error {
	name, err := r.collectionName(collectionKey)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}

	if err := r.ensureCollection(ctx, name); err != nil {
		return err
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	vectors, err := r.embedder.Embed(ctx, texts)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to embed %d docs: %v", len(docs), err)
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}
	if len(vectors) != len(docs) {
		return fmt.Errorf("embedder returned %d vectors for %d docs", len(vectors), len(docs))
	}

	points := make([]pkgQdrant.Point, len(docs))
	for i, d := range docs {
		points[i] = pkgQdrant.Point{
			ID:      pointID(d.ID),
			Vector:  vectors[i],
			Payload: toPayload(d),
		}
	}

	if err := r.client.UpsertPoints(ctx, name, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert into %s: %v", name, err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: upserted %d chunks into %s", len(points), name)
	return nil
}

// Clear drops the collection and recreates it empty.
func (r *implRepository) Clear(ctx context.Context, collectionKey string) error {
	name, err := r.collectionName(collectionKey)
	if err != nil {
		return err
	}
	if err := r.client.DeleteCollection(ctx, name); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return r.createCollection(ctx, name)
}

func (r *implRepository) ensureCollection(ctx context.Context, name string) error {
	exists, err := r.client.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		return nil
	}
	return r.createCollection(ctx, name)
}

func (r *implRepository) createCollection(ctx context.Context, name string) error {
	err := r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: name,
		Vectors: pkgQdrant.VectorConfig{
			Size:     r.vectorSize,
			Distance: r.distance,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	r.l.Infof(ctx, "qdrant repository: created collection %s", name)
	return nil
}
