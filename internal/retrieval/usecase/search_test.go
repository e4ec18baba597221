package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rag-assistant/internal/model"
	"rag-assistant/internal/retrieval"
	"rag-assistant/pkg/log"
)

type fakeIndex struct {
	mu      sync.Mutex
	hits    map[string][]model.RetrievalHit
	fail    map[string]bool
	slow    time.Duration
	queries []string
}

func (f *fakeIndex) Query(ctx context.Context, key, text string, k int) ([]model.RetrievalHit, error) {
	f.mu.Lock()
	f.queries = append(f.queries, key)
	f.mu.Unlock()

	if f.slow > 0 {
		select {
		case <-time.After(f.slow):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.fail[key] {
		return nil, errors.New("index down")
	}
	h := f.hits[key]
	if len(h) > k {
		h = h[:k]
	}
	return h, nil
}

func (f *fakeIndex) GetAll(ctx context.Context, key string) ([]model.RetrievalHit, error) {
	if f.fail[key] {
		return nil, errors.New("index down")
	}
	return f.hits[key], nil
}

func mkHits(key string, n int) []model.RetrievalHit {
	out := make([]model.RetrievalHit, n)
	for i := range out {
		out[i] = model.RetrievalHit{CollectionKey: key, DocumentID: key + "-" + string(rune('0'+i)), Score: float64(i) / 10}
	}
	return out
}

func TestSearchSources_ConcatenatesAndCaps(t *testing.T) {
	idx := &fakeIndex{hits: map[string][]model.RetrievalHit{
		"cs":      mkHits("cs", 5),
		"general": mkHits("general", 5),
	}}
	uc := New(idx, log.NewNop(), Options{})

	got := uc.SearchSources(context.Background(), []string{"cs", "general"}, "q", 3, 5)

	assert.Len(t, got, 5)
	assert.Equal(t, "cs-0", got[0].DocumentID)
	assert.Equal(t, "cs-2", got[2].DocumentID)
	assert.Equal(t, "general-0", got[3].DocumentID)
	assert.Equal(t, "general-1", got[4].DocumentID)
	assert.Equal(t, []string{"cs", "general"}, idx.queries)
}

func TestSearchSources_DefaultKeepsResolutionOrder(t *testing.T) {
	idx := &fakeIndex{hits: map[string][]model.RetrievalHit{
		"cs":      {{CollectionKey: "cs", DocumentID: "cs-far", Score: 0.9}},
		"general": {{CollectionKey: "general", DocumentID: "general-near", Score: 0.1}},
	}}

	got := New(idx, log.NewNop(), Options{}).SearchSources(context.Background(), []string{"cs", "general"}, "q", 3, 5)
	assert.Equal(t, []string{"cs-far", "general-near"}, []string{got[0].DocumentID, got[1].DocumentID})

	got = New(idx, log.NewNop(), Options{Strategy: retrieval.MergeByScore}).SearchSources(context.Background(), []string{"cs", "general"}, "q", 3, 5)
	assert.Equal(t, []string{"general-near", "cs-far"}, []string{got[0].DocumentID, got[1].DocumentID})
}

func TestSearchSources_FailingCollectionDegrades(t *testing.T) {
	idx := &fakeIndex{
		hits: map[string][]model.RetrievalHit{"general": mkHits("general", 2)},
		fail: map[string]bool{"cs": true},
	}
	uc := New(idx, log.NewNop(), Options{Strategy: retrieval.MergeConcatenate})

	got := uc.SearchSources(context.Background(), []string{"cs", "general"}, "q", 3, 5)
	assert.Len(t, got, 2)
	assert.Equal(t, "general", got[0].CollectionKey)
}

func TestSearch_TimeoutDegradesToEmpty(t *testing.T) {
	idx := &fakeIndex{hits: map[string][]model.RetrievalHit{"cs": mkHits("cs", 1)}, slow: time.Second}
	uc := New(idx, log.NewNop(), Options{Timeout: 10 * time.Millisecond})

	got := uc.Search(context.Background(), "cs", "q", 5)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAll(t *testing.T) {
	idx := &fakeIndex{
		hits: map[string][]model.RetrievalHit{"cs": mkHits("cs", 3)},
		fail: map[string]bool{"general": true},
	}
	uc := New(idx, log.NewNop(), Options{})

	assert.Len(t, uc.All(context.Background(), "cs"), 3)
	assert.Empty(t, uc.All(context.Background(), "general"))
}
