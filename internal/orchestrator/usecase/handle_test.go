package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assistant/internal/model"
	"rag-assistant/internal/orchestrator"
	"rag-assistant/internal/prompt"
	"rag-assistant/internal/retrieval"
	"rag-assistant/pkg/log"
)

type fakeRouter struct {
	decision model.RouteDecision
	delay    time.Duration
}

func (r *fakeRouter) Classify(ctx context.Context, message string) model.RouteDecision {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	return r.decision
}

type searchCall struct {
	key string
	k   int
}

type fakeRetrieval struct {
	mu       sync.Mutex
	hits     map[string][]model.RetrievalHit
	fail     map[string]bool
	searches []searchCall
	sources  [][]string
}

func (f *fakeRetrieval) Search(ctx context.Context, key, text string, k int) []model.RetrievalHit {
	f.mu.Lock()
	f.searches = append(f.searches, searchCall{key: key, k: k})
	f.mu.Unlock()

	if f.fail[key] {
		return []model.RetrievalHit{}
	}
	h := f.hits[key]
	if len(h) > k {
		h = h[:k]
	}
	return append([]model.RetrievalHit{}, h...)
}

func (f *fakeRetrieval) SearchSources(ctx context.Context, keys []string, text string, per, limit int) []model.RetrievalHit {
	f.mu.Lock()
	f.sources = append(f.sources, keys)
	f.mu.Unlock()

	lists := make([][]model.RetrievalHit, 0, len(keys))
	for _, k := range keys {
		lists = append(lists, f.Search(ctx, k, text, per))
	}
	return retrieval.Merge(lists, retrieval.MergeConcatenate, limit)
}

func (f *fakeRetrieval) All(ctx context.Context, key string) []model.RetrievalHit {
	return f.hits[key]
}

type fakeSummarizer struct {
	answer string
	err    error
	keys   []string
}

func (s *fakeSummarizer) Summarize(ctx context.Context, key string) (string, error) {
	s.keys = append(s.keys, key)
	return s.answer, s.err
}

type fakeGenerator struct {
	mu      sync.Mutex
	err     error
	prompts []string
	models  []string
}

func (g *fakeGenerator) Generate(ctx context.Context, p, m string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, p)
	g.models = append(g.models, m)
	if g.err != nil {
		return "", g.err
	}
	return fmt.Sprintf("answer #%d", len(g.prompts)), nil
}

type fixture struct {
	router *fakeRouter
	ret    *fakeRetrieval
	sum    *fakeSummarizer
	gen    *fakeGenerator
}

func newFixture(d model.RouteDecision) *fixture {
	return &fixture{
		router: &fakeRouter{decision: d},
		ret: &fakeRetrieval{
			hits: map[string][]model.RetrievalHit{
				retrieval.KeyCS:      mkHits(retrieval.KeyCS, 6),
				retrieval.KeyGeneral: mkHits(retrieval.KeyGeneral, 6),
			},
			fail: map[string]bool{},
		},
		sum: &fakeSummarizer{answer: "the docker summary"},
		gen: &fakeGenerator{},
	}
}

func (f *fixture) useCase(mode orchestrator.Mode) *implUseCase {
	return New(f.router, f.ret, f.sum, f.gen, log.NewNop(), orchestrator.Options{
		Mode:    mode,
		QAModel: "qwen2.5:3b",
	})
}

func mkHits(key string, n int) []model.RetrievalHit {
	out := make([]model.RetrievalHit, n)
	for i := range out {
		out[i] = model.RetrievalHit{
			CollectionKey: key,
			DocumentID:    fmt.Sprintf("%s:doc.md:chunk%d", key, i),
			Text:          fmt.Sprintf("%s passage %d", key, i),
			Metadata:      map[string]any{"source": key, "file": "doc.md", "chunk_index": i},
			Score:         float64(i) / 10,
		}
	}
	return out
}

func decision(op model.Operation, primary string, conf float64, secondary ...string) model.RouteDecision {
	return model.RouteDecision{
		Operation:        op,
		PrimarySource:    primary,
		SecondarySources: secondary,
		Arguments:        map[string]string{},
		Confidence:       conf,
	}
}

var modes = []orchestrator.Mode{orchestrator.ModeSequential, orchestrator.ModeConcurrent}

func TestHandleEmptyMessage(t *testing.T) {
	f := newFixture(decision(model.OperationQA, "notes", 0.9))
	for _, mode := range modes {
		_, err := f.useCase(mode).Handle(context.Background(), "   ")
		assert.ErrorIs(t, err, orchestrator.ErrEmptyMessage)
	}
}

func TestHandleLowConfidenceSkipsHandlers(t *testing.T) {
	for _, op := range []model.Operation{model.OperationQA, model.OperationSummarize, model.OperationEmailLatest, model.OperationFreeChat} {
		for _, mode := range modes {
			t.Run(string(op)+"/"+string(mode), func(t *testing.T) {
				d := decision(op, "notes", 0.05)
				d.Arguments["sender"] = "Alice"
				f := newFixture(d)

				res, err := f.useCase(mode).Handle(context.Background(), "hmm?")
				require.NoError(t, err)

				assert.Equal(t, model.StateLowConfidenceFallback, res.State)
				assert.Empty(t, f.sum.keys)
				assert.Empty(t, f.ret.sources)
				assert.NotContains(t, res.Answer, "email_latest stub")
				require.Len(t, f.gen.prompts, 1)
				assert.Equal(t, prompt.FreeChat("hmm?"), f.gen.prompts[0])
				assert.NotNil(t, res.Sources)
				assert.Empty(t, res.Sources)
				assert.Equal(t, d, res.Routing)
			})
		}
	}
}

func TestHandleEmailStub(t *testing.T) {
	for _, mode := range modes {
		d := decision(model.OperationEmailLatest, "emails", 0.9)
		d.Arguments["sender"] = "Alice"
		f := newFixture(d)

		res, err := f.useCase(mode).Handle(context.Background(), "latest email from Alice")
		require.NoError(t, err)

		assert.Equal(t, model.StateEmailLatest, res.State)
		assert.Contains(t, res.Answer, "Alice")
		assert.Contains(t, res.Answer, "not wired into the orchestrator")
		assert.Equal(t, []model.RetrievalHit{}, res.Sources)
		assert.Empty(t, f.gen.prompts)
	}
}

func TestHandleEmailStubUnknownSender(t *testing.T) {
	f := newFixture(decision(model.OperationEmailLatest, "emails", 0.9))

	res, err := f.useCase(orchestrator.ModeSequential).Handle(context.Background(), "latest email")
	require.NoError(t, err)
	assert.Contains(t, res.Answer, "'(unknown sender)'")
}

func TestHandleSummarizeUsesFixedCollection(t *testing.T) {
	for _, mode := range modes {
		f := newFixture(decision(model.OperationSummarize, "documents", 0.9))

		res, err := f.useCase(mode).Handle(context.Background(), "summarize docker notes")
		require.NoError(t, err)

		assert.Equal(t, model.StateSummarize, res.State)
		assert.Equal(t, "the docker summary", res.Answer)
		assert.Equal(t, []string{retrieval.KeyCS}, f.sum.keys)
		assert.Equal(t, []model.RetrievalHit{}, res.Sources)
		assert.Empty(t, f.gen.prompts)
	}
}

func TestHandleSummarizeError(t *testing.T) {
	f := newFixture(decision(model.OperationSummarize, "notes", 0.9))
	f.sum.err = errors.New("ollama: status 500")

	_, err := f.useCase(orchestrator.ModeSequential).Handle(context.Background(), "summarize")
	assert.ErrorContains(t, err, "status 500")
}

func TestHandleFreeChat(t *testing.T) {
	f := newFixture(decision(model.OperationFreeChat, "all", 0.9))

	res, err := f.useCase(orchestrator.ModeSequential).Handle(context.Background(), "tell me a joke")
	require.NoError(t, err)

	assert.Equal(t, model.StateFreeChat, res.State)
	assert.Equal(t, "answer #1", res.Answer)
	assert.Equal(t, []string{"qwen2.5:3b"}, f.gen.models)
	assert.Empty(t, f.ret.sources)
}

func TestHandleRAGQAMultiSource(t *testing.T) {
	for _, mode := range modes {
		t.Run(string(mode), func(t *testing.T) {
			f := newFixture(decision(model.OperationQA, "notes", 0.9, "documents"))

			res, err := f.useCase(mode).Handle(context.Background(), "how do pipes work?")
			require.NoError(t, err)

			assert.Equal(t, model.StateRAGQA, res.State)
			require.Equal(t, [][]string{{"cs", "general"}}, f.ret.sources)
			require.Len(t, res.Sources, 5)

			ids := make([]string, len(res.Sources))
			for i, h := range res.Sources {
				ids[i] = h.DocumentID
			}
			assert.Equal(t, []string{
				"cs:doc.md:chunk0", "cs:doc.md:chunk1", "cs:doc.md:chunk2",
				"general:doc.md:chunk0", "general:doc.md:chunk1",
			}, ids)

			require.Len(t, f.gen.prompts, 1)
			assert.Equal(t, prompt.Assemble("how do pipes work?", res.Sources, prompt.DefaultMaxContextChars), f.gen.prompts[0])
		})
	}
}

func TestHandleConcurrentReusesSpeculativeHits(t *testing.T) {
	f := newFixture(decision(model.OperationQA, "notes", 0.9))
	f.router.delay = 20 * time.Millisecond

	res, err := f.useCase(orchestrator.ModeConcurrent).Handle(context.Background(), "what is a mutex?")
	require.NoError(t, err)

	assert.Empty(t, f.ret.sources, "no second retrieval when speculative hits fit")
	assert.Equal(t, []searchCall{{key: "cs", k: 5}}, f.ret.searches)
	require.Len(t, res.Sources, 3, "reused hits are trimmed to the per-collection depth")
	assert.Equal(t, "cs:doc.md:chunk2", res.Sources[2].DocumentID)
}

func TestHandleConcurrentIgnoresSpeculativeForOtherSources(t *testing.T) {
	f := newFixture(decision(model.OperationQA, "all", 0.9))

	res, err := f.useCase(orchestrator.ModeConcurrent).Handle(context.Background(), "q")
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"cs", "general"}}, f.ret.sources)
	assert.Equal(t, "general:doc.md:chunk0", res.Sources[3].DocumentID)
}

func TestHandleConcurrentSpeculativeFailure(t *testing.T) {
	f := newFixture(decision(model.OperationQA, "notes", 0.9))
	f.ret.fail[retrieval.KeyCS] = true

	res, err := f.useCase(orchestrator.ModeConcurrent).Handle(context.Background(), "what is a mutex?")
	require.NoError(t, err)

	// Empty speculative result falls back to a regular search, which also finds nothing.
	assert.Equal(t, [][]string{{"cs"}}, f.ret.sources)
	assert.Empty(t, res.Sources)
	require.Len(t, f.gen.prompts, 1)
	assert.Contains(t, f.gen.prompts[0], "No relevant context snippets were found")
}

func TestHandleGenerationErrorSurfaces(t *testing.T) {
	for _, op := range []model.Operation{model.OperationQA, model.OperationFreeChat} {
		for _, mode := range modes {
			f := newFixture(decision(op, "all", 0.9))
			f.gen.err = errors.New("ollama: connection refused")

			_, err := f.useCase(mode).Handle(context.Background(), "q")
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), "connection refused"))
		}
	}
}

func TestSequentialAndConcurrentAgree(t *testing.T) {
	email := decision(model.OperationEmailLatest, "emails", 0.9)
	email.Arguments["sender"] = "Bob"

	decisions := map[string]model.RouteDecision{
		"qa notes":       decision(model.OperationQA, "notes", 0.9),
		"qa all":         decision(model.OperationQA, "all", 0.8),
		"qa documents":   decision(model.OperationQA, "documents", 0.7, "notes"),
		"qa unknown src": decision(model.OperationQA, "emails", 0.9),
		"summarize":      decision(model.OperationSummarize, "notes", 0.9),
		"email":          email,
		"free chat":      decision(model.OperationFreeChat, "all", 0.9),
		"low confidence": decision(model.OperationSummarize, "all", 0.01),
	}

	for name, d := range decisions {
		t.Run(name, func(t *testing.T) {
			results := make([]model.OperationResult, 0, len(modes))
			for _, mode := range modes {
				// Both collections hold more chunks than either search depth.
				f := newFixture(d)

				res, err := f.useCase(mode).Handle(context.Background(), "same message")
				require.NoError(t, err)
				results = append(results, res)
			}
			assert.Equal(t, results[0], results[1])
		})
	}
}
