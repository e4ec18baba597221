package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assistant/internal/model"
	"rag-assistant/pkg/log"
)

type fakeUseCase struct {
	res      model.OperationResult
	err      error
	messages []string
}

func (f *fakeUseCase) Handle(ctx context.Context, message string) (model.OperationResult, error) {
	f.messages = append(f.messages, message)
	return f.res, f.err
}

func newEngine(uc *fakeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, New(log.NewNop(), uc))
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/prompt", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestPrompt(t *testing.T) {
	uc := &fakeUseCase{res: model.OperationResult{
		Answer: "Pipes connect stdout to stdin [0].",
		Sources: []model.RetrievalHit{{
			CollectionKey: "cs",
			DocumentID:    "cs:os.md:chunk0",
			Text:          "pipes",
			Metadata:      map[string]any{"file": "os.md"},
			Score:         0.12,
		}},
		Routing: model.RouteDecision{
			Operation:     model.OperationQA,
			PrimarySource: "notes",
			Confidence:    0.9,
		},
		State: model.StateRAGQA,
	}}

	w := post(newEngine(uc), `{"message":"how do pipes work?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"how do pipes work?"}, uc.messages)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "Pipes connect stdout to stdin [0].", body["answer"])
	routing := body["routing"].(map[string]any)
	assert.Equal(t, "qa", routing["operation"])
	assert.Equal(t, []any{}, routing["secondary_sources"])
	assert.Equal(t, map[string]any{}, routing["arguments"])
	assert.NotContains(t, body, "state")

	sources := body["sources"].([]any)
	require.Len(t, sources, 1)
	src := sources[0].(map[string]any)
	assert.Equal(t, "cs", src["collection"])
	assert.Equal(t, "cs:os.md:chunk0", src["id"])
}

func TestPromptEmptySourcesIsArray(t *testing.T) {
	uc := &fakeUseCase{res: model.OperationResult{Answer: "hi", Sources: []model.RetrievalHit{}}}

	w := post(newEngine(uc), `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sources":[]`)
}

func TestPromptBadRequest(t *testing.T) {
	for name, body := range map[string]string{
		"blank message": `{"message":"   "}`,
		"missing field": `{}`,
		"not json":      `message=hi`,
	} {
		t.Run(name, func(t *testing.T) {
			uc := &fakeUseCase{}
			w := post(newEngine(uc), body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, uc.messages)
			assert.Contains(t, w.Body.String(), `"detail"`)
		})
	}
}

func TestPromptGenerationFailure(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("generate answer: ollama: connection refused")}

	w := post(newEngine(uc), `{"message":"q"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"generate answer: ollama: connection refused"}`, w.Body.String())
}
