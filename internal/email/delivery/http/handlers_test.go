package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assistant/internal/email"
	"rag-assistant/internal/model"
	"rag-assistant/pkg/log"
	"rag-assistant/pkg/response"
)

type fakeUseCase struct {
	latest email.LatestOutput
	recent []model.Email
	err    error
}

func (f *fakeUseCase) Latest(ctx context.Context, sender string) (email.LatestOutput, error) {
	return f.latest, f.err
}

func (f *fakeUseCase) Recent(ctx context.Context, limit int) ([]model.Email, error) {
	return f.recent, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/email"), New(log.NewNop(), uc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestLatest(t *testing.T) {
	uc := &fakeUseCase{latest: email.LatestOutput{
		Answer: "Found an email from Alice with subject 'hi'.",
		Sources: []email.Source{{
			Sender: "Alice", Subject: "hi", BodyPreview: "hello", Provider: "gmail",
			Date: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		}},
	}}

	w := serve(uc, "/api/v1/email/latest?sender=Alice")
	require.Equal(t, http.StatusOK, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Found an email from Alice with subject 'hi'.", data["answer"])
	src := data["sources"].([]any)[0].(map[string]any)
	assert.Equal(t, "hello", src["body_preview"])
}

func TestLatestMissingSender(t *testing.T) {
	w := serve(&fakeUseCase{}, "/api/v1/email/latest")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMailNotConfigured(t *testing.T) {
	w := serve(&fakeUseCase{err: email.ErrMailNotConfigured}, "/api/v1/email/recent?limit=5")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRecent(t *testing.T) {
	uc := &fakeUseCase{recent: []model.Email{{ID: "m1", Sender: "Bob", Subject: "s"}}}

	w := serve(uc, "/api/v1/email/recent")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"m1"`)
}
