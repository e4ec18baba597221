package groq_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assistant/pkg/groq"
)

func TestGroqClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
			return
		}

		var req groq.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.Messages[0].Content == "empty" {
			w.Write([]byte(`{"id":"x","choices":[]}`))
			return
		}

		json.NewEncoder(w).Encode(groq.Response{
			ID:    "cmpl-1",
			Model: req.Model,
			Choices: []groq.Choice{{
				Message: groq.Message{Role: "assistant", Content: `{"operation":"qa"}`},
			}},
		})
	}))
	defer ts.Close()

	t.Run("Requires API key", func(t *testing.T) {
		_, err := groq.New(groq.Config{})
		assert.ErrorIs(t, err, groq.ErrAPIKeyRequired)
	})

	client, err := groq.New(groq.Config{APIKey: "test-key", BaseURL: ts.URL})
	require.NoError(t, err)
	assert.Equal(t, groq.DefaultModel, client.Model())

	t.Run("Complete", func(t *testing.T) {
		out, err := client.Complete(context.Background(), "route this")
		require.NoError(t, err)
		assert.Equal(t, `{"operation":"qa"}`, out)
	})

	t.Run("Empty choices", func(t *testing.T) {
		_, err := client.Complete(context.Background(), "empty")
		assert.ErrorIs(t, err, groq.ErrEmptyChoices)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		bad, err := groq.New(groq.Config{APIKey: "wrong", BaseURL: ts.URL})
		require.NoError(t, err)
		_, err = bad.Complete(context.Background(), "route this")
		assert.ErrorIs(t, err, groq.ErrStatus)
		assert.Contains(t, err.Error(), "invalid api key")
	})
}
