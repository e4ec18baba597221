package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assistant/pkg/ollama"
)

func TestOllamaClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req ollama.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch req.Prompt {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"model not loaded"}`))
		case "no_field":
			w.Write([]byte(`{"done":true}`))
		case "not_json":
			w.Write([]byte(`<html>`))
		default:
			w.Write([]byte(`{"model":"` + req.Model + `","response":"hi from ` + req.Model + `","done":true}`))
		}
	}))
	defer ts.Close()

	client := ollama.New(ollama.Config{BaseURL: ts.URL + "/", Timeout: time.Second})

	t.Run("Success Flow", func(t *testing.T) {
		out, err := client.Generate(context.Background(), "hello", "qwen2.5:3b")
		require.NoError(t, err)
		assert.Equal(t, "hi from qwen2.5:3b", out)
	})

	t.Run("Status Error", func(t *testing.T) {
		_, err := client.Generate(context.Background(), "cause_500", "m")
		assert.ErrorIs(t, err, ollama.ErrStatus)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("Missing Field", func(t *testing.T) {
		_, err := client.Generate(context.Background(), "no_field", "m")
		assert.ErrorIs(t, err, ollama.ErrMalformedResponse)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		_, err := client.Generate(context.Background(), "not_json", "m")
		assert.ErrorIs(t, err, ollama.ErrMalformedResponse)
	})

	t.Run("Connection Error", func(t *testing.T) {
		dead := ollama.New(ollama.Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
		_, err := dead.Generate(context.Background(), "hello", "m")
		assert.ErrorIs(t, err, ollama.ErrConnection)
	})
}
