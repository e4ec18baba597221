package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assistant/pkg/qdrant"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.HTTPServer.CORSOrigins)
	assert.Equal(t, 90*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, "qwen2.5:1.5b", cfg.Router.Model)
	assert.Equal(t, "qwen2.5:3b", cfg.Models.Query)
	assert.Equal(t, "qwen2.5:3b", cfg.Models.Batch)
	assert.Equal(t, "qwen2.5:1.5b", cfg.Models.Final)
	assert.Equal(t, 6000, cfg.Prompt.MaxContextChars)
	assert.Equal(t, 2500, cfg.Summarizer.MaxCharsPerBatch)
	assert.Equal(t, "cs", cfg.Summarizer.CollectionKey)
	assert.Equal(t, 3, cfg.Retrieval.PerCollectionK)
	assert.Equal(t, 5, cfg.Retrieval.TotalCap)
	assert.Equal(t, 5, cfg.Retrieval.SpeculativeK)
	assert.Equal(t, "cs_docs", cfg.Qdrant.Collections["cs"])
	assert.Equal(t, "general_docs", cfg.Qdrant.Collections["general"])

	require.Len(t, cfg.LLM.Providers, 2)
	assert.False(t, cfg.LLM.Providers[0].Enabled, "groq disabled without key")
	assert.Equal(t, "ollama", cfg.LLM.Providers[1].Name)
	assert.True(t, cfg.LLM.Providers[1].Enabled)
}

func TestLoad_GroqFromEnv(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("USE_GROQ_ROUTER", "1")
	t.Setenv("GROQ_API_KEY", "gsk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Router.UseGroq)
	assert.Equal(t, "gsk-test", cfg.Router.Groq.APIKey)
	assert.True(t, cfg.LLM.Providers[0].Enabled)
	assert.Equal(t, "20s", cfg.LLM.Providers[0].Timeout)
}

func TestLoad_QdrantDistance(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("QDRANT_DISTANCE", "manhattan")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, qdrant.DistanceManhattan, cfg.Qdrant.Distance)

	viper.Reset()
	t.Setenv("QDRANT_DISTANCE", "hamming")
	_, err = Load()
	assert.ErrorIs(t, err, qdrant.ErrUnknownDistance)
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "valid chain",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "groq", Enabled: true, Priority: 1, Model: "m"},
				{Name: "ollama", Enabled: true, Priority: 2, Model: "m"},
			}},
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "groq", Enabled: true, Priority: 1, Model: "m"},
				{Name: "ollama", Enabled: true, Priority: 1, Model: "m"},
			}},
			wantErr: true,
		},
		{
			name:    "nothing enabled",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "ollama", Model: "m"}}},
			wantErr: true,
		},
		{
			name:    "disabled entry may omit model",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "groq"}, {Name: "ollama", Enabled: true, Priority: 1, Model: "m"}}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
