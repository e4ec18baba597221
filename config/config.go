package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"rag-assistant/pkg/qdrant"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Generation and classification backends
	Ollama OllamaConfig
	Router RouterConfig
	Models ModelsConfig

	// Classification provider chain, derived from Router when llm.providers is absent
	LLM LLMConfig

	// Retrieval
	Qdrant     QdrantConfig
	Voyage     VoyageConfig
	Retrieval  RetrievalConfig
	Prompt     PromptConfig
	Summarizer SummarizerConfig
	Ingest     IngestConfig

	Orchestrator OrchestratorConfig

	// Mail
	Gmail GmailConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port        int
	Mode        string
	CORSOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type OllamaConfig struct {
	URL     string
	Timeout time.Duration
}

// RouterConfig configures message classification.
type RouterConfig struct {
	Model   string
	UseGroq bool
	Groq    GroqConfig
}

type GroqConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// ModelsConfig names the generation models per use.
type ModelsConfig struct {
	Query string
	Batch string
	Final string
}

// LLMConfig holds the ordered classification backends.
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single classification backend.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type QdrantConfig struct {
	URL         string
	APIKey      string
	VectorSize  int
	Distance    string
	Collections map[string]string // collection key -> collection name
}

type VoyageConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	CacheSize int
}

type RetrievalConfig struct {
	PerCollectionK int
	TotalCap       int
	SpeculativeK   int
	Timeout        time.Duration
}

type PromptConfig struct {
	MaxContextChars int
}

type SummarizerConfig struct {
	CollectionKey    string
	MaxCharsPerBatch int
}

type IngestConfig struct {
	Dirs         map[string]string // collection key -> directory
	ChunkSize    int
	ChunkOverlap int
	BatchSize    int
}

type OrchestratorConfig struct {
	Mode string // "concurrent" or "sequential"
}

type GmailConfig struct {
	CredentialsPath string
	TokenPath       string
	UserID          string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.CORSOrigins = splitList(viper.GetString("http_server.cors_origins"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Backends
	cfg.Ollama.URL = viper.GetString("ollama.url")
	cfg.Ollama.Timeout = viper.GetDuration("ollama.timeout")

	cfg.Router.Model = viper.GetString("router.model")
	cfg.Router.UseGroq = viper.GetBool("router.use_groq")
	if viper.GetString("use_groq_router") == "1" {
		cfg.Router.UseGroq = true
	}
	cfg.Router.Groq.APIKey = viper.GetString("groq.api_key")
	cfg.Router.Groq.Model = viper.GetString("groq.model")
	if groqModel := viper.GetString("groq_router_model"); groqModel != "" {
		cfg.Router.Groq.Model = groqModel
	}
	cfg.Router.Groq.BaseURL = viper.GetString("groq.base_url")
	cfg.Router.Groq.Timeout = viper.GetDuration("groq.timeout")

	cfg.Models.Query = viper.GetString("models.query")
	cfg.Models.Batch = viper.GetString("models.batch")
	cfg.Models.Final = viper.GetString("models.final")

	// Classification provider chain
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = cfg.defaultProviders()
	}
	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	// Retrieval
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.APIKey = viper.GetString("qdrant.api_key")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	distance, err := qdrant.ParseDistance(viper.GetString("qdrant.distance"))
	if err != nil {
		return nil, fmt.Errorf("invalid qdrant config: %w", err)
	}
	cfg.Qdrant.Distance = distance
	cfg.Qdrant.Collections = viper.GetStringMapString("qdrant.collections")

	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")
	cfg.Voyage.BaseURL = viper.GetString("voyage.base_url")
	cfg.Voyage.CacheSize = viper.GetInt("voyage.cache_size")

	cfg.Retrieval.PerCollectionK = viper.GetInt("retrieval.per_collection_k")
	cfg.Retrieval.TotalCap = viper.GetInt("retrieval.total_cap")
	cfg.Retrieval.SpeculativeK = viper.GetInt("retrieval.speculative_k")
	cfg.Retrieval.Timeout = viper.GetDuration("retrieval.timeout")

	cfg.Prompt.MaxContextChars = viper.GetInt("prompt.max_context_chars")

	cfg.Summarizer.CollectionKey = viper.GetString("summarizer.collection_key")
	cfg.Summarizer.MaxCharsPerBatch = viper.GetInt("summarizer.max_chars_per_batch")

	cfg.Ingest.Dirs = viper.GetStringMapString("ingest.dirs")
	cfg.Ingest.ChunkSize = viper.GetInt("ingest.chunk_size")
	cfg.Ingest.ChunkOverlap = viper.GetInt("ingest.chunk_overlap")
	cfg.Ingest.BatchSize = viper.GetInt("ingest.batch_size")

	cfg.Orchestrator.Mode = viper.GetString("orchestrator.mode")

	// Mail
	cfg.Gmail.CredentialsPath = viper.GetString("gmail.credentials_path")
	cfg.Gmail.TokenPath = viper.GetString("gmail.token_path")
	cfg.Gmail.UserID = viper.GetString("gmail.user_id")

	return cfg, nil
}

// defaultProviders builds the classification chain from the router section:
// the remote backend first when enabled, then the local one.
func (cfg *Config) defaultProviders() []ProviderConfig {
	return []ProviderConfig{
		{
			Name:     "groq",
			Enabled:  cfg.Router.UseGroq && cfg.Router.Groq.APIKey != "",
			Priority: 1,
			APIKey:   cfg.Router.Groq.APIKey,
			BaseURL:  cfg.Router.Groq.BaseURL,
			Model:    cfg.Router.Groq.Model,
			Timeout:  cfg.Router.Groq.Timeout.String(),
		},
		{
			Name:     "ollama",
			Enabled:  true,
			Priority: 2,
			BaseURL:  cfg.Ollama.URL,
			Model:    cfg.Router.Model,
			Timeout:  cfg.Ollama.Timeout.String(),
		},
	}
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.cors_origins", "http://localhost:4200")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("ollama.url", "http://localhost:11434")
	viper.SetDefault("ollama.timeout", "90s")

	viper.SetDefault("router.model", "qwen2.5:1.5b")
	viper.SetDefault("router.use_groq", false)
	viper.SetDefault("groq.model", "llama3-70b-8192")
	viper.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("groq.timeout", "20s")

	viper.SetDefault("models.query", "qwen2.5:3b")
	viper.SetDefault("models.batch", "qwen2.5:3b")
	viper.SetDefault("models.final", "qwen2.5:1.5b")

	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.max_total_timeout", "0s")

	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.vector_size", 1024)
	viper.SetDefault("qdrant.distance", "Cosine")
	viper.SetDefault("qdrant.collections", map[string]string{
		"cs":      "cs_docs",
		"general": "general_docs",
	})
	viper.SetDefault("voyage.model", "voyage-3")
	viper.SetDefault("voyage.cache_size", 512)

	viper.SetDefault("retrieval.per_collection_k", 3)
	viper.SetDefault("retrieval.total_cap", 5)
	viper.SetDefault("retrieval.speculative_k", 5)
	viper.SetDefault("retrieval.timeout", "15s")

	viper.SetDefault("prompt.max_context_chars", 6000)

	viper.SetDefault("summarizer.collection_key", "cs")
	viper.SetDefault("summarizer.max_chars_per_batch", 2500)

	viper.SetDefault("ingest.dirs", map[string]string{
		"cs":      "data/cs_notes",
		"general": "data/general",
	})
	viper.SetDefault("ingest.chunk_size", 800)
	viper.SetDefault("ingest.chunk_overlap", 200)
	viper.SetDefault("ingest.batch_size", 64)

	viper.SetDefault("orchestrator.mode", "concurrent")

	viper.SetDefault("gmail.token_path", "token.json")
	viper.SetDefault("gmail.user_id", "me")
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig checks the provider chain. Disabled entries are ignored.
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
