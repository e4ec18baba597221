package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

type geminiImpl struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(cfg Config) *geminiImpl {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		httpClient: cfg.HTTPClient,
	}
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// Complete sends a single-turn generation request.
func (g *geminiImpl) Complete(ctx context.Context, prompt string, cfg *GenerationConfig) (*Completion, error) {
	req := GenerateRequest{
		Contents:         []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig: cfg,
	}

	raw, err := g.callAPI(ctx, req)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	for _, part := range gjson.GetBytes(raw, "candidates.0.content.parts").Array() {
		sb.WriteString(part.Get("text").String())
	}
	if sb.Len() == 0 {
		return nil, ErrEmptyResponse
	}

	usage := gjson.GetBytes(raw, "usageMetadata")
	return &Completion{
		Text: sb.String(),
		Usage: Usage{
			PromptTokens:     int(usage.Get("promptTokenCount").Int()),
			CandidatesTokens: int(usage.Get("candidatesTokenCount").Int()),
			TotalTokens:      int(usage.Get("totalTokenCount").Int()),
		},
	}, nil
}

// callAPI sends a request to the Gemini API and returns the raw body.
func (g *geminiImpl) callAPI(ctx context.Context, req GenerateRequest) ([]byte, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", g.apiURL, g.model)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("gemini: failed to decode response: invalid JSON")
	}
	return raw, nil
}
