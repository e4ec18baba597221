package ollama

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

// Client implements IOllama over the Ollama HTTP API.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ IOllama = (*Client)(nil)

// New creates a new Ollama client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Generate sends a non-streaming generate request and returns the "response" field.
// A single attempt is made; errors wrap ErrConnection, ErrStatus or ErrMalformedResponse.
func (c *Client) Generate(ctx context.Context, prompt, model string) (string, error) {
	body, err := json.Marshal(GenerateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrConnection, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d: %s", ErrStatus, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if !gjson.ValidBytes(respBody) {
		return "", fmt.Errorf("%w: body is not JSON", ErrMalformedResponse)
	}
	field := gjson.GetBytes(respBody, "response")
	if field.Type != gjson.String {
		return "", fmt.Errorf("%w: missing \"response\" field", ErrMalformedResponse)
	}

	return field.String(), nil
}
