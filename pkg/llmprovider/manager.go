package llmprovider

import (
	"context"
	"fmt"
	"time"

	"rag-assistant/pkg/log"
)

// Manager walks providers in priority order. Each provider gets exactly one
// attempt; there is no retry.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	MaxTotalTimeout time.Duration // 0 means each provider relies on its own timeout
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{FallbackEnabled: true}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the chain in the order it is tried.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent returns the first successful response in the chain.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	return m.GenerateValidated(ctx, req, nil)
}

// GenerateValidated is GenerateContent where a response rejected by validate
// counts as a provider failure.
func (m *Manager) GenerateValidated(ctx context.Context, req *Request, validate Validator) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, ctx.Err())
		default:
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil && validate != nil {
			err = validate(resp)
		}
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	outputTokens := 0
	if resp.Usage != nil {
		outputTokens = resp.Usage.OutputTokens
	}
	m.logger.Debugf(ctx, "LLM generation successful: provider=%s model=%s output_tokens=%d",
		provider.Name(), provider.Model(), outputTokens)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
