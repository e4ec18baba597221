package llmprovider

import (
	"context"
	"errors"
	"testing"

	"rag-assistant/config"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func okResponse(provider, text string) *Response {
	return &Response{Text: text, ProviderName: provider, ModelName: provider + "-model", Usage: &Usage{}}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: okResponse("primary", "hello")}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("secondary", "hi")}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), &Request{Prompt: "Hello"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text != "hello" {
		t.Errorf("Expected primary text, got: %s", resp.Text)
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider not to be called, got: %d", secondary.callCount)
	}
}

func TestGenerateContent_FallbackIsSingleAttemptPerProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("secondary", "hi")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true}, logger)

	resp, err := manager.GenerateContent(context.Background(), &Request{Prompt: "Hello"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateValidated_RejectedResponseFallsThrough(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", response: okResponse("primary", "garbage")}
	secondary := &mockProvider{name: "secondary", model: "m", response: okResponse("secondary", "{}")}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true}, &mockLogger{})

	validate := func(resp *Response) error {
		if resp.Text != "{}" {
			return errors.New("not json")
		}
		return nil
	}

	resp, err := manager.GenerateValidated(context.Background(), &Request{Prompt: "x"}, validate)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected secondary to answer, got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 || secondary.callCount != 1 {
		t.Errorf("Expected one call each, got primary=%d secondary=%d", primary.callCount, secondary.callCount)
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "m", shouldFail: true}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{Prompt: "x"})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "m", response: okResponse("secondary", "hi")}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), &Request{Prompt: "x"}); err == nil {
		t.Fatal("Expected error when fallback is disabled")
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider not to be called, got: %d", secondary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, nil, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{Prompt: "x"})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestInitializeProviders_PriorityOrdering(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "ollama", Enabled: true, Priority: 2, Model: "qwen2.5:1.5b", Timeout: "90s"},
			{Name: "groq", Enabled: true, Priority: 1, APIKey: "k", Model: "llama3-70b-8192", Timeout: "20s"},
		},
	}

	providers, err := InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got: %d", len(providers))
	}
	if providers[0].Name() != "groq" || providers[1].Name() != "ollama" {
		t.Errorf("Unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
	}
	if providers[1].Model() != "qwen2.5:1.5b" {
		t.Errorf("Expected ollama model qwen2.5:1.5b, got: %s", providers[1].Model())
	}
}

func TestInitializeProviders_SkipsBrokenProvider(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "groq", Enabled: true, Priority: 1, Model: "llama3-70b-8192"},
			{Name: "ollama", Enabled: true, Priority: 2, Model: "qwen2.5:1.5b"},
			{Name: "gemini", Enabled: false, Priority: 3, Model: "x"},
		},
	}

	providers, err := InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "ollama" {
		t.Fatalf("Expected only ollama, got: %d providers", len(providers))
	}

	if _, err := InitializeProviders(&config.LLMConfig{}); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}
