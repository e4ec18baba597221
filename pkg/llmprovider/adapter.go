package llmprovider

import (
	"context"
	"fmt"

	"rag-assistant/pkg/gemini"
	"rag-assistant/pkg/groq"
	"rag-assistant/pkg/ollama"
)

// OllamaAdapter adapts pkg/ollama to the Provider interface with a fixed model.
type OllamaAdapter struct {
	client ollama.IOllama
	model  string
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama, model string) *OllamaAdapter {
	return &OllamaAdapter{client: client, model: model}
}

// GenerateContent implements Provider interface
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	text, err := a.client.Generate(ctx, req.Prompt, a.model)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         text,
		ProviderName: ProviderOllama,
		ModelName:    a.model,
		Usage:        &Usage{},
	}, nil
}

// Name returns provider name
func (a *OllamaAdapter) Name() string {
	return ProviderOllama
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.model
}

// GroqAdapter adapts pkg/groq to the Provider interface. The same client
// serves any OpenAI-compatible chat endpoint, so name is configurable.
type GroqAdapter struct {
	client groq.IGroq
	name   string
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client, name: ProviderGroq}
}

// NewChatAdapter wraps an OpenAI-compatible client under another provider name.
func NewChatAdapter(name string, client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	temperature := req.Temperature
	if temperature == 0 {
		temperature = groq.DefaultTemperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = groq.DefaultMaxTokens
	}

	resp, err := a.client.ChatCompletion(ctx, &groq.Request{
		Messages:    []groq.Message{{Role: "user", Content: req.Prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: response has no choices", a.name)
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *GroqAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	out, err := a.client.Complete(ctx, req.Prompt, &gemini.GenerationConfig{
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         out.Text,
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  out.Usage.PromptTokens,
			OutputTokens: out.Usage.CandidatesTokens,
			TotalTokens:  out.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns the model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
