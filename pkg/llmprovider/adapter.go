package llmprovider

import (
	"context"

	"studybuddy/pkg/deepseek"
	"studybuddy/pkg/gemini"
	"studybuddy/pkg/qwen"
)

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		System:      req.System,
		Messages:    make([]gemini.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for i, msg := range req.Messages {
		geminiReq.Messages[i] = gemini.Message{Role: msg.Role, Text: msg.Text}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string { return "gemini" }

// Model returns the model name
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// QwenAdapter adapts pkg/qwen to the llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		System:      req.System,
		Messages:    make([]qwen.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for i, msg := range req.Messages {
		qwenReq.Messages[i] = qwen.Message{Role: msg.Role, Text: msg.Text}
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *QwenAdapter) Name() string { return "qwen" }

// Model returns the model name
func (a *QwenAdapter) Model() string { return a.client.Model() }

// DeepSeekAdapter adapts pkg/deepseek to the llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		System:      req.System,
		Messages:    make([]deepseek.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for i, msg := range req.Messages {
		dsReq.Messages[i] = deepseek.Message{Role: msg.Role, Text: msg.Text}
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string { return "deepseek" }

// Model returns the model name
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }
