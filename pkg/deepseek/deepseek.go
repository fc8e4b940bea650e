package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type deepseekImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

var _ IDeepSeek = (*deepseekImpl)(nil)

// New creates a new DeepSeek client.
func New(cfg Config) (IDeepSeek, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &deepseekImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}, nil
}

// GenerateContent sends a generation request to the DeepSeek API
func (d *deepseekImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(d.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("deepseek: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		d.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("deepseek: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+d.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("deepseek: API error %d: %s", resp.StatusCode, string(raw))
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return nil, fmt.Errorf("deepseek: failed to decode response: %w", err)
	}

	return transformResponse(&openAIResp), nil
}

// Model returns the model being used
func (d *deepseekImpl) Model() string {
	return d.model
}

func (d *deepseekImpl) transformRequest(req *Request) *openAIRequest {
	out := &openAIRequest{
		Model:       d.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openAIMessage, 0, len(req.Messages)+1),
	}

	if req.System != "" {
		out.Messages = append(out.Messages, openAIMessage{Role: "system", Content: req.System})
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		out.Messages = append(out.Messages, openAIMessage{Role: role, Content: msg.Text})
	}

	return out
}

func transformResponse(resp *openAIResponse) *Response {
	out := &Response{
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out
}
