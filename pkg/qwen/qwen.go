package qwen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type qwenImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// GenerateContent sends a generation request to the Qwen API
func (q *qwenImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(q.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		q.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+q.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := q.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("qwen: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("qwen: API error %d: %s", resp.StatusCode, string(raw))
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return nil, fmt.Errorf("qwen: failed to decode response: %w", err)
	}

	return transformResponse(&openAIResp), nil
}

// Model returns the model being used
func (q *qwenImpl) Model() string {
	return q.model
}

func (q *qwenImpl) transformRequest(req *Request) *openAIRequest {
	out := &openAIRequest{
		Model:       q.model,
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
