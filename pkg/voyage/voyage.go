package voyage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// New creates a new Voyage client. model may be empty for the default.
func New(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("voyage: API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{},
	}, nil
}

var _ IVoyage = (*Client)(nil)

// Embed generates embeddings for the given texts.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("voyage: at least one text is required")
	}

	body, err := json.Marshal(Request{Input: texts, Model: c.model})
	if err != nil {
		return nil, fmt.Errorf("voyage: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, Endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("voyage: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("voyage: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("voyage: API error %d: %s", resp.StatusCode, string(raw))
	}

	var parsed Response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("voyage: failed to decode response: %w", err)
	}

	embeddings := make([][]float32, len(parsed.Data))
	for i, item := range parsed.Data {
		embeddings[i] = item.Embedding
	}
	return embeddings, nil
}
