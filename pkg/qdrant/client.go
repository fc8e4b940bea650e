package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the Qdrant HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Qdrant client. apiKey may be empty for unsecured
// deployments.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// EnsureCollection creates the collection if it does not already exist.
func (c *Client) EnsureCollection(ctx context.Context, collection string, vectors VectorConfig) error {
	status, _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/collections/%s", collection), nil)
	if err != nil {
		return err
	}
	if status == http.StatusOK {
		return nil
	}

	body := createCollectionRequest{Vectors: vectors}
	status, raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/collections/%s", collection), body)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("qdrant: create collection error %d: %s", status, raw)
	}
	return nil
}

// Upsert inserts or updates points in a collection.
func (c *Client) Upsert(ctx context.Context, collection string, points []Point) error {
	body := upsertPointsRequest{Points: points}
	status, raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/collections/%s/points", collection), body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("qdrant: upsert error %d: %s", status, raw)
	}
	return nil
}

// Search performs vector similarity search in a collection.
func (c *Client) Search(ctx context.Context, collection string, req SearchRequest) ([]ScoredPoint, error) {
	status, raw, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/collections/%s/points/search", collection), req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("qdrant: search error %d: %s", status, raw)
	}

	var result SearchResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("qdrant: failed to decode search response: %w", err)
	}
	return result.Result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("qdrant: failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("qdrant: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("qdrant: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("qdrant: failed to read response: %w", err)
	}
	return resp.StatusCode, raw, nil
}
