package voyage

import "net/http"

const (
	// Endpoint is the Voyage AI embeddings endpoint.
	Endpoint = "https://api.voyageai.com/v1/embeddings"

	// DefaultModel is the default embedding model.
	DefaultModel = "voyage-3"
)

// Client is the Voyage AI embeddings client.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// Request is the embeddings API request body.
type Request struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

// Response is the embeddings API response body.
type Response struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}
