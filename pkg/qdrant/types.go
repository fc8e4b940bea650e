package qdrant

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`     // embedding dimension
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

type createCollectionRequest struct {
	Vectors VectorConfig `json:"vectors"`
}

// Point is a vector with payload (metadata).
// Qdrant requires ID to be a UUID string or uint64, not an arbitrary string.
type Point struct {
	ID      any            `json:"id"`
	Vector  []float32      `json:"vector"`
	Payload map[string]any `json:"payload"`
}

type upsertPointsRequest struct {
	Points []Point `json:"points"`
}

// SearchRequest is the request for semantic search.
type SearchRequest struct {
	Vector      []float32      `json:"vector"`
	Limit       int            `json:"limit"`
	WithPayload bool           `json:"with_payload"`
	Filter      map[string]any `json:"filter,omitempty"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      any            `json:"id"`
	Score   float64        `json:"score"`
	Payload map[string]any `json:"payload"`
}
