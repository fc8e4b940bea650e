package retrieval

import (
	"context"
	"fmt"

	"studybuddy/pkg/qdrant"
	"studybuddy/pkg/voyage"
)

// Document is one retrieved chunk with its source identifier.
type Document struct {
	Content string
	Source  string
}

// Searcher is the similarity-search collaborator.
type Searcher interface {
	SimilaritySearch(ctx context.Context, query string, k int) ([]Document, error)
}

// VectorStore implements Searcher over an embeddings client and a Qdrant
// collection built offline by the index builder.
type VectorStore struct {
	embedder   voyage.IVoyage
	client     *qdrant.Client
	collection string
}

// NewVectorStore creates a vector store searcher.
func NewVectorStore(embedder voyage.IVoyage, client *qdrant.Client, collection string) *VectorStore {
	return &VectorStore{
		embedder:   embedder,
		client:     client,
		collection: collection,
	}
}

var _ Searcher = (*VectorStore)(nil)

// SimilaritySearch embeds the query and returns the k nearest chunks.
func (s *VectorStore) SimilaritySearch(ctx context.Context, query string, k int) ([]Document, error) {
	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedder returned no vectors")
	}

	points, err := s.client.Search(ctx, s.collection, qdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       k,
		WithPayload: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search collection: %w", err)
	}

	docs := make([]Document, 0, len(points))
	for _, p := range points {
		doc := Document{}
		if content, ok := p.Payload["content"].(string); ok {
			doc.Content = content
		}
		if source, ok := p.Payload["source"].(string); ok {
			doc.Source = source
		}
		if doc.Content == "" {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
