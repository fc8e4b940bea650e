package retrieval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"studybuddy/internal/university"
)

type mockSearcher struct {
	mu         sync.Mutex
	searchFunc func(query string, k int) ([]Document, error)
	queries    []string
}

func (m *mockSearcher) SimilaritySearch(ctx context.Context, query string, k int) ([]Document, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()
	if m.searchFunc != nil {
		return m.searchFunc(query, k)
	}
	return nil, nil
}

func doc(content string) Document {
	return Document{Content: content, Source: "test.md"}
}

func TestRelevantDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("Generic path without institution", func(t *testing.T) {
		s := &mockSearcher{searchFunc: func(query string, k int) ([]Document, error) {
			return []Document{doc("a"), doc("b")}, nil
		}}
		r := NewRouter(&mockLogger{}, s)

		docs, detected := r.RelevantDocuments(ctx, "how do I get an istanbulkart", 5)
		if detected != "" {
			t.Errorf("unexpected institution: %s", detected)
		}
		if len(docs) != 2 {
			t.Errorf("expected 2 documents, got %d", len(docs))
		}
		if len(s.queries) != 1 {
			t.Errorf("expected single generic search, got %d", len(s.queries))
		}
	})

	t.Run("Institution fans out three variants", func(t *testing.T) {
		s := &mockSearcher{searchFunc: func(query string, k int) ([]Document, error) {
			return []Document{doc("content for " + query)}, nil
		}}
		r := NewRouter(&mockLogger{}, s)

		docs, detected := r.RelevantDocuments(ctx, "sabanci deadlines", 3)
		if detected != university.Sabanci {
			t.Errorf("expected sabanci, got %s", detected)
		}
		if len(docs) != 3 {
			t.Errorf("expected 3 documents, got %d", len(docs))
		}
		if len(s.queries) != 3 {
			t.Errorf("expected 3 variant searches, got %d: %v", len(s.queries), s.queries)
		}
		for _, q := range s.queries {
			if !strings.Contains(q, "sabanci") {
				t.Errorf("variant missing institution: %q", q)
			}
		}
	})

	t.Run("Top-up with generic search when variants fall short", func(t *testing.T) {
		// variant searches run with k/3, the top-up with the full k
		s := &mockSearcher{searchFunc: func(query string, k int) ([]Document, error) {
			if k == 2 {
				// every variant returns the same single chunk
				return []Document{doc("only chunk")}, nil
			}
			return []Document{doc("only chunk"), doc("generic one"), doc("generic two")}, nil
		}}
		r := NewRouter(&mockLogger{}, s)

		docs, _ := r.RelevantDocuments(ctx, "sabanci deadlines", 6)
		if len(docs) != 3 {
			t.Errorf("expected 3 unique documents after top-up, got %d", len(docs))
		}
		seen := map[string]bool{}
		for _, d := range docs {
			if seen[d.Content] {
				t.Errorf("duplicate content after dedup: %q", d.Content)
			}
			seen[d.Content] = true
		}
	})

	t.Run("Dedup keys on content prefix", func(t *testing.T) {
		long := strings.Repeat("x", 100)
		s := &mockSearcher{searchFunc: func(query string, k int) ([]Document, error) {
			return []Document{doc(long + " tail one"), doc(long + " tail two")}, nil
		}}
		r := NewRouter(&mockLogger{}, s)

		docs, _ := r.RelevantDocuments(ctx, "generic question", 5)
		if len(docs) != 1 {
			t.Errorf("documents sharing a 100-char prefix should collapse, got %d", len(docs))
		}
	})

	t.Run("Search failure degrades to empty set", func(t *testing.T) {
		s := &mockSearcher{searchFunc: func(query string, k int) ([]Document, error) {
			return nil, errors.New("index offline")
		}}
		r := NewRouter(&mockLogger{}, s)

		docs, _ := r.RelevantDocuments(ctx, "generic question", 5)
		if len(docs) != 0 {
			t.Errorf("expected empty result on failure, got %d", len(docs))
		}
	})

	t.Run("Result capped at k", func(t *testing.T) {
		s := &mockSearcher{searchFunc: func(query string, k int) ([]Document, error) {
			var docs []Document
			for i := 0; i < k+5; i++ {
				docs = append(docs, doc(fmt.Sprintf("%s chunk %d", query, i)))
			}
			return docs, nil
		}}
		r := NewRouter(&mockLogger{}, s)

		docs, _ := r.RelevantDocuments(ctx, "generic question", 4)
		if len(docs) != 4 {
			t.Errorf("expected 4 documents, got %d", len(docs))
		}
	})
}
