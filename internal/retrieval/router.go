package retrieval

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sync"

	"studybuddy/internal/university"
	pkgLog "studybuddy/pkg/log"
)

// DefaultK is the document count requested when the caller has no preference.
const DefaultK = 5

// Router issues university-scoped similarity searches and merges the results.
type Router struct {
	l        pkgLog.Logger
	searcher Searcher
}

// NewRouter creates a retrieval router over the given searcher.
func NewRouter(l pkgLog.Logger, searcher Searcher) *Router {
	return &Router{l: l, searcher: searcher}
}

// RelevantDocuments returns up to k unique documents for the query, plus the
// institution the query names, if any. With an institution detected, three
// targeted query variants run concurrently and a generic search tops up the
// merged set; without one, a single generic search runs.
func (r *Router) RelevantDocuments(ctx context.Context, query string, k int) ([]Document, university.University) {
	if k <= 0 {
		k = DefaultK
	}

	detected := university.Detect(query)
	if detected == "" {
		docs, err := r.searcher.SimilaritySearch(ctx, query, k)
		if err != nil {
			r.l.Warnf(ctx, "retrieval: generic search failed: %v", err)
			return nil, ""
		}
		return dedupeDocs(docs, k), ""
	}

	variants := []string{
		fmt.Sprintf("%s %s", query, detected),
		fmt.Sprintf("%s %s", detected, query),
		fmt.Sprintf("%s university %s", detected, query),
	}
	perVariant := k / len(variants)
	if perVariant < 1 {
		perVariant = 1
	}

	// The variants are independent and order-insensitive before dedup, so
	// they fan out concurrently.
	results := make([][]Document, len(variants))
	var wg sync.WaitGroup
	for i, variant := range variants {
		wg.Add(1)
		go func(i int, variant string) {
			defer wg.Done()
			docs, err := r.searcher.SimilaritySearch(ctx, variant, perVariant)
			if err != nil {
				r.l.Warnf(ctx, "retrieval: variant search failed for %q: %v", variant, err)
				return
			}
			results[i] = docs
		}(i, variant)
	}
	wg.Wait()

	var merged []Document
	for _, docs := range results {
		merged = append(merged, docs...)
	}
	unique := dedupeDocs(merged, k)

	if len(unique) < k {
		generic, err := r.searcher.SimilaritySearch(ctx, query, k)
		if err != nil {
			r.l.Warnf(ctx, "retrieval: top-up search failed: %v", err)
		} else {
			unique = dedupeDocs(append(unique, generic...), k)
		}
	}

	r.l.Debugf(ctx, "retrieval: %d documents for %s query", len(unique), detected)
	return unique, detected
}

// dedupeDocs drops documents whose content prefix was already seen, keeping
// order, capped at limit.
func dedupeDocs(docs []Document, limit int) []Document {
	seen := make(map[string]struct{}, len(docs))
	out := make([]Document, 0, len(docs))
	for _, doc := range docs {
		h := prefixHash(doc.Content)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, doc)
		if len(out) == limit {
			break
		}
	}
	return out
}

func prefixHash(content string) string {
	runes := []rune(content)
	if len(runes) > 100 {
		runes = runes[:100]
	}
	sum := md5.Sum([]byte(string(runes)))
	return hex.EncodeToString(sum[:])
}
