// scripts/build-index/main.go
//
// Builds the document index the retrieval router searches at runtime: reads
// every .txt/.md file under a directory, splits it into overlapping chunks,
// embeds the chunks with Voyage AI, and upserts them into Qdrant.
//
// Usage:
//   go run scripts/build-index/main.go <docs-dir>

package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"studybuddy/config"
	"studybuddy/pkg/log"
	pkgQdrant "studybuddy/pkg/qdrant"
	"studybuddy/pkg/voyage"
)

const (
	chunkSize    = 800
	chunkOverlap = 200
	batchSize    = 32
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/build-index/main.go <docs-dir>")
		os.Exit(1)
	}
	docsDir := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})
	ctx := context.Background()

	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL, "")
	embedder, err := voyage.New(cfg.Voyage.APIKey, cfg.Voyage.Model)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}

	if err := qdrantClient.EnsureCollection(ctx, cfg.Qdrant.CollectionName, pkgQdrant.VectorConfig{
		Size:     cfg.Qdrant.VectorSize,
		Distance: "Cosine",
	}); err != nil {
		logger.Fatalf(ctx, "Failed to ensure collection: %v", err)
	}

	type chunk struct {
		content string
		source  string
	}
	var chunks []chunk

	err = filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".txt" && ext != ".md" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		source := filepath.Base(path)
		for _, c := range splitText(string(data), chunkSize, chunkOverlap) {
			chunks = append(chunks, chunk{content: c, source: source})
		}
		logger.Infof(ctx, "Read %s", source)
		return nil
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to walk %s: %v", docsDir, err)
	}

	logger.Infof(ctx, "Indexing %d chunks from %s", len(chunks), docsDir)

	indexed := 0
	for start := 0; start < len(chunks); start += batchSize {
		end := start + batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.content
		}
		vectors, err := embedder.Embed(ctx, texts)
		if err != nil {
			logger.Errorf(ctx, "Failed to embed batch at %d: %v", start, err)
			continue
		}
		if len(vectors) != len(batch) {
			logger.Errorf(ctx, "Embedding count mismatch at %d: got %d, want %d", start, len(vectors), len(batch))
			continue
		}

		points := make([]pkgQdrant.Point, len(batch))
		for i, c := range batch {
			points[i] = pkgQdrant.Point{
				ID:     uuid.NewString(),
				Vector: vectors[i],
				Payload: map[string]any{
					"content": c.content,
					"source":  c.source,
				},
			}
		}
		if err := qdrantClient.Upsert(ctx, cfg.Qdrant.CollectionName, points); err != nil {
			logger.Errorf(ctx, "Failed to upsert batch at %d: %v", start, err)
			continue
		}
		indexed += len(batch)
		logger.Infof(ctx, "Indexed %d/%d chunks", indexed, len(chunks))
	}

	logger.Infof(ctx, "Index build complete! %d/%d chunks indexed.", indexed, len(chunks))
}

// splitText splits text into chunks of at most size runes with the given
// overlap, cutting on whitespace where possible.
func splitText(text string, size, overlap int) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}

	var out []string
	step := size - overlap
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		cut := end
		// avoid splitting mid-word unless the chunk has no spaces at all
		if end < len(runes) {
			for cut > start && runes[cut-1] != ' ' && runes[cut-1] != '\n' {
				cut--
			}
			if cut == start {
				cut = end
			}
		}
		piece := strings.TrimSpace(string(runes[start:cut]))
		if piece != "" {
			out = append(out, piece)
		}
		if cut >= len(runes) {
			break
		}
	}
	return out
}
