package language

import (
	"context"
	"errors"
	"testing"
	"time"

	"studybuddy/pkg/cache"
)

type mockTranslator struct {
	translateFunc func(text, sourceLang, targetLang string) (string, error)
	calls         int
}

func (m *mockTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	m.calls++
	if m.translateFunc != nil {
		return m.translateFunc(text, sourceLang, targetLang)
	}
	return text, nil
}

func TestToWorking(t *testing.T) {
	ctx := context.Background()

	t.Run("Working language passes through", func(t *testing.T) {
		tr := &mockTranslator{}
		b := NewBridge(&mockLogger{}, tr, cache.New(time.Hour))

		got, lang := b.ToWorking(ctx, "hello there", "en")
		if got != "hello there" || lang != "en" {
			t.Errorf("unexpected result: %q %q", got, lang)
		}
		if tr.calls != 0 {
			t.Errorf("translator should not be called, got %d calls", tr.calls)
		}
	})

	t.Run("Auto source resolves via detection", func(t *testing.T) {
		tr := &mockTranslator{translateFunc: func(text, src, dst string) (string, error) {
			return "hello, I need help", nil
		}}
		b := NewBridge(&mockLogger{}, tr, cache.New(time.Hour))

		got, lang := b.ToWorking(ctx, "hola, necesito ayuda", "auto")
		if got != "hello, I need help" {
			t.Errorf("unexpected translation: %q", got)
		}
		if lang != "es" {
			t.Errorf("expected resolved source es, got %q", lang)
		}
	})

	t.Run("Second call is served from cache", func(t *testing.T) {
		tr := &mockTranslator{translateFunc: func(text, src, dst string) (string, error) {
			return "good morning", nil
		}}
		c := cache.New(time.Hour)
		b := NewBridge(&mockLogger{}, tr, c)

		b.ToWorking(ctx, "günaydın efendim", "tr")
		got, lang := b.ToWorking(ctx, "günaydın efendim", "tr")
		if got != "good morning" || lang != "tr" {
			t.Errorf("unexpected cached result: %q %q", got, lang)
		}
		if tr.calls != 1 {
			t.Errorf("expected 1 translator call, got %d", tr.calls)
		}
		if stats := c.Stats(); stats.Hits != 1 {
			t.Errorf("expected 1 cache hit, got %d", stats.Hits)
		}
	})

	t.Run("Unchanged result retries with auto source", func(t *testing.T) {
		tr := &mockTranslator{translateFunc: func(text, src, dst string) (string, error) {
			if src == "auto" {
				return "translated at last", nil
			}
			return text, nil
		}}
		b := NewBridge(&mockLogger{}, tr, cache.New(time.Hour))

		got, _ := b.ToWorking(ctx, "merhaba dünya", "tr")
		if got != "translated at last" {
			t.Errorf("expected auto retry result, got %q", got)
		}
		if tr.calls != 2 {
			t.Errorf("expected 2 translator calls, got %d", tr.calls)
		}
	})

	t.Run("Persistent failure degrades to pass-through", func(t *testing.T) {
		tr := &mockTranslator{translateFunc: func(text, src, dst string) (string, error) {
			return "", errors.New("provider down")
		}}
		b := NewBridge(&mockLogger{}, tr, cache.New(time.Hour))

		got, lang := b.ToWorking(ctx, "merhaba dünya", "tr")
		if got != "merhaba dünya" || lang != "tr" {
			t.Errorf("expected pass-through, got %q %q", got, lang)
		}
	})
}

func TestFromWorking(t *testing.T) {
	ctx := context.Background()

	t.Run("Working language passes through", func(t *testing.T) {
		tr := &mockTranslator{}
		b := NewBridge(&mockLogger{}, tr, cache.New(time.Hour))

		if got := b.FromWorking(ctx, "hello", "en"); got != "hello" {
			t.Errorf("unexpected result: %q", got)
		}
		if tr.calls != 0 {
			t.Errorf("translator should not be called")
		}
	})

	t.Run("Translates and caches", func(t *testing.T) {
		tr := &mockTranslator{translateFunc: func(text, src, dst string) (string, error) {
			return "hola", nil
		}}
		c := cache.New(time.Hour)
		b := NewBridge(&mockLogger{}, tr, c)

		b.FromWorking(ctx, "hello", "es")
		got := b.FromWorking(ctx, "hello", "es")
		if got != "hola" {
			t.Errorf("unexpected cached result: %q", got)
		}
		if tr.calls != 1 {
			t.Errorf("expected 1 translator call, got %d", tr.calls)
		}
	})

	t.Run("Empty result degrades to pass-through", func(t *testing.T) {
		tr := &mockTranslator{translateFunc: func(text, src, dst string) (string, error) {
			return "  ", nil
		}}
		b := NewBridge(&mockLogger{}, tr, cache.New(time.Hour))

		if got := b.FromWorking(ctx, "hello", "es"); got != "hello" {
			t.Errorf("expected pass-through, got %q", got)
		}
	})
}
