package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"studybuddy/pkg/cache"
)

func TestKey(t *testing.T) {
	c := cache.New(0)

	t.Run("Parameter order does not matter", func(t *testing.T) {
		a := c.Key("hello", "translate", map[string]string{"a": "1", "b": "2"})
		b := c.Key("hello", "translate", map[string]string{"b": "2", "a": "1"})
		if a != b {
			t.Errorf("keys differ: %s vs %s", a, b)
		}
	})

	t.Run("Text is case and whitespace normalized", func(t *testing.T) {
		a := c.Key("  Hello World ", "translate", nil)
		b := c.Key("hello world", "translate", nil)
		if a != b {
			t.Errorf("keys differ: %s vs %s", a, b)
		}
	})

	t.Run("Operation distinguishes keys", func(t *testing.T) {
		a := c.Key("hello", "translate_to_en", nil)
		b := c.Key("hello", "translate_from_en", nil)
		if a == b {
			t.Error("different operations must not collide")
		}
	})
}

func TestGetSet(t *testing.T) {
	c := cache.New(time.Hour)

	key := c.Key("hola", "translate_to_en", map[string]string{"source_lang": "es"})

	if _, ok := c.Get(cache.NamespaceTranslation, key); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	c.Set(cache.NamespaceTranslation, key, "hello")
	got, ok := c.Get(cache.NamespaceTranslation, key)
	if !ok || got != "hello" {
		t.Fatalf("expected hit with %q, got %q %v", "hello", got, ok)
	}

	// Namespaces are isolated stores
	if _, ok := c.Get(cache.NamespaceResponse, key); ok {
		t.Error("value must not leak across namespaces")
	}

	stats := c.Stats()
	if stats.Hits != 1 {
		t.Errorf("expected 1 hit, got %d", stats.Hits)
	}
	if stats.Misses != 2 {
		t.Errorf("expected 2 misses, got %d", stats.Misses)
	}
}

func TestExpiry(t *testing.T) {
	c := cache.New(50 * time.Millisecond)
	key := c.Key("hola", "translate_to_en", nil)

	c.Set(cache.NamespaceTranslation, key, "hello")
	if _, ok := c.Get(cache.NamespaceTranslation, key); !ok {
		t.Fatal("expected hit before expiry")
	}

	time.Sleep(80 * time.Millisecond)
	if _, ok := c.Get(cache.NamespaceTranslation, key); ok {
		t.Fatal("expected miss after expiry")
	}
}

func TestStatsAndClear(t *testing.T) {
	c := cache.New(time.Hour)

	c.RecordRemoteCall(200 * time.Millisecond)
	c.RecordRemoteCall(300 * time.Millisecond)

	stats := c.Stats()
	if stats.CallsSaved != 2 {
		t.Errorf("expected 2 calls saved, got %d", stats.CallsSaved)
	}
	if stats.TimeSaved != 500*time.Millisecond {
		t.Errorf("expected 500ms saved, got %v", stats.TimeSaved)
	}

	key := c.Key("x", "op", nil)
	c.Set(cache.NamespaceTranslation, key, "y")
	c.Clear()

	if _, ok := c.Get(cache.NamespaceTranslation, key); ok {
		t.Error("expected empty cache after clear")
	}
	// the miss above is the only counted event after the reset
	stats = c.Stats()
	if stats.Hits != 0 || stats.Misses != 1 || stats.CallsSaved != 0 || stats.TimeSaved != 0 {
		t.Errorf("counters not reset: %+v", stats)
	}
}

func TestHitRate(t *testing.T) {
	s := cache.Stats{Hits: 3, Misses: 1}
	if got := s.HitRate(); got != 75 {
		t.Errorf("expected 75, got %v", got)
	}
	var empty cache.Stats
	if got := empty.HitRate(); got != 0 {
		t.Errorf("expected 0 for empty stats, got %v", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := cache.New(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := c.Key(fmt.Sprintf("text-%d", n%5), "op", nil)
			c.Set(cache.NamespaceTranslation, key, "v")
			c.Get(cache.NamespaceTranslation, key)
		}(i)
	}
	wg.Wait()

	stats := c.Stats()
	if stats.Hits+stats.Misses != 20 {
		t.Errorf("expected 20 counted gets, got %d", stats.Hits+stats.Misses)
	}
}
