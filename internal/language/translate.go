package language

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"studybuddy/pkg/cache"
)

const (
	opToWorking   = "translate_to_en"
	opFromWorking = "translate_from_en"

	// autoSource asks the provider to infer the source language itself.
	autoSource = "auto"
)

// cachedTranslation is the stored value for to-working translations, keeping
// the resolved source language alongside the text.
type cachedTranslation struct {
	Translated string `json:"translated"`
	SourceLang string `json:"source_lang"`
}

// ToWorking translates text into the working language and returns the
// translated text plus the resolved source language. Translation failure is
// never an error: the original text passes through unmodified.
func (b *Bridge) ToWorking(ctx context.Context, text, sourceLang string) (string, string) {
	if sourceLang == WorkingLanguage {
		return text, WorkingLanguage
	}
	if sourceLang == autoSource || sourceLang == "" {
		sourceLang = Detect(text)
		if sourceLang == WorkingLanguage {
			return text, WorkingLanguage
		}
	}

	key := b.cache.Key(text, opToWorking, map[string]string{"source_lang": sourceLang})
	if raw, ok := b.cache.Get(cache.NamespaceTranslation, key); ok {
		var cached cachedTranslation
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			b.l.Debugf(ctx, "language.ToWorking: cache hit for %.30q", text)
			return cached.Translated, cached.SourceLang
		}
	}

	start := time.Now()
	translated, err := b.translator.Translate(ctx, text, sourceLang, WorkingLanguage)
	if err != nil || !usable(translated, text) {
		// Provider may reject an explicit source language it disagrees with;
		// one retry with automatic inference.
		translated, err = b.translator.Translate(ctx, text, autoSource, WorkingLanguage)
	}
	if err != nil || strings.TrimSpace(translated) == "" {
		b.l.Warnf(ctx, "language.ToWorking: translation failed, passing through: %v", err)
		return text, sourceLang
	}
	b.cache.RecordRemoteCall(time.Since(start))

	if raw, err := json.Marshal(cachedTranslation{Translated: translated, SourceLang: sourceLang}); err == nil {
		b.cache.Set(cache.NamespaceTranslation, key, string(raw))
	}
	return translated, sourceLang
}

// FromWorking translates working-language text into targetLang, passing the
// text through unchanged on failure.
func (b *Bridge) FromWorking(ctx context.Context, text, targetLang string) string {
	if targetLang == WorkingLanguage || targetLang == "" {
		return text
	}

	key := b.cache.Key(text, opFromWorking, map[string]string{"target_lang": targetLang})
	if raw, ok := b.cache.Get(cache.NamespaceTranslation, key); ok {
		b.l.Debugf(ctx, "language.FromWorking: cache hit for %.30q", text)
		return raw
	}

	start := time.Now()
	translated, err := b.translator.Translate(ctx, text, WorkingLanguage, targetLang)
	if err != nil || strings.TrimSpace(translated) == "" {
		b.l.Warnf(ctx, "language.FromWorking: translation failed, passing through: %v", err)
		return text
	}
	b.cache.RecordRemoteCall(time.Since(start))
	b.cache.Set(cache.NamespaceTranslation, key, translated)
	return translated
}

// usable reports whether a translation result is worth keeping: non-empty and
// actually different from the input.
func usable(translated, original string) bool {
	trimmed := strings.TrimSpace(translated)
	return trimmed != "" && !strings.EqualFold(trimmed, strings.TrimSpace(original))
}
