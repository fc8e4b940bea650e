package language

import (
	"studybuddy/pkg/cache"
	pkgLog "studybuddy/pkg/log"
	"studybuddy/pkg/translate"
)

// Bridge moves text between the user's language and the working language,
// caching translations to avoid repeat provider calls.
type Bridge struct {
	l          pkgLog.Logger
	translator translate.ITranslator
	cache      *cache.Cache
}

// NewBridge creates a language bridge.
func NewBridge(l pkgLog.Logger, translator translate.ITranslator, c *cache.Cache) *Bridge {
	return &Bridge{
		l:          l,
		translator: translator,
		cache:      c,
	}
}
