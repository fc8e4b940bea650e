package translate

import "context"

// ITranslator defines the interface for the external translation provider.
// Implementations are safe for concurrent use.
type ITranslator interface {
	// Translate translates text from sourceLang to targetLang. sourceLang may
	// be "auto" to let the provider infer it. The provider may return the
	// input unchanged; callers decide whether that warrants a retry.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
