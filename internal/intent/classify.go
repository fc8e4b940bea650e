package intent

import (
	"context"
	"fmt"
	"strings"

	"studybuddy/pkg/llmprovider"
	pkgLog "studybuddy/pkg/log"
)

// Router classifies working-language messages into intents using a hybrid of
// zero-shot and few-shot prompting, then applies deterministic corrections.
type Router struct {
	l       pkgLog.Logger
	invoker llmprovider.Invoker
}

// NewRouter creates an intent router backed by the given model invoker.
func NewRouter(l pkgLog.Logger, invoker llmprovider.Invoker) *Router {
	return &Router{l: l, invoker: invoker}
}

// Classify returns the raw classifier intent for text, before corrections.
// Short or high-confidence simple inputs take the zero-shot path; everything
// else takes the few-shot path. Classifier failure resolves to General.
func (r *Router) Classify(ctx context.Context, text string, lastIntent Intent) Intent {
	if isSimple(text) {
		r.l.Debugf(ctx, "intent.Classify: zero-shot path for %.40q", text)
		return r.zeroShot(ctx, text)
	}
	r.l.Debugf(ctx, "intent.Classify: few-shot path for %.40q", text)
	return r.fewShot(ctx, text, lastIntent)
}

// Resolve runs classification and the full correction sequence.
func (r *Router) Resolve(ctx context.Context, text string, lastIntent Intent) Intent {
	classified := r.Classify(ctx, text, lastIntent)
	corrected, fired := Correct(classified, lastIntent, text)
	if len(fired) > 0 {
		r.l.Debugf(ctx, "intent.Resolve: %s -> %s (rules %s)", classified, corrected, strings.Join(fired, ","))
	}
	return corrected
}

func (r *Router) zeroShot(ctx context.Context, text string) Intent {
	answer, err := r.invoker.Invoke(ctx, fmt.Sprintf(zeroShotPrompt, text))
	if err != nil {
		r.l.Warnf(ctx, "intent.zeroShot: classifier failed: %v", err)
		return General
	}
	return Parse(normalizeAnswer(answer))
}

func (r *Router) fewShot(ctx context.Context, text string, lastIntent Intent) Intent {
	last := string(lastIntent)
	if last == "" {
		last = "none"
	}
	answer, err := r.invoker.Invoke(ctx, fmt.Sprintf(fewShotPrompt, last, fewShotExamples, text))
	if err != nil {
		r.l.Warnf(ctx, "intent.fewShot: classifier failed: %v", err)
		return General
	}
	return Parse(normalizeAnswer(answer))
}

func isSimple(text string) bool {
	for _, re := range simplePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return len(strings.Fields(text)) <= maxSimpleTokens
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
