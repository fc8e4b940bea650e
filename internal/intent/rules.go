package intent

import "strings"

// CorrectionRule is one pure post-classification override. Apply returns the
// corrected intent and whether the rule fired.
type CorrectionRule struct {
	Name  string
	Apply func(current, last Intent, text string) (Intent, bool)
}

// Rules is the fixed correction sequence. Rules run in order and chain: each
// rule sees the intent as corrected by the rules before it.
var Rules = []CorrectionRule{
	{
		// The profile pattern match is authoritative over the model, in
		// both directions.
		Name: "profile-pattern-authority",
		Apply: func(current, last Intent, text string) (Intent, bool) {
			isProfile := IsProfileQuery(text)
			if current == Profile && !isProfile {
				return General, true
			}
			if current != Profile && isProfile {
				return Profile, true
			}
			return current, false
		},
	},
	{
		Name: "document-keywords-over-events",
		Apply: func(current, last Intent, text string) (Intent, bool) {
			if current == Events && containsAny(strings.ToLower(text), documentKeywords) {
				return Document, true
			}
			return current, false
		},
	},
	{
		// Continuation bias: once in a document conversation, ambiguous
		// follow-ups stay in it.
		Name: "document-continuation",
		Apply: func(current, last Intent, text string) (Intent, bool) {
			if shouldContinueDocument(current, last, text) {
				return Document, true
			}
			return current, false
		},
	},
}

// Correct folds the rule sequence over a classified intent and returns the
// result plus the names of the rules that fired, in order.
func Correct(current, last Intent, text string) (Intent, []string) {
	var fired []string
	for _, rule := range Rules {
		next, ok := rule.Apply(current, last, text)
		if ok {
			fired = append(fired, rule.Name)
		}
		current = next
	}
	return current, fired
}

// IsProfileQuery reports whether text matches a profile-question pattern in
// any supported language.
func IsProfileQuery(text string) bool {
	for _, re := range profileQueryPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// HasDocumentKeywords reports whether text contains document/admission
// vocabulary.
func HasDocumentKeywords(text string) bool {
	return containsAny(strings.ToLower(text), documentKeywords)
}

func shouldContinueDocument(current, last Intent, text string) bool {
	if last != Document {
		return false
	}
	if current == Profile || current == Events || current == Support {
		return false
	}

	lowered := strings.ToLower(text)

	// A clear greeting or general question breaks the continuation, unless
	// document vocabulary appears alongside it.
	if containsAny(lowered, nonDocumentIndicators) && !containsAny(lowered, nonDocumentEscapeKeywords) {
		return false
	}

	return containsAny(lowered, followUpCues) || containsAny(lowered, continuationKeywords)
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
