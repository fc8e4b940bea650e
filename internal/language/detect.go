package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Detect returns the ISO 639-1 code of text. Explicit script and keyword
// signals are checked in a fixed priority order before the statistical
// detector runs, and its answer can still be overridden when it contradicts
// the collected evidence.
func Detect(text string) string {
	clean := strings.TrimSpace(meaningfulChars.ReplaceAllString(text, " "))
	if len([]rune(clean)) < 3 {
		return WorkingLanguage
	}

	lowered := strings.ToLower(text)

	if arabicScript.MatchString(text) {
		return "ar"
	}

	if containsAnyRune(text, spanishChars) || countContained(lowered, spanishWords) >= 1 {
		return "es"
	}

	hasTurkishChars := containsAnyRune(text, turkishChars)
	hasTurkishWords := countContained(lowered, turkishWords) >= 1
	if hasTurkishChars || hasTurkishWords {
		return "tr"
	}

	if containsAnyRune(text, frenchChars) || countContained(lowered, frenchWords) >= 2 {
		return "fr"
	}

	score := englishScore(lowered)
	if score >= 2 {
		return WorkingLanguage
	}

	info := whatlanggo.Detect(clean)
	detected := info.Lang.Iso6391()

	if detected != WorkingLanguage && score >= 1 {
		return WorkingLanguage
	}
	// Statistical detectors often claim Turkish on plain ASCII text; require
	// at least one explicit Turkish signal to accept it.
	if detected == "tr" && !hasTurkishChars && !hasTurkishWords {
		return WorkingLanguage
	}
	if IsSupported(detected) {
		return detected
	}
	return WorkingLanguage
}

// englishScore aggregates stop-word, phrase and morphology evidence.
func englishScore(lowered string) int {
	padded := " " + lowered + " "
	words := 0
	for _, w := range englishWords {
		if strings.Contains(padded, " "+w+" ") {
			words++
		}
	}
	phrases := 0
	for _, p := range englishPhrases {
		if strings.Contains(lowered, p) {
			phrases++
		}
	}
	patterns := 0
	for _, re := range englishPatterns {
		if re.MatchString(lowered) {
			patterns++
		}
	}
	return words + phrases*2 + patterns
}

// IsChangeRequest reports whether text asks to switch the reply language.
func IsChangeRequest(text string) bool {
	for _, re := range changeRequestPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// ExtractRequested returns the language code named in a change request, or ""
// when no supported language is recognized.
func ExtractRequested(text string) string {
	for _, entry := range requestedLanguage {
		if entry.pattern.MatchString(text) {
			return entry.code
		}
	}
	return ""
}

func containsAnyRune(text string, runes []rune) bool {
	for _, r := range runes {
		if strings.ContainsRune(text, r) {
			return true
		}
	}
	return false
}

func countContained(lowered string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lowered, w) {
			n++
		}
	}
	return n
}
