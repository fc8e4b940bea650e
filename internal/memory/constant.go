package memory

import (
	"regexp"

	"studybuddy/internal/intent"
)

const (
	// ContextWindow is how many recent messages are loaded per request.
	ContextWindow = 20
	// relevanceCandidates is how many of the most recent deduplicated
	// messages are run through the relevance predicate.
	relevanceCandidates = 8
	// maxIncluded caps the turns included in the computed context.
	maxIncluded = 3

	// summaryThreshold is the stored-message count above which a rolling
	// summary is produced, covering everything but the summaryTail newest.
	summaryThreshold = 30
	summaryTail      = 20
)

// Topic partition keyword tables. Hand-tuned and replaceable; partitions are
// mutually exclusive buckets used to prevent cross-topic context leakage.
var (
	bankingKeywords = []string{"kuveyt", "bank", "account", "card", "deposit", "customer", "albaraka", "garanti"}
	permitKeywords  = []string{"permit", "visa", "residence", "ikamet", "immigration", "resident"}
	universityTopic = []string{"admission", "university", "sabanci", "bilgi", "bogazici", "koc", "application", "deadline"}
)

// comparativeCues let a query pull in context about a different institution.
var comparativeCues = []string{"what about", "how about", "and for", "compared to", "versus", "vs", "different from"}

// infoTypes are the shared information categories two different institutions
// can clash on (asking the same thing about another school).
var infoTypes = []string{"deadline", "requirement", "admission", "application", "document", "fee", "tuition", "website"}

// topicKeywords ties each intent to its subject vocabulary for the final
// relevance check.
var topicKeywords = map[intent.Intent][]string{
	intent.Document: {"visa", "permit", "document", "application", "form", "requirement", "deadline", "university", "admission"},
	intent.Events:   {"event", "activity", "happening", "concert", "festival"},
	intent.Support:  {"feel", "stress", "help", "problem", "difficult", "homesick", "friend"},
	intent.Profile:  {"name", "age", "live", "from", "about me"},
}

// namePattern extracts a self-introduced name for the rolling summary.
var namePattern = regexp.MustCompile(`(?i)(?:my name is|call me|i am|i'm)\s+([A-Za-z]+)`)
