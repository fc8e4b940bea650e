package memory

import (
	"strings"

	"studybuddy/internal/intent"
	"studybuddy/internal/model"
	"studybuddy/internal/university"
)

// Partition is one of the mutually exclusive topic buckets.
type Partition string

const (
	PartitionBanking    Partition = "banking"
	PartitionPermit     Partition = "permit"
	PartitionUniversity Partition = "university"
	PartitionOther      Partition = "other"
)

// PartitionOf buckets text by keyword membership. The first matching bucket
// wins; text matching nothing is "other".
func PartitionOf(text string) Partition {
	lowered := strings.ToLower(text)
	switch {
	case containsAny(lowered, bankingKeywords):
		return PartitionBanking
	case containsAny(lowered, permitKeywords):
		return PartitionPermit
	case containsAny(lowered, universityTopic):
		return PartitionUniversity
	default:
		return PartitionOther
	}
}

// RelevantContext builds a label-prefixed transcript of the prior turns
// relevant to the current intent and query. messages is the most recent
// window, newest first, as loaded from the store.
func RelevantContext(currentIntent intent.Intent, query string, messages []model.Message) string {
	if len(messages) > ContextWindow {
		messages = messages[:ContextWindow]
	}

	// reverse to chronological order
	ordered := make([]model.Message, len(messages))
	for i, m := range messages {
		ordered[len(messages)-1-i] = m
	}

	deduped := dedupe(ordered)

	candidates := deduped
	if len(candidates) > relevanceCandidates {
		candidates = candidates[len(candidates)-relevanceCandidates:]
	}

	queryUniversity := university.Detect(query)

	var lines []string
	for _, m := range candidates {
		if len(lines) >= maxIncluded {
			break
		}
		content := m.WorkingContent
		if content == "" {
			content = m.Content
		}
		if !isRelevant(content, intent.Intent(m.Intent), currentIntent, query, queryUniversity) {
			continue
		}
		label := "User"
		if m.Role == model.RoleAssistant {
			label = "Assistant"
		}
		lines = append(lines, label+": "+content)
	}

	return strings.Join(lines, "\n")
}

// isRelevant is the ordered relevance predicate: topic isolation first, then
// institution partitioning, then intent/keyword affinity.
func isRelevant(content string, msgIntent, currentIntent intent.Intent, query string, queryUniversity university.University) bool {
	contentLower := strings.ToLower(content)
	queryLower := strings.ToLower(query)

	queryPartition := PartitionOf(query)
	contentPartition := PartitionOf(content)

	// Topic isolation: never mix disjoint non-"other" partitions.
	if queryPartition == PartitionBanking && (contentPartition == PartitionPermit || contentPartition == PartitionUniversity) {
		return false
	}
	if queryPartition == PartitionPermit && (contentPartition == PartitionBanking || contentPartition == PartitionUniversity) {
		return false
	}
	if queryPartition == PartitionUniversity && contentPartition == PartitionBanking {
		return false
	}

	contentUniversity := university.Detect(content)

	if queryUniversity != "" && contentUniversity != "" {
		if queryUniversity != contentUniversity {
			// Different institutions: comparative questions may bridge
			// them, and content clashing on a shared info-type (deadlines,
			// fees, ...) never crosses over.
			if containsAny(queryLower, comparativeCues) {
				return true
			}
			return !containsAny(queryLower, infoTypes) || !containsAny(contentLower, infoTypes)
		}
		// Same institution is always relevant.
		return true
	}

	if msgIntent == currentIntent && msgIntent != "" {
		return true
	}

	return containsAny(contentLower, topicKeywords[currentIntent])
}

// dedupe drops repeated (role, normalized content) pairs, keeping first
// occurrence in chronological order.
func dedupe(ordered []model.Message) []model.Message {
	seen := make(map[string]struct{}, len(ordered))
	out := make([]model.Message, 0, len(ordered))
	for _, m := range ordered {
		content := m.WorkingContent
		if content == "" {
			content = m.Content
		}
		key := string(m.Role) + ":" + strings.ToLower(strings.TrimSpace(content))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
