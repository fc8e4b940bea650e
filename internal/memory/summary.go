package memory

import (
	"fmt"
	"sort"
	"strings"

	"studybuddy/internal/model"
)

// Summary produces a one-line rolling summary once a session grows past the
// threshold, covering every message except the most recent tail. Below the
// threshold it returns "". messages is the full history in chronological
// order.
func Summary(messages []model.Message) string {
	if len(messages) <= summaryThreshold {
		return ""
	}
	older := messages[:len(messages)-summaryTail]

	topics := make(map[string]struct{})
	var name string
	for _, m := range older {
		if m.Intent != "" {
			topics[m.Intent] = struct{}{}
		}
		if m.Role == model.RoleUser && strings.Contains(strings.ToLower(m.Content), "name") {
			if match := namePattern.FindStringSubmatch(m.Content); match != nil {
				name = match[1]
			}
		}
	}

	var parts []string
	if len(topics) > 0 {
		sorted := make([]string, 0, len(topics))
		for topic := range topics {
			sorted = append(sorted, topic)
		}
		sort.Strings(sorted)
		parts = append(parts, "Previous topics: "+strings.Join(sorted, ", "))
	}
	if name != "" {
		parts = append(parts, fmt.Sprintf("User info: name=%s", name))
	}
	return strings.Join(parts, " | ")
}
