package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"studybuddy/internal/memory"
	"studybuddy/internal/model"
)

// answerGeneral is the fallback branch: the model sees the stored profile,
// the rolling summary, the computed context (or raw history when there is
// none), and the current question.
func (uc *implUseCase) answerGeneral(ctx context.Context, sc model.Scope, session model.Session, text, contextText string) string {
	parts := []string{fmt.Sprintf("You are StudyBuddy. Here is what you know about the user: %s", formatProfile(session.UserProfile))}

	history, err := uc.repo.ListMessages(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "chat.answerGeneral: history load failed: %v", err)
		history = nil
	}

	if summary := memory.Summary(history); summary != "" {
		parts = append(parts, "Conversation summary: "+summary)
	}

	if contextText != "" {
		parts = append(parts, "Recent conversation:\n"+contextText)
	} else if raw := formatHistory(history); raw != "" {
		parts = append(parts, "Chat History:\n"+raw)
	}

	parts = append(parts, "User: "+text, "Assistant:")

	answer, err := uc.llm.Invoke(ctx, strings.Join(parts, "\n\n"))
	if err != nil {
		uc.l.Errorf(ctx, "chat.answerGeneral: model call failed: %v", err)
		return apologyReply
	}
	return strings.TrimSpace(answer)
}

func formatProfile(profile map[string]string) string {
	if len(profile) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(profile))
	for k := range profile {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, profile[k]))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// formatHistory renders the labelled transcript tail fed to the model when no
// topic-filtered context was computed.
func formatHistory(history []model.Message) string {
	var lines []string
	for _, m := range history {
		label := "User"
		if m.Role == model.RoleAssistant {
			label = "Assistant"
		}
		lines = append(lines, label+": "+m.Content)
	}
	if len(lines) > historyTail {
		lines = lines[len(lines)-historyTail:]
	}
	return strings.Join(lines, "\n")
}
