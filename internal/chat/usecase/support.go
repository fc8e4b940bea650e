package usecase

import (
	"context"
	"fmt"
	"strings"
)

// answerSupport generates a warm, supportive reply, carrying relevant prior
// turns into the prompt.
func (uc *implUseCase) answerSupport(ctx context.Context, text, contextText string) string {
	prompt := text
	if contextText != "" {
		prompt = fmt.Sprintf("Previous conversation:\n%s\n\nCurrent question: %s", contextText, text)
	}

	answer, err := uc.llm.Invoke(ctx, fmt.Sprintf(supportPromptTemplate, prompt))
	if err != nil {
		uc.l.Errorf(ctx, "chat.answerSupport: model call failed: %v", err)
		return apologyReply
	}
	return strings.TrimSpace(answer)
}
