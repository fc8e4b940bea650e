package usecase

import (
	"context"
	"fmt"

	"studybuddy/internal/chat"
	"studybuddy/internal/language"
	"studybuddy/internal/model"
)

// handleLanguageChange switches the session language and acknowledges,
// without running intent classification for this turn.
func (uc *implUseCase) handleLanguageChange(ctx context.Context, sc model.Scope, text, detected string) (chat.ProcessMessageOutput, error) {
	requested := language.ExtractRequested(text)
	if requested == "" || !language.IsSupported(requested) {
		uc.l.Infof(ctx, "chat.handleLanguageChange: unrecognized target in %.60q", text)
		msg := "I couldn't understand which language you want to switch to. Please try again with a specific language name."
		reply := uc.bridge.FromWorking(ctx, msg, detected)
		return chat.ProcessMessageOutput{Reply: reply, Language: detected}, nil
	}

	if _, err := uc.repo.AppendMessage(ctx, sc, model.Message{
		Role:     model.RoleUser,
		Content:  text,
		Language: detected,
	}); err != nil {
		return chat.ProcessMessageOutput{}, err
	}

	if err := uc.repo.UpdateSession(ctx, sc, userLanguageUpdate(requested)); err != nil {
		return chat.ProcessMessageOutput{}, err
	}
	uc.l.Infof(ctx, "chat.handleLanguageChange: user=%s session=%s language=%s", sc.UserID, sc.SessionID, requested)

	ack := fmt.Sprintf("Great! I'll now communicate with you in %s. How can I help you?", language.SupportedLanguages[requested])
	return uc.respond(ctx, sc, requested, "", ack)
}
