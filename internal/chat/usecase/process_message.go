package usecase

import (
	"context"
	"strings"

	"studybuddy/internal/chat"
	"studybuddy/internal/intent"
	"studybuddy/internal/language"
	"studybuddy/internal/memory"
	"studybuddy/internal/model"
)

// ProcessMessage runs one user message through the dialogue state machine.
// The steps run in a fixed order and short-circuit on first match: language
// change, capability answer, profile facts, then intent dispatch.
func (uc *implUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input chat.ProcessMessageInput) (out chat.ProcessMessageOutput, err error) {
	if strings.TrimSpace(input.Text) == "" {
		return chat.ProcessMessageOutput{}, chat.ErrEmptyMessage
	}

	lock := uc.sessionLock(sc)
	lock.Lock()
	defer lock.Unlock()

	// Any unhandled fault becomes the fixed apology; the trigger is logged
	// with full context and never propagates to the caller.
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "chat.ProcessMessage: recovered from panic: user=%s session=%s: %v", sc.UserID, sc.SessionID, r)
			out = chat.ProcessMessageOutput{Reply: apologyReply, Language: language.WorkingLanguage}
			err = nil
		}
	}()

	session, err := uc.StartSession(ctx, sc)
	if err != nil {
		return chat.ProcessMessageOutput{}, err
	}
	if session.Status == model.SessionStatusTerminated {
		return chat.ProcessMessageOutput{}, chat.ErrSessionTerminated
	}

	// 1. The detected language is the reply language for this turn.
	detected := language.Detect(input.Text)
	uc.l.Debugf(ctx, "chat.ProcessMessage: detected=%s text=%.60q", detected, input.Text)

	// 2. Language-change requests bypass classification entirely.
	if language.IsChangeRequest(input.Text) {
		return uc.handleLanguageChange(ctx, sc, input.Text, detected)
	}

	// 3. Bridge to the working language and persist the user turn.
	working, resolved := uc.bridge.ToWorking(ctx, input.Text, detected)
	if _, err := uc.repo.AppendMessage(ctx, sc, model.Message{
		Role:           model.RoleUser,
		Content:        input.Text,
		WorkingContent: working,
		Language:       resolved,
	}); err != nil {
		return chat.ProcessMessageOutput{}, err
	}

	if capabilityPattern.MatchString(working) {
		return uc.respond(ctx, sc, detected, "", capabilityReply)
	}

	// 4. New profile facts short-circuit before classification.
	if facts := ExtractProfileFacts(working); len(facts) > 0 {
		return uc.acknowledgeFacts(ctx, sc, session, detected, facts)
	}

	// 5. Classify and correct.
	current := uc.intents.Resolve(ctx, working, intent.Intent(session.LastIntent))
	uc.l.Infof(ctx, "chat.ProcessMessage: user=%s session=%s intent=%s", sc.UserID, sc.SessionID, current)

	// 6. Topic-filtered conversation context.
	recent, err := uc.repo.RecentMessages(ctx, sc, memory.ContextWindow)
	if err != nil {
		return chat.ProcessMessageOutput{}, err
	}
	// the just-persisted user turn is not its own context
	if len(recent) > 0 {
		recent = recent[1:]
	}
	contextText := memory.RelevantContext(current, working, recent)

	// 7. Intent-specific branch.
	var reply string
	var params map[string]string
	switch current {
	case intent.Profile:
		reply = uc.answerProfile(ctx, session, working)
	case intent.Events:
		reply, params = uc.answerEvents(ctx, session, working)
	case intent.Document:
		reply = uc.answerDocument(ctx, working, contextText)
	case intent.Support:
		reply = uc.answerSupport(ctx, working, contextText)
	default:
		reply = uc.answerGeneral(ctx, sc, session, working, contextText)
	}

	// 8. Translate back, persist, update continuation state.
	return uc.respondWithIntent(ctx, sc, detected, current, reply, params)
}

// respond finalizes a short-circuit turn: translate the working-language
// reply, persist it, and return it without touching continuation state.
func (uc *implUseCase) respond(ctx context.Context, sc model.Scope, lang, intentLabel, workingReply string) (chat.ProcessMessageOutput, error) {
	reply := uc.bridge.FromWorking(ctx, workingReply, lang)
	reply = convertMarkdown(reply)

	if _, err := uc.repo.AppendMessage(ctx, sc, model.Message{
		Role:           model.RoleAssistant,
		Content:        reply,
		WorkingContent: workingReply,
		Language:       lang,
		Intent:         intentLabel,
	}); err != nil {
		return chat.ProcessMessageOutput{}, err
	}

	return chat.ProcessMessageOutput{Reply: reply, Intent: intentLabel, Language: lang}, nil
}

// respondWithIntent finalizes a classified turn and advances last_intent and
// last_params together with the reply, never without it.
func (uc *implUseCase) respondWithIntent(ctx context.Context, sc model.Scope, lang string, current intent.Intent, workingReply string, params map[string]string) (chat.ProcessMessageOutput, error) {
	out, err := uc.respond(ctx, sc, lang, string(current), workingReply)
	if err != nil {
		return chat.ProcessMessageOutput{}, err
	}

	last := string(current)
	opt := repositoryUpdate(last, params)
	if err := uc.repo.UpdateSession(ctx, sc, opt); err != nil {
		return chat.ProcessMessageOutput{}, err
	}
	return out, nil
}
