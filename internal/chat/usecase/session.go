package usecase

import (
	"context"
	"errors"

	"studybuddy/internal/chat"
	"studybuddy/internal/chat/repository"
	"studybuddy/internal/model"
)

// StartSession creates the session if needed and returns it.
func (uc *implUseCase) StartSession(ctx context.Context, sc model.Scope) (model.Session, error) {
	session, err := uc.repo.CreateSession(ctx, model.Session{
		UserID:       sc.UserID,
		SessionID:    sc.SessionID,
		Status:       model.SessionStatusActive,
		UserLanguage: DefaultLanguage,
		UserProfile:  map[string]string{},
	})
	if err != nil {
		return model.Session{}, err
	}
	uc.l.Infof(ctx, "chat.StartSession: user=%s session=%s", sc.UserID, sc.SessionID)
	return session, nil
}

// GetSession returns an existing session, active or terminated.
func (uc *implUseCase) GetSession(ctx context.Context, sc model.Scope) (model.Session, error) {
	session, err := uc.repo.GetSession(ctx, sc)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Session{}, chat.ErrSessionNotFound
	}
	return session, err
}

// ListSessions returns all sessions, active and terminated, oldest first.
func (uc *implUseCase) ListSessions(ctx context.Context) ([]model.Session, error) {
	return uc.repo.ListSessions(ctx)
}

// TerminateSession marks the session terminated. History stays readable and
// the session can be reactivated with LoadSession.
func (uc *implUseCase) TerminateSession(ctx context.Context, sc model.Scope) error {
	err := uc.repo.TerminateSession(ctx, sc)
	if errors.Is(err, repository.ErrNotFound) {
		return chat.ErrSessionNotFound
	}
	if err == nil {
		uc.l.Infof(ctx, "chat.TerminateSession: user=%s session=%s", sc.UserID, sc.SessionID)
	}
	return err
}

// LoadSession reactivates a terminated session.
func (uc *implUseCase) LoadSession(ctx context.Context, sc model.Scope) (model.Session, error) {
	session, err := uc.GetSession(ctx, sc)
	if err != nil {
		return model.Session{}, err
	}
	if session.Status != model.SessionStatusTerminated {
		return session, nil
	}

	active := model.SessionStatusActive
	if err := uc.repo.UpdateSession(ctx, sc, repository.UpdateSessionOptions{Status: &active}); err != nil {
		return model.Session{}, err
	}
	uc.l.Infof(ctx, "chat.LoadSession: user=%s session=%s", sc.UserID, sc.SessionID)
	session.Status = active
	return session, nil
}

// ListMessages returns the full history in chronological order.
func (uc *implUseCase) ListMessages(ctx context.Context, sc model.Scope) ([]model.Message, error) {
	msgs, err := uc.repo.ListMessages(ctx, sc)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, chat.ErrSessionNotFound
	}
	return msgs, err
}
