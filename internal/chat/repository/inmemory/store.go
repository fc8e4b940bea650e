package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"studybuddy/internal/chat/repository"
	"studybuddy/internal/model"
)

// Store is an in-memory Repository. Timestamps and sequence numbers are
// assigned on append, mirroring a server-timestamped document store.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*record
}

type record struct {
	session  model.Session
	messages []model.Message
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{sessions: make(map[string]*record)}
}

var _ repository.Repository = (*Store)(nil)

func key(sc model.Scope) string {
	return sc.UserID + "/" + sc.SessionID
}

func (s *Store) GetSession(ctx context.Context, sc model.Scope) (model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sessions[key(sc)]
	if !ok {
		return model.Session{}, repository.ErrNotFound
	}
	return cloneSession(rec.session), nil
}

func (s *Store) CreateSession(ctx context.Context, session model.Session) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := session.UserID + "/" + session.SessionID
	if rec, ok := s.sessions[k]; ok {
		return cloneSession(rec.session), nil
	}

	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	if session.Status == "" {
		session.Status = model.SessionStatusActive
	}
	if session.UserProfile == nil {
		session.UserProfile = make(map[string]string)
	}
	s.sessions[k] = &record{session: session}
	return cloneSession(session), nil
}

func (s *Store) ListSessions(ctx context.Context) ([]model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Session, 0, len(s.sessions))
	for _, rec := range s.sessions {
		out = append(out, cloneSession(rec.session))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].SessionID < out[j].SessionID
	})
	return out, nil
}

func (s *Store) UpdateSession(ctx context.Context, sc model.Scope, opt repository.UpdateSessionOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[key(sc)]
	if !ok {
		return repository.ErrNotFound
	}

	if opt.Status != nil {
		rec.session.Status = *opt.Status
	}
	if opt.UserLanguage != nil {
		rec.session.UserLanguage = *opt.UserLanguage
	}
	if opt.UserProfile != nil {
		rec.session.UserProfile = cloneMap(opt.UserProfile)
	}
	if opt.LastIntent != nil {
		rec.session.LastIntent = *opt.LastIntent
	}
	if opt.LastParams != nil {
		rec.session.LastParams = cloneMap(opt.LastParams)
	}
	rec.session.UpdatedAt = time.Now()
	return nil
}

func (s *Store) TerminateSession(ctx context.Context, sc model.Scope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[key(sc)]
	if !ok {
		return repository.ErrNotFound
	}
	if rec.session.Status != model.SessionStatusTerminated {
		rec.session.Status = model.SessionStatusTerminated
		rec.session.UpdatedAt = time.Now()
	}
	return nil
}

func (s *Store) AppendMessage(ctx context.Context, sc model.Scope, msg model.Message) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[key(sc)]
	if !ok {
		return model.Message{}, repository.ErrNotFound
	}

	msg.Seq = len(rec.messages) + 1
	msg.CreatedAt = time.Now()
	rec.messages = append(rec.messages, msg)
	rec.session.UpdatedAt = msg.CreatedAt
	return msg, nil
}

func (s *Store) ListMessages(ctx context.Context, sc model.Scope) ([]model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sessions[key(sc)]
	if !ok {
		return nil, repository.ErrNotFound
	}

	out := make([]model.Message, len(rec.messages))
	copy(out, rec.messages)
	return out, nil
}

func (s *Store) RecentMessages(ctx context.Context, sc model.Scope, limit int) ([]model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sessions[key(sc)]
	if !ok {
		return nil, repository.ErrNotFound
	}

	n := len(rec.messages)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]model.Message, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, rec.messages[i])
	}
	return out, nil
}

func cloneSession(session model.Session) model.Session {
	session.UserProfile = cloneMap(session.UserProfile)
	session.LastParams = cloneMap(session.LastParams)
	return session
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
