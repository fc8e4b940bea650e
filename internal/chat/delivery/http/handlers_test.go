package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"studybuddy/internal/chat"
	"studybuddy/internal/middleware"
	"studybuddy/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	startSession     func(ctx context.Context, sc model.Scope) (model.Session, error)
	getSession       func(ctx context.Context, sc model.Scope) (model.Session, error)
	listSessions     func(ctx context.Context) ([]model.Session, error)
	terminateSession func(ctx context.Context, sc model.Scope) error
	loadSession      func(ctx context.Context, sc model.Scope) (model.Session, error)
	listMessages     func(ctx context.Context, sc model.Scope) ([]model.Message, error)
	processMessage   func(ctx context.Context, sc model.Scope, input chat.ProcessMessageInput) (chat.ProcessMessageOutput, error)
}

func (m *mockUseCase) StartSession(ctx context.Context, sc model.Scope) (model.Session, error) {
	if m.startSession == nil {
		return model.Session{UserID: sc.UserID, SessionID: sc.SessionID}, nil
	}
	return m.startSession(ctx, sc)
}

func (m *mockUseCase) GetSession(ctx context.Context, sc model.Scope) (model.Session, error) {
	if m.getSession == nil {
		return model.Session{UserID: sc.UserID, SessionID: sc.SessionID}, nil
	}
	return m.getSession(ctx, sc)
}

func (m *mockUseCase) ListSessions(ctx context.Context) ([]model.Session, error) {
	if m.listSessions == nil {
		return nil, nil
	}
	return m.listSessions(ctx)
}

func (m *mockUseCase) TerminateSession(ctx context.Context, sc model.Scope) error {
	if m.terminateSession == nil {
		return nil
	}
	return m.terminateSession(ctx, sc)
}

func (m *mockUseCase) LoadSession(ctx context.Context, sc model.Scope) (model.Session, error) {
	if m.loadSession == nil {
		return model.Session{UserID: sc.UserID, SessionID: sc.SessionID}, nil
	}
	return m.loadSession(ctx, sc)
}

func (m *mockUseCase) ListMessages(ctx context.Context, sc model.Scope) ([]model.Message, error) {
	if m.listMessages == nil {
		return nil, nil
	}
	return m.listMessages(ctx, sc)
}

func (m *mockUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input chat.ProcessMessageInput) (chat.ProcessMessageOutput, error) {
	if m.processMessage == nil {
		return chat.ProcessMessageOutput{}, nil
	}
	return m.processMessage(ctx, sc, input)
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := &mockLogger{}
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l))
	return r
}

func TestGetSession_RequiresUserID(t *testing.T) {
	uc := &mockUseCase{}
	router := newTestRouter(uc)

	t.Run("missing user_id is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/s1", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("user_id reaches the use case", func(t *testing.T) {
		var gotScope model.Scope
		uc.getSession = func(ctx context.Context, sc model.Scope) (model.Session, error) {
			gotScope = sc
			return model.Session{UserID: sc.UserID, SessionID: sc.SessionID, Status: model.SessionStatusActive}, nil
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/s1?user_id=u1", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if gotScope.UserID != "u1" || gotScope.SessionID != "s1" {
			t.Errorf("unexpected scope: %+v", gotScope)
		}
	})
}

func TestSendMessage_UserIDFromBody(t *testing.T) {
	uc := &mockUseCase{}
	var gotScope model.Scope
	uc.processMessage = func(ctx context.Context, sc model.Scope, input chat.ProcessMessageInput) (chat.ProcessMessageOutput, error) {
		gotScope = sc
		return chat.ProcessMessageOutput{Reply: "hi", Language: "en"}, nil
	}
	router := newTestRouter(uc)

	// no user_id query: the body carries it
	w := httptest.NewRecorder()
	body := strings.NewReader(`{"user_id": "u1", "text": "hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s1/messages", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotScope.UserID != "u1" || gotScope.SessionID != "s1" {
		t.Errorf("unexpected scope: %+v", gotScope)
	}
}

func TestListSessions(t *testing.T) {
	uc := &mockUseCase{
		listSessions: func(ctx context.Context) ([]model.Session, error) {
			return []model.Session{
				{UserID: "u1", SessionID: "s1", Status: model.SessionStatusTerminated},
				{UserID: "u2", SessionID: "s2", Status: model.SessionStatusActive},
			}, nil
		},
	}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	for _, want := range []string{`"total":2`, `"terminated"`, `"s2"`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("response missing %s: %s", want, w.Body.String())
		}
	}
}

func TestLoadSession(t *testing.T) {
	uc := &mockUseCase{
		loadSession: func(ctx context.Context, sc model.Scope) (model.Session, error) {
			return model.Session{UserID: sc.UserID, SessionID: sc.SessionID, Status: model.SessionStatusActive}, nil
		},
	}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s1/load?user_id=u1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"active"`) {
		t.Errorf("expected active status in response: %s", w.Body.String())
	}
}
