package http

import (
	"time"

	"studybuddy/internal/model"
)

// --- Request DTOs ---

type startSessionReq struct {
	UserID    string `json:"user_id"    binding:"required,min=1,max=128"`
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
}

type sendMessageReq struct {
	UserID string `json:"user_id" binding:"required,min=1,max=128"`
	Text   string `json:"text"    binding:"required,max=4000"`
}

// --- Response DTOs ---

type sessionResp struct {
	UserID       string            `json:"user_id"`
	SessionID    string            `json:"session_id"`
	Status       string            `json:"status"`
	UserLanguage string            `json:"user_language"`
	UserProfile  map[string]string `json:"user_profile"`
	LastIntent   string            `json:"last_intent,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func newSessionResp(session model.Session) sessionResp {
	return sessionResp{
		UserID:       session.UserID,
		SessionID:    session.SessionID,
		Status:       string(session.Status),
		UserLanguage: session.UserLanguage,
		UserProfile:  session.UserProfile,
		LastIntent:   session.LastIntent,
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}
}

type listSessionsResp struct {
	Sessions []sessionResp `json:"sessions"`
	Total    int           `json:"total"`
}

func (h *handler) newListSessionsResp(sessions []model.Session) listSessionsResp {
	out := make([]sessionResp, len(sessions))
	for i, session := range sessions {
		out[i] = newSessionResp(session)
	}
	return listSessionsResp{Sessions: out, Total: len(out)}
}

type messageResp struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Language  string    `json:"language,omitempty"`
	Intent    string    `json:"intent,omitempty"`
	Seq       int       `json:"seq"`
	CreatedAt time.Time `json:"created_at"`
}

func newMessageResp(msg model.Message) messageResp {
	return messageResp{
		Role:      string(msg.Role),
		Content:   msg.Content,
		Language:  msg.Language,
		Intent:    msg.Intent,
		Seq:       msg.Seq,
		CreatedAt: msg.CreatedAt,
	}
}

type listMessagesResp struct {
	Messages []messageResp `json:"messages"`
	Total    int           `json:"total"`
}

func (h *handler) newListMessagesResp(msgs []model.Message) listMessagesResp {
	out := make([]messageResp, len(msgs))
	for i, msg := range msgs {
		out[i] = newMessageResp(msg)
	}
	return listMessagesResp{Messages: out, Total: len(out)}
}

type sendMessageResp struct {
	Reply    string `json:"reply"`
	Intent   string `json:"intent,omitempty"`
	Language string `json:"language"`
}
