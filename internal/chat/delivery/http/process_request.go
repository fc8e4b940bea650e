package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studybuddy/internal/model"
)

// processStartSessionReq binds the start-session body, generating a session ID
// when the caller did not supply one.
func (h *handler) processStartSessionReq(c *gin.Context) (model.Scope, error) {
	var req startSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.Scope{}, errWrongBody
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	return model.Scope{UserID: req.UserID, SessionID: req.SessionID}, nil
}

// processSendMessageReq binds the message body plus the session URI param. The
// user ID comes from the body, not the query.
func (h *handler) processSendMessageReq(c *gin.Context) (model.Scope, sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.Scope{}, req, errWrongBody
	}
	sessionID := c.Param("id")
	if sessionID == "" {
		return model.Scope{}, req, errSessionIDRequired
	}
	return model.Scope{UserID: req.UserID, SessionID: sessionID}, req, nil
}

// processScope builds the session scope from the URI param and user_id query.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sessionID := c.Param("id")
	if sessionID == "" {
		return model.Scope{}, errSessionIDRequired
	}
	userID := c.Query("user_id")
	if userID == "" {
		return model.Scope{}, errUserIDRequired
	}
	return model.Scope{UserID: userID, SessionID: sessionID}, nil
}
