package http

import (
	"github.com/gin-gonic/gin"

	"studybuddy/internal/chat"
	"studybuddy/pkg/response"
)

// StartSession godoc
// @Summary     Start a chat session
// @Description Creates a session for the user, generating a session ID when none is supplied. Starting an existing session returns it unchanged.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body startSessionReq true "Session data"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [POST]
func (h *handler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processStartSessionReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	session, err := h.uc.StartSession(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.StartSession: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(session))
}

// GetSession godoc
// @Summary     Get a chat session
// @Description Returns the session state including language and profile.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id      path  string true "Session ID"
// @Param       user_id query string true "User ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	session, err := h.uc.GetSession(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSession: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(session))
}

// ListSessions godoc
// @Summary     List chat sessions
// @Description Returns all sessions, active and terminated, oldest first.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} listSessionsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [GET]
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	sessions, err := h.uc.ListSessions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSessions: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListSessionsResp(sessions))
}

// TerminateSession godoc
// @Summary     Terminate a chat session
// @Description Marks the session terminated. Its history stays readable and it can be reactivated via the load endpoint.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id      path  string true "Session ID"
// @Param       user_id query string true "User ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/terminate [POST]
func (h *handler) TerminateSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.uc.TerminateSession(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.TerminateSession: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// LoadSession godoc
// @Summary     Load a terminated chat session
// @Description Reactivates a terminated session so it accepts messages again. Loading an active session is a no-op.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id      path  string true "Session ID"
// @Param       user_id query string true "User ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/load [POST]
func (h *handler) LoadSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	session, err := h.uc.LoadSession(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.LoadSession: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(session))
}

// ListMessages godoc
// @Summary     List session messages
// @Description Returns the full message history in chronological order.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id      path  string true "Session ID"
// @Param       user_id query string true "User ID"
// @Success     200 {object} listMessagesResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	msgs, err := h.uc.ListMessages(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMessages: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListMessagesResp(msgs))
}

// SendMessage godoc
// @Summary     Send a message
// @Description Runs one user message through the assistant and returns the reply in the user's language.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body sendMessageReq true "Message data"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSendMessageReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	out, err := h.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, sendMessageResp{
		Reply:    out.Reply,
		Intent:   out.Intent,
		Language: out.Language,
	})
}
