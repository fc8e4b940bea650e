package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"studybuddy/internal/chat"
	"studybuddy/pkg/response"
)

var (
	errWrongBody         = errors.New("wrong body")
	errSessionIDRequired = errors.New("session id is required")
	errUserIDRequired    = errors.New("user_id is required")
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		response.NotFound(c, err)
	case errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrSessionTerminated),
		errors.Is(err, errWrongBody),
		errors.Is(err, errSessionIDRequired),
		errors.Is(err, errUserIDRequired):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
