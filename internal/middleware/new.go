package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "studybuddy/pkg/log"
)

// HeaderRequestID is the request correlation header.
const HeaderRequestID = "X-Request-ID"

type Middleware struct {
	l pkgLog.Logger
}

func New(l pkgLog.Logger) Middleware {
	return Middleware{l: l}
}

// RequestID attaches a correlation ID to every request, honoring one supplied
// by the caller.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
