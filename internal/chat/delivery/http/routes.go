package http

import (
	"github.com/gin-gonic/gin"

	"studybuddy/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions", mw.RequestID())
	{
		sessions.POST("", h.StartSession)
		sessions.GET("", h.ListSessions)
		sessions.GET("/:id", h.GetSession)
		sessions.POST("/:id/terminate", h.TerminateSession)
		sessions.POST("/:id/load", h.LoadSession)
		sessions.GET("/:id/messages", h.ListMessages)
		sessions.POST("/:id/messages", h.SendMessage)
	}
}
