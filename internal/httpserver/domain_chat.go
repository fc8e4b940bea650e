package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "studybuddy/internal/chat/delivery/http"
	"studybuddy/internal/middleware"
)

// setupChatDomain registers the chat domain routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
