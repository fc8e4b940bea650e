package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"studybuddy/internal/middleware"
	"studybuddy/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	mw := middleware.New(srv.l)
	api := srv.gin.Group("/api/v1")

	if err := srv.setupChatDomain(ctx, api, mw); err != nil {
		return err
	}
	srv.setupCacheRoutes(ctx, api)

	return nil
}
