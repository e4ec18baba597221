package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	emailHTTP "rag-assistant/internal/email/delivery/http"
	"rag-assistant/internal/model"
	promptHTTP "rag-assistant/internal/orchestrator/delivery/http"
	"rag-assistant/pkg/metrics"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	promptHTTP.RegisterRoutes(srv.gin, srv.promptHandler, srv.mw.RateLimit())
	srv.l.Infof(ctx, "Prompt route registered at POST /prompt")

	if srv.emailHandler != nil {
		emailHTTP.RegisterRoutes(srv.gin.Group("/api/v1/email"), srv.emailHandler)
		srv.l.Infof(ctx, "Email routes registered under /api/v1/email")
	} else {
		srv.l.Infof(ctx, "Email handler not configured, skipping email routes")
	}
}
