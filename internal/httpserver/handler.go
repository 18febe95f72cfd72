package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"easyplug-admin/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.mode == gin.DebugMode {
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

// registerDomainRoutes wires every domain under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.guard, srv.requestsPerMin)

	api := srv.gin.Group("/api/v1")
	if srv.requestsPerMin > 0 {
		api.Use(mw.RateLimit())
	}

	srv.setupDomains(ctx, api, mw)
	return nil
}
