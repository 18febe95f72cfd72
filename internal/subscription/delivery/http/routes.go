package http

import (
	"github.com/gin-gonic/gin"

	"easyplug-admin/internal/middleware"
)

// RegisterRoutes maps the subscription endpoints, all behind the private
// guard.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	subs := rg.Group("/subscriptions", mw.Private())
	{
		subs.GET("", h.List)
		subs.POST("", h.Create)
		subs.GET("/:id", h.Detail)
		subs.PUT("/:id", h.Update)
	}
}
