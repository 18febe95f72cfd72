package http

import (
	"github.com/gin-gonic/gin"

	"easyplug-admin/internal/middleware"
)

// RegisterRoutes maps the dashboard endpoints behind the private guard.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/dashboard/metrics", mw.Private(), h.Metrics)
}
