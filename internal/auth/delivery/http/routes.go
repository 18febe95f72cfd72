package http

import (
	"github.com/gin-gonic/gin"

	"easyplug-admin/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. Sign-in surfaces carry the public
// guard so an already-authenticated client is bounced to the dashboard.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", mw.Public(), h.Login)
		authGroup.POST("/login/google", mw.Public(), h.GoogleLogin)
		authGroup.POST("/register/seller", mw.Public(), h.RegisterSeller)
		authGroup.POST("/send-code", mw.Public(), h.SendCode)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", mw.Private(), h.Me)
	}
}
