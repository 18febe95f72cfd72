package http

import (
	"github.com/gin-gonic/gin"

	"easyplug-admin/internal/middleware"
)

// RegisterRoutes maps the account endpoints, all behind the private guard.
// The full-profile view hangs off /auth to mirror the upstream API shape.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/auth/me/full", mw.Private(), h.Profile)

	users := rg.Group("/users", mw.Private())
	{
		users.POST("/me/profile-picture", h.UploadProfilePicture)
		users.PUT("/:id", h.UpdateUser)
	}

	seller := rg.Group("/seller-info", mw.Private())
	{
		seller.PUT("/me", h.UpdateSellerInfoMe)
		seller.POST("/me/business-picture", h.UploadBusinessPicture)
		seller.PUT("/:id", h.UpdateSellerInfo)
	}
}
