package http

import (
	"github.com/gin-gonic/gin"

	"easyplug-admin/internal/middleware"
)

// RegisterRoutes maps the inventory endpoints. Everything here sits behind
// the private guard.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	inv := rg.Group("/inventory", mw.Private())
	{
		inv.GET("", h.List)

		wizard := inv.Group("/wizard")
		{
			wizard.POST("", h.OpenWizard)
			wizard.GET("/:sid", h.Wizard)
			wizard.DELETE("/:sid", h.CancelWizard)
			wizard.PUT("/:sid/fields", h.UpdateFields)
			wizard.POST("/:sid/images", h.AddImages)
			wizard.DELETE("/:sid/images/:index", h.RemoveImage)
			wizard.GET("/:sid/previews/:pid", h.Preview)
			wizard.POST("/:sid/next", h.Next)
			wizard.POST("/:sid/submit", h.Submit)
			wizard.POST("/:sid/pay", h.Pay)
		}

		inv.GET("/:id", h.Detail)
		inv.DELETE("/:id", h.Delete)
	}
}
