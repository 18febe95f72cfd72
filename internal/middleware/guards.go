package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"easyplug-admin/internal/guard"
	"easyplug-admin/pkg/response"
)

// Private gates protected routes. Access requires a persisted token and a
// successful identity probe; otherwise the caller is pointed at /login.
func (m Middleware) Private() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		decision, identity, err := m.guard.Private(ctx)
		if err != nil {
			// client went away mid-probe; nothing to render
			c.Abort()
			return
		}

		if decision != guard.Allow {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Resp{
				ErrorCode: http.StatusUnauthorized,
				Message:   "Unauthorized",
				Data:      gin.H{"redirect": "/login"},
			})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// Public gates the login/register surfaces: an already-verified session is
// bounced to the dashboard instead of re-authenticating.
func (m Middleware) Public() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		decision, err := m.guard.Public(ctx)
		if err != nil {
			c.Abort()
			return
		}

		if decision == guard.RedirectDashboard {
			c.AbortWithStatusJSON(http.StatusOK, response.Resp{
				ErrorCode: 0,
				Message:   "Already signed in",
				Data:      gin.H{"redirect": "/dashboard"},
			})
			return
		}

		c.Next()
	}
}
