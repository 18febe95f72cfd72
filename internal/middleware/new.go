package middleware

import (
	"easyplug-admin/internal/guard"
	"easyplug-admin/pkg/log"
)

// IdentityKey is the gin context key the verified identity is stored under.
const IdentityKey = "identity"

// Middleware bundles the route guards and rate limiting.
type Middleware struct {
	l       log.Logger
	guard   *guard.Guard
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, g *guard.Guard, requestsPerMin int) Middleware {
	var limiter *rateLimiter
	if requestsPerMin > 0 {
		limiter = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:       l,
		guard:   g,
		limiter: limiter,
	}
}
