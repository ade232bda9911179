package middleware

import (
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/chainfolio/chainfolio/internal/errs"
	"github.com/chainfolio/chainfolio/internal/server"
)

// RateLimitMiddleware enforces a per-client request budget using token
// buckets keyed by client IP. Limit hits are recorded as New Relic custom
// events when telemetry is active.
type RateLimitMiddleware struct {
	server *server.Server

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server:   s,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Limit returns the echo middleware applying the configured budget.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !r.limiter(c.RealIP()).Allow() {
				r.RecordRateLimitHit(c.Path())
				return errs.NewTooManyRequestsError("too many requests, slow down")
			}
			return next(c)
		}
	}
}

func (r *RateLimitMiddleware) limiter(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	limiter, ok := r.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(
			rate.Limit(r.server.Config.Server.RateLimitPerSecond),
			r.server.Config.Server.RateLimitBurst,
		)
		r.limiters[ip] = limiter
	}
	return limiter
}

// RecordRateLimitHit emits a custom telemetry event for a rejected
// request.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
