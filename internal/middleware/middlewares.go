package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/chainfolio/chainfolio/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server, so routing/setup code constructs
// them once with their shared dependencies.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip, optional trace metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and helpers to attach custom
	// attributes and notice errors on transactions.
	Tracing *TracingMiddleware

	// RateLimit enforces a per-client request budget and records limit
	// hits as New Relic custom events.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components using the
// application container. When New Relic is not configured, nrApp is nil
// and tracing degrades into a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
