package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/chainfolio/chainfolio/internal/logger"
	"github.com/chainfolio/chainfolio/internal/server"
)

// LoggerKey is the key for storing the request-scoped logger in both the
// Echo context and the Go request context.
const LoggerKey = "logger"

// ContextEnhancer enriches every request with a request-scoped logger
// carrying request_id, method, path, ip and, when New Relic is active,
// trace.id/span.id correlation fields.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a new ContextEnhancer using the app Server
// container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware that builds the request logger
// and stores it in the Echo context and the Go request context, so
// non-Echo code that only sees context.Context can fetch it too.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from the Echo context,
// falling back to a no-op logger if the enhancer did not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if contextLogger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return contextLogger
	}
	nop := zerolog.Nop()
	return &nop
}
