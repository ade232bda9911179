package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/chainfolio/chainfolio/internal/middleware"
	"github.com/chainfolio/chainfolio/internal/rest"
	"github.com/chainfolio/chainfolio/internal/server"
	"github.com/chainfolio/chainfolio/internal/validation"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete resources embed it so they can reach the backend
// façade, config and logger through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. It returns the struct by value:
// the only field is a pointer, so copies are cheap and still point to the
// same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// API returns the backend façade.
func (h Handler) API() *rest.API {
	return h.server.API
}

// Handle wraps a typed endpoint function with binding, validation, error
// handling, logging and tracing, and returns an echo.HandlerFunc that can
// be registered directly on routes.
//
// Req is the payload struct; a fresh instance is allocated per request so
// concurrent requests never share state. The pointer type must satisfy
// validation.Validatable.
func Handle[Req any, P interface {
	*Req
	validation.Validatable
}](h Handler, endpoint func(c echo.Context, req P) (any, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		route := c.Path()

		// The New Relic transaction is set by the nrecho middleware.
		txn := newrelic.FromContext(c.Request().Context())
		if txn != nil {
			txn.AddAttribute("handler.name", route)
		}

		// The context-enhanced logger already carries request_id, method,
		// path and trace correlation fields.
		logger := middleware.GetLogger(c).With().
			Str("operation", "handler").
			Str("route", route).
			Logger()

		req := P(new(Req))

		validationStart := time.Now()
		deps := validation.Deps{Assets: h.server.API.Assets}
		if err := validation.BindAndValidate(c, req, deps); err != nil {
			validationDuration := time.Since(validationStart)

			logger.Warn().
				Err(err).
				Dur("validation_duration", validationDuration).
				Msg("request validation failed")

			if txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				txn.AddAttribute("validation.status", "failed")
			}

			// The global error handler formats the failure envelope.
			return err
		}
		if txn != nil {
			txn.AddAttribute("validation.status", "success")
		}

		handlerStart := time.Now()
		result, err := endpoint(c, req)
		handlerDuration := time.Since(handlerStart)

		if err != nil {
			logger.Error().
				Err(err).
				Dur("handler_duration", handlerDuration).
				Msg("handler execution failed")

			if txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				txn.AddAttribute("handler.status", "error")
			}
			return err
		}

		if txn != nil {
			txn.AddAttribute("handler.status", "success")
			txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
		}

		logger.Debug().
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("request completed")

		return c.JSON(http.StatusOK, result)
	}
}

// HandleFile is the Handle variant for endpoints that respond with raw
// bytes instead of the JSON envelope.
func HandleFile[Req any, P interface {
	*Req
	validation.Validatable
}](h Handler, contentType string, endpoint func(c echo.Context, req P) ([]byte, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := P(new(Req))
		deps := validation.Deps{Assets: h.server.API.Assets}
		if err := validation.BindAndValidate(c, req, deps); err != nil {
			return err
		}

		data, err := endpoint(c, req)
		if err != nil {
			return err
		}
		return c.Blob(http.StatusOK, contentType, data)
	}
}
