// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps every API path under /api/1 to its
// resource. Resources declare the verbs they serve through the handler
// package's verb interfaces; registration inspects each resource and wires
// only those verbs.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/chainfolio/chainfolio/internal/handler"
	"github.com/chainfolio/chainfolio/internal/middleware"
)

// New builds the Echo instance: global middlewares first, then every API
// route. The returned handler plugs into the server's net/http listener.
func New(m *middleware.Middlewares, h *handler.Handlers) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.RateLimit.Limit())
	e.Use(m.Tracing.EnhanceTracing())

	v1 := e.Group("/api/1")
	if err := registerRoutes(v1, apiRoutes(h)); err != nil {
		return nil, err
	}
	return e, nil
}

// route names one path and the resource serving it. Names must be unique;
// they show up in logs and tracing attributes.
type route struct {
	name     string
	path     string
	resource any
}

// registerRoutes wires each route's resource onto the group, one echo
// registration per implemented verb interface. A name collision or a
// resource serving no verb at all is a programming error and aborts setup.
func registerRoutes(g *echo.Group, routes []route) error {
	seen := make(map[string]struct{}, len(routes))
	for _, rt := range routes {
		if _, ok := seen[rt.name]; ok {
			return errors.Errorf("route name %q registered more than once", rt.name)
		}
		seen[rt.name] = struct{}{}

		wired := false
		if res, ok := rt.resource.(handler.Getter); ok {
			g.GET(rt.path, res.Get())
			wired = true
		}
		if res, ok := rt.resource.(handler.Putter); ok {
			g.PUT(rt.path, res.Put())
			wired = true
		}
		if res, ok := rt.resource.(handler.Poster); ok {
			g.POST(rt.path, res.Post())
			wired = true
		}
		if res, ok := rt.resource.(handler.Patcher); ok {
			g.PATCH(rt.path, res.Patch())
			wired = true
		}
		if res, ok := rt.resource.(handler.Deleter); ok {
			g.DELETE(rt.path, res.Delete())
			wired = true
		}
		if !wired {
			return errors.Errorf("route %q serves no HTTP verb", rt.name)
		}
	}
	return nil
}
