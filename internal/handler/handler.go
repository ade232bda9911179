// Package handler contains the HTTP resources of the REST API. Each
// resource owns one URL path and exposes a method per supported verb; the
// generic Handle wrapper gives every endpoint the same binding, validation,
// logging and tracing pipeline.
package handler

import (
	"context"

	"github.com/labstack/echo/v4"
)

// Getter is implemented by resources that serve GET.
type Getter interface {
	Get() echo.HandlerFunc
}

// Putter is implemented by resources that serve PUT.
type Putter interface {
	Put() echo.HandlerFunc
}

// Poster is implemented by resources that serve POST.
type Poster interface {
	Post() echo.HandlerFunc
}

// Patcher is implemented by resources that serve PATCH.
type Patcher interface {
	Patch() echo.HandlerFunc
}

// Deleter is implemented by resources that serve DELETE.
type Deleter interface {
	Delete() echo.HandlerFunc
}

// asTask adapts an envelope-producing call into a task body. The spawned
// task stores the envelope's parts so the task status endpoint can
// re-assemble them.
func asTask(fn func(ctx context.Context) (map[string]any, error)) func(ctx context.Context) (any, string) {
	return func(ctx context.Context) (any, string) {
		outcome, err := fn(ctx)
		if err != nil {
			return nil, err.Error()
		}
		message, _ := outcome["message"].(string)
		return outcome["result"], message
	}
}
