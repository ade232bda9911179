package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/chainfolio/chainfolio/internal/errs"
	"github.com/chainfolio/chainfolio/internal/schema"
)

// PingResource answers liveness probes.
type PingResource struct{ Handler }

func (r *PingResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().Ping(), nil
	})
}

// VersionResource reports the running backend version.
type VersionResource struct{ Handler }

func (r *VersionResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().VersionInfo(), nil
	})
}

// MessagesResource pops the warnings and errors queued by background work.
type MessagesResource struct{ Handler }

func (r *MessagesResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().ConsumeMessages(), nil
	})
}

// TasksResource lists the ids of pending and completed async tasks.
type TasksResource struct{ Handler }

func (r *TasksResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().TaskList(), nil
	})
}

// TaskOutcomeResource reports the status and outcome of one async task.
type TaskOutcomeResource struct{ Handler }

func (r *TaskOutcomeResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.TaskQuery) (any, error) {
		outcome, ok := r.API().TaskOutcome(req.TaskID)
		if !ok {
			return nil, errs.NewNotFoundError(
				fmt.Sprintf("No task with id %d found", req.TaskID),
			)
		}
		return outcome, nil
	})
}

// PeriodicDataResource serves the data the frontend polls between full
// queries.
type PeriodicDataResource struct{ Handler }

func (r *PeriodicDataResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().PeriodicData(), nil
	})
}
