package router

import (
	"github.com/chainfolio/chainfolio/internal/handler"
)

// systemRoutes are the endpoints that are not part of portfolio business
// logic: liveness, version, the async task poll surface and the message
// queue the frontend drains.
func systemRoutes(h *handler.Handlers) []route {
	return []route{
		{"ping", "/ping", h.Ping},
		{"version", "/version", h.Version},
		{"messages", "/messages", h.Messages},
		{"tasks", "/tasks", h.Tasks},
		{"task_outcome", "/tasks/:task_id", h.TaskOutcome},
		{"periodic_data", "/periodic", h.PeriodicData},
	}
}
