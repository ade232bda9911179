package rest

import "github.com/chainfolio/chainfolio/internal/types"

// Settings returns the full current configuration.
func (a *API) Settings() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return OkResult(a.settings)
}

// UpdateSettings overlays the given modifications and returns the full
// updated configuration.
func (a *API) UpdateSettings(mod types.ModifiableSettings) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settings.Apply(mod)
	return OkResult(a.settings)
}
