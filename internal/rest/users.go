package rest

import (
	"fmt"

	"github.com/chainfolio/chainfolio/internal/errs"
)

// Users lists all known users with their session state.
func (a *API) Users() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := make(map[string]string, len(a.users))
	for name, user := range a.users {
		if user.LoggedIn {
			result[name] = "loggedin"
		} else {
			result[name] = "loggedout"
		}
	}
	return OkResult(result)
}

// CreateUser registers a new user and logs them in.
func (a *API) CreateUser(name, password, premiumKey, premiumSecret string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.users[name]; ok {
		return nil, errs.NewConflictError(fmt.Sprintf("user %s already exists", name))
	}
	for existing, user := range a.users {
		if user.LoggedIn {
			return nil, errs.NewConflictError(
				fmt.Sprintf("can not create a new user because user %s is already logged in. Log out of that user first", existing),
			)
		}
	}

	a.users[name] = &userAccount{
		Password:         password,
		PremiumAPIKey:    premiumKey,
		PremiumAPISecret: premiumSecret,
		LoggedIn:         true,
	}
	return OkResult(map[string]any{
		"exchanges": []string{},
		"settings":  a.settings,
	}), nil
}

// LoginUser starts a session for an existing user.
func (a *API) LoginUser(name, password string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, ok := a.users[name]
	if !ok {
		return nil, errs.NewConflictError(fmt.Sprintf("user %s does not exist", name))
	}
	if user.LoggedIn {
		return nil, errs.NewConflictError(fmt.Sprintf("user %s is already logged in", name))
	}
	for existing, other := range a.users {
		if other.LoggedIn {
			return nil, errs.NewConflictError(
				fmt.Sprintf("can not login to user %s because user %s is already logged in. Log out of that user first", name, existing),
			)
		}
	}
	if user.Password != password {
		return nil, errs.NewConflictError("wrong password or invalid/corrupt database for user")
	}

	user.LoggedIn = true
	return OkResult(map[string]any{
		"exchanges": a.exchangeNamesLocked(),
		"settings":  a.settings,
	}), nil
}

// LogoutUser ends the session of a logged-in user.
func (a *API) LogoutUser(name string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, ok := a.users[name]
	if !ok || !user.LoggedIn {
		return nil, errs.NewConflictError(fmt.Sprintf("user %s is not logged in", name))
	}
	user.LoggedIn = false
	return OkResult(true), nil
}

// ChangeUserPassword replaces a logged-in user's password after checking
// the current one.
func (a *API) ChangeUserPassword(name, currentPassword, newPassword string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, ok := a.users[name]
	if !ok || !user.LoggedIn {
		return nil, errs.NewConflictError(fmt.Sprintf("user %s is not logged in", name))
	}
	if user.Password != currentPassword {
		return nil, errs.NewConflictError("provided current password is not correct")
	}
	user.Password = newPassword
	return OkResult(true), nil
}

// SetPremiumCredentials stores the premium key pair of a logged-in user.
func (a *API) SetPremiumCredentials(name, apiKey, apiSecret string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, ok := a.users[name]
	if !ok || !user.LoggedIn {
		return nil, errs.NewConflictError(fmt.Sprintf("user %s is not logged in", name))
	}
	user.PremiumAPIKey = apiKey
	user.PremiumAPISecret = apiSecret
	return OkResult(true), nil
}

// DeletePremiumCredentials drops the stored premium key pair of a
// logged-in user.
func (a *API) DeletePremiumCredentials(name string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, ok := a.users[name]
	if !ok || !user.LoggedIn {
		return nil, errs.NewConflictError(fmt.Sprintf("user %s is not logged in", name))
	}
	if user.PremiumAPIKey == "" {
		return nil, errs.NewConflictError("user has no premium credentials to delete")
	}
	user.PremiumAPIKey = ""
	user.PremiumAPISecret = ""
	return OkResult(true), nil
}

func (a *API) exchangeNamesLocked() []string {
	names := make([]string, 0, len(a.exchanges))
	for name := range a.exchanges {
		names = append(names, name)
	}
	return names
}
