package schema

import (
	"github.com/chainfolio/chainfolio/internal/validation"
)

// NewUserRequest creates a user account, optionally restoring from a
// premium-synced database when the premium credentials are given.
type NewUserRequest struct {
	Name             string           `json:"name"`
	Password         string           `json:"password"`
	PremiumAPIKey    string           `json:"premium_api_key"`
	PremiumAPISecret string           `json:"premium_api_secret"`
	InitialSettings  *settingsPayload `json:"initial_settings"`
	SyncDatabase     bool             `json:"sync_database"`
}

func (r *NewUserRequest) Validate(deps validation.Deps) error {
	var verrs validation.Errors
	if r.Name == "" {
		verrs.Add("name", missingField)
	}
	if r.Password == "" {
		verrs.Add("password", missingField)
	}
	if (r.PremiumAPIKey == "") != (r.PremiumAPISecret == "") {
		verrs.Add(
			"premium_api_key",
			"must provide both or neither of api key/secret",
		)
	}
	if r.InitialSettings != nil {
		if err := r.InitialSettings.Validate(deps); err != nil {
			verrs = append(verrs, err.(validation.Errors)...)
		}
	}
	return verrs.OrNil()
}

// UserActionRequest logs a user in or out, or sets premium credentials.
// Exactly one of action or premium credentials must be present; login
// additionally requires the password.
type UserActionRequest struct {
	Name             string `param:"name"`
	Action           string `json:"action"`
	Password         string `json:"password"`
	PremiumAPIKey    string `json:"premium_api_key"`
	PremiumAPISecret string `json:"premium_api_secret"`
	SyncApproval     string `json:"sync_approval"`
}

func (r *UserActionRequest) Validate(validation.Deps) error {
	var verrs validation.Errors

	switch r.SyncApproval {
	case "", "unknown", "yes", "no":
	default:
		verrs.Addf("sync_approval", "must be one of unknown, yes or no but got %s", r.SyncApproval)
	}

	switch r.Action {
	case "":
		if r.PremiumAPIKey == "" || r.PremiumAPISecret == "" {
			verrs.Add("action", "Without an action premium api key and secret must be provided")
		}
	case "login":
		if r.Password == "" {
			verrs.Add("password", "A login action requires passing a password")
		}
	case "logout":
	default:
		verrs.Addf("action", "Login action is not one of (login, logout) but %s", r.Action)
	}
	return verrs.OrNil()
}

// IsLogin reports whether the request is a login action.
func (r *UserActionRequest) IsLogin() bool { return r.Action == "login" }

// IsLogout reports whether the request is a logout action.
func (r *UserActionRequest) IsLogout() bool { return r.Action == "logout" }

// UserPasswordChangeRequest changes a logged-in user's password.
type UserPasswordChangeRequest struct {
	Name            string `param:"name"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *UserPasswordChangeRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.CurrentPassword == "" {
		verrs.Add("current_password", missingField)
	}
	if r.NewPassword == "" {
		verrs.Add("new_password", missingField)
	}
	return verrs.OrNil()
}

// UserPremiumKeyRequest sets or replaces the premium credentials of the
// logged-in user.
type UserPremiumKeyRequest struct {
	Name             string `param:"name"`
	PremiumAPIKey    string `json:"premium_api_key"`
	PremiumAPISecret string `json:"premium_api_secret"`
}

func (r *UserPremiumKeyRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.PremiumAPIKey == "" {
		verrs.Add("premium_api_key", missingField)
	}
	if r.PremiumAPISecret == "" {
		verrs.Add("premium_api_secret", missingField)
	}
	return verrs.OrNil()
}

// UserNameQuery addresses a user by the name path parameter alone.
type UserNameQuery struct {
	Name string `param:"name"`
}

func (r *UserNameQuery) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.Name == "" {
		verrs.Add("name", missingField)
	}
	return verrs.OrNil()
}
