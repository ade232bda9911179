package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chainfolio/chainfolio/internal/schema"
)

// UsersResource lists the known users and creates new ones.
type UsersResource struct{ Handler }

func (r *UsersResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().Users(), nil
	})
}

func (r *UsersResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.NewUserRequest) (any, error) {
		outcome, err := r.API().CreateUser(
			req.Name, req.Password, req.PremiumAPIKey, req.PremiumAPISecret,
		)
		if err != nil {
			return nil, err
		}
		if req.InitialSettings != nil {
			// User creation applies the initial settings in the same call.
			r.API().UpdateSettings(req.InitialSettings.Settings())
		}
		return outcome, nil
	})
}

// UsersByNameResource handles the per-user actions: login, logout and
// premium credential replacement.
type UsersByNameResource struct{ Handler }

func (r *UsersByNameResource) Patch() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.UserActionRequest) (any, error) {
		switch {
		case req.IsLogin():
			return r.API().LoginUser(req.Name, req.Password)
		case req.IsLogout():
			return r.API().LogoutUser(req.Name)
		default:
			return r.API().SetPremiumCredentials(
				req.Name, req.PremiumAPIKey, req.PremiumAPISecret,
			)
		}
	})
}

// UserPasswordChangeResource changes the password of a logged-in user.
type UserPasswordChangeResource struct{ Handler }

func (r *UserPasswordChangeResource) Patch() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.UserPasswordChangeRequest) (any, error) {
		return r.API().ChangeUserPassword(req.Name, req.CurrentPassword, req.NewPassword)
	})
}

// UserPremiumKeyResource sets or removes the premium credentials of a user.
type UserPremiumKeyResource struct{ Handler }

func (r *UserPremiumKeyResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.UserPremiumKeyRequest) (any, error) {
		return r.API().SetPremiumCredentials(req.Name, req.PremiumAPIKey, req.PremiumAPISecret)
	})
}

func (r *UserPremiumKeyResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.UserNameQuery) (any, error) {
		return r.API().DeletePremiumCredentials(req.Name)
	})
}

// SettingsResource reads and modifies the user settings.
type SettingsResource struct{ Handler }

func (r *SettingsResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().Settings(), nil
	})
}

func (r *SettingsResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.SettingsPatchRequest) (any, error) {
		return r.API().UpdateSettings(req.Modifications()), nil
	})
}
