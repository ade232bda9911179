package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/chainfolio/internal/schema"
)

func TestNewUserRequest(t *testing.T) {
	req := schema.NewUserRequest{Name: "foo", Password: "pw"}
	assert.NoError(t, req.Validate(deps()))

	missing := schema.NewUserRequest{}
	fields := fieldMessages(t, missing.Validate(deps()))
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "password")
}

func TestNewUserRequestPremiumCredentialsPairing(t *testing.T) {
	// Providing only one half of the premium credentials is rejected.
	req := schema.NewUserRequest{Name: "foo", Password: "pw", PremiumAPIKey: "key"}
	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t,
		fields["premium_api_key"],
		"must provide both or neither of api key/secret",
	)

	req.PremiumAPISecret = "secret"
	assert.NoError(t, req.Validate(deps()))
}

func TestUserActionRequest(t *testing.T) {
	login := schema.UserActionRequest{Name: "foo", Action: "login", Password: "pw"}
	require.NoError(t, login.Validate(deps()))
	assert.True(t, login.IsLogin())
	assert.False(t, login.IsLogout())

	logout := schema.UserActionRequest{Name: "foo", Action: "logout"}
	require.NoError(t, logout.Validate(deps()))
	assert.True(t, logout.IsLogout())
}

func TestUserActionRequestLoginNeedsPassword(t *testing.T) {
	req := schema.UserActionRequest{Name: "foo", Action: "login"}
	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t, fields["password"], "A login action requires passing a password")
}

func TestUserActionRequestUnknownAction(t *testing.T) {
	req := schema.UserActionRequest{Name: "foo", Action: "register"}
	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t,
		fields["action"],
		"Login action is not one of (login, logout) but register",
	)
}

func TestUserActionRequestNoActionNeedsPremiumPair(t *testing.T) {
	req := schema.UserActionRequest{Name: "foo"}
	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t,
		fields["action"],
		"Without an action premium api key and secret must be provided",
	)

	req.PremiumAPIKey = "key"
	req.PremiumAPISecret = "secret"
	assert.NoError(t, req.Validate(deps()))
}

func TestUserActionRequestSyncApproval(t *testing.T) {
	for _, ok := range []string{"", "unknown", "yes", "no"} {
		req := schema.UserActionRequest{Name: "foo", Action: "logout", SyncApproval: ok}
		assert.NoError(t, req.Validate(deps()))
	}

	req := schema.UserActionRequest{Name: "foo", Action: "logout", SyncApproval: "maybe"}
	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t,
		fields["sync_approval"],
		"must be one of unknown, yes or no but got maybe",
	)
}

func TestUserPasswordChangeRequest(t *testing.T) {
	req := schema.UserPasswordChangeRequest{Name: "foo"}
	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t, fields, "current_password")
	assert.Contains(t, fields, "new_password")

	req.CurrentPassword = "old"
	req.NewPassword = "new"
	assert.NoError(t, req.Validate(deps()))
}
