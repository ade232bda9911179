package rest_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/chainfolio/internal/assets"
	"github.com/chainfolio/chainfolio/internal/chain/ethereum"
	"github.com/chainfolio/chainfolio/internal/errs"
	"github.com/chainfolio/chainfolio/internal/rest"
	"github.com/chainfolio/chainfolio/internal/types"
)

func newAPI(t *testing.T) *rest.API {
	t.Helper()
	api, err := rest.New(
		zerolog.Nop(),
		assets.NewRegistry(),
		nil,
		ethereum.OfflineResolver{},
		rest.OfflineOracle{},
	)
	require.NoError(t, err)
	t.Cleanup(api.Stop)
	return api
}

func resultOf(t *testing.T, envelope map[string]any) any {
	t.Helper()
	require.Contains(t, envelope, "result")
	require.Equal(t, "", envelope["message"])
	return envelope["result"]
}

func sampleTrade(ts types.Timestamp) types.Trade {
	return types.Trade{
		Timestamp:   ts,
		Location:    types.LocationExternal,
		Pair:        types.TradePair("ETH_EUR"),
		TradeType:   types.TradeBuy,
		Amount:      decimal.NewFromInt(2),
		Rate:        decimal.RequireFromString("1432.51"),
		Fee:         decimal.RequireFromString("0.5"),
		FeeCurrency: types.Asset{Identifier: "EUR"},
	}
}

func TestTradeLifecycle(t *testing.T) {
	api := newAPI(t)

	added := resultOf(t, api.AddTrade(sampleTrade(1609537953))).([]map[string]any)
	require.Len(t, added, 1)
	tradeID, ok := added[0]["trade_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, tradeID)

	api.AddTrade(sampleTrade(1700000000))

	// Unfiltered listing inside the full range sees both trades.
	listed := resultOf(t, api.Trades(0, 2000000000, "")).([]map[string]any)
	assert.Len(t, listed, 2)

	// The time range filter excludes the second trade.
	listed = resultOf(t, api.Trades(0, 1609537953, "")).([]map[string]any)
	assert.Len(t, listed, 1)

	// The location filter excludes everything.
	listed = resultOf(t, api.Trades(0, 2000000000, types.LocationKraken)).([]map[string]any)
	assert.Empty(t, listed)

	edited := sampleTrade(1609537953)
	edited.TradeID = tradeID
	edited.Notes = "edited"
	envelope, err := api.EditTrade(edited)
	require.NoError(t, err)
	assert.Equal(t, "edited", resultOf(t, envelope).(map[string]any)["notes"])

	_, err = api.DeleteTrade(tradeID)
	require.NoError(t, err)
	listed = resultOf(t, api.Trades(0, 2000000000, "")).([]map[string]any)
	assert.Len(t, listed, 1)
}

func TestTradeEditAndDeleteUnknownID(t *testing.T) {
	api := newAPI(t)

	trade := sampleTrade(1609537953)
	trade.TradeID = "missing"
	_, err := api.EditTrade(trade)
	require.Error(t, err)
	assert.EqualError(t, err, "could not find trade with id missing to edit")
	var conflict *errs.HTTPError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, http.StatusConflict, conflict.Status)

	_, err = api.DeleteTrade("missing")
	assert.EqualError(t, err, "could not find trade with id missing to delete")
}

func TestLedgerActionLifecycle(t *testing.T) {
	api := newAPI(t)

	action := types.LedgerAction{
		Timestamp:  1609537953,
		ActionType: types.LedgerActionIncome,
		Location:   types.LocationBlockchain,
		Amount:     decimal.NewFromInt(1),
		Asset:      types.Asset{Identifier: "ETH"},
	}
	envelope := api.AddLedgerAction(action)
	id := resultOf(t, envelope).(map[string]any)["identifier"].(int64)
	assert.Equal(t, int64(1), id)

	action.Identifier = id
	action.Notes = "staking income"
	_, err := api.EditLedgerAction(action)
	require.NoError(t, err)

	remaining, err := api.DeleteLedgerAction(id)
	require.NoError(t, err)
	assert.Empty(t, resultOf(t, remaining).([]map[string]any))

	_, err = api.DeleteLedgerAction(id)
	assert.EqualError(t, err, "could not find ledger action with identifier 1 to delete")

	_, err = api.EditLedgerAction(action)
	assert.EqualError(t, err, "could not find ledger action with identifier 1 to edit")
}

func TestUserLifecycle(t *testing.T) {
	api := newAPI(t)

	_, err := api.CreateUser("alice", "secret", "", "")
	require.NoError(t, err)

	users := resultOf(t, api.Users()).(map[string]string)
	assert.Equal(t, map[string]string{"alice": "loggedin"}, users)

	// A second user can not be created while alice is logged in.
	_, err = api.CreateUser("bob", "pw", "", "")
	assert.EqualError(t, err,
		"can not create a new user because user alice is already logged in. Log out of that user first")

	_, err = api.CreateUser("alice", "other", "", "")
	require.Error(t, err)

	_, err = api.LogoutUser("alice")
	require.NoError(t, err)

	_, err = api.LoginUser("alice", "wrong")
	assert.EqualError(t, err, "wrong password or invalid/corrupt database for user")

	_, err = api.LoginUser("alice", "secret")
	require.NoError(t, err)

	_, err = api.LoginUser("alice", "secret")
	assert.EqualError(t, err, "user alice is already logged in")

	_, err = api.LoginUser("nobody", "pw")
	assert.EqualError(t, err, "user nobody does not exist")
}

func TestUserPasswordAndPremium(t *testing.T) {
	api := newAPI(t)
	_, err := api.CreateUser("alice", "secret", "", "")
	require.NoError(t, err)

	_, err = api.ChangeUserPassword("alice", "nope", "next")
	assert.EqualError(t, err, "provided current password is not correct")

	_, err = api.ChangeUserPassword("alice", "secret", "next")
	require.NoError(t, err)

	_, err = api.DeletePremiumCredentials("alice")
	assert.EqualError(t, err, "user has no premium credentials to delete")

	_, err = api.SetPremiumCredentials("alice", "key", "c2VjcmV0")
	require.NoError(t, err)
	_, err = api.DeletePremiumCredentials("alice")
	require.NoError(t, err)

	_, err = api.LogoutUser("alice")
	require.NoError(t, err)
	_, err = api.ChangeUserPassword("alice", "next", "another")
	assert.EqualError(t, err, "user alice is not logged in")
}

func TestExchangeRegistration(t *testing.T) {
	api := newAPI(t)

	_, err := api.RegisterExchange("kraken", "key", types.APISecret("secret"), "", types.KrakenStarter)
	require.NoError(t, err)

	_, err = api.RegisterExchange("kraken", "key2", types.APISecret("secret2"), "", types.KrakenStarter)
	assert.EqualError(t, err, "exchange kraken is already registered")

	_, err = api.RegisterExchange("coinbasepro", "key", types.APISecret("secret"), "phrase", "")
	require.NoError(t, err)

	names := resultOf(t, api.Exchanges()).([]string)
	assert.Equal(t, []string{"coinbasepro", "kraken"}, names)

	_, err = api.DeregisterExchange("kraken")
	require.NoError(t, err)
	_, err = api.DeregisterExchange("kraken")
	assert.EqualError(t, err, "exchange kraken is not registered")
}

func TestIgnoredAssets(t *testing.T) {
	api := newAPI(t)
	eth := types.Asset{Identifier: "ETH"}

	envelope, err := api.IgnoreAssets([]types.Asset{eth})
	require.NoError(t, err)
	assert.Equal(t, []string{"ETH"}, resultOf(t, envelope).([]string))

	_, err = api.IgnoreAssets([]types.Asset{eth})
	assert.EqualError(t, err, "ETH is already in ignored assets")

	_, err = api.UnignoreAssets([]types.Asset{{Identifier: "BTC"}})
	assert.EqualError(t, err, "BTC is not in ignored assets")

	envelope, err = api.UnignoreAssets([]types.Asset{eth})
	require.NoError(t, err)
	assert.Empty(t, resultOf(t, envelope).([]string))
}

func TestUpdateSettings(t *testing.T) {
	api := newAPI(t)

	precision := int64(4)
	envelope := api.UpdateSettings(types.ModifiableSettings{UIFloatingPrecision: &precision})
	settings := resultOf(t, envelope).(types.Settings)
	assert.Equal(t, int64(4), settings.UIFloatingPrecision)
	assert.Equal(t, "USD", settings.MainCurrency.Identifier)
}

func TestMessagesConsumeOnce(t *testing.T) {
	api := newAPI(t)
	api.QueueWarning("something looks off")
	api.QueueError("something broke")

	payload := resultOf(t, api.ConsumeMessages()).(map[string]any)
	assert.Equal(t, []string{"something looks off"}, payload["warnings"])
	assert.Equal(t, []string{"something broke"}, payload["errors"])

	payload = resultOf(t, api.ConsumeMessages()).(map[string]any)
	assert.Empty(t, payload["warnings"])
	assert.Empty(t, payload["errors"])
}

func TestTaskOutcomeEnvelope(t *testing.T) {
	api := newAPI(t)

	_, ok := api.TaskOutcome(42)
	assert.False(t, ok)

	envelope := api.SpawnTask("history", func(ctx context.Context) (any, string) {
		return map[string]any{"events": 0}, ""
	})
	id := resultOf(t, envelope).(map[string]any)["task_id"].(int64)
	api.Tasks.Stop()

	outcome, ok := api.TaskOutcome(id)
	require.True(t, ok)
	payload := resultOf(t, outcome).(map[string]any)
	assert.Equal(t, string(rest.TaskCompleted), payload["status"])
	assert.Equal(t,
		map[string]any{"result": map[string]any{"events": 0}, "message": ""},
		payload["outcome"],
	)

	listed := resultOf(t, api.TaskList()).(map[string]any)
	assert.Equal(t, []int64{id}, listed["completed"])
	assert.Empty(t, listed["pending"])
}

func TestBlockchainAccounts(t *testing.T) {
	api := newAPI(t)

	accounts := []types.BlockchainAccount{
		{Address: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", Label: "main"},
	}
	_, err := api.AddBlockchainAccounts(types.Ethereum, accounts)
	require.NoError(t, err)

	_, err = api.AddBlockchainAccounts(types.Ethereum, accounts)
	require.Error(t, err)

	_, err = api.EditBlockchainAccounts(types.Ethereum, []types.BlockchainAccount{
		{Address: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", Label: "renamed"},
	})
	require.NoError(t, err)

	_, err = api.RemoveBlockchainAccounts(types.Ethereum, []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	})
	require.NoError(t, err)

	_, err = api.RemoveBlockchainAccounts(types.Ethereum, []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	})
	require.Error(t, err)
}

func TestManualBalances(t *testing.T) {
	api := newAPI(t)

	balances := []types.ManuallyTrackedBalance{{
		Asset:    types.Asset{Identifier: "ETH"},
		Label:    "cold storage",
		Amount:   decimal.NewFromInt(10),
		Location: types.LocationBlockchain,
	}}
	_, err := api.AddManualBalances(balances)
	require.NoError(t, err)

	_, err = api.AddManualBalances(balances)
	require.Error(t, err)

	balances[0].Amount = decimal.NewFromInt(12)
	_, err = api.EditManualBalances(balances)
	require.NoError(t, err)

	_, err = api.DeleteManualBalances([]string{"cold storage"})
	require.NoError(t, err)

	_, err = api.DeleteManualBalances([]string{"cold storage"})
	require.Error(t, err)
}

func TestPurgeExchangeData(t *testing.T) {
	api := newAPI(t)

	_, err := api.RegisterExchange("kraken", "key", types.APISecret("secret"), "", types.KrakenStarter)
	require.NoError(t, err)

	envelope, err := api.PurgeExchangeData("kraken")
	ok := resultOf(t, mustResult(t, envelope, err)).(bool)
	assert.True(t, ok)

	// An empty name purges everything and never conflicts.
	envelope, err = api.PurgeExchangeData("")
	ok = resultOf(t, mustResult(t, envelope, err)).(bool)
	assert.True(t, ok)

	_, err = api.PurgeExchangeData("binance")
	assert.EqualError(t, err, "exchange binance is not registered")
}

func TestSupportedOracles(t *testing.T) {
	api := newAPI(t)

	oracles := resultOf(t, api.SupportedOracles()).(map[string]any)
	current := oracles["current"].([]map[string]string)
	history := oracles["history"].([]map[string]string)

	require.Len(t, current, 2)
	assert.Equal(t, map[string]string{"id": "coingecko", "name": "Coingecko"}, current[0])
	assert.Equal(t, map[string]string{"id": "cryptocompare", "name": "Cryptocompare"}, current[1])

	require.Len(t, history, 2)
	assert.Equal(t, "cryptocompare", history[0]["id"])
	assert.Equal(t, "coingecko", history[1]["id"])
}

func TestAssetIcons(t *testing.T) {
	api := newAPI(t)
	btc := types.Asset{Identifier: "BTC"}

	_, err := api.AssetIcon(btc, "thumb")
	assert.EqualError(t, err, "no icon found for asset BTC")

	// Uploaded bytes are served back directly.
	icon := []byte("png bytes")
	ok := resultOf(t, api.SetAssetIcon(btc, "icon.png", icon)).(bool)
	assert.True(t, ok)
	data, err := api.AssetIcon(btc, "thumb")
	require.NoError(t, err)
	assert.Equal(t, icon, data)

	// Path-backed icons are read from disk on demand.
	path := filepath.Join(t.TempDir(), "eth.png")
	require.NoError(t, os.WriteFile(path, []byte("eth icon"), 0o600))
	eth := types.Asset{Identifier: "ETH"}
	resultOf(t, api.SetAssetIcon(eth, path, nil))
	data, err = api.AssetIcon(eth, "thumb")
	require.NoError(t, err)
	assert.Equal(t, []byte("eth icon"), data)

	// A stored path that no longer exists reports not found.
	missing := types.Asset{Identifier: "EUR"}
	resultOf(t, api.SetAssetIcon(missing, filepath.Join(t.TempDir(), "gone.png"), nil))
	_, err = api.AssetIcon(missing, "thumb")
	assert.EqualError(t, err, "no icon found for asset EUR")
}

func mustResult(t *testing.T, envelope map[string]any, err error) map[string]any {
	t.Helper()
	require.NoError(t, err)
	return envelope
}
