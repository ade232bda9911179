package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/chainfolio/internal/schema"
	"github.com/chainfolio/chainfolio/internal/types"
)

func settingsRequest(t *testing.T, payload string) schema.SettingsPatchRequest {
	t.Helper()
	var req schema.SettingsPatchRequest
	require.NoError(t, json.Unmarshal([]byte(`{"settings": `+payload+`}`), &req))
	return req
}

func TestSettingsPatchValid(t *testing.T) {
	req := settingsRequest(t, `{
		"ui_floating_precision": 4,
		"main_currency": "EUR",
		"balance_save_frequency": 12,
		"taxfree_after_period": 31536000,
		"kraken_account_type": "intermediate",
		"active_modules": ["makerdao_dsr", "aave"]
	}`)
	require.NoError(t, req.Validate(deps()))

	mod := req.Modifications()
	require.NotNil(t, mod.UIFloatingPrecision)
	assert.Equal(t, int64(4), *mod.UIFloatingPrecision)
	require.NotNil(t, mod.MainCurrency)
	assert.Equal(t, "EUR", mod.MainCurrency.Identifier)
	require.NotNil(t, mod.KrakenAccountType)
	assert.Equal(t, types.KrakenIntermediate, *mod.KrakenAccountType)
	assert.Equal(t, []string{"makerdao_dsr", "aave"}, mod.ActiveModules)
}

func TestSettingsPatchEmptyLeavesEverythingUnchanged(t *testing.T) {
	req := settingsRequest(t, `{}`)
	require.NoError(t, req.Validate(deps()))

	mod := req.Modifications()
	assert.Nil(t, mod.UIFloatingPrecision)
	assert.Nil(t, mod.MainCurrency)
	assert.Nil(t, mod.ActiveModules)
	assert.Nil(t, mod.CurrentPriceOracles)
}

func TestSettingsPatchFloatingPrecisionRange(t *testing.T) {
	req := settingsRequest(t, `{"ui_floating_precision": 9}`)
	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t,
		fields["ui_floating_precision"],
		"floating precision must be between 0 and 8, got 9",
	)

	req = settingsRequest(t, `{"ui_floating_precision": -1}`)
	fields = fieldMessages(t, req.Validate(deps()))
	assert.Contains(t, fields, "ui_floating_precision")
}

func TestSettingsPatchTaxFreePeriod(t *testing.T) {
	req := settingsRequest(t, `{"taxfree_after_period": -1}`)
	assert.NoError(t, req.Validate(deps()))

	req = settingsRequest(t, `{"taxfree_after_period": 0}`)
	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t, fields, "taxfree_after_period")
}

func TestSettingsPatchUnknownModule(t *testing.T) {
	req := settingsRequest(t, `{"active_modules": ["not_a_module"]}`)
	fields := fieldMessages(t, req.Validate(deps()))
	require.Len(t, fields["active_modules"], 1)
	assert.Contains(t, fields["active_modules"][0], "not_a_module is not a valid module. Valid modules are:")
}

func TestSettingsPatchOracleLists(t *testing.T) {
	req := settingsRequest(t, `{
		"current_price_oracles": ["coingecko", "cryptocompare"],
		"historical_price_oracles": ["cryptocompare", "coingecko"]
	}`)
	require.NoError(t, req.Validate(deps()))

	mod := req.Modifications()
	assert.Equal(t,
		[]types.CurrentPriceOracle{types.CurrentPriceCoingecko, types.CurrentPriceCryptocompare},
		mod.CurrentPriceOracles,
	)
	assert.Equal(t,
		[]types.HistoricalPriceOracle{types.HistoricalPriceCryptocompare, types.HistoricalPriceCoingecko},
		mod.HistoricalPriceOracles,
	)
}

func TestSettingsPatchOracleListRejectsUnknown(t *testing.T) {
	req := settingsRequest(t, `{"current_price_oracles": ["coingecko", "myoracle"]}`)
	fields := fieldMessages(t, req.Validate(deps()))
	require.Len(t, fields["current_price_oracles"], 1)
	assert.Equal(t,
		`invalid current price oracles in: "myoracle". Supported oracles are: coingecko, cryptocompare. Check there are no repeated ones`,
		fields["current_price_oracles"][0],
	)
}

func TestSettingsPatchOracleListRejectsRepeats(t *testing.T) {
	req := settingsRequest(t, `{"historical_price_oracles": ["coingecko", "coingecko"]}`)
	fields := fieldMessages(t, req.Validate(deps()))
	require.Len(t, fields["historical_price_oracles"], 1)
	assert.Contains(t, fields["historical_price_oracles"][0], `"coingecko"`)
	assert.Contains(t, fields["historical_price_oracles"][0], "Check there are no repeated ones")
}

func TestSettingsPatchOracleListRejectsEmpty(t *testing.T) {
	req := settingsRequest(t, `{"current_price_oracles": []}`)
	fields := fieldMessages(t, req.Validate(deps()))
	require.Len(t, fields["current_price_oracles"], 1)
	assert.Contains(t, fields["current_price_oracles"][0], `"<empty list>"`)
}
