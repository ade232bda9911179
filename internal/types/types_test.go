package types_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/chainfolio/internal/types"
)

func TestParseTimestamp(t *testing.T) {
	ts, err := types.ParseTimestamp("1609537953")
	require.NoError(t, err)
	assert.Equal(t, types.Timestamp(1609537953), ts)

	// Decimal strings are accepted only with a zero fractional part.
	ts, err = types.ParseTimestamp("1609537953.0")
	require.NoError(t, err)
	assert.Equal(t, types.Timestamp(1609537953), ts)

	_, err = types.ParseTimestamp("1609537953.5")
	assert.ErrorContains(t, err, "fractional part")

	_, err = types.ParseTimestamp("-5")
	assert.ErrorContains(t, err, "negative")

	_, err = types.ParseTimestamp("not a timestamp")
	assert.ErrorContains(t, err, "failed to deserialize a timestamp entry")
}

func TestParsePositiveAmount(t *testing.T) {
	amount, err := types.ParsePositiveAmount("10.1")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("10.1")))

	_, err = types.ParsePositiveAmount("0")
	assert.ErrorContains(t, err, "Amount should be > 0")

	_, err = types.ParsePositiveAmount("-1.5")
	assert.ErrorContains(t, err, "Amount should be > 0")

	_, err = types.ParsePositiveAmount("dsad")
	assert.ErrorContains(t, err, "failed to deserialize an amount entry")
}

func TestParsePercentage(t *testing.T) {
	// Percentages normalize to fractions for internal storage.
	frac, err := types.ParsePercentage("50.5")
	require.NoError(t, err)
	assert.True(t, frac.Equal(decimal.RequireFromString("0.505")))

	frac, err = types.ParsePercentage("100")
	require.NoError(t, err)
	assert.True(t, frac.Equal(decimal.NewFromInt(1)))

	_, err = types.ParsePercentage("-0.5")
	assert.ErrorContains(t, err, "can not be negative")

	_, err = types.ParsePercentage("100.1")
	assert.ErrorContains(t, err, "greater than 100")
}

func TestParseTaxFreeAfterPeriod(t *testing.T) {
	period, err := types.ParseTaxFreeAfterPeriod(-1)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), period)

	_, err = types.ParseTaxFreeAfterPeriod(0)
	assert.ErrorContains(t, err, "can not be set to zero")

	_, err = types.ParseTaxFreeAfterPeriod(-2)
	assert.ErrorContains(t, err, "can not be negative")

	period, err = types.ParseTaxFreeAfterPeriod(31536000)
	require.NoError(t, err)
	assert.Equal(t, int64(31536000), period)
}

func TestParseBlockchain(t *testing.T) {
	for raw, want := range map[string]types.Blockchain{
		"btc": types.Bitcoin,
		"BTC": types.Bitcoin,
		"eth": types.Ethereum,
		"ETH": types.Ethereum,
		"ksm": types.Kusama,
	} {
		chain, err := types.ParseBlockchain(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, chain)
	}

	_, err := types.ParseBlockchain("doge")
	assert.ErrorContains(t, err, "unrecognized value doge")
}

func TestParseTradeType(t *testing.T) {
	for _, raw := range []string{"buy", "sell", "settlement buy", "settlement sell"} {
		_, err := types.ParseTradeType(raw)
		assert.NoError(t, err, raw)
	}
	_, err := types.ParseTradeType("borrow")
	assert.Error(t, err)
}

func TestParseTradePair(t *testing.T) {
	pair, err := types.ParseTradePair("BTC_EUR")
	require.NoError(t, err)
	assert.Equal(t, types.TradePair("BTC_EUR"), pair)

	_, err = types.ParseTradePair("BTCEUR")
	assert.Error(t, err)
}

func TestParseHexColorCode(t *testing.T) {
	color, err := types.ParseHexColorCode("ffffff")
	require.NoError(t, err)
	assert.Equal(t, types.HexColorCode("ffffff"), color)

	_, err = types.ParseHexColorCode("#ffffff")
	assert.Error(t, err)

	_, err = types.ParseHexColorCode("fff")
	assert.Error(t, err)

	_, err = types.ParseHexColorCode("gggggg")
	assert.Error(t, err)
}

func TestSettingsApply(t *testing.T) {
	usd := types.Asset{Identifier: "USD", Symbol: "USD"}
	settings := types.DefaultSettings(usd)
	assert.Equal(t, int64(2), settings.UIFloatingPrecision)
	assert.Equal(t, int64(-1), settings.TaxFreeAfterPeriod)
	assert.Equal(t, "USD", settings.MainCurrency.Identifier)

	precision := int64(4)
	saveFrequency := int64(6)
	eur := types.Asset{Identifier: "EUR", Symbol: "EUR"}
	before := settings.LastWriteTs
	settings.Apply(types.ModifiableSettings{
		UIFloatingPrecision:  &precision,
		BalanceSaveFrequency: &saveFrequency,
		MainCurrency:         &eur,
	})

	assert.Equal(t, int64(4), settings.UIFloatingPrecision)
	assert.Equal(t, int64(6), settings.BalanceSaveFrequency)
	assert.Equal(t, "EUR", settings.MainCurrency.Identifier)
	assert.GreaterOrEqual(t, settings.LastWriteTs, before)
	// Untouched settings keep their defaults.
	assert.Equal(t, int64(20), settings.BtcDerivationGapLimit)
}

func TestLedgerActionTypeIsProfitable(t *testing.T) {
	for raw, profitable := range map[string]bool{
		"income":            true,
		"dividends income":  true,
		"airdrop":           true,
		"gift":              true,
		"grant":             true,
		"donation received": true,
		"expense":           false,
		"loss":              false,
	} {
		actionType, err := types.ParseLedgerActionType(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, profitable, actionType.IsProfitable(), raw)
	}
}

func TestAssetAmountRoundTrip(t *testing.T) {
	// Parsing and re-serializing an amount must reproduce the exact
	// decimal string: no precision loss, no exponent notation.
	for _, value := range []string{
		"10.1",
		"0.00000001",
		"1432.51",
		"31337",
		"0.000000000000000001",
	} {
		amount, err := types.ParseAssetAmount(value)
		require.NoError(t, err, value)
		assert.Equal(t, value, amount.String(), value)

		encoded, err := json.Marshal(amount)
		require.NoError(t, err, value)
		assert.Equal(t, `"`+value+`"`, string(encoded), value)
	}
}
