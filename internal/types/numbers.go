// Package types holds the domain value types the API surface deserializes
// request data into: arbitrary-precision amounts, timestamps, closed enums
// for blockchains, locations and oracles, asset identifiers and the record
// types assembled from validated requests.
//
// Every type with a textual wire form owns exactly one conversion
// direction-pair: a Parse function that either returns a value or an error
// with a human-readable reason, and a serialization back to the canonical
// textual form. Parsing never falls back to a silent default.
package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AssetAmount, Price and Fee are arbitrary-precision decimals. They are
// aliases so the full decimal API stays available; shopspring/decimal
// marshals to a quoted exact decimal string by default, which is the wire
// contract: decimals never serialize as floating-point-lossy numbers.
type (
	AssetAmount = decimal.Decimal
	Price       = decimal.Decimal
	Fee         = decimal.Decimal
)

// ZeroAmount is the shared zero constant used in comparisons.
var ZeroAmount = decimal.Zero

// ParseAssetAmount parses a decimal string into an AssetAmount.
func ParseAssetAmount(value string) (AssetAmount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to deserialize an amount entry from %s", value)
	}
	return d, nil
}

// ParsePositiveAmount parses a decimal string and additionally rejects
// anything not strictly greater than zero.
func ParsePositiveAmount(value string) (AssetAmount, error) {
	amount, err := ParseAssetAmount(value)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.Cmp(ZeroAmount) <= 0 {
		return decimal.Zero, fmt.Errorf("non-positive amount %s given. Amount should be > 0", value)
	}
	return amount, nil
}

// ParsePrice parses a decimal string into a Price.
func ParsePrice(value string) (Price, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to deserialize a price/rate entry from %s", value)
	}
	return d, nil
}

// ParseFee parses a decimal string into a Fee.
func ParseFee(value string) (Fee, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to deserialize a fee entry from %s", value)
	}
	return d, nil
}

var hundred = decimal.NewFromInt(100)

// ParsePercentage parses a percentage in the 0-100 range and normalizes it
// to a 0-1 fraction for internal storage.
func ParsePercentage(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to deserialize a percentage entry from %s", value)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("percentage field can not be negative")
	}
	if d.Cmp(hundred) > 0 {
		return decimal.Zero, fmt.Errorf("percentage field can not be greater than 100")
	}
	return d.Div(hundred), nil
}

// ParseTaxFreeAfterPeriod validates the taxfree_after_period setting. The
// only allowed negative value is the -1 sentinel that disables the setting,
// and zero is always rejected.
func ParseTaxFreeAfterPeriod(value int64) (int64, error) {
	if value < -1 {
		return 0, fmt.Errorf(
			"the taxfree_after_period value can not be negative, except for " +
				"the value of -1 to disable the setting",
		)
	}
	if value == 0 {
		return 0, fmt.Errorf("the taxfree_after_period value can not be set to zero")
	}
	return value, nil
}
