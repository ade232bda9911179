// Package schema defines the per-endpoint request payloads: which fields
// an endpoint accepts, how each is deserialized into a domain value, which
// defaults apply, and the cross-field rules that run over the whole
// payload.
//
// Validation is a two-phase pipeline. Phase one parses every field through
// the typed converters in internal/types, collecting all field errors
// instead of stopping at the first. Phase two runs only when phase one
// fully succeeded and checks cross-field invariants. Payloads that carry
// addresses additionally expose a post-load transformation that resolves
// ENS names through an explicitly passed resolver and produces immutable
// domain records; a single failed resolution fails the whole request.
package schema

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/chainfolio/chainfolio/internal/types"
	"github.com/chainfolio/chainfolio/internal/validation"
)

// Str is a raw scalar field that accepts a JSON string or number and keeps
// the literal text for phase-one parsing. Amounts, prices and timestamps
// arrive as either on the wire.
type Str string

// UnmarshalJSON accepts a JSON string, number or null.
func (s *Str) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid string value %s", data)
		}
		*s = Str(unquoted)
		return nil
	}
	if data[0] == '{' || data[0] == '[' {
		return fmt.Errorf("expected a string or number, got %s", data)
	}
	*s = Str(data)
	return nil
}

// UnmarshalParam lets Str bind from query and path parameters.
func (s *Str) UnmarshalParam(param string) error {
	*s = Str(param)
	return nil
}

// missingField is the failure reported when a required field is absent.
const missingField = "missing data for required field"

// parseTimestamp parses an optional or required timestamp field, applying
// def when the field is absent.
func parseTimestamp(verrs *validation.Errors, field string, raw Str, required bool, def types.Timestamp) types.Timestamp {
	if raw == "" {
		if required {
			verrs.Add(field, missingField)
		}
		return def
	}
	ts, err := types.ParseTimestamp(string(raw))
	if err != nil {
		verrs.AddErr(field, err)
		return def
	}
	return ts
}

func parseAmount(verrs *validation.Errors, field string, raw Str, required bool) types.AssetAmount {
	if raw == "" {
		if required {
			verrs.Add(field, missingField)
		}
		return types.ZeroAmount
	}
	amount, err := types.ParseAssetAmount(string(raw))
	if err != nil {
		verrs.AddErr(field, err)
	}
	return amount
}

func parsePositiveAmount(verrs *validation.Errors, field string, raw Str, required bool) types.AssetAmount {
	if raw == "" {
		if required {
			verrs.Add(field, missingField)
		}
		return types.ZeroAmount
	}
	amount, err := types.ParsePositiveAmount(string(raw))
	if err != nil {
		verrs.AddErr(field, err)
	}
	return amount
}

func parsePrice(verrs *validation.Errors, field string, raw Str, required bool) types.Price {
	if raw == "" {
		if required {
			verrs.Add(field, missingField)
		}
		return types.ZeroAmount
	}
	price, err := types.ParsePrice(string(raw))
	if err != nil {
		verrs.AddErr(field, err)
	}
	return price
}

func parseFee(verrs *validation.Errors, field string, raw Str, required bool) types.Fee {
	if raw == "" {
		if required {
			verrs.Add(field, missingField)
		}
		return types.ZeroAmount
	}
	fee, err := types.ParseFee(string(raw))
	if err != nil {
		verrs.AddErr(field, err)
	}
	return fee
}

func parseLocation(verrs *validation.Errors, field, raw string, required bool) types.Location {
	if raw == "" {
		if required {
			verrs.Add(field, missingField)
		}
		return ""
	}
	location, err := types.ParseLocation(raw)
	if err != nil {
		verrs.AddErr(field, err)
	}
	return location
}

func parseAsset(deps validation.Deps, verrs *validation.Errors, field, raw string, required bool) types.Asset {
	if raw == "" {
		if required {
			verrs.Add(field, missingField)
		}
		return types.Asset{}
	}
	asset, err := deps.Assets.Get(raw)
	if err != nil {
		verrs.AddErr(field, err)
	}
	return asset
}

func parseBlockchain(verrs *validation.Errors, field, raw string, required bool) types.Blockchain {
	if raw == "" {
		if required {
			verrs.Add(field, missingField)
		}
		return ""
	}
	chain, err := types.ParseBlockchain(raw)
	if err != nil {
		verrs.AddErr(field, err)
	}
	return chain
}
