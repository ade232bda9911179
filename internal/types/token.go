package types

import "github.com/shopspring/decimal"

// UnderlyingToken is a constituent of a custom token with its weight as a
// 0-1 fraction.
type UnderlyingToken struct {
	Address string          `json:"address"`
	Weight  decimal.Decimal `json:"weight"`
}

// CustomToken is user-supplied metadata for an Ethereum token the registry
// does not know about. UnderlyingTokens is nil when the token wraps
// nothing; an empty non-nil list is rejected at validation.
type CustomToken struct {
	Address          string            `json:"address"`
	Decimals         int               `json:"decimals"`
	Name             string            `json:"name"`
	Symbol           string            `json:"symbol"`
	Started          *Timestamp        `json:"started,omitempty"`
	Coingecko        string            `json:"coingecko,omitempty"`
	Cryptocompare    string            `json:"cryptocompare,omitempty"`
	UnderlyingTokens []UnderlyingToken `json:"underlying_tokens,omitempty"`
}

// ModifiableSettings carries the settings a PUT /settings request may
// change. Pointer and nil-able fields distinguish "leave unchanged" from an
// explicit value.
type ModifiableSettings struct {
	PremiumShouldSync         *bool
	IncludeCrypto2Crypto      *bool
	AnonymizedLogs            *bool
	SubmitUsageAnalytics      *bool
	UIFloatingPrecision       *int64
	TaxFreeAfterPeriod        *int64
	BalanceSaveFrequency      *int64
	IncludeGasCosts           *bool
	EthRPCEndpoint            *string
	KsmRPCEndpoint            *string
	MainCurrency              *Asset
	DateDisplayFormat         *string
	KrakenAccountType         *KrakenAccountType
	ActiveModules             []string
	FrontendSettings          *string
	AccountForAssetsMovements *bool
	BtcDerivationGapLimit     *int64
	CalculatePastCostBasis    *bool
	DisplayDateInLocaltime    *bool
	CurrentPriceOracles       []CurrentPriceOracle
	HistoricalPriceOracles    []HistoricalPriceOracle
	TaxableLedgerActions      []LedgerActionType
}
