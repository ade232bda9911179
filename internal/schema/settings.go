package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chainfolio/chainfolio/internal/types"
	"github.com/chainfolio/chainfolio/internal/validation"
)

// SettingsPatchRequest wraps the modifiable settings under the "settings"
// key. Absent fields leave the corresponding setting unchanged.
type SettingsPatchRequest struct {
	Settings settingsPayload `json:"settings"`
}

func (r *SettingsPatchRequest) Validate(deps validation.Deps) error {
	return r.Settings.Validate(deps)
}

// Modifications returns the validated settings changes.
func (r *SettingsPatchRequest) Modifications() types.ModifiableSettings {
	return r.Settings.settings
}

type settingsPayload struct {
	PremiumShouldSync         *bool    `json:"premium_should_sync"`
	IncludeCrypto2Crypto      *bool    `json:"include_crypto2crypto"`
	AnonymizedLogs            *bool    `json:"anonymized_logs"`
	SubmitUsageAnalytics      *bool    `json:"submit_usage_analytics"`
	UIFloatingPrecision       *int64   `json:"ui_floating_precision"`
	TaxFreeAfterPeriod        *int64   `json:"taxfree_after_period"`
	BalanceSaveFrequency      *int64   `json:"balance_save_frequency"`
	IncludeGasCosts           *bool    `json:"include_gas_costs"`
	EthRPCEndpoint            *string  `json:"eth_rpc_endpoint"`
	KsmRPCEndpoint            *string  `json:"ksm_rpc_endpoint"`
	MainCurrency              *string  `json:"main_currency"`
	DateDisplayFormat         *string  `json:"date_display_format"`
	KrakenAccountType         *string  `json:"kraken_account_type"`
	ActiveModules             []string `json:"active_modules"`
	FrontendSettings          *string  `json:"frontend_settings"`
	AccountForAssetsMovements *bool    `json:"account_for_assets_movements"`
	BtcDerivationGapLimit     *int64   `json:"btc_derivation_gap_limit"`
	CalculatePastCostBasis    *bool    `json:"calculate_past_cost_basis"`
	DisplayDateInLocaltime    *bool    `json:"display_date_in_localtime"`
	CurrentPriceOracles       []string `json:"current_price_oracles"`
	HistoricalPriceOracles    []string `json:"historical_price_oracles"`
	TaxableLedgerActions      []string `json:"taxable_ledger_actions"`

	settings types.ModifiableSettings
}

// Settings returns the validated settings changes.
func (p *settingsPayload) Settings() types.ModifiableSettings {
	return p.settings
}

func (p *settingsPayload) Validate(deps validation.Deps) error {
	var verrs validation.Errors

	p.settings = types.ModifiableSettings{
		PremiumShouldSync:         p.PremiumShouldSync,
		IncludeCrypto2Crypto:      p.IncludeCrypto2Crypto,
		AnonymizedLogs:            p.AnonymizedLogs,
		SubmitUsageAnalytics:      p.SubmitUsageAnalytics,
		IncludeGasCosts:           p.IncludeGasCosts,
		EthRPCEndpoint:            p.EthRPCEndpoint,
		KsmRPCEndpoint:            p.KsmRPCEndpoint,
		DateDisplayFormat:         p.DateDisplayFormat,
		FrontendSettings:          p.FrontendSettings,
		AccountForAssetsMovements: p.AccountForAssetsMovements,
		CalculatePastCostBasis:    p.CalculatePastCostBasis,
		DisplayDateInLocaltime:    p.DisplayDateInLocaltime,
	}

	if p.UIFloatingPrecision != nil {
		if *p.UIFloatingPrecision < 0 || *p.UIFloatingPrecision > 8 {
			verrs.Addf(
				"ui_floating_precision",
				"floating precision must be between 0 and 8, got %d",
				*p.UIFloatingPrecision,
			)
		}
		p.settings.UIFloatingPrecision = p.UIFloatingPrecision
	}

	if p.TaxFreeAfterPeriod != nil {
		period, err := types.ParseTaxFreeAfterPeriod(*p.TaxFreeAfterPeriod)
		if err != nil {
			verrs.AddErr("taxfree_after_period", err)
		}
		p.settings.TaxFreeAfterPeriod = &period
	}

	if p.BalanceSaveFrequency != nil {
		if *p.BalanceSaveFrequency < 1 {
			verrs.Add("balance_save_frequency", "balance save frequency should be a positive number of hours")
		}
		p.settings.BalanceSaveFrequency = p.BalanceSaveFrequency
	}

	if p.BtcDerivationGapLimit != nil {
		if *p.BtcDerivationGapLimit < 1 {
			verrs.Add("btc_derivation_gap_limit", "derivation gap limit should be a positive integer")
		}
		p.settings.BtcDerivationGapLimit = p.BtcDerivationGapLimit
	}

	if p.MainCurrency != nil {
		asset := parseAsset(deps, &verrs, "main_currency", *p.MainCurrency, true)
		p.settings.MainCurrency = &asset
	}

	if p.KrakenAccountType != nil {
		accountType, err := types.ParseKrakenAccountType(*p.KrakenAccountType)
		if err != nil {
			verrs.AddErr("kraken_account_type", err)
		}
		p.settings.KrakenAccountType = &accountType
	}

	if p.ActiveModules != nil {
		for _, module := range p.ActiveModules {
			if _, ok := types.AvailableModules[module]; !ok {
				verrs.Addf(
					"active_modules",
					"%s is not a valid module. Valid modules are: %s",
					module, strings.Join(types.ModuleNames(), ", "),
				)
			}
		}
		p.settings.ActiveModules = p.ActiveModules
	}

	if p.CurrentPriceOracles != nil {
		oracles, err := parseOracleList(
			p.CurrentPriceOracles,
			oracleNames(types.AllCurrentPriceOracles),
			"current price",
			types.ParseCurrentPriceOracle,
		)
		if err != nil {
			verrs.AddErr("current_price_oracles", err)
		}
		p.settings.CurrentPriceOracles = oracles
	}

	if p.HistoricalPriceOracles != nil {
		oracles, err := parseOracleList(
			p.HistoricalPriceOracles,
			oracleNames(types.AllHistoricalPriceOracles),
			"historical price",
			types.ParseHistoricalPriceOracle,
		)
		if err != nil {
			verrs.AddErr("historical_price_oracles", err)
		}
		p.settings.HistoricalPriceOracles = oracles
	}

	if p.TaxableLedgerActions != nil {
		actionTypes := make([]types.LedgerActionType, 0, len(p.TaxableLedgerActions))
		for _, name := range p.TaxableLedgerActions {
			actionType, err := types.ParseLedgerActionType(name)
			if err != nil {
				verrs.AddErr("taxable_ledger_actions", err)
				continue
			}
			actionTypes = append(actionTypes, actionType)
		}
		p.settings.TaxableLedgerActions = actionTypes
	}

	return verrs.OrNil()
}

// parseOracleList validates an oracle ordering: it must be non-empty,
// contain only supported oracle names and have no repeats.
func parseOracleList[T ~string](values, supported []string, kind string, parse func(string) (T, error)) ([]T, error) {
	invalid := invalidOracleNames(values, supported)
	if len(invalid) > 0 {
		return nil, fmt.Errorf(
			"invalid %s oracles in: %s. Supported oracles are: %s. Check there are no repeated ones",
			kind, strings.Join(quoteAll(invalid), ", "), strings.Join(supported, ", "),
		)
	}
	oracles := make([]T, 0, len(values))
	for _, value := range values {
		oracle, err := parse(value)
		if err != nil {
			return nil, err
		}
		oracles = append(oracles, oracle)
	}
	return oracles, nil
}

// invalidOracleNames returns the entries that make an oracle list invalid:
// unknown names and any repeated name. An empty list is entirely invalid.
func invalidOracleNames(values, supported []string) []string {
	if len(values) == 0 {
		return []string{"<empty list>"}
	}
	known := make(map[string]struct{}, len(supported))
	for _, name := range supported {
		known[name] = struct{}{}
	}
	var invalid []string
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		_, ok := known[value]
		_, repeated := seen[value]
		if !ok || repeated {
			invalid = append(invalid, value)
		}
		seen[value] = struct{}{}
	}
	return invalid
}

func oracleNames[T ~string](oracles []T) []string {
	names := make([]string, 0, len(oracles))
	for _, oracle := range oracles {
		names = append(names, string(oracle))
	}
	return names
}

func quoteAll(values []string) []string {
	quoted := make([]string, 0, len(values))
	for _, value := range values {
		quoted = append(quoted, strconv.Quote(value))
	}
	return quoted
}
