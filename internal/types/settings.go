package types

// Settings is the full user configuration, returned whole by the settings
// endpoint and updated field-wise through ModifiableSettings.
type Settings struct {
	Version                   int                     `json:"version"`
	PremiumShouldSync         bool                    `json:"premium_should_sync"`
	IncludeCrypto2Crypto      bool                    `json:"include_crypto2crypto"`
	AnonymizedLogs            bool                    `json:"anonymized_logs"`
	SubmitUsageAnalytics      bool                    `json:"submit_usage_analytics"`
	UIFloatingPrecision       int64                   `json:"ui_floating_precision"`
	TaxFreeAfterPeriod        int64                   `json:"taxfree_after_period"`
	BalanceSaveFrequency      int64                   `json:"balance_save_frequency"`
	IncludeGasCosts           bool                    `json:"include_gas_costs"`
	EthRPCEndpoint            string                  `json:"eth_rpc_endpoint"`
	KsmRPCEndpoint            string                  `json:"ksm_rpc_endpoint"`
	MainCurrency              Asset                   `json:"main_currency"`
	DateDisplayFormat         string                  `json:"date_display_format"`
	KrakenAccountType         KrakenAccountType       `json:"kraken_account_type"`
	ActiveModules             []string                `json:"active_modules"`
	FrontendSettings          string                  `json:"frontend_settings"`
	AccountForAssetsMovements bool                    `json:"account_for_assets_movements"`
	BtcDerivationGapLimit     int64                   `json:"btc_derivation_gap_limit"`
	CalculatePastCostBasis    bool                    `json:"calculate_past_cost_basis"`
	DisplayDateInLocaltime    bool                    `json:"display_date_in_localtime"`
	CurrentPriceOracles       []CurrentPriceOracle    `json:"current_price_oracles"`
	HistoricalPriceOracles    []HistoricalPriceOracle `json:"historical_price_oracles"`
	TaxableLedgerActions      []LedgerActionType      `json:"taxable_ledger_actions"`
	LastWriteTs               Timestamp               `json:"last_write_ts"`
}

// DefaultSettings returns the configuration a fresh user starts with.
func DefaultSettings(usd Asset) Settings {
	return Settings{
		Version:                   1,
		PremiumShouldSync:         false,
		IncludeCrypto2Crypto:      true,
		AnonymizedLogs:            false,
		SubmitUsageAnalytics:      false,
		UIFloatingPrecision:       2,
		TaxFreeAfterPeriod:        -1,
		BalanceSaveFrequency:      24,
		IncludeGasCosts:           true,
		MainCurrency:              usd,
		DateDisplayFormat:         "%d/%m/%Y %H:%M:%S %Z",
		KrakenAccountType:         KrakenStarter,
		ActiveModules:             []string{},
		AccountForAssetsMovements: true,
		BtcDerivationGapLimit:     20,
		CalculatePastCostBasis:    true,
		DisplayDateInLocaltime:    true,
		CurrentPriceOracles:       AllCurrentPriceOracles,
		HistoricalPriceOracles:    AllHistoricalPriceOracles,
		TaxableLedgerActions: []LedgerActionType{
			LedgerActionIncome,
			LedgerActionDividendsIncome,
			LedgerActionDonationReceived,
			LedgerActionAirdrop,
			LedgerActionGift,
			LedgerActionGrant,
		},
	}
}

// Apply overlays the set fields of a ModifiableSettings onto the full
// settings, bumping the write timestamp.
func (s *Settings) Apply(mod ModifiableSettings) {
	if mod.PremiumShouldSync != nil {
		s.PremiumShouldSync = *mod.PremiumShouldSync
	}
	if mod.IncludeCrypto2Crypto != nil {
		s.IncludeCrypto2Crypto = *mod.IncludeCrypto2Crypto
	}
	if mod.AnonymizedLogs != nil {
		s.AnonymizedLogs = *mod.AnonymizedLogs
	}
	if mod.SubmitUsageAnalytics != nil {
		s.SubmitUsageAnalytics = *mod.SubmitUsageAnalytics
	}
	if mod.UIFloatingPrecision != nil {
		s.UIFloatingPrecision = *mod.UIFloatingPrecision
	}
	if mod.TaxFreeAfterPeriod != nil {
		s.TaxFreeAfterPeriod = *mod.TaxFreeAfterPeriod
	}
	if mod.BalanceSaveFrequency != nil {
		s.BalanceSaveFrequency = *mod.BalanceSaveFrequency
	}
	if mod.IncludeGasCosts != nil {
		s.IncludeGasCosts = *mod.IncludeGasCosts
	}
	if mod.EthRPCEndpoint != nil {
		s.EthRPCEndpoint = *mod.EthRPCEndpoint
	}
	if mod.KsmRPCEndpoint != nil {
		s.KsmRPCEndpoint = *mod.KsmRPCEndpoint
	}
	if mod.MainCurrency != nil {
		s.MainCurrency = *mod.MainCurrency
	}
	if mod.DateDisplayFormat != nil {
		s.DateDisplayFormat = *mod.DateDisplayFormat
	}
	if mod.KrakenAccountType != nil {
		s.KrakenAccountType = *mod.KrakenAccountType
	}
	if mod.ActiveModules != nil {
		s.ActiveModules = mod.ActiveModules
	}
	if mod.FrontendSettings != nil {
		s.FrontendSettings = *mod.FrontendSettings
	}
	if mod.AccountForAssetsMovements != nil {
		s.AccountForAssetsMovements = *mod.AccountForAssetsMovements
	}
	if mod.BtcDerivationGapLimit != nil {
		s.BtcDerivationGapLimit = *mod.BtcDerivationGapLimit
	}
	if mod.CalculatePastCostBasis != nil {
		s.CalculatePastCostBasis = *mod.CalculatePastCostBasis
	}
	if mod.DisplayDateInLocaltime != nil {
		s.DisplayDateInLocaltime = *mod.DisplayDateInLocaltime
	}
	if mod.CurrentPriceOracles != nil {
		s.CurrentPriceOracles = mod.CurrentPriceOracles
	}
	if mod.HistoricalPriceOracles != nil {
		s.HistoricalPriceOracles = mod.HistoricalPriceOracles
	}
	if mod.TaxableLedgerActions != nil {
		s.TaxableLedgerActions = mod.TaxableLedgerActions
	}
	s.LastWriteTs = Now()
}
