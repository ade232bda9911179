package types

// Asset is a known asset resolved from its string identifier through the
// asset registry. Only the registry creates Assets; everything downstream
// treats them as opaque validated values.
type Asset struct {
	Identifier string `json:"identifier"`
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
}

func (a Asset) String() string {
	return a.Identifier
}

// Balance is an amount plus its USD valuation.
type Balance struct {
	Amount   AssetAmount `json:"amount"`
	USDValue AssetAmount `json:"usd_value"`
}

// Serialize returns the two exact decimal strings of a balance.
func (b Balance) Serialize() map[string]string {
	return map[string]string{
		"amount":    b.Amount.String(),
		"usd_value": b.USDValue.String(),
	}
}

// ManuallyTrackedBalance is a user-declared balance outside any connected
// exchange or tracked chain account.
type ManuallyTrackedBalance struct {
	Asset    Asset       `json:"asset"`
	Label    string      `json:"label"`
	Amount   AssetAmount `json:"amount"`
	Location Location    `json:"location"`
	Tags     []string    `json:"tags"`
}

// BlockchainAccount is one tracked account on a chain, fully resolved: ENS
// names have already been replaced by concrete addresses.
type BlockchainAccount struct {
	Address string   `json:"address"`
	Label   string   `json:"label,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// Tag is a user-defined label with display colors.
type Tag struct {
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	BackgroundColor HexColorCode `json:"background_color"`
	ForegroundColor HexColorCode `json:"foreground_color"`
}
