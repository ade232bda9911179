package types

import "fmt"

// Location is where a trade, action or balance lives: an exchange, a
// blockchain, a bank account or the catch-all external bucket.
type Location string

const (
	LocationExternal    Location = "external"
	LocationKraken      Location = "kraken"
	LocationPoloniex    Location = "poloniex"
	LocationBittrex     Location = "bittrex"
	LocationBinance     Location = "binance"
	LocationBitmex      Location = "bitmex"
	LocationCoinbase    Location = "coinbase"
	LocationCoinbasePro Location = "coinbasepro"
	LocationGemini      Location = "gemini"
	LocationBitstamp    Location = "bitstamp"
	LocationBanks       Location = "banks"
	LocationBlockchain  Location = "blockchain"
	LocationTotal       Location = "total"
)

var locations = map[string]Location{
	"external":    LocationExternal,
	"kraken":      LocationKraken,
	"poloniex":    LocationPoloniex,
	"bittrex":     LocationBittrex,
	"binance":     LocationBinance,
	"bitmex":      LocationBitmex,
	"coinbase":    LocationCoinbase,
	"coinbasepro": LocationCoinbasePro,
	"gemini":      LocationGemini,
	"bitstamp":    LocationBitstamp,
	"banks":       LocationBanks,
	"blockchain":  LocationBlockchain,
	"total":       LocationTotal,
}

// ParseLocation maps a location string to its canonical value.
func ParseLocation(value string) (Location, error) {
	if loc, ok := locations[value]; ok {
		return loc, nil
	}
	return "", fmt.Errorf("failed to deserialize location symbol %s", value)
}

func (l Location) String() string {
	return string(l)
}
