package types

import (
	"fmt"
	"strings"
)

// HexColorCode is a six-hex-digit color without the leading '#'.
type HexColorCode string

const hexDigits = "0123456789abcdefABCDEF"

// ParseHexColorCode validates a six-hex-digit color string.
func ParseHexColorCode(value string) (HexColorCode, error) {
	if len(value) != 6 {
		return "", fmt.Errorf(
			"the given color code value \"%s\" does not have 6 hexadecimal digits", value,
		)
	}
	for _, c := range value {
		if !strings.ContainsRune(hexDigits, c) {
			return "", fmt.Errorf(
				"the given color code value \"%s\" could not be processed as a hex color value",
				value,
			)
		}
	}
	return HexColorCode(value), nil
}

// AvailableModules is the set of optional on-chain modules a user can
// activate in the settings.
var AvailableModules = map[string]struct{}{
	"makerdao_dsr":    {},
	"makerdao_vaults": {},
	"aave":            {},
	"compound":        {},
	"yearn_vaults":    {},
	"uniswap":         {},
	"adex":            {},
	"loopring":        {},
	"balancer":        {},
	"eth2":            {},
}

// ModuleNames returns the sorted-insertion list of known module names,
// used in validation error messages.
func ModuleNames() []string {
	names := make([]string, 0, len(AvailableModules))
	for name := range AvailableModules {
		names = append(names, name)
	}
	return names
}

// ExternalService is a third-party API the backend can hold credentials for.
type ExternalService string

const (
	ServiceEtherscan     ExternalService = "etherscan"
	ServiceCryptocompare ExternalService = "cryptocompare"
	ServiceBeaconchain   ExternalService = "beaconchain"
	ServiceLoopring      ExternalService = "loopring"
)

var externalServices = map[string]ExternalService{
	"etherscan":     ServiceEtherscan,
	"cryptocompare": ServiceCryptocompare,
	"beaconchain":   ServiceBeaconchain,
	"loopring":      ServiceLoopring,
}

// ParseExternalService maps a service name to its canonical value.
func ParseExternalService(value string) (ExternalService, error) {
	if s, ok := externalServices[strings.ToLower(value)]; ok {
		return s, nil
	}
	return "", fmt.Errorf("external service %s is not known", value)
}

func (s ExternalService) String() string {
	return string(s)
}

// ExternalServiceCredentials pairs a service with its stored API key.
type ExternalServiceCredentials struct {
	Service ExternalService `json:"name"`
	APIKey  string          `json:"api_key"`
}

// SupportedExchanges is the set of exchange names accounts can be
// registered for.
var SupportedExchanges = []string{
	"kraken",
	"poloniex",
	"bittrex",
	"binance",
	"bitmex",
	"coinbase",
	"coinbasepro",
	"gemini",
	"bitstamp",
}

// IsSupportedExchange reports whether name is a supported exchange.
func IsSupportedExchange(name string) bool {
	for _, e := range SupportedExchanges {
		if e == name {
			return true
		}
	}
	return false
}

// KrakenAccountType affects the API call rate limits kraken applies.
type KrakenAccountType string

const (
	KrakenStarter      KrakenAccountType = "starter"
	KrakenIntermediate KrakenAccountType = "intermediate"
	KrakenPro          KrakenAccountType = "pro"
)

// ParseKrakenAccountType maps a string to its KrakenAccountType value.
func ParseKrakenAccountType(value string) (KrakenAccountType, error) {
	switch strings.ToLower(value) {
	case "starter":
		return KrakenStarter, nil
	case "intermediate":
		return KrakenIntermediate, nil
	case "pro":
		return KrakenPro, nil
	}
	return "", fmt.Errorf("%s is not a valid kraken account type", value)
}

// APIKey and APISecret are exchange credential values. The secret is kept
// as bytes so it never lands in logs through a careless %s.
type (
	APIKey    string
	APISecret []byte
)
