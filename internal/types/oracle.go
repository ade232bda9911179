package types

import "fmt"

// CurrentPriceOracle is an external source for spot prices.
type CurrentPriceOracle string

const (
	CurrentPriceCoingecko     CurrentPriceOracle = "coingecko"
	CurrentPriceCryptocompare CurrentPriceOracle = "cryptocompare"
)

// AllCurrentPriceOracles lists the supported spot price oracles in their
// default query order.
var AllCurrentPriceOracles = []CurrentPriceOracle{
	CurrentPriceCoingecko,
	CurrentPriceCryptocompare,
}

// ParseCurrentPriceOracle maps an oracle name to its canonical value.
func ParseCurrentPriceOracle(value string) (CurrentPriceOracle, error) {
	for _, oracle := range AllCurrentPriceOracles {
		if string(oracle) == value {
			return oracle, nil
		}
	}
	return "", fmt.Errorf("invalid current price oracle: %s", value)
}

func (o CurrentPriceOracle) String() string {
	return string(o)
}

// HistoricalPriceOracle is an external source for historical prices.
type HistoricalPriceOracle string

const (
	HistoricalPriceCoingecko     HistoricalPriceOracle = "coingecko"
	HistoricalPriceCryptocompare HistoricalPriceOracle = "cryptocompare"
)

// AllHistoricalPriceOracles lists the supported historical price oracles in
// their default query order.
var AllHistoricalPriceOracles = []HistoricalPriceOracle{
	HistoricalPriceCryptocompare,
	HistoricalPriceCoingecko,
}

// ParseHistoricalPriceOracle maps an oracle name to its canonical value.
func ParseHistoricalPriceOracle(value string) (HistoricalPriceOracle, error) {
	for _, oracle := range AllHistoricalPriceOracles {
		if string(oracle) == value {
			return oracle, nil
		}
	}
	return "", fmt.Errorf("invalid historical price oracle: %s", value)
}

func (o HistoricalPriceOracle) String() string {
	return string(o)
}
