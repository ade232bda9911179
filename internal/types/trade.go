package types

import (
	"fmt"
	"strings"
)

// TradeType is the direction of a recorded trade.
type TradeType string

const (
	TradeBuy            TradeType = "buy"
	TradeSell           TradeType = "sell"
	TradeSettlementBuy  TradeType = "settlement_buy"
	TradeSettlementSell TradeType = "settlement_sell"
)

// ParseTradeType maps a string to its TradeType value.
func ParseTradeType(value string) (TradeType, error) {
	switch value {
	case "buy":
		return TradeBuy, nil
	case "sell":
		return TradeSell, nil
	case "settlement_buy", "settlement buy":
		return TradeSettlementBuy, nil
	case "settlement_sell", "settlement sell":
		return TradeSettlementSell, nil
	}
	return "", fmt.Errorf("failed to deserialize trade type symbol %s", value)
}

func (t TradeType) String() string {
	return string(t)
}

// TradePair is a "BASE_QUOTE" asset pair string.
type TradePair string

// ParseTradePair validates the BASE_QUOTE shape of a trade pair. Both
// sides must be non-empty.
func ParseTradePair(value string) (TradePair, error) {
	base, quote, found := strings.Cut(value, "_")
	if !found || base == "" || quote == "" {
		return "", fmt.Errorf("unprocessable pair %s encountered", value)
	}
	return TradePair(value), nil
}

// Trade is a single recorded trade at an exchange or external location.
type Trade struct {
	TradeID     string      `json:"trade_id,omitempty"`
	Timestamp   Timestamp   `json:"timestamp"`
	Location    Location    `json:"location"`
	Pair        TradePair   `json:"pair"`
	TradeType   TradeType   `json:"trade_type"`
	Amount      AssetAmount `json:"amount"`
	Rate        Price       `json:"rate"`
	Fee         Fee         `json:"fee"`
	FeeCurrency Asset       `json:"fee_currency"`
	Link        string      `json:"link"`
	Notes       string      `json:"notes"`
}

// Serialize returns the canonical JSON mapping of a trade.
func (t Trade) Serialize() map[string]any {
	return map[string]any{
		"trade_id":     t.TradeID,
		"timestamp":    t.Timestamp,
		"location":     t.Location.String(),
		"pair":         string(t.Pair),
		"trade_type":   t.TradeType.String(),
		"amount":       t.Amount.String(),
		"rate":         t.Rate.String(),
		"fee":          t.Fee.String(),
		"fee_currency": t.FeeCurrency.Identifier,
		"link":         t.Link,
		"notes":        t.Notes,
	}
}
