package rest

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/chainfolio/chainfolio/internal/errs"
	"github.com/chainfolio/chainfolio/internal/types"
)

// Trades returns the recorded trades inside a time range, optionally
// filtered by location.
func (a *API) Trades(from, to types.Timestamp, location types.Location) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := make([]map[string]any, 0)
	for _, trade := range a.trades {
		if trade.Timestamp < from || trade.Timestamp > to {
			continue
		}
		if location != "" && trade.Location != location {
			continue
		}
		result = append(result, trade.Serialize())
	}
	return OkResult(result)
}

// AddTrade records a trade and assigns its id.
func (a *API) AddTrade(trade types.Trade) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	trade.TradeID = uuid.NewString()
	a.trades = append(a.trades, trade)
	return OkResult([]map[string]any{trade.Serialize()})
}

// EditTrade replaces the trade carrying the given id.
func (a *API) EditTrade(trade types.Trade) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.trades {
		if a.trades[i].TradeID == trade.TradeID {
			a.trades[i] = trade
			return OkResult(trade.Serialize()), nil
		}
	}
	return nil, errs.NewConflictError(
		fmt.Sprintf("could not find trade with id %s to edit", trade.TradeID),
	)
}

// DeleteTrade removes the trade carrying the given id.
func (a *API) DeleteTrade(tradeID string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.trades {
		if a.trades[i].TradeID == tradeID {
			a.trades = append(a.trades[:i], a.trades[i+1:]...)
			return OkResult(true), nil
		}
	}
	return nil, errs.NewConflictError(
		fmt.Sprintf("could not find trade with id %s to delete", tradeID),
	)
}
