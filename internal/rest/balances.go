package rest

import (
	"fmt"

	"github.com/chainfolio/chainfolio/internal/errs"
	"github.com/chainfolio/chainfolio/internal/types"
)

// ManualBalances returns the manually tracked balances.
func (a *API) ManualBalances() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return OkResult(map[string]any{"balances": a.manualBalancesLocked()})
}

// AddManualBalances appends new manually tracked balances. A label that is
// already tracked is rejected.
func (a *API) AddManualBalances(balances []types.ManuallyTrackedBalance) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, balance := range balances {
		for _, existing := range a.manualBalances {
			if existing.Label == balance.Label {
				return nil, errs.NewConflictError(
					fmt.Sprintf("an entry with label %s already exists", balance.Label),
				)
			}
		}
	}
	a.manualBalances = append(a.manualBalances, balances...)
	return OkResult(map[string]any{"balances": a.manualBalancesLocked()}), nil
}

// EditManualBalances replaces existing manually tracked balances by label.
// A label that is not tracked is rejected.
func (a *API) EditManualBalances(balances []types.ManuallyTrackedBalance) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, balance := range balances {
		index := a.manualBalanceIndexLocked(balance.Label)
		if index < 0 {
			return nil, errs.NewConflictError(
				fmt.Sprintf("tried to edit a manually tracked balance for non existing label %s", balance.Label),
			)
		}
		a.manualBalances[index] = balance
	}
	return OkResult(map[string]any{"balances": a.manualBalancesLocked()}), nil
}

// DeleteManualBalances removes manually tracked balances by label.
func (a *API) DeleteManualBalances(labels []string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, label := range labels {
		if a.manualBalanceIndexLocked(label) < 0 {
			return nil, errs.NewConflictError(
				fmt.Sprintf("tried to remove a manually tracked balance for non existing label %s", label),
			)
		}
	}
	for _, label := range labels {
		index := a.manualBalanceIndexLocked(label)
		a.manualBalances = append(a.manualBalances[:index], a.manualBalances[index+1:]...)
	}
	return OkResult(map[string]any{"balances": a.manualBalancesLocked()}), nil
}

func (a *API) manualBalanceIndexLocked(label string) int {
	for i, balance := range a.manualBalances {
		if balance.Label == label {
			return i
		}
	}
	return -1
}

func (a *API) manualBalancesLocked() []types.ManuallyTrackedBalance {
	balances := make([]types.ManuallyTrackedBalance, len(a.manualBalances))
	copy(balances, a.manualBalances)
	return balances
}

// BlockchainBalances reports the tracked accounts of the requested chains
// with empty balances. Balance reconciliation against chain nodes happens
// in the chain managers, which the backend queries lazily; without a
// configured node every account reports zero.
func (a *API) BlockchainBalances(chain types.Blockchain) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	perAccount := make(map[string]map[string]any)
	totals := make(map[string]map[string]string)
	for trackedChain, accounts := range a.accounts {
		if chain != "" && trackedChain != chain {
			continue
		}
		chainBalances := make(map[string]any, len(accounts))
		for _, account := range accounts {
			chainBalances[account.Address] = types.Balance{}.Serialize()
		}
		perAccount[trackedChain.String()] = chainBalances
	}
	return OkResult(map[string]any{
		"per_account": perAccount,
		"totals":      totals,
	})
}

// AllBalances combines blockchain, exchange and manual balances into one
// snapshot keyed by asset.
func (a *API) AllBalances() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := make(map[string]map[string]string)
	for _, balance := range a.manualBalances {
		entry, ok := result[balance.Asset.Identifier]
		if !ok {
			result[balance.Asset.Identifier] = types.Balance{
				Amount: balance.Amount,
			}.Serialize()
			continue
		}
		amount, err := types.ParseAssetAmount(entry["amount"])
		if err != nil {
			continue
		}
		result[balance.Asset.Identifier] = types.Balance{
			Amount: amount.Add(balance.Amount),
		}.Serialize()
	}
	return OkResult(result)
}

// ExchangeBalances reports the balances held at one or all registered
// exchanges. Unconnected exchanges report empty holdings.
func (a *API) ExchangeBalances(name string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if name != "" {
		if _, ok := a.exchanges[name]; !ok {
			return nil, errs.NewConflictError(
				fmt.Sprintf("could not query balances for %s since it is not registered", name),
			)
		}
		return OkResult(map[string]any{}), nil
	}

	result := make(map[string]any, len(a.exchanges))
	for registered := range a.exchanges {
		result[registered] = map[string]any{}
	}
	return OkResult(result), nil
}

// StatisticsNetvalue returns the stored net value time series.
func (a *API) StatisticsNetvalue() map[string]any {
	return OkResult(map[string]any{
		"times": []types.Timestamp{},
		"data":  []string{},
	})
}

// StatisticsAssetBalance returns the stored balance history of one asset
// inside a time range.
func (a *API) StatisticsAssetBalance(asset types.Asset, from, to types.Timestamp) map[string]any {
	return OkResult([]map[string]any{})
}

// StatisticsValueDistribution returns the latest value distribution by
// location or asset.
func (a *API) StatisticsValueDistribution(distribution string) map[string]any {
	return OkResult([]map[string]any{})
}

// StatisticsRenderer returns the premium statistics renderer payload.
func (a *API) StatisticsRenderer() (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, user := range a.users {
		if user.LoggedIn && user.PremiumAPIKey != "" {
			return OkResult(""), nil
		}
	}
	return nil, errs.NewConflictError("logged in user does not have premium")
}

// PeriodicData returns the data the frontend polls between full queries.
func (a *API) PeriodicData() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return OkResult(map[string]any{
		"last_balance_save":          types.Timestamp(0),
		"eth_node_connection":        false,
		"history_process_start_ts":   types.Timestamp(0),
		"history_process_current_ts": types.Timestamp(0),
		"last_data_upload_ts":        types.Timestamp(0),
	})
}
