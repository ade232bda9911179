package rest

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/chainfolio/chainfolio/internal/errs"
	"github.com/chainfolio/chainfolio/internal/schema"
	"github.com/chainfolio/chainfolio/internal/types"
)

// SupportedOracles lists the price oracles the backend can query, split
// into the spot and historical price paths.
func (a *API) SupportedOracles() map[string]any {
	current := make([]map[string]string, 0, len(types.AllCurrentPriceOracles))
	for _, oracle := range types.AllCurrentPriceOracles {
		current = append(current, oracleEntry(oracle.String()))
	}
	history := make([]map[string]string, 0, len(types.AllHistoricalPriceOracles))
	for _, oracle := range types.AllHistoricalPriceOracles {
		history = append(history, oracleEntry(oracle.String()))
	}
	return OkResult(map[string]any{
		"current": current,
		"history": history,
	})
}

func oracleEntry(id string) map[string]string {
	return map[string]string{
		"id":   id,
		"name": strings.ToUpper(id[:1]) + id[1:],
	}
}

// ExchangeRates returns the rate of each given currency against USD,
// serving from the cache and falling back to the oracle on a miss.
func (a *API) ExchangeRates(ctx context.Context, currencies []types.Asset) (map[string]any, error) {
	usd, err := a.Assets.Get("USD")
	if err != nil {
		return nil, errs.NewInternalServerError(err.Error())
	}

	result := make(map[string]string, len(currencies))
	for _, currency := range currencies {
		price, err := a.currentPrice(ctx, usd, currency)
		if err != nil {
			a.QueueError(fmt.Sprintf("failed to query the exchange rate of %s: %v", currency, err))
			result[currency.Identifier] = types.ZeroAmount.String()
			continue
		}
		result[currency.Identifier] = price.String()
	}
	return OkResult(result), nil
}

// CurrentPrices returns the current price of each asset in the target
// asset. Assets the oracle cannot price report zero.
func (a *API) CurrentPrices(ctx context.Context, queried []types.Asset, target types.Asset, ignoreCache bool) map[string]any {
	prices := make(map[string]string, len(queried))
	for _, asset := range queried {
		if !ignoreCache {
			if price, ok := a.Cache.GetCurrentPrice(ctx, asset, target); ok {
				prices[asset.Identifier] = price.String()
				continue
			}
		}
		price, err := a.fetchCurrentPrice(ctx, asset, target)
		if err != nil {
			a.QueueError(fmt.Sprintf("failed to query current price of %s in %s: %v", asset, target, err))
			price = types.ZeroAmount
		}
		prices[asset.Identifier] = price.String()
	}
	return OkResult(map[string]any{
		"assets":       prices,
		"target_asset": target.Identifier,
	})
}

// HistoricalPrices returns the price of each asset/timestamp pair in the
// target asset.
func (a *API) HistoricalPrices(ctx context.Context, pairs []schema.HistoricalPricePair, target types.Asset) map[string]any {
	oracles := a.historicalOracles()

	prices := make(map[string]map[string]string)
	for _, pair := range pairs {
		price := types.ZeroAmount
		for _, oracle := range oracles {
			if cached, ok := a.Cache.GetHistoricalPrice(ctx, oracle, pair.Asset, target, pair.Timestamp); ok {
				price = cached
				break
			}
			fetched, err := a.Oracle.HistoricalPrice(ctx, pair.Asset, target, pair.Timestamp)
			if err != nil {
				continue
			}
			a.Cache.SetHistoricalPrice(ctx, oracle, pair.Asset, target, pair.Timestamp, fetched)
			price = fetched
			break
		}
		entry, ok := prices[pair.Asset.Identifier]
		if !ok {
			entry = make(map[string]string)
			prices[pair.Asset.Identifier] = entry
		}
		entry[fmt.Sprintf("%d", pair.Timestamp)] = price.String()
	}
	return OkResult(map[string]any{
		"assets":       prices,
		"target_asset": target.Identifier,
	})
}

// currentPrice serves a price from the cache, fetching and caching on a
// miss.
func (a *API) currentPrice(ctx context.Context, from, to types.Asset) (types.Price, error) {
	if price, ok := a.Cache.GetCurrentPrice(ctx, from, to); ok {
		return price, nil
	}
	return a.fetchCurrentPrice(ctx, from, to)
}

func (a *API) fetchCurrentPrice(ctx context.Context, from, to types.Asset) (types.Price, error) {
	price, err := a.Oracle.CurrentPrice(ctx, from, to)
	if err != nil {
		return types.ZeroAmount, err
	}
	a.Cache.SetCurrentPrice(ctx, from, to, price)
	return price, nil
}

func (a *API) historicalOracles() []types.HistoricalPriceOracle {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings.HistoricalPriceOracles
}

// CreateOracleCache warms the historical price cache of one oracle for an
// asset pair, optionally purging stale entries first.
func (a *API) CreateOracleCache(ctx context.Context, oracle types.HistoricalPriceOracle, from, to types.Asset, purgeOld bool) (map[string]any, error) {
	if purgeOld {
		if _, err := a.Cache.PurgeHistoricalPrices(ctx, oracle, from, to); err != nil {
			return nil, errs.NewInternalServerError(err.Error())
		}
	}
	ts := types.Now()
	price, err := a.Oracle.HistoricalPrice(ctx, from, to, ts)
	if err != nil {
		return nil, errs.NewConflictError(
			fmt.Sprintf("failed to create %s price cache of %s in %s: %v", oracle, from, to, err),
		)
	}
	a.Cache.SetHistoricalPrice(ctx, oracle, from, to, ts, price)
	return OkResult(true), nil
}

// DeleteOracleCache drops the historical price cache of one oracle for an
// asset pair.
func (a *API) DeleteOracleCache(ctx context.Context, oracle types.HistoricalPriceOracle, from, to types.Asset) (map[string]any, error) {
	if _, err := a.Cache.PurgeHistoricalPrices(ctx, oracle, from, to); err != nil {
		return nil, errs.NewInternalServerError(err.Error())
	}
	return OkResult(true), nil
}

// OracleCachePairs lists the cached asset pairs of one oracle.
func (a *API) OracleCachePairs(ctx context.Context, oracle types.HistoricalPriceOracle) (map[string]any, error) {
	pairs, err := a.Cache.CachedPairs(ctx, oracle)
	if err != nil {
		return nil, errs.NewInternalServerError(err.Error())
	}
	if pairs == nil {
		pairs = []map[string]any{}
	}
	return OkResult(pairs), nil
}

// IgnoredAssets returns the identifiers on the asset ignore list.
func (a *API) IgnoredAssets() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return OkResult(a.ignoredAssetsLocked())
}

// IgnoreAssets adds assets to the ignore list. Already ignored assets are
// rejected.
func (a *API) IgnoreAssets(assets []types.Asset) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, asset := range assets {
		if _, ok := a.ignoredAssets[asset.Identifier]; ok {
			return nil, errs.NewConflictError(
				fmt.Sprintf("%s is already in ignored assets", asset.Identifier),
			)
		}
	}
	for _, asset := range assets {
		a.ignoredAssets[asset.Identifier] = asset
	}
	return OkResult(a.ignoredAssetsLocked()), nil
}

// UnignoreAssets removes assets from the ignore list. Assets that are not
// ignored are rejected.
func (a *API) UnignoreAssets(assets []types.Asset) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, asset := range assets {
		if _, ok := a.ignoredAssets[asset.Identifier]; !ok {
			return nil, errs.NewConflictError(
				fmt.Sprintf("%s is not in ignored assets", asset.Identifier),
			)
		}
	}
	for _, asset := range assets {
		delete(a.ignoredAssets, asset.Identifier)
	}
	return OkResult(a.ignoredAssetsLocked()), nil
}

func (a *API) ignoredAssetsLocked() []string {
	identifiers := make([]string, 0, len(a.ignoredAssets))
	for identifier := range a.ignoredAssets {
		identifiers = append(identifiers, identifier)
	}
	sort.Strings(identifiers)
	return identifiers
}

// AllAssets returns every known asset with its metadata.
func (a *API) AllAssets() map[string]any {
	all := a.Assets.All()
	result := make(map[string]any, len(all))
	for _, asset := range all {
		result[asset.Identifier] = map[string]any{
			"symbol": asset.Symbol,
			"name":   asset.Name,
		}
	}
	return OkResult(result)
}
