// Package assets provides the asset registry: the only place a string
// identifier becomes a validated types.Asset.
package assets

import (
	"fmt"
	"sort"
	"sync"

	"github.com/chainfolio/chainfolio/internal/types"
)

// Registry maps asset identifiers to their metadata. Lookups are
// concurrent-safe; registration happens at construction and through the
// custom token endpoints.
type Registry struct {
	mu     sync.RWMutex
	assets map[string]types.Asset
}

// NewRegistry builds a registry pre-seeded with the built-in assets.
func NewRegistry() *Registry {
	r := &Registry{assets: make(map[string]types.Asset, len(builtins))}
	for _, a := range builtins {
		r.assets[a.Identifier] = a
	}
	return r
}

// Get resolves an identifier to its Asset. Unknown identifiers fail with a
// message naming the offending value.
func (r *Registry) Get(identifier string) (types.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.assets[identifier]; ok {
		return a, nil
	}
	return types.Asset{}, fmt.Errorf("unknown asset %s provided", identifier)
}

// Register adds or replaces an asset entry. Used when custom Ethereum
// tokens are added through the API.
func (r *Registry) Register(a types.Asset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assets[a.Identifier] = a
}

// All returns every known asset sorted by identifier.
func (r *Registry) All() []types.Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]types.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Identifier < all[j].Identifier })
	return all
}

// builtins is the fixed base set. Real deployments ship a much larger
// table; the members here cover everything the tests and fixtures touch.
var builtins = []types.Asset{
	{Identifier: "BTC", Symbol: "BTC", Name: "Bitcoin"},
	{Identifier: "ETH", Symbol: "ETH", Name: "Ethereum"},
	{Identifier: "KSM", Symbol: "KSM", Name: "Kusama"},
	{Identifier: "USD", Symbol: "USD", Name: "United States Dollar"},
	{Identifier: "EUR", Symbol: "EUR", Name: "Euro"},
	{Identifier: "GBP", Symbol: "GBP", Name: "Pound Sterling"},
	{Identifier: "JPY", Symbol: "JPY", Name: "Japanese Yen"},
	{Identifier: "DAI", Symbol: "DAI", Name: "Dai"},
	{Identifier: "USDC", Symbol: "USDC", Name: "USD Coin"},
	{Identifier: "USDT", Symbol: "USDT", Name: "Tether"},
	{Identifier: "LINK", Symbol: "LINK", Name: "Chainlink"},
	{Identifier: "UNI", Symbol: "UNI", Name: "Uniswap"},
	{Identifier: "AAVE", Symbol: "AAVE", Name: "Aave"},
	{Identifier: "MKR", Symbol: "MKR", Name: "Maker"},
	{Identifier: "COMP", Symbol: "COMP", Name: "Compound"},
	{Identifier: "YFI", Symbol: "YFI", Name: "yearn.finance"},
	{Identifier: "BAL", Symbol: "BAL", Name: "Balancer"},
	{Identifier: "SNX", Symbol: "SNX", Name: "Synthetix Network"},
	{Identifier: "CRV", Symbol: "CRV", Name: "Curve DAO"},
	{Identifier: "WBTC", Symbol: "WBTC", Name: "Wrapped Bitcoin"},
}
