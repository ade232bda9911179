package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/chainfolio/chainfolio/internal/schema"
)

// AllBalancesResource serves the full balance snapshot across exchanges,
// chains and manual balances.
type AllBalancesResource struct{ Handler }

func (r *AllBalancesResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.AllBalancesQuery) (any, error) {
		api := r.API()
		if req.AsyncQuery {
			return api.SpawnTask("query_all_balances", asTask(func(ctx context.Context) (map[string]any, error) {
				return api.AllBalances(), nil
			})), nil
		}
		return api.AllBalances(), nil
	})
}

// BlockchainBalancesResource serves per-chain balances, for one chain or
// all tracked chains.
type BlockchainBalancesResource struct{ Handler }

func (r *BlockchainBalancesResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.BlockchainBalanceQuery) (any, error) {
		api := r.API()
		chain := req.Chain()
		if req.AsyncQuery {
			return api.SpawnTask("query_blockchain_balances", asTask(func(ctx context.Context) (map[string]any, error) {
				return api.BlockchainBalances(chain), nil
			})), nil
		}
		return api.BlockchainBalances(chain), nil
	})
}

// ExchangeBalancesResource serves the balances held at one or all
// registered exchanges.
type ExchangeBalancesResource struct{ Handler }

func (r *ExchangeBalancesResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.ExchangeBalanceQuery) (any, error) {
		api := r.API()
		location := req.Location
		if req.AsyncQuery {
			return api.SpawnTask("query_exchange_balances", asTask(func(ctx context.Context) (map[string]any, error) {
				return api.ExchangeBalances(location)
			})), nil
		}
		return api.ExchangeBalances(location)
	})
}

// ManuallyTrackedBalancesResource is the CRUD surface of manually tracked
// balances.
type ManuallyTrackedBalancesResource struct{ Handler }

func (r *ManuallyTrackedBalancesResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.AsyncQueryArgs) (any, error) {
		return r.API().ManualBalances(), nil
	})
}

func (r *ManuallyTrackedBalancesResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.ManuallyTrackedBalancesRequest) (any, error) {
		return r.API().AddManualBalances(req.TrackedBalances())
	})
}

func (r *ManuallyTrackedBalancesResource) Patch() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.ManuallyTrackedBalancesRequest) (any, error) {
		return r.API().EditManualBalances(req.TrackedBalances())
	})
}

func (r *ManuallyTrackedBalancesResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.ManuallyTrackedBalancesDeleteRequest) (any, error) {
		return r.API().DeleteManualBalances(req.Labels)
	})
}

// StatisticsNetvalueResource serves the stored net value time series.
type StatisticsNetvalueResource struct{ Handler }

func (r *StatisticsNetvalueResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().StatisticsNetvalue(), nil
	})
}

// StatisticsAssetBalanceResource serves the balance history of one asset.
type StatisticsAssetBalanceResource struct{ Handler }

func (r *StatisticsAssetBalanceResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.StatisticsAssetBalanceQuery) (any, error) {
		return r.API().StatisticsAssetBalance(req.QueriedAsset(), req.From(), req.To()), nil
	})
}

// StatisticsValueDistributionResource serves the latest value distribution
// by location or asset.
type StatisticsValueDistributionResource struct{ Handler }

func (r *StatisticsValueDistributionResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.StatisticsValueDistributionQuery) (any, error) {
		return r.API().StatisticsValueDistribution(req.Distribution), nil
	})
}

// StatisticsRendererResource serves the premium statistics renderer.
type StatisticsRendererResource struct{ Handler }

func (r *StatisticsRendererResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().StatisticsRenderer()
	})
}
