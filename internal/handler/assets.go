package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/chainfolio/chainfolio/internal/schema"
)

// AllAssetsResource lists every asset known to the registry.
type AllAssetsResource struct{ Handler }

func (r *AllAssetsResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().AllAssets(), nil
	})
}

// IgnoredAssetsResource manages the asset ignore list.
type IgnoredAssetsResource struct{ Handler }

func (r *IgnoredAssetsResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().IgnoredAssets(), nil
	})
}

func (r *IgnoredAssetsResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.IgnoredAssetsModifyRequest) (any, error) {
		return r.API().IgnoreAssets(req.IgnoredAssets())
	})
}

func (r *IgnoredAssetsResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.IgnoredAssetsModifyRequest) (any, error) {
		return r.API().UnignoreAssets(req.IgnoredAssets())
	})
}

// EthereumAssetsResource is the CRUD surface of custom ethereum tokens.
type EthereumAssetsResource struct{ Handler }

func (r *EthereumAssetsResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.EthereumTokenGetQuery) (any, error) {
		if req.Address == "" {
			return r.API().CustomTokens(), nil
		}
		return r.API().CustomToken(req.ChecksummedAddress())
	})
}

func (r *EthereumAssetsResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.EthereumTokenRequest) (any, error) {
		return r.API().AddCustomToken(req.CustomToken())
	})
}

func (r *EthereumAssetsResource) Patch() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.EthereumTokenRequest) (any, error) {
		return r.API().EditCustomToken(req.CustomToken())
	})
}

func (r *EthereumAssetsResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.EthereumTokenQuery) (any, error) {
		return r.API().DeleteCustomToken(req.ChecksummedAddress())
	})
}

// AssetIconsResource serves asset icons.
type AssetIconsResource struct{ Handler }

func (r *AssetIconsResource) Get() echo.HandlerFunc {
	return HandleFile(r.Handler, "image/png", func(c echo.Context, req *schema.AssetIconsQuery) ([]byte, error) {
		size := req.Size
		if size == "" {
			size = "thumb"
		}
		return r.API().AssetIcon(req.QueriedAsset(), size)
	})
}

// AssetIconUploadResource stores a custom icon for an asset. PUT and POST
// accept the same payload.
type AssetIconUploadResource struct{ Handler }

func (r *AssetIconUploadResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.AssetIconUploadRequest) (any, error) {
		return r.API().SetAssetIcon(req.UploadedAsset(), req.Filename(), req.Content()), nil
	})
}

func (r *AssetIconUploadResource) Post() echo.HandlerFunc {
	return r.Put()
}

// ExchangeRatesResource serves fiat exchange rates for a currency list.
type ExchangeRatesResource struct{ Handler }

func (r *ExchangeRatesResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.ExchangeRatesQuery) (any, error) {
		api := r.API()
		currencies := req.Assets()
		ctx := c.Request().Context()
		if req.AsyncQuery {
			return api.SpawnTask("query_exchange_rates", asTask(func(ctx context.Context) (map[string]any, error) {
				return api.ExchangeRates(ctx, currencies)
			})), nil
		}
		return api.ExchangeRates(ctx, currencies)
	})
}

// CurrentAssetsPriceResource prices a list of assets in a target asset.
type CurrentAssetsPriceResource struct{ Handler }

func (r *CurrentAssetsPriceResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.CurrentAssetsPriceQuery) (any, error) {
		api := r.API()
		queried, target, ignoreCache := req.QueriedAssets(), req.Target(), req.IgnoreCache
		if req.AsyncQuery {
			return api.SpawnTask("query_current_prices", asTask(func(ctx context.Context) (map[string]any, error) {
				return api.CurrentPrices(ctx, queried, target, ignoreCache), nil
			})), nil
		}
		return api.CurrentPrices(c.Request().Context(), queried, target, ignoreCache), nil
	})
}

// HistoricalAssetsPriceResource prices asset/timestamp pairs in a target
// asset.
type HistoricalAssetsPriceResource struct{ Handler }

func (r *HistoricalAssetsPriceResource) Post() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.HistoricalAssetsPriceQuery) (any, error) {
		api := r.API()
		pairs, target := req.Pairs(), req.Target()
		if req.AsyncQuery {
			return api.SpawnTask("query_historical_prices", asTask(func(ctx context.Context) (map[string]any, error) {
				return api.HistoricalPrices(ctx, pairs, target), nil
			})), nil
		}
		return api.HistoricalPrices(c.Request().Context(), pairs, target), nil
	})
}

// NamedOracleCacheResource manages the historical price cache of one
// oracle.
type NamedOracleCacheResource struct{ Handler }

func (r *NamedOracleCacheResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.OracleCacheGetQuery) (any, error) {
		return r.API().OracleCachePairs(c.Request().Context(), req.OracleName())
	})
}

func (r *NamedOracleCacheResource) Post() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.OracleCacheCreateRequest) (any, error) {
		api := r.API()
		oracle := req.OracleName()
		from, to := req.FromTo()
		purgeOld := req.PurgeOld
		if req.AsyncQuery {
			return api.SpawnTask("create_oracle_cache", asTask(func(ctx context.Context) (map[string]any, error) {
				return api.CreateOracleCache(ctx, oracle, from, to, purgeOld)
			})), nil
		}
		return api.CreateOracleCache(c.Request().Context(), oracle, from, to, purgeOld)
	})
}

func (r *NamedOracleCacheResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.OracleCacheDeleteRequest) (any, error) {
		from, to := req.FromTo()
		return r.API().DeleteOracleCache(c.Request().Context(), req.OracleName(), from, to)
	})
}

// OraclesResource lists the supported price oracles.
type OraclesResource struct{ Handler }

func (r *OraclesResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().SupportedOracles(), nil
	})
}
