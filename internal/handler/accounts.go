package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/chainfolio/chainfolio/internal/errs"
	"github.com/chainfolio/chainfolio/internal/schema"
)

// BlockchainAccountsResource manages the tracked accounts of one chain.
// ENS names in write payloads resolve before the backend sees them.
type BlockchainAccountsResource struct{ Handler }

func (r *BlockchainAccountsResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.BlockchainAccountsGetQuery) (any, error) {
		return r.API().BlockchainAccounts(req.Chain()), nil
	})
}

func (r *BlockchainAccountsResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.BlockchainAccountsRequest) (any, error) {
		accounts, err := req.ResolveAccounts(c.Request().Context(), r.API().Resolver)
		if err != nil {
			return nil, errs.NewBadRequestError(err.Error())
		}
		return r.API().AddBlockchainAccounts(req.Chain(), accounts)
	})
}

func (r *BlockchainAccountsResource) Patch() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.BlockchainAccountsRequest) (any, error) {
		accounts, err := req.ResolveAccounts(c.Request().Context(), r.API().Resolver)
		if err != nil {
			return nil, errs.NewBadRequestError(err.Error())
		}
		return r.API().EditBlockchainAccounts(req.Chain(), accounts)
	})
}

func (r *BlockchainAccountsResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.BlockchainAccountsDeleteRequest) (any, error) {
		addresses, err := req.ResolveAccounts(c.Request().Context(), r.API().Resolver)
		if err != nil {
			return nil, errs.NewBadRequestError(err.Error())
		}
		return r.API().RemoveBlockchainAccounts(req.Chain(), addresses)
	})
}

// BtcXpubResource manages the tracked bitcoin extended public keys.
type BtcXpubResource struct{ Handler }

func (r *BtcXpubResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.XpubRequest) (any, error) {
		return r.API().AddXpub(req.ParsedXpub().Raw, req.DerivationPath, req.Label, req.Tags)
	})
}

func (r *BtcXpubResource) Patch() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.XpubPatchRequest) (any, error) {
		return r.API().EditXpub(req.ParsedXpub().Raw, req.DerivationPath, req.Label, req.Tags)
	})
}

func (r *BtcXpubResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.XpubPatchRequest) (any, error) {
		return r.API().DeleteXpub(req.ParsedXpub().Raw, req.DerivationPath)
	})
}

// QueriedAddressesResource manages the per-module address whitelist of the
// ethereum module queries.
type QueriedAddressesResource struct{ Handler }

func (r *QueriedAddressesResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.Empty) (any, error) {
		return r.API().QueriedAddresses(), nil
	})
}

func (r *QueriedAddressesResource) Put() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.QueriedAddressRequest) (any, error) {
		return r.API().AddQueriedAddress(req.Module, req.ChecksummedAddress())
	})
}

func (r *QueriedAddressesResource) Delete() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.QueriedAddressRequest) (any, error) {
		return r.API().RemoveQueriedAddress(req.Module, req.ChecksummedAddress())
	})
}

// EthereumTransactionsResource serves the stored ethereum transactions,
// optionally filtered by address.
type EthereumTransactionsResource struct{ Handler }

func (r *EthereumTransactionsResource) Get() echo.HandlerFunc {
	return Handle(r.Handler, func(c echo.Context, req *schema.EthereumTransactionQuery) (any, error) {
		api := r.API()
		from, to, address := req.From(), req.To(), req.AddressFilter()
		if req.AsyncQuery {
			return api.SpawnTask("query_ethereum_transactions", asTask(func(ctx context.Context) (map[string]any, error) {
				return api.EthereumTransactions(from, to, address), nil
			})), nil
		}
		return api.EthereumTransactions(from, to, address), nil
	})
}
