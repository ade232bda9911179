package schema

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/chainfolio/chainfolio/internal/chain/bitcoin"
	"github.com/chainfolio/chainfolio/internal/chain/ethereum"
	"github.com/chainfolio/chainfolio/internal/chain/substrate"
	"github.com/chainfolio/chainfolio/internal/types"
	"github.com/chainfolio/chainfolio/internal/validation"
)

// accountEntry is one account of a blockchain accounts request: an address
// or ENS name plus optional label and tags.
type accountEntry struct {
	Address string   `json:"address"`
	Label   string   `json:"label"`
	Tags    []string `json:"tags"`
}

// BlockchainAccountsGetQuery lists the tracked accounts of one chain.
type BlockchainAccountsGetQuery struct {
	Blockchain string `param:"blockchain"`

	chain types.Blockchain
}

func (q *BlockchainAccountsGetQuery) Validate(validation.Deps) error {
	var verrs validation.Errors
	q.chain = parseBlockchain(&verrs, "blockchain", q.Blockchain, true)
	return verrs.OrNil()
}

// Chain returns the validated chain.
func (q *BlockchainAccountsGetQuery) Chain() types.Blockchain { return q.chain }

// BlockchainAccountsRequest adds or edits tracked accounts on one chain.
// The same payload serves PUT and PATCH.
type BlockchainAccountsRequest struct {
	AsyncQueryArgs
	Blockchain string         `param:"blockchain"`
	Accounts   []accountEntry `json:"accounts"`

	chain types.Blockchain
}

func (r *BlockchainAccountsRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	r.chain = parseBlockchain(&verrs, "blockchain", r.Blockchain, true)
	if len(r.Accounts) == 0 {
		verrs.Add("accounts", missingField)
	}
	for _, entry := range r.Accounts {
		if strings.TrimSpace(entry.Address) == "" {
			verrs.Add("address", missingField)
		}
	}
	if err := verrs.OrNil(); err != nil {
		return err
	}

	for i := range r.Accounts {
		address, err := normalizeAddress(r.chain, r.Accounts[i].Address)
		if err != nil {
			verrs.AddErr("accounts", err)
			continue
		}
		r.Accounts[i].Address = address
	}
	if err := verrs.OrNil(); err != nil {
		return err
	}

	checkDuplicateAddresses(&verrs, accountAddresses(r.Accounts))
	return verrs.OrNil()
}

// Chain returns the validated chain.
func (r *BlockchainAccountsRequest) Chain() types.Blockchain { return r.chain }

// ResolveAccounts is the post-load transformation: every entry is turned
// into a resolved, chain-valid account. ENS names go through the resolver;
// ethereum addresses are normalized to their checksummed form. A single
// failure fails the whole batch.
func (r *BlockchainAccountsRequest) ResolveAccounts(ctx context.Context, resolver ethereum.Resolver) ([]types.BlockchainAccount, error) {
	accounts := make([]types.BlockchainAccount, 0, len(r.Accounts))
	for _, entry := range r.Accounts {
		address, err := resolveAddress(ctx, r.chain, entry.Address, resolver)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, types.BlockchainAccount{
			Address: address,
			Label:   entry.Label,
			Tags:    entry.Tags,
		})
	}
	return accounts, nil
}

// BlockchainAccountsDeleteRequest removes tracked accounts from one chain.
type BlockchainAccountsDeleteRequest struct {
	AsyncQueryArgs
	Blockchain string   `param:"blockchain"`
	Accounts   []string `json:"accounts"`

	chain types.Blockchain
}

func (r *BlockchainAccountsDeleteRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	r.chain = parseBlockchain(&verrs, "blockchain", r.Blockchain, true)
	if len(r.Accounts) == 0 {
		verrs.Add("accounts", missingField)
	}
	if err := verrs.OrNil(); err != nil {
		return err
	}

	for i := range r.Accounts {
		address, err := normalizeAddress(r.chain, r.Accounts[i])
		if err != nil {
			verrs.AddErr("accounts", err)
			continue
		}
		r.Accounts[i] = address
	}
	if err := verrs.OrNil(); err != nil {
		return err
	}

	checkDuplicateAddresses(&verrs, r.Accounts)
	return verrs.OrNil()
}

// Chain returns the validated chain.
func (r *BlockchainAccountsDeleteRequest) Chain() types.Blockchain { return r.chain }

// ResolveAccounts resolves ENS names and normalizes the addresses slated
// for removal.
func (r *BlockchainAccountsDeleteRequest) ResolveAccounts(ctx context.Context, resolver ethereum.Resolver) ([]string, error) {
	addresses := make([]string, 0, len(r.Accounts))
	for _, raw := range r.Accounts {
		address, err := resolveAddress(ctx, r.chain, raw, resolver)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}

func accountAddresses(entries []accountEntry) []string {
	addresses := make([]string, 0, len(entries))
	for _, entry := range entries {
		addresses = append(addresses, entry.Address)
	}
	return addresses
}

// normalizeAddress validates raw against the chain's address format and
// returns its canonical form: ethereum addresses get their EIP-55
// checksum casing, bitcoin and kusama addresses pass through unchanged.
// ENS names are left alone; resolution happens in the post-load step.
func normalizeAddress(chain types.Blockchain, raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	switch chain {
	case types.Ethereum:
		if ethereum.IsENSName(raw) {
			return raw, nil
		}
		return ethereum.ChecksumAddress(raw)

	case types.Bitcoin:
		if !bitcoin.IsValidAddress(raw) {
			return "", errors.Errorf("Given value %s is not a valid bitcoin address", raw)
		}
		return raw, nil

	case types.Kusama:
		if ethereum.IsENSName(raw) {
			return raw, nil
		}
		if !substrate.IsValidKusamaAddress(raw) {
			return "", errors.Errorf("Given value %s is not a valid kusama address", raw)
		}
		return raw, nil
	}

	return "", errors.Errorf("unsupported blockchain %s", chain)
}

// checkDuplicateAddresses runs in phase two after normalization: every
// address may appear only once per request. Two casings of the same
// ethereum account count as a duplicate.
func checkDuplicateAddresses(verrs *validation.Errors, addresses []string) {
	seen := make(map[string]struct{}, len(addresses))
	for _, address := range addresses {
		if _, ok := seen[address]; ok {
			verrs.Addf("accounts", "address %s appears multiple times in the request data", address)
		}
		seen[address] = struct{}{}
	}
}

// resolveAddress resolves ethereum ENS names through the resolver and
// re-normalizes the result, so resolved addresses pass the same format
// check as literal ones.
func resolveAddress(ctx context.Context, chain types.Blockchain, raw string, resolver ethereum.Resolver) (string, error) {
	raw = strings.TrimSpace(raw)

	if ethereum.IsENSName(raw) && (chain == types.Ethereum || chain == types.Kusama) {
		resolved, err := resolver.ResolveENS(ctx, raw, chain)
		if err != nil {
			return "", errors.Wrapf(err, "failed to resolve ENS name %s", raw)
		}
		if resolved == "" {
			return "", errors.Errorf("Given ENS name %s could not be resolved for %s", raw, chainTitle(chain))
		}
		raw = resolved
	}
	return normalizeAddress(chain, raw)
}

func chainTitle(chain types.Blockchain) string {
	switch chain {
	case types.Ethereum:
		return "Ethereum"
	case types.Bitcoin:
		return "Bitcoin"
	case types.Kusama:
		return "Kusama"
	}
	return string(chain)
}

// XpubRequest adds an extended public key whose derived addresses get
// tracked on the bitcoin chain.
type XpubRequest struct {
	AsyncQueryArgs
	Xpub           string   `json:"xpub"`
	XpubType       string   `json:"xpub_type"`
	DerivationPath string   `json:"derivation_path"`
	Label          string   `json:"label"`
	Tags           []string `json:"tags"`

	parsed bitcoin.Xpub
}

func (r *XpubRequest) Validate(validation.Deps) error {
	var verrs validation.Errors

	var xpubType bitcoin.XpubType
	if r.XpubType != "" {
		parsed, err := bitcoin.ParseXpubType(r.XpubType)
		if err != nil {
			verrs.AddErr("xpub_type", err)
		}
		xpubType = parsed
	}

	if r.Xpub == "" {
		verrs.Add("xpub", missingField)
	} else if xpub, err := bitcoin.ParseXpub(r.Xpub, xpubType); err != nil {
		verrs.AddErr("xpub", err)
	} else {
		r.parsed = xpub
	}

	if r.DerivationPath != "" {
		if err := bitcoin.IsValidDerivationPath(r.DerivationPath); err != nil {
			verrs.AddErr("derivation_path", err)
		}
	}
	return verrs.OrNil()
}

// ParsedXpub returns the validated extended public key.
func (r *XpubRequest) ParsedXpub() bitcoin.Xpub { return r.parsed }

// XpubPatchRequest edits the label and tags of a tracked xpub.
type XpubPatchRequest struct {
	Xpub           string   `json:"xpub"`
	DerivationPath string   `json:"derivation_path"`
	Label          string   `json:"label"`
	Tags           []string `json:"tags"`

	parsed bitcoin.Xpub
}

func (r *XpubPatchRequest) Validate(validation.Deps) error {
	var verrs validation.Errors
	if r.Xpub == "" {
		verrs.Add("xpub", missingField)
	} else if xpub, err := bitcoin.ParseXpub(r.Xpub, ""); err != nil {
		verrs.AddErr("xpub", err)
	} else {
		r.parsed = xpub
	}
	if r.DerivationPath != "" {
		if err := bitcoin.IsValidDerivationPath(r.DerivationPath); err != nil {
			verrs.AddErr("derivation_path", err)
		}
	}
	return verrs.OrNil()
}

// ParsedXpub returns the validated extended public key.
func (r *XpubPatchRequest) ParsedXpub() bitcoin.Xpub { return r.parsed }
