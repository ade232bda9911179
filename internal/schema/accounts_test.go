package schema_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/chainfolio/internal/chain/ethereum"
	"github.com/chainfolio/chainfolio/internal/chain/substrate"
	"github.com/chainfolio/chainfolio/internal/schema"
	"github.com/chainfolio/chainfolio/internal/types"
)

// stubResolver answers ENS lookups from a fixed table.
type stubResolver struct {
	names map[string]string
	err   error
}

func (r stubResolver) ResolveENS(_ context.Context, name string, _ types.Blockchain) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return r.names[name], nil
}

func TestBlockchainAccountsRequestValid(t *testing.T) {
	payload := `{
		"accounts": [
			{"address": "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", "label": "main", "tags": ["hot"]},
			{"address": "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"}
		]
	}`
	var req schema.BlockchainAccountsRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	req.Blockchain = "ETH"

	require.NoError(t, req.Validate(deps()))
	assert.Equal(t, types.Ethereum, req.Chain())
}

func TestBlockchainAccountsRequestUnknownChain(t *testing.T) {
	var req schema.BlockchainAccountsRequest
	require.NoError(t, json.Unmarshal([]byte(`{"accounts": [{"address": "x"}]}`), &req))
	req.Blockchain = "DOGE"

	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t, fields, "blockchain")
}

func TestBlockchainAccountsRequestRequiresAccounts(t *testing.T) {
	var req schema.BlockchainAccountsRequest
	req.Blockchain = "ETH"

	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t, fields, "accounts")
}

func TestBlockchainAccountsRequestDuplicateAddress(t *testing.T) {
	payload := `{
		"accounts": [
			{"address": "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"},
			{"address": "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}
		]
	}`
	var req schema.BlockchainAccountsRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	req.Blockchain = "ETH"

	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t,
		fields["accounts"],
		"address 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed appears multiple times in the request data",
	)
}

func TestBlockchainAccountsRequestDuplicateAcrossCasings(t *testing.T) {
	// The same ethereum account in two casings normalizes to one address
	// and must be rejected as a duplicate.
	payload := `{
		"accounts": [
			{"address": "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"},
			{"address": "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}
		]
	}`
	var req schema.BlockchainAccountsRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	req.Blockchain = "ETH"

	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t,
		fields["accounts"],
		"address 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed appears multiple times in the request data",
	)
}

func TestBlockchainAccountsDeleteRequestDuplicateAcrossCasings(t *testing.T) {
	var req schema.BlockchainAccountsDeleteRequest
	req.Blockchain = "ETH"
	req.Accounts = []string{
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	}

	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t,
		fields["accounts"],
		"address 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed appears multiple times in the request data",
	)
}

func TestBlockchainAccountsRequestRejectsMalformedAddress(t *testing.T) {
	var req schema.BlockchainAccountsRequest
	require.NoError(t, json.Unmarshal([]byte(`{"accounts": [{"address": "0xnothex"}]}`), &req))
	req.Blockchain = "ETH"

	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t, fields, "accounts")
}

func TestResolveAccountsChecksumsEthereumAddresses(t *testing.T) {
	var req schema.BlockchainAccountsRequest
	payload := `{"accounts": [{"address": "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", "label": "main"}]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	req.Blockchain = "ETH"
	require.NoError(t, req.Validate(deps()))

	accounts, err := req.ResolveAccounts(context.Background(), stubResolver{})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", accounts[0].Address)
	assert.Equal(t, "main", accounts[0].Label)
}

func TestResolveAccountsENS(t *testing.T) {
	var req schema.BlockchainAccountsRequest
	payload := `{"accounts": [{"address": "dev.eth"}]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	req.Blockchain = "ETH"
	require.NoError(t, req.Validate(deps()))

	resolver := stubResolver{names: map[string]string{
		"dev.eth": "0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359",
	}}
	accounts, err := req.ResolveAccounts(context.Background(), resolver)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", accounts[0].Address)
}

func TestResolveAccountsENSUnresolved(t *testing.T) {
	var req schema.BlockchainAccountsRequest
	payload := `{"accounts": [{"address": "nobody.eth"}]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	req.Blockchain = "ETH"
	require.NoError(t, req.Validate(deps()))

	_, err := req.ResolveAccounts(context.Background(), stubResolver{})
	assert.ErrorContains(t, err, "Given ENS name nobody.eth could not be resolved for Ethereum")
}

func TestResolveAccountsOfflineResolver(t *testing.T) {
	var req schema.BlockchainAccountsRequest
	payload := `{"accounts": [{"address": "dev.eth"}]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	req.Blockchain = "ETH"
	require.NoError(t, req.Validate(deps()))

	_, err := req.ResolveAccounts(context.Background(), ethereum.OfflineResolver{})
	assert.ErrorContains(t, err, "failed to resolve ENS name dev.eth")
}

func TestResolveAccountsBitcoin(t *testing.T) {
	var req schema.BlockchainAccountsRequest
	payload := `{"accounts": [
		{"address": "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"},
		{"address": "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"}
	]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	req.Blockchain = "BTC"
	require.NoError(t, req.Validate(deps()))

	accounts, err := req.ResolveAccounts(context.Background(), stubResolver{})
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	req.Accounts = nil
	require.NoError(t, json.Unmarshal([]byte(`{"accounts": [{"address": "notbitcoin"}]}`), &req))
	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t, fields["accounts"], "Given value notbitcoin is not a valid bitcoin address")
}

func TestResolveAccountsKusama(t *testing.T) {
	address, err := substrate.AddressFromPublicKey(
		"0x46ebddef8cd9bb167dc30878d7113b7e168e6f0646beffd77d69d39bad76b47a",
	)
	require.NoError(t, err)

	var req schema.BlockchainAccountsRequest
	req.Blockchain = "KSM"
	require.NoError(t, json.Unmarshal(
		[]byte(`{"accounts": [{"address": "`+address+`"}]}`), &req,
	))
	require.NoError(t, req.Validate(deps()))

	accounts, err := req.ResolveAccounts(context.Background(), stubResolver{})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, address, accounts[0].Address)

	// Resolver failures surface instead of being swallowed.
	req.Accounts = nil
	require.NoError(t, json.Unmarshal([]byte(`{"accounts": [{"address": "val.eth"}]}`), &req))
	require.NoError(t, req.Validate(deps()))
	_, err = req.ResolveAccounts(
		context.Background(),
		stubResolver{err: errors.New("node unreachable")},
	)
	assert.ErrorContains(t, err, "failed to resolve ENS name val.eth")
}

func TestBlockchainAccountsDeleteRequest(t *testing.T) {
	var req schema.BlockchainAccountsDeleteRequest
	payload := `{"accounts": ["0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	req.Blockchain = "ETH"
	require.NoError(t, req.Validate(deps()))

	addresses, err := req.ResolveAccounts(context.Background(), stubResolver{})
	require.NoError(t, err)
	assert.Equal(t, []string{"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}, addresses)

	req.Accounts = []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	}
	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t,
		fields["accounts"],
		"address 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed appears multiple times in the request data",
	)
}

func TestXpubRequestValidation(t *testing.T) {
	const xpub = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"

	var req schema.XpubRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"xpub": "`+xpub+`", "derivation_path": "m/0/0", "label": "ledger"}`), &req,
	))
	require.NoError(t, req.Validate(deps()))
	assert.Equal(t, xpub, req.ParsedXpub().Raw)

	req = schema.XpubRequest{}
	fields := fieldMessages(t, req.Validate(deps()))
	assert.Contains(t, fields, "xpub")

	req = schema.XpubRequest{Xpub: xpub, DerivationPath: "m/x/0"}
	fields = fieldMessages(t, req.Validate(deps()))
	assert.Contains(t, fields, "derivation_path")
}
