package substrate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/chainfolio/internal/chain/substrate"
)

func TestAddressFromPublicKeyRoundTrip(t *testing.T) {
	// Encoding a public key must yield an address the validator accepts.
	publicKey := "0x46ebddef8cd9bb167dc30878d7113b7e168e6f0646beffd77d69d39bad76b47a"

	address, err := substrate.AddressFromPublicKey(publicKey)
	require.NoError(t, err)
	assert.True(t, substrate.IsValidKusamaAddress(address))

	// The 0x prefix is optional.
	same, err := substrate.AddressFromPublicKey(publicKey[2:])
	require.NoError(t, err)
	assert.Equal(t, address, same)
}

func TestAddressFromPublicKeyRejectsGarbage(t *testing.T) {
	_, err := substrate.AddressFromPublicKey("0xnothex")
	assert.ErrorContains(t, err, "not a valid substrate public key")

	// Wrong length.
	_, err = substrate.AddressFromPublicKey("0x46ebdd")
	assert.ErrorContains(t, err, "not a valid substrate public key")
}

func TestIsValidKusamaAddress(t *testing.T) {
	assert.False(t, substrate.IsValidKusamaAddress(""))
	assert.False(t, substrate.IsValidKusamaAddress("not an address"))
	// Valid bitcoin address is not a kusama address.
	assert.False(t, substrate.IsValidKusamaAddress("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"))
	// Polkadot (prefix 0) addresses are rejected on the Kusama network.
	assert.False(t, substrate.IsValidKusamaAddress("15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5"))
}
