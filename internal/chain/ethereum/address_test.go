package ethereum_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/chainfolio/internal/chain/ethereum"
	"github.com/chainfolio/chainfolio/internal/types"
)

func TestChecksumAddress(t *testing.T) {
	// EIP-55 reference vectors.
	vectors := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}
	for _, want := range vectors {
		got, err := ethereum.ChecksumAddress(want)
		require.NoError(t, err, want)
		assert.Equal(t, want, got)

		// Case of the input must not matter.
		got, err = ethereum.ChecksumAddress("0x" + lower(want[2:]))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestChecksumAddressRejectsGarbage(t *testing.T) {
	for _, value := range []string{
		"",
		"5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAe",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAedd",
		"0xzzzeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	} {
		_, err := ethereum.ChecksumAddress(value)
		assert.ErrorContains(t, err, "is not an ethereum address", value)
	}
}

func TestIsENSName(t *testing.T) {
	assert.True(t, ethereum.IsENSName("vitalik.eth"))
	assert.False(t, ethereum.IsENSName("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.False(t, ethereum.IsENSName("vitalik.com"))
}

func TestOfflineResolver(t *testing.T) {
	_, err := ethereum.OfflineResolver{}.ResolveENS(context.Background(), "vitalik.eth", types.Ethereum)
	assert.ErrorContains(t, err, "no ethereum node is connected")
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'F' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}
