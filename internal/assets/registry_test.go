package assets_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/chainfolio/internal/assets"
	"github.com/chainfolio/chainfolio/internal/types"
)

func TestRegistryGet(t *testing.T) {
	r := assets.NewRegistry()

	eth, err := r.Get("ETH")
	require.NoError(t, err)
	assert.Equal(t, "Ethereum", eth.Name)

	_, err = r.Get("NOTACOIN")
	assert.EqualError(t, err, "unknown asset NOTACOIN provided")

	// Identifiers are case sensitive.
	_, err = r.Get("eth")
	assert.Error(t, err)
}

func TestRegistryRegister(t *testing.T) {
	r := assets.NewRegistry()

	_, err := r.Get("FOL")
	require.Error(t, err)

	r.Register(types.Asset{Identifier: "FOL", Symbol: "FOL", Name: "Folio Token"})
	fol, err := r.Get("FOL")
	require.NoError(t, err)
	assert.Equal(t, "Folio Token", fol.Name)

	// Re-registering replaces the entry.
	r.Register(types.Asset{Identifier: "FOL", Symbol: "FOL", Name: "Folio Token v2"})
	fol, err = r.Get("FOL")
	require.NoError(t, err)
	assert.Equal(t, "Folio Token v2", fol.Name)
}

func TestRegistryAllIsSorted(t *testing.T) {
	r := assets.NewRegistry()
	all := r.All()
	require.NotEmpty(t, all)

	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool {
		return all[i].Identifier < all[j].Identifier
	}))

	identifiers := make(map[string]struct{}, len(all))
	for _, a := range all {
		identifiers[a.Identifier] = struct{}{}
	}
	for _, want := range []string{"BTC", "ETH", "KSM", "USD", "EUR"} {
		assert.Contains(t, identifiers, want)
	}
}
