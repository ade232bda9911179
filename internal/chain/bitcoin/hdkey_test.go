package bitcoin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/chainfolio/internal/chain/bitcoin"
)

// BIP-32 test vector 1 master public key.
const testXpub = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"

func TestParseXpub(t *testing.T) {
	xpub, err := bitcoin.ParseXpub(testXpub, "")
	require.NoError(t, err)
	assert.Equal(t, testXpub, xpub.Raw)
	// Type inferred from the xpub prefix.
	assert.Equal(t, bitcoin.XpubP2PKH, xpub.Type)

	xpub, err = bitcoin.ParseXpub(testXpub, bitcoin.XpubWPKH)
	require.NoError(t, err)
	assert.Equal(t, bitcoin.XpubWPKH, xpub.Type)
}

func TestParseXpubRejectsPrivateKey(t *testing.T) {
	// BIP-32 test vector 1 master private key.
	xprv := "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
	_, err := bitcoin.ParseXpub(xprv, "")
	assert.ErrorContains(t, err, "extended private key")
}

func TestParseXpubRejectsGarbage(t *testing.T) {
	_, err := bitcoin.ParseXpub("xpubnotakey", "")
	assert.ErrorContains(t, err, "not a valid extended public key")
}

func TestParseXpubType(t *testing.T) {
	for raw, want := range map[string]bitcoin.XpubType{
		"p2pkh":       bitcoin.XpubP2PKH,
		"p2sh_p2wpkh": bitcoin.XpubP2SHP2WPKH,
		"wpkh":        bitcoin.XpubWPKH,
	} {
		got, err := bitcoin.ParseXpubType(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := bitcoin.ParseXpubType("p2tr")
	assert.ErrorContains(t, err, "unknown xpub type")
}

func TestIsValidDerivationPath(t *testing.T) {
	assert.NoError(t, bitcoin.IsValidDerivationPath("m/0/1/2"))
	assert.NoError(t, bitcoin.IsValidDerivationPath("m"))

	err := bitcoin.IsValidDerivationPath("m/0'/1")
	assert.ErrorContains(t, err, "hardened")

	err = bitcoin.IsValidDerivationPath("m/0h/1")
	assert.ErrorContains(t, err, "hardened")

	err = bitcoin.IsValidDerivationPath("44/0/1")
	assert.ErrorContains(t, err, "m/X/Y/Z")

	err = bitcoin.IsValidDerivationPath("m/-1/2")
	assert.ErrorContains(t, err, "m/X/Y/Z")
}
