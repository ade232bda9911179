// Package bitcoin validates Bitcoin addresses, extended public keys and
// derivation paths, and derives addresses from ENS-stored scriptpubkeys.
package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	versionP2PKH = 0x00
	versionP2SH  = 0x05

	mainnetHRP = "bc"
)

// IsValidAddress reports whether value is a valid mainnet Bitcoin address:
// base58check P2PKH/P2SH or bech32 segwit.
func IsValidAddress(value string) bool {
	if decoded, version, err := base58.CheckDecode(value); err == nil {
		return len(decoded) == 20 && (version == versionP2PKH || version == versionP2SH)
	}

	hrp, data, err := bech32.Decode(value)
	if err != nil || hrp != mainnetHRP || len(data) < 1 {
		return false
	}
	witnessVersion := data[0]
	if witnessVersion > 16 {
		return false
	}
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return false
	}
	if witnessVersion == 0 {
		return len(program) == 20 || len(program) == 32
	}
	return len(program) >= 2 && len(program) <= 40
}

// AddressFromScriptPubKey derives the Bitcoin address encoded by a
// scriptpubkey, as stored in ENS records for Bitcoin (EIP-2304). P2PKH,
// P2SH, P2WPKH and P2WSH scripts are supported.
func AddressFromScriptPubKey(script []byte) (string, error) {
	switch {
	// OP_DUP OP_HASH160 <20> ... OP_EQUALVERIFY OP_CHECKSIG
	case len(script) == 25 &&
		script[0] == 0x76 && script[1] == 0xa9 && script[2] == 0x14 &&
		script[23] == 0x88 && script[24] == 0xac:
		return base58.CheckEncode(script[3:23], versionP2PKH), nil

	// OP_HASH160 <20> OP_EQUAL
	case len(script) == 23 && script[0] == 0xa9 && script[1] == 0x14 && script[22] == 0x87:
		return base58.CheckEncode(script[2:22], versionP2SH), nil

	// OP_0 <20> (P2WPKH) or OP_0 <32> (P2WSH)
	case len(script) == 22 && script[0] == 0x00 && script[1] == 0x14:
		return encodeSegwit(0, script[2:])
	case len(script) == 34 && script[0] == 0x00 && script[1] == 0x20:
		return encodeSegwit(0, script[2:])
	}
	return "", fmt.Errorf("scriptpubkey %x does not match any known address script", script)
}

func encodeSegwit(witnessVersion byte, program []byte) (string, error) {
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to encode segwit program: %w", err)
	}
	return bech32.Encode(mainnetHRP, append([]byte{witnessVersion}, converted...))
}
