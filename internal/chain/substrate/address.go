// Package substrate validates Kusama ss58 addresses and encodes Substrate
// public keys (as stored in ENS records) into Kusama addresses.
package substrate

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

// KusamaPrefix is the ss58 network identifier for Kusama.
const KusamaPrefix = 0x02

// ss58Preamble is prepended to the payload before hashing the checksum.
var ss58Preamble = []byte("SS58PRE")

// IsValidKusamaAddress reports whether value is a valid Kusama ss58
// address: base58, Kusama network prefix, 32-byte public key and a valid
// blake2b checksum.
func IsValidKusamaAddress(value string) bool {
	decoded := base58.Decode(value)
	// prefix byte + 32-byte public key + 2-byte checksum
	if len(decoded) != 35 || decoded[0] != KusamaPrefix {
		return false
	}
	return bytes.Equal(ss58Checksum(decoded[:33]), decoded[33:])
}

// AddressFromPublicKey encodes a 32-byte Substrate public key (hex string,
// 0x prefix optional) into a Kusama ss58 address.
func AddressFromPublicKey(publicKey string) (string, error) {
	hexKey := strings.TrimPrefix(publicKey, "0x")
	key, err := hex.DecodeString(hexKey)
	if err != nil || len(key) != 32 {
		return "", fmt.Errorf("%s is not a valid substrate public key", publicKey)
	}

	payload := append([]byte{KusamaPrefix}, key...)
	return base58.Encode(append(payload, ss58Checksum(payload)...)), nil
}

func ss58Checksum(payload []byte) []byte {
	hasher, _ := blake2b.New512(nil)
	hasher.Write(ss58Preamble)
	hasher.Write(payload)
	return hasher.Sum(nil)[:2]
}
