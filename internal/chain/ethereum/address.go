// Package ethereum holds Ethereum address handling: EIP-55 checksum
// normalization and the ENS resolution contract the validation layer's
// post-load transforms depend on.
package ethereum

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/chainfolio/chainfolio/internal/types"
)

// ENSSuffix is the reserved name suffix that marks an address field value
// as a name to resolve instead of a literal address.
const ENSSuffix = ".eth"

// IsENSName reports whether value looks like an ENS name rather than an
// address. Validation lets such values through the per-field stage; they
// are resolved in the post-load transformation.
func IsENSName(value string) bool {
	return strings.HasSuffix(value, ENSSuffix)
}

// ChecksumAddress normalizes an Ethereum address to its EIP-55
// checksum-cased form. Input case is ignored; anything that is not a
// 0x-prefixed 40-hex-digit string is rejected.
func ChecksumAddress(value string) (string, error) {
	if !strings.HasPrefix(value, "0x") && !strings.HasPrefix(value, "0X") {
		return "", fmt.Errorf("given value %s is not an ethereum address", value)
	}
	hexPart := strings.ToLower(value[2:])
	if len(hexPart) != 40 {
		return "", fmt.Errorf("given value %s is not an ethereum address", value)
	}
	for _, c := range hexPart {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", fmt.Errorf("given value %s is not an ethereum address", value)
		}
	}

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(hexPart))
	hash := hasher.Sum(nil)

	checksummed := make([]byte, 40)
	for i := 0; i < 40; i++ {
		c := hexPart[i]
		if c >= 'a' && c <= 'f' {
			// Uppercase when the corresponding checksum nibble is >= 8.
			nibble := hash[i/2]
			if i%2 == 0 {
				nibble >>= 4
			}
			if nibble&0x0f >= 8 {
				c = c - 'a' + 'A'
			}
		}
		checksummed[i] = c
	}
	return "0x" + string(checksummed), nil
}

// Resolver resolves ENS names to chain-specific payloads: a hex address for
// Ethereum, a scriptpubkey hex string for Bitcoin (EIP-2304) and a
// Substrate public key hex string for Kusama. An empty result with a nil
// error means the name has no record for that chain. Resolution is a
// blocking external lookup, so it takes a context.
type Resolver interface {
	ResolveENS(ctx context.Context, name string, chain types.Blockchain) (string, error)
}

// OfflineResolver is the Resolver used when no ethereum node is configured.
// Every lookup fails, which aborts the whole batch carrying the name.
type OfflineResolver struct{}

func (OfflineResolver) ResolveENS(ctx context.Context, name string, chain types.Blockchain) (string, error) {
	return "", fmt.Errorf("could not resolve ENS name %s: no ethereum node is connected", name)
}
