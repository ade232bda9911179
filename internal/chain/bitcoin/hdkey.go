package bitcoin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// XpubType determines the address script type derived from an extended
// public key.
type XpubType string

const (
	XpubP2PKH      XpubType = "p2pkh"
	XpubP2SHP2WPKH XpubType = "p2sh_p2wpkh"
	XpubWPKH       XpubType = "wpkh"
)

// ParseXpubType maps a string to its XpubType value.
func ParseXpubType(value string) (XpubType, error) {
	switch value {
	case "p2pkh":
		return XpubP2PKH, nil
	case "p2sh_p2wpkh":
		return XpubP2SHP2WPKH, nil
	case "wpkh":
		return XpubWPKH, nil
	}
	return "", fmt.Errorf("unknown xpub type %s found", value)
}

// Xpub is a validated extended public key together with the script type
// used when deriving addresses from it.
type Xpub struct {
	Key  *hdkeychain.ExtendedKey
	Type XpubType
	Raw  string
}

// ParseXpub validates an extended public key string. When xpubType is
// empty the type is inferred from the key prefix (xpub, ypub or zpub).
// Extended private keys are rejected.
func ParseXpub(value string, xpubType XpubType) (Xpub, error) {
	key, err := hdkeychain.NewKeyFromString(value)
	if err != nil {
		return Xpub{}, fmt.Errorf("given xpub %s is not a valid extended public key: %v", value, err)
	}
	if key.IsPrivate() {
		return Xpub{}, fmt.Errorf("given key is an extended private key. Only public keys are accepted")
	}

	if xpubType == "" {
		switch {
		case strings.HasPrefix(value, "xpub"):
			xpubType = XpubP2PKH
		case strings.HasPrefix(value, "ypub"):
			xpubType = XpubP2SHP2WPKH
		case strings.HasPrefix(value, "zpub"):
			xpubType = XpubWPKH
		default:
			return Xpub{}, fmt.Errorf("could not infer the script type from xpub prefix of %s", value)
		}
	}

	return Xpub{Key: key, Type: xpubType, Raw: value}, nil
}

// IsValidDerivationPath checks a BIP32 derivation path of the form m/X/Y/Z.
// Hardened nodes are rejected since child public keys can not be derived
// from an xpub through them.
func IsValidDerivationPath(path string) error {
	segments := strings.Split(path, "/")
	if segments[0] != "m" {
		return fmt.Errorf(
			"derivation paths should be of the form m/X/Y/Z where X, Y and Z are non-negative integers",
		)
	}
	for _, segment := range segments[1:] {
		if strings.HasSuffix(segment, "'") || strings.HasSuffix(segment, "h") {
			return fmt.Errorf("derivation paths can not contain hardened nodes")
		}
		index, err := strconv.ParseInt(segment, 10, 64)
		if err != nil || index < 0 {
			return fmt.Errorf(
				"derivation paths should be of the form m/X/Y/Z where X, Y and Z are non-negative integers",
			)
		}
	}
	return nil
}
