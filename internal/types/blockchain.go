package types

import (
	"fmt"
	"strings"
)

// Blockchain is the closed set of chains the API tracks accounts on.
type Blockchain string

const (
	Bitcoin  Blockchain = "BTC"
	Ethereum Blockchain = "ETH"
	Kusama   Blockchain = "KSM"
)

// ParseBlockchain maps a case-insensitive short code (btc/BTC, eth/ETH,
// ksm/KSM) to its canonical Blockchain value.
func ParseBlockchain(value string) (Blockchain, error) {
	switch strings.ToUpper(value) {
	case "BTC":
		return Bitcoin, nil
	case "ETH":
		return Ethereum, nil
	case "KSM":
		return Kusama, nil
	}
	return "", fmt.Errorf("unrecognized value %s given for blockchain name", value)
}

func (b Blockchain) String() string {
	return string(b)
}
