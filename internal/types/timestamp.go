package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp is a unix timestamp in seconds.
type Timestamp int64

// Now returns the current unix timestamp.
func Now() Timestamp {
	return Timestamp(time.Now().Unix())
}

// ParseTimestamp parses a textual timestamp. Integer seconds are accepted
// directly; a decimal string is accepted only when its fractional part is
// zero, since the API works at second granularity.
func ParseTimestamp(value string) (Timestamp, error) {
	value = strings.TrimSpace(value)
	if ts, err := strconv.ParseInt(value, 10, 64); err == nil {
		if ts < 0 {
			return 0, fmt.Errorf("timestamps can not have negative values")
		}
		return Timestamp(ts), nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to deserialize a timestamp entry from string %s", value)
	}
	if f != float64(int64(f)) {
		return 0, fmt.Errorf("a timestamp entry can not have a fractional part: %s", value)
	}
	if f < 0 {
		return 0, fmt.Errorf("timestamps can not have negative values")
	}
	return Timestamp(int64(f)), nil
}
