package x_reader

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// IntKeyLen is the size of an integer key image.
const IntKeyLen = 4

// ParseIntKey reads the leading decimal digits of s as an int32. ok is
// false when s does not start with a digit; such keys stay textual.
func ParseIntKey(s string) (n int32, ok bool, err error) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return 0, true, fmt.Errorf("failed extracting integer from '%s': %w", s, err)
	}
	return int32(v), true, nil
}

// IntKeyBytes returns the little-endian byte image of n.
func IntKeyBytes(n int32) []byte {
	return binary.LittleEndian.AppendUint32(make([]byte, 0, IntKeyLen), uint32(n))
}
