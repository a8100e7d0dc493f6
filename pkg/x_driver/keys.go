package x_driver

import (
	"fmt"

	"github.com/rskv-p/kvtrie/pkg/x_reader"
)

// KeyCodec turns text keys from the data files into trie keys.
type KeyCodec struct {
	IntKeys bool
}

// Encode returns the key bytes and the label used in LOOKUP/DELETE
// lines: 'text' for text keys, (n) for integer keys.
func (c KeyCodec) Encode(s string) (key []byte, label string, err error) {
	if c.IntKeys {
		n, ok, err := x_reader.ParseIntKey(s)
		if err != nil {
			return nil, "", err
		}
		if ok {
			return x_reader.IntKeyBytes(n), fmt.Sprintf("(%d)", n), nil
		}
	}
	return []byte(s), "'" + s + "'", nil
}
