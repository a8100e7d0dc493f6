// file:kvtrie/pkg/x_trie/errors.go
package x_trie

import "errors"

var (
	// ErrEmptyKey is returned by Insert for a zero-length key.
	ErrEmptyKey = errors.New("x_trie: empty key")

	// ErrNilTrie is returned when an operation is invoked on a nil *Trie.
	ErrNilTrie = errors.New("x_trie: nil trie")
)
