// file:kvtrie/pkg/x_trie/iter.go
package x_trie

import (
	"bytes"
	"fmt"
	"iter"
)

// Visitor is called once per present key. key aliases a buffer reused for
// the whole walk and is only valid until the visitor returns. A non-nil
// error stops the walk.
type Visitor[V any] func(key []byte, value V) error

// Iterate walks the trie depth first in child insertion order, calling fn
// for every present key. It returns the number of keys visited. If fn fails
// the walk stops at once and the error is returned wrapped.
func (t *Trie[V]) Iterate(fn Visitor[V]) (int, error) {
	if t == nil || fn == nil {
		return 0, nil
	}
	buf := make([]byte, t.maxKeyLen)
	var total int
	for _, cn := range t.root.children {
		if err := iterateNode(cn, buf, 0, fn, &total); err != nil {
			return total, fmt.Errorf("x_trie: iterate stopped after %d keys: %w", total, err)
		}
	}
	return total, nil
}

func iterateNode[V any](n *node[V], buf []byte, depth int, fn Visitor[V], total *int) error {
	buf[depth] = n.letter
	if n.terminal {
		*total++
		if err := fn(buf[:depth+1], n.value); err != nil {
			return err
		}
	}
	for _, cn := range n.children {
		if err := iterateNode(cn, buf, depth+1, fn, total); err != nil {
			return err
		}
	}
	return nil
}

// All returns a sequence over every present key and its value in the same
// order as Iterate. Keys are copies and may be retained.
func (t *Trie[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		if t == nil {
			return
		}
		buf := make([]byte, t.maxKeyLen)
		for _, cn := range t.root.children {
			if !yieldNode(cn, buf, 0, yield) {
				return
			}
		}
	}
}

func yieldNode[V any](n *node[V], buf []byte, depth int, yield func([]byte, V) bool) bool {
	buf[depth] = n.letter
	if n.terminal && !yield(bytes.Clone(buf[:depth+1]), n.value) {
		return false
	}
	for _, cn := range n.children {
		if !yieldNode(cn, buf, depth+1, yield) {
			return false
		}
	}
	return true
}

// Keys returns a copy of every present key in iteration order.
func (t *Trie[V]) Keys() [][]byte {
	keys := make([][]byte, 0, t.Len())
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}
