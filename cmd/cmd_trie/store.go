package cmd_trie

import "github.com/rskv-p/kvtrie/pkg/x_trie"

// costedTrie drives x_trie directly and keeps one running cost total.
type costedTrie[V any] struct {
	*x_trie.Trie[V]
	cost int
}

func (t *costedTrie[V]) Insert(key []byte, value V) error {
	_, cost, err := t.Trie.Insert(key, value)
	t.cost += cost
	return err
}

func (t *costedTrie[V]) Lookup(key []byte) (V, bool, error) {
	v, ok, cost := t.Trie.Lookup(key)
	t.cost += cost
	return v, ok, nil
}

func (t *costedTrie[V]) Delete(key []byte) (V, bool, error) {
	v, ok, cost := t.Trie.Delete(key)
	t.cost += cost
	return v, ok, nil
}

// take returns the cost accrued since the previous call.
func (t *costedTrie[V]) take() int {
	c := t.cost
	t.cost = 0
	return c
}
