// file:kvtrie/pkg/x_trie/trie.go

// Package x_trie implements an uncompressed byte trie: each key byte is a
// node, children are kept in insertion order and scanned linearly.
package x_trie

//---------------------
// Trie
//---------------------

// Trie maps byte-string keys to values of type V. Every key byte occupies
// its own node; there is no path compression. A Trie is not safe for
// concurrent use.
type Trie[V any] struct {
	root      node[V]
	size      int
	maxKeyLen int
}

// New creates an empty Trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{}
}

// Len returns the number of keys present.
func (t *Trie[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// MaxKeyLen returns the length of the longest key ever inserted. Deletes
// never lower it.
func (t *Trie[V]) MaxKeyLen() int {
	if t == nil {
		return 0
	}
	return t.maxKeyLen
}

// NodeCount returns the number of nodes below the root.
func (t *Trie[V]) NodeCount() int {
	if t == nil {
		return 0
	}
	return countNodes(&t.root) - 1
}

// Clear drops every node. Values are not touched; callers that own
// resources behind them must release those first, usually with Iterate.
func (t *Trie[V]) Clear() {
	if t == nil {
		return
	}
	t.root = node[V]{}
	t.size = 0
}

// Insert adds key or replaces the value of an existing key. created is
// false when an existing key was overwritten. cost counts the key bytes
// consumed by a matching child scan; building the new suffix is free.
func (t *Trie[V]) Insert(key []byte, value V) (created bool, cost int, err error) {
	if t == nil {
		return false, 0, ErrNilTrie
	}
	if len(key) == 0 {
		return false, 0, ErrEmptyKey
	}
	if len(key) > t.maxKeyLen {
		t.maxKeyLen = len(key)
	}

	cur := &t.root
	ki := 0
	for ; ki < len(key); ki++ {
		cn, _ := cur.findChild(key[ki])
		if cn == nil {
			break
		}
		cur = cn
		cost++
	}

	if ki == len(key) {
		created = !cur.terminal
		cur.terminal = true
		cur.value = value
		if created {
			t.size++
		}
		return created, cost, nil
	}

	// The chain is complete before it becomes reachable.
	cur.addChild(newChain(key[ki:], value))
	t.size++
	return true, cost, nil
}

// Lookup returns the value stored for key. ok is false when key is absent,
// including when it is only a proper prefix of a stored key.
func (t *Trie[V]) Lookup(key []byte) (value V, ok bool, cost int) {
	if t == nil || len(key) == 0 {
		return value, false, 0
	}
	cur := &t.root
	for i, c := range key {
		cn, _ := cur.findChild(c)
		if cn == nil {
			return value, false, cost
		}
		if i > 0 {
			cost++
		}
		cur = cn
	}
	if !cur.terminal {
		return value, false, cost
	}
	return cur.value, true, cost
}

// Contains reports whether key is present.
func (t *Trie[V]) Contains(key []byte) bool {
	_, ok, _ := t.Lookup(key)
	return ok
}

// Delete removes key and hands its value back to the caller; the trie keeps
// no reference to it afterwards. Ancestors left without children and not
// ending another key are pruned. Deleting an absent key changes nothing.
func (t *Trie[V]) Delete(key []byte) (value V, ok bool, cost int) {
	if t == nil || len(key) == 0 || len(t.root.children) == 0 {
		return value, false, 0
	}

	path := make([]*node[V], 1, len(key)+1)
	path[0] = &t.root
	idx := make([]int, 0, len(key))

	cur := &t.root
	for i, c := range key {
		cn, ci := cur.findChild(c)
		if cn == nil {
			return value, false, cost
		}
		if i > 0 {
			cost++
		}
		path = append(path, cn)
		idx = append(idx, ci)
		cur = cn
	}
	if !cur.terminal {
		return value, false, cost
	}

	value = cur.release()
	t.size--

	for i := len(path) - 1; i > 0; i-- {
		if !path[i].isDead() {
			break
		}
		path[i-1].deleteChild(idx[i-1])
	}
	return value, true, cost
}
