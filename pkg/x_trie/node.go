// file:kvtrie/pkg/x_trie/node.go
package x_trie

//---------------------
// Trie Node
//---------------------

// node is a single trie vertex. The root of a Trie is a node whose
// letter, terminal flag and value are never used.
type node[V any] struct {
	children []*node[V] // insertion order, letters pairwise distinct
	value    V
	letter   byte
	terminal bool
}

// findChild scans the children for letter c.
func (n *node[V]) findChild(c byte) (*node[V], int) {
	for i, cn := range n.children {
		if cn.letter == c {
			return cn, i
		}
	}
	return nil, -1
}

// addChild appends a child; the caller guarantees its letter is not present.
func (n *node[V]) addChild(cn *node[V]) {
	n.children = append(n.children, cn)
}

// deleteChild removes the child at index i keeping sibling order.
func (n *node[V]) deleteChild(i int) {
	last := len(n.children) - 1
	copy(n.children[i:], n.children[i+1:])
	n.children[last] = nil
	n.children = n.children[:last]
}

// release drops the value reference and clears the terminal flag.
func (n *node[V]) release() V {
	var zero V
	v := n.value
	n.value = zero
	n.terminal = false
	return v
}

// isDead reports whether the node is a leaf that ends no key.
func (n *node[V]) isDead() bool {
	return !n.terminal && len(n.children) == 0
}

// newChain builds a detached linear chain for suffix and returns its head.
// The last node holds value and is marked terminal.
func newChain[V any](suffix []byte, value V) (head *node[V]) {
	var prev *node[V]
	for _, c := range suffix {
		nn := &node[V]{letter: c}
		if prev == nil {
			head = nn
		} else {
			prev.children = []*node[V]{nn}
		}
		prev = nn
	}
	if prev != nil {
		prev.terminal = true
		prev.value = value
	}
	return head
}

// countNodes returns the number of nodes below and including n.
func countNodes[V any](n *node[V]) int {
	total := 1
	for _, cn := range n.children {
		total += countNodes(cn)
	}
	return total
}
