// file:kvtrie/pkg/x_trie/dump.go
package x_trie

import (
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

//---------------------
// Tree Dump (Debug)
//---------------------

const dumpIndent = 4

// Dump writes the trie sideways, one line per branch point. Runs of
// single-child nodes share a line; terminal nodes carry a '+' marker.
func (t *Trie[V]) Dump(w io.Writer) {
	if t == nil || len(t.root.children) == 0 {
		fmt.Fprintln(w, "This trie is empty!")
		return
	}
	for i, cn := range t.root.children {
		fmt.Fprintf(w, "%03d:\n", i)
		dumpNode(w, cn, 1)
	}
}

// dumpNode writes n and its single-child run on one line, then recurses.
func dumpNode[V any](w io.Writer, n *node[V], depth int) {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", depth*dumpIndent))
	b.WriteString(nodeLabel(n))
	for len(n.children) == 1 {
		n = n.children[0]
		depth++
		b.WriteString(nodeLabel(n))
	}
	b.WriteByte('\n')
	io.WriteString(w, b.String())
	for _, cn := range n.children {
		dumpNode(w, cn, depth+1)
	}
}

// nodeLabel renders a node as "[c]+" or "[0xhh] ".
func nodeLabel[V any](n *node[V]) string {
	mark := byte(' ')
	if n.terminal {
		mark = '+'
	}
	if isPrint(n.letter) {
		return fmt.Sprintf("[%c]%c", n.letter, mark)
	}
	return fmt.Sprintf("[0x%02x]%c", n.letter, mark)
}

func isPrint(c byte) bool { return c >= 0x20 && c < 0x7f }

//---------------------
// treeprint rendering
//---------------------

// Tree renders the trie as a treeprint.Tree with one branch per node.
// Single-child runs are collapsed into one label like Dump does.
func (t *Trie[V]) Tree() treeprint.Tree {
	root := treeprint.NewWithRoot("trie")
	if t == nil {
		return root
	}
	for _, cn := range t.root.children {
		addTreeNode(root, cn)
	}
	return root
}

func addTreeNode[V any](tree treeprint.Tree, n *node[V]) {
	var b strings.Builder
	b.WriteString(nodeLabel(n))
	for len(n.children) == 1 {
		n = n.children[0]
		b.WriteString(nodeLabel(n))
	}
	label := strings.TrimRight(b.String(), " ")
	if len(n.children) == 0 {
		tree.AddNode(label)
		return
	}
	branch := tree.AddBranch(label)
	for _, cn := range n.children {
		addTreeNode(branch, cn)
	}
}
