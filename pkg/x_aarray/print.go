package x_aarray

import (
	"fmt"
	"io"
)

// PrintContents dumps the trie structure to w.
func (a *AssociativeArray[V]) PrintContents(w io.Writer) error {
	if a.trie == nil {
		return ErrDestroyed
	}
	a.trie.Dump(w)
	return nil
}

// PrintTree renders the trie with box-drawing branches.
func (a *AssociativeArray[V]) PrintTree(w io.Writer) error {
	if a.trie == nil {
		return ErrDestroyed
	}
	_, err := io.WriteString(w, a.trie.Tree().String())
	return err
}

// PrintSummary writes the entry count and the accumulated costs.
func (a *AssociativeArray[V]) PrintSummary(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Associative array contains %d entries\n"+
			"Costs accrued while processing keys:\n"+
			"  Insertion : %d\n"+
			"  Search    : %d\n"+
			"  Deletion  : %d\n",
		a.stats.Entries, a.stats.InsertCost, a.stats.SearchCost, a.stats.DeleteCost)
	return err
}
