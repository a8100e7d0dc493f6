package x_trie

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[V any](t *testing.T, tr *Trie[V]) map[string]V {
	t.Helper()
	out := make(map[string]V)
	n, err := tr.Iterate(func(key []byte, value V) error {
		_, dup := out[string(key)]
		require.False(t, dup, "key %q visited twice", key)
		out[string(key)] = value
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, len(out), n)
	return out
}

func TestInsertLookup(t *testing.T) {
	tr := New[int]()

	created, cost, err := tr.Insert([]byte("hello"), 1)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 0, cost, "nothing matched in an empty trie")

	v, ok, _ := tr.Lookup([]byte("hello"))
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok, _ = tr.Lookup([]byte("hell"))
	assert.False(t, ok, "proper prefix must be absent")

	_, ok, _ = tr.Lookup([]byte("hellos"))
	assert.False(t, ok)

	_, ok, _ = tr.Lookup([]byte("x"))
	assert.False(t, ok)

	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, 5, tr.NodeCount())
}

func TestInsertUpsert(t *testing.T) {
	tr := New[string]()

	created, _, err := tr.Insert([]byte("key"), "a")
	require.NoError(t, err)
	assert.True(t, created)

	created, cost, err := tr.Insert([]byte("key"), "b")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 3, cost, "overwrite only scans")

	v, ok, _ := tr.Lookup([]byte("key"))
	require.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, 3, tr.NodeCount())
}

func TestInsertEmptyKey(t *testing.T) {
	tr := New[int]()
	_, _, err := tr.Insert(nil, 1)
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.MaxKeyLen())

	_, ok, _ := tr.Lookup(nil)
	assert.False(t, ok)
	_, ok, _ = tr.Delete([]byte{})
	assert.False(t, ok)
}

func TestNilTrie(t *testing.T) {
	var tr *Trie[int]
	_, _, err := tr.Insert([]byte("a"), 1)
	assert.ErrorIs(t, err, ErrNilTrie)
	_, ok, _ := tr.Lookup([]byte("a"))
	assert.False(t, ok)
	_, ok, _ = tr.Delete([]byte("a"))
	assert.False(t, ok)
	n, err := tr.Iterate(func([]byte, int) error { return nil })
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, tr.Len())
}

func TestPrefixIndependence(t *testing.T) {
	tr := New[int]()
	_, _, _ = tr.Insert([]byte("ab"), 1)
	_, _, _ = tr.Insert([]byte("ac"), 2)

	v, ok, _ := tr.Delete([]byte("ab"))
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok, _ = tr.Lookup([]byte("ac"))
	require.True(t, ok)
	assert.Equal(t, 2, v)

	assert.Equal(t, 2, tr.NodeCount(), "pruned 'b' leaf only")
}

func TestPrefixExtensionCoexistence(t *testing.T) {
	tr := New[int]()
	_, _, _ = tr.Insert([]byte("cat"), 1)
	_, _, _ = tr.Insert([]byte("car"), 2)
	_, _, _ = tr.Insert([]byte("ca"), 3)

	for key, want := range map[string]int{"ca": 3, "cat": 1, "car": 2} {
		v, ok, _ := tr.Lookup([]byte(key))
		require.True(t, ok, key)
		assert.Equal(t, want, v, key)
	}

	t.Run("DeletePrefixKeepsExtensions", func(t *testing.T) {
		v, ok, _ := tr.Delete([]byte("ca"))
		require.True(t, ok)
		assert.Equal(t, 3, v)
		assert.False(t, tr.Contains([]byte("ca")))
		assert.True(t, tr.Contains([]byte("cat")))
		assert.True(t, tr.Contains([]byte("car")))
		assert.Equal(t, 4, tr.NodeCount())
	})

	t.Run("DeleteExtensions", func(t *testing.T) {
		_, ok, _ := tr.Delete([]byte("cat"))
		require.True(t, ok)
		assert.True(t, tr.Contains([]byte("car")))
		assert.Equal(t, 3, tr.NodeCount())

		_, ok, _ = tr.Delete([]byte("car"))
		require.True(t, ok)
		assert.Equal(t, 0, tr.NodeCount(), "whole chain pruned")
		assert.Equal(t, 0, tr.Len())
	})
}

func TestDeleteKeepsTerminalAncestor(t *testing.T) {
	tr := New[int]()
	_, _, _ = tr.Insert([]byte("ca"), 1)
	_, _, _ = tr.Insert([]byte("cats"), 2)

	_, ok, _ := tr.Delete([]byte("cats"))
	require.True(t, ok)
	assert.True(t, tr.Contains([]byte("ca")))
	assert.Equal(t, 2, tr.NodeCount(), "pruning stops at terminal 'a'")
}

func TestDeleteIdempotent(t *testing.T) {
	tr := New[int]()
	_, _, _ = tr.Insert([]byte("abc"), 7)
	_, _, _ = tr.Insert([]byte("abd"), 8)

	v, ok, _ := tr.Delete([]byte("abc"))
	require.True(t, ok)
	assert.Equal(t, 7, v)
	nodes := tr.NodeCount()

	_, ok, _ = tr.Delete([]byte("abc"))
	assert.False(t, ok)
	assert.Equal(t, nodes, tr.NodeCount())
	assert.Equal(t, 1, tr.Len())

	_, ok, _ = tr.Lookup([]byte("abc"))
	assert.False(t, ok)

	// non-terminal prefix is not deletable
	_, ok, _ = tr.Delete([]byte("ab"))
	assert.False(t, ok)
	assert.True(t, tr.Contains([]byte("abd")))
}

func TestDeleteReleasesValue(t *testing.T) {
	type payload struct{ name string }
	tr := New[*payload]()
	p := &payload{"x"}
	_, _, _ = tr.Insert([]byte("ab"), p)
	_, _, _ = tr.Insert([]byte("abc"), &payload{"y"})

	v, ok, _ := tr.Delete([]byte("ab"))
	require.True(t, ok)
	assert.Same(t, p, v)

	// the interior node survives but must not hold the pointer
	n, _ := tr.root.findChild('a')
	require.NotNil(t, n)
	n, _ = n.findChild('b')
	require.NotNil(t, n)
	assert.False(t, n.terminal)
	assert.Nil(t, n.value)

	for _, v := range collect(t, tr) {
		assert.NotSame(t, p, v)
	}
}

func TestReinsertAfterDelete(t *testing.T) {
	tr := New[string]()
	_, _, _ = tr.Insert([]byte("k"), "old")
	_, _, _ = tr.Delete([]byte("k"))

	created, _, err := tr.Insert([]byte("k"), "new")
	require.NoError(t, err)
	assert.True(t, created)
	v, ok, _ := tr.Lookup([]byte("k"))
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestBinaryKeys(t *testing.T) {
	tr := New[string]()
	keys := []int32{0, 1, 256, 65536, -1, 7}
	for _, k := range keys {
		var raw [4]byte
		binary.LittleEndian.PutUint32(raw[:], uint32(k))
		_, _, err := tr.Insert(raw[:], string(rune('a'+k%26)))
		require.NoError(t, err)
	}
	assert.Equal(t, len(keys), tr.Len())

	var zero [4]byte
	_, ok, _ := tr.Lookup(zero[:])
	assert.True(t, ok, "all-zero key")
	_, ok, _ = tr.Lookup(zero[:3])
	assert.False(t, ok, "no implicit terminator")

	got := collect(t, tr)
	assert.Len(t, got, len(keys))
	for k := range got {
		assert.Len(t, k, 4)
	}

	_, ok, _ = tr.Delete(zero[:])
	assert.True(t, ok)
	_, ok, _ = tr.Lookup(zero[:])
	assert.False(t, ok)
}

func TestWatermark(t *testing.T) {
	tr := New[int]()
	_, _, _ = tr.Insert([]byte("ab"), 1)
	assert.Equal(t, 2, tr.MaxKeyLen())

	long := bytes.Repeat([]byte("z"), 40)
	_, _, _ = tr.Insert(long, 2)
	assert.Equal(t, 40, tr.MaxKeyLen())

	_, ok, _ := tr.Delete(long)
	require.True(t, ok)
	assert.Equal(t, 40, tr.MaxKeyLen(), "watermark survives delete")

	_, _, _ = tr.Insert(long[:39], 3)
	_, _, _ = tr.Insert(append(long, 'q'), 4)
	assert.Equal(t, 41, tr.MaxKeyLen())

	got := collect(t, tr)
	assert.Equal(t, 3, got[string(long[:39])])
	assert.Equal(t, 4, got[string(append(long, 'q'))])
}

func TestIterateReconstructsKeys(t *testing.T) {
	tr := New[int]()
	ops := []struct {
		key    string
		insert bool
	}{
		{"alpha", true}, {"alp", true}, {"beta", true}, {"bet", true},
		{"alpha", false}, {"gamma", true}, {"bet", false}, {"al", true},
		{"missing", false}, {"gam", true},
	}
	want := map[string]int{}
	for i, op := range ops {
		if op.insert {
			_, _, err := tr.Insert([]byte(op.key), i)
			require.NoError(t, err)
			want[op.key] = i
		} else {
			tr.Delete([]byte(op.key))
			delete(want, op.key)
		}
	}
	assert.Equal(t, want, collect(t, tr))
	assert.Equal(t, len(want), tr.Len())
}

func TestIterateOrder(t *testing.T) {
	tr := New[int]()
	for i, k := range []string{"b", "a", "bc", "ab", "ba"} {
		_, _, _ = tr.Insert([]byte(k), i)
	}
	var order []string
	_, err := tr.Iterate(func(key []byte, _ int) error {
		order = append(order, string(key))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "bc", "ba", "a", "ab"}, order, "child insertion order, prefix first")
}

func TestIterateEarlyStop(t *testing.T) {
	tr := New[int]()
	for i, k := range []string{"a", "b", "c", "d"} {
		_, _, _ = tr.Insert([]byte(k), i)
	}
	stop := errors.New("stop")
	var seen int
	n, err := tr.Iterate(func(key []byte, _ int) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 2, seen)
	assert.Equal(t, 2, n)
}

func TestIterateEmpty(t *testing.T) {
	tr := New[int]()
	n, err := tr.Iterate(func([]byte, int) error {
		t.Fatal("visitor called on empty trie")
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAllAndKeys(t *testing.T) {
	tr := New[int]()
	for i, k := range []string{"one", "two", "three", "on"} {
		_, _, _ = tr.Insert([]byte(k), i)
	}
	keys := tr.Keys()
	got := make([]string, 0, len(keys))
	for _, k := range keys {
		got = append(got, string(k))
	}
	sort.Strings(got)
	assert.Equal(t, []string{"on", "one", "three", "two"}, got)

	var n int
	for range tr.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestOrderIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	keys := make([]string, 0, 300)
	seen := map[string]bool{}
	for len(keys) < cap(keys) {
		b := make([]byte, 1+rng.Intn(6))
		for i := range b {
			b[i] = byte('a' + rng.Intn(4))
		}
		if !seen[string(b)] {
			seen[string(b)] = true
			keys = append(keys, string(b))
		}
	}

	build := func(order []string) *Trie[string] {
		tr := New[string]()
		for _, k := range order {
			_, _, err := tr.Insert([]byte(k), k)
			require.NoError(t, err)
		}
		return tr
	}

	a := build(keys)
	shuffled := append([]string(nil), keys...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	b := build(shuffled)

	assert.Equal(t, collect(t, a), collect(t, b))
	assert.Equal(t, a.NodeCount(), b.NodeCount())
	for _, k := range keys {
		v, ok, _ := b.Lookup([]byte(k))
		require.True(t, ok, k)
		assert.Equal(t, k, v)
	}

	// delete half and check nothing dead is left behind
	for _, k := range keys[:150] {
		_, ok, _ := b.Delete([]byte(k))
		require.True(t, ok)
	}
	assert.Equal(t, 150, b.Len())
	assertNoDeadLeaves(t, &b.root)
	for _, k := range keys[150:] {
		assert.True(t, b.Contains([]byte(k)))
	}
}

func assertNoDeadLeaves[V any](t *testing.T, n *node[V]) {
	t.Helper()
	letters := map[byte]bool{}
	for _, cn := range n.children {
		assert.False(t, letters[cn.letter], "duplicate sibling letter %q", cn.letter)
		letters[cn.letter] = true
		assert.False(t, cn.isDead(), "dead leaf %q", cn.letter)
		assertNoDeadLeaves(t, cn)
	}
}

func TestCosts(t *testing.T) {
	tr := New[int]()
	_, cost, _ := tr.Insert([]byte("abc"), 1)
	assert.Equal(t, 0, cost, "new nodes are not charged")

	_, cost, _ = tr.Insert([]byte("abd"), 2)
	assert.Equal(t, 2, cost, "two matched bytes")

	_, _, cost = tr.Lookup([]byte("abd"))
	assert.Equal(t, 2, cost, "levels after the first")

	_, _, cost = tr.Lookup([]byte("zzz"))
	assert.Equal(t, 0, cost)

	_, _, cost = tr.Delete([]byte("abc"))
	assert.Equal(t, 2, cost)
}

func TestClear(t *testing.T) {
	tr := New[int]()
	_, _, _ = tr.Insert([]byte("abc"), 1)
	tr.Clear()
	assert.Zero(t, tr.Len())
	assert.Zero(t, tr.NodeCount())
	assert.False(t, tr.Contains([]byte("abc")))
}

func TestDump(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var b strings.Builder
		New[int]().Dump(&b)
		assert.Equal(t, "This trie is empty!\n", b.String())
	})

	t.Run("Compacted", func(t *testing.T) {
		tr := New[int]()
		_, _, _ = tr.Insert([]byte("cat"), 1)
		_, _, _ = tr.Insert([]byte("car"), 2)
		_, _, _ = tr.Insert([]byte("ca"), 3)
		_, _, _ = tr.Insert([]byte{0x01}, 4)

		var b strings.Builder
		tr.Dump(&b)
		want := "000:\n" +
			"    [c] [a]+\n" +
			"            [t]+\n" +
			"            [r]+\n" +
			"001:\n" +
			"    [0x01]+\n"
		assert.Equal(t, want, b.String())
	})
}

func TestTree(t *testing.T) {
	tr := New[int]()
	_, _, _ = tr.Insert([]byte("ab"), 1)
	_, _, _ = tr.Insert([]byte("ac"), 2)
	out := tr.Tree().String()
	assert.Contains(t, out, "trie")
	assert.Contains(t, out, "[a]")
	assert.Contains(t, out, "[b]+")
	assert.Contains(t, out, "[c]+")

	empty := New[int]().Tree().String()
	assert.Contains(t, empty, "trie")
}
