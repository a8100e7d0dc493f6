package x_driver

import (
	"fmt"
	"io"

	"github.com/rskv-p/kvtrie/constant"
	"github.com/rskv-p/kvtrie/pkg/x_keyfmt"
	"github.com/rskv-p/kvtrie/pkg/x_trie"
)

// Store is the operation surface the driver loops run against. The
// associative array satisfies it directly.
type Store[V any] interface {
	Insert(key []byte, value V) error
	Lookup(key []byte) (V, bool, error)
	Delete(key []byte) (V, bool, error)
	Iterate(fn x_trie.Visitor[V]) (int, error)
}

// Result is one query or delete outcome.
type Result[V any] struct {
	Label string // 'text' or (n)
	Value V
	Found bool
}

// LoadData inserts every key/value line of path, building values with mk.
func LoadData[V any](st Store[V], path string, delim byte, codec KeyCodec, mk func(string) V) (int, error) {
	n := 0
	_, err := ForEachDataLine(path, delim, func(k, v string) error {
		key, label, err := codec.Encode(k)
		if err != nil {
			return err
		}
		if err := st.Insert(key, mk(v)); err != nil {
			return fmt.Errorf("failed to add key %s: %w", label, err)
		}
		n++
		return nil
	})
	return n, err
}

// Query looks up every key listed in path.
func Query[V any](st Store[V], path string, codec KeyCodec, fn func(Result[V]) error) error {
	return ForEachPlainLine(path, func(k string) error {
		key, label, err := codec.Encode(k)
		if err != nil {
			return err
		}
		v, ok, err := st.Lookup(key)
		if err != nil {
			return err
		}
		return fn(Result[V]{Label: label, Value: v, Found: ok})
	})
}

// Remove deletes every key listed in path. fn owns each returned value.
func Remove[V any](st Store[V], path string, codec KeyCodec, fn func(Result[V]) error) error {
	return ForEachPlainLine(path, func(k string) error {
		key, label, err := codec.Encode(k)
		if err != nil {
			return err
		}
		v, ok, err := st.Delete(key)
		if err != nil {
			return err
		}
		return fn(Result[V]{Label: label, Value: v, Found: ok})
	})
}

// PrintResult writes the LOOKUP/DELETE line for a string value.
func PrintResult(w io.Writer, verb string, r Result[string]) error {
	if !r.Found {
		_, err := fmt.Fprintf(w, "%s: key %s produced no value\n", verb, r.Label)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: key %s produced value '%s'\n", verb, r.Label, r.Value)
	return err
}

// PrintKeys writes one "Iterator Key" line per present key.
func PrintKeys[V any](w io.Writer, st Store[V], show func(V) string) (int, error) {
	buf := make([]byte, 0, constant.KeyPrintMax)
	return st.Iterate(func(key []byte, v V) error {
		buf = x_keyfmt.AppendPrintable(buf[:0], key, constant.KeyPrintMax)
		_, err := fmt.Fprintf(w, "  Iterator Key: %s %s\n", buf, show(v))
		return err
	})
}

// Release hands every stored value to free before the store is dropped.
func Release[V any](st Store[V], free func(V)) (int, error) {
	return st.Iterate(func(_ []byte, v V) error {
		if free != nil {
			free(v)
		}
		return nil
	})
}
