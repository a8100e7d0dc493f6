// Package x_aarray is the associative array facade over x_trie used by the
// drivers. It keeps the live entry count and cumulative per-operation cost
// counters.
//
// An AssociativeArray is not safe for concurrent use.
package x_aarray

import (
	"errors"
	"iter"

	"github.com/rs/zerolog"

	"github.com/rskv-p/kvtrie/pkg/x_keyfmt"
	"github.com/rskv-p/kvtrie/pkg/x_trie"
	"github.com/rskv-p/kvtrie/recover"
)

// ErrDestroyed is returned by every operation after Destroy.
var ErrDestroyed = errors.New("x_aarray: associative array destroyed")

// Config records the creation parameters. The trie backend does not use
// them; they exist for parity with the hash-table backend.
type Config struct {
	Size          int
	Probe         string
	HashPrimary   string
	HashSecondary string
}

// Stats is a snapshot of the facade counters.
type Stats struct {
	Entries    int
	InsertCost int
	SearchCost int
	DeleteCost int
}

// AssociativeArray maps byte keys to caller-owned values.
type AssociativeArray[V any] struct {
	trie    *x_trie.Trie[V]
	cfg     Config
	stats   Stats
	log     zerolog.Logger
	metrics *Metrics
}

// Create returns an empty array.
func Create[V any](size int, probe, hashPrimary, hashSecondary string, opts ...Option) *AssociativeArray[V] {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	a := &AssociativeArray[V]{
		trie: x_trie.New[V](),
		cfg: Config{
			Size:          size,
			Probe:         probe,
			HashPrimary:   hashPrimary,
			HashSecondary: hashSecondary,
		},
		log:     o.log,
		metrics: o.metrics,
	}
	a.log.Debug().
		Int("size", size).
		Str("probe", probe).
		Str("hash_primary", hashPrimary).
		Str("hash_secondary", hashSecondary).
		Msg("associative array created")
	return a
}

// Config returns the creation parameters.
func (a *AssociativeArray[V]) Config() Config { return a.cfg }

// Stats returns the current counters.
func (a *AssociativeArray[V]) Stats() Stats { return a.stats }

// ExportStats returns the counters keyed by name, ready for log fields.
func (a *AssociativeArray[V]) ExportStats() map[string]any {
	return map[string]any{
		"entries":     a.stats.Entries,
		"insert_cost": a.stats.InsertCost,
		"search_cost": a.stats.SearchCost,
		"delete_cost": a.stats.DeleteCost,
	}
}

// Len is the number of keys present.
func (a *AssociativeArray[V]) Len() int { return a.stats.Entries }

// Destroyed reports whether Destroy has been called.
func (a *AssociativeArray[V]) Destroyed() bool { return a.trie == nil }

//---------------------
// Operations
//---------------------

// Insert stores value under key, replacing any previous value.
func (a *AssociativeArray[V]) Insert(key []byte, value V) error {
	if a.trie == nil {
		return ErrDestroyed
	}

	created, cost, err := a.trie.Insert(key, value)
	a.stats.InsertCost += cost
	if err != nil {
		a.metrics.observe(opInsert, resultError, cost, a.stats.Entries)
		return err
	}

	result := resultUpdated
	if created {
		a.stats.Entries++
		result = resultCreated
	}
	a.metrics.observe(opInsert, result, cost, a.stats.Entries)
	a.debug(opInsert, key, result, cost)
	return nil
}

// Lookup returns the value stored under key.
func (a *AssociativeArray[V]) Lookup(key []byte) (value V, ok bool, err error) {
	if a.trie == nil {
		return value, false, ErrDestroyed
	}

	value, ok, cost := a.trie.Lookup(key)
	a.stats.SearchCost += cost
	result := hitOrMiss(ok)
	a.metrics.observe(opLookup, result, cost, a.stats.Entries)
	a.debug(opLookup, key, result, cost)
	return value, ok, nil
}

// Delete removes key and hands its value back. The array keeps no
// reference to it afterwards.
func (a *AssociativeArray[V]) Delete(key []byte) (value V, ok bool, err error) {
	if a.trie == nil {
		return value, false, ErrDestroyed
	}

	value, ok, cost := a.trie.Delete(key)
	a.stats.DeleteCost += cost
	if ok {
		a.stats.Entries--
	}
	result := hitOrMiss(ok)
	a.metrics.observe(opDelete, result, cost, a.stats.Entries)
	a.debug(opDelete, key, result, cost)
	return value, ok, nil
}

// Iterate calls fn for every present key. A visitor error or panic stops
// the walk and is returned with the number of keys visited so far.
func (a *AssociativeArray[V]) Iterate(fn x_trie.Visitor[V]) (int, error) {
	if a.trie == nil {
		return 0, ErrDestroyed
	}

	n := 0
	err := recover.Guard(a.log, "aarray", "iterate", func() error {
		_, err := a.trie.Iterate(func(key []byte, value V) error {
			n++
			return fn(key, value)
		})
		return err
	})
	if errors.Is(err, recover.ErrPanic) {
		a.metrics.panicked(opIterate)
	}
	if err != nil {
		a.log.Debug().Int("visited", n).Err(err).Msg("iterate stopped")
	}
	return n, err
}

// All ranges over (key, value) pairs with freshly allocated keys. It yields
// nothing after Destroy.
func (a *AssociativeArray[V]) All() iter.Seq2[[]byte, V] {
	if a.trie == nil {
		return func(func([]byte, V) bool) {}
	}
	return a.trie.All()
}

// Destroy drops every node. Values are not touched; release them first.
func (a *AssociativeArray[V]) Destroy() {
	if a.trie == nil {
		return
	}
	a.trie.Clear()
	a.trie = nil
	a.log.Debug().Int("entries", a.stats.Entries).Msg("associative array destroyed")
}

//---------------------
// Helpers
//---------------------

func hitOrMiss(ok bool) string {
	if ok {
		return resultHit
	}
	return resultMiss
}

func (a *AssociativeArray[V]) debug(op string, key []byte, result string, cost int) {
	if e := a.log.Debug(); e.Enabled() {
		e.Str("op", op).
			Str("key", x_keyfmt.Printable(key)).
			Str("result", result).
			Int("cost", cost).
			Msg("aarray")
	}
}
