package serial

import (
	"cmp"
	"maps"
	"slices"

	"github.com/signadot/serial-stream/go-serial/token"
)

// Entries flattens map entries: for each entry the key's full sequence
// is emitted, then the value's full sequence, with no interleaving
// across entries. The key slice is snapshotted when the iterator is
// built; values are looked up and their sequences built lazily, one
// entry at a time.
type Entries[K comparable, V any, KI, VI Iter] struct {
	m      map[K]V
	keys   []K
	serKey func(K) KI
	serVal func(V) VI

	phase   int // 0: next entry, 1: draining key, 2: draining value
	keyIter KI
	valIter VI
}

func (e *Entries[K, V, KI, VI]) Next() (token.Token, bool) {
	for {
		switch e.phase {
		case 0:
			if len(e.keys) == 0 {
				return token.Token{}, false
			}
			k := e.keys[0]
			e.keys = e.keys[1:]
			e.keyIter = e.serKey(k)
			e.valIter = e.serVal(e.m[k])
			e.phase = 1
		case 1:
			if t, ok := e.keyIter.Next(); ok {
				return t, true
			}
			e.phase = 2
		default:
			if t, ok := e.valIter.Next(); ok {
				return t, true
			}
			e.phase = 0
		}
	}
}

// SortedMap serializes m as MapStart(len), key/value sequences in
// ascending key order, End. This is the deterministic, ordered-map
// rendition; use it whenever downstream consumers compare streams.
func SortedMap[K cmp.Ordered, V any, KI, VI Iter](m map[K]V, serKey func(K) KI, serVal func(V) VI) *Compound[*Entries[K, V, KI, VI]] {
	return NewCompound(token.MapStart(len(m)), &Entries[K, V, KI, VI]{
		m:      m,
		keys:   slices.Sorted(maps.Keys(m)),
		serKey: serKey,
		serVal: serVal,
	})
}

// UnsortedMap serializes m in Go map iteration order, which is
// non-deterministic between runs. Callers must not depend on entry
// order; the declared count and key-before-value pairing still hold.
func UnsortedMap[K comparable, V any, KI, VI Iter](m map[K]V, serKey func(K) KI, serVal func(V) VI) *Compound[*Entries[K, V, KI, VI]] {
	return NewCompound(token.MapStart(len(m)), &Entries[K, V, KI, VI]{
		m:      m,
		keys:   slices.Collect(maps.Keys(m)),
		serKey: serKey,
		serVal: serVal,
	})
}
