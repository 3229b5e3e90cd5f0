package serial

import (
	"github.com/signadot/serial-stream/go-serial/token"
)

// Elems flattens per-element sequences into one logical concatenation:
// element i's sequence is pulled to exhaustion before element i+1's is
// created. Element sequences are built one at a time, on demand.
type Elems[T any, I Iter] struct {
	elems  []T
	ser    func(T) I
	cur    I
	active bool
}

// Flatten returns the concatenation of ser(elems[0]), ser(elems[1]), …
// in element order.
func Flatten[T any, I Iter](elems []T, ser func(T) I) *Elems[T, I] {
	return &Elems[T, I]{elems: elems, ser: ser}
}

func (e *Elems[T, I]) Next() (token.Token, bool) {
	for {
		if e.active {
			if t, ok := e.cur.Next(); ok {
				return t, true
			}
			e.active = false
		}
		if len(e.elems) == 0 {
			return token.Token{}, false
		}
		e.cur = e.ser(e.elems[0])
		e.elems = e.elems[1:]
		e.active = true
	}
}

// Slice serializes an ordered collection: SeqStart(len), each
// element's full sequence in order, End. The element converter is
// typically a Serialize method expression, e.g.
//
//	serial.Slice(xs, serial.Int.Serialize)
func Slice[T any, I Iter](elems []T, ser func(T) I) *Compound[*Elems[T, I]] {
	return NewCompound(token.SeqStart(len(elems)), Flatten(elems, ser))
}
