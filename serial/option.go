package serial

import (
	"github.com/signadot/serial-stream/go-serial/token"
)

// Opt is an optional value. Its sequence is the presence marker,
// followed by the inner value's full sequence when present.
type Opt[T Serializable[I], I Iter] struct {
	V  T
	OK bool
}

func Some[T Serializable[I], I Iter](v T) Opt[T, I] {
	return Opt[T, I]{V: v, OK: true}
}

func None[T Serializable[I], I Iter]() Opt[T, I] {
	return Opt[T, I]{}
}

func (o Opt[T, I]) Serialize() *OptionIter[I] {
	it := &OptionIter[I]{present: o.OK}
	if o.OK {
		it.inner = o.V.Serialize()
	}
	return it
}

// OptionIter emits Option(present) on the first pull, then delegates
// to the inner sequence when present. When absent it is exhausted
// immediately after the marker; the inner field stays at its zero
// value and is never pulled.
type OptionIter[I Iter] struct {
	started bool
	present bool
	inner   I
}

// NewOptionIter wraps an already-built inner sequence. present=false
// callers may pass the zero value of I.
func NewOptionIter[I Iter](inner I, present bool) *OptionIter[I] {
	return &OptionIter[I]{present: present, inner: inner}
}

func (o *OptionIter[I]) Next() (token.Token, bool) {
	if !o.started {
		o.started = true
		return token.Option(o.present), true
	}
	if !o.present {
		return token.Token{}, false
	}
	return o.inner.Next()
}
