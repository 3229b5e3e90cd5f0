package serial

import (
	"github.com/signadot/serial-stream/go-serial/token"
)

// Boxed composition helpers. These operate on Iter interface values,
// accepting one indirection per nesting level in exchange for not
// having to spell out the generic combinator types. They produce
// exactly the same token sequences as the generic forms.

// Iters concatenates arbitrary iterators in order.
type Iters struct {
	its []Iter
}

func Concat(its ...Iter) *Iters {
	return &Iters{its: its}
}

func (s *Iters) Next() (token.Token, bool) {
	for len(s.its) > 0 {
		if t, ok := s.its[0].Next(); ok {
			return t, true
		}
		s.its = s.its[1:]
	}
	return token.Token{}, false
}

// Seq frames the given per-element sequences as a sequence value:
// SeqStart(len(elems)), each element in order, End.
func Seq(elems ...Iter) Iter {
	return NewCompound(token.SeqStart(len(elems)), Concat(elems...))
}

// Tuple frames the given per-element sequences as a tuple value.
func Tuple(elems ...Iter) Iter {
	return NewCompound(token.TupleStart(len(elems)), Concat(elems...))
}

// Field is a named struct field for Struct.
type Field struct {
	Name  string
	Value Iter
}

// Struct frames fields as a struct value: StructStart(name, len),
// then for each field a Str(name) token followed by the field value's
// sequence, then End.
func Struct(name string, fields ...Field) Iter {
	its := make([]Iter, 0, 2*len(fields))
	for _, f := range fields {
		its = append(its, One(token.Str(f.Name)), f.Value)
	}
	return NewCompound(token.StructStart(name, len(fields)), Concat(its...))
}

// Enum frames a selected variant's field sequences:
// EnumStart(typ, variant, len(fields)), each field in order, End.
func Enum(typ, variant string, fields ...Iter) Iter {
	return NewCompound(token.EnumStart(typ, variant, len(fields)), Concat(fields...))
}

// Entry is a key/value pair for MapOf.
type Entry struct {
	Key, Value Iter
}

// MapOf frames entries as a map value: MapStart(len(entries)), then
// for each entry the key's full sequence followed by the value's full
// sequence, then End. Entry order is the caller's.
func MapOf(entries ...Entry) Iter {
	its := make([]Iter, 0, 2*len(entries))
	for _, e := range entries {
		its = append(its, e.Key, e.Value)
	}
	return NewCompound(token.MapStart(len(entries)), Concat(its...))
}

// Optional wraps inner with a presence marker; inner == nil means
// absent.
func Optional(inner Iter) Iter {
	if inner == nil {
		return NewOptionIter[Iter](nil, false)
	}
	return NewOptionIter(inner, true)
}
