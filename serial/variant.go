package serial

import (
	"github.com/signadot/serial-stream/go-serial/token"
)

// Closed-set variant dispatch for sum types.
//
// A Go type with several alternative internal shapes (modelled, say,
// as a struct with a discriminant) must select one of several
// differently-typed inner sequences at traversal time. Variant2 and
// Variant3 are fixed-arity containers that hold whichever inner
// iterator was selected and forward pulls to it, with no interface
// boxing and one compiler instantiation per concrete shape combination. The
// enclosing Compound still supplies EnumStart/End framing; the variant
// container only drives the framed payload.
//
// One container is needed per distinct arity used across a program.
// Programs with wider sums than three shapes can either declare a
// wider container in the same pattern or fall back to the boxed Enum
// helper.

// Variant2 forwards to one of two inner iterator shapes.
type Variant2[A, B Iter] struct {
	which int
	a     A
	b     B
}

func Variant2Of0[A, B Iter](a A) *Variant2[A, B] {
	return &Variant2[A, B]{which: 0, a: a}
}

func Variant2Of1[A, B Iter](b B) *Variant2[A, B] {
	return &Variant2[A, B]{which: 1, b: b}
}

func (v *Variant2[A, B]) Next() (token.Token, bool) {
	switch v.which {
	case 0:
		return v.a.Next()
	default:
		return v.b.Next()
	}
}

// Variant3 forwards to one of three inner iterator shapes.
type Variant3[A, B, C Iter] struct {
	which int
	a     A
	b     B
	c     C
}

func Variant3Of0[A, B, C Iter](a A) *Variant3[A, B, C] {
	return &Variant3[A, B, C]{which: 0, a: a}
}

func Variant3Of1[A, B, C Iter](b B) *Variant3[A, B, C] {
	return &Variant3[A, B, C]{which: 1, b: b}
}

func Variant3Of2[A, B, C Iter](c C) *Variant3[A, B, C] {
	return &Variant3[A, B, C]{which: 2, c: c}
}

func (v *Variant3[A, B, C]) Next() (token.Token, bool) {
	switch v.which {
	case 0:
		return v.a.Next()
	case 1:
		return v.b.Next()
	default:
		return v.c.Next()
	}
}
