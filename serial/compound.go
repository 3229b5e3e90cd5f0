package serial

import (
	"github.com/signadot/serial-stream/go-serial/token"
)

// Compound frames an inner sequence with a Start token before it and
// the universal End token after it. It is the sole producer of
// Start/End framing: sequences, maps, structs, tuples and enum
// variants are all "some inner sequence, framed by Compound with the
// appropriate Start token".
//
// The state machine is: first pull emits the Start token; subsequent
// pulls pass the inner sequence through; when the inner sequence is
// exhausted, one End token is emitted and the Compound is permanently
// finished.
type Compound[I Iter] struct {
	start    token.Token
	inner    I
	started  bool
	finished bool
}

// NewCompound wraps inner with start framing. start must be a
// Start-class token whose declared count matches the child elements
// inner will emit; this is the caller's obligation and is not checked
// here.
func NewCompound[I Iter](start token.Token, inner I) *Compound[I] {
	return &Compound[I]{start: start, inner: inner}
}

func (c *Compound[I]) Next() (token.Token, bool) {
	if c.finished {
		return token.Token{}, false
	}
	if !c.started {
		c.started = true
		return c.start, true
	}
	if t, ok := c.inner.Next(); ok {
		return t, true
	}
	c.finished = true
	return token.End(), true
}
