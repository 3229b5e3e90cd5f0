package serial

import (
	"github.com/signadot/serial-stream/go-serial/token"
)

// Iter is a pull-based producer of tokens. Next returns the next token
// in the sequence, or ok=false once the sequence is exhausted.
// Exhaustion is permanent: further calls keep returning ok=false.
type Iter interface {
	Next() (tok token.Token, ok bool)
}

// Serializable is the per-type conversion contract: produce a token
// sequence describing the receiver. The receiver must remain alive and
// unmutated until the returned sequence is exhausted or abandoned.
//
// The iterator type parameter keeps composition monomorphic; types
// that prefer dynamic dispatch can use Serializable[Iter] directly.
type Serializable[I Iter] interface {
	Serialize() I
}

// Empty is an iterator with no tokens. Its zero value is ready to use,
// and it satisfies Iter by value, which makes it suitable as the
// payload of data-free enum variants.
type Empty struct{}

func (Empty) Next() (token.Token, bool) {
	return token.Token{}, false
}

// Single yields exactly one token.
type Single struct {
	tok  token.Token
	done bool
}

// One returns an iterator yielding just t.
func One(t token.Token) *Single {
	return &Single{tok: t}
}

func (s *Single) Next() (token.Token, bool) {
	if s.done {
		return token.Token{}, false
	}
	s.done = true
	return s.tok, true
}

// Chain yields all of A's tokens, then all of B's.
type Chain[A, B Iter] struct {
	a   A
	b   B
	inB bool
}

func NewChain[A, B Iter](a A, b B) *Chain[A, B] {
	return &Chain[A, B]{a: a, b: b}
}

func (c *Chain[A, B]) Next() (token.Token, bool) {
	if !c.inB {
		if t, ok := c.a.Next(); ok {
			return t, true
		}
		c.inB = true
	}
	return c.b.Next()
}

// Drain pulls it to exhaustion and returns the yielded tokens.
func Drain(it Iter) []token.Token {
	var res []token.Token
	for {
		t, ok := it.Next()
		if !ok {
			return res
		}
		res = append(res, t)
	}
}
