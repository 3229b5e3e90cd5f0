package serial

import (
	"errors"
	"fmt"

	"github.com/signadot/serial-stream/go-serial/token"
)

// State provides minimal stack/state/path management over a token
// sequence. The producing side never validates its own output; State
// is the consumer-side checker for the obligations producers carry:
// Start/End pairing, declared-vs-actual child counts, field-name and
// key/value alternation, and option continuations.
//
// Feed tokens in order with Process. Any error leaves the State
// unusable for further processing.
type State struct {
	stack     []frame
	processed int
}

type frame struct {
	start token.Token
	n     int    // completed logical children (pairs, for structs and maps)
	opts  int    // pending option continuations within the current value
	inKey bool   // struct: field name seen; map: key value completed
	key   string // struct field name or string map key, for path reporting
}

// NewState creates a State tracking an empty stream.
func NewState() *State {
	return &State{}
}

func (s *State) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *State) current() *frame {
	return &s.stack[len(s.stack)-1]
}

// Process consumes one token and updates structure tracking.
func (s *State) Process(t token.Token) error {
	s.processed++
	switch {
	case t.Type.IsStart():
		if err := s.checkChildStart(t); err != nil {
			return err
		}
		s.stack = append(s.stack, frame{start: t})

	case t.Type == token.TEnd:
		if len(s.stack) == 0 {
			return errors.New("unbalanced End token")
		}
		cur := s.current()
		if cur.opts > 0 {
			return fmt.Errorf("%s closed with option marker awaiting its value", cur.start)
		}
		if cur.inKey {
			switch cur.start.Type {
			case token.TStructStart:
				return fmt.Errorf("%s closed with field %q awaiting its value", cur.start, cur.key)
			default:
				return fmt.Errorf("%s closed with key awaiting its value", cur.start)
			}
		}
		if cur.n != cur.start.Len {
			return fmt.Errorf("%s declared %d children, got %d", cur.start, cur.start.Len, cur.n)
		}
		s.pop()
		if len(s.stack) > 0 {
			s.completeValue()
		}

	case t.Type == token.TString:
		if len(s.stack) == 0 {
			return nil
		}
		cur := s.current()
		if cur.start.Type == token.TStructStart && !cur.inKey && cur.opts == 0 {
			// field name position
			cur.inKey = true
			cur.key = t.Str
			return nil
		}
		if cur.start.Type == token.TMapStart && !cur.inKey {
			// a string key, remembered for path reporting
			cur.key = t.Str
		}
		s.completeValue()

	case t.Type == token.TOption:
		if err := s.checkChildStart(t); err != nil {
			return err
		}
		if t.Bool {
			if len(s.stack) > 0 {
				s.current().opts++
			}
			return nil
		}
		if len(s.stack) > 0 {
			s.completeValue()
		}

	default: // scalar
		if err := s.checkChildStart(t); err != nil {
			return err
		}
		if len(s.stack) > 0 {
			s.completeValue()
		}
	}
	return nil
}

// checkChildStart rejects non-string tokens in a struct frame's
// field-name position.
func (s *State) checkChildStart(t token.Token) error {
	if len(s.stack) == 0 {
		return nil
	}
	cur := s.current()
	if cur.start.Type == token.TStructStart && !cur.inKey && cur.opts == 0 {
		return fmt.Errorf("%s field name must be a Str token, got %s", cur.start, t)
	}
	return nil
}

// completeValue registers one finished logical value in the current
// frame. A completed value also completes any pending option chain
// around it.
func (s *State) completeValue() {
	cur := s.current()
	cur.opts = 0
	switch cur.start.Type {
	case token.TStructStart:
		cur.inKey = false
		cur.key = ""
		cur.n++
	case token.TMapStart:
		if !cur.inKey {
			cur.inKey = true // key sequence done, value sequence next
			return
		}
		cur.inKey = false
		cur.key = ""
		cur.n++
	default:
		cur.n++
	}
}

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// Done returns true once at least one token has been processed and
// all opened frames are closed.
func (s *State) Done() bool {
	return s.processed > 0 && len(s.stack) == 0
}

// CurrentPath returns a dotted/indexed path to the position currently
// being produced, e.g. "inner[0].c". Struct fields and string map keys
// contribute dotted name segments; sequence, tuple and non-string map
// positions contribute "[i]" indices. Enum frames contribute depth but
// no path segment.
func (s *State) CurrentPath() string {
	res := ""
	for i := range s.stack {
		f := &s.stack[i]
		switch f.start.Type {
		case token.TStructStart:
			if f.key == "" {
				continue
			}
			if res != "" {
				res += "."
			}
			res += f.key
		case token.TMapStart:
			if f.inKey && f.key != "" {
				if res != "" {
					res += "."
				}
				res += f.key
				continue
			}
			res += fmt.Sprintf("[%d]", f.n)
		case token.TSeqStart, token.TTupleStart:
			res += fmt.Sprintf("[%d]", f.n)
		}
	}
	return res
}
