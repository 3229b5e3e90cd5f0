package serial

import (
	"strings"
	"testing"

	"github.com/signadot/serial-stream/go-serial/token"
)

func processAll(t *testing.T, st *State, toks []token.Token) {
	t.Helper()
	for i, tok := range toks {
		if err := st.Process(tok); err != nil {
			t.Fatalf("token %d (%s): %v", i, tok, err)
		}
	}
}

func TestStateDepth(t *testing.T) {
	st := NewState()
	if st.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", st.Depth())
	}

	processAll(t, st, []token.Token{token.StructStart("S", 1), token.Str("xs")})
	if st.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", st.Depth())
	}

	processAll(t, st, []token.Token{token.SeqStart(1)})
	if st.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", st.Depth())
	}

	processAll(t, st, []token.Token{token.Int(1), token.End()})
	if st.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", st.Depth())
	}

	processAll(t, st, []token.Token{token.End()})
	if st.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", st.Depth())
	}
	if !st.Done() {
		t.Errorf("expected Done after balanced stream")
	}
}

func TestStateUnbalancedEnd(t *testing.T) {
	st := NewState()
	err := st.Process(token.End())
	if err == nil {
		t.Fatalf("expected error for unbalanced End")
	}
}

func TestStateCountMismatch(t *testing.T) {
	st := NewState()
	processAll(t, st, []token.Token{
		token.SeqStart(3),
		token.Int(1),
		token.Int(2),
	})
	err := st.Process(token.End())
	if err == nil {
		t.Fatalf("expected count mismatch error")
	}
	if !strings.Contains(err.Error(), "declared 3") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStateStructFieldName(t *testing.T) {
	st := NewState()
	processAll(t, st, []token.Token{token.StructStart("S", 1)})
	err := st.Process(token.Int(5))
	if err == nil {
		t.Fatalf("expected field name error")
	}

	// field names must come one per value
	st = NewState()
	processAll(t, st, []token.Token{
		token.StructStart("S", 2),
		token.Str("a"),
		token.Str("value of a"), // a string field value, allowed
		token.Str("b"),
		token.Int(2),
		token.End(),
	})
	if !st.Done() {
		t.Errorf("expected Done")
	}
}

func TestStateStructDanglingField(t *testing.T) {
	st := NewState()
	processAll(t, st, []token.Token{
		token.StructStart("S", 1),
		token.Str("a"),
	})
	err := st.Process(token.End())
	if err == nil {
		t.Fatalf("expected dangling field error")
	}
	if !strings.Contains(err.Error(), `"a"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStateMapPairs(t *testing.T) {
	st := NewState()
	processAll(t, st, []token.Token{
		token.MapStart(2),
		token.Str("a"),
		token.Int(1),
		token.Str("b"),
		token.Int(2),
		token.End(),
	})
	if !st.Done() {
		t.Errorf("expected Done")
	}

	// key without value
	st = NewState()
	processAll(t, st, []token.Token{
		token.MapStart(1),
		token.Str("a"),
	})
	if err := st.Process(token.End()); err == nil {
		t.Fatalf("expected key-without-value error")
	}
}

func TestStateOption(t *testing.T) {
	// present option counts as one logical child
	st := NewState()
	processAll(t, st, []token.Token{
		token.SeqStart(2),
		token.Option(true),
		token.Int(1),
		token.Option(false),
		token.End(),
	})
	if !st.Done() {
		t.Errorf("expected Done")
	}

	// pending option at End
	st = NewState()
	processAll(t, st, []token.Token{
		token.SeqStart(1),
		token.Option(true),
	})
	if err := st.Process(token.End()); err == nil {
		t.Fatalf("expected pending option error")
	}

	// nested options collapse into one child
	st = NewState()
	processAll(t, st, []token.Token{
		token.SeqStart(1),
		token.Option(true),
		token.Option(true),
		token.Int(5),
		token.End(),
	})
	if !st.Done() {
		t.Errorf("expected Done")
	}
}

func TestStateCurrentPath(t *testing.T) {
	st := NewState()
	if st.CurrentPath() != "" {
		t.Errorf("expected empty path, got %q", st.CurrentPath())
	}

	processAll(t, st, []token.Token{
		token.StructStart("Outer", 1),
		token.Str("inner"),
		token.SeqStart(2),
	})
	if st.CurrentPath() != "inner[0]" {
		t.Errorf("expected path 'inner[0]', got %q", st.CurrentPath())
	}

	processAll(t, st, []token.Token{
		token.StructStart("Inner", 1),
		token.Str("c"),
	})
	if st.CurrentPath() != "inner[0].c" {
		t.Errorf("expected path 'inner[0].c', got %q", st.CurrentPath())
	}

	processAll(t, st, []token.Token{token.Null(), token.End()})
	if st.CurrentPath() != "inner[1]" {
		t.Errorf("expected path 'inner[1]', got %q", st.CurrentPath())
	}
}

func TestStateCurrentPathMap(t *testing.T) {
	st := NewState()
	processAll(t, st, []token.Token{token.MapStart(2)})
	if st.CurrentPath() != "[0]" {
		t.Errorf("expected path '[0]' in key position, got %q", st.CurrentPath())
	}

	// string keys name the value position
	processAll(t, st, []token.Token{token.Str("a")})
	if st.CurrentPath() != "a" {
		t.Errorf("expected path 'a', got %q", st.CurrentPath())
	}
	processAll(t, st, []token.Token{token.SeqStart(1)})
	if st.CurrentPath() != "a[0]" {
		t.Errorf("expected path 'a[0]', got %q", st.CurrentPath())
	}
	processAll(t, st, []token.Token{token.Int(1), token.End()})
	if st.CurrentPath() != "[1]" {
		t.Errorf("expected path '[1]' at second entry, got %q", st.CurrentPath())
	}
	processAll(t, st, []token.Token{token.Str("b"), token.Bool(true), token.End()})
	if !st.Done() {
		t.Errorf("expected Done")
	}

	// non-string keys keep positional indices
	st = NewState()
	processAll(t, st, []token.Token{token.MapStart(1), token.Int(3)})
	if st.CurrentPath() != "[0]" {
		t.Errorf("expected path '[0]' for non-string key, got %q", st.CurrentPath())
	}
}

func TestStateEnumCounts(t *testing.T) {
	st := NewState()
	processAll(t, st, []token.Token{
		token.EnumStart("Animal", "Frog", 2),
		token.Str("Henry"),
		token.Int(349),
		token.End(),
	})
	if !st.Done() {
		t.Errorf("expected Done")
	}

	st = NewState()
	processAll(t, st, []token.Token{
		token.EnumStart("Animal", "Dog", 0),
		token.Str("unexpected"),
	})
	if err := st.Process(token.End()); err == nil {
		t.Fatalf("expected count mismatch error")
	}
}

func TestStateProducedStreams(t *testing.T) {
	// every producer in this package must satisfy the tracker
	its := []Iter{
		Slice([]Int{1, 2, 3}, Int.Serialize),
		SortedMap(map[String]Int{"a": 1, "b": 2}, String.Serialize, Int.Serialize),
		Struct("S",
			Field{Name: "x", Value: Optional(nil)},
			Field{Name: "y", Value: Seq(Null{}.Serialize())},
		),
		animal{frog: true, name: "Henry", age: 349}.Serialize(),
		Tuple(Int(1).Serialize(), Optional(String("s").Serialize())),
	}
	for i, it := range its {
		st := NewState()
		for _, tok := range Drain(it) {
			if err := st.Process(tok); err != nil {
				t.Fatalf("case %d: %v", i, err)
			}
		}
		if !st.Done() {
			t.Errorf("case %d: stream ended at depth %d", i, st.Depth())
		}
	}
}
