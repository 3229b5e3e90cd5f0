package token

import (
	"testing"
)

func TestTypeStringRoundTrip(t *testing.T) {
	for tt := TNull; tt <= TEnd; tt++ {
		d, err := tt.MarshalText()
		if err != nil {
			t.Fatalf("%v: %v", tt, err)
		}
		var back TokenType
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if back != tt {
			t.Errorf("%s: round-tripped to %v", d, back)
		}
	}
}

func TestTypeUnknown(t *testing.T) {
	if _, err := (TEnd + 1).MarshalText(); err == nil {
		t.Errorf("expected error for out-of-range type")
	}
	var tt TokenType
	if err := tt.UnmarshalText([]byte("Frob")); err == nil {
		t.Errorf("expected error for unknown name")
	}
}

func TestStartScalarPartition(t *testing.T) {
	starts := map[TokenType]bool{
		TTupleStart:  true,
		TStructStart: true,
		TEnumStart:   true,
		TSeqStart:    true,
		TMapStart:    true,
	}
	for tt := TNull; tt <= TEnd; tt++ {
		if tt.IsStart() != starts[tt] {
			t.Errorf("%v: IsStart() = %t", tt, tt.IsStart())
		}
		wantScalar := !starts[tt] && tt != TEnd
		if tt.IsScalar() != wantScalar {
			t.Errorf("%v: IsScalar() = %t, want %t", tt, tt.IsScalar(), wantScalar)
		}
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Null(), "Null"},
		{End(), "End"},
		{Bool(true), "Bool(true)"},
		{Int(-5), "Int(-5)"},
		{I8(7), "I8(7)"},
		{U64(12), "U64(12)"},
		{F64(1.5), "F64(1.5)"},
		{Char('a'), `Char('a')`},
		{Str("ab\nc"), `Str("ab\nc")`},
		{Option(false), "Option(false)"},
		{SeqStart(3), "SeqStart(3)"},
		{TupleStart(2), "TupleStart(2)"},
		{MapStart(0), "MapStart(0)"},
		{StructStart("Outer", 1), `StructStart("Outer", 1)`},
		{EnumStart("Animal", "Frog", 2), `EnumStart("Animal", "Frog", 2)`},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("got %s, want %s", got, c.want)
		}
	}
}

func TestTokensComparable(t *testing.T) {
	if Int(5) != Int(5) {
		t.Errorf("equal tokens compare unequal")
	}
	if Int(5) == I64(5) {
		t.Errorf("width-distinct tokens compare equal")
	}
	if Option(true) == Option(false) {
		t.Errorf("presence-distinct options compare equal")
	}
}
