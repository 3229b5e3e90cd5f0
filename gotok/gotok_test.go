package gotok

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/serial-stream/go-serial/serial"
	"github.com/signadot/serial-stream/go-serial/token"
)

func testTokens(t *testing.T, v any, want []token.Token) {
	t.Helper()
	got := serial.Drain(Tokens(v))
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("token mismatch (-want +got):\n%s", d)
	}
}

func TestScalars(t *testing.T) {
	testTokens(t, nil, []token.Token{token.Null()})
	testTokens(t, true, []token.Token{token.Bool(true)})
	testTokens(t, 5, []token.Token{token.Int(5)})
	testTokens(t, int8(-2), []token.Token{token.I8(-2)})
	testTokens(t, int16(-2), []token.Token{token.I16(-2)})
	testTokens(t, int32(-2), []token.Token{token.I32(-2)})
	testTokens(t, int64(-2), []token.Token{token.I64(-2)})
	testTokens(t, uint(7), []token.Token{token.Uint(7)})
	testTokens(t, uint8(7), []token.Token{token.U8(7)})
	testTokens(t, uint16(7), []token.Token{token.U16(7)})
	testTokens(t, uint32(7), []token.Token{token.U32(7)})
	testTokens(t, uint64(7), []token.Token{token.U64(7)})
	testTokens(t, float32(1.5), []token.Token{token.F32(1.5)})
	testTokens(t, 1.5, []token.Token{token.F64(1.5)})
	testTokens(t, "abc", []token.Token{token.Str("abc")})
}

func TestPointers(t *testing.T) {
	var np *int
	testTokens(t, np, []token.Token{token.Option(false)})

	n := 5
	testTokens(t, &n, []token.Token{token.Option(true), token.Int(5)})

	testTokens(t, &np, []token.Token{
		token.Option(true),
		token.Option(false),
	})
}

func TestSlices(t *testing.T) {
	testTokens(t, []int{}, []token.Token{token.SeqStart(0), token.End()})
	testTokens(t, []int{1, 2, 3}, []token.Token{
		token.SeqStart(3),
		token.Int(1),
		token.Int(2),
		token.Int(3),
		token.End(),
	})
	testTokens(t, [2]string{"a", "b"}, []token.Token{
		token.SeqStart(2),
		token.Str("a"),
		token.Str("b"),
		token.End(),
	})
}

func TestMaps(t *testing.T) {
	testTokens(t, map[string]int{}, []token.Token{token.MapStart(0), token.End()})
	// string keys are sorted
	testTokens(t, map[string]int{"b": 2, "a": 1}, []token.Token{
		token.MapStart(2),
		token.Str("a"),
		token.Int(1),
		token.Str("b"),
		token.Int(2),
		token.End(),
	})
	// int keys are sorted
	testTokens(t, map[int]string{3: "c", 1: "a"}, []token.Token{
		token.MapStart(2),
		token.Int(1),
		token.Str("a"),
		token.Int(3),
		token.Str("c"),
		token.End(),
	})
}

type inner struct {
	A struct{} `tok:"field=a"`
	B uint     `tok:"field=b"`
	C map[string]*string `tok:"field=c"`
}

type outer struct {
	Inner []inner `tok:"field=inner"`
}

func TestStructs(t *testing.T) {
	testTokens(t, outer{}, []token.Token{
		token.StructStart("outer", 1),
		token.Str("inner"),
		token.SeqStart(0),
		token.End(),
		token.End(),
	})

	c := "c"
	v := outer{
		Inner: []inner{
			{B: 5, C: map[string]*string{"abc": &c}},
		},
	}
	testTokens(t, v, []token.Token{
		token.StructStart("outer", 1),
		token.Str("inner"),
		token.SeqStart(1),
		token.StructStart("inner", 3),
		token.Str("a"),
		token.StructStart("", 0),
		token.End(),
		token.Str("b"),
		token.Uint(5),
		token.Str("c"),
		token.MapStart(1),
		token.Str("abc"),
		token.Option(true),
		token.Str("c"),
		token.End(),
		token.End(),
		token.End(),
		token.End(),
	})
}

type tagged struct {
	Name     string `tok:"field=name"`
	Age      int    `tok:"field=age optional"`
	Internal string `tok:"omit"`
	hidden   bool
}

func TestStructTags(t *testing.T) {
	testTokens(t, tagged{Name: "x", Age: 3, Internal: "drop"}, []token.Token{
		token.StructStart("tagged", 2),
		token.Str("name"),
		token.Str("x"),
		token.Str("age"),
		token.Option(true),
		token.Int(3),
		token.End(),
	})

	// optional zero value -> Option(false)
	testTokens(t, tagged{Name: "x"}, []token.Token{
		token.StructStart("tagged", 2),
		token.Str("name"),
		token.Str("x"),
		token.Str("age"),
		token.Option(false),
		token.End(),
	})
}

func TestStructOptionalPointer(t *testing.T) {
	type s struct {
		P *int `tok:"field=p optional"`
	}

	// a pointer field's own option framing is not doubled by the tag
	n := 5
	testTokens(t, s{P: &n}, []token.Token{
		token.StructStart("s", 1),
		token.Str("p"),
		token.Option(true),
		token.Int(5),
		token.End(),
	})
	testTokens(t, s{}, []token.Token{
		token.StructStart("s", 1),
		token.Str("p"),
		token.Option(false),
		token.End(),
	})
}

func TestInterfaceValues(t *testing.T) {
	testTokens(t, []any{1, "a", nil, true}, []token.Token{
		token.SeqStart(4),
		token.Int(1),
		token.Str("a"),
		token.Null(),
		token.Bool(true),
		token.End(),
	})
}

func TestStreamsBalance(t *testing.T) {
	vals := []any{
		outer{Inner: []inner{{}, {B: 1}}},
		map[string]any{"a": []any{1, nil}, "b": map[string]int{"x": 1}},
		tagged{Name: "n"},
	}
	for i, v := range vals {
		st := serial.NewState()
		for _, tok := range serial.Drain(Tokens(v)) {
			if err := st.Process(tok); err != nil {
				t.Fatalf("case %d: %v", i, err)
			}
		}
		if !st.Done() {
			t.Errorf("case %d: unbalanced stream", i)
		}
	}
}

func TestSinglePass(t *testing.T) {
	it := Tokens([]int{1, 2})
	serial.Drain(it)
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); ok {
			t.Errorf("iterator yielded a token after exhaustion")
		}
	}
}

func TestCheck(t *testing.T) {
	if err := Check(outer{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Check(map[string][]int{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	type bad struct {
		C chan int
	}
	err := Check(bad{})
	if err == nil {
		t.Fatalf("expected unsupported type error")
	}
	ute, ok := err.(*UnsupportedTypeError)
	if !ok {
		t.Fatalf("expected *UnsupportedTypeError, got %T", err)
	}
	if ute.FieldPath != "C" {
		t.Errorf("expected path C, got %q", ute.FieldPath)
	}

	type badTag struct {
		X int `tok:"field="`
	}
	err = Check(badTag{})
	if err == nil {
		t.Fatalf("expected tag error")
	}
	if _, ok := err.(*TagError); !ok {
		t.Fatalf("expected *TagError, got %T", err)
	}
}

type recursive struct {
	Name string
	Next *recursive
}

func TestCheckRecursiveType(t *testing.T) {
	if err := Check(recursive{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

type treeMap map[string]treeMap

type nestList []nestList

type selfPtr *selfPtr

func TestCheckRecursiveContainers(t *testing.T) {
	// self-reference through a container, with no struct in the cycle
	if err := Check(treeMap{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Check(nestList{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	var p selfPtr
	if err := Check(p); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// unsupported kinds are still found behind recursive containers
	type badEntry struct {
		Tree treeMap
		C    chan int
	}
	if err := Check(badEntry{}); err == nil {
		t.Errorf("expected unsupported type error")
	}
}

func TestUnsupportedEmitsNull(t *testing.T) {
	type withChan struct {
		C chan int
	}
	testTokens(t, withChan{}, []token.Token{
		token.StructStart("withChan", 1),
		token.Str("C"),
		token.Null(),
		token.End(),
	})
}
