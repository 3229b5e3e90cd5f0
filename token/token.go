package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TNull TokenType = iota
	TBool
	TInt
	TI8
	TI16
	TI32
	TI64
	TUint
	TU8
	TU16
	TU32
	TU64
	TF32
	TF64
	TChar
	TString
	TOption

	TTupleStart
	TStructStart
	TEnumStart
	TSeqStart
	TMapStart

	TEnd
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNull:        "Null",
		TBool:        "Bool",
		TInt:         "Int",
		TI8:          "I8",
		TI16:         "I16",
		TI32:         "I32",
		TI64:         "I64",
		TUint:        "Uint",
		TU8:          "U8",
		TU16:         "U16",
		TU32:         "U32",
		TU64:         "U64",
		TF32:         "F32",
		TF64:         "F64",
		TChar:        "Char",
		TString:      "Str",
		TOption:      "Option",
		TTupleStart:  "TupleStart",
		TStructStart: "StructStart",
		TEnumStart:   "EnumStart",
		TSeqStart:    "SeqStart",
		TMapStart:    "MapStart",
		TEnd:         "End",
	}[t]
}

func (t TokenType) MarshalText() ([]byte, error) {
	s := t.String()
	if s == "" {
		return nil, fmt.Errorf("unknown token type %d", int(t))
	}
	return []byte(s), nil
}

func (t *TokenType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]TokenType{
		"Null":        TNull,
		"Bool":        TBool,
		"Int":         TInt,
		"I8":          TI8,
		"I16":         TI16,
		"I32":         TI32,
		"I64":         TI64,
		"Uint":        TUint,
		"U8":          TU8,
		"U16":         TU16,
		"U32":         TU32,
		"U64":         TU64,
		"F32":         TF32,
		"F64":         TF64,
		"Char":        TChar,
		"Str":         TString,
		"Option":      TOption,
		"TupleStart":  TTupleStart,
		"StructStart": TStructStart,
		"EnumStart":   TEnumStart,
		"SeqStart":    TSeqStart,
		"MapStart":    TMapStart,
		"End":         TEnd,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown token type %q", k)
}

// IsStart returns true for compound framing tokens that open a frame.
func (t TokenType) IsStart() bool {
	switch t {
	case TTupleStart, TStructStart, TEnumStart, TSeqStart, TMapStart:
		return true
	default:
		return false
	}
}

// IsScalar returns true for tokens carrying a scalar value, including
// the option presence marker.
func (t TokenType) IsScalar() bool {
	return !t.IsStart() && t != TEnd
}

// Token represents a single serialization event. Only the payload
// fields relevant to Type are set.
//
// Token is a plain comparable value; it is passed by value through
// producers and compared with == in consumers and tests.
type Token struct {
	Type TokenType

	// Scalar payloads
	Bool  bool    // TBool, TOption (presence)
	Int   int64   // TInt, TI8..TI64
	Uint  uint64  // TUint, TU8..TU64
	Float float64 // TF32, TF64
	Char  rune    // TChar
	Str   string  // TString

	// Compound framing payloads
	Name    string // TStructStart (struct name), TEnumStart (type name)
	Variant string // TEnumStart
	Len     int    // declared child count for Start tokens
}

func Null() Token                 { return Token{Type: TNull} }
func Bool(v bool) Token           { return Token{Type: TBool, Bool: v} }
func Int(v int) Token             { return Token{Type: TInt, Int: int64(v)} }
func I8(v int8) Token             { return Token{Type: TI8, Int: int64(v)} }
func I16(v int16) Token           { return Token{Type: TI16, Int: int64(v)} }
func I32(v int32) Token           { return Token{Type: TI32, Int: int64(v)} }
func I64(v int64) Token           { return Token{Type: TI64, Int: v} }
func Uint(v uint) Token           { return Token{Type: TUint, Uint: uint64(v)} }
func U8(v uint8) Token            { return Token{Type: TU8, Uint: uint64(v)} }
func U16(v uint16) Token          { return Token{Type: TU16, Uint: uint64(v)} }
func U32(v uint32) Token          { return Token{Type: TU32, Uint: uint64(v)} }
func U64(v uint64) Token          { return Token{Type: TU64, Uint: v} }
func F32(v float32) Token         { return Token{Type: TF32, Float: float64(v)} }
func F64(v float64) Token         { return Token{Type: TF64, Float: v} }
func Char(v rune) Token           { return Token{Type: TChar, Char: v} }
func Str(v string) Token          { return Token{Type: TString, Str: v} }
func Option(present bool) Token   { return Token{Type: TOption, Bool: present} }
func TupleStart(n int) Token      { return Token{Type: TTupleStart, Len: n} }
func SeqStart(n int) Token        { return Token{Type: TSeqStart, Len: n} }
func MapStart(n int) Token        { return Token{Type: TMapStart, Len: n} }
func End() Token                  { return Token{Type: TEnd} }

func StructStart(name string, n int) Token {
	return Token{Type: TStructStart, Name: name, Len: n}
}

func EnumStart(name, variant string, n int) Token {
	return Token{Type: TEnumStart, Name: name, Variant: variant, Len: n}
}

func (t Token) String() string {
	switch t.Type {
	case TNull, TEnd:
		return t.Type.String()
	case TBool:
		return fmt.Sprintf("Bool(%t)", t.Bool)
	case TInt, TI8, TI16, TI32, TI64:
		return fmt.Sprintf("%s(%d)", t.Type, t.Int)
	case TUint, TU8, TU16, TU32, TU64:
		return fmt.Sprintf("%s(%d)", t.Type, t.Uint)
	case TF32, TF64:
		return fmt.Sprintf("%s(%s)", t.Type, strconv.FormatFloat(t.Float, 'g', -1, 64))
	case TChar:
		return fmt.Sprintf("Char(%q)", t.Char)
	case TString:
		return fmt.Sprintf("Str(%q)", t.Str)
	case TOption:
		return fmt.Sprintf("Option(%t)", t.Bool)
	case TStructStart:
		return fmt.Sprintf("StructStart(%q, %d)", t.Name, t.Len)
	case TEnumStart:
		return fmt.Sprintf("EnumStart(%q, %q, %d)", t.Name, t.Variant, t.Len)
	case TTupleStart, TSeqStart, TMapStart:
		return fmt.Sprintf("%s(%d)", t.Type, t.Len)
	default:
		return fmt.Sprintf("<err: unknown token type %d>", int(t.Type))
	}
}
