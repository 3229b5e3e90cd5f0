package serial

import (
	"github.com/signadot/serial-stream/go-serial/token"
)

// Leaf adapters. Go builtins cannot carry methods, so each leaf type
// has a named wrapper whose Serialize yields the single corresponding
// token. String payloads reference the original string storage; Go
// string immutability keeps the view valid.

type Null struct{}

func (Null) Serialize() *Single { return One(token.Null()) }

type Bool bool

func (v Bool) Serialize() *Single { return One(token.Bool(bool(v))) }

type Int int

func (v Int) Serialize() *Single { return One(token.Int(int(v))) }

type Int8 int8

func (v Int8) Serialize() *Single { return One(token.I8(int8(v))) }

type Int16 int16

func (v Int16) Serialize() *Single { return One(token.I16(int16(v))) }

type Int32 int32

func (v Int32) Serialize() *Single { return One(token.I32(int32(v))) }

type Int64 int64

func (v Int64) Serialize() *Single { return One(token.I64(int64(v))) }

type Uint uint

func (v Uint) Serialize() *Single { return One(token.Uint(uint(v))) }

type Uint8 uint8

func (v Uint8) Serialize() *Single { return One(token.U8(uint8(v))) }

type Uint16 uint16

func (v Uint16) Serialize() *Single { return One(token.U16(uint16(v))) }

type Uint32 uint32

func (v Uint32) Serialize() *Single { return One(token.U32(uint32(v))) }

type Uint64 uint64

func (v Uint64) Serialize() *Single { return One(token.U64(uint64(v))) }

type Float32 float32

func (v Float32) Serialize() *Single { return One(token.F32(float32(v))) }

type Float64 float64

func (v Float64) Serialize() *Single { return One(token.F64(float64(v))) }

type Char rune

func (v Char) Serialize() *Single { return One(token.Char(rune(v))) }

type String string

func (v String) Serialize() *Single { return One(token.Str(string(v))) }
