// Package filter provides compiled boolean predicates over tokens,
// used to select tokens from a stream (e.g. for dumping).
//
// Predicates are expr-lang expressions evaluated per token against an
// environment of:
//
//	kind    string  token type name ("Str", "SeqStart", ...)
//	value   any     scalar payload (nil for framing tokens)
//	len     int     declared count for Start tokens
//	name    string  struct/enum type name
//	variant string  enum variant name
//	depth   int     nesting depth at which the token appears
//	path    string  structural path ("inner[0].c")
//
// Example expressions:
//
//	kind == "Str"
//	depth > 2 && kind != "End"
//	name == "Animal" || variant == "Frog"
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/serial-stream/go-serial/debug"
	"github.com/signadot/serial-stream/go-serial/serial"
	"github.com/signadot/serial-stream/go-serial/token"
)

// Filter is a compiled token predicate.
type Filter struct {
	src string
	prg *vm.Program
}

// Compile compiles a boolean expression into a Filter.
func Compile(input string) (*Filter, error) {
	prg, err := expr.Compile(input, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", input, err)
	}
	return &Filter{src: input, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match evaluates the predicate for t. st supplies depth and path; it
// may be nil, in which case depth is 0 and path is "".
func (f *Filter) Match(t token.Token, st *serial.State) (bool, error) {
	depth := 0
	path := ""
	if st != nil {
		depth = st.Depth()
		path = st.CurrentPath()
	}
	env := map[string]any{
		"kind":    t.Type.String(),
		"value":   payload(t),
		"len":     t.Len,
		"name":    t.Name,
		"variant": t.Variant,
		"depth":   depth,
		"path":    path,
	}
	res, err := vm.Run(f.prg, env)
	if err != nil {
		return false, fmt.Errorf("run filter %q: %w", f.src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q: not a boolean result: %v", f.src, res)
	}
	if debug.Filter() {
		debug.Logf("filter: %s -> %t for %s", f.src, b, t)
	}
	return b, nil
}

func payload(t token.Token) any {
	switch t.Type {
	case token.TBool:
		return t.Bool
	case token.TOption:
		return t.Bool
	case token.TInt, token.TI8, token.TI16, token.TI32, token.TI64:
		return t.Int
	case token.TUint, token.TU8, token.TU16, token.TU32, token.TU64:
		return t.Uint
	case token.TF32, token.TF64:
		return t.Float
	case token.TChar:
		return string(t.Char)
	case token.TString:
		return t.Str
	default:
		return nil
	}
}
