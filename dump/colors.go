package dump

import (
	"github.com/fatih/color"

	"github.com/signadot/serial-stream/go-serial/token"
)

// Colors maps token types to sprint functions.
type Colors struct {
	Default func(string, ...any) string
	Map     map[token.TokenType]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: fmtDefault,
		Map:     map[token.TokenType]func(string, ...any) string{},
	}
	for _, t := range []token.TokenType{
		token.TTupleStart, token.TStructStart, token.TEnumStart,
		token.TSeqStart, token.TMapStart, token.TEnd,
	} {
		colors.Map[t] = color.RGB(196, 96, 16).SprintfFunc()
	}
	for _, t := range []token.TokenType{
		token.TInt, token.TI8, token.TI16, token.TI32, token.TI64,
		token.TUint, token.TU8, token.TU16, token.TU32, token.TU64,
		token.TF32, token.TF64,
	} {
		colors.Map[t] = color.RGB(128, 216, 236).SprintfFunc()
	}
	colors.Map[token.TString] = color.GreenString
	colors.Map[token.TChar] = color.GreenString
	colors.Map[token.TBool] = color.CyanString
	colors.Map[token.TNull] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[token.TOption] = color.RGB(74, 92, 138).SprintfFunc()
	return colors
}

func fmtDefault(f string, args ...any) string {
	if len(args) == 0 {
		return f
	}
	return color.WhiteString(f, args...)
}

// Sprint renders t colored by its token type.
func (c *Colors) Sprint(t token.Token) string {
	fn := c.Map[t.Type]
	if fn == nil {
		fn = c.Default
	}
	return fn("%s", t.String())
}
