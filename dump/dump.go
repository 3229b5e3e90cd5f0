package dump

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/signadot/serial-stream/go-serial/serial"
	"github.com/signadot/serial-stream/go-serial/token"
)

type DumpOption func(*dumpState)

type dumpState struct {
	indent int
	paths  bool
	colors *Colors
}

// Indent sets the indent width per nesting level (default 2).
func Indent(n int) DumpOption {
	return func(ds *dumpState) { ds.indent = n }
}

// WithPaths annotates each line with the structural path at which the
// token was produced. Path tracking validates the stream; malformed
// streams make Fprint return the structure error.
func WithPaths() DumpOption {
	return func(ds *dumpState) { ds.paths = true }
}

// WithColors enables colored output.
func WithColors(c *Colors) DumpOption {
	return func(ds *dumpState) { ds.colors = c }
}

// IsTTY reports whether w is a terminal, for callers deciding whether
// to pass WithColors.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Fprint pulls it to exhaustion, writing one token per line to w.
// Indentation follows Start/End nesting. The iterator is consumed.
func Fprint(w io.Writer, it serial.Iter, opts ...DumpOption) error {
	ds := &dumpState{indent: 2}
	for _, opt := range opts {
		opt(ds)
	}
	var state *serial.State
	if ds.paths {
		state = serial.NewState()
	}
	depth := 0
	for {
		t, ok := it.Next()
		if !ok {
			return nil
		}
		var path string
		if state != nil {
			path = state.CurrentPath()
			if err := state.Process(t); err != nil {
				return err
			}
		}
		if t.Type == token.TEnd && depth > 0 {
			depth--
		}
		line := t.String()
		if ds.colors != nil {
			line = ds.colors.Sprint(t)
		}
		pad := strings.Repeat(" ", depth*ds.indent)
		if ds.paths && path != "" {
			line = fmt.Sprintf("%s\t# %s", line, path)
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", pad, line); err != nil {
			return err
		}
		if t.Type.IsStart() {
			depth++
		}
	}
}

// String renders it with Fprint into a string. The iterator is
// consumed.
func String(it serial.Iter, opts ...DumpOption) string {
	sb := &strings.Builder{}
	if err := Fprint(sb, it, opts...); err != nil {
		return fmt.Sprintf("<err: %v>", err)
	}
	return sb.String()
}
