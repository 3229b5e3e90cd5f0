// Package dump renders token sequences in a human-readable,
// one-token-per-line form, indented by nesting depth.
//
// # Usage
//
//	err := dump.Fprint(os.Stdout, gotok.Tokens(v))
//
//	s := dump.String(it)
//
//	fmt.Println(dump.Diff(dump.String(a), dump.String(b)))
//
// Output is a debug surface over the token vocabulary, not a data
// format: there is no parser for it.
package dump
