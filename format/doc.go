// Package format names the input document formats the toks command
// can read.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//
// # Related Packages
//
//   - github.com/signadot/serial-stream/go-serial/gotok - value to token streams
package format
