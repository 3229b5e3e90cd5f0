// Package gotok produces token sequences from arbitrary Go values
// using reflection.
//
// # Usage
//
//	type User struct {
//	    Name  string `tok:"field=name"`
//	    Age   int
//	    Email *string // nil pointer -> Option(false)
//	}
//	it := gotok.Tokens(user)
//	for t, ok := it.Next(); ok; t, ok = it.Next() {
//	    ...
//	}
//
// # Mapping
//
//   - booleans, integers, unsigned integers, floats and strings map to
//     the scalar token of their exact width
//   - pointers map to option framing: Option(false) for nil,
//     Option(true) followed by the pointee's sequence otherwise
//   - slices and arrays map to SeqStart framing, one element at a time
//   - maps map to MapStart framing; string, integer and float keys are
//     sorted for determinism, other key kinds follow Go map iteration
//     order (non-deterministic between runs)
//   - structs map to StructStart framing with a Str(name) token before
//     each field value, honoring `tok` struct tags
//   - nil interfaces map to Null
//
// Token production never fails. Kinds with no token mapping (chan,
// func, complex, unsafe pointer) are emitted as Null so that declared
// counts stay correct; Check reports them ahead of time for callers
// which want the stronger contract.
//
// # Struct Tags
//
// Tags use the form `tok:"field=name optional"`:
//
//   - field=NAME renames the emitted field name
//   - omit drops the field from the stream (and from declared counts)
//   - optional adds option framing: the zero value is emitted as
//     Option(false), anything else as Option(true) plus the value.
//     Pointer fields already carry option framing and never get a
//     second layer from the tag
//
// # Related Packages
//
//   - github.com/signadot/serial-stream/go-serial/serial - hand-built producers
//   - github.com/signadot/serial-stream/go-serial/dump - human-readable dumps
package gotok
