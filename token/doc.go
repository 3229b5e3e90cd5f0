// Package token defines the vocabulary of serialization events.
//
// # Overview
//
// A Token is one atomic event in the flat, ordered event log that
// describes a structured value: either a scalar (null, bool, integer,
// float, char, string, option-presence marker) or a compound framing
// marker (TupleStart, StructStart, EnumStart, SeqStart, MapStart, End).
//
// The token set is closed. Consumers (format encoders, tree builders,
// test harnesses) must recognize exactly this set and reconstruct
// nesting depth themselves by pairing Start-class tokens with End
// tokens; the flat sequence carries no depth information beyond the
// per-Start declared counts.
//
// # Invariants
//
// Producers are expected to uphold the following; the token type itself
// does not re-validate them (see the serial package's State for an
// opt-in checker):
//
//   - Every Start-class token is eventually matched, after all of its
//     nested tokens, by exactly one End token. Nesting is
//     stack-structured: last opened, first closed.
//   - The count declared in a Start token equals the number of child
//     elements (or key/value pairs, for MapStart) emitted before the
//     matching End.
//   - String payloads are views into the originating value. Go string
//     immutability makes these views safe for the sequence's lifetime.
//
// # Related Packages
//
//   - github.com/signadot/serial-stream/go-serial/serial - pull-based producers
//   - github.com/signadot/serial-stream/go-serial/dump - human-readable token dumps
package token
