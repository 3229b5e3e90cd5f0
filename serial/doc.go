// Package serial turns in-memory values into flat, lazily-produced
// token sequences without building an intermediate tree.
//
// # Overview
//
// The central contract is Iter, a single-pass pull producer: each call
// to Next computes and returns the next token, or reports exhaustion.
// Composite producers are built by wrapping smaller producers:
// Compound frames any inner sequence with a Start/End pair, Option
// prefixes a presence marker, Slice and SortedMap flatten per-element
// subsequences. Arbitrary nesting is traversed one token at a time
// with no recursion into a tree and no materialized result.
//
// Two composition styles are provided:
//
//   - Generic combinators (Chain, OptionIter, Compound, Elems,
//     Variant2/Variant3, ...) are parameterized over their inner
//     iterator types and monomorphized by the compiler. No interface
//     boxing occurs per nesting level; the concrete iterator type of a
//     deeply nested value spells out its whole shape.
//   - Boxed helpers (Concat, Seq, Tuple, Struct, Enum, MapOf,
//     Optional) operate on Iter interface values, trading one
//     indirection per level for far shorter types.
//
// # Contract
//
// A value must stay alive and unmutated for the lifetime of any
// sequence produced from it. Producing tokens never fails; for a
// structurally finite value the sequence is finite and ends with
// nesting depth zero. Sequences are single-pass: call Serialize again
// to re-traverse. Pulling past exhaustion keeps reporting exhaustion.
//
// Producers must emit declared counts that match the children actually
// emitted; the package does not check this on the hot path. State is
// the opt-in consumer-side checker for depth, pairing and counts.
//
// # Concurrency
//
// Everything here is single-threaded and synchronous. A sequence may
// not be shared across goroutines, and the source value may not be
// mutated while a sequence over it is live.
package serial
