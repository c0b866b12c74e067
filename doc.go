// Package sfv implements parsing, in-memory representation, and canonical
// serialization of HTTP Structured Field Values as defined by RFC 8941.
//
// A Structured Field Value is one of three top-level shapes: an Item, a
// List, or a Dictionary. Each is built from a small set of bare value
// types -- Integer, Decimal, String, Token, ByteSequence, Boolean, and the
// optional RFC 9651 Date extension -- each of which may carry an ordered
// set of Parameters.
//
// Every value in this package is immutable once constructed: every mutator
// returns a new value and leaves its receiver untouched. There is no
// shared mutable state, so values may be read concurrently from any number
// of goroutines without synchronization.
//
// Parsing is strict: only canonical RFC 8941 input is accepted. Use
// ParseItem, ParseList, or ParseDictionary to parse a single field value,
// and Marshal or a value's own Canonical method to serialize it back to
// its unique canonical wire form.
package sfv
