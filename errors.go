package sfv

import "fmt"

// SyntaxError reports a grammar violation encountered while parsing a
// field value. Offset is the byte position of the first character that
// could not be accounted for.
type SyntaxError struct {
	Offset int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("sfv: syntax error at byte %d: %s", e.Offset, e.Reason)
}

// InvalidCharacter reports that a typed constructor was given a value
// whose bytes violate that type's character set.
type InvalidCharacter struct {
	Where string
}

func (e *InvalidCharacter) Error() string {
	return fmt.Sprintf("sfv: invalid character in %s", e.Where)
}

// OutOfRange reports that a numeric value fell outside the range RFC 8941
// permits for its type.
type OutOfRange struct {
	What  string
	Value string
}

func (e *OutOfRange) Error() string {
	return fmt.Sprintf("sfv: %s out of range: %s", e.What, e.Value)
}

// InvalidKey reports that a parameter or dictionary key failed the key
// grammar in RFC 8941 Section 3.1.2.
type InvalidKey struct {
	Key string
}

func (e *InvalidKey) Error() string {
	return fmt.Sprintf("sfv: invalid key %q", e.Key)
}

// InvalidArgument reports a caller misuse, such as trying to insert a
// parameterized Item into a Parameters map.
type InvalidArgument struct {
	Reason string
}

func (e *InvalidArgument) Error() string {
	return fmt.Sprintf("sfv: invalid argument: %s", e.Reason)
}

// IndexOutOfRange reports that a container index lookup fell outside the
// bounds of the container.
type IndexOutOfRange struct {
	Index int
	Len   int
}

func (e *IndexOutOfRange) Error() string {
	return fmt.Sprintf("sfv: index %d out of range for length %d", e.Index, e.Len)
}

// NotFound reports that a map lookup found no entry for the given key.
type NotFound struct {
	Key string
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("sfv: key %q not found", e.Key)
}

// ForbiddenOperation is reserved for adapters that expose an
// assignment-syntax facade over these immutable values (e.g. a
// map/slice-indexing view); the core never constructs or returns one.
type ForbiddenOperation struct {
	Reason string
}

func (e *ForbiddenOperation) Error() string {
	return fmt.Sprintf("sfv: forbidden operation: %s", e.Reason)
}

// UnsupportedShape reports that a caller-supplied shape name (as used by
// cmd/sfv, internal/sfvhttp, and internal/conformance to pick a parse
// entry point) is not one of "item", "list", or "dictionary".
type UnsupportedShape struct {
	Shape string
}

func (e *UnsupportedShape) Error() string {
	return fmt.Sprintf("sfv: unsupported shape %q", e.Shape)
}

// SerializationError reports that a value tree could not be serialized.
// It is reachable only when one of the invariants in RFC 8941 Section 3
// was bypassed through unsafe construction; the public constructors and
// the parser never produce a value that triggers it.
type SerializationError struct {
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("sfv: serialization error: %s", e.Reason)
}
