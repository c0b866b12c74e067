package sfv

// Marshaler is any value that can serialize itself to its canonical
// RFC 8941 textual form: Item, InnerList, List, Dictionary, Parameters,
// or BareValue.
type Marshaler interface {
	Canonical() (string, error)
}

// Marshal returns the canonical RFC 8941 textual form of v.
func Marshal(v Marshaler) (string, error) {
	return v.Canonical()
}
