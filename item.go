package sfv

// Item is a bare value together with an ordered set of Parameters. It is
// both a top-level Structured Field shape and a Member of a List,
// Dictionary, or InnerList.
type Item struct {
	value  BareValue
	params Parameters
}

// NewItem builds an Item from a bare value and a set of parameters.
func NewItem(value BareValue, params Parameters) Item {
	return Item{value: value, params: params}
}

// Value returns the bare value of it.
func (it Item) Value() BareValue { return it.value }

// Parameters returns the parameters of it.
func (it Item) Parameters() Parameters { return it.params }

// WithValue returns a copy of it with its bare value replaced, leaving
// its parameters untouched. If value is Equal to it.Value(), WithValue
// returns it unchanged.
func (it Item) WithValue(value BareValue) Item {
	if it.value.Equal(value) {
		return it
	}
	return Item{value: value, params: it.params}
}

// WithParameters returns a copy of it with its parameters replaced
// wholesale. If params is Equal to it.Parameters(), WithParameters
// returns it unchanged.
func (it Item) WithParameters(params Parameters) Item {
	if it.params.Equal(params) {
		return it
	}
	return Item{value: it.value, params: params}
}

// Parameter returns the value of the named parameter and true, or the
// zero BareValue and false if it carries no such parameter.
func (it Item) Parameter(key string) (BareValue, bool) {
	return it.params.Get(key)
}

// AddParameter returns a copy of it with a parameter added at the end
// of its parameter list, or replaced in place if key already exists. See
// Parameters.Add.
func (it Item) AddParameter(key string, value BareValue) (Item, error) {
	next, err := it.params.Add(key, NewItem(value, Parameters{}))
	if err != nil {
		return Item{}, err
	}
	return it.WithParameters(next), nil
}

// AppendParameter returns a copy of it with a parameter added at the end
// of its parameter list. If key already exists, it is removed from its
// old position and reinserted at the end with the new value. See
// Parameters.Append.
func (it Item) AppendParameter(key string, value BareValue) (Item, error) {
	next, err := it.params.Append(key, NewItem(value, Parameters{}))
	if err != nil {
		return Item{}, err
	}
	return it.WithParameters(next), nil
}

// PrependParameter returns a copy of it with a parameter added at the
// start of its parameter list. See Parameters.Prepend.
func (it Item) PrependParameter(key string, value BareValue) (Item, error) {
	next, err := it.params.Prepend(key, NewItem(value, Parameters{}))
	if err != nil {
		return Item{}, err
	}
	return it.WithParameters(next), nil
}

// WithoutParameter returns a copy of it with the named parameter
// removed, or it unchanged if it carries no such parameter.
func (it Item) WithoutParameter(key string) Item {
	return it.WithParameters(it.params.Remove(key))
}

// WithoutAnyParameter returns a copy of it with all parameters removed.
func (it Item) WithoutAnyParameter() Item {
	return it.WithParameters(Parameters{})
}

// Equal reports whether it and other hold Equal values and Equal
// parameters.
func (it Item) Equal(other Item) bool {
	return it.value.Equal(other.value) && it.params.Equal(other.params)
}

// Canonical returns the canonical RFC 8941 textual form of it: its bare
// value's canonical form followed by its parameters' canonical form.
func (it Item) Canonical() (string, error) {
	val, err := it.value.Canonical()
	if err != nil {
		return "", err
	}
	params, err := it.params.Canonical()
	if err != nil {
		return "", err
	}
	return val + params, nil
}

// member is the unexported marker method that makes Item a Member of a
// List, Dictionary entry, or InnerList.
func (it Item) member() {}
