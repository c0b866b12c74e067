package sfv

import "strings"

// InnerList is a parenthesized list of Items, itself carrying a set of
// Parameters, usable anywhere a Member is expected (a List entry, a
// Dictionary value, but never nested inside another InnerList).
type InnerList struct {
	items  []Item
	params Parameters
}

// NewInnerList builds an InnerList from items and params, copying items
// so that later mutation of the caller's slice cannot affect the result.
func NewInnerList(items []Item, params Parameters) InnerList {
	cp := make([]Item, len(items))
	copy(cp, items)
	return InnerList{items: cp, params: params}
}

// Len reports the number of items in il.
func (il InnerList) Len() int { return len(il.items) }

// IsEmpty reports whether il has no items.
func (il InnerList) IsEmpty() bool { return len(il.items) == 0 }

// Get returns the item at the given position. A negative index counts
// from the end, as in il.Get(-1) for the last item. It fails with
// IndexOutOfRange if the resolved index is out of bounds.
func (il InnerList) Get(index int) (Item, error) {
	i, err := resolveIndex(index, len(il.items))
	if err != nil {
		return Item{}, err
	}
	return il.items[i], nil
}

// Items returns the items of il, in order.
func (il InnerList) Items() []Item {
	out := make([]Item, len(il.items))
	copy(out, il.items)
	return out
}

// Parameters returns the parameters of il.
func (il InnerList) Parameters() Parameters { return il.params }

// WithParameters returns a copy of il with its parameters replaced
// wholesale.
func (il InnerList) WithParameters(params Parameters) InnerList {
	if il.params.Equal(params) {
		return il
	}
	return InnerList{items: il.items, params: params}
}

// Parameter returns the value of the named parameter and true, or the
// zero BareValue and false if il carries no such parameter.
func (il InnerList) Parameter(key string) (BareValue, bool) {
	return il.params.Get(key)
}

// AddParameter returns a copy of il with a parameter added at the end
// of its parameter list, or replaced in place if key already exists.
func (il InnerList) AddParameter(key string, value BareValue) (InnerList, error) {
	next, err := il.params.Add(key, NewItem(value, Parameters{}))
	if err != nil {
		return InnerList{}, err
	}
	return il.WithParameters(next), nil
}

// AppendParameter returns a copy of il with a parameter added at the
// end of its parameter list. If key already exists, it is removed from
// its old position and reinserted at the end with the new value.
func (il InnerList) AppendParameter(key string, value BareValue) (InnerList, error) {
	next, err := il.params.Append(key, NewItem(value, Parameters{}))
	if err != nil {
		return InnerList{}, err
	}
	return il.WithParameters(next), nil
}

// PrependParameter returns a copy of il with a parameter added at the
// start of its parameter list.
func (il InnerList) PrependParameter(key string, value BareValue) (InnerList, error) {
	next, err := il.params.Prepend(key, NewItem(value, Parameters{}))
	if err != nil {
		return InnerList{}, err
	}
	return il.WithParameters(next), nil
}

// WithoutParameter returns a copy of il with the named parameter
// removed, or il unchanged if il carries no such parameter.
func (il InnerList) WithoutParameter(key string) InnerList {
	return il.WithParameters(il.params.Remove(key))
}

// WithoutAnyParameter returns a copy of il with all parameters removed.
func (il InnerList) WithoutAnyParameter() InnerList {
	return il.WithParameters(Parameters{})
}

// Push returns a copy of il with item appended at the end.
func (il InnerList) Push(item Item) InnerList {
	next := make([]Item, len(il.items)+1)
	copy(next, il.items)
	next[len(il.items)] = item
	return InnerList{items: next, params: il.params}
}

// Unshift returns a copy of il with item inserted at the start.
func (il InnerList) Unshift(item Item) InnerList {
	next := make([]Item, len(il.items)+1)
	next[0] = item
	copy(next[1:], il.items)
	return InnerList{items: next, params: il.params}
}

// Insert returns a copy of il with item inserted at the given position.
// index must be in [0, il.Len()]; Insert(0, v) behaves as Unshift and
// Insert(il.Len(), v) behaves as Push. It fails with IndexOutOfRange
// otherwise.
func (il InnerList) Insert(index int, item Item) (InnerList, error) {
	if index < 0 || index > len(il.items) {
		return InnerList{}, &IndexOutOfRange{Index: index, Len: len(il.items)}
	}
	next := make([]Item, len(il.items)+1)
	copy(next, il.items[:index])
	next[index] = item
	copy(next[index+1:], il.items[index:])
	return InnerList{items: next, params: il.params}, nil
}

// Replace returns a copy of il with the item at the given position
// replaced. A negative index counts from the end. It fails with
// IndexOutOfRange if the resolved index is out of bounds.
func (il InnerList) Replace(index int, item Item) (InnerList, error) {
	i, err := resolveIndex(index, len(il.items))
	if err != nil {
		return InnerList{}, err
	}
	next := make([]Item, len(il.items))
	copy(next, il.items)
	next[i] = item
	return InnerList{items: next, params: il.params}, nil
}

// Remove returns a copy of il with the item at the given position
// removed. A negative index counts from the end. It fails with
// IndexOutOfRange if the resolved index is out of bounds.
func (il InnerList) Remove(index int) (InnerList, error) {
	i, err := resolveIndex(index, len(il.items))
	if err != nil {
		return InnerList{}, err
	}
	next := make([]Item, 0, len(il.items)-1)
	next = append(next, il.items[:i]...)
	next = append(next, il.items[i+1:]...)
	return InnerList{items: next, params: il.params}, nil
}

// Equal reports whether il and other hold Equal items, in the same
// order, and Equal parameters.
func (il InnerList) Equal(other InnerList) bool {
	if len(il.items) != len(other.items) || !il.params.Equal(other.params) {
		return false
	}
	for i, item := range il.items {
		if !item.Equal(other.items[i]) {
			return false
		}
	}
	return true
}

// Canonical returns the canonical RFC 8941 textual form of il: its items
// space-separated and parenthesized, followed by its parameters'
// canonical form.
func (il InnerList) Canonical() (string, error) {
	var b strings.Builder
	b.WriteByte('(')
	for i, item := range il.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		s, err := item.Canonical()
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteByte(')')
	params, err := il.params.Canonical()
	if err != nil {
		return "", err
	}
	return b.String() + params, nil
}

func (il InnerList) member() {}

// resolveIndex maps a possibly-negative logical index onto a slice of
// the given length, returning IndexOutOfRange if out of bounds.
func resolveIndex(index, length int) (int, error) {
	i := index
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, &IndexOutOfRange{Index: index, Len: length}
	}
	return i, nil
}
