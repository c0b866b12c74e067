package sfv

import "strings"

// Member is a value that may appear as a top-level entry of a List, or
// as the value half of a Dictionary entry: either an Item or an
// InnerList. It is a closed set; no other type implements it. Compare
// two Members with memberEqual rather than a method, since Item and
// InnerList each have their own concretely-typed Equal.
type Member interface {
	Canonical() (string, error)
	member()
}

// memberEqual implements the cross-type comparison List.Equal and
// Dictionary.Equal need without requiring Item and InnerList to know
// about each other.
func memberEqual(a, b Member) bool {
	switch av := a.(type) {
	case Item:
		bv, ok := b.(Item)
		return ok && av.Equal(bv)
	case InnerList:
		bv, ok := b.(InnerList)
		return ok && av.Equal(bv)
	default:
		return false
	}
}

// List is the top-level Structured Field shape for a sequence of
// Members (RFC 8941 Section 3.1). The zero List is valid and empty.
type List struct {
	members []Member
}

// NewList builds a List from members, in order, copying the slice so
// that later mutation of the caller's slice cannot affect the result.
func NewList(members ...Member) List {
	cp := make([]Member, len(members))
	copy(cp, members)
	return List{members: cp}
}

// Len reports the number of members in l.
func (l List) Len() int { return len(l.members) }

// IsEmpty reports whether l has no members.
func (l List) IsEmpty() bool { return len(l.members) == 0 }

// Get returns the member at the given position. A negative index counts
// from the end. It fails with IndexOutOfRange if the resolved index is
// out of bounds.
func (l List) Get(index int) (Member, error) {
	i, err := resolveIndex(index, len(l.members))
	if err != nil {
		return nil, err
	}
	return l.members[i], nil
}

// Members returns the members of l, in order.
func (l List) Members() []Member {
	out := make([]Member, len(l.members))
	copy(out, l.members)
	return out
}

// Push returns a copy of l with member appended at the end.
func (l List) Push(member Member) List {
	next := make([]Member, len(l.members)+1)
	copy(next, l.members)
	next[len(l.members)] = member
	return List{members: next}
}

// Unshift returns a copy of l with member inserted at the start.
func (l List) Unshift(member Member) List {
	next := make([]Member, len(l.members)+1)
	next[0] = member
	copy(next[1:], l.members)
	return List{members: next}
}

// Insert returns a copy of l with member inserted at the given position.
// index must be in [0, l.Len()]. It fails with IndexOutOfRange
// otherwise.
func (l List) Insert(index int, member Member) (List, error) {
	if index < 0 || index > len(l.members) {
		return List{}, &IndexOutOfRange{Index: index, Len: len(l.members)}
	}
	next := make([]Member, len(l.members)+1)
	copy(next, l.members[:index])
	next[index] = member
	copy(next[index+1:], l.members[index:])
	return List{members: next}, nil
}

// Replace returns a copy of l with the member at the given position
// replaced. A negative index counts from the end.
func (l List) Replace(index int, member Member) (List, error) {
	i, err := resolveIndex(index, len(l.members))
	if err != nil {
		return List{}, err
	}
	next := make([]Member, len(l.members))
	copy(next, l.members)
	next[i] = member
	return List{members: next}, nil
}

// Remove returns a copy of l with the member at the given position
// removed. A negative index counts from the end.
func (l List) Remove(index int) (List, error) {
	i, err := resolveIndex(index, len(l.members))
	if err != nil {
		return List{}, err
	}
	next := make([]Member, 0, len(l.members)-1)
	next = append(next, l.members[:i]...)
	next = append(next, l.members[i+1:]...)
	return List{members: next}, nil
}

// Equal reports whether l and other hold Equal members, in the same
// order.
func (l List) Equal(other List) bool {
	if len(l.members) != len(other.members) {
		return false
	}
	for i, m := range l.members {
		if !memberEqual(m, other.members[i]) {
			return false
		}
	}
	return true
}

// Canonical returns the canonical RFC 8941 textual form of l: its
// members joined by ", " (comma space). An empty List canonicalizes to
// the empty string.
func (l List) Canonical() (string, error) {
	var b strings.Builder
	for i, m := range l.members {
		if i > 0 {
			b.WriteString(", ")
		}
		s, err := m.Canonical()
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
