package sfv

import "strings"

// DictEntry is a single key-value pair of a Dictionary.
type DictEntry struct {
	Key   string
	Value Member
}

// Dictionary is the top-level Structured Field shape for an ordered map
// of unique keys to Members (RFC 8941 Section 3.2). The zero Dictionary
// is valid and empty.
type Dictionary struct {
	entries []DictEntry
}

// NewDictionary builds a Dictionary from entries, in order. It fails
// with InvalidKey if any key violates the key grammar. A repeated key
// replaces the earlier entry's value in place, as Add does.
func NewDictionary(entries ...DictEntry) (Dictionary, error) {
	out := Dictionary{}
	for _, e := range entries {
		next, err := out.Add(e.Key, e.Value)
		if err != nil {
			return Dictionary{}, err
		}
		out = next
	}
	return out, nil
}

// Len reports the number of entries in d.
func (d Dictionary) Len() int { return len(d.entries) }

// IsEmpty reports whether d has no entries.
func (d Dictionary) IsEmpty() bool { return len(d.entries) == 0 }

// Has reports whether d has an entry with the given key.
func (d Dictionary) Has(key string) bool {
	_, ok := d.index(key)
	return ok
}

// Get returns the value of the entry with the given key and true, or nil
// and false if no such entry exists.
func (d Dictionary) Get(key string) (Member, bool) {
	i, ok := d.index(key)
	if !ok {
		return nil, false
	}
	return d.entries[i].Value, true
}

// Entry returns the entry at the given position, in insertion order. It
// fails with IndexOutOfRange if index is out of bounds.
func (d Dictionary) Entry(index int) (DictEntry, error) {
	if index < 0 || index >= len(d.entries) {
		return DictEntry{}, &IndexOutOfRange{Index: index, Len: len(d.entries)}
	}
	return d.entries[index], nil
}

// Keys returns the keys of d, in insertion order.
func (d Dictionary) Keys() []string {
	keys := make([]string, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns the entries of d, in insertion order.
func (d Dictionary) Entries() []DictEntry {
	out := make([]DictEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d Dictionary) index(key string) (int, bool) {
	for i, e := range d.entries {
		if e.Key == key {
			return i, true
		}
	}
	return -1, false
}

// Add adds an entry at the end of d, or replaces the value of an
// existing entry with the same key in place, preserving its original
// position. It fails with InvalidKey if key violates the key grammar.
func (d Dictionary) Add(key string, value Member) (Dictionary, error) {
	if err := validateKey(key); err != nil {
		return Dictionary{}, err
	}
	if i, ok := d.index(key); ok {
		next := d.clone()
		next.entries[i].Value = value
		return next, nil
	}
	next := d.clone()
	next.entries = append(next.entries, DictEntry{Key: key, Value: value})
	return next, nil
}

// Append adds an entry at the end of d. If key already exists, it is
// removed from its old position and reinserted at the end with the new
// value. It fails with InvalidKey if key violates the key grammar.
func (d Dictionary) Append(key string, value Member) (Dictionary, error) {
	if err := validateKey(key); err != nil {
		return Dictionary{}, err
	}
	without := d.without(key)
	next := Dictionary{entries: make([]DictEntry, len(without)+1)}
	copy(next.entries, without)
	next.entries[len(without)] = DictEntry{Key: key, Value: value}
	return next, nil
}

// Prepend adds an entry at the start of d. If key already exists, it is
// removed from its old position and reinserted at the start with the
// new value.
func (d Dictionary) Prepend(key string, value Member) (Dictionary, error) {
	if err := validateKey(key); err != nil {
		return Dictionary{}, err
	}
	without := d.without(key)
	next := Dictionary{entries: make([]DictEntry, 0, len(without)+1)}
	next.entries = append(next.entries, DictEntry{Key: key, Value: value})
	next.entries = append(next.entries, without...)
	return next, nil
}

// Remove returns a copy of d with the entry named key removed, or d
// unchanged if no such entry exists.
func (d Dictionary) Remove(key string) Dictionary {
	if !d.Has(key) {
		return d
	}
	return Dictionary{entries: d.without(key)}
}

func (d Dictionary) without(key string) []DictEntry {
	out := make([]DictEntry, 0, len(d.entries))
	for _, e := range d.entries {
		if e.Key != key {
			out = append(out, e)
		}
	}
	return out
}

func (d Dictionary) clone() Dictionary {
	next := Dictionary{entries: make([]DictEntry, len(d.entries))}
	copy(next.entries, d.entries)
	return next
}

// Equal reports whether d and other have the same keys, in the same
// order, mapping to Equal members.
func (d Dictionary) Equal(other Dictionary) bool {
	if len(d.entries) != len(other.entries) {
		return false
	}
	for i, e := range d.entries {
		o := other.entries[i]
		if e.Key != o.Key || !memberEqual(e.Value, o.Value) {
			return false
		}
	}
	return true
}

// Canonical returns the canonical RFC 8941 textual form of d: its
// entries joined by ", " (comma space), each as "key=value", except
// that a Boolean true Item value shortens to the bare key followed by
// its parameters (if any), omitting "=value". An empty Dictionary
// canonicalizes to the empty string.
func (d Dictionary) Canonical() (string, error) {
	var b strings.Builder
	for i, e := range d.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Key)
		if it, ok := e.Value.(Item); ok {
			if boolVal, isBool := it.value.BooleanValue(); isBool && boolVal {
				params, err := it.params.Canonical()
				if err != nil {
					return "", err
				}
				b.WriteString(params)
				continue
			}
		}
		b.WriteByte('=')
		s, err := e.Value.Canonical()
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
