package sfv

import "strings"

// Parameter is a single key-value pair of a Parameters set. Its value is
// always a bare item: RFC 8941 Section 3.1.2 does not allow a parameter
// value to carry parameters of its own.
type Parameter struct {
	Key   string
	Value BareValue
}

// Parameters is an ordered map of unique keys to bare values, attached to
// an Item or InnerList. The zero Parameters is a valid, empty set.
//
// Parameters is immutable: every method that would mutate a map instead
// returns a new Parameters, leaving the receiver untouched.
type Parameters struct {
	pairs []Parameter
}

// NewParameters builds a Parameters set from pairs, in order. It fails
// with InvalidKey if any key violates the key grammar.
func NewParameters(pairs ...Parameter) (Parameters, error) {
	out := Parameters{}
	for _, p := range pairs {
		next, err := out.appendBare(p.Key, p.Value)
		if err != nil {
			return Parameters{}, err
		}
		out = next
	}
	return out, nil
}

// Len reports the number of parameters in p.
func (p Parameters) Len() int { return len(p.pairs) }

// IsEmpty reports whether p has no parameters.
func (p Parameters) IsEmpty() bool { return len(p.pairs) == 0 }

// Has reports whether p has a parameter with the given key.
func (p Parameters) Has(key string) bool {
	_, ok := p.index(key)
	return ok
}

// Get returns the value of the parameter with the given key and true, or
// the zero BareValue and false if no such parameter exists.
func (p Parameters) Get(key string) (BareValue, bool) {
	i, ok := p.index(key)
	if !ok {
		return BareValue{}, false
	}
	return p.pairs[i].Value, true
}

// Pair returns the key-value pair at the given position, in insertion
// order. It fails with IndexOutOfRange if index is out of bounds.
func (p Parameters) Pair(index int) (Parameter, error) {
	if index < 0 || index >= len(p.pairs) {
		return Parameter{}, &IndexOutOfRange{Index: index, Len: len(p.pairs)}
	}
	return p.pairs[index], nil
}

// Keys returns the keys of p, in insertion order.
func (p Parameters) Keys() []string {
	keys := make([]string, len(p.pairs))
	for i, pair := range p.pairs {
		keys[i] = pair.Key
	}
	return keys
}

// Pairs returns the key-value pairs of p, in insertion order.
func (p Parameters) Pairs() []Parameter {
	out := make([]Parameter, len(p.pairs))
	copy(out, p.pairs)
	return out
}

func (p Parameters) index(key string) (int, bool) {
	for i, pair := range p.pairs {
		if pair.Key == key {
			return i, true
		}
	}
	return -1, false
}

// Add adds a parameter at the end of p, or replaces the value of an
// existing parameter with the same key in place, preserving its original
// position. It fails with InvalidKey if key violates the key grammar,
// and with InvalidArgument if value itself carries parameters (RFC 8941
// Section 3.1.2 forbids parameters of parameters). If the operation
// would be a no-op (the key already maps to an Equal value), Add
// returns p unchanged.
func (p Parameters) Add(key string, value Item) (Parameters, error) {
	if !value.Parameters().IsEmpty() {
		return Parameters{}, &InvalidArgument{Reason: "parameter value must not itself carry parameters"}
	}
	return p.appendBare(key, value.Value())
}

// Append adds a parameter at the end of p. If key already exists, its
// existing binding is removed first, so the key's position moves to the
// tail along with its new value. It fails with InvalidKey if key
// violates the key grammar, and with InvalidArgument if value itself
// carries parameters.
func (p Parameters) Append(key string, value Item) (Parameters, error) {
	if !value.Parameters().IsEmpty() {
		return Parameters{}, &InvalidArgument{Reason: "parameter value must not itself carry parameters"}
	}
	if err := validateKey(key); err != nil {
		return Parameters{}, err
	}
	without := p.without(key)
	next := Parameters{pairs: make([]Parameter, len(without)+1)}
	copy(next.pairs, without)
	next.pairs[len(without)] = Parameter{Key: key, Value: value.Value()}
	return next, nil
}

func (p Parameters) appendBare(key string, value BareValue) (Parameters, error) {
	if err := validateKey(key); err != nil {
		return Parameters{}, err
	}
	if i, ok := p.index(key); ok {
		if p.pairs[i].Value.Equal(value) {
			return p, nil
		}
		next := p.clone()
		next.pairs[i].Value = value
		return next, nil
	}
	next := p.clone()
	next.pairs = append(next.pairs, Parameter{Key: key, Value: value})
	return next, nil
}

// Prepend adds a parameter at the start of p. If key already exists, it
// is removed from its old position and reinserted at the start with the
// new value. It fails with InvalidArgument if value itself carries
// parameters.
func (p Parameters) Prepend(key string, value Item) (Parameters, error) {
	if !value.Parameters().IsEmpty() {
		return Parameters{}, &InvalidArgument{Reason: "parameter value must not itself carry parameters"}
	}
	if err := validateKey(key); err != nil {
		return Parameters{}, err
	}
	without := p.without(key)
	next := Parameters{pairs: make([]Parameter, 0, len(without)+1)}
	next.pairs = append(next.pairs, Parameter{Key: key, Value: value.Value()})
	next.pairs = append(next.pairs, without...)
	return next, nil
}

// Remove returns a copy of p with the parameter named key removed, or p
// unchanged if no such parameter exists.
func (p Parameters) Remove(key string) Parameters {
	if !p.Has(key) {
		return p
	}
	return Parameters{pairs: p.without(key)}
}

func (p Parameters) without(key string) []Parameter {
	out := make([]Parameter, 0, len(p.pairs))
	for _, pair := range p.pairs {
		if pair.Key != key {
			out = append(out, pair)
		}
	}
	return out
}

// Merge combines p with other, with other's values taking precedence for
// keys present in both. Keys already in p keep their original position;
// keys new to other are appended in other's order.
func (p Parameters) Merge(other Parameters) (Parameters, error) {
	out := p
	for _, pair := range other.pairs {
		next, err := out.appendBare(pair.Key, pair.Value)
		if err != nil {
			return Parameters{}, err
		}
		out = next
	}
	return out, nil
}

func (p Parameters) clone() Parameters {
	next := Parameters{pairs: make([]Parameter, len(p.pairs))}
	copy(next.pairs, p.pairs)
	return next
}

// Equal reports whether p and other have the same keys, in the same
// order, mapping to Equal values.
func (p Parameters) Equal(other Parameters) bool {
	if len(p.pairs) != len(other.pairs) {
		return false
	}
	for i, pair := range p.pairs {
		o := other.pairs[i]
		if pair.Key != o.Key || !pair.Value.Equal(o.Value) {
			return false
		}
	}
	return true
}

// Canonical returns the canonical RFC 8941 textual form of p, including
// its leading ";" separators but no surrounding whitespace. An empty
// Parameters canonicalizes to the empty string.
func (p Parameters) Canonical() (string, error) {
	if len(p.pairs) == 0 {
		return "", nil
	}
	var b strings.Builder
	for _, pair := range p.pairs {
		b.WriteByte(';')
		b.WriteString(pair.Key)
		if boolVal, ok := pair.Value.BooleanValue(); ok && boolVal {
			continue
		}
		b.WriteByte('=')
		val, err := pair.Value.Canonical()
		if err != nil {
			return "", err
		}
		b.WriteString(val)
	}
	return b.String(), nil
}
