package sfv

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sfv-go/sfv/rfc8941"
)

// Kind identifies which bare value variant a BareValue holds.
type Kind uint8

const (
	KindInteger Kind = iota
	KindDecimal
	KindString
	KindToken
	KindByteSequence
	KindBoolean
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindToken:
		return "token"
	case KindByteSequence:
		return "byte sequence"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// BareValue is a typed scalar value with no parameters of its own: one of
// Integer, Decimal, String, Token, ByteSequence, Boolean, or the optional
// Date extension (RFC 9651 Section 3.3.7). The zero BareValue is not a
// valid value; always obtain one from a constructor or the parser.
type BareValue struct {
	kind Kind

	// i carries the Integer value, the Decimal value scaled by 1000
	// (its canonical form always has at most three fractional digits),
	// the Date value in seconds, or the Boolean value as 0/1.
	i int64

	// s carries the String or Token content.
	s string

	// b carries the raw ByteSequence bytes.
	b []byte
}

// Kind reports which bare value variant v holds.
func (v BareValue) Kind() Kind { return v.kind }

// Integer constructs an Integer bare value. RFC 8941 Section 3.3.1 bounds
// n to [-999999999999999, 999999999999999]; values outside that range
// fail with OutOfRange.
func Integer(n int64) (BareValue, error) {
	if n < rfc8941.MinInteger || n > rfc8941.MaxInteger {
		return BareValue{}, &OutOfRange{What: "integer", Value: strconv.FormatInt(n, 10)}
	}
	return BareValue{kind: KindInteger, i: n}, nil
}

// IntegerValue returns the Integer value of v and true, or (0, false) if
// v does not hold an Integer.
func (v BareValue) IntegerValue() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.i, true
}

// Decimal constructs a Decimal bare value from a rational approximated by
// a float64, rounding to three fractional digits with round-half-to-even
// per RFC 8941 Section 3.3.2. Fails with OutOfRange if the rounded integer
// part exceeds twelve digits.
//
// Values already known to be exact to three decimal digits -- in
// particular those produced by the parser -- should use DecimalMilli
// instead, to avoid float64's approximation of the input.
func Decimal(value float64) (BareValue, error) {
	return DecimalMilli(int64(math.RoundToEven(value * 1000)))
}

// DecimalMilli constructs a Decimal bare value directly from its value
// scaled by 1000 (i.e. its exact three-fractional-digit representation).
func DecimalMilli(milli int64) (BareValue, error) {
	intPart := milli / 1000
	if intPart < rfc8941.MinDecimalIntegerPart || intPart > rfc8941.MaxDecimalIntegerPart {
		return BareValue{}, &OutOfRange{What: "decimal", Value: strconv.FormatInt(milli, 10)}
	}
	return BareValue{kind: KindDecimal, i: milli}, nil
}

// DecimalValue returns the Decimal value of v and true, or (0, false) if v
// does not hold a Decimal.
func (v BareValue) DecimalValue() (float64, bool) {
	if v.kind != KindDecimal {
		return 0, false
	}
	return float64(v.i) / 1000, true
}

// DecimalMilliValue returns the exact three-fractional-digit
// representation of a Decimal value (its value multiplied by 1000) and
// true, or (0, false) if v does not hold a Decimal.
func (v BareValue) DecimalMilliValue() (int64, bool) {
	if v.kind != KindDecimal {
		return 0, false
	}
	return v.i, true
}

// NewString constructs a String bare value. s is the logical content: it
// may itself contain '"' and '\\' bytes, which the serializer escapes on
// the wire. RFC 8941 Section 3.3.3 restricts content to printable ASCII;
// bytes outside 0x20-0x7E fail with InvalidCharacter.
func NewString(s string) (BareValue, error) {
	for i := 0; i < len(s); i++ {
		if !rfc8941.IsStringChar(s[i]) {
			return BareValue{}, &InvalidCharacter{Where: "string"}
		}
	}
	return BareValue{kind: KindString, s: s}, nil
}

// StringValue returns the String value of v and true, or ("", false) if v
// does not hold a String.
func (v BareValue) StringValue() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// NewToken constructs a Token bare value. RFC 8941 Section 3.3.4 requires
// s to match [A-Za-z*][!#$%&'*+\-.^_`|~0-9A-Za-z:/]*; violations fail
// with InvalidCharacter.
func NewToken(s string) (BareValue, error) {
	if s == "" || !rfc8941.IsTokenStart(s[0]) {
		return BareValue{}, &InvalidCharacter{Where: "token"}
	}
	for i := 1; i < len(s); i++ {
		if !rfc8941.IsTokenChar(s[i]) {
			return BareValue{}, &InvalidCharacter{Where: "token"}
		}
	}
	return BareValue{kind: KindToken, s: s}, nil
}

// TokenValue returns the Token value of v and true, or ("", false) if v
// does not hold a Token.
func (v BareValue) TokenValue() (string, bool) {
	if v.kind != KindToken {
		return "", false
	}
	return v.s, true
}

// NewByteSequence constructs a ByteSequence bare value, copying raw so
// that later mutation of the caller's slice cannot affect v. It is
// infallible: any byte sequence is valid content, the base64 encoding
// happens only at serialization time.
func NewByteSequence(raw []byte) BareValue {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return BareValue{kind: KindByteSequence, b: cp}
}

// ByteSequenceValue returns a defensive copy of the ByteSequence value of
// v and true, or (nil, false) if v does not hold a ByteSequence.
func (v BareValue) ByteSequenceValue() ([]byte, bool) {
	if v.kind != KindByteSequence {
		return nil, false
	}
	cp := make([]byte, len(v.b))
	copy(cp, v.b)
	return cp, true
}

// Boolean constructs a Boolean bare value. It is infallible.
func Boolean(b bool) BareValue {
	var i int64
	if b {
		i = 1
	}
	return BareValue{kind: KindBoolean, i: i}
}

// BooleanValue returns the Boolean value of v and true, or (false, false)
// if v does not hold a Boolean.
func (v BareValue) BooleanValue() (bool, bool) {
	if v.kind != KindBoolean {
		return false, false
	}
	return v.i != 0, true
}

// Date constructs a Date bare value (RFC 9651 Section 3.3.7), an
// extension that is off by default; see ParseOptions.EnableDate. seconds
// is bounded the same way an Integer is.
func Date(seconds int64) (BareValue, error) {
	if seconds < rfc8941.MinInteger || seconds > rfc8941.MaxInteger {
		return BareValue{}, &OutOfRange{What: "date", Value: strconv.FormatInt(seconds, 10)}
	}
	return BareValue{kind: KindDate, i: seconds}, nil
}

// DateValue returns the Date value of v, in seconds since the Unix epoch,
// and true, or (0, false) if v does not hold a Date.
func (v BareValue) DateValue() (int64, bool) {
	if v.kind != KindDate {
		return 0, false
	}
	return v.i, true
}

// Equal reports whether a and b hold the same kind and value. Decimals
// compare by their canonical rational (i.e. their rounded
// three-fractional-digit representation); strings and byte sequences
// compare byte-wise; everything else compares exactly.
func (v BareValue) Equal(other BareValue) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInteger, KindDecimal, KindDate, KindBoolean:
		return v.i == other.i
	case KindString, KindToken:
		return v.s == other.s
	case KindByteSequence:
		if len(v.b) != len(other.b) {
			return false
		}
		for i := range v.b {
			if v.b[i] != other.b[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Canonical returns the canonical RFC 8941 textual form of v. It fails
// only if v was built with an unrecognized Kind, which is unreachable
// through this package's constructors and parser.
func (v BareValue) Canonical() (string, error) {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10), nil
	case KindDecimal:
		return canonicalDecimal(v.i), nil
	case KindString:
		return canonicalString(v.s), nil
	case KindToken:
		return v.s, nil
	case KindByteSequence:
		return ":" + base64.StdEncoding.EncodeToString(v.b) + ":", nil
	case KindBoolean:
		if v.i != 0 {
			return "?1", nil
		}
		return "?0", nil
	case KindDate:
		return "@" + strconv.FormatInt(v.i, 10), nil
	default:
		return "", &SerializationError{Reason: fmt.Sprintf("unrecognized bare value kind %d", v.kind)}
	}
}

func canonicalDecimal(milli int64) string {
	neg := milli < 0
	if neg {
		milli = -milli
	}
	intPart := milli / 1000
	frac := milli % 1000
	fracStr := strings.TrimRight(fmt.Sprintf("%03d", frac), "0")
	if fracStr == "" {
		fracStr = "0"
	}
	sign := ""
	if neg {
		sign = "-"
	}
	return sign + strconv.FormatInt(intPart, 10) + "." + fracStr
}

func canonicalString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}
