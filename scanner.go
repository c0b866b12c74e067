package sfv

import (
	"encoding/base64"
	"strconv"

	"github.com/sfv-go/sfv/rfc8941"
)

// scanner is a forward-only byte cursor over a field value's wire
// representation. Every parse* function advances it past what it
// consumes and leaves it positioned at the first byte it could not
// account for on failure.
type scanner struct {
	data string
	pos  int
}

func newScanner(data string) *scanner {
	return &scanner{data: data}
}

func (s *scanner) eof() bool { return s.pos >= len(s.data) }

func (s *scanner) peek() (byte, bool) {
	if s.eof() {
		return 0, false
	}
	return s.data[s.pos], true
}

func (s *scanner) advance() {
	s.pos++
}

func (s *scanner) fail(reason string) error {
	return &SyntaxError{Offset: s.pos, Reason: reason}
}

// skipSP advances past zero or more space characters (0x20 only, per
// RFC 8941's SP rather than general whitespace).
func (s *scanner) skipSP() {
	for !s.eof() && s.data[s.pos] == ' ' {
		s.pos++
	}
}

// skipOWS advances past optional whitespace, which RFC 8941 defines as
// *( SP / HTAB ).
func (s *scanner) skipOWS() {
	for !s.eof() && (s.data[s.pos] == ' ' || s.data[s.pos] == '\t') {
		s.pos++
	}
}

// parseKey parses a key per Section 3.1.2.
func (s *scanner) parseKey() (string, error) {
	start := s.pos
	c, ok := s.peek()
	if !ok || !rfc8941.IsKeyStart(c) {
		return "", s.fail("expected key")
	}
	s.advance()
	for {
		c, ok := s.peek()
		if !ok || !rfc8941.IsKeyChar(c) {
			break
		}
		s.advance()
	}
	return s.data[start:s.pos], nil
}

// parseBareItem parses a bare-item per Section 3.3, dispatching on the
// first byte. If opts.EnableDate is false, a leading "@" is a syntax
// error rather than a Date.
func (s *scanner) parseBareItem(opts ParseOptions) (BareValue, error) {
	c, ok := s.peek()
	if !ok {
		return BareValue{}, s.fail("expected bare item")
	}
	switch {
	case c == '-' || rfc8941.IsDigit(c):
		return s.parseNumber()
	case c == '"':
		return s.parseString()
	case c == ':':
		return s.parseByteSequence()
	case c == '?':
		return s.parseBoolean()
	case c == '@':
		if !opts.EnableDate {
			return BareValue{}, s.fail("date extension not enabled")
		}
		return s.parseDate()
	case rfc8941.IsTokenStart(c):
		return s.parseToken()
	default:
		return BareValue{}, s.fail("unrecognized bare item")
	}
}

// parseNumber parses sf-integer or sf-decimal per Sections 3.3.1-3.3.2.
func (s *scanner) parseNumber() (BareValue, error) {
	start := s.pos
	if c, ok := s.peek(); ok && c == '-' {
		s.advance()
	}
	digitsStart := s.pos
	for {
		c, ok := s.peek()
		if !ok || !rfc8941.IsDigit(c) {
			break
		}
		s.advance()
		if s.pos-digitsStart > rfc8941.MaxIntegerDigits {
			return BareValue{}, s.fail("integer component too long")
		}
	}
	if s.pos == digitsStart {
		return BareValue{}, s.fail("expected digit")
	}
	intDigits := s.pos - digitsStart

	if c, ok := s.peek(); ok && c == '.' {
		if intDigits > rfc8941.MaxDecimalIntegerDigits {
			return BareValue{}, s.fail("decimal integer component too long")
		}
		s.advance()
		fracStart := s.pos
		for {
			c, ok := s.peek()
			if !ok || !rfc8941.IsDigit(c) {
				break
			}
			s.advance()
			if s.pos-fracStart > rfc8941.MaxDecimalFractionalDigits {
				return BareValue{}, s.fail("decimal fractional component too long")
			}
		}
		if s.pos == fracStart {
			return BareValue{}, s.fail("expected digit after decimal point")
		}
		text := s.data[start:s.pos]
		milli, err := decimalTextToMilli(text)
		if err != nil {
			return BareValue{}, s.fail(err.Error())
		}
		return DecimalMilli(milli)
	}

	if intDigits > rfc8941.MaxIntegerDigits {
		return BareValue{}, s.fail("integer too long")
	}
	n, err := strconv.ParseInt(s.data[start:s.pos], 10, 64)
	if err != nil {
		return BareValue{}, s.fail("malformed integer")
	}
	return Integer(n)
}

// decimalTextToMilli converts a decimal literal's exact text, which has
// at most three fractional digits by construction, into its milli-scaled
// integer form without going through a float64 approximation.
func decimalTextToMilli(text string) (int64, error) {
	neg := false
	if len(text) > 0 && text[0] == '-' {
		neg = true
		text = text[1:]
	}
	dot := -1
	for i := 0; i < len(text); i++ {
		if text[i] == '.' {
			dot = i
			break
		}
	}
	intPart := text[:dot]
	fracPart := text[dot+1:]
	for len(fracPart) < 3 {
		fracPart += "0"
	}
	n, err := strconv.ParseInt(intPart+fracPart, 10, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		n = -n
	}
	return n, nil
}

// parseString parses an sf-string per Section 3.3.3.
func (s *scanner) parseString() (BareValue, error) {
	s.advance() // opening '"'
	var out []byte
	for {
		c, ok := s.peek()
		if !ok {
			return BareValue{}, s.fail("unterminated string")
		}
		if c == '"' {
			s.advance()
			return NewString(string(out))
		}
		if c == '\\' {
			s.advance()
			esc, ok := s.peek()
			if !ok || (esc != '"' && esc != '\\') {
				return BareValue{}, s.fail("invalid escape in string")
			}
			out = append(out, esc)
			s.advance()
			continue
		}
		if !rfc8941.IsStringChar(c) {
			return BareValue{}, s.fail("invalid character in string")
		}
		out = append(out, c)
		s.advance()
	}
}

// parseToken parses an sf-token per Section 3.3.4.
func (s *scanner) parseToken() (BareValue, error) {
	start := s.pos
	s.advance()
	for {
		c, ok := s.peek()
		if !ok || !rfc8941.IsTokenChar(c) {
			break
		}
		s.advance()
	}
	return NewToken(s.data[start:s.pos])
}

// parseByteSequence parses an sf-binary per Section 3.3.5.
func (s *scanner) parseByteSequence() (BareValue, error) {
	s.advance() // opening ':'
	start := s.pos
	for {
		c, ok := s.peek()
		if !ok {
			return BareValue{}, s.fail("unterminated byte sequence")
		}
		if c == ':' {
			break
		}
		if !rfc8941.IsBase64Char(c) {
			return BareValue{}, s.fail("invalid character in byte sequence")
		}
		s.advance()
	}
	text := s.data[start:s.pos]
	s.advance() // closing ':'
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return BareValue{}, s.fail("malformed base64 in byte sequence")
	}
	return NewByteSequence(raw), nil
}

// parseBoolean parses an sf-boolean per Section 3.3.6.
func (s *scanner) parseBoolean() (BareValue, error) {
	s.advance() // '?'
	c, ok := s.peek()
	if !ok || (c != '0' && c != '1') {
		return BareValue{}, s.fail("invalid boolean")
	}
	s.advance()
	return Boolean(c == '1'), nil
}

// parseDate parses an sf-date per RFC 9651 Section 3.3.7.
func (s *scanner) parseDate() (BareValue, error) {
	s.advance() // '@'
	v, err := s.parseNumber()
	if err != nil {
		return BareValue{}, err
	}
	n, ok := v.IntegerValue()
	if !ok {
		return BareValue{}, s.fail("date value must be an integer")
	}
	return Date(n)
}

// parseParameters parses the "parameters" production of Section 3.1.2.
func (s *scanner) parseParameters(opts ParseOptions) (Parameters, error) {
	params := Parameters{}
	for {
		c, ok := s.peek()
		if !ok || c != ';' {
			return params, nil
		}
		s.advance()
		s.skipSP()
		key, err := s.parseKey()
		if err != nil {
			return Parameters{}, err
		}
		value := Boolean(true)
		if c, ok := s.peek(); ok && c == '=' {
			s.advance()
			value, err = s.parseBareItem(opts)
			if err != nil {
				return Parameters{}, err
			}
		}
		params, err = params.Add(key, NewItem(value, Parameters{}))
		if err != nil {
			return Parameters{}, err
		}
	}
}
