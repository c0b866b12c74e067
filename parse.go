package sfv

// ParseOptions controls optional grammar extensions accepted by the
// parser. The zero ParseOptions parses strict RFC 8941.
type ParseOptions struct {
	// EnableDate opts into the RFC 9651 Date extension ("@<integer>").
	// Without it, a leading "@" is a syntax error.
	EnableDate bool
}

// ParseItem parses data as a single Item (RFC 8941 Section 4.2.3),
// using strict RFC 8941 grammar.
func ParseItem(data string) (Item, error) {
	return ParseItemWithOptions(data, ParseOptions{})
}

// ParseItemWithOptions parses data as a single Item, honoring opts.
func ParseItemWithOptions(data string, opts ParseOptions) (Item, error) {
	s := newScanner(data)
	s.skipSP()
	item, err := s.parseItem(opts)
	if err != nil {
		return Item{}, err
	}
	s.skipSP()
	if !s.eof() {
		return Item{}, s.fail("trailing characters after item")
	}
	return item, nil
}

// ParseList parses data as a List (RFC 8941 Section 4.2.1), using
// strict RFC 8941 grammar.
func ParseList(data string) (List, error) {
	return ParseListWithOptions(data, ParseOptions{})
}

// ParseListWithOptions parses data as a List, honoring opts.
func ParseListWithOptions(data string, opts ParseOptions) (List, error) {
	s := newScanner(data)
	s.skipSP()
	if s.eof() {
		return List{}, nil
	}
	var members []Member
	for {
		m, err := s.parseListMember(opts)
		if err != nil {
			return List{}, err
		}
		members = append(members, m)
		s.skipOWS()
		if s.eof() {
			break
		}
		c, _ := s.peek()
		if c != ',' {
			return List{}, s.fail("expected ',' between list members")
		}
		s.advance()
		s.skipOWS()
		if s.eof() {
			return List{}, s.fail("trailing comma in list")
		}
	}
	s.skipSP()
	if !s.eof() {
		return List{}, s.fail("trailing characters after list")
	}
	return List{members: members}, nil
}

// ParseDictionary parses data as a Dictionary (RFC 8941 Section 4.2.2),
// using strict RFC 8941 grammar.
func ParseDictionary(data string) (Dictionary, error) {
	return ParseDictionaryWithOptions(data, ParseOptions{})
}

// ParseDictionaryWithOptions parses data as a Dictionary, honoring
// opts.
func ParseDictionaryWithOptions(data string, opts ParseOptions) (Dictionary, error) {
	s := newScanner(data)
	s.skipSP()
	if s.eof() {
		return Dictionary{}, nil
	}
	dict := Dictionary{}
	for {
		key, err := s.parseKey()
		if err != nil {
			return Dictionary{}, err
		}
		var value Member
		if c, ok := s.peek(); ok && c == '=' {
			s.advance()
			value, err = s.parseListMember(opts)
			if err != nil {
				return Dictionary{}, err
			}
		} else {
			params, err := s.parseParameters(opts)
			if err != nil {
				return Dictionary{}, err
			}
			value = NewItem(Boolean(true), params)
		}
		dict, err = dict.Add(key, value)
		if err != nil {
			return Dictionary{}, err
		}
		s.skipOWS()
		if s.eof() {
			break
		}
		c, _ := s.peek()
		if c != ',' {
			return Dictionary{}, s.fail("expected ',' between dictionary members")
		}
		s.advance()
		s.skipOWS()
		if s.eof() {
			return Dictionary{}, s.fail("trailing comma in dictionary")
		}
	}
	s.skipSP()
	if !s.eof() {
		return Dictionary{}, s.fail("trailing characters after dictionary")
	}
	return dict, nil
}

// ParseParameters parses data as a standalone "parameters" production
// (RFC 8941 Section 3.1.2) rather than as part of a larger Item, List,
// or Dictionary parse, using strict RFC 8941 grammar. data may be empty,
// yielding the zero Parameters.
func ParseParameters(data string) (Parameters, error) {
	return ParseParametersWithOptions(data, ParseOptions{})
}

// ParseParametersWithOptions parses data as a standalone parameters
// production, honoring opts.
func ParseParametersWithOptions(data string, opts ParseOptions) (Parameters, error) {
	s := newScanner(data)
	s.skipSP()
	params, err := s.parseParameters(opts)
	if err != nil {
		return Parameters{}, err
	}
	s.skipSP()
	if !s.eof() {
		return Parameters{}, s.fail("trailing characters after parameters")
	}
	return params, nil
}

// ParseInnerList parses data as a standalone InnerList (RFC 8941
// Section 3.1.1), using strict RFC 8941 grammar.
func ParseInnerList(data string) (InnerList, error) {
	return ParseInnerListWithOptions(data, ParseOptions{})
}

// ParseInnerListWithOptions parses data as a standalone InnerList,
// honoring opts.
func ParseInnerListWithOptions(data string, opts ParseOptions) (InnerList, error) {
	s := newScanner(data)
	s.skipSP()
	c, ok := s.peek()
	if !ok || c != '(' {
		return InnerList{}, s.fail("expected '(' at start of inner list")
	}
	il, err := s.parseInnerList(opts)
	if err != nil {
		return InnerList{}, err
	}
	s.skipSP()
	if !s.eof() {
		return InnerList{}, s.fail("trailing characters after inner list")
	}
	return il, nil
}

// Canonicalize parses data as the shape named by shape -- "item",
// "list", or "dictionary" -- and returns its canonical RFC 8941 textual
// form. It fails with UnsupportedShape for any other shape name. This is
// the shared dispatch used by cmd/sfv, internal/sfvhttp, and
// internal/conformance so the three surfaces agree on shape names.
func Canonicalize(shape, data string, opts ParseOptions) (string, error) {
	switch shape {
	case "item":
		it, err := ParseItemWithOptions(data, opts)
		if err != nil {
			return "", err
		}
		return it.Canonical()
	case "list":
		l, err := ParseListWithOptions(data, opts)
		if err != nil {
			return "", err
		}
		return l.Canonical()
	case "dictionary":
		d, err := ParseDictionaryWithOptions(data, opts)
		if err != nil {
			return "", err
		}
		return d.Canonical()
	default:
		return "", &UnsupportedShape{Shape: shape}
	}
}

// parseItem parses the "sf-item" production of Section 3.3.
func (s *scanner) parseItem(opts ParseOptions) (Item, error) {
	v, err := s.parseBareItem(opts)
	if err != nil {
		return Item{}, err
	}
	params, err := s.parseParameters(opts)
	if err != nil {
		return Item{}, err
	}
	return Item{value: v, params: params}, nil
}

// parseListMember parses the "list-member" production of Section 3.1:
// either an Item or an InnerList.
func (s *scanner) parseListMember(opts ParseOptions) (Member, error) {
	if c, ok := s.peek(); ok && c == '(' {
		return s.parseInnerList(opts)
	}
	return s.parseItem(opts)
}

// parseInnerList parses the "inner-list" production of Section 3.1.1.
func (s *scanner) parseInnerList(opts ParseOptions) (InnerList, error) {
	s.advance() // '('
	var items []Item
	for {
		s.skipSP()
		c, ok := s.peek()
		if !ok {
			return InnerList{}, s.fail("unterminated inner list")
		}
		if c == ')' {
			s.advance()
			break
		}
		item, err := s.parseItem(opts)
		if err != nil {
			return InnerList{}, err
		}
		items = append(items, item)
		c, ok = s.peek()
		if !ok {
			return InnerList{}, s.fail("unterminated inner list")
		}
		if c != ' ' && c != ')' {
			return InnerList{}, s.fail("expected ' ' or ')' in inner list")
		}
	}
	params, err := s.parseParameters(opts)
	if err != nil {
		return InnerList{}, err
	}
	return InnerList{items: items, params: params}, nil
}
