package sfv

import "testing"

func TestParseItemRoundTrip(t *testing.T) {
	cases := []string{
		"42",
		"-42",
		"4.5",
		"-4.5",
		`"hello world"`,
		`"say \"hi\""`,
		"gzip",
		":aGVsbG8=:",
		"?1",
		"?0",
		"gzip;q=0.8;foo",
	}
	for _, c := range cases {
		it, err := ParseItem(c)
		if err != nil {
			t.Fatalf("ParseItem(%q) failed: %v", c, err)
		}
		s, err := it.Canonical()
		if err != nil {
			t.Fatalf("Canonical() failed for %q: %v", c, err)
		}
		if s != c {
			t.Fatalf("round trip mismatch: parsed %q, got canonical %q", c, s)
		}
	}
}

func TestParseItemRejectsDateByDefault(t *testing.T) {
	if _, err := ParseItem("@1659578233"); err == nil {
		t.Fatal("expected syntax error for '@' without EnableDate")
	}
}

func TestParseItemWithOptionsAcceptsDate(t *testing.T) {
	it, err := ParseItemWithOptions("@1659578233", ParseOptions{EnableDate: true})
	if err != nil {
		t.Fatalf("ParseItemWithOptions failed: %v", err)
	}
	n, ok := it.Value().DateValue()
	if !ok || n != 1659578233 {
		t.Fatalf("DateValue() = %d, %v; want 1659578233, true", n, ok)
	}
}

func TestParseItemRejectsTrailingGarbage(t *testing.T) {
	if _, err := ParseItem("42 43"); err == nil {
		t.Fatal("expected syntax error for trailing characters")
	}
}

func TestParseListRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"1, 2, 3",
		"sugar, tea, rum",
		"(1 2), 3",
		"gzip;q=0.8, (identity br);a",
	}
	for _, c := range cases {
		l, err := ParseList(c)
		if err != nil {
			t.Fatalf("ParseList(%q) failed: %v", c, err)
		}
		s, err := l.Canonical()
		if err != nil {
			t.Fatalf("Canonical() failed for %q: %v", c, err)
		}
		if s != c {
			t.Fatalf("round trip mismatch for %q: got canonical %q", c, s)
		}
	}
}

func TestParseDictionaryRoundTrip(t *testing.T) {
	d, err := ParseDictionary("a=1, b, c=?0, d=(1 2);x")
	if err != nil {
		t.Fatalf("ParseDictionary failed: %v", err)
	}
	s, err := d.Canonical()
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}
	if s != "a=1, b, c=?0, d=(1 2);x" {
		t.Fatalf("Canonical() = %q, want %q", s, "a=1, b, c=?0, d=(1 2);x")
	}
}

func TestParseDictionaryRejectsTrailingComma(t *testing.T) {
	if _, err := ParseDictionary("a=1,"); err == nil {
		t.Fatal("expected syntax error for trailing comma")
	}
}

func TestParseListRejectsDoubleComma(t *testing.T) {
	if _, err := ParseList("1,,2"); err == nil {
		t.Fatal("expected syntax error for empty list member")
	}
}

func TestParseItemRejectsUnterminatedString(t *testing.T) {
	if _, err := ParseItem(`"unterminated`); err == nil {
		t.Fatal("expected syntax error for unterminated string")
	}
}

func TestParseItemRejectsOversizedInteger(t *testing.T) {
	if _, err := ParseItem("1234567890123456"); err == nil {
		t.Fatal("expected syntax error for 16-digit integer")
	}
}

func TestParseInnerListRequiresSpaceBetweenItems(t *testing.T) {
	if _, err := ParseList("(1 2)"); err != nil {
		t.Fatalf("unexpected error for valid inner list: %v", err)
	}
	if _, err := ParseList("(1,2)"); err == nil {
		t.Fatal("expected syntax error for comma-separated inner list items")
	}
}

func TestParseParametersRoundTrip(t *testing.T) {
	cases := []string{
		"",
		";a",
		";a=1;b=2",
		";foo=\"bar\"",
	}
	for _, c := range cases {
		p, err := ParseParameters(c)
		if err != nil {
			t.Fatalf("ParseParameters(%q) failed: %v", c, err)
		}
		s, err := p.Canonical()
		if err != nil {
			t.Fatalf("Canonical() failed for %q: %v", c, err)
		}
		if s != c {
			t.Fatalf("round trip mismatch: parsed %q, got canonical %q", c, s)
		}
	}
}

func TestParseParametersRejectsTrailingGarbage(t *testing.T) {
	if _, err := ParseParameters(";a=1 oops"); err == nil {
		t.Fatal("expected syntax error for trailing characters")
	}
}

func TestParseInnerListStandaloneRoundTrip(t *testing.T) {
	cases := []string{
		"()",
		"(1 2)",
		"(\"foo\" \"bar\");a=1",
	}
	for _, c := range cases {
		il, err := ParseInnerList(c)
		if err != nil {
			t.Fatalf("ParseInnerList(%q) failed: %v", c, err)
		}
		s, err := il.Canonical()
		if err != nil {
			t.Fatalf("Canonical() failed for %q: %v", c, err)
		}
		if s != c {
			t.Fatalf("round trip mismatch: parsed %q, got canonical %q", c, s)
		}
	}
}

func TestParseInnerListRejectsNonParenStart(t *testing.T) {
	if _, err := ParseInnerList("1 2"); err == nil {
		t.Fatal("expected syntax error for input not starting with '('")
	}
}

func TestParseInnerListRejectsTrailingGarbage(t *testing.T) {
	if _, err := ParseInnerList("(1 2) oops"); err == nil {
		t.Fatal("expected syntax error for trailing characters")
	}
}
