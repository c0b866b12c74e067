package sfv

import "testing"

func TestIntegerRoundTrip(t *testing.T) {
	v, err := Integer(42)
	if err != nil {
		t.Fatalf("Integer(42) failed: %v", err)
	}
	if n, ok := v.IntegerValue(); !ok || n != 42 {
		t.Fatalf("IntegerValue() = %d, %v", n, ok)
	}
	s, err := v.Canonical()
	if err != nil || s != "42" {
		t.Fatalf("Canonical() = %q, %v", s, err)
	}
}

func TestIntegerOutOfRange(t *testing.T) {
	if _, err := Integer(1000000000000000); err == nil {
		t.Fatal("expected OutOfRange error")
	} else if _, ok := err.(*OutOfRange); !ok {
		t.Fatalf("expected *OutOfRange, got %T", err)
	}
}

func TestDecimalCanonical(t *testing.T) {
	cases := []struct {
		milli int64
		want  string
	}{
		{1500, "1.5"},
		{-1500, "-1.5"},
		{1000, "1.0"},
		{0, "0.0"},
		{1234, "1.234"},
	}
	for _, c := range cases {
		v, err := DecimalMilli(c.milli)
		if err != nil {
			t.Fatalf("DecimalMilli(%d) failed: %v", c.milli, err)
		}
		s, err := v.Canonical()
		if err != nil || s != c.want {
			t.Fatalf("DecimalMilli(%d).Canonical() = %q, %v; want %q", c.milli, s, err, c.want)
		}
	}
}

func TestDecimalRoundsHalfToEven(t *testing.T) {
	// 1.2345 * 1000 evaluates to exactly 1234.5 in float64, a tie that
	// round-half-to-even breaks toward the even digit: 1.234, not 1.235.
	v, err := Decimal(1.2345)
	if err != nil {
		t.Fatalf("Decimal(1.2345) failed: %v", err)
	}
	s, err := v.Canonical()
	if err != nil || s != "1.234" {
		t.Fatalf("Decimal(1.2345).Canonical() = %q, %v; want %q", s, err, "1.234")
	}
}

func TestStringRejectsControlCharacters(t *testing.T) {
	if _, err := NewString("hello\tworld"); err == nil {
		t.Fatal("expected InvalidCharacter error for tab in string")
	}
}

func TestStringCanonicalEscapes(t *testing.T) {
	v, err := NewString(`say "hi"`)
	if err != nil {
		t.Fatalf("NewString failed: %v", err)
	}
	s, err := v.Canonical()
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}
	want := `"say \"hi\""`
	if s != want {
		t.Fatalf("Canonical() = %q, want %q", s, want)
	}
}

func TestTokenRejectsBadStart(t *testing.T) {
	if _, err := NewToken("1abc"); err == nil {
		t.Fatal("expected InvalidCharacter error for token starting with digit")
	}
}

func TestByteSequenceCanonical(t *testing.T) {
	v := NewByteSequence([]byte("hello"))
	s, err := v.Canonical()
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}
	if s != ":aGVsbG8=:" {
		t.Fatalf("Canonical() = %q, want %q", s, ":aGVsbG8=:")
	}
}

func TestByteSequenceValueIsDefensiveCopy(t *testing.T) {
	raw := []byte("hello")
	v := NewByteSequence(raw)
	raw[0] = 'X'
	got, _ := v.ByteSequenceValue()
	if string(got) != "hello" {
		t.Fatalf("ByteSequenceValue() = %q, want %q (mutation leaked)", got, "hello")
	}
}

func TestBooleanCanonical(t *testing.T) {
	if s, _ := Boolean(true).Canonical(); s != "?1" {
		t.Fatalf("Boolean(true).Canonical() = %q, want ?1", s)
	}
	if s, _ := Boolean(false).Canonical(); s != "?0" {
		t.Fatalf("Boolean(false).Canonical() = %q, want ?0", s)
	}
}

func TestDateCanonical(t *testing.T) {
	v, err := Date(1659578233)
	if err != nil {
		t.Fatalf("Date failed: %v", err)
	}
	s, err := v.Canonical()
	if err != nil || s != "@1659578233" {
		t.Fatalf("Canonical() = %q, %v; want @1659578233", s, err)
	}
}

func TestEqualAcrossKinds(t *testing.T) {
	i, _ := Integer(1)
	tok, _ := NewToken("a")
	if i.Equal(tok) {
		t.Fatal("values of different kinds should not be Equal")
	}
}
