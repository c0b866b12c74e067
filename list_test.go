package sfv

import "testing"

func TestListCanonicalMixedMembers(t *testing.T) {
	tok, _ := NewToken("sugar")
	il := NewInnerList([]Item{NewItem(mustInt(t, 1), Parameters{}), NewItem(mustInt(t, 2), Parameters{})}, Parameters{})
	l := NewList(NewItem(tok, Parameters{}), il)
	s, err := l.Canonical()
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}
	if s != "sugar, (1 2)" {
		t.Fatalf("Canonical() = %q, want %q", s, "sugar, (1 2)")
	}
}

func TestListReplaceAndRemove(t *testing.T) {
	l := NewList(NewItem(mustInt(t, 1), Parameters{}), NewItem(mustInt(t, 2), Parameters{}))
	l, err := l.Replace(0, NewItem(mustInt(t, 9), Parameters{}))
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if s, _ := l.Canonical(); s != "9, 2" {
		t.Fatalf("Canonical() after Replace = %q, want %q", s, "9, 2")
	}
	l, err = l.Remove(0)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if s, _ := l.Canonical(); s != "2" {
		t.Fatalf("Canonical() after Remove = %q, want %q", s, "2")
	}
}

func TestListEqualAcrossMemberKinds(t *testing.T) {
	a := NewList(NewItem(mustInt(t, 1), Parameters{}))
	b := NewList(NewInnerList([]Item{NewItem(mustInt(t, 1), Parameters{})}, Parameters{}))
	if a.Equal(b) {
		t.Fatal("an Item and an InnerList should never be Equal")
	}
}

func mustInt(t *testing.T, n int64) BareValue {
	v, err := Integer(n)
	if err != nil {
		t.Fatalf("Integer(%d) failed: %v", n, err)
	}
	return v
}
