package sfv

import "testing"

func TestInnerListPushAndCanonical(t *testing.T) {
	a, _ := Integer(1)
	b, _ := Integer(2)
	il := NewInnerList(nil, Parameters{})
	il = il.Push(NewItem(a, Parameters{}))
	il = il.Push(NewItem(b, Parameters{}))
	s, err := il.Canonical()
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}
	if s != "(1 2)" {
		t.Fatalf("Canonical() = %q, want %q", s, "(1 2)")
	}
}

func TestInnerListUnshift(t *testing.T) {
	a, _ := Integer(1)
	b, _ := Integer(2)
	il := NewInnerList([]Item{NewItem(b, Parameters{})}, Parameters{})
	il = il.Unshift(NewItem(a, Parameters{}))
	s, _ := il.Canonical()
	if s != "(1 2)" {
		t.Fatalf("Canonical() = %q, want %q", s, "(1 2)")
	}
}

func TestInnerListInsertAtBoundaries(t *testing.T) {
	a, _ := Integer(1)
	b, _ := Integer(2)
	il := NewInnerList([]Item{NewItem(a, Parameters{})}, Parameters{})

	pushed, err := il.Insert(il.Len(), NewItem(b, Parameters{}))
	if err != nil {
		t.Fatalf("Insert at len failed: %v", err)
	}
	if s, _ := pushed.Canonical(); s != "(1 2)" {
		t.Fatalf("Insert(len, v) = %q, want push semantics (1 2)", s)
	}

	unshifted, err := il.Insert(0, NewItem(b, Parameters{}))
	if err != nil {
		t.Fatalf("Insert at 0 failed: %v", err)
	}
	if s, _ := unshifted.Canonical(); s != "(2 1)" {
		t.Fatalf("Insert(0, v) = %q, want unshift semantics (2 1)", s)
	}
}

func TestInnerListGetNegativeIndex(t *testing.T) {
	a, _ := Integer(1)
	b, _ := Integer(2)
	il := NewInnerList([]Item{NewItem(a, Parameters{}), NewItem(b, Parameters{})}, Parameters{})
	last, err := il.Get(-1)
	if err != nil {
		t.Fatalf("Get(-1) failed: %v", err)
	}
	if n, _ := last.Value().IntegerValue(); n != 2 {
		t.Fatalf("Get(-1) = %d, want 2", n)
	}
}

func TestInnerListRemoveOutOfRange(t *testing.T) {
	il := NewInnerList(nil, Parameters{})
	if _, err := il.Remove(0); err == nil {
		t.Fatal("expected IndexOutOfRange error")
	} else if _, ok := err.(*IndexOutOfRange); !ok {
		t.Fatalf("expected *IndexOutOfRange, got %T", err)
	}
}

func TestInnerListWithParameters(t *testing.T) {
	il := NewInnerList(nil, Parameters{})
	il, err := il.AppendParameter("a", Boolean(true))
	if err != nil {
		t.Fatalf("AppendParameter failed: %v", err)
	}
	s, _ := il.Canonical()
	if s != "();a" {
		t.Fatalf("Canonical() = %q, want %q", s, "();a")
	}
}
