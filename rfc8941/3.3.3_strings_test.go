package rfc8941

import "testing"

func TestIsStringChar(t *testing.T) {
	for c := byte(0x20); c <= 0x7E; c++ {
		if !IsStringChar(c) {
			t.Fatalf("IsStringChar(%#x) = false, want true", c)
		}
	}
	for _, c := range []byte{0x09, 0x0A, 0x0D, 0x7F, 0x00} {
		if IsStringChar(c) {
			t.Fatalf("IsStringChar(%#x) = true, want false", c)
		}
	}
}
