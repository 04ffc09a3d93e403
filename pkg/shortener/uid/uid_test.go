package uid

import (
	"strings"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	for _, length := range []int{1, 8, 10, 21, 64} {
		code, err := Generate(length)
		if err != nil {
			t.Fatalf("Generate(%d) returned error: %v", length, err)
		}
		if len(code) != length {
			t.Errorf("Generate(%d) returned %d chars: %q", length, len(code), code)
		}
	}
}

func TestGenerateAlphabet(t *testing.T) {
	code, err := Generate(200)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	for _, c := range code {
		if !strings.ContainsRune(Alphabet, c) {
			t.Errorf("Generated code contains %q, not in alphabet", c)
		}
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := Generate(10)
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if seen[code] {
			t.Fatalf("Duplicate code generated: %q", code)
		}
		seen[code] = true
	}
}

func TestGenerateRejectsNonPositiveLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		if _, err := Generate(length); err == nil {
			t.Errorf("Generate(%d) expected error, got nil", length)
		}
	}
}
