package security

import (
	"strconv"
	"testing"
)

func TestVerificationCodeIsSixDigitsWithoutLeadingZero(t *testing.T) {
	for attempt := 0; attempt < 200; attempt++ {
		code, err := VerificationCode()
		if err != nil {
			t.Fatalf("VerificationCode() error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6-digit code, got %q", code)
		}
		value, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if value < 100000 || value > 999999 {
			t.Fatalf("code %d out of range [100000, 999999]", value)
		}
	}
}

func TestRandomFromAlphabetRejectsEmptyAlphabet(t *testing.T) {
	if _, err := randomFromAlphabet(3, ""); err == nil {
		t.Fatal("expected error for empty alphabet")
	}
}

func TestRandomFromAlphabetZeroLength(t *testing.T) {
	value, err := randomFromAlphabet(0, allDigits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "" {
		t.Fatalf("expected empty string, got %q", value)
	}
}
