package validate

import (
	"fmt"
	"testing"
)

func TestValidNPI(t *testing.T) {
	tests := []struct {
		npi  string
		want bool
	}{
		{"1234567893", true},  // canonical example with correct check digit
		{"1234567890", false}, // wrong check digit
		{"123456789", false},  // too short
		{"12345678931", false}, // too long
		{"123456789x", false}, // non-digit
		{"", false},
		{"0000000000", false},
	}

	for _, tt := range tests {
		if got := ValidNPI(tt.npi); got != tt.want {
			t.Errorf("ValidNPI(%q) = %v, want %v", tt.npi, got, tt.want)
		}
	}
}

func TestValidNPI_DetectsSingleDigitCorruption(t *testing.T) {
	const valid = "1234567893"
	if !ValidNPI(valid) {
		t.Fatalf("expected %s to be valid", valid)
	}

	// Corrupting the check digit to any other value must be detected in
	// at least 9 of 10 cases (Luhn detects all single-digit errors, so
	// here all 9 substitutions should fail).
	detected := 0
	for d := 0; d <= 9; d++ {
		corrupted := valid[:9] + fmt.Sprint(d)
		if corrupted == valid {
			continue
		}
		if !ValidNPI(corrupted) {
			detected++
		}
	}
	if detected < 9 {
		t.Errorf("detected %d/9 check-digit corruptions, want >= 9", detected)
	}
}

func TestValidNPI_DetectsCorruptionInEveryPosition(t *testing.T) {
	const valid = "1234567893"

	for pos := 0; pos < 10; pos++ {
		detected := 0
		for d := byte('0'); d <= '9'; d++ {
			if valid[pos] == d {
				continue
			}
			corrupted := valid[:pos] + string(d) + valid[pos+1:]
			if !ValidNPI(corrupted) {
				detected++
			}
		}
		if detected < 9 {
			t.Errorf("position %d: detected %d/9 corruptions, want 9", pos, detected)
		}
	}
}
