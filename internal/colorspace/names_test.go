package colorspace

import (
	"errors"
	"testing"
)

func TestNearestColorName(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#010101", "Black"},
		{"#000000", "Black"},
		{"#ff0000", "Crimson Red"},
		{"#4169e1", "Royal Blue"},
		{"#4169E1", "Royal Blue"},
		{"#fefefe", "White"},
		{"#00ffff", "Cyan"},
		{"#7f7f7f", "Gray"},
	}

	for _, tc := range tests {
		got, err := NearestColorName(tc.hex)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tc.want {
			t.Errorf("NearestColorName(%s) = %q, want %q", tc.hex, got, tc.want)
		}
	}

	if _, err := NearestColorName("zzz"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}
