package colorspace

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", hex: "#1e3a8a", want: RGB{0x1e, 0x3a, 0x8a}},
		{name: "without hash", hex: "00ff9d", want: RGB{0x00, 0xff, 0x9d}},
		{name: "upper case", hex: "#FFFFFF", want: RGB{255, 255, 255}},
		{name: "mixed case", hex: "#aBcDeF", want: RGB{0xab, 0xcd, 0xef}},
		{name: "short form rejected", hex: "#fff", wantErr: true},
		{name: "too long", hex: "#1234567", wantErr: true},
		{name: "non hex digit", hex: "#12345g", wantErr: true},
		{name: "empty", hex: "", wantErr: true},
		{name: "double hash", hex: "##123456", wantErr: true},
		{name: "whitespace", hex: " #123456", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HexToRGB(tc.hex)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("expected ErrInvalidColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestRGBHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#1E3A8A", "#00ff9d", "#3b82f6", "#7f7f7f"} {
		c, err := HexToRGB(hex)
		if err != nil {
			t.Fatalf("HexToRGB(%q): %v", hex, err)
		}
		if got := RGBToHex(c); got != strings.ToLower(hex) {
			t.Errorf("round trip of %q produced %q", hex, got)
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSL
	}{
		{name: "black", in: RGB{0, 0, 0}, want: HSL{0, 0, 0}},
		{name: "white", in: RGB{255, 255, 255}, want: HSL{0, 0, 100}},
		{name: "red", in: RGB{255, 0, 0}, want: HSL{0, 100, 50}},
		{name: "green", in: RGB{0, 255, 0}, want: HSL{120, 100, 50}},
		{name: "blue", in: RGB{0, 0, 255}, want: HSL{240, 100, 50}},
		{name: "magenta wraps through red", in: RGB{255, 0, 255}, want: HSL{300, 100, 50}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RGBToHSL(tc.in)
			if !near(got.H, tc.want.H) || !near(got.S, tc.want.S) || !near(got.L, tc.want.L) {
				t.Errorf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    string
	}{
		{name: "red", h: 0, s: 100, l: 50, want: "#ff0000"},
		{name: "green", h: 120, s: 100, l: 50, want: "#00ff00"},
		{name: "blue", h: 240, s: 100, l: 50, want: "#0000ff"},
		{name: "gray", h: 200, s: 0, l: 50, want: "#808080"},
		{name: "hue 360 wraps to red", h: 360, s: 100, l: 50, want: "#ff0000"},
		{name: "negative hue wraps", h: -120, s: 100, l: 50, want: "#0000ff"},
		{name: "lightness clamped", h: 0, s: 100, l: 140, want: "#ffffff"},
		{name: "saturation clamped", h: 0, s: 250, l: 50, want: "#ff0000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HSLToHex(tc.h, tc.s, tc.l); got != tc.want {
				t.Errorf("HSLToHex(%v, %v, %v) = %s, want %s", tc.h, tc.s, tc.l, got, tc.want)
			}
		})
	}
}

func TestHSLRoundTripReproducesColor(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 51 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				hsl := RGBToHSL(c)
				if got := HSLToRGB(hsl.H, hsl.S, hsl.L); got != c {
					t.Fatalf("round trip of %v via %v produced %v", c, hsl, got)
				}
			}
		}
	}
}

func TestWrapHue(t *testing.T) {
	for _, h := range []float64{-720, -360, -30, -1e-15, 0, 30, 359.999, 360, 570, 1e6} {
		got := WrapHue(h)
		if got < 0 || got >= 360 {
			t.Errorf("WrapHue(%v) = %v, outside [0,360)", h, got)
		}
	}
	if got := WrapHue(-30); !near(got, 330) {
		t.Errorf("WrapHue(-30) = %v, want 330", got)
	}
}

func TestNormalizeHex(t *testing.T) {
	got, err := NormalizeHex("ABCDEF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "#abcdef" {
		t.Errorf("expected #abcdef, got %s", got)
	}
	if _, err := NormalizeHex("nope"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
