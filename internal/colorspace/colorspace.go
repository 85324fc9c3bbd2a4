// Package colorspace converts between hex, RGB and HSL and implements the
// perceptual calculations (WCAG luminance and contrast, color-blindness
// simulation, named-color lookup) used across chromagen.
//
// Every function is pure. Malformed hex input is reported as ErrInvalidColor
// and never coerced.
package colorspace

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidColor = errors.New("invalid color")

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// RGB holds 8-bit channel values.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in percent [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

func (c HSL) String() string {
	return fmt.Sprintf("%.0f°, %.0f%%, %.0f%%", c.H, c.S, c.L)
}

// HexToRGB parses exactly six hex digits with an optional leading '#'.
func HexToRGB(hex string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGBToHex formats c as lower-case #rrggbb.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NormalizeHex validates hex and returns it as lower-case #rrggbb.
func NormalizeHex(hex string) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return RGBToHex(c), nil
}

// IsValidHex reports whether hex is a well-formed six digit color.
func IsValidHex(hex string) bool {
	return hexPattern.MatchString(hex)
}

// RGBToHSL converts c without rounding the result.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxV := math.Max(r, math.Max(g, b))
	minV := math.Min(r, math.Min(g, b))
	l := (maxV + minV) / 2

	if maxV == minV {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxV - minV
	var s float64
	if l > 0.5 {
		s = d / (2 - maxV - minV)
	} else {
		s = d / (maxV + minV)
	}

	var h float64
	switch maxV {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSL{H: h * 360, S: s * 100, L: l * 100}
}

// HexToHSL parses hex and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(c), nil
}

// HSLToRGB uses the k-function formulation: channel offsets 0, 8 and 4 for
// R, G and B. Hue is wrapped into [0,360), s and l are clamped to [0,100].
func HSLToRGB(h, s, l float64) RGB {
	h = WrapHue(h)
	s = clamp(s, 0, 100) / 100
	l = clamp(l, 0, 100) / 100
	a := s * math.Min(l, 1-l)

	f := func(n float64) uint8 {
		k := math.Mod(n+h/30, 12)
		v := l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return channel(255 * v)
	}
	return RGB{R: f(0), G: f(8), B: f(4)}
}

// HSLToHex is HSLToRGB formatted as #rrggbb.
func HSLToHex(h, s, l float64) string {
	return RGBToHex(HSLToRGB(h, s, l))
}

// WrapHue maps any angle into [0,360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// tiny negative inputs land exactly on 360 after the addition
	if h >= 360 {
		h -= 360
	}
	return h
}

func channel(v float64) uint8 {
	return uint8(clamp(math.Round(v), 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func upperHex(hex string) string {
	return "#" + strings.ToUpper(strings.TrimPrefix(hex, "#"))
}
