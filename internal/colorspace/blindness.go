package colorspace

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDeficiency = errors.New("unknown color vision deficiency")

// Deficiency names a simulated color vision deficiency.
type Deficiency string

const (
	Protanopia   Deficiency = "protanopia"
	Deuteranopia Deficiency = "deuteranopia"
	Tritanopia   Deficiency = "tritanopia"
)

// Deficiencies lists the simulated kinds in report order.
func Deficiencies() []Deficiency {
	return []Deficiency{Protanopia, Deuteranopia, Tritanopia}
}

func (d Deficiency) Label() string {
	switch d {
	case Protanopia:
		return "Protanopia (Red-Blind)"
	case Deuteranopia:
		return "Deuteranopia (Green-Blind)"
	case Tritanopia:
		return "Tritanopia (Blue-Blind)"
	default:
		return string(d)
	}
}

// ParseDeficiency accepts the kind name in any case.
func ParseDeficiency(s string) (Deficiency, error) {
	d := Deficiency(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := deficiencyMatrices[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDeficiency, s)
	}
	return d, nil
}

type matrix [3][3]float64

var deficiencyMatrices = map[Deficiency]matrix{
	Protanopia: {
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	},
	Tritanopia: {
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	},
}

// SimulateColorBlindness applies the kind's linear transform to the RGB
// vector of hex, rounding and clamping each channel.
func SimulateColorBlindness(hex string, kind Deficiency) (string, error) {
	m, ok := deficiencyMatrices[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDeficiency, kind)
	}
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}

	in := [3]float64{float64(c.R), float64(c.G), float64(c.B)}
	var out [3]uint8
	for i, row := range m {
		out[i] = channel(row[0]*in[0] + row[1]*in[1] + row[2]*in[2])
	}
	return RGBToHex(RGB{R: out[0], G: out[1], B: out[2]}), nil
}
