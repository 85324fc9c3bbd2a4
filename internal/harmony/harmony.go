// Package harmony expands a seed (base color, harmony rule, mood) into a
// five-color palette with fixed semantic roles.
package harmony

import (
	"math"

	"github.com/leonardotrapani/chromagen/internal/colorspace"
)

// derivation is the (hueOffset, satScale, lightScale) triple applied to the
// mood-adjusted seed for one foreground role.
type derivation struct {
	hueOffset  float64
	satScale   float64
	lightScale float64
}

// ruleOffsets holds Primary, Secondary and Accent derivations per rule.
var ruleOffsets = map[Rule][3]derivation{
	Analogous: {
		{0, 1, 1},
		{30, 0.9, 1.1},
		{60, 0.8, 0.9},
	},
	Complementary: {
		{0, 1, 1},
		{0, 0.8, 1.3},
		{180, 1, 1},
	},
	SplitComplementary: {
		{0, 1, 1},
		{150, 1, 1},
		{210, 1, 1},
	},
	Triadic: {
		{0, 1, 1},
		{120, 1, 1},
		{240, 1, 1},
	},
	Monochromatic: {
		{0, 1, 1},
		{0, 0.7, 1.4},
		{0, 1.0, 0.6},
	},
}

var fallbackOffsets = [3]derivation{
	{0, 1, 1},
	{30, 1, 1},
	{-30, 1, 1},
}

// Background/text pairs.
const (
	darkBackground    = "#0a0a0a"
	darkText          = "#f0f0f0"
	neonBackground    = "#050505"
	neonText          = "#ffffff"
	lightBackground   = "#ffffff"
	lightText         = "#1a1a1a"
	darkSeedLightness = 20
)

// Generate derives the palette for baseHex. Unknown rules use the fallback
// derivations and unknown moods get no adjustment. The only error is an
// invalid base color.
func Generate(baseHex string, rule Rule, mood Mood) (Palette, error) {
	seed, err := colorspace.HexToHSL(baseHex)
	if err != nil {
		return Palette{}, err
	}

	rule = ParseRule(string(rule))
	mood = ParseMood(string(mood))

	adjusted := adjustForMood(seed, mood)

	offsets, ok := ruleOffsets[rule]
	if !ok {
		offsets = fallbackOffsets
	}

	bg, text := backgroundAndText(mood, seed.L)

	roles := Roles()
	p := Palette{
		{Hex: bg, Role: roles[0]},
		{Hex: text, Role: roles[1]},
	}
	for i, d := range offsets {
		p[i+2] = Color{Hex: makeColor(seed.H, adjusted, d), Role: roles[i+2]}
	}
	return p, nil
}

// GenerateSpec is Generate with the arguments taken from s.
func GenerateSpec(s Spec) (Palette, error) {
	return Generate(s.BaseColor, s.Harmony, s.Mood)
}

func adjustForMood(c colorspace.HSL, mood Mood) colorspace.HSL {
	switch mood {
	case Vibrant:
		c.S = math.Min(c.S+20, 100)
	case Pastel:
		c.S = math.Min(c.S, 60)
		c.L = math.Max(c.L, 85)
	case Dark:
		c.L = math.Min(c.L, 40)
	}
	return c
}

func makeColor(hue float64, adjusted colorspace.HSL, d derivation) string {
	h := colorspace.WrapHue(hue + d.hueOffset)
	s := clamp(adjusted.S*d.satScale, 0, 100)
	l := clamp(adjusted.L*d.lightScale, 0, 100)
	return colorspace.HSLToHex(h, s, l)
}

// backgroundAndText uses the lightness of the seed before mood adjustment so
// very dark seeds always get a dark canvas.
func backgroundAndText(mood Mood, seedLightness float64) (string, string) {
	switch {
	case mood == Dark || mood == Cyberpunk || seedLightness < darkSeedLightness:
		return darkBackground, darkText
	case mood == Neon:
		return neonBackground, neonText
	default:
		return lightBackground, lightText
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
