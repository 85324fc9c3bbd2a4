// Package accessibility reports WCAG contrast and simulated color-blind
// views for a palette.
package accessibility

import (
	"fmt"

	"github.com/leonardotrapani/chromagen/internal/colorspace"
	"github.com/leonardotrapani/chromagen/internal/harmony"
)

// Level is the WCAG conformance level reached by a contrast ratio.
type Level string

const (
	LevelAAA     Level = "AAA"
	LevelAA      Level = "AA"
	LevelAALarge Level = "AA Large"
	LevelFail    Level = "Fail"
)

// Classify maps a contrast ratio to its level. Thresholds are inclusive.
func Classify(ratio float64) Level {
	switch {
	case ratio >= 7:
		return LevelAAA
	case ratio >= 4.5:
		return LevelAA
	case ratio >= 3:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// Swatch is a palette color annotated with its nearest named color.
type Swatch struct {
	Hex  string       `json:"hex" yaml:"hex"`
	Role harmony.Role `json:"role" yaml:"role"`
	Name string       `json:"name" yaml:"name"`
}

// PairResult is the contrast between two palette entries.
type PairResult struct {
	A     Swatch  `json:"a"`
	B     Swatch  `json:"b"`
	Ratio float64 `json:"ratio"`
	Level Level   `json:"level"`
}

func (r PairResult) Passes() bool {
	return r.Level != LevelFail
}

// ContrastReport computes all ten unordered pairs of the palette, in
// palette order (i < j).
func ContrastReport(p harmony.Palette) ([]PairResult, error) {
	swatches, err := annotate(p)
	if err != nil {
		return nil, err
	}

	results := make([]PairResult, 0, len(p)*(len(p)-1)/2)
	for i := 0; i < len(swatches); i++ {
		for j := i + 1; j < len(swatches); j++ {
			ratio, err := colorspace.ContrastRatio(swatches[i].Hex, swatches[j].Hex)
			if err != nil {
				return nil, fmt.Errorf("contrast %s/%s: %w", swatches[i].Role, swatches[j].Role, err)
			}
			results = append(results, PairResult{
				A:     swatches[i],
				B:     swatches[j],
				Ratio: ratio,
				Level: Classify(ratio),
			})
		}
	}
	return results, nil
}

// Simulation is the palette as seen with one deficiency. The matrices are
// approximations; results are illustrative.
type Simulation struct {
	Kind   colorspace.Deficiency `json:"kind"`
	Label  string                `json:"label"`
	Colors [5]string             `json:"colors"`
}

// ColorBlindReport simulates each deficiency in the order protanopia,
// deuteranopia, tritanopia.
func ColorBlindReport(p harmony.Palette) ([]Simulation, error) {
	kinds := colorspace.Deficiencies()
	out := make([]Simulation, 0, len(kinds))
	for _, kind := range kinds {
		sim := Simulation{Kind: kind, Label: kind.Label()}
		for i, c := range p {
			hex, err := colorspace.SimulateColorBlindness(c.Hex, kind)
			if err != nil {
				return nil, fmt.Errorf("simulate %s %s: %w", kind, c.Role, err)
			}
			sim.Colors[i] = hex
		}
		out = append(out, sim)
	}
	return out, nil
}

// Report bundles both reports, the shape returned by the HTTP API.
type Report struct {
	Contrast       []PairResult `json:"contrast"`
	ColorBlindness []Simulation `json:"colorBlindness"`
}

func Build(p harmony.Palette) (Report, error) {
	contrast, err := ContrastReport(p)
	if err != nil {
		return Report{}, err
	}
	sims, err := ColorBlindReport(p)
	if err != nil {
		return Report{}, err
	}
	return Report{Contrast: contrast, ColorBlindness: sims}, nil
}

func annotate(p harmony.Palette) ([]Swatch, error) {
	out := make([]Swatch, len(p))
	for i, c := range p {
		name, err := colorspace.NearestColorName(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Role, err)
		}
		out[i] = Swatch{Hex: c.Hex, Role: c.Role, Name: name}
	}
	return out, nil
}
