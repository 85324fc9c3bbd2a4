package harmony

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leonardotrapani/chromagen/internal/colorspace"
)

var ErrInvalidPalette = errors.New("invalid palette")

// Role is the semantic slot of a palette entry.
type Role string

const (
	Background Role = "Background"
	Text       Role = "Text"
	Primary    Role = "Primary"
	Secondary  Role = "Secondary"
	Accent     Role = "Accent"
)

// Roles lists the roles in palette order. Renderers destructure palettes by
// this position, so the order is part of the contract.
func Roles() [5]Role {
	return [5]Role{Background, Text, Primary, Secondary, Accent}
}

// Slug lowercases the role and replaces spaces with hyphens, for CSS variable
// and token names.
func (r Role) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(r)), " ", "-")
}

type Color struct {
	Hex  string `json:"hex" yaml:"hex"`
	Role Role   `json:"role" yaml:"role"`
}

// Palette is always [Background, Text, Primary, Secondary, Accent].
type Palette [5]Color

func (p Palette) Hexes() [5]string {
	var out [5]string
	for i, c := range p {
		out[i] = c.Hex
	}
	return out
}

// ByRole returns the entry holding role.
func (p Palette) ByRole(role Role) (Color, bool) {
	for _, c := range p {
		if c.Role == role {
			return c, true
		}
	}
	return Color{}, false
}

// Validate checks shape and colors of a palette that did not come from
// Generate, e.g. one decoded from JSON.
func (p Palette) Validate() error {
	for i, want := range Roles() {
		if p[i].Role != want {
			return fmt.Errorf("%w: position %d has role %q, expected %q", ErrInvalidPalette, i, p[i].Role, want)
		}
		if !colorspace.IsValidHex(p[i].Hex) {
			return fmt.Errorf("%w: %s: %w %q", ErrInvalidPalette, want, colorspace.ErrInvalidColor, p[i].Hex)
		}
	}
	return nil
}

// Rule is a harmony strategy. Values outside the known set are kept as-is
// and generate with the fallback table row.
type Rule string

const (
	Analogous          Rule = "Analogous"
	Complementary      Rule = "Complementary"
	SplitComplementary Rule = "Split-Complementary"
	Triadic            Rule = "Triadic"
	Monochromatic      Rule = "Monochromatic"
)

func Rules() []Rule {
	return []Rule{Analogous, Complementary, SplitComplementary, Triadic, Monochromatic}
}

// ParseRule matches s case-insensitively against the known rules. Unknown
// names are returned unchanged.
func ParseRule(s string) Rule {
	trimmed := strings.TrimSpace(s)
	for _, r := range Rules() {
		if strings.EqualFold(trimmed, string(r)) {
			return r
		}
	}
	return Rule(trimmed)
}

func (r Rule) Known() bool {
	_, ok := ruleOffsets[r]
	return ok
}

// Mood adjusts saturation and lightness and picks the background/text pair.
type Mood string

const (
	Standard  Mood = "Standard"
	Vibrant   Mood = "Vibrant"
	Pastel    Mood = "Pastel"
	Dark      Mood = "Dark"
	Cyberpunk Mood = "Cyberpunk"
	Neon      Mood = "Neon"
)

func Moods() []Mood {
	return []Mood{Standard, Vibrant, Pastel, Dark, Cyberpunk, Neon}
}

// ParseMood matches s case-insensitively. Unknown names are returned
// unchanged and behave like Standard.
func ParseMood(s string) Mood {
	trimmed := strings.TrimSpace(s)
	for _, m := range Moods() {
		if strings.EqualFold(trimmed, string(m)) {
			return m
		}
	}
	return Mood(trimmed)
}

func (m Mood) Known() bool {
	for _, known := range Moods() {
		if m == known {
			return true
		}
	}
	return false
}

// Spec is the seed a palette is expanded from.
type Spec struct {
	BaseColor string `json:"baseColor" yaml:"baseColor" toml:"base_color"`
	Harmony   Rule   `json:"harmony" yaml:"harmony" toml:"harmony"`
	Mood      Mood   `json:"mood" yaml:"mood" toml:"mood"`
}

const DefaultBaseColor = "#3b82f6"

// DefaultSpec is substituted when a seed cannot be obtained.
func DefaultSpec() Spec {
	return Spec{BaseColor: DefaultBaseColor, Harmony: Analogous, Mood: Standard}
}

// Normalize returns the spec with a lower-case base color and canonical rule
// and mood names.
func (s Spec) Normalize() (Spec, error) {
	hex, err := colorspace.NormalizeHex(s.BaseColor)
	if err != nil {
		return Spec{}, err
	}
	return Spec{
		BaseColor: hex,
		Harmony:   ParseRule(string(s.Harmony)),
		Mood:      ParseMood(string(s.Mood)),
	}, nil
}

func (s Spec) String() string {
	return fmt.Sprintf("%s/%s/%s", s.BaseColor, s.Harmony, s.Mood)
}
