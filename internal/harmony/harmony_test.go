package harmony

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/leonardotrapani/chromagen/internal/colorspace"
)

func TestGenerateShape(t *testing.T) {
	rules := append(Rules(), Rule("Tetradic"), Rule(""))
	moods := append(Moods(), Mood("Gloomy"), Mood(""))
	bases := []string{"#000000", "#ffffff", "#1e3a8a", "#00ff9d", "#3b82f6", "#ff0000", "#808080"}

	for _, base := range bases {
		for _, rule := range rules {
			for _, mood := range moods {
				p, err := Generate(base, rule, mood)
				if err != nil {
					t.Fatalf("Generate(%s, %s, %s): %v", base, rule, mood, err)
				}
				if err := p.Validate(); err != nil {
					t.Fatalf("Generate(%s, %s, %s) produced invalid palette: %v", base, rule, mood, err)
				}
			}
		}
	}
}

func TestGenerateMonochromaticStandard(t *testing.T) {
	p, err := Generate("#1e3a8a", Monochromatic, Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [5]string{"#ffffff", "#1a1a1a", "#1e3a8a", "#415cab", "#122353"}
	if got := p.Hexes(); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	seed, _ := colorspace.HexToHSL("#1e3a8a")
	if got := colorspace.HSLToHex(seed.H, seed.S*0.7, seed.L*1.4); got != p[3].Hex {
		t.Errorf("secondary should be the seed scaled by (0.7, 1.4), got %s vs %s", p[3].Hex, got)
	}
}

func TestGenerateSplitComplementaryCyberpunk(t *testing.T) {
	p, err := Generate("#00ff9d", SplitComplementary, Cyberpunk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [5]string{"#0a0a0a", "#f0f0f0", "#00ff9d", "#ff00e2", "#ff1d00"}
	if got := p.Hexes(); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGenerateDefaultSpec(t *testing.T) {
	p, err := GenerateSpec(DefaultSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [5]string{"#ffffff", "#1a1a1a", "#3b82f6", "#7160ef", "#9e33df"}
	if got := p.Hexes(); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBackgroundAndText(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		mood     Mood
		wantBg   string
		wantText string
	}{
		{name: "dark mood", base: "#3b82f6", mood: Dark, wantBg: "#0a0a0a", wantText: "#f0f0f0"},
		{name: "cyberpunk mood", base: "#ffffff", mood: Cyberpunk, wantBg: "#0a0a0a", wantText: "#f0f0f0"},
		{name: "neon mood", base: "#3b82f6", mood: Neon, wantBg: "#050505", wantText: "#ffffff"},
		{name: "dark seed beats neon", base: "#0a0a0a", mood: Neon, wantBg: "#0a0a0a", wantText: "#f0f0f0"},
		{name: "dark seed with pastel uses original lightness", base: "#101010", mood: Pastel, wantBg: "#0a0a0a", wantText: "#f0f0f0"},
		{name: "standard", base: "#3b82f6", mood: Standard, wantBg: "#ffffff", wantText: "#1a1a1a"},
		{name: "vibrant", base: "#3b82f6", mood: Vibrant, wantBg: "#ffffff", wantText: "#1a1a1a"},
		{name: "unknown mood", base: "#3b82f6", mood: Mood("Moody"), wantBg: "#ffffff", wantText: "#1a1a1a"},
		{name: "mood is case-insensitive", base: "#3b82f6", mood: Mood("cyberpunk"), wantBg: "#0a0a0a", wantText: "#f0f0f0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Generate(tc.base, Analogous, tc.mood)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p[0].Hex != tc.wantBg || p[1].Hex != tc.wantText {
				t.Errorf("expected %s/%s, got %s/%s", tc.wantBg, tc.wantText, p[0].Hex, p[1].Hex)
			}
		})
	}
}

func TestMoodAdjustment(t *testing.T) {
	seed := colorspace.HSL{H: 200, S: 90, L: 50}

	tests := []struct {
		mood Mood
		want colorspace.HSL
	}{
		{Vibrant, colorspace.HSL{H: 200, S: 100, L: 50}},
		{Pastel, colorspace.HSL{H: 200, S: 60, L: 85}},
		{Dark, colorspace.HSL{H: 200, S: 90, L: 40}},
		{Standard, seed},
		{Cyberpunk, seed},
		{Neon, seed},
		{Mood("whatever"), seed},
	}

	for _, tc := range tests {
		t.Run(string(tc.mood), func(t *testing.T) {
			if got := adjustForMood(seed, tc.mood); got != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, got)
			}
		})
	}

	low := colorspace.HSL{H: 10, S: 30, L: 20}
	if got := adjustForMood(low, Pastel); got.S != 30 || got.L != 85 {
		t.Errorf("pastel must never raise saturation, got %+v", got)
	}
}

func TestUnknownRuleFallsBack(t *testing.T) {
	p, err := Generate("#3b82f6", Rule("Tetradic"), Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seed, _ := colorspace.HexToHSL("#3b82f6")
	wantSecondary := colorspace.HSLToHex(seed.H+30, seed.S, seed.L)
	wantAccent := colorspace.HSLToHex(seed.H-30, seed.S, seed.L)
	if p[3].Hex != wantSecondary || p[4].Hex != wantAccent {
		t.Errorf("expected fallback %s/%s, got %s/%s", wantSecondary, wantAccent, p[3].Hex, p[4].Hex)
	}

	analogous, _ := Generate("#3b82f6", Analogous, Standard)
	if p[3].Hex == analogous[3].Hex {
		t.Errorf("fallback rule should not match the Analogous secondary")
	}
}

func TestRuleParsingIsCaseInsensitive(t *testing.T) {
	a, _ := Generate("#3b82f6", Rule("split-complementary"), Standard)
	b, _ := Generate("#3b82f6", SplitComplementary, Standard)
	if a != b {
		t.Errorf("expected identical palettes, got %v vs %v", a.Hexes(), b.Hexes())
	}
}

func TestHueWrap(t *testing.T) {
	// base hue near the top of the wheel; every offset must wrap
	for _, rule := range append(Rules(), Rule("unknown")) {
		p, err := Generate("#ff0040", rule, Standard)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, c := range p[2:] {
			hsl, err := colorspace.HexToHSL(c.Hex)
			if err != nil {
				t.Fatalf("generated invalid hex %q", c.Hex)
			}
			if hsl.H < 0 || hsl.H >= 360 {
				t.Errorf("%s: hue %v outside [0,360)", rule, hsl.H)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, rule := range Rules() {
		for _, mood := range Moods() {
			a, _ := Generate("#c0ffee", rule, mood)
			b, _ := Generate("#c0ffee", rule, mood)
			if a != b {
				t.Errorf("%s/%s not deterministic: %v vs %v", rule, mood, a, b)
			}
		}
	}
}

func TestGenerateInvalidBase(t *testing.T) {
	if _, err := Generate("#12", Analogous, Standard); !errors.Is(err, colorspace.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestPaletteJSONOrder(t *testing.T) {
	p, _ := Generate("#1e3a8a", Triadic, Standard)
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded []Color
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(decoded))
	}
	for i, role := range Roles() {
		if decoded[i].Role != role {
			t.Errorf("position %d: expected %s, got %s", i, role, decoded[i].Role)
		}
	}
}

func TestPaletteValidate(t *testing.T) {
	p, _ := Generate("#1e3a8a", Triadic, Standard)

	swapped := p
	swapped[2], swapped[3] = swapped[3], swapped[2]
	if err := swapped.Validate(); !errors.Is(err, ErrInvalidPalette) {
		t.Errorf("expected ErrInvalidPalette for swapped roles, got %v", err)
	}

	bad := p
	bad[4].Hex = "#xyz"
	if err := bad.Validate(); !errors.Is(err, colorspace.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestRoleSlug(t *testing.T) {
	if got := Background.Slug(); got != "background" {
		t.Errorf("expected background, got %s", got)
	}
	if got := Role("Call To Action").Slug(); got != "call-to-action" {
		t.Errorf("expected call-to-action, got %s", got)
	}
}

func TestCache(t *testing.T) {
	c := NewCache(2)

	spec := Spec{BaseColor: "#1E3A8A", Harmony: "monochromatic", Mood: "standard"}
	first, err := c.Generate(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	direct, _ := Generate("#1e3a8a", Monochromatic, Standard)
	if first != direct {
		t.Errorf("cached palette differs from direct generation")
	}

	second, _ := c.Generate(Spec{BaseColor: "#1e3a8a", Harmony: Monochromatic, Mood: Standard})
	if second != first {
		t.Errorf("expected identical palette from cache")
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d/%d", hits, misses)
	}

	c.Generate(Spec{BaseColor: "#000000", Harmony: Triadic, Mood: Dark})
	c.Generate(Spec{BaseColor: "#ffffff", Harmony: Triadic, Mood: Dark})
	if c.Len() > 2 {
		t.Errorf("cache exceeded capacity: %d", c.Len())
	}

	if _, err := c.Generate(Spec{BaseColor: "bad"}); !errors.Is(err, colorspace.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache(0)
	want, _ := GenerateSpec(DefaultSpec())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := c.Generate(DefaultSpec())
				if err != nil || got != want {
					t.Errorf("concurrent generate mismatch: %v %v", got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
