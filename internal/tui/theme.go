package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/leonardotrapani/chromagen/internal/colorspace"
	"github.com/leonardotrapani/chromagen/internal/harmony"
)

// themeSeed is the palette the configure screens are drawn with.
var themeSeed = harmony.Spec{BaseColor: "#7c3aed", Harmony: harmony.Triadic, Mood: harmony.Dark}

var (
	themePalette = mustPalette(themeSeed)
	themeHue     = mustHue(themeSeed.BaseColor)
)

var (
	ColorPrimary   = lipgloss.Color(roleHex(harmony.Primary))
	ColorSecondary = lipgloss.Color(roleHex(harmony.Secondary))

	// status colors stay fixed so they read the same in every theme
	ColorSuccess = lipgloss.Color("#22c55e")
	ColorError   = lipgloss.Color("#ef4444")
	ColorWarning = lipgloss.Color("#f59e0b")

	ColorText   = lipgloss.Color(roleHex(harmony.Text))
	ColorMuted  = lipgloss.Color(colorspace.HSLToHex(themeHue, 15, 65))
	ColorSubtle = lipgloss.Color(colorspace.HSLToHex(themeHue, 15, 47))

	ColorBg        = lipgloss.Color(roleHex(harmony.Background))
	ColorBgAlt     = lipgloss.Color(colorspace.HSLToHex(themeHue, 30, 15))
	ColorHighlight = lipgloss.Color(colorspace.HSLToHex(themeHue, 25, 25))
)

func mustPalette(s harmony.Spec) harmony.Palette {
	p, err := harmony.GenerateSpec(s)
	if err != nil {
		panic(err)
	}
	return p
}

func roleHex(role harmony.Role) string {
	c, _ := themePalette.ByRole(role)
	return c.Hex
}

func mustHue(hex string) float64 {
	hsl, err := colorspace.HexToHSL(hex)
	if err != nil {
		panic(err)
	}
	return hsl.H
}
