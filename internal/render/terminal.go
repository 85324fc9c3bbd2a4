// Package render draws palettes for humans: colored swatches and report
// tables for the terminal, and mock page layouts as HTML.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/leonardotrapani/chromagen/internal/accessibility"
	"github.com/leonardotrapani/chromagen/internal/colorspace"
	"github.com/leonardotrapani/chromagen/internal/harmony"
)

// Options controls terminal output.
type Options struct {
	// Profile is the color profile to render with; termenv.Ascii disables
	// color entirely.
	Profile termenv.Profile
}

// DefaultOptions detects the profile from the environment (NO_COLOR,
// CLICOLOR_FORCE, TERM, COLORTERM).
func DefaultOptions() Options {
	return Options{Profile: termenv.EnvColorProfile()}
}

func (o Options) renderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(o.Profile)
	return r
}

const swatchWidth = 8

// Swatches renders one row per palette entry: a colored block, the role, hex,
// RGB, HSL and nearest color name.
func Swatches(p harmony.Palette, opts Options) (string, error) {
	r := opts.renderer()
	roleStyle := r.NewStyle().Bold(true).Width(10)
	muted := r.NewStyle().Foreground(lipgloss.Color("#94A3B8"))

	var b strings.Builder
	for _, c := range p {
		rgb, err := colorspace.HexToRGB(c.Hex)
		if err != nil {
			return "", fmt.Errorf("%s: %w", c.Role, err)
		}
		hsl := colorspace.RGBToHSL(rgb)
		name, err := colorspace.NearestColorName(c.Hex)
		if err != nil {
			return "", err
		}
		on, err := colorspace.StrictTextColor(c.Hex)
		if err != nil {
			return "", err
		}

		block := r.NewStyle().
			Background(lipgloss.Color(c.Hex)).
			Foreground(lipgloss.Color(on)).
			Width(swatchWidth).
			Align(lipgloss.Center).
			Render("Aa")

		fmt.Fprintf(&b, "%s  %s %s  %s  %s  %s\n",
			block,
			roleStyle.Render(string(c.Role)),
			c.Hex,
			muted.Render(fmt.Sprintf("rgb(%3d, %3d, %3d)", rgb.R, rgb.G, rgb.B)),
			muted.Render(fmt.Sprintf("hsl(%3.0f, %3.0f%%, %3.0f%%)", hsl.H, hsl.S, hsl.L)),
			name,
		)
	}
	return b.String(), nil
}

func levelColor(level accessibility.Level) lipgloss.Color {
	switch level {
	case accessibility.LevelAAA, accessibility.LevelAA:
		return lipgloss.Color("#22C55E")
	case accessibility.LevelAALarge:
		return lipgloss.Color("#F59E0B")
	default:
		return lipgloss.Color("#EF4444")
	}
}

// ContrastTable renders the pairwise contrast report.
func ContrastTable(results []accessibility.PairResult, opts Options) string {
	r := opts.renderer()
	header := r.NewStyle().Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, []string{
			fmt.Sprintf("%s %s", res.A.Role, res.A.Hex),
			fmt.Sprintf("%s %s", res.B.Role, res.B.Hex),
			fmt.Sprintf("%.2f:1", res.Ratio),
			string(res.Level),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("#64748B"))).
		Headers("Color A", "Color B", "Ratio", "WCAG").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == 3 && row >= 0 && row < len(results) {
				return cell.Foreground(levelColor(results[row].Level))
			}
			return cell
		})

	return t.Render() + "\n"
}

// ColorBlindTable renders each simulation as a row of colored blocks.
func ColorBlindTable(sims []accessibility.Simulation, opts Options) string {
	r := opts.renderer()
	label := r.NewStyle().Width(28)

	var b strings.Builder
	b.WriteString(r.NewStyle().Italic(true).Render("Simulations are approximations."))
	b.WriteString("\n")
	for _, sim := range sims {
		b.WriteString(label.Render(sim.Label))
		for _, hex := range sim.Colors {
			b.WriteString(" ")
			b.WriteString(r.NewStyle().
				Background(lipgloss.Color(hex)).
				Width(swatchWidth).
				Render(hex))
		}
		b.WriteString("\n")
	}
	return b.String()
}
