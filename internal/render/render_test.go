package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/leonardotrapani/chromagen/internal/accessibility"
	"github.com/leonardotrapani/chromagen/internal/colorspace"
	"github.com/leonardotrapani/chromagen/internal/harmony"
)

func testPalette(t *testing.T) harmony.Palette {
	t.Helper()
	p, err := harmony.Generate("#1e3a8a", harmony.Monochromatic, harmony.Standard)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return p
}

func TestSwatchesASCII(t *testing.T) {
	out, err := Swatches(testPalette(t), Options{Profile: termenv.Ascii})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(out, "\x1b[") {
		t.Errorf("ASCII profile should not emit escape codes: %q", out)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}
	for i, role := range harmony.Roles() {
		if !strings.Contains(lines[i], string(role)) {
			t.Errorf("row %d missing role %s: %q", i, role, lines[i])
		}
	}
	if !strings.Contains(lines[0], "rgb(255, 255, 255)") || !strings.Contains(lines[0], "White") {
		t.Errorf("unexpected background row %q", lines[0])
	}
	if !strings.Contains(lines[2], "#1e3a8a") || !strings.Contains(lines[2], "rgb( 30,  58, 138)") {
		t.Errorf("unexpected primary row %q", lines[2])
	}
}

func TestSwatchesTrueColor(t *testing.T) {
	out, err := Swatches(testPalette(t), Options{Profile: termenv.TrueColor})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Error("expected escape codes with a true color profile")
	}
}

func TestSwatchesInvalid(t *testing.T) {
	p := testPalette(t)
	p[2].Hex = "oops"
	if _, err := Swatches(p, Options{Profile: termenv.Ascii}); !errors.Is(err, colorspace.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestReportTables(t *testing.T) {
	report, err := accessibility.Build(testPalette(t))
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	opts := Options{Profile: termenv.Ascii}

	contrast := ContrastTable(report.Contrast, opts)
	for _, want := range []string{"Ratio", "WCAG", "17.40:1", "AAA", "Fail", "Background #ffffff"} {
		if !strings.Contains(contrast, want) {
			t.Errorf("contrast table missing %q:\n%s", want, contrast)
		}
	}

	blind := ColorBlindTable(report.ColorBlindness, opts)
	for _, want := range []string{"Protanopia (Red-Blind)", "Deuteranopia (Green-Blind)", "Tritanopia (Blue-Blind)", "approximations"} {
		if !strings.Contains(blind, want) {
			t.Errorf("color blindness table missing %q:\n%s", want, blind)
		}
	}
}

func TestHTML(t *testing.T) {
	p := testPalette(t)

	for _, name := range Templates() {
		t.Run(string(name), func(t *testing.T) {
			out, err := HTML(name, p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, "layout-"+string(name)) {
				t.Errorf("expected layout class for %s", name)
			}
			if !strings.Contains(out, "#1e3a8a") {
				t.Errorf("expected primary color in %s", name)
			}
			if strings.Contains(out, "ZgotmplZ") {
				t.Errorf("template escaper rejected a value in %s:\n%s", name, out)
			}
		})
	}
}

func TestHTMLStrictTextColor(t *testing.T) {
	out, err := HTML(Website, testPalette(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// white background gets black text, dark blue primary gets white text
	if !strings.Contains(out, "background-color: #ffffff; color: #000000") {
		t.Errorf("expected black text on the white background:\n%s", out)
	}
	if !strings.Contains(out, "background-color: #1e3a8a; color: #FFFFFF") {
		t.Errorf("expected white text on the primary button:\n%s", out)
	}
}

func TestHTMLErrors(t *testing.T) {
	if _, err := HTML(Template("landing"), testPalette(t)); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("expected ErrUnknownTemplate, got %v", err)
	}

	bad := testPalette(t)
	bad[0].Hex = "#zzzzzz"
	if _, err := HTML(Card, bad); !errors.Is(err, harmony.ErrInvalidPalette) {
		t.Errorf("expected ErrInvalidPalette, got %v", err)
	}
}

func TestParseTemplate(t *testing.T) {
	got, err := ParseTemplate(" Dashboard ")
	if err != nil || got != Dashboard {
		t.Errorf("ParseTemplate = %s, %v", got, err)
	}
	if _, err := ParseTemplate("grid"); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestPage(t *testing.T) {
	p := testPalette(t)
	report, _ := accessibility.Build(p)

	out, err := Page(p, PageOptions{
		Spec:   harmony.Spec{BaseColor: "#1e3a8a", Harmony: harmony.Monochromatic, Mood: harmony.Standard},
		Report: &report,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>chromagen palette</title>",
		"Monochromatic",
		"layout-website",
		"layout-poster",
		"Protanopia (Red-Blind)",
		"17.40:1",
		".swatches",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(out, "ZgotmplZ") {
		t.Error("template escaper rejected a value in the page")
	}
	if strings.Contains(out, "&lt;div") {
		t.Error("layout fragments were double escaped")
	}
}

func TestPageSubset(t *testing.T) {
	out, err := Page(testPalette(t), PageOptions{Title: "Ocean", Templates: []Template{Card}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// page.css names every layout class, so match the rendered markup
	if !strings.Contains(out, `class="layout layout-card"`) {
		t.Error("expected the card layout")
	}
	for _, other := range []Template{Website, Mobile, Dashboard, Poster} {
		if strings.Contains(out, `class="layout layout-`+string(other)+`"`) {
			t.Errorf("expected only the card layout, found %s", other)
		}
	}
	if strings.Contains(out, "Contrast") {
		t.Error("expected no report section without a report")
	}
}
