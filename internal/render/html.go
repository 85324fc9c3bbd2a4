package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/leonardotrapani/chromagen/internal/accessibility"
	"github.com/leonardotrapani/chromagen/internal/colorspace"
	"github.com/leonardotrapani/chromagen/internal/harmony"
)

var ErrUnknownTemplate = errors.New("unknown template")

//go:embed templates/*.html.tmpl
var templateFS embed.FS

//go:embed templates/page.css
var stylesheet string

var layouts = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// Template names a mock layout.
type Template string

const (
	Website   Template = "website"
	Mobile    Template = "mobile"
	Dashboard Template = "dashboard"
	Card      Template = "card"
	Poster    Template = "poster"
)

func Templates() []Template {
	return []Template{Website, Mobile, Dashboard, Card, Poster}
}

func ParseTemplate(s string) (Template, error) {
	name := Template(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range Templates() {
		if t == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, s)
}

// layoutData is what every layout sees. Text on the background and on the
// primary color is always pure black or white, whatever the palette's own
// Text color is.
type layoutData struct {
	Bg, Text, Primary, Secondary, Accent string

	OnBg, OnPrimary, OnAccent string
	BgIsLight                 bool

	CardSurface template.CSS
	Border      template.CSS

	Categories []string
	MenuItems  []string
}

func newLayoutData(p harmony.Palette) (layoutData, error) {
	if err := p.Validate(); err != nil {
		return layoutData{}, err
	}
	hexes := p.Hexes()
	bg, text, primary, secondary, accent := hexes[0], hexes[1], hexes[2], hexes[3], hexes[4]

	// Validate has checked every hex, so these cannot fail.
	onBg, _ := colorspace.StrictTextColor(bg)
	onPrimary, _ := colorspace.StrictTextColor(primary)
	onAccent, _ := colorspace.StrictTextColor(accent)
	light, _ := colorspace.IsLight(bg)

	d := layoutData{
		Bg: bg, Text: text, Primary: primary, Secondary: secondary, Accent: accent,
		OnBg: onBg, OnPrimary: onPrimary, OnAccent: onAccent,
		BgIsLight:  light,
		Categories: []string{"All", "Trending", "Art", "Music"},
		MenuItems:  []string{"Overview", "Performance", "Settings"},
	}
	if light {
		d.CardSurface = "rgba(0,0,0,0.05)"
		d.Border = "rgba(0,0,0,0.1)"
	} else {
		d.CardSurface = "rgba(255,255,255,0.05)"
		d.Border = "rgba(255,255,255,0.1)"
	}
	return d, nil
}

// HTML renders one mock layout as an HTML fragment.
func HTML(name Template, p harmony.Palette) (string, error) {
	if _, err := ParseTemplate(string(name)); err != nil {
		return "", err
	}
	data, err := newLayoutData(p)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := layouts.ExecuteTemplate(&buf, string(name), data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

type pageSwatch struct {
	Role    harmony.Role
	Hex     string
	Name    string
	OnColor string
}

type pageLayout struct {
	Name string
	HTML template.HTML
}

type pageData struct {
	Title      string
	Stylesheet template.CSS
	Spec       harmony.Spec
	Swatches   []pageSwatch
	Layouts    []pageLayout
	Report     *accessibility.Report
}

// PageOptions controls the standalone preview page. Zero value renders every
// layout and no report.
type PageOptions struct {
	Title     string
	Spec      harmony.Spec
	Templates []Template
	Report    *accessibility.Report
}

// Page renders a standalone HTML document with swatches, the chosen layouts
// and, if given, the accessibility report.
func Page(p harmony.Palette, opts PageOptions) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	data := pageData{
		Title:      opts.Title,
		Stylesheet: template.CSS(stylesheet),
		Spec:       opts.Spec,
		Report:     opts.Report,
	}
	if data.Title == "" {
		data.Title = "chromagen palette"
	}

	for _, c := range p {
		name, err := colorspace.NearestColorName(c.Hex)
		if err != nil {
			return "", err
		}
		on, _ := colorspace.StrictTextColor(c.Hex)
		data.Swatches = append(data.Swatches, pageSwatch{Role: c.Role, Hex: c.Hex, Name: name, OnColor: on})
	}

	names := opts.Templates
	if len(names) == 0 {
		names = Templates()
	}
	for _, name := range names {
		fragment, err := HTML(name, p)
		if err != nil {
			return "", err
		}
		// fragment comes from our own escaped templates
		data.Layouts = append(data.Layouts, pageLayout{Name: strings.ToUpper(string(name[:1])) + string(name[1:]), HTML: template.HTML(fragment)})
	}

	var buf bytes.Buffer
	if err := layouts.ExecuteTemplate(&buf, "page", data); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}
