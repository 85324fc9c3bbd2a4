// Package export serializes palettes into design-token formats.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leonardotrapani/chromagen/internal/harmony"
)

var ErrUnknownFormat = errors.New("unknown export format")

type Format string

const (
	FormatCSS      Format = "css"
	FormatTailwind Format = "tailwind"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

func Formats() []Format {
	return []Format{FormatCSS, FormatTailwind, FormatJSON, FormatYAML}
}

// ParseFormat accepts a format name in any case; "yml" is an alias for yaml.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "yml" {
		name = string(FormatYAML)
	}
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSS:
		return "text/css; charset=utf-8"
	case FormatTailwind:
		return "text/javascript; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Render serializes p in the given format.
func Render(format Format, p harmony.Palette) (string, error) {
	switch format {
	case FormatCSS:
		return CSS(p), nil
	case FormatTailwind:
		return Tailwind(p), nil
	case FormatJSON:
		return JSON(p)
	case FormatYAML:
		return YAML(p)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// CSS emits the palette as custom properties on :root.
func CSS(p harmony.Palette) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, c := range p {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", c.Role.Slug(), c.Hex)
	}
	b.WriteString("}\n")
	return b.String()
}

// Tailwind emits a tailwind.config.js snippet extending the theme colors.
func Tailwind(p harmony.Palette) string {
	var b strings.Builder
	b.WriteString("module.exports = {\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")
	b.WriteString("      colors: {\n")
	for _, c := range p {
		fmt.Fprintf(&b, "        '%s': '%s',\n", c.Role.Slug(), c.Hex)
	}
	b.WriteString("      },\n")
	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("};\n")
	return b.String()
}

// JSON emits the palette array with two-space indentation.
func JSON(p harmony.Palette) (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal palette: %w", err)
	}
	return string(data) + "\n", nil
}

// tokenDocument keeps role order stable in the YAML output.
type tokenDocument struct {
	Colors yaml.Node `yaml:"colors"`
}

// YAML emits a design-token document: colors mapped by role slug.
func YAML(p harmony.Palette) (string, error) {
	colors := yaml.Node{Kind: yaml.MappingNode}
	for _, c := range p {
		colors.Content = append(colors.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: c.Role.Slug()},
			&yaml.Node{Kind: yaml.ScalarNode, Value: c.Hex, Style: yaml.DoubleQuotedStyle},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tokenDocument{Colors: colors}); err != nil {
		return "", fmt.Errorf("failed to marshal palette: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to marshal palette: %w", err)
	}
	return buf.String(), nil
}

// ParseYAML reads a document produced by YAML back into a palette.
func ParseYAML(data []byte) (harmony.Palette, error) {
	var doc struct {
		Colors map[string]string `yaml:"colors"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return harmony.Palette{}, fmt.Errorf("failed to parse tokens: %w", err)
	}

	var p harmony.Palette
	for i, role := range harmony.Roles() {
		hex, ok := doc.Colors[role.Slug()]
		if !ok {
			return harmony.Palette{}, fmt.Errorf("%w: missing %s", harmony.ErrInvalidPalette, role.Slug())
		}
		p[i] = harmony.Color{Hex: hex, Role: role}
	}
	if err := p.Validate(); err != nil {
		return harmony.Palette{}, err
	}
	return p, nil
}

// Parse reads a palette written by JSON or YAML, telling them apart by the
// leading '['.
func Parse(data []byte) (harmony.Palette, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return ParseYAML(data)
	}

	var p harmony.Palette
	if err := json.Unmarshal(data, &p); err != nil {
		return harmony.Palette{}, fmt.Errorf("failed to parse palette: %w", err)
	}
	if err := p.Validate(); err != nil {
		return harmony.Palette{}, err
	}
	return p, nil
}
