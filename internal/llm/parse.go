package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/leonardotrapani/chromagen/internal/colorspace"
	"github.com/leonardotrapani/chromagen/internal/harmony"
)

// ParseSpec reads a model response into a seed. The response must be a
// single JSON object with baseColor, harmony and mood; every field that is
// missing or invalid falls back to its default and produces a warning.
// Unrecognized harmony and mood names are kept so the generator applies its
// own fallbacks.
func ParseSpec(content string) (harmony.Spec, []string) {
	spec := harmony.DefaultSpec()
	var warnings []string

	var fields map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &fields); err != nil || fields == nil {
		warnings = append(warnings, fmt.Sprintf("response is not a JSON object, using default seed %s", spec))
		return spec, warnings
	}

	switch v := fields["baseColor"].(type) {
	case string:
		hex, err := colorspace.NormalizeHex(strings.TrimSpace(v))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid baseColor %q, using %s", v, harmony.DefaultBaseColor))
		} else {
			spec.BaseColor = hex
		}
	case nil:
		warnings = append(warnings, fmt.Sprintf("missing baseColor, using %s", harmony.DefaultBaseColor))
	default:
		warnings = append(warnings, fmt.Sprintf("baseColor is not a string, using %s", harmony.DefaultBaseColor))
	}

	if v, ok := fields["harmony"].(string); ok && strings.TrimSpace(v) != "" {
		spec.Harmony = harmony.ParseRule(v)
		if !spec.Harmony.Known() {
			warnings = append(warnings, fmt.Sprintf("unrecognized harmony %q", spec.Harmony))
		}
	} else {
		warnings = append(warnings, fmt.Sprintf("missing harmony, using %s", harmony.Analogous))
	}

	if v, ok := fields["mood"].(string); ok && strings.TrimSpace(v) != "" {
		spec.Mood = harmony.ParseMood(v)
		if !spec.Mood.Known() {
			warnings = append(warnings, fmt.Sprintf("unrecognized mood %q", spec.Mood))
		}
	} else {
		warnings = append(warnings, fmt.Sprintf("missing mood, using %s", harmony.Standard))
	}

	return spec, warnings
}
