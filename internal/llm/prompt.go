package llm

import (
	"fmt"
	"strings"

	"github.com/leonardotrapani/chromagen/internal/harmony"
)

const imageOnlyPrompt = "Extract a palette seed from this image:"

// BuildSystemPrompt generates the system prompt asking for a palette seed
func BuildSystemPrompt() string {
	rules := make([]string, 0, len(harmony.Rules()))
	for _, r := range harmony.Rules() {
		rules = append(rules, string(r))
	}
	moods := make([]string, 0, len(harmony.Moods()))
	for _, m := range harmony.Moods() {
		moods = append(moods, string(m))
	}

	var b strings.Builder
	b.WriteString("You are an expert UI/UX designer and color theorist.\n")
	b.WriteString("Pick the seed for a 5-color UI palette that matches the user's theme.\n\n")

	b.WriteString("Mood guidance:\n")
	b.WriteString("- \"Neon\" or \"Cyberpunk\" themes: a fully saturated, bright base color; these moods render on a near-black background. Never pick pastel or muted colors for them.\n")
	b.WriteString("- \"Pastel\" themes: a desaturated, high-value base color.\n")
	b.WriteString("- \"Professional\" themes: deep blues or grays with the Standard mood.\n")
	b.WriteString("- \"Dark\" themes: the Dark mood.\n\n")

	b.WriteString("Choose the harmony that best fits the theme.\n\n")

	b.WriteString("Output format:\n")
	b.WriteString("Return ONLY a JSON object with exactly these keys:\n")
	b.WriteString(`{"baseColor": "#rrggbb", "harmony": "<harmony>", "mood": "<mood>"}`)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Allowed harmony values: %s\n", strings.Join(rules, ", "))
	fmt.Fprintf(&b, "Allowed mood values: %s\n", strings.Join(moods, ", "))
	b.WriteString("baseColor must be a 6-digit hex color with a leading #.\n")

	return b.String()
}

// BuildUserPrompt generates the text part for a theme prompt
func BuildUserPrompt(prompt string) string {
	return "Create a palette for: " + prompt
}
