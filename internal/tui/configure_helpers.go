package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/leonardotrapani/chromagen/internal/config"
	"github.com/leonardotrapani/chromagen/internal/provider"
)

func envKeySet(providerName string) bool {
	envVar := provider.EnvVarForProvider(providerName)
	return envVar != "" && os.Getenv(envVar) != ""
}

func formatProvidersLabel(cfg *config.Config) string {
	var configured []string
	for _, name := range provider.ListProviders() {
		if isProviderConfigured(cfg, name) {
			configured = append(configured, getProviderDisplayName(name))
		}
	}
	if len(configured) == 0 {
		return "Providers (none configured)"
	}
	return fmt.Sprintf("Providers (%s)", strings.Join(configured, ", "))
}

func formatLLMLabel(cfg *config.Config) string {
	if !cfg.LLM.Enabled {
		return "Prompt Model (disabled)"
	}
	return fmt.Sprintf("Prompt Model (%s/%s)", cfg.LLM.Provider, cfg.LLM.Model)
}

func formatServerLabel(cfg *config.Config) string {
	return fmt.Sprintf("HTTP API (%s)", cfg.Server.Listen)
}

func formatHistoryLabel(cfg *config.Config) string {
	if !cfg.History.Enabled {
		return "History (disabled)"
	}
	return fmt.Sprintf("History (%d entries)", cfg.History.Capacity)
}

func formatRenderLabel(cfg *config.Config) string {
	return fmt.Sprintf("Preview (%s)", cfg.Render.Template)
}

// summaryLines is the text of the save confirmation, one "label: value" per line
func summaryLines(cfg *config.Config) [][2]string {
	var providers []string
	for _, name := range provider.ListProviders() {
		if pc, ok := cfg.Providers[name]; ok && pc.APIKey != "" {
			providers = append(providers, fmt.Sprintf("%s (%s)", name, maskAPIKey(pc.APIKey)))
		} else if envKeySet(name) {
			providers = append(providers, fmt.Sprintf("%s (env)", name))
		}
	}
	if len(providers) == 0 {
		providers = append(providers, "none")
	}

	lines := [][2]string{{"Providers:", strings.Join(providers, ", ")}}

	if cfg.LLM.Enabled {
		lines = append(lines, [2]string{"Prompt model:", fmt.Sprintf("%s (%s), temperature %g, timeout %s",
			cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.Timeout)})
	} else {
		lines = append(lines, [2]string{"Prompt model:", "disabled"})
	}

	metrics := "metrics off"
	if cfg.Server.Metrics {
		metrics = "metrics on"
	}
	lines = append(lines, [2]string{"HTTP API:", fmt.Sprintf("%s, origin %s, %s", cfg.Server.Listen, cfg.Server.CORSOrigin, metrics)})

	if cfg.History.Enabled {
		path := cfg.History.Path
		if path == "" {
			path = "default location"
		}
		lines = append(lines, [2]string{"History:", fmt.Sprintf("%d entries, %s", cfg.History.Capacity, path)})
	} else {
		lines = append(lines, [2]string{"History:", "disabled"})
	}

	lines = append(lines, [2]string{"Preview:", cfg.Render.Template})
	return lines
}

func showSummary(cfg *config.Config) (bool, error) {
	fmt.Println()
	fmt.Println(StyleHeader.Render("Configuration Summary"))

	var b strings.Builder
	for i, line := range summaryLines(cfg) {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s", StyleLabel.Render(line[0]), StyleHighlight.Render(line[1]))
	}
	fmt.Println(StyleBox.Render(b.String()))

	if err := cfg.Validate(); err != nil {
		fmt.Println(StyleWarning.Render("Warning: " + err.Error()))
	}
	fmt.Println()

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save this configuration?").
				Affirmative("Save").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}
