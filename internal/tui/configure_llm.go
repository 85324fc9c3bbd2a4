package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/leonardotrapani/chromagen/internal/config"
	"github.com/leonardotrapani/chromagen/internal/provider"
)

// editLLM handles the prompt model section
func editLLM(cfg *config.Config) error {
	enableLLM := cfg.LLM.Enabled

	enableDesc := "A language model turns prompts like \"sunset over the ocean\" into a base color, harmony and mood"
	if cfg.LLM.Enabled {
		enableDesc = fmt.Sprintf("Currently: enabled (%s/%s). %s", cfg.LLM.Provider, cfg.LLM.Model, enableDesc)
	} else {
		enableDesc = "Currently: disabled. " + enableDesc
	}

	enableForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Resolve prompts with a language model?").
				Description(enableDesc).
				Affirmative("Yes (Recommended)").
				Negative("No").
				Value(&enableLLM),
		),
	).WithTheme(getTheme())

	if err := enableForm.Run(); err != nil {
		return err
	}

	if !enableLLM {
		cfg.LLM.Enabled = false
		return nil
	}

	selectedProvider := cfg.LLM.Provider
	if provider.GetProvider(selectedProvider) == nil {
		selectedProvider = provider.ProviderOpenAI
	}

	providerForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Provider").
				Description("Choose which service resolves prompts").
				Options(getProviderOptions(cfg)...).
				Value(&selectedProvider),
		),
	).WithTheme(getTheme())

	if err := providerForm.Run(); err != nil {
		return err
	}

	ensureProviderConfigured(cfg, selectedProvider)

	modelOptions := getModelOptions(selectedProvider)
	selectedModel := cfg.LLM.Model
	if _, ok := provider.FindModel(selectedProvider, selectedModel); !ok {
		selectedModel = provider.GetProvider(selectedProvider).DefaultModel()
	}

	temperature := strconv.FormatFloat(float64(cfg.LLM.Temperature), 'f', -1, 32)
	timeout := cfg.LLM.Timeout.String()

	modelForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Model").
				Description("Vision models also accept images").
				Options(modelOptions...).
				Value(&selectedModel),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Temperature").
				Description("Higher values give more varied seeds (0 - 2)").
				Placeholder("0.7").
				Value(&temperature).
				Validate(func(s string) error {
					_, err := parseTemperature(s)
					return err
				}),
			huh.NewInput().
				Title("Timeout").
				Description("Per-request limit including the model call (e.g., '30s', '1m')").
				Placeholder("30s").
				Value(&timeout).
				Validate(func(s string) error {
					if d, err := time.ParseDuration(s); err != nil || d <= 0 {
						return fmt.Errorf("invalid duration format (use '30s', '1m', etc.)")
					}
					return nil
				}),
		),
	).WithTheme(getTheme())

	if err := modelForm.Run(); err != nil {
		return err
	}

	cfg.LLM.Enabled = true
	cfg.LLM.Provider = selectedProvider
	cfg.LLM.Model = selectedModel
	cfg.LLM.Temperature, _ = parseTemperature(temperature)
	cfg.LLM.Timeout, _ = time.ParseDuration(timeout)
	return nil
}

func getProviderOptions(cfg *config.Config) []huh.Option[string] {
	var options []huh.Option[string]
	for _, name := range provider.ListProviders() {
		label := getProviderDisplayName(name)
		if !isProviderConfigured(cfg, name) {
			label += " (not configured)"
		}
		options = append(options, huh.NewOption(label, name))
	}
	return options
}

// getModelOptions lists a provider's models, default first label marked
func getModelOptions(providerName string) []huh.Option[string] {
	p := provider.GetProvider(providerName)
	if p == nil {
		return []huh.Option[string]{}
	}

	var options []huh.Option[string]
	for _, m := range p.Models() {
		options = append(options, huh.NewOption(formatModelLabel(m, m.ID == p.DefaultModel()), m.ID))
	}
	return options
}

func formatModelLabel(m provider.Model, recommended bool) string {
	label := m.ID
	if recommended {
		label += " (recommended)"
	}
	if m.Description != "" {
		label += " - " + m.Description
	}
	if m.Vision {
		label += " [vision]"
	}
	return label
}

func parseTemperature(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("must be a number")
	}
	if v < 0 || v > 2 {
		return 0, fmt.Errorf("must be between 0 and 2")
	}
	return float32(v), nil
}
