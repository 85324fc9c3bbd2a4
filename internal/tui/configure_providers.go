package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/leonardotrapani/chromagen/internal/config"
	"github.com/leonardotrapani/chromagen/internal/provider"
)

// getProviderDisplayName returns the display name for a provider
func getProviderDisplayName(providerName string) string {
	if p := provider.GetProvider(providerName); p != nil {
		return p.DisplayName()
	}
	return providerName
}

// maskAPIKey returns a masked version of an API key for display
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "***"
	}
	return key[:7] + "..." + key[len(key)-4:]
}

// isProviderConfigured reports whether the config or environment holds a key
func isProviderConfigured(cfg *config.Config, name string) bool {
	if pc, ok := cfg.Providers[name]; ok && pc.APIKey != "" {
		return true
	}
	return envKeySet(name)
}

// editProviders handles the providers section edit with submenu
func editProviders(cfg *config.Config) error {
	// default to "Done" after a key was entered
	defaultToExit := false

	for {
		var options []huh.Option[string]
		for _, name := range provider.ListProviders() {
			options = append(options, huh.NewOption(formatProviderOption(cfg, name), name))
		}
		options = append(options, huh.NewOption("Done", "back"))

		selected := ""
		if defaultToExit {
			selected = "back"
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Provider Settings").
					Description("Select a provider to configure API key").
					Options(options...).
					Value(&selected),
			),
		).WithTheme(getTheme())

		if err := form.Run(); err != nil {
			return err
		}

		if selected == "back" {
			return nil
		}

		apiKey, err := configureSingleProvider(cfg, selected)
		if err != nil {
			continue
		}

		if apiKey != "" {
			setAPIKey(cfg, selected, apiKey)
			defaultToExit = true
		}
	}
}

// formatProviderOption formats a provider menu option with status
func formatProviderOption(cfg *config.Config, name string) string {
	status := "(not configured)"
	if pc, exists := cfg.Providers[name]; exists && pc.APIKey != "" {
		status = "(configured)"
	} else if envKeySet(name) {
		status = fmt.Sprintf("(from %s)", provider.EnvVarForProvider(name))
	}

	p := provider.GetProvider(name)
	if p == nil {
		return fmt.Sprintf("%s %s", name, status)
	}
	return fmt.Sprintf("%s - %d models, %d with vision %s", p.DisplayName(), len(p.Models()), len(provider.VisionModels(p)), status)
}

func setAPIKey(cfg *config.Config, name, apiKey string) {
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]config.ProviderConfig)
	}
	cfg.Providers[name] = config.ProviderConfig{APIKey: apiKey}
}

// configureSingleProvider asks before replacing an existing key. It returns
// the new key, or "" if the user kept the current one.
func configureSingleProvider(cfg *config.Config, providerName string) (string, error) {
	var existingKey string
	if pc, exists := cfg.Providers[providerName]; exists && pc.APIKey != "" {
		existingKey = pc.APIKey
	}

	if existingKey != "" {
		displayName := getProviderDisplayName(providerName)

		var update bool
		confirmForm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("%s API Key", displayName)).
					Description(fmt.Sprintf("Current: %s", maskAPIKey(existingKey))).
					Affirmative("Update key").
					Negative("Keep current").
					Value(&update),
			),
		).WithTheme(getTheme())

		if err := confirmForm.Run(); err != nil {
			return "", err
		}

		if !update {
			return "", nil
		}
	}

	return inputAPIKey(providerName)
}

func inputAPIKey(providerName string) (string, error) {
	p := provider.GetProvider(providerName)
	displayName := getProviderDisplayName(providerName)

	description := fmt.Sprintf("Enter your %s API key", displayName)
	if p != nil && p.APIKeyURL() != "" {
		description += fmt.Sprintf(" (%s)", p.APIKeyURL())
	}

	var apiKey string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("%s API Key", displayName)).
				Description(description).
				EchoMode(huh.EchoModePassword).
				Value(&apiKey).
				Validate(func(s string) error {
					return validateAPIKey(p, displayName, s)
				}),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return "", err
	}

	return apiKey, nil
}

func validateAPIKey(p provider.Provider, displayName, key string) error {
	if key == "" {
		return fmt.Errorf("API key is required")
	}
	if p != nil && !p.ValidateAPIKey(key) {
		return fmt.Errorf("invalid API key format for %s", displayName)
	}
	return nil
}

// ensureProviderConfigured prompts for an API key if neither the config nor
// the environment has one
func ensureProviderConfigured(cfg *config.Config, providerName string) {
	if isProviderConfigured(cfg, providerName) {
		return
	}

	apiKey, err := configureSingleProvider(cfg, providerName)
	if err != nil || apiKey == "" {
		return
	}
	setAPIKey(cfg, providerName, apiKey)
}
