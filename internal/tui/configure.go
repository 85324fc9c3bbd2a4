// Package tui implements the interactive "chromagen configure" menu.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/leonardotrapani/chromagen/internal/config"
)

// ConfigureResult holds the configuration result from the TUI
type ConfigureResult struct {
	Config    *config.Config
	Cancelled bool
}

// ConfigSection represents a configuration section
type ConfigSection string

const (
	SectionProviders   ConfigSection = "providers"
	SectionLLM         ConfigSection = "llm"
	SectionServer      ConfigSection = "server"
	SectionHistory     ConfigSection = "history"
	SectionRender      ConfigSection = "render"
	SectionSaveExit    ConfigSection = "save_exit"
	SectionDiscardExit ConfigSection = "discard_exit"
)

// Run starts the configuration menu on a copy of cfg. The caller saves the
// returned config.
func Run(existingConfig *config.Config) (*ConfigureResult, error) {
	cfg := config.DefaultConfig()
	if existingConfig != nil {
		copied := *existingConfig
		copied.Providers = make(map[string]config.ProviderConfig, len(existingConfig.Providers))
		for name, pc := range existingConfig.Providers {
			copied.Providers[name] = pc
		}
		cfg = &copied
	}

	for {
		clearScreen()
		fmt.Println(Logo())
		fmt.Println()

		section, err := selectSection(cfg)
		if err != nil {
			return &ConfigureResult{Cancelled: true}, nil
		}

		switch section {
		case SectionSaveExit:
			confirmed, err := showSummary(cfg)
			if err != nil {
				return &ConfigureResult{Cancelled: true}, nil
			}
			if confirmed {
				return &ConfigureResult{Config: cfg, Cancelled: false}, nil
			}

		case SectionDiscardExit:
			return &ConfigureResult{Cancelled: true}, nil

		case SectionProviders:
			if err := editProviders(cfg); err != nil {
				continue
			}

		case SectionLLM:
			if err := editLLM(cfg); err != nil {
				continue
			}

		case SectionServer:
			if err := editServer(cfg); err != nil {
				continue
			}

		case SectionHistory:
			if err := editHistory(cfg); err != nil {
				continue
			}

		case SectionRender:
			if err := editRender(cfg); err != nil {
				continue
			}
		}
	}
}

func selectSection(cfg *config.Config) (ConfigSection, error) {
	options := []huh.Option[ConfigSection]{
		huh.NewOption(formatProvidersLabel(cfg), SectionProviders),
		huh.NewOption(formatLLMLabel(cfg), SectionLLM),
		huh.NewOption(formatServerLabel(cfg), SectionServer),
		huh.NewOption(formatHistoryLabel(cfg), SectionHistory),
		huh.NewOption(formatRenderLabel(cfg), SectionRender),
		huh.NewOption("Save & Exit", SectionSaveExit),
		huh.NewOption("Discard & Exit", SectionDiscardExit),
	}

	var selected ConfigSection
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[ConfigSection]().
				Title("Configuration Menu").
				Description("↑/↓ navigate • enter select • esc cancel").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return "", err
	}

	return selected, nil
}

// clearScreen clears the terminal screen
func clearScreen() {
	output := termenv.NewOutput(os.Stdout)
	output.ClearScreen()
}

func getTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Focused.Base = lipgloss.NewStyle().BorderForeground(ColorPrimary)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorText)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(ColorSubtle)

	return t
}
