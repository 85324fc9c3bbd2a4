package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/leonardotrapani/chromagen/internal/config"
	"github.com/leonardotrapani/chromagen/internal/provider"
	"github.com/leonardotrapani/chromagen/internal/tui"
)

func configureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactive configuration setup",
		Long: `Interactive configuration wizard for chromagen.
Walks through provider API keys, the prompt model, the HTTP API, history and
preview settings, and saves them to the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure(cmd.OutOrStdout())
		},
	}
}

func runConfigure(out io.Writer) error {
	existing, err := config.Load()
	if err != nil {
		fmt.Fprintf(out, "Could not read the current config (%v), starting from defaults\n", err)
		existing = config.DefaultConfig()
	}

	result, err := tui.Run(existing)
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}
	if result.Cancelled {
		fmt.Fprintln(out, tui.StyleWarning.Render("Configuration cancelled, nothing saved"))
		return nil
	}

	if err := result.Config.Validate(); err != nil {
		fmt.Fprintln(out, tui.StyleError.Render("Not saved: "+err.Error()))
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := config.Save(result.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	path, _ := config.GetConfigPath()
	fmt.Fprintln(out, tui.StyleSuccess.Render("Configuration saved to "+path))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, tui.StyleMuted.Render("  chromagen generate \"a calm forest morning\""))
	fmt.Fprintln(out, tui.StyleMuted.Render("  chromagen serve"))
	return nil
}

func modelsCmd() *cobra.Command {
	var providerName string
	var visionOnly bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the models each provider offers",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := provider.ListProviders()
			if providerName != "" {
				if provider.GetProvider(providerName) == nil {
					return fmt.Errorf("unknown provider: %s", providerName)
				}
				names = []string{providerName}
			}

			out := cmd.OutOrStdout()
			for i, name := range names {
				p := provider.GetProvider(name)
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s (%s)\n", p.DisplayName(), name)
				for _, m := range p.Models() {
					if visionOnly && !m.Vision {
						continue
					}
					printModelLine(out, m, m.ID == p.DefaultModel())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&providerName, "provider", "p", "", "only list this provider")
	cmd.Flags().BoolVar(&visionOnly, "vision", false, "only list models that accept images")

	return cmd
}

func printModelLine(out io.Writer, m provider.Model, isDefault bool) {
	marker := " "
	if isDefault {
		marker = "*"
	}
	line := fmt.Sprintf("  %s %-45s", marker, m.ID)
	if m.Vision {
		line += " [vision]"
	} else {
		line += "         "
	}
	if m.Description != "" {
		line += " " + m.Description
	}
	fmt.Fprintln(out, line)
}
