package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leonardotrapani/chromagen/internal/accessibility"
	"github.com/leonardotrapani/chromagen/internal/colorspace"
	"github.com/leonardotrapani/chromagen/internal/export"
	"github.com/leonardotrapani/chromagen/internal/harmony"
)

func reportCmd(global *globalOptions) *cobra.Command {
	var seed seedFlags
	var asJSON bool
	var file string

	cmd := &cobra.Command{
		Use:   "report [background text primary secondary accent]",
		Short: "Show the contrast and color-blindness report for a palette",
		Long: `Report on five explicit colors in role order, a palette file written by
generate --format json|yaml, or the palette generated from
--base/--harmony/--mood.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 5 {
				return fmt.Errorf("expected 0 or 5 colors, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var palette harmony.Palette
			var err error
			if file != "" {
				palette, err = paletteFromFile(file)
			} else {
				palette, err = paletteFromArgs(args, &seed)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				report, err := accessibility.Build(palette)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return printReport(out, global.renderOptions(), palette)
		},
	}

	seed.register(cmd, harmony.DefaultBaseColor)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&file, "file", "", "read the palette from a JSON or YAML export")

	return cmd
}

// paletteFromArgs builds a palette from five hex arguments in role order, or
// generates one from the seed flags when no arguments are given.
func paletteFromArgs(args []string, seed *seedFlags) (harmony.Palette, error) {
	if len(args) == 0 {
		spec, err := seed.spec()
		if err != nil {
			return harmony.Palette{}, err
		}
		return harmony.GenerateSpec(spec)
	}

	var p harmony.Palette
	roles := harmony.Roles()
	for i, arg := range args {
		hex, err := colorspace.NormalizeHex(arg)
		if err != nil {
			return harmony.Palette{}, fmt.Errorf("%s: %w", roles[i], err)
		}
		p[i] = harmony.Color{Hex: hex, Role: roles[i]}
	}
	return p, nil
}

func paletteFromFile(path string) (harmony.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return harmony.Palette{}, fmt.Errorf("failed to read palette: %w", err)
	}
	return export.Parse(data)
}

func nameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <hex>",
		Short: "Print the nearest named color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := colorspace.NormalizeHex(args[0])
			if err != nil {
				return err
			}
			name, err := colorspace.NearestColorName(hex)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", hex, name)
			return nil
		},
	}
}

func contrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <hexA> <hexB>",
		Short: "Print the WCAG contrast ratio between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio, err := colorspace.ContrastRatio(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f:1 (%s)\n", ratio, accessibility.Classify(ratio))
			return nil
		},
	}
}

func simulateCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "simulate <hex>",
		Short: "Show how a color appears with protanopia, deuteranopia or tritanopia",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := colorspace.Deficiencies()
			if kind != "" {
				d, err := colorspace.ParseDeficiency(kind)
				if err != nil {
					return err
				}
				kinds = []colorspace.Deficiency{d}
			}

			for _, d := range kinds {
				sim, err := colorspace.SimulateColorBlindness(args[0], d)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", d.Label(), sim)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "protanopia, deuteranopia or tritanopia (default all)")

	return cmd
}
