package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leonardotrapani/chromagen/internal/accessibility"
	"github.com/leonardotrapani/chromagen/internal/config"
	"github.com/leonardotrapani/chromagen/internal/harmony"
	"github.com/leonardotrapani/chromagen/internal/render"
	"github.com/leonardotrapani/chromagen/internal/ui"
)

const defaultPreviewFile = "chromagen-preview.html"

type previewOptions struct {
	seed      seedFlags
	historyID int64
	templates []string
	out       string
	noReport  bool
}

func previewCmd() *cobra.Command {
	var opts previewOptions

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Write a standalone HTML page previewing a palette in sample layouts",
		Long: `Write a standalone HTML page with the palette swatches, the sample layouts
(website, mobile, dashboard, card, poster) and the accessibility report.

The palette comes from --history or from the seed flags. The configured
default template is shown first unless --template is given.`,
		Example: `  chromagen preview --base "#00ff9d" --harmony Split-Complementary --mood Cyberpunk
  chromagen preview --history 1729000000000 --template card --out card.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			spec, palette, err := previewPalette(cfg, &opts)
			if err != nil {
				return err
			}

			templates, err := previewTemplates(cfg.Render.Template, opts.templates)
			if err != nil {
				return err
			}

			pageOpts := render.PageOptions{
				Title:     fmt.Sprintf("chromagen %s", spec.BaseColor),
				Spec:      spec,
				Templates: templates,
			}
			if !opts.noReport {
				report, err := accessibility.Build(palette)
				if err != nil {
					return err
				}
				pageOpts.Report = &report
			}

			page, err := render.Page(palette, pageOpts)
			if err != nil {
				return err
			}

			if opts.out == "-" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), page)
				return err
			}
			if err := os.WriteFile(opts.out, []byte(page), 0644); err != nil {
				return fmt.Errorf("failed to write preview: %w", err)
			}
			ui.LogStatus("success", fmt.Sprintf("Preview written to %s", opts.out))
			return nil
		},
	}

	opts.seed.register(cmd, harmony.DefaultBaseColor)
	cmd.Flags().Int64Var(&opts.historyID, "history", 0, "use the palette of this history entry")
	cmd.Flags().StringSliceVarP(&opts.templates, "template", "t", nil, "layouts to include (default all)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", defaultPreviewFile, "output file, - for stdout")
	cmd.Flags().BoolVar(&opts.noReport, "no-report", false, "leave the accessibility report out")

	return cmd
}

func previewPalette(cfg *config.Config, opts *previewOptions) (harmony.Spec, harmony.Palette, error) {
	if opts.historyID == 0 {
		spec, err := opts.seed.spec()
		if err != nil {
			return harmony.Spec{}, harmony.Palette{}, err
		}
		palette, err := harmony.GenerateSpec(spec)
		return spec, palette, err
	}

	store, err := openHistory(cfg)
	if err != nil {
		return harmony.Spec{}, harmony.Palette{}, err
	}
	entry, err := store.Get(opts.historyID)
	if err != nil {
		return harmony.Spec{}, harmony.Palette{}, err
	}
	return entry.Spec, entry.Palette, nil
}

// previewTemplates resolves --template, or puts the configured default first
// followed by the remaining layouts.
func previewTemplates(preferred string, names []string) ([]render.Template, error) {
	if len(names) > 0 {
		var out []render.Template
		for _, name := range names {
			t, err := render.ParseTemplate(name)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
		return out, nil
	}

	first, err := render.ParseTemplate(preferred)
	if err != nil {
		ui.LogStatus("warning", fmt.Sprintf("Unknown default template %q, showing all layouts", preferred))
		return render.Templates(), nil
	}
	out := []render.Template{first}
	for _, t := range render.Templates() {
		if t != first {
			out = append(out, t)
		}
	}
	return out, nil
}
