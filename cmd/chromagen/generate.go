package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leonardotrapani/chromagen/internal/accessibility"
	"github.com/leonardotrapani/chromagen/internal/config"
	"github.com/leonardotrapani/chromagen/internal/export"
	"github.com/leonardotrapani/chromagen/internal/harmony"
	"github.com/leonardotrapani/chromagen/internal/pipeline"
	"github.com/leonardotrapani/chromagen/internal/render"
	"github.com/leonardotrapani/chromagen/internal/ui"
)

const formatSwatch = "swatch"

type generateOptions struct {
	seed      seedFlags
	image     string
	format    string
	report    bool
	noHistory bool
}

func generateCmd(global *globalOptions) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [prompt...]",
		Short: "Generate a palette from a prompt, an image or a base color",
		Long: `Generate a five-color palette (Background, Text, Primary, Secondary, Accent).

With --base the palette is computed directly from the base color, harmony
rule and mood. Otherwise the prompt and/or --image are resolved into a seed
by the configured model; without one, images are analyzed locally and text
prompts use the default seed.`,
		Example: `  chromagen generate "cyberpunk alley at night"
  chromagen generate --image photo.jpg --format css
  chromagen generate --base "#1e3a8a" --harmony Monochromatic --report`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.seed.base == "" && (cmd.Flags().Changed("harmony") || cmd.Flags().Changed("mood")) {
				return fmt.Errorf("--harmony and --mood require --base")
			}
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), global, opts, strings.Join(args, " "))
		},
	}

	opts.seed.register(cmd, "")
	cmd.Flags().StringVar(&opts.image, "image", "", "image file to derive the palette from")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSwatch, "output: swatch, css, tailwind, json, yaml")
	cmd.Flags().BoolVar(&opts.report, "report", false, "append the accessibility report (swatch output only)")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "do not record this palette")

	return cmd
}

func runGenerate(ctx context.Context, out io.Writer, global *globalOptions, opts generateOptions, prompt string) error {
	var format export.Format
	if opts.format != formatSwatch {
		f, err := export.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		if opts.report {
			return fmt.Errorf("--report only applies to swatch output")
		}
		format = f
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p, _, err := newPipeline(cfg, !opts.noHistory)
	if err != nil {
		return err
	}

	var spec harmony.Spec
	var palette harmony.Palette

	if opts.seed.base != "" {
		if prompt != "" || opts.image != "" {
			return fmt.Errorf("--base cannot be combined with a prompt or --image")
		}
		spec, err = opts.seed.spec()
		if err != nil {
			return err
		}
		palette, err = p.Generate(spec)
		if err != nil {
			return err
		}
	} else {
		req := pipeline.Request{Prompt: prompt, NoHistory: opts.noHistory}
		if opts.image != "" {
			req.Image, err = readImage(opts.image)
			if err != nil {
				return err
			}
		}

		timeout := cfg.LLM.Timeout
		if timeout <= 0 {
			timeout = config.DefaultConfig().LLM.Timeout
		}
		runCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		res, err := p.Run(runCtx, req)
		if err != nil {
			return err
		}
		for _, w := range res.Warnings {
			ui.LogStatus("warning", w)
		}
		spec, palette = res.Spec, res.Palette
	}

	if format != "" {
		text, err := export.Render(format, palette)
		if err != nil {
			return err
		}
		fmt.Fprint(out, text)
		return nil
	}

	return printPalette(out, global.renderOptions(), spec, palette, opts.report)
}

func printPalette(out io.Writer, ropts render.Options, spec harmony.Spec, palette harmony.Palette, withReport bool) error {
	swatches, err := render.Swatches(palette, ropts)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Seed: %s / %s / %s\n\n", spec.BaseColor, spec.Harmony, spec.Mood)
	fmt.Fprintln(out, swatches)

	if !withReport {
		return nil
	}
	return printReport(out, ropts, palette)
}

func printReport(out io.Writer, ropts render.Options, palette harmony.Palette) error {
	report, err := accessibility.Build(palette)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Contrast (WCAG 2.1)")
	fmt.Fprintln(out, render.ContrastTable(report.Contrast, ropts))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Color blindness")
	fmt.Fprintln(out, render.ColorBlindTable(report.ColorBlindness, ropts))
	return nil
}
