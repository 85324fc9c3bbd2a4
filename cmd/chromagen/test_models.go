package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/leonardotrapani/chromagen/internal/config"
	"github.com/leonardotrapani/chromagen/internal/llm"
	"github.com/leonardotrapani/chromagen/internal/provider"
)

const defaultTestPrompt = "a quiet harbor at dawn with fishing boats"

type testModelsOptions struct {
	prompt     string
	provider   string
	timeout    time.Duration
	outputPath string
	noImage    bool
}

type modelTest struct {
	provider string
	model    provider.Model
	input    string
}

type modelTestResult struct {
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Input      string `json:"input"`
	Status     string `json:"status"`
	DurationMS int64  `json:"duration_ms"`
	Output     string `json:"output,omitempty"`
	Error      string `json:"error,omitempty"`
}

type testReport struct {
	StartedAt  time.Time         `json:"started_at"`
	Prompt     string            `json:"prompt"`
	Results    []modelTestResult `json:"results"`
	PassCount  int               `json:"pass_count"`
	FailCount  int               `json:"fail_count"`
	SkipCount  int               `json:"skip_count"`
	TotalCount int               `json:"total_count"`
}

func testModelsCmd() *cobra.Command {
	var opts testModelsOptions

	cmd := &cobra.Command{
		Use:   "test-models",
		Short: "Resolve a sample prompt with every provider/model",
		Long: `Resolve a sample prompt with every known model, and a generated image with
every vision model. Models whose provider has no API key are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTestModels(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.prompt, "prompt", defaultTestPrompt, "prompt to resolve")
	cmd.Flags().StringVarP(&opts.provider, "provider", "p", "", "only test this provider")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 45*time.Second, "Per-model timeout")
	cmd.Flags().StringVar(&opts.outputPath, "output", "", "Write JSON report to file")
	cmd.Flags().BoolVar(&opts.noImage, "no-image", false, "Skip image tests for vision models")

	return cmd
}

func runTestModels(ctx context.Context, out io.Writer, opts testModelsOptions) error {
	if opts.timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if opts.provider != "" && provider.GetProvider(opts.provider) == nil {
		return fmt.Errorf("unknown provider: %s", opts.provider)
	}
	startedAt := time.Now().UTC()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sample, err := sampleImage()
	if err != nil {
		return err
	}

	var results []modelTestResult
	for _, test := range buildModelTests(opts) {
		results = append(results, runModelTest(ctx, cfg, test, opts, sample))
	}

	report := summarizeReport(startedAt, opts.prompt, results)
	printTestReport(out, report)

	if opts.outputPath != "" {
		if err := writeTestReport(opts.outputPath, report); err != nil {
			return err
		}
	}

	if report.FailCount > 0 {
		return fmt.Errorf("%d model tests failed", report.FailCount)
	}
	return nil
}

func buildModelTests(opts testModelsOptions) []modelTest {
	names := provider.ListProviders()
	if opts.provider != "" {
		names = []string{opts.provider}
	}

	var tests []modelTest
	for _, name := range names {
		p := provider.GetProvider(name)
		if p == nil {
			continue
		}
		models := p.Models()
		sort.Slice(models, func(i, j int) bool {
			return models[i].ID < models[j].ID
		})
		for _, model := range models {
			tests = append(tests, modelTest{provider: name, model: model, input: "prompt"})
			if model.Vision && !opts.noImage {
				tests = append(tests, modelTest{provider: name, model: model, input: "image"})
			}
		}
	}
	return tests
}

func runModelTest(ctx context.Context, cfg *config.Config, test modelTest, opts testModelsOptions, sample *llm.Image) modelTestResult {
	result := modelTestResult{
		Provider: test.provider,
		Model:    test.model.ID,
		Input:    test.input,
		Status:   "fail",
	}

	apiKey := resolveAPIKey(cfg, test.provider)
	if providerRequiresKey(test.provider) && apiKey == "" {
		result.Status = "skip"
		result.Error = "missing api key"
		return result
	}

	resolver, err := llm.NewResolver(llm.Config{
		Provider:    test.provider,
		APIKey:      apiKey,
		Model:       test.model.ID,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	if err != nil {
		result.Error = err.Error()
		return result
	}

	req := llm.Request{Prompt: opts.prompt}
	if test.input == "image" {
		req = llm.Request{Image: sample}
	}

	testCtx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	start := time.Now()
	spec, err := resolver.Resolve(testCtx, req)
	result.DurationMS = time.Since(start).Milliseconds()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			result.Error = "timeout"
		} else {
			result.Error = err.Error()
		}
		return result
	}

	result.Status = "pass"
	result.Output = spec.String()
	return result
}

func resolveAPIKey(cfg *config.Config, providerName string) string {
	if cfg != nil && cfg.Providers != nil {
		if pc, ok := cfg.Providers[providerName]; ok && pc.APIKey != "" {
			return pc.APIKey
		}
	}
	if envVar := provider.EnvVarForProvider(providerName); envVar != "" {
		return os.Getenv(envVar)
	}
	return ""
}

func providerRequiresKey(providerName string) bool {
	p := provider.GetProvider(providerName)
	if p == nil {
		return false
	}
	return p.RequiresAPIKey()
}

// sampleImage is a small teal-to-orange gradient PNG.
func sampleImage() (*llm.Image, error) {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t := float64(x) / float64(size-1)
			img.Set(x, y, color.RGBA{
				R: uint8(20 + t*220),
				G: uint8(140 - t*40),
				B: uint8(160 - t*130),
				A: 255,
			})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode sample image: %w", err)
	}
	return &llm.Image{MIMEType: "image/png", Data: buf.Bytes()}, nil
}

func summarizeReport(startedAt time.Time, prompt string, results []modelTestResult) testReport {
	report := testReport{
		StartedAt: startedAt,
		Prompt:    prompt,
		Results:   results,
	}
	for _, r := range results {
		report.TotalCount++
		switch r.Status {
		case "pass":
			report.PassCount++
		case "fail":
			report.FailCount++
		case "skip":
			report.SkipCount++
		}
	}
	return report
}

func printTestReport(out io.Writer, report testReport) {
	fmt.Fprintf(out, "test-models: total=%d pass=%d fail=%d skip=%d\n", report.TotalCount, report.PassCount, report.FailCount, report.SkipCount)
	fmt.Fprintf(out, "prompt: %s\n", report.Prompt)
	for _, r := range report.Results {
		line := fmt.Sprintf("%s %s/%s %s", r.Status, r.Provider, r.Model, r.Input)
		if r.DurationMS > 0 {
			line += fmt.Sprintf(" %dms", r.DurationMS)
		}
		if r.Error != "" {
			line += fmt.Sprintf(" error=%s", truncateString(r.Error, 160))
		}
		if r.Output != "" {
			line += fmt.Sprintf(" output=%q", truncateString(r.Output, 120))
		}
		fmt.Fprintln(out, line)
	}
}

func writeTestReport(path string, report testReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func truncateString(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
