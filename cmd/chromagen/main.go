package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/leonardotrapani/chromagen/internal/config"
	"github.com/leonardotrapani/chromagen/internal/harmony"
	"github.com/leonardotrapani/chromagen/internal/history"
	"github.com/leonardotrapani/chromagen/internal/llm"
	"github.com/leonardotrapani/chromagen/internal/pipeline"
	"github.com/leonardotrapani/chromagen/internal/render"
	"github.com/leonardotrapani/chromagen/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	loadDotEnv()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadDotEnv reads provider keys from ./.env when present.
func loadDotEnv() {
	_ = godotenv.Load()
}

type globalOptions struct {
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:           "chromagen",
		Short:         "Generate accessible color palettes from a prompt, an image or a base color",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !opts.verbose {
				log.SetOutput(io.Discard)
			} else {
				log.SetOutput(os.Stderr)
			}
			// status lines never mix with palette output on stdout
			ui.Output = color.Error
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline and config activity to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		generateCmd(&opts),
		reportCmd(&opts),
		nameCmd(),
		contrastCmd(),
		simulateCmd(),
		previewCmd(),
		historyCmd(&opts),
		serveCmd(),
		configureCmd(),
		modelsCmd(),
		testModelsCmd(),
	)

	return rootCmd
}

func (o *globalOptions) renderOptions() render.Options {
	if o.noColor {
		return render.Options{Profile: termenv.Ascii}
	}
	return render.DefaultOptions()
}

// newPipeline wires the resolver, cache and history store from cfg. A
// misconfigured provider is reported and the pipeline runs offline.
func newPipeline(cfg *config.Config, withHistory bool) (*pipeline.Pipeline, *history.Store, error) {
	var resolver llm.Resolver
	if cfg.IsLLMEnabled() {
		r, err := llm.NewResolver(cfg.ToLLMConfig())
		if err != nil {
			ui.LogStatus("warning", fmt.Sprintf("Prompt model unavailable, running offline: %v", err))
		} else {
			resolver = r
		}
	}

	var store *history.Store
	if withHistory && cfg.History.Enabled {
		path, err := cfg.HistoryPath()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve history path: %w", err)
		}
		store = history.New(path, cfg.History.Capacity)
	}

	cache := harmony.NewCache(cfg.Server.Cache)
	if store == nil {
		return pipeline.New(resolver, cache, nil), nil, nil
	}
	return pipeline.New(resolver, cache, store), store, nil
}

func openHistory(cfg *config.Config) (*history.Store, error) {
	path, err := cfg.HistoryPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve history path: %w", err)
	}
	return history.New(path, cfg.History.Capacity), nil
}

// seedFlags are the --base/--harmony/--mood flags shared by several commands.
type seedFlags struct {
	base    string
	harmony string
	mood    string
}

func (f *seedFlags) register(cmd *cobra.Command, baseDefault string) {
	cmd.Flags().StringVar(&f.base, "base", baseDefault, "base color as #rrggbb")
	cmd.Flags().StringVar(&f.harmony, "harmony", string(harmony.Analogous), "harmony rule: "+joinRules())
	cmd.Flags().StringVar(&f.mood, "mood", string(harmony.Standard), "mood: "+joinMoods())
}

func (f *seedFlags) spec() (harmony.Spec, error) {
	spec := harmony.Spec{
		BaseColor: f.base,
		Harmony:   harmony.Rule(f.harmony),
		Mood:      harmony.Mood(f.mood),
	}
	normalized, err := spec.Normalize()
	if err != nil {
		return harmony.Spec{}, fmt.Errorf("invalid --base: %w", err)
	}
	if !normalized.Harmony.Known() {
		ui.LogStatus("warning", fmt.Sprintf("Unknown harmony %q, using the fallback offsets", f.harmony))
	}
	if !normalized.Mood.Known() {
		ui.LogStatus("warning", fmt.Sprintf("Unknown mood %q, no adjustment applied", f.mood))
	}
	return normalized, nil
}

func joinRules() string {
	var names []string
	for _, r := range harmony.Rules() {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}

func joinMoods() string {
	var names []string
	for _, m := range harmony.Moods() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

var errNotAnImage = errors.New("not an image")

// readImage loads path and sniffs its MIME type.
func readImage(path string) (*llm.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("%w: %s is %s", errNotAnImage, path, mime)
	}
	return &llm.Image{MIMEType: mime, Data: data}, nil
}
