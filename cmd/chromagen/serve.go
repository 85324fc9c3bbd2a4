package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/leonardotrapani/chromagen/internal/config"
	"github.com/leonardotrapani/chromagen/internal/llm"
	"github.com/leonardotrapani/chromagen/internal/server"
	"github.com/leonardotrapani/chromagen/internal/ui"
)

func serveCmd() *cobra.Command {
	var listen string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the palette API over HTTP",
		Long: `Serve generation, reports, exports, layout previews and history as a JSON
API. The config file is watched; provider and model changes apply without a
restart.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(os.Stderr)

			manager, err := config.NewManager()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg := manager.GetConfig()

			p, store, err := newPipeline(cfg, true)
			if err != nil {
				return err
			}

			srvCfg := cfg.ToServerConfig()
			if listen != "" {
				srvCfg.Listen = listen
			}
			srvCfg.LogRequests = !quiet

			var hist server.HistoryLister
			if store != nil {
				hist = store
			}
			srv := server.New(srvCfg, p, hist)

			manager.OnReload(func(next *config.Config) {
				if !next.IsLLMEnabled() {
					p.SetResolver(nil)
					ui.LogStatus("info", "Config reloaded, prompt model disabled")
					return
				}
				r, err := llm.NewResolver(next.ToLLMConfig())
				if err != nil {
					ui.LogStatus("warning", fmt.Sprintf("Config reloaded, keeping previous model: %v", err))
					return
				}
				p.SetResolver(r)
				ui.LogStatus("info", fmt.Sprintf("Config reloaded, prompt model %s/%s", next.LLM.Provider, next.LLM.Model))
			})

			ctx := cmd.Context()
			if err := manager.StartWatching(ctx); err != nil {
				ui.LogStatus("warning", fmt.Sprintf("Config changes will need a restart: %v", err))
			}
			defer manager.Stop()

			mode := "offline"
			if p.Online() {
				mode = fmt.Sprintf("%s/%s", cfg.LLM.Provider, cfg.LLM.Model)
			}
			metrics := "off"
			if srvCfg.Metrics {
				metrics = "/metrics"
			}

			ui.PrintBanner(version)
			ui.LogGroupItem("Listen", "http://"+srv.Addr())
			ui.LogGroupItem("Model", mode)
			ui.LogGroupItem("Metrics", metrics)
			if store != nil {
				ui.LogGroupItem("History", store.Path())
			}
			ui.PrintSeparator()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "address to listen on (overrides server.listen)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not log each request")

	return cmd
}
