package tui

import (
	"fmt"
	"net"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/leonardotrapani/chromagen/internal/config"
	"github.com/leonardotrapani/chromagen/internal/render"
)

// editServer handles the HTTP API settings
func editServer(cfg *config.Config) error {
	listen := cfg.Server.Listen
	corsOrigin := cfg.Server.CORSOrigin
	metrics := cfg.Server.Metrics
	cache := strconv.Itoa(cfg.Server.Cache)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Listen Address").
				Description("host:port for \"chromagen serve\"").
				Placeholder("127.0.0.1:8080").
				Value(&listen).
				Validate(validateListen),
			huh.NewInput().
				Title("CORS Origin").
				Description("Access-Control-Allow-Origin sent with every response").
				Placeholder("*").
				Value(&corsOrigin),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Expose Prometheus metrics on /metrics?").
				Value(&metrics),
			huh.NewInput().
				Title("Palette Cache").
				Description("Palettes kept in memory").
				Placeholder("1024").
				Value(&cache).
				Validate(func(s string) error {
					_, err := parsePositiveInt(s)
					return err
				}),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Server.Listen = listen
	cfg.Server.CORSOrigin = corsOrigin
	cfg.Server.Metrics = metrics
	cfg.Server.Cache, _ = parsePositiveInt(cache)
	return nil
}

// editHistory handles the history settings
func editHistory(cfg *config.Config) error {
	enabled := cfg.History.Enabled
	path := cfg.History.Path
	capacity := strconv.Itoa(cfg.History.Capacity)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Record generated palettes?").
				Value(&enabled),
			huh.NewInput().
				Title("History File").
				Description("Empty = user cache directory").
				Placeholder("(default)").
				Value(&path),
			huh.NewInput().
				Title("Capacity").
				Description("Entries kept, newest first").
				Placeholder("10").
				Value(&capacity).
				Validate(func(s string) error {
					_, err := parsePositiveInt(s)
					return err
				}),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.History.Enabled = enabled
	cfg.History.Path = path
	cfg.History.Capacity, _ = parsePositiveInt(capacity)
	return nil
}

// editRender picks the default preview layout
func editRender(cfg *config.Config) error {
	selected := cfg.Render.Template

	var options []huh.Option[string]
	for _, t := range render.Templates() {
		options = append(options, huh.NewOption(string(t), string(t)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Preview Layout").
				Description("Layout \"chromagen preview\" shows first").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Render.Template = selected
	return nil
}

func validateListen(s string) error {
	if _, _, err := net.SplitHostPort(s); err != nil {
		return fmt.Errorf("must be host:port (e.g. 127.0.0.1:8080)")
	}
	return nil
}

func parsePositiveInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("must be a number")
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be greater than zero")
	}
	return v, nil
}
