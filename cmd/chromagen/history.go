package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leonardotrapani/chromagen/internal/config"
	"github.com/leonardotrapani/chromagen/internal/history"
	"github.com/leonardotrapani/chromagen/internal/ui"
)

func historyCmd(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List, show or clear recently generated palettes",
	}

	cmd.AddCommand(historyListCmd(), historyShowCmd(global), historyClearCmd())
	return cmd
}

func loadHistory() (*history.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return openHistory(cfg)
}

func historyListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent palettes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadHistory()
			if err != nil {
				return err
			}
			entries, err := store.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			printHistory(out, entries)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")
	return cmd
}

func printHistory(out io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No palettes yet")
		return
	}
	for _, e := range entries {
		hexes := e.Palette.Hexes()
		fmt.Fprintf(out, "%d  %s  %-40s  %s %s %s %s %s\n",
			e.ID,
			e.Timestamp.Local().Format("2006-01-02 15:04"),
			truncateString(e.Prompt, 37),
			hexes[0], hexes[1], hexes[2], hexes[3], hexes[4])
	}
}

func historyShowCmd(global *globalOptions) *cobra.Command {
	var withReport bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one palette from history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			store, err := loadHistory()
			if err != nil {
				return err
			}
			entry, err := store.Get(id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Prompt: %s\n", entry.Prompt)
			return printPalette(out, global.renderOptions(), entry.Spec, entry.Palette, withReport)
		},
	}

	cmd.Flags().BoolVar(&withReport, "report", false, "include the accessibility report")
	return cmd
}

func historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadHistory()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			ui.LogStatus("success", "History cleared")
			return nil
		},
	}
}
