package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/nadi/internal/config"
	"github.com/faizmokh/nadi/internal/measure"
	"github.com/faizmokh/nadi/internal/ui"
	"github.com/faizmokh/nadi/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(cfg config.Config) *cobra.Command {
	var (
		noChart     bool
		chartHeight int
	)

	cmd := &cobra.Command{
		Use:     "nadi",
		Short:   "Record blood-pressure readings and chart them in your terminal.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := setupLogging(cfg.Log.File)
			if err != nil {
				return err
			}
			defer closeLog()

			opts := ui.Options{
				ShowChart:   cfg.UI.Chart && !noChart,
				ChartHeight: cfg.UI.ChartHeight,
			}
			if cmd.Flags().Changed("chart-height") {
				opts.ChartHeight = chartHeight
			}

			m := ui.NewModel(measure.NewTracker(), opts)
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&noChart, "no-chart", false, "Hide the measurement chart")
	cmd.Flags().IntVar(&chartHeight, "chart-height", cfg.UI.ChartHeight, "Chart height in rows")

	cmd.AddCommand(
		newPlotCommand(cfg),
		newVersionCommand(),
	)

	return cmd
}

// setupLogging sends the standard logger to path, or discards it when path is
// empty so log lines never land on the TUI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "nadi")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cmd := NewRootCommand(cfg)
	return cmd.Execute()
}

// Main is a helper used by cmd/nadi/main.go to keep wiring contained in one package.
func Main() {
	if err := ExecuteCommand(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
