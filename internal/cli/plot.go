package cli

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/faizmokh/nadi/internal/config"
	"github.com/faizmokh/nadi/internal/measure"
	"github.com/faizmokh/nadi/internal/ui"
)

func newPlotCommand(cfg config.Config) *cobra.Command {
	var (
		noChart    bool
		jsonOutput bool
		width      int
		height     int
	)

	cmd := &cobra.Command{
		Use:   "plot READING...",
		Short: "Validate readings, then print the saved list and chart.",
		Long: "plot enters each reading (120/80/70 or systolic=120,diastolic=80,pulse=70) into the form and saves it.\n" +
			"Readings with a zero field are reported and skipped. Put -- before readings that start with a minus sign.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := setupLogging(cfg.Log.File)
			if err != nil {
				return err
			}
			defer closeLog()

			tracker := measure.NewTracker()
			for _, reading := range args {
				if err := enterReading(tracker, reading); err != nil {
					return err
				}
				if !tracker.Save() {
					log.Printf("rejected reading %q", reading)
					fmt.Fprintf(cmd.ErrOrStderr(), "rejected %s: %s\n", reading, formatFieldErrors(tracker.Errors()))
					// Start the next reading from a clean draft.
					for _, f := range measure.Fields {
						tracker.UpdateField(f, "")
					}
				}
			}

			if jsonOutput {
				raw, err := json.MarshalIndent(tracker.Chart(), "", "  ")
				if err != nil {
					return fmt.Errorf("encode chart data: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return nil
			}

			printMeasurements(cmd, tracker.Measurements())
			if cfg.UI.Chart && !noChart {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), ui.RenderChart(tracker.Chart(), width, height))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noChart, "no-chart", false, "Skip the chart")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print chart data as JSON instead of the list")
	cmd.Flags().IntVar(&width, "width", 72, "Chart width in columns")
	cmd.Flags().IntVar(&height, "height", cfg.UI.ChartHeight, "Chart height in rows")

	return cmd
}
