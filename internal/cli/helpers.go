package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/nadi/internal/measure"
)

// enterReading feeds one reading into the tracker field by field. Accepted
// shapes are "120/80/70" and "systolic=120,diastolic=80,pulse=70"; fields
// left out of the keyed form stay at zero.
func enterReading(tracker *measure.Tracker, reading string) error {
	reading = strings.TrimSpace(reading)
	if reading == "" {
		return fmt.Errorf("empty reading")
	}

	if !strings.Contains(reading, "=") {
		parts := strings.Split(reading, "/")
		if len(parts) != len(measure.Fields) {
			return fmt.Errorf("reading %q: expected SYSTOLIC/DIASTOLIC/PULSE", reading)
		}
		for i, f := range measure.Fields {
			tracker.UpdateField(f, parts[i])
		}
		return nil
	}

	for _, pair := range strings.Split(reading, ",") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("reading %q: expected name=value, got %q", reading, pair)
		}
		if err := tracker.Set(name, value); err != nil {
			return fmt.Errorf("reading %q: %w", reading, err)
		}
	}
	return nil
}

func formatFieldErrors(errs measure.FieldErrors) string {
	messages := make([]string, 0, len(errs))
	for _, f := range measure.Fields {
		if msg, ok := errs[f]; ok {
			messages = append(messages, msg)
		}
	}
	return strings.Join(messages, "; ")
}

func printMeasurements(cmd *cobra.Command, measurements []measure.Measurement) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Measurements:")
	if len(measurements) == 0 {
		fmt.Fprintln(out, "(no measurements)")
		return
	}
	for i, m := range measurements {
		fmt.Fprintf(out, "%d. %s\n", i+1, m)
	}
}
