package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/nadi/internal/measure"
)

const minChartWidth = 24

// Measurement positions are plotted as whole seconds past the epoch so the
// time-series chart spaces them evenly; labels map them back to positions.
func positionTime(pos int) time.Time {
	return time.Unix(int64(pos), 0)
}

// RenderChart draws the derived series as a braille line chart with a legend
// underneath. NaN readings are skipped.
func RenderChart(data measure.ChartData, width, height int) string {
	if len(data.Labels) == 0 {
		return emptyStateStyle.Render("No measurements to plot yet.")
	}
	if width < minChartWidth {
		width = minChartWidth
	}

	yMin, yMax := seriesBounds(data)

	chart := tslc.New(width, height)
	chart.SetXStep(1)
	chart.SetYStep(2)
	chart.AxisStyle = axisStyle
	chart.LabelStyle = axisLabelStyle

	// A single point still needs a non-empty x range.
	start, end := positionTime(1), positionTime(len(data.Labels))
	if len(data.Labels) == 1 {
		start, end = positionTime(0), positionTime(2)
	}
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(yMin, yMax)
	chart.SetViewYRange(yMin, yMax)
	chart.Model.XLabelFormatter = positionLabelFormatter(len(data.Labels))
	chart.Model.YLabelFormatter = valueLabelFormatter()

	for i, ds := range data.Datasets {
		chart.SetDataSetStyle(ds.Label, lipgloss.NewStyle().Foreground(seriesColor(i)))
		for j, v := range ds.Data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			chart.PushDataSet(ds.Label, tslc.TimePoint{Time: positionTime(j + 1), Value: v})
		}
	}
	chart.DrawBrailleAll()

	return chart.View() + "\n" + renderLegend(data)
}

func renderLegend(data measure.ChartData) string {
	parts := make([]string, 0, len(data.Datasets))
	for i, ds := range data.Datasets {
		swatch := lipgloss.NewStyle().Foreground(seriesColor(i)).Render("──")
		parts = append(parts, swatch+" "+labelStyle.Render(ds.Label))
	}
	return strings.Join(parts, "   ")
}

func seriesColor(i int) lipgloss.Color {
	if i < len(seriesColors) {
		return seriesColors[i]
	}
	return colorText
}

func seriesBounds(data measure.ChartData) (float64, float64) {
	lo, hi := 0.0, 0.0
	for _, ds := range data.Datasets {
		for _, v := range ds.Data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.1
	if lo < 0 {
		lo -= pad
	}
	return lo, hi + pad
}

func positionLabelFormatter(count int) linechart.LabelFormatter {
	return func(_ int, v float64) string {
		pos := int(math.Round(v))
		if pos < 1 || pos > count || math.Abs(v-float64(pos)) > 0.25 {
			return ""
		}
		return fmt.Sprintf("#%d", pos)
	}
}

func valueLabelFormatter() linechart.LabelFormatter {
	return func(_ int, v float64) string {
		return fmt.Sprintf("%.0f", v)
	}
}
