package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")
	colorAccent    = lipgloss.Color("#58a6ff")
	colorGreen     = lipgloss.Color("#3fb950")
	colorRed       = lipgloss.Color("#f85149")
	colorDivider   = lipgloss.Color("#30363d")

	// Series colours match the chart dataset border colours, in field order.
	seriesColors = []lipgloss.Color{
		lipgloss.Color("#ff6384"),
		lipgloss.Color("#4bc0c0"),
		lipgloss.Color("#36a2eb"),
	}
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	labelFocusedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			PaddingLeft(2)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorDivider).
			Padding(0, 1).
			MarginTop(1)

	entryStyle = lipgloss.NewStyle().
			Foreground(colorText)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	statusOkStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	statusFailStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	axisStyle = lipgloss.NewStyle().
			Foreground(colorDivider)

	axisLabelStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)
