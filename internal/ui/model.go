package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/nadi/internal/measure"
)

const defaultWidth = 72

// Options tunes what the TUI renders.
type Options struct {
	ShowChart   bool
	ChartHeight int
}

// Model owns Bubble Tea state for the measurement form.
type Model struct {
	tracker *measure.Tracker
	inputs  []textinput.Model
	focus   int

	showChart   bool
	chartHeight int
	width       int

	statusLine string
	statusOk   bool
}

// NewModel wires a form around tracker with the systolic input focused.
func NewModel(tracker *measure.Tracker, opts Options) Model {
	inputs := make([]textinput.Model, len(measure.Fields))
	for i, f := range measure.Fields {
		inp := textinput.New()
		inp.Prompt = "> "
		inp.Placeholder = measure.FormatValue(tracker.Draft().Get(f))
		inp.CharLimit = 12
		inputs[i] = inp
	}
	inputs[0].Focus()

	height := opts.ChartHeight
	if height <= 0 {
		height = 12
	}

	return Model{
		tracker:     tracker,
		inputs:      inputs,
		showChart:   opts.ShowChart,
		chartHeight: height,
		width:       defaultWidth,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes key presses to the focused input or to form actions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	case "enter", "ctrl+s":
		return m.save()
	}

	field := measure.Fields[m.focus]
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if after := m.inputs[m.focus].Value(); after != before {
		m.tracker.UpdateField(field, after)
	}
	return m, cmd
}

func (m Model) moveFocus(dir int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + len(m.inputs)) % len(m.inputs)
	return m, m.inputs[m.focus].Focus()
}

func (m Model) save() (tea.Model, tea.Cmd) {
	draft := m.tracker.Draft()
	if !m.tracker.Save() {
		errs := m.tracker.Errors()
		names := make([]string, 0, len(errs))
		for _, f := range measure.Fields {
			if _, ok := errs[f]; ok {
				names = append(names, f.String())
			}
		}
		log.Printf("rejected measurement %s: missing %s", draft, strings.Join(names, ", "))
		m.statusLine = "Fix the highlighted fields."
		m.statusOk = false
		return m, nil
	}

	log.Printf("saved measurement %d: %s", m.tracker.Len(), draft)
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.statusLine = fmt.Sprintf("Saved measurement %d.", m.tracker.Len())
	m.statusOk = true
	return m, m.inputs[0].Focus()
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Blood Pressure Tracker"))
	b.WriteString("\n\n")

	for i, f := range measure.Fields {
		style := labelStyle
		if i == m.focus {
			style = labelFocusedStyle
		}
		b.WriteString(style.Render(f.Label() + ":"))
		b.WriteByte('\n')
		b.WriteString(m.inputs[i].View())
		b.WriteByte('\n')
		if msg, ok := m.tracker.Error(f); ok {
			b.WriteString(fieldErrorStyle.Render(msg))
			b.WriteByte('\n')
		}
	}

	b.WriteString(buttonStyle.Render("Save Measurement (enter)"))
	b.WriteByte('\n')

	if m.statusLine != "" {
		style := statusFailStyle
		if m.statusOk {
			style = statusOkStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(m.statusLine))
		b.WriteByte('\n')
	}

	b.WriteString(sectionStyle.Render("Measurements:"))
	b.WriteByte('\n')
	measurements := m.tracker.Measurements()
	if len(measurements) == 0 {
		b.WriteString(emptyStateStyle.Render("(no measurements)"))
		b.WriteByte('\n')
	}
	for i, entry := range measurements {
		b.WriteString(entryStyle.Render(fmt.Sprintf("%d. %s", i+1, entry)))
		b.WriteByte('\n')
	}

	if m.showChart {
		b.WriteString(sectionStyle.Render("Blood Pressure Chart"))
		b.WriteByte('\n')
		b.WriteString(RenderChart(m.tracker.Chart(), m.width-2, m.chartHeight))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("tab/shift+tab move  enter save  esc quit"))
	b.WriteByte('\n')

	return b.String()
}
