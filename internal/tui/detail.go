package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitness-tracker/internal/service"
	"fitness-tracker/internal/workout"
)

// DetailModel shows one processed package
type DetailModel struct {
	result   service.Result
	units    Units
	viewport viewport.Model
	ready    bool
}

// NewDetailModel creates a new detail model
func NewDetailModel(result service.Result, units Units, width, height int) DetailModel {
	m := DetailModel{
		result: result,
		units:  units,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	}

	return m
}

// Init initializes the detail screen
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail screen
func (m DetailModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  esc: back to results  j/k or arrows: scroll")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m DetailModel) renderContent() string {
	r := m.result
	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Package #%d (%s)", r.Index+1, r.Package.Code))
	sections = append(sections, title)

	if r.Err != nil {
		sections = append(sections, errorStyle.Render("Rejected: "+r.Err.Error()))
	} else {
		sections = append(sections, successStyle.Render(r.Message))
		sections = append(sections, "")
		sections = append(sections, m.renderMetrics())
	}

	sections = append(sections, "")
	sections = append(sections, m.renderReadings())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DetailModel) renderMetrics() string {
	s := m.result.Summary
	lines := []string{
		cardTitleStyle.Render("Metrics"),
		RenderMetric("Type", s.TrainingType),
		RenderMetric("Duration", m.units.FormatDuration(s.Duration)),
		RenderMetric("Distance", m.units.FormatDistance(s.Distance)),
		RenderMetric("Avg speed", m.units.FormatSpeed(s.Speed)),
		RenderMetric("Calories", m.units.FormatCalories(s.Calories)),
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderReadings labels the raw readings with the kind's schema when the
// code is known, or by position otherwise.
func (m DetailModel) renderReadings() string {
	p := m.result.Package
	lines := []string{cardTitleStyle.Render("Sensor readings")}

	var schema []workout.Field
	if kind, ok := workout.KindOf(p.Code); ok {
		schema = workout.Schema(kind)
	}

	for i, v := range p.Fields {
		label := fmt.Sprintf("field %d", i+1)
		if i < len(schema) {
			label = string(schema[i])
		} else if len(schema) > 0 {
			label += " (unexpected)"
		}
		lines = append(lines, RenderMetric(label, formatReading(v)))
	}

	if len(schema) > len(p.Fields) {
		missing := make([]string, 0, len(schema)-len(p.Fields))
		for _, f := range schema[len(p.Fields):] {
			missing = append(missing, string(f))
		}
		lines = append(lines, warningStyle.Render("missing: "+strings.Join(missing, ", ")))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func formatReading(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
