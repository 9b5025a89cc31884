package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Batch results"},
		{"2", "Journal history"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, m.renderSection("Results", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"enter", "Show package details"},
	}))

	sections = append(sections, m.renderSection("History", []keyHelp{
		{"j / k", "Move cursor"},
		{"r", "Reload journal"},
	}))

	sections = append(sections, m.renderFormulaHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionTitleStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderFormulaHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionTitleStyle.Render("Packages and Formulas"))
	lines = append(lines, "")

	formulas := []struct {
		name string
		desc string
	}{
		{"RUN  action, duration, weight", "Calories: (18 × speed − 20) × weight / 1000 × hours × 60"},
		{"WLK  action, duration, weight, height", "Calories: (0.035 × weight + ⌊speed² / height⌋ × 0.029 × weight) × hours × 60"},
		{"SWM  action, duration, weight, pool length, laps", "Speed: pool length × laps / 1000 / hours; calories: (speed + 1.1) × 2 × weight"},
		{"Distance", "action × step length / 1000 (0.65 m per step, 1.38 m per stroke)"},
	}

	for _, f := range formulas {
		lines = append(lines, "  "+helpKeyStyle.Render(f.name))
		lines = append(lines, "  "+mutedStyle.Render(f.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
