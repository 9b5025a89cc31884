package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"fitness-tracker/internal/service"
)

// ResultsModel lists the packages of the current batch
type ResultsModel struct {
	results []service.Result
	totals  []service.KindTotal
	units   Units
	cursor  int
}

// NewResultsModel creates a new results model
func NewResultsModel(results []service.Result, units Units) ResultsModel {
	return ResultsModel{
		results: results,
		totals:  service.Totals(results),
		units:   units,
	}
}

// openDetailMsg asks the app to show one result
type openDetailMsg struct {
	result service.Result
}

// Init initializes the results screen
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.results) > 0 {
				selected := m.results[m.cursor]
				return m, func() tea.Msg { return openDetailMsg{result: selected} }
			}
		}
	}
	return m, nil
}

// View renders the results screen
func (m ResultsModel) View() string {
	if len(m.results) == 0 {
		return "\n  No packages processed."
	}

	var sections []string

	errCount := service.ErrorCount(m.results)
	title := fmt.Sprintf("Batch Results - %d packages", len(m.results))
	if errCount > 0 {
		title += fmt.Sprintf(", %d rejected", errCount)
	}
	sections = append(sections, cardTitleStyle.Render(title))

	header := tableHeaderStyle.Render(fmt.Sprintf("  %3s  %-4s  %-13s  %12s  %14s  %12s",
		"#", "Code", "Type", "Dist ("+m.units.DistanceLabel()+")", "Speed", "Calories"))
	sections = append(sections, header)

	for i, r := range m.results {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var row string
		if r.Err != nil {
			row = fmt.Sprintf("%s%3d  %-4s  %s", cursor, i+1, truncate(r.Package.Code, 4), truncate(r.Err.Error(), 56))
		} else {
			row = fmt.Sprintf("%s%3d  %-4s  %-13s  %12s  %14s  %12s",
				cursor,
				i+1,
				r.Package.Code,
				r.Summary.TrainingType,
				m.units.FormatDistance(r.Summary.Distance),
				m.units.FormatSpeed(r.Summary.Speed),
				fmt.Sprintf("%.3f", r.Summary.Calories),
			)
		}

		switch {
		case i == m.cursor:
			sections = append(sections, tableSelectedStyle.Render(row))
		case r.Err != nil:
			sections = append(sections, tableRowStyle.Inherit(errorStyle).Render(row))
		default:
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	if len(m.totals) > 0 {
		sections = append(sections, m.renderTotals())
	}

	help := statusStyle.Render("j/k: navigate  enter: details  2: history  ?: help")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ResultsModel) renderTotals() string {
	title := cardTitleStyle.Render("Totals")

	var lines []string
	for _, t := range m.totals {
		value := fmt.Sprintf("%d × %s, %s, %s",
			t.Count,
			m.units.FormatDuration(t.Duration),
			m.units.FormatDistance(t.Distance),
			m.units.FormatCalories(t.Calories),
		)
		lines = append(lines, RenderMetric(t.Kind, value))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

// truncate shortens s to max display columns, ending in "..." when cut
func truncate(s string, max int) string {
	return runewidth.Truncate(s, max, "...")
}
