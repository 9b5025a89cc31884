package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"fitness-tracker/internal/store"
)

const historyLimit = 50

// HistoryModel browses the journal of earlier batches
type HistoryModel struct {
	db       *store.DB
	units    Units
	entries  []store.Entry
	stats    []store.KindStat
	calories []float64
	loading  bool
	err      error
	cursor   int
}

// NewHistoryModel creates a new history model. db may be nil when the
// journal is disabled.
func NewHistoryModel(db *store.DB, units Units) HistoryModel {
	return HistoryModel{
		db:      db,
		units:   units,
		loading: db != nil,
	}
}

// Init initializes the history screen
func (m HistoryModel) Init() tea.Cmd {
	if m.db == nil {
		return nil
	}
	return m.loadHistory
}

type historyLoadedMsg struct {
	entries  []store.Entry
	stats    []store.KindStat
	calories []float64
	err      error
}

func (m HistoryModel) loadHistory() tea.Msg {
	ctx := context.Background()

	entries, err := m.db.ListEntries(ctx, historyLimit)
	if err != nil {
		return historyLoadedMsg{err: fmt.Errorf("loading entries: %w", err)}
	}
	stats, err := m.db.KindStats(ctx)
	if err != nil {
		return historyLoadedMsg{err: fmt.Errorf("loading stats: %w", err)}
	}
	calories, err := m.db.CaloriesHistory(ctx, "", historyLimit)
	if err != nil {
		return historyLoadedMsg{err: fmt.Errorf("loading calories: %w", err)}
	}

	return historyLoadedMsg{entries: entries, stats: stats, calories: calories}
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		m.stats = msg.stats
		m.calories = msg.calories
		if m.cursor >= len(m.entries) {
			m.cursor = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if m.db != nil {
				m.loading = true
				return m, m.loadHistory
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

// View renders the history screen
func (m HistoryModel) View() string {
	if m.db == nil {
		return warningStyle.Render("\n  Journal is disabled. Set journal.enabled in ~/.fittracker/config.json.")
	}

	if m.loading {
		return "\n  Loading history..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.entries) == 0 {
		return "\n  The journal is empty."
	}

	var sections []string

	if len(m.stats) > 0 {
		sections = append(sections, m.renderStats())
	}

	if len(m.calories) > 2 {
		sections = append(sections, m.renderChart())
	}

	sections = append(sections, m.renderEntries())

	help := statusStyle.Render("j/k: navigate  r: refresh  1: results  ?: help")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m HistoryModel) renderStats() string {
	title := cardTitleStyle.Render("All Time")

	var lines []string
	for _, s := range m.stats {
		value := fmt.Sprintf("%s workouts, %s, %s, avg %s",
			humanize.Comma(int64(s.Count)),
			m.units.FormatDuration(s.TotalDuration),
			m.units.FormatDistance(s.TotalDistance),
			m.units.FormatSpeed(s.AvgSpeed),
		)
		lines = append(lines, RenderMetric(s.Kind, value))
		lines = append(lines, RenderMetric("", m.units.FormatCalories(s.TotalCalories)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m HistoryModel) renderChart() string {
	title := cardTitleStyle.Render("Calories - Recent Workouts")

	graph := asciigraph.Plot(m.calories,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m HistoryModel) renderEntries() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Journal - last %d packages", len(m.entries)))

	header := tableHeaderStyle.Render(fmt.Sprintf("  %-16s  %-4s  %-13s  %12s  %12s",
		"When", "Code", "Type", "Dist ("+m.units.DistanceLabel()+")", "Calories"))

	rows := []string{header}
	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var row string
		if e.Failed() {
			row = fmt.Sprintf("%s%-16s  %-4s  %s", cursor,
				humanize.Time(e.CreatedAt), truncate(e.Code, 4), truncate(e.Error, 44))
		} else {
			row = fmt.Sprintf("%s%-16s  %-4s  %-13s  %12s  %12s", cursor,
				humanize.Time(e.CreatedAt),
				e.Code,
				e.Kind,
				m.units.FormatDistance(deref(e.Distance)),
				fmt.Sprintf("%.3f", deref(e.Calories)),
			)
		}

		switch {
		case i == m.cursor:
			rows = append(rows, tableSelectedStyle.Render(row))
		case e.Failed():
			rows = append(rows, tableRowStyle.Inherit(mutedStyle).Render(row))
		default:
			rows = append(rows, tableRowStyle.Render(row))
		}
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.JoinVertical(lipgloss.Left, title, table)
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
