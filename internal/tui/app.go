package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/service"
	"fitness-tracker/internal/store"
)

// Screen identifiers
type Screen int

const (
	ScreenResults Screen = iota
	ScreenHistory
	ScreenHelp
	ScreenDetail
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	results ResultsModel
	detail  DetailModel
	history HistoryModel
	help    HelpModel

	db    *store.DB
	units Units

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App. db may be nil when the journal is disabled.
func NewApp(results []service.Result, db *store.DB, display config.DisplayConfig, start Screen) *App {
	units := NewUnits(display)
	if start == ScreenDetail {
		start = ScreenResults
	}
	return &App{
		screen:  start,
		db:      db,
		units:   units,
		results: NewResultsModel(results, units),
		history: NewHistoryModel(db, units),
		help:    NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenHistory {
		return a.history.Init()
	}
	return a.results.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenResults
			return a, nil
		case "2":
			a.screen = ScreenHistory
			a.history = NewHistoryModel(a.db, a.units)
			return a, a.history.Init()
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			switch a.screen {
			case ScreenHelp:
				a.screen = a.prevScreen
				return a, nil
			case ScreenDetail:
				a.screen = ScreenResults
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case openDetailMsg:
		a.screen = ScreenDetail
		a.detail = NewDetailModel(msg.result, a.units, a.width, a.height)
		return a, a.detail.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	var m tea.Model
	switch a.screen {
	case ScreenResults:
		m, cmd = a.results.Update(msg)
		a.results = m.(ResultsModel)
	case ScreenDetail:
		m, cmd = a.detail.Update(msg)
		a.detail = m.(DetailModel)
	case ScreenHistory:
		m, cmd = a.history.Update(msg)
		a.history = m.(HistoryModel)
	case ScreenHelp:
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	var content string
	switch a.screen {
	case ScreenResults:
		content = a.results.View()
	case ScreenDetail:
		content = a.detail.View()
	case ScreenHistory:
		content = a.history.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(), a.renderNav(), content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Fitness Tracker - Workout Calculator")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Results", ScreenResults},
		{"2", "History", ScreenHistory},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		active := a.screen == item.screen || (item.screen == ScreenResults && a.screen == ScreenDetail)
		if active {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}
