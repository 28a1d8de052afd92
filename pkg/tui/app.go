package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/forecourt/forecourt-cli/pkg/api"
	"github.com/forecourt/forecourt-cli/pkg/files"
)

const statusDismissAfter = 4 * time.Second

// App routes between the dashboard, the settings editor, and the
// creditor directory, and owns the transient status banner.
type App struct {
	state     sessionState
	dashboard *DashboardModel
	settings  *SettingsModel
	creditors *CreditorsModel
	width     int
	height    int

	statusMsg   string
	statusError bool
	statusGen   int
}

// NewApp loads the client configuration and builds the view models.
func NewApp() (*App, error) {
	config, err := files.ReadConfig()
	if err != nil {
		return nil, err
	}
	client := api.NewClientWithTimeout(config.Backend.BaseURL,
		time.Duration(config.Backend.TimeoutSeconds)*time.Second)

	return &App{
		state:     dashboardView,
		dashboard: NewDashboardModel(client),
		settings:  NewSettingsModel(client),
		creditors: NewCreditorsModel(client),
	}, nil
}

func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.SetSize(msg.Width, msg.Height)
		a.settings.SetSize(msg.Width, msg.Height)
		a.creditors.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		return a, a.showStatus(string(msg), false)

	case ErrorStatusMsg:
		return a, a.showStatus(string(msg), true)

	case statusExpiredMsg:
		// Only the newest banner's timer may clear it.
		if msg.generation == a.statusGen {
			a.statusMsg = ""
		}
		return a, nil

	case SwitchViewMsg:
		switch msg.view {
		case dashboardView:
			a.state = dashboardView
			return a, a.dashboard.Init()
		case settingsView:
			a.state = settingsView
			return a, a.settings.Init()
		case creditorsView:
			a.state = creditorsView
			return a, a.creditors.Init()
		}
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case dashboardView:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		if dm, ok := m.(*DashboardModel); ok {
			a.dashboard = dm
		}
	case settingsView:
		var m tea.Model
		m, cmd = a.settings.Update(msg)
		if sm, ok := m.(*SettingsModel); ok {
			a.settings = sm
		}
	case creditorsView:
		var m tea.Model
		m, cmd = a.creditors.Update(msg)
		if cm, ok := m.(*CreditorsModel); ok {
			a.creditors = cm
		}
	}

	return a, cmd
}

func (a *App) showStatus(msg string, isError bool) tea.Cmd {
	a.statusMsg = msg
	a.statusError = isError
	a.statusGen++
	generation := a.statusGen
	return tea.Tick(statusDismissAfter, func(time.Time) tea.Msg {
		return statusExpiredMsg{generation: generation}
	})
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case dashboardView:
		content = a.dashboard.View()
	case settingsView:
		content = a.settings.View()
	case creditorsView:
		content = a.creditors.View()
	default:
		content = "Unknown view"
	}

	if a.statusMsg != "" {
		style := successStatusStyle
		if a.statusError {
			style = errorStatusStyle
		}
		statusBar := style.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}
