package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/forecourt/forecourt-cli/pkg/api"
	"github.com/forecourt/forecourt-cli/pkg/models"
	"github.com/forecourt/forecourt-cli/pkg/settings"
)

const salesWindowDays = 7

// DashboardModel is the landing view: a bar chart of recent sales and
// shortcuts into the other views.
type DashboardModel struct {
	client  *api.Client
	spinner spinner.Model
	points  []models.SalesPoint
	loaded  bool
	loadErr error
	width   int
	height  int
}

func NewDashboardModel(client *api.Client) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	return &DashboardModel{
		client:  client,
		spinner: s,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	if m.loaded {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadSales())
}

func (m *DashboardModel) loadSales() tea.Cmd {
	return func() tea.Msg {
		points, err := m.client.SalesSummary(context.Background(), salesWindowDays)
		return salesLoadedMsg{points: points, err: err}
	}
}

func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case salesLoadedMsg:
		m.loaded = true
		m.loadErr = msg.err
		m.points = msg.points
		if msg.err != nil {
			// The chart renders empty; the banner explains why.
			m.points = nil
			return m, func() tea.Msg {
				return ErrorStatusMsg(fmt.Sprintf("Could not load sales: %v", msg.err))
			}
		}
		return m, nil

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "s":
			return m, func() tea.Msg { return SwitchViewMsg{view: settingsView} }
		case "c":
			return m, func() tea.Msg { return SwitchViewMsg{view: creditorsView} }
		case "r":
			m.loaded = false
			return m, tea.Batch(m.spinner.Tick, m.loadSales())
		case "y":
			return m, m.copySummary()
		}
	}

	return m, nil
}

// copySummary puts a plain-text rendering of the sales window on the
// system clipboard.
func (m *DashboardModel) copySummary() tea.Cmd {
	return func() tea.Msg {
		var b strings.Builder
		fmt.Fprintf(&b, "Sales, last %d days\n", salesWindowDays)
		var total float64
		for _, p := range m.points {
			fmt.Fprintf(&b, "%s\t%s\n", p.Label, settings.FormatCurrency(p.Amount))
			total += p.Amount
		}
		fmt.Fprintf(&b, "Total\t%s\n", settings.FormatCurrency(total))
		if err := clipboard.WriteAll(b.String()); err != nil {
			return ErrorStatusMsg(fmt.Sprintf("Could not copy to clipboard: %v", err))
		}
		return StatusMsg("Sales summary copied to clipboard.")
	}
}

func (m *DashboardModel) View() string {
	contentStyle := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	borderStyle := activeBorderStyle.
		Width(m.width - 4).
		Height(m.height - 5)

	var content strings.Builder
	content.WriteString(paneHeading("DASHBOARD", m.width-4))
	content.WriteString("\n\n")

	if !m.loaded {
		content.WriteString(contentStyle.Render(m.spinner.View() + " Loading sales..."))
	} else {
		content.WriteString(contentStyle.Render(m.renderChart()))
	}

	var s strings.Builder
	s.WriteString(contentStyle.Render(borderStyle.Render(content.String())))
	s.WriteString("\n")
	help := []string{"s settings", "c creditors", "r refresh", "y copy summary", "q quit"}
	s.WriteString(renderHelpBox(help, m.width))
	return s.String()
}

// renderChart draws a horizontal bar per sales bucket, scaled to the
// largest amount in the window.
func (m *DashboardModel) renderChart() string {
	var content strings.Builder
	content.WriteString(sectionTitleStyle.Render(fmt.Sprintf("SALES, LAST %d DAYS", salesWindowDays)))
	content.WriteString("\n\n")

	if len(m.points) == 0 {
		content.WriteString(commentStyle.Render("  # No sales data"))
		content.WriteString("\n")
		return content.String()
	}

	barWidth := m.width - 48
	if barWidth < 10 {
		barWidth = 10
	}

	var maxAmount, total float64
	for _, p := range m.points {
		if p.Amount > maxAmount {
			maxAmount = p.Amount
		}
		total += p.Amount
	}

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	for _, p := range m.points {
		bar := renderBar(p.Amount, maxAmount, barWidth)
		content.WriteString(fmt.Sprintf("%s %s %s\n",
			labelStyle.Render(p.Label),
			barStyle.Render(bar),
			normalStyle.Render(settings.FormatCurrency(p.Amount))))
	}

	content.WriteString("\n")
	content.WriteString(normalStyle.Render(fmt.Sprintf("Total: %s", settings.FormatCurrency(total))))
	content.WriteString("\n")
	return content.String()
}

// renderBar scales one amount against the window maximum. Any non-zero
// amount draws at least one cell so small days stay visible.
func renderBar(amount, maxAmount float64, width int) string {
	if maxAmount <= 0 || amount <= 0 {
		return ""
	}
	cells := int(amount / maxAmount * float64(width))
	if cells < 1 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return strings.Repeat("█", cells)
}
