package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/forecourt/forecourt-cli/pkg/api"
	"github.com/forecourt/forecourt-cli/pkg/models"
	"github.com/forecourt/forecourt-cli/pkg/settings"
)

// CreditorsModel lists credit customers with live substring filtering
// on name and phone.
type CreditorsModel struct {
	client    *api.Client
	creditors []models.Creditor
	filtered  []models.Creditor
	cursor    int
	searching bool
	search    textinput.Model
	viewport  viewport.Model
	loaded    bool
	width     int
	height    int
}

func NewCreditorsModel(client *api.Client) *CreditorsModel {
	search := textinput.New()
	search.Placeholder = "name or phone"
	search.CharLimit = 60
	search.Width = 30
	return &CreditorsModel{
		client:   client,
		search:   search,
		viewport: viewport.New(80, 20),
	}
}

func (m *CreditorsModel) Init() tea.Cmd {
	if m.loaded {
		return nil
	}
	return m.loadCreditors()
}

func (m *CreditorsModel) loadCreditors() tea.Cmd {
	return func() tea.Msg {
		creditors, err := m.client.ListCreditors(context.Background())
		return creditorsLoadedMsg{creditors: creditors, err: err}
	}
}

func (m *CreditorsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width == 0 || height == 0 {
		return
	}
	m.viewport.Width = width - 10
	m.viewport.Height = height - 12
}

func (m *CreditorsModel) applyFilter() {
	m.filtered = models.FilterCreditors(m.creditors, m.search.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.updateViewportContent()
}

func (m *CreditorsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case creditorsLoadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.creditors = nil
			m.applyFilter()
			return m, func() tea.Msg {
				return ErrorStatusMsg(fmt.Sprintf("Could not load creditors: %v", msg.err))
			}
		}
		m.creditors = msg.creditors
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.search.SetValue("")
				m.search.Blur()
				m.applyFilter()
				return m, nil
			case "enter":
				m.searching = false
				m.search.Blur()
				m.updateViewportContent()
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return SwitchViewMsg{view: dashboardView} }
		case "s":
			return m, func() tea.Msg { return SwitchViewMsg{view: settingsView} }
		case "/":
			m.searching = true
			m.search.Focus()
			m.updateViewportContent()
			return m, nil
		case "r":
			return m, m.loadCreditors()
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.updateViewportContent()
			}
		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				m.updateViewportContent()
			}
		case "y":
			return m, m.copyStatement()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// copyStatement puts the selected creditor's outstanding line on the
// system clipboard, ready to paste into a reminder message.
func (m *CreditorsModel) copyStatement() tea.Cmd {
	if m.cursor >= len(m.filtered) {
		return nil
	}
	c := m.filtered[m.cursor]
	return func() tea.Msg {
		text := fmt.Sprintf("%s (%s): outstanding %s", c.Name, c.Phone, settings.FormatCurrency(c.Outstanding))
		if err := clipboard.WriteAll(text); err != nil {
			return ErrorStatusMsg(fmt.Sprintf("Could not copy to clipboard: %v", err))
		}
		return StatusMsg(fmt.Sprintf("Statement for %s copied.", c.Name))
	}
}

func (m *CreditorsModel) View() string {
	contentStyle := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	borderStyle := activeBorderStyle.
		Width(m.width - 4).
		Height(m.height - 5)

	var content strings.Builder
	content.WriteString(paneHeading("CREDITORS", m.width-4))
	content.WriteString("\n\n")

	if !m.loaded {
		content.WriteString(contentStyle.Render("Loading creditors..."))
	} else {
		if m.searching || m.search.Value() != "" {
			content.WriteString(contentStyle.Render(focusedStyle.Render("Search: ") + m.search.View()))
			content.WriteString("\n\n")
		}
		m.updateViewportContent()
		content.WriteString(contentStyle.Render(m.viewport.View()))
	}

	var s strings.Builder
	s.WriteString(contentStyle.Render(borderStyle.Render(content.String())))
	s.WriteString("\n")
	var help []string
	if m.searching {
		help = []string{"enter apply", "esc clear"}
	} else {
		help = []string{"↑↓ navigate", "/ search", "y copy statement", "r refresh", "s settings", "esc back", "^c quit"}
	}
	s.WriteString(renderHelpBox(help, m.width))
	return s.String()
}

func (m *CreditorsModel) updateViewportContent() {
	var content strings.Builder

	if len(m.filtered) == 0 {
		if m.search.Value() != "" {
			content.WriteString(commentStyle.Render("  # No creditors match the search"))
		} else {
			content.WriteString(commentStyle.Render("  # No creditors"))
		}
		content.WriteString("\n")
		m.viewport.SetContent(content.String())
		return
	}

	var total float64
	for i, c := range m.filtered {
		line := fmt.Sprintf("%-28s %-14s %12s", c.Name, c.Phone, settings.FormatCurrency(c.Outstanding))
		if i == m.cursor {
			content.WriteString(selectedStyle.Render(focusedStyle.Render("▸ " + line)))
		} else {
			content.WriteString(normalStyle.Render("  " + line))
		}
		content.WriteString("\n")
		total += c.Outstanding
	}

	content.WriteString("\n")
	content.WriteString(normalStyle.Render(fmt.Sprintf("%d creditors, %s outstanding", len(m.filtered), settings.FormatCurrency(total))))
	content.WriteString("\n")

	m.viewport.SetContent(content.String())
}
