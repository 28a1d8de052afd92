package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ConfirmationConfig holds the content of a confirmation dialog.
type ConfirmationConfig struct {
	Title       string   // Dialog heading
	Message     string   // Main confirmation question
	Changes     []string // Pending change descriptions, one bullet each
	Destructive bool     // If true, confirming is the risky option
	Width       int      // Dialog width
}

// ConfirmationModel handles confirm/cancel prompts over a pending
// change list.
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Changes returns the change list currently on display.
func (m *ConfirmationModel) Changes() []string {
	return m.config.Changes
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y", "enter":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the dialog.
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	width := m.config.Width
	if width == 0 {
		width = 64
	}
	contentWidth := width - 4

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))
	changeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	var content strings.Builder

	if m.config.Title != "" {
		content.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Align(lipgloss.Center).
			Render(titleStyle.Render(m.config.Title)))
		content.WriteString("\n\n")
	}

	for _, change := range m.config.Changes {
		wrapped := wordwrap.String("• "+change, contentWidth)
		content.WriteString(changeStyle.Render(wrapped))
		content.WriteString("\n")
	}
	if len(m.config.Changes) > 0 {
		content.WriteString("\n")
	}

	if m.config.Message != "" {
		content.WriteString(wordwrap.String(m.config.Message, contentWidth))
		content.WriteString("\n\n")
	}

	content.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center).
		Render(m.renderOptions()))

	return activeBorderStyle.
		Width(width).
		Render(content.String())
}

func (m *ConfirmationModel) renderOptions() string {
	yesStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	noStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	if m.config.Destructive {
		yesStyle, noStyle = noStyle, yesStyle
	}
	return fmt.Sprintf("%s  /  %s", yesStyle.Render("[y] confirm"), noStyle.Render("[n] cancel"))
}
