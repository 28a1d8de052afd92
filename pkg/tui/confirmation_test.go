package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmationKeys(t *testing.T) {
	tests := []struct {
		name          string
		key           tea.KeyMsg
		wantConfirmed bool
		wantCancelled bool
	}{
		{"y confirms", keyMsg("y"), true, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, true, false},
		{"n cancels", keyMsg("n"), false, true},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEsc}, false, true},
		{"other keys ignored", keyMsg("x"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var confirmed, cancelled bool
			c := NewConfirmation()
			c.Show(ConfirmationConfig{
				Title:   "CONFIRM CHANGES",
				Changes: []string{"Phone will be changed to \"12345\"."},
			}, func() tea.Cmd {
				confirmed = true
				return nil
			}, func() tea.Cmd {
				cancelled = true
				return nil
			})

			c.Update(tt.key)

			if confirmed != tt.wantConfirmed {
				t.Errorf("confirmed = %v, want %v", confirmed, tt.wantConfirmed)
			}
			if cancelled != tt.wantCancelled {
				t.Errorf("cancelled = %v, want %v", cancelled, tt.wantCancelled)
			}
			wantActive := !tt.wantConfirmed && !tt.wantCancelled
			if c.Active() != wantActive {
				t.Errorf("Active() = %v, want %v", c.Active(), wantActive)
			}
		})
	}
}

func TestConfirmationIgnoresKeysWhenInactive(t *testing.T) {
	called := false
	c := NewConfirmation()
	c.Show(ConfirmationConfig{}, func() tea.Cmd {
		called = true
		return nil
	}, nil)
	c.Hide()

	c.Update(keyMsg("y"))
	if called {
		t.Error("hidden dialog should not react to keys")
	}
}

func TestConfirmationViewListsChanges(t *testing.T) {
	c := NewConfirmation()
	changes := []string{
		"Petrol price will be changed from ₹100.00 to ₹105.00.",
		"Credit type \"VIP\" will be added.",
	}
	c.Show(ConfirmationConfig{
		Title:   "CONFIRM CHANGES",
		Message: "Save these changes?",
		Changes: changes,
		Width:   72,
	}, nil, nil)

	view := c.View()
	for _, change := range changes {
		if !strings.Contains(view, change) {
			t.Errorf("view missing change %q", change)
		}
	}
	if !strings.Contains(view, "Save these changes?") {
		t.Error("view missing the confirmation question")
	}
}
