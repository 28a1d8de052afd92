package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/forecourt/forecourt-cli/pkg/api"
	"github.com/forecourt/forecourt-cli/pkg/models"
)

// keyMsg builds a key message from the string form used in Update
// switches.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press feeds key strings through the settings model in order and
// returns the final model and the last command.
func press(t *testing.T, m *SettingsModel, keys ...string) (*SettingsModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var model tea.Model
		model, cmd = m.Update(keyMsg(k))
		var ok bool
		m, ok = model.(*SettingsModel)
		if !ok {
			t.Fatalf("Update returned %T, want *SettingsModel", model)
		}
	}
	return m, cmd
}

// collectMsgs executes a command tree and flattens batches into the
// messages they produce.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collectMsgs(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// backendStub is an httptest-backed settings backend that records the
// calls it receives.
type backendStub struct {
	server *httptest.Server

	saveCalls   int
	lastSection string
	failSave    bool

	labelPaths  []string
	labelStatus int
}

func newBackendStub(t *testing.T) *backendStub {
	t.Helper()
	s := &backendStub{}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/api/settings":
			s.saveCalls++
			s.lastSection = r.URL.Query().Get("section")
			if s.failSave {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			var doc models.SettingsDocument
			if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			json.NewEncoder(w).Encode(&doc)

		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/api/settings/"):
			s.labelPaths = append(s.labelPaths, r.URL.Path)
			if s.labelStatus != 0 {
				w.WriteHeader(s.labelStatus)
				return
			}
			w.WriteHeader(http.StatusOK)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(s.server.Close)
	return s
}

// newSettingsFixture builds a settings model over a backend stub,
// already loaded with the given document.
func newSettingsFixture(t *testing.T, doc *models.SettingsDocument) (*SettingsModel, *backendStub) {
	t.Helper()
	stub := newBackendStub(t)
	m := NewSettingsModel(api.NewClient(stub.server.URL))
	m.loaded = true
	m.controller.ReplaceDocument(doc)
	m.SetSize(100, 30)
	return m, stub
}

func fixtureDocument() *models.SettingsDocument {
	return &models.SettingsDocument{
		General: models.GeneralInfo{
			PumpName:   "Highway Fuels",
			DealerName: "R. Sharma",
			Phone:      "9876500000",
		},
		Fuels: []models.FuelRecord{
			{ID: "petrol", Name: "Petrol", Price: 100, NozzleCount: 1},
			{ID: "diesel", Name: "Diesel", Price: 90, NozzleCount: 4},
		},
		CreditTypes:       []string{"Regular"},
		ExpenseCategories: []string{"Electricity"},
		CashModes:         []string{"Cash"},
	}
}
