package tui

import (
	"strings"
	"testing"

	"github.com/forecourt/forecourt-cli/pkg/api"
	"github.com/forecourt/forecourt-cli/pkg/models"
)

func fixtureCreditors() []models.Creditor {
	return []models.Creditor{
		{Name: "Sharma Transport", Phone: "9876500001", Outstanding: 12500},
		{Name: "Verma Logistics", Phone: "9876500002", Outstanding: 800},
		{Name: "City Taxi Stand", Phone: "9000000003", Outstanding: 0},
	}
}

func newCreditorsFixture(t *testing.T) *CreditorsModel {
	t.Helper()
	m := NewCreditorsModel(api.NewClient("http://127.0.0.1:1"))
	m.SetSize(100, 30)
	m.loaded = true
	m.creditors = fixtureCreditors()
	m.applyFilter()
	return m
}

func creditorKeys(t *testing.T, m *CreditorsModel, keys ...string) *CreditorsModel {
	t.Helper()
	for _, k := range keys {
		model, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = model.(*CreditorsModel)
		if !ok {
			t.Fatalf("Update returned %T, want *CreditorsModel", model)
		}
	}
	return m
}

func TestCreditorsSearchFilters(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{"name substring", "sharma", []string{"Sharma Transport"}},
		{"phone substring", "900000", []string{"City Taxi Stand"}},
		{"shared prefix", "98765", []string{"Sharma Transport", "Verma Logistics"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newCreditorsFixture(t)
			m = creditorKeys(t, m, "/", tt.query, "enter")

			var got []string
			for _, c := range m.filtered {
				got = append(got, c.Name)
			}
			if len(got) != len(tt.wantNames) {
				t.Fatalf("filtered = %v, want %v", got, tt.wantNames)
			}
			for i := range got {
				if got[i] != tt.wantNames[i] {
					t.Errorf("filtered[%d] = %q, want %q", i, got[i], tt.wantNames[i])
				}
			}
		})
	}
}

func TestCreditorsEscClearsSearch(t *testing.T) {
	m := newCreditorsFixture(t)
	m = creditorKeys(t, m, "/", "sharma")
	if len(m.filtered) != 1 {
		t.Fatalf("filtered = %d entries, want 1", len(m.filtered))
	}

	m = creditorKeys(t, m, "esc")
	if m.search.Value() != "" {
		t.Errorf("search value = %q, want empty", m.search.Value())
	}
	if len(m.filtered) != 3 {
		t.Errorf("filtered = %d entries, want all 3", len(m.filtered))
	}
}

func TestCreditorsCursorClampedByFilter(t *testing.T) {
	m := newCreditorsFixture(t)
	m = creditorKeys(t, m, "down", "down")
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}

	m = creditorKeys(t, m, "/", "sharma", "enter")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamped to 0", m.cursor)
	}
}

func TestCreditorsLoadFailureShowsBanner(t *testing.T) {
	m := NewCreditorsModel(api.NewClient("http://127.0.0.1:1"))
	m.SetSize(100, 30)

	model, cmd := m.Update(creditorsLoadedMsg{err: &api.ConnectionError{Err: errFake{}}})
	m = model.(*CreditorsModel)

	if !m.loaded {
		t.Error("model should be marked loaded after a failed fetch")
	}
	if cmd == nil {
		t.Fatal("expected an error banner command")
	}
	if _, ok := cmd().(ErrorStatusMsg); !ok {
		t.Error("expected an ErrorStatusMsg banner")
	}
}

func TestCreditorsViewportShowsOutstandingTotal(t *testing.T) {
	m := newCreditorsFixture(t)
	m.updateViewportContent()
	if !strings.Contains(m.viewport.View(), "₹13300.00 outstanding") {
		t.Error("viewport missing the outstanding total")
	}
}

func TestCreditorsSwitchViews(t *testing.T) {
	m := newCreditorsFixture(t)
	model, cmd := m.Update(keyMsg("s"))
	if _, ok := model.(*CreditorsModel); !ok {
		t.Fatalf("Update returned %T", model)
	}
	if cmd == nil {
		t.Fatal("expected a switch command")
	}
	msg, ok := cmd().(SwitchViewMsg)
	if !ok {
		t.Fatalf("expected SwitchViewMsg, got %T", cmd())
	}
	if msg.view != settingsView {
		t.Errorf("view = %v, want settingsView", msg.view)
	}
}

type errFake struct{}

func (errFake) Error() string { return "dial refused" }
