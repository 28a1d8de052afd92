package settings

import (
	"errors"
	"testing"

	"github.com/forecourt/forecourt-cli/pkg/models"
)

func testDocument() *models.SettingsDocument {
	return &models.SettingsDocument{
		General:           models.GeneralInfo{PumpName: "Highway Fuels", DealerName: "R. Sharma"},
		Fuels:             []models.FuelRecord{{ID: "ms", Name: "MS", Price: 100, NozzleCount: 2}},
		CreditTypes:       []string{"Cash Credit"},
		ExpenseCategories: []string{"Electricity"},
		CashModes:         []string{"Cash", "UPI"},
	}
}

func TestBeginEditExclusive(t *testing.T) {
	c := NewController(testDocument())

	if err := c.BeginEdit(SectionGeneral); err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}

	err := c.BeginEdit(SectionRates)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("second BeginEdit error = %v, want ConflictError", err)
	}
	if conflict.Active != SectionGeneral || conflict.Requested != SectionRates {
		t.Errorf("conflict = %+v", conflict)
	}

	// Re-entering the same section is not a conflict.
	if err := c.BeginEdit(SectionGeneral); err != nil {
		t.Errorf("re-entering active section errored: %v", err)
	}
}

func TestBeginEditUnknownSection(t *testing.T) {
	c := NewController(testDocument())
	if err := c.BeginEdit("bogus"); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("BeginEdit(bogus) = %v, want ErrUnknownSection", err)
	}
}

// Mutating the live document after BeginEdit must never leak into the
// snapshot.
func TestSnapshotIsolation(t *testing.T) {
	c := NewController(testDocument())
	if err := c.BeginEdit(SectionNozzles); err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}

	doc := c.Document()
	doc.Fuels[0].NozzleCount = 9
	doc.Fuels = append(doc.Fuels, models.FuelRecord{ID: "hsd", Name: "HSD", Price: 95, NozzleCount: 2})

	snap := c.session.Snapshot()
	if len(snap.Fuels) != 1 || snap.Fuels[0].NozzleCount != 2 {
		t.Fatalf("snapshot fuels = %+v, want the pre-edit single fuel with 2 nozzles", snap.Fuels)
	}

	changes, err := c.RequestSave(SectionNozzles)
	if err != nil {
		t.Fatalf("RequestSave failed: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("changes = %v, want count change + added fuel", changes)
	}
}

func TestCancelEditRestores(t *testing.T) {
	c := NewController(testDocument())
	if err := c.BeginEdit(SectionCreditTypes); err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}

	doc := c.Document()
	doc.CreditTypes, _ = models.AddLabel(doc.CreditTypes, "Institutional")
	doc.CreditTypes, _ = models.RemoveLabel(doc.CreditTypes, "Cash Credit")

	c.CancelEdit(SectionCreditTypes)

	if _, editing := c.Editing(); editing {
		t.Error("still editing after cancel")
	}
	got := c.Document().CreditTypes
	if len(got) != 1 || got[0] != "Cash Credit" {
		t.Errorf("credit types after cancel = %v, want [Cash Credit]", got)
	}
}

func TestCancelEditIdempotent(t *testing.T) {
	c := NewController(testDocument())

	// No session at all.
	c.CancelEdit(SectionGeneral)

	// Mismatched section leaves the active session alone.
	if err := c.BeginEdit(SectionGeneral); err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}
	c.CancelEdit(SectionRates)
	if id, editing := c.Editing(); !editing || id != SectionGeneral {
		t.Errorf("editing = %v %v, want general still active", id, editing)
	}
}

// current == snapshot: save exits edit mode silently without touching
// persistence.
func TestRequestSaveEmptyDiffEndsSession(t *testing.T) {
	c := NewController(testDocument())
	if err := c.BeginEdit(SectionGeneral); err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}

	changes, err := c.RequestSave(SectionGeneral)
	if err != nil {
		t.Fatalf("RequestSave failed: %v", err)
	}
	if len(changes) != 0 {
		t.Errorf("changes = %v, want empty", changes)
	}
	if _, editing := c.Editing(); editing {
		t.Error("session survived an empty-diff save")
	}
}

func TestRequestSaveKeepsSessionOnPendingChanges(t *testing.T) {
	c := NewController(testDocument())
	if err := c.BeginEdit(SectionGeneral); err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}
	c.Document().General.PumpName = "New Name"

	changes, err := c.RequestSave(SectionGeneral)
	if err != nil {
		t.Fatalf("RequestSave failed: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("changes = %v, want one", changes)
	}
	if _, editing := c.Editing(); !editing {
		t.Error("session discarded before the gate resolved")
	}
}

func TestRequestSaveWithoutSession(t *testing.T) {
	c := NewController(testDocument())
	if _, err := c.RequestSave(SectionGeneral); !errors.Is(err, ErrNoSession) {
		t.Errorf("RequestSave without session = %v, want ErrNoSession", err)
	}
}

func TestNewControllerNilDocument(t *testing.T) {
	c := NewController(nil)
	if c.Document() == nil {
		t.Fatal("nil document not replaced with default")
	}
	if err := c.BeginEdit(SectionGeneral); err != nil {
		t.Errorf("BeginEdit on default document failed: %v", err)
	}
}
