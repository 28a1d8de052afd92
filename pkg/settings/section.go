package settings

import (
	"github.com/forecourt/forecourt-cli/pkg/models"
)

// SectionID identifies one of the six independently editable settings
// sections. Rates and nozzles are two sections over the same underlying
// fuel list: one edits prices, the other edits nozzle counts and the
// fuel roster itself.
type SectionID string

const (
	SectionGeneral           SectionID = "general"
	SectionRates             SectionID = "rates"
	SectionNozzles           SectionID = "nozzles"
	SectionCreditTypes       SectionID = "creditTypes"
	SectionExpenseCategories SectionID = "expenseCategories"
	SectionCashModes         SectionID = "cashModes"
)

// Section is one variant of the closed set of editable sections. Each
// variant knows how to restore its slice of the document from a
// snapshot and how to describe the differences between two documents,
// so callers dispatch through this interface instead of switching on
// the section id.
type Section interface {
	ID() SectionID
	// Title is the human name used in dialogs and notifications.
	Title() string
	// Restore copies this section's value from snap into dst. A nil
	// snap restores the section to its empty state.
	Restore(dst, snap *models.SettingsDocument)
	// Diff describes every atomic change between before and after, one
	// sentence per change, in a stable order. A nil before is treated
	// as an empty document.
	Diff(before, after *models.SettingsDocument) []string
}

// Sections is the closed set of section variants, in display order.
var Sections = []Section{
	generalSection{},
	ratesSection{},
	nozzlesSection{},
	labelSection{
		id:    SectionCreditTypes,
		title: "Credit types",
		noun:  "Credit type",
		get:   func(d *models.SettingsDocument) []string { return d.CreditTypes },
		set:   func(d *models.SettingsDocument, v []string) { d.CreditTypes = v },
	},
	labelSection{
		id:    SectionExpenseCategories,
		title: "Expense categories",
		noun:  "Expense category",
		get:   func(d *models.SettingsDocument) []string { return d.ExpenseCategories },
		set:   func(d *models.SettingsDocument, v []string) { d.ExpenseCategories = v },
	},
	labelSection{
		id:    SectionCashModes,
		title: "Cash modes",
		noun:  "Cash mode",
		get:   func(d *models.SettingsDocument) []string { return d.CashModes },
		set:   func(d *models.SettingsDocument, v []string) { d.CashModes = v },
	},
}

// ForID returns the section variant for an id.
func ForID(id SectionID) (Section, bool) {
	for _, s := range Sections {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

type generalSection struct{}

func (generalSection) ID() SectionID { return SectionGeneral }
func (generalSection) Title() string { return "General information" }

func (generalSection) Restore(dst, snap *models.SettingsDocument) {
	if snap == nil {
		dst.General = models.GeneralInfo{}
		return
	}
	dst.General = snap.General
}

func (generalSection) Diff(before, after *models.SettingsDocument) []string {
	return diffGeneral(before, after)
}

type ratesSection struct{}

func (ratesSection) ID() SectionID { return SectionRates }
func (ratesSection) Title() string { return "Fuel rates" }

func (ratesSection) Restore(dst, snap *models.SettingsDocument) {
	restoreFuels(dst, snap)
}

func (ratesSection) Diff(before, after *models.SettingsDocument) []string {
	return diffRates(before, after)
}

type nozzlesSection struct{}

func (nozzlesSection) ID() SectionID { return SectionNozzles }
func (nozzlesSection) Title() string { return "Fuels & nozzles" }

func (nozzlesSection) Restore(dst, snap *models.SettingsDocument) {
	restoreFuels(dst, snap)
}

func (nozzlesSection) Diff(before, after *models.SettingsDocument) []string {
	return diffNozzles(before, after)
}

func restoreFuels(dst, snap *models.SettingsDocument) {
	if snap == nil {
		dst.Fuels = []models.FuelRecord{}
		return
	}
	dst.Fuels = make([]models.FuelRecord, len(snap.Fuels))
	copy(dst.Fuels, snap.Fuels)
}

type labelSection struct {
	id    SectionID
	title string
	noun  string
	get   func(*models.SettingsDocument) []string
	set   func(*models.SettingsDocument, []string)
}

func (s labelSection) ID() SectionID { return s.id }
func (s labelSection) Title() string { return s.title }

func (s labelSection) Restore(dst, snap *models.SettingsDocument) {
	if snap == nil {
		s.set(dst, []string{})
		return
	}
	src := s.get(snap)
	v := make([]string, len(src))
	copy(v, src)
	s.set(dst, v)
}

func (s labelSection) Diff(before, after *models.SettingsDocument) []string {
	var old []string
	if before != nil {
		old = s.get(before)
	}
	var cur []string
	if after != nil {
		cur = s.get(after)
	}
	return diffLabels(s.noun, old, cur)
}
