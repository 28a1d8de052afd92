package models

import (
	"errors"
	"strings"
)

// Document-related errors
var (
	ErrEmptyFuelName    = errors.New("fuel name cannot be empty")
	ErrEmptyLabel       = errors.New("label cannot be empty")
	ErrUnknownFuel      = errors.New("no fuel with that id")
	ErrNonPositivePrice = errors.New("fuel price must be positive")
)

// SettingsDocument is the aggregate the backend persists. Each field is
// an independently editable section.
type SettingsDocument struct {
	General           GeneralInfo  `json:"general" yaml:"general"`
	Fuels             []FuelRecord `json:"fuels" yaml:"fuels"`
	CreditTypes       []string     `json:"creditTypes" yaml:"credit_types"`
	ExpenseCategories []string     `json:"expenseCategories" yaml:"expense_categories"`
	CashModes         []string     `json:"cashModes" yaml:"cash_modes"`
}

// GeneralInfo holds the pump's identity and contact details.
type GeneralInfo struct {
	PumpName    string `json:"pumpName" yaml:"pump_name"`
	DealerName  string `json:"dealerName" yaml:"dealer_name"`
	Address     string `json:"address" yaml:"address"`
	Phone       string `json:"phone" yaml:"phone"`
	Email       string `json:"email" yaml:"email"`
	GSTNumber   string `json:"gstNumber" yaml:"gst_number"`
	OpeningDate string `json:"openingDate" yaml:"opening_date"`
}

// FuelRecord is one dispensed product. ID is derived from the name at
// creation time and never changes afterwards, even if the fuel is
// renamed.
type FuelRecord struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Price       float64 `json:"price" yaml:"price"`
	NozzleCount int     `json:"nozzleCount" yaml:"nozzle_count"`
}

// Creditor is a customer buying fuel on credit, shown in the creditor
// directory.
type Creditor struct {
	Name        string  `json:"name" yaml:"name"`
	Phone       string  `json:"phone" yaml:"phone"`
	Outstanding float64 `json:"outstanding" yaml:"outstanding"`
}

// SalesPoint is one bucket of the dashboard sales summary.
type SalesPoint struct {
	Label  string  `json:"label" yaml:"label"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// DefaultDocument returns an empty but valid document, used when the
// backend cannot be reached so the UI stays usable.
func DefaultDocument() *SettingsDocument {
	return &SettingsDocument{
		Fuels:             []FuelRecord{},
		CreditTypes:       []string{},
		ExpenseCategories: []string{},
		CashModes:         []string{},
	}
}

// FuelID derives a fuel's id from its display name: lowercased, spaces
// replaced with hyphens.
func FuelID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// FindFuel returns the index of the fuel with the given id, or -1.
func (d *SettingsDocument) FindFuel(id string) int {
	for i, f := range d.Fuels {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// HasLabel reports whether the label is already present in the set.
func HasLabel(set []string, label string) bool {
	for _, l := range set {
		if l == label {
			return true
		}
	}
	return false
}
