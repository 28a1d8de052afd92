package settings

import (
	"reflect"
	"testing"

	"github.com/forecourt/forecourt-cli/pkg/models"
)

func TestDiffGeneralSingleField(t *testing.T) {
	before := &models.SettingsDocument{General: models.GeneralInfo{PumpName: "Old"}}
	after := &models.SettingsDocument{General: models.GeneralInfo{PumpName: "New"}}

	section, _ := ForID(SectionGeneral)
	got := section.Diff(before, after)
	want := []string{`Pump Name will be changed to "New".`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("diff = %v, want %v", got, want)
	}
}

func TestDiffGeneralUnsetTransitions(t *testing.T) {
	tests := []struct {
		name   string
		before models.GeneralInfo
		after  models.GeneralInfo
		want   []string
	}{
		{
			"unset to set",
			models.GeneralInfo{},
			models.GeneralInfo{DealerName: "R. Sharma"},
			[]string{`Dealer Name will be changed to "R. Sharma".`},
		},
		{
			"set to unset renders empty string",
			models.GeneralInfo{Email: "old@pump.in"},
			models.GeneralInfo{},
			[]string{`Email will be changed to "".`},
		},
		{
			"multiple fields in declaration order",
			models.GeneralInfo{PumpName: "A", Phone: "1"},
			models.GeneralInfo{PumpName: "B", Phone: "2"},
			[]string{
				`Pump Name will be changed to "B".`,
				`Phone will be changed to "2".`,
			},
		},
	}

	section, _ := ForID(SectionGeneral)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := section.Diff(
				&models.SettingsDocument{General: tt.before},
				&models.SettingsDocument{General: tt.after},
			)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("diff = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiffRatesPriceChange(t *testing.T) {
	before := &models.SettingsDocument{Fuels: []models.FuelRecord{
		{ID: "ms", Name: "MS", Price: 100, NozzleCount: 2},
	}}
	after := before.Clone()
	after.Fuels[0].Price = 105

	section, _ := ForID(SectionRates)
	got := section.Diff(before, after)
	want := []string{"MS price will be changed from ₹100.00 to ₹105.00."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("diff = %v, want %v", got, want)
	}
}

func TestDiffRatesIgnoresAdditionsAndRemovals(t *testing.T) {
	before := &models.SettingsDocument{Fuels: []models.FuelRecord{
		{ID: "ms", Name: "MS", Price: 100, NozzleCount: 2},
	}}
	after := &models.SettingsDocument{Fuels: []models.FuelRecord{
		{ID: "hsd", Name: "HSD", Price: 95, NozzleCount: 2},
	}}

	section, _ := ForID(SectionRates)
	if got := section.Diff(before, after); len(got) != 0 {
		t.Errorf("rates diff reported roster changes: %v", got)
	}
}

func TestDiffNozzles(t *testing.T) {
	tests := []struct {
		name   string
		before []models.FuelRecord
		after  []models.FuelRecord
		want   []string
	}{
		{
			"added fuel only",
			[]models.FuelRecord{{ID: "ms", Name: "MS", Price: 100, NozzleCount: 2}},
			[]models.FuelRecord{
				{ID: "ms", Name: "MS", Price: 100, NozzleCount: 2},
				{ID: "hsd", Name: "HSD", Price: 95, NozzleCount: 2},
			},
			[]string{`New fuel "HSD" will be added with 2 nozzles at ₹95.00.`},
		},
		{
			"removed fuel",
			[]models.FuelRecord{{ID: "ms", Name: "MS", Price: 100, NozzleCount: 2}},
			nil,
			[]string{`Fuel "MS" will be removed.`},
		},
		{
			"count change",
			[]models.FuelRecord{{ID: "ms", Name: "MS", Price: 100, NozzleCount: 2}},
			[]models.FuelRecord{{ID: "ms", Name: "MS", Price: 100, NozzleCount: 4}},
			[]string{"MS nozzle count will be changed from 2 to 4."},
		},
		{
			"single nozzle uses singular",
			nil,
			[]models.FuelRecord{{ID: "xp", Name: "XP", Price: 110, NozzleCount: 1}},
			[]string{`New fuel "XP" will be added with 1 nozzle at ₹110.00.`},
		},
		{
			"add remove and change in one save",
			[]models.FuelRecord{
				{ID: "ms", Name: "MS", Price: 100, NozzleCount: 2},
				{ID: "hsd", Name: "HSD", Price: 95, NozzleCount: 3},
			},
			[]models.FuelRecord{
				{ID: "ms", Name: "MS", Price: 100, NozzleCount: 1},
				{ID: "xp", Name: "XP", Price: 110, NozzleCount: 2},
			},
			[]string{
				"MS nozzle count will be changed from 2 to 1.",
				`New fuel "XP" will be added with 2 nozzles at ₹110.00.`,
				`Fuel "HSD" will be removed.`,
			},
		},
	}

	section, _ := ForID(SectionNozzles)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := section.Diff(
				&models.SettingsDocument{Fuels: tt.before},
				&models.SettingsDocument{Fuels: tt.after},
			)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("diff = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiffLabelSets(t *testing.T) {
	tests := []struct {
		name    string
		section SectionID
		before  *models.SettingsDocument
		after   *models.SettingsDocument
		want    []string
	}{
		{
			"credit type removed",
			SectionCreditTypes,
			&models.SettingsDocument{CreditTypes: []string{"Cash Credit"}},
			&models.SettingsDocument{CreditTypes: []string{}},
			[]string{`Credit type "Cash Credit" will be removed.`},
		},
		{
			"expense category added",
			SectionExpenseCategories,
			&models.SettingsDocument{},
			&models.SettingsDocument{ExpenseCategories: []string{"Electricity"}},
			[]string{`Expense category "Electricity" will be added.`},
		},
		{
			"cash mode added and removed, additions first",
			SectionCashModes,
			&models.SettingsDocument{CashModes: []string{"Cheque", "Cash"}},
			&models.SettingsDocument{CashModes: []string{"Cash", "UPI"}},
			[]string{
				`Cash mode "UPI" will be added.`,
				`Cash mode "Cheque" will be removed.`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, ok := ForID(tt.section)
			if !ok {
				t.Fatalf("unknown section %q", tt.section)
			}
			got := section.Diff(tt.before, tt.after)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("diff = %v, want %v", got, tt.want)
			}
		})
	}
}

// Symmetry: added = after∖before, removed = before∖after, and both are
// empty exactly when the sets match.
func TestDiffLabelSetSymmetry(t *testing.T) {
	tests := []struct {
		name      string
		before    []string
		after     []string
		wantEmpty bool
	}{
		{"identical", []string{"A", "B"}, []string{"A", "B"}, true},
		{"reordered but equal", []string{"A", "B"}, []string{"B", "A"}, true},
		{"disjoint", []string{"A"}, []string{"B"}, false},
		{"both empty", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diffLabels("Credit type", tt.before, tt.after)
			if (len(got) == 0) != tt.wantEmpty {
				t.Errorf("diffLabels(%v, %v) = %v, wantEmpty=%v", tt.before, tt.after, got, tt.wantEmpty)
			}
		})
	}
}

// diff(id, s, s) is always empty.
func TestDiffIdempotentUnderNoMutation(t *testing.T) {
	doc := &models.SettingsDocument{
		General:           models.GeneralInfo{PumpName: "Highway Fuels", Phone: "040-1234"},
		Fuels:             []models.FuelRecord{{ID: "ms", Name: "MS", Price: 100, NozzleCount: 2}},
		CreditTypes:       []string{"Cash Credit"},
		ExpenseCategories: []string{"Electricity"},
		CashModes:         []string{"UPI"},
	}

	for _, section := range Sections {
		if got := section.Diff(doc, doc.Clone()); len(got) != 0 {
			t.Errorf("%s: diff of identical values = %v, want empty", section.ID(), got)
		}
	}
}

// A missing snapshot must behave like an empty document, never panic.
func TestDiffNilBefore(t *testing.T) {
	after := &models.SettingsDocument{
		General:     models.GeneralInfo{PumpName: "Highway Fuels"},
		Fuels:       []models.FuelRecord{{ID: "ms", Name: "MS", Price: 100, NozzleCount: 2}},
		CreditTypes: []string{"Cash Credit"},
	}

	for _, section := range Sections {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("%s: diff with nil before panicked: %v", section.ID(), r)
				}
			}()
			section.Diff(nil, after)
		}()
	}

	section, _ := ForID(SectionCreditTypes)
	got := section.Diff(nil, after)
	want := []string{`Credit type "Cash Credit" will be added.`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("nil-before diff = %v, want %v", got, want)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{100, "₹100.00"},
		{105.5, "₹105.50"},
		{0, "₹0.00"},
		{99.999, "₹100.00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
