package settings

import (
	"fmt"

	"github.com/forecourt/forecourt-cli/pkg/models"
)

// CurrencyGlyph prefixes every rendered money amount.
const CurrencyGlyph = "₹"

// FormatCurrency renders an amount with the currency glyph and a fixed
// two-decimal mantissa.
func FormatCurrency(v float64) string {
	return fmt.Sprintf("%s%.2f", CurrencyGlyph, v)
}

// generalFields drives the pairwise scalar comparison for the general
// section. Order here is the order changes are reported in.
var generalFields = []struct {
	label string
	get   func(*models.GeneralInfo) string
}{
	{"Pump Name", func(g *models.GeneralInfo) string { return g.PumpName }},
	{"Dealer Name", func(g *models.GeneralInfo) string { return g.DealerName }},
	{"Address", func(g *models.GeneralInfo) string { return g.Address }},
	{"Phone", func(g *models.GeneralInfo) string { return g.Phone }},
	{"Email", func(g *models.GeneralInfo) string { return g.Email }},
	{"GST Number", func(g *models.GeneralInfo) string { return g.GSTNumber }},
	{"Opening Date", func(g *models.GeneralInfo) string { return g.OpeningDate }},
}

func diffGeneral(before, after *models.SettingsDocument) []string {
	var old models.GeneralInfo
	if before != nil {
		old = before.General
	}
	var cur models.GeneralInfo
	if after != nil {
		cur = after.General
	}

	var changes []string
	for _, f := range generalFields {
		// Unset-to-set and set-to-unset both count; empty values render
		// as "", never a null placeholder.
		if f.get(&old) != f.get(&cur) {
			changes = append(changes, fmt.Sprintf("%s will be changed to %q.", f.label, f.get(&cur)))
		}
	}
	return changes
}

func diffRates(before, after *models.SettingsDocument) []string {
	byID := make(map[string]models.FuelRecord)
	if before != nil {
		for _, f := range before.Fuels {
			byID[f.ID] = f
		}
	}

	var changes []string
	if after == nil {
		return changes
	}
	for _, f := range after.Fuels {
		old, ok := byID[f.ID]
		if !ok {
			continue // new fuels are reported by the nozzles diff
		}
		if old.Price != f.Price {
			changes = append(changes, fmt.Sprintf("%s price will be changed from %s to %s.",
				f.Name, FormatCurrency(old.Price), FormatCurrency(f.Price)))
		}
	}
	return changes
}

func diffNozzles(before, after *models.SettingsDocument) []string {
	beforeByID := make(map[string]models.FuelRecord)
	if before != nil {
		for _, f := range before.Fuels {
			beforeByID[f.ID] = f
		}
	}
	afterByID := make(map[string]models.FuelRecord)
	if after != nil {
		for _, f := range after.Fuels {
			afterByID[f.ID] = f
		}
	}

	// Count changes, additions, and removals are independent checks; a
	// single save can produce all three.
	var changes []string
	if after != nil {
		for _, f := range after.Fuels {
			old, ok := beforeByID[f.ID]
			if !ok {
				changes = append(changes, fmt.Sprintf("New fuel %q will be added with %d %s at %s.",
					f.Name, f.NozzleCount, pluralNozzles(f.NozzleCount), FormatCurrency(f.Price)))
				continue
			}
			if old.NozzleCount != f.NozzleCount {
				changes = append(changes, fmt.Sprintf("%s nozzle count will be changed from %d to %d.",
					f.Name, old.NozzleCount, f.NozzleCount))
			}
		}
	}
	if before != nil {
		for _, f := range before.Fuels {
			if _, ok := afterByID[f.ID]; !ok {
				changes = append(changes, fmt.Sprintf("Fuel %q will be removed.", f.Name))
			}
		}
	}
	return changes
}

func pluralNozzles(n int) string {
	if n == 1 {
		return "nozzle"
	}
	return "nozzles"
}

// diffLabels reports set differences both ways: additions in after's
// order, then removals in before's order.
func diffLabels(noun string, before, after []string) []string {
	var changes []string
	for _, l := range after {
		if !models.HasLabel(before, l) {
			changes = append(changes, fmt.Sprintf("%s %q will be added.", noun, l))
		}
	}
	for _, l := range before {
		if !models.HasLabel(after, l) {
			changes = append(changes, fmt.Sprintf("%s %q will be removed.", noun, l))
		}
	}
	return changes
}
