package models

// Clone returns a structural deep copy of the document. The edit
// workflow mutates the live document in place, so snapshots must share
// no slices with it.
func (d *SettingsDocument) Clone() *SettingsDocument {
	if d == nil {
		return DefaultDocument()
	}
	c := &SettingsDocument{
		General:           d.General,
		Fuels:             make([]FuelRecord, len(d.Fuels)),
		CreditTypes:       make([]string, len(d.CreditTypes)),
		ExpenseCategories: make([]string, len(d.ExpenseCategories)),
		CashModes:         make([]string, len(d.CashModes)),
	}
	copy(c.Fuels, d.Fuels)
	copy(c.CreditTypes, d.CreditTypes)
	copy(c.ExpenseCategories, d.ExpenseCategories)
	copy(c.CashModes, d.CashModes)
	return c
}
