package models

import "strings"

// Local mutation helpers used both by the section editor (while a
// section is in edit mode) and by the ad hoc single-item controls.
// They only touch the in-memory document; persistence is the caller's
// concern.

// AddLabel appends a label to the set. Adding an already-present label
// is a no-op; the returned bool reports whether the set changed.
func AddLabel(set []string, label string) ([]string, bool) {
	label = strings.TrimSpace(label)
	if label == "" || HasLabel(set, label) {
		return set, false
	}
	return append(set, label), true
}

// RemoveLabel removes a label from the set if present.
func RemoveLabel(set []string, label string) ([]string, bool) {
	for i, l := range set {
		if l == label {
			return append(set[:i:i], set[i+1:]...), true
		}
	}
	return set, false
}

// AddFuel creates a new fuel record with a derived id. Adding a fuel
// whose derived id already exists is a no-op; the existing record is
// returned unchanged.
func (d *SettingsDocument) AddFuel(name string, price float64, nozzles int) (FuelRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return FuelRecord{}, ErrEmptyFuelName
	}
	if price <= 0 {
		return FuelRecord{}, ErrNonPositivePrice
	}
	if nozzles < 1 {
		nozzles = 1
	}
	id := FuelID(name)
	if i := d.FindFuel(id); i >= 0 {
		return d.Fuels[i], nil
	}
	f := FuelRecord{ID: id, Name: name, Price: price, NozzleCount: nozzles}
	d.Fuels = append(d.Fuels, f)
	return f, nil
}

// SetFuelPrice changes one fuel's price in place.
func (d *SettingsDocument) SetFuelPrice(id string, price float64) error {
	if price <= 0 {
		return ErrNonPositivePrice
	}
	i := d.FindFuel(id)
	if i < 0 {
		return ErrUnknownFuel
	}
	d.Fuels[i].Price = price
	return nil
}

// IncrementNozzle adds one nozzle to the fuel.
func (d *SettingsDocument) IncrementNozzle(id string) error {
	i := d.FindFuel(id)
	if i < 0 {
		return ErrUnknownFuel
	}
	d.Fuels[i].NozzleCount++
	return nil
}

// DecrementNozzle removes one nozzle from the fuel. A fuel never has
// zero nozzles: decrementing past one deletes the record entirely.
// The returned bool reports whether the fuel was deleted.
func (d *SettingsDocument) DecrementNozzle(id string) (bool, error) {
	i := d.FindFuel(id)
	if i < 0 {
		return false, ErrUnknownFuel
	}
	if d.Fuels[i].NozzleCount <= 1 {
		d.Fuels = append(d.Fuels[:i:i], d.Fuels[i+1:]...)
		return true, nil
	}
	d.Fuels[i].NozzleCount--
	return false, nil
}

// RemoveFuel deletes the fuel with the given id.
func (d *SettingsDocument) RemoveFuel(id string) error {
	i := d.FindFuel(id)
	if i < 0 {
		return ErrUnknownFuel
	}
	d.Fuels = append(d.Fuels[:i:i], d.Fuels[i+1:]...)
	return nil
}
