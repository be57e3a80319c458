// Package stress implements the MIL-HDBK-217F parts stress models: a base
// hazard rate from temperature and electrical stress, corrected by the
// quality, environment and construction factors that apply to the part's
// subcategory.
//
// Models are stateless. Every constant table is package-level and read-only,
// so Calculate may be called from any number of goroutines.
package stress

import (
	"hazard217/internal/component"
	"hazard217/internal/errs"
	"hazard217/internal/taxonomy"
)

// models is the registry of parts stress models, one per category.
var models = map[taxonomy.Category]Model{
	taxonomy.IntegratedCircuit: &ICModel{},
	taxonomy.Semiconductor:     &SemiconductorModel{},
	taxonomy.Resistor:          &ResistorModel{},
	taxonomy.Capacitor:         &CapacitorModel{},
	taxonomy.Inductor:          &InductorModel{},
	taxonomy.Relay:             &RelayModel{},
	taxonomy.Switch:            &SwitchModel{},
	taxonomy.Connection:        &ConnectionModel{},
	taxonomy.Meter:             &MeterModel{},
	taxonomy.Miscellaneous:     &MiscModel{},
}

// For returns the model registered for cat.
func For(cat taxonomy.Category) (Model, bool) {
	m, ok := models[cat]
	return m, ok
}

// Calculate validates c and runs its category's model. The component is
// never modified.
func Calculate(c component.Component) (WorkRecord, error) {
	if err := c.Validate(); err != nil {
		return WorkRecord{}, err
	}
	m, ok := models[c.Category]
	if !ok {
		return WorkRecord{}, errs.MissingKey("parts stress models", c.Category)
	}
	return m.Calculate(c)
}
