// Package tables holds the MIL-HDBK-217F parts count tables: base hazard
// rates per environment and quality factors, keyed by a composite of
// subcategory, variant (specification, type, family or technology) and an
// optional complexity index.
//
// Every table is a package-level value that is never written after init,
// so lookups are safe from any number of goroutines.
package tables

import (
	"fmt"

	"hazard217/internal/errs"
	"hazard217/internal/taxonomy"
)

// Row is one value per active environment, GB through CL.
type Row [taxonomy.NumEnvironments]float64

// Value returns the entry for env. A zero entry marks an environment the
// handbook does not cover and is reported as a missing key.
func (r Row) Value(table string, env taxonomy.Environment) (float64, error) {
	idx, err := env.Index()
	if err != nil {
		return 0, err
	}
	if r[idx] == 0 {
		return 0, errs.MissingKey(table, "environment "+env.Code())
	}
	return r[idx], nil
}

// Key addresses a parts count row. Unused parts stay zero.
type Key struct {
	Subcategory int
	Variant     int
	Index       int
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%d/%d", k.Subcategory, k.Variant, k.Index)
}

type countTable struct {
	name    string
	rows    map[Key]Row
	quality map[Key][]float64
}

// row resolves k, falling back to the variant-free key for subcategories
// whose base rate does not depend on the variant.
func (t *countTable) row(k Key) (Row, error) {
	if r, ok := t.rows[k]; ok {
		return r, nil
	}
	if k.Variant != 0 {
		if r, ok := t.rows[Key{Subcategory: k.Subcategory, Index: k.Index}]; ok {
			return r, nil
		}
	}
	return Row{}, errs.MissingKey(t.name+" base hazard rate", k)
}

func (t *countTable) qualityList(k Key) ([]float64, error) {
	for _, candidate := range []Key{
		{Subcategory: k.Subcategory, Variant: k.Variant},
		{Subcategory: k.Subcategory},
		{},
	} {
		if list, ok := t.quality[candidate]; ok {
			return list, nil
		}
	}
	return nil, errs.MissingKey(t.name+" quality factor", k)
}

var partCount = map[taxonomy.Category]*countTable{
	taxonomy.IntegratedCircuit: icCount,
	taxonomy.Semiconductor:     semiconductorCount,
	taxonomy.Resistor:          resistorCount,
	taxonomy.Capacitor:         capacitorCount,
	taxonomy.Inductor:          inductorCount,
	taxonomy.Relay:             relayCount,
	taxonomy.Switch:            switchCount,
	taxonomy.Connection:        connectionCount,
	taxonomy.Meter:             meterCount,
	taxonomy.Miscellaneous:     miscCount,
}

func table(cat taxonomy.Category) (*countTable, error) {
	t, ok := partCount[cat]
	if !ok {
		return nil, errs.MissingKey("part count tables", cat)
	}
	return t, nil
}

// LambdaB returns the parts count base hazard rate (failures/10^6 hours).
// An environment outside 1..14 is reported before the key is resolved so
// every category rejects it the same way.
func LambdaB(cat taxonomy.Category, key Key, env taxonomy.Environment) (float64, error) {
	if _, err := env.Index(); err != nil {
		return 0, err
	}
	t, err := table(cat)
	if err != nil {
		return 0, err
	}
	r, err := t.row(key)
	if err != nil {
		return 0, err
	}
	return r.Value(t.name+" base hazard rate", env)
}

// QualityFactor returns the parts count quality factor for a 1-based
// quality level.
func QualityFactor(cat taxonomy.Category, key Key, quality int) (float64, error) {
	t, err := table(cat)
	if err != nil {
		return 0, err
	}
	list, err := t.qualityList(key)
	if err != nil {
		return 0, err
	}
	return Pick(list, quality, "quality_id")
}

// Pick returns the 1-based entry id of list, reporting an out-of-range id
// against field.
func Pick(list []float64, id int, field string) (float64, error) {
	if id < 1 || id > len(list) {
		return 0, errs.OutOfRange(field, float64(id), 1, float64(len(list)))
	}
	return list[id-1], nil
}
