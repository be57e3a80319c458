// Package limits loads the derating limit tables: for each part category
// (optionally narrowed by group, technology and quality) and stress kind,
// the [lower, upper] pair that applies in each environment severity class.
//
// A Table is built once and never written afterwards, so it may be shared
// by any number of goroutines.
package limits

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"hazard217/internal/errs"
	"hazard217/internal/taxonomy"
)

//go:embed defaults.toml
var defaultsTOML []byte

// StressKind names the quantity a limit applies to.
type StressKind string

const (
	Current           StressKind = "current"
	Power             StressKind = "power"
	Voltage           StressKind = "voltage"
	Temperature       StressKind = "temperature"
	TemperatureMargin StressKind = "temperature_margin"
)

// Kinds lists the stress kinds in the order they are checked.
func Kinds() []StressKind {
	return []StressKind{Current, Power, Voltage, Temperature, TemperatureMargin}
}

func (k StressKind) valid() bool {
	switch k {
	case Current, Power, Voltage, Temperature, TemperatureMargin:
		return true
	}
	return false
}

// Limit is a closed [Lower, Upper] band. An infinite bound leaves that side
// open.
type Limit struct {
	Lower float64
	Upper float64
}

// ClassLimits holds one band per severity class. A class without an entry
// is not checked.
type ClassLimits map[taxonomy.SeverityClass]Limit

// Key addresses a set of limits. Zero fields match any value.
type Key struct {
	Category   taxonomy.Category
	Group      int
	Technology int
	Quality    int
}

// Table is a loaded set of derating limits.
type Table struct {
	entries  map[Key]map[StressKind]ClassLimits
	severity taxonomy.SeverityMap
}

type document struct {
	Severity *severitySection `toml:"severity"`
	Limit    []entry          `toml:"limit"`
}

type severitySection struct {
	Protected []int `toml:"protected"`
	Normal    []int `toml:"normal"`
}

type entry struct {
	Category   int       `toml:"category"`
	Group      int       `toml:"group"`
	Technology int       `toml:"technology"`
	Quality    int       `toml:"quality"`
	Kind       string    `toml:"kind"`
	Protected  []float64 `toml:"protected"`
	Normal     []float64 `toml:"normal"`
	Severe     []float64 `toml:"severe"`
}

func decode(data []byte) (document, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return document{}, err
	}
	return doc, nil
}

// Parse builds a table from TOML limit data alone.
func Parse(data []byte) (*Table, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse limits: %w", err)
	}
	t := &Table{
		entries:  make(map[Key]map[StressKind]ClassLimits),
		severity: taxonomy.DefaultSeverity(),
	}
	if err := t.apply(doc); err != nil {
		return nil, err
	}
	return t, nil
}

var defaults = sync.OnceValues(func() (*Table, error) {
	t, err := Parse(defaultsTOML)
	if err != nil {
		return nil, fmt.Errorf("parse defaults.toml: %w", err)
	}
	return t, nil
})

// Default returns the built-in limits. The table is parsed once and shared.
func Default() (*Table, error) {
	return defaults()
}

// Load reads a limits file and overlays it on the built-in limits. Entries
// in the file replace the classes they name for their key and kind; a
// [severity] section replaces the whole environment map.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read limits file: %w", err)
	}
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	base, err := Default()
	if err != nil {
		return nil, err
	}
	t := base.clone()
	if err := t.apply(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (t *Table) clone() *Table {
	out := &Table{
		entries:  make(map[Key]map[StressKind]ClassLimits, len(t.entries)),
		severity: make(taxonomy.SeverityMap, len(t.severity)),
	}
	for k, kinds := range t.entries {
		cp := make(map[StressKind]ClassLimits, len(kinds))
		for kind, classes := range kinds {
			cp[kind] = classes.clone()
		}
		out.entries[k] = cp
	}
	for e, c := range t.severity {
		out.severity[e] = c
	}
	return out
}

func (c ClassLimits) clone() ClassLimits {
	out := make(ClassLimits, len(c))
	for class, l := range c {
		out[class] = l
	}
	return out
}

func (t *Table) apply(doc document) error {
	if doc.Severity != nil {
		m, err := severityMap(*doc.Severity)
		if err != nil {
			return err
		}
		t.severity = m
	}
	for i, e := range doc.Limit {
		if err := t.add(e); err != nil {
			return fmt.Errorf("limit entry %d: %w", i+1, err)
		}
	}
	return nil
}

func (t *Table) add(e entry) error {
	cat := taxonomy.Category(e.Category)
	if !cat.Valid() {
		return errs.OutOfRange("category", float64(e.Category), 1, 10)
	}
	kind := StressKind(e.Kind)
	if !kind.valid() {
		return errs.MissingKey("stress kinds", e.Kind)
	}
	key := Key{Category: cat, Group: e.Group, Technology: e.Technology, Quality: e.Quality}
	kinds, ok := t.entries[key]
	if !ok {
		kinds = make(map[StressKind]ClassLimits)
		t.entries[key] = kinds
	}
	classes, ok := kinds[kind]
	if !ok {
		classes = make(ClassLimits)
		kinds[kind] = classes
	}
	for _, c := range []struct {
		class taxonomy.SeverityClass
		pair  []float64
	}{
		{taxonomy.Protected, e.Protected},
		{taxonomy.Normal, e.Normal},
		{taxonomy.Severe, e.Severe},
	} {
		if c.pair == nil {
			continue
		}
		l, err := pairLimit(c.class, c.pair)
		if err != nil {
			return err
		}
		classes[c.class] = l
	}
	return nil
}

func pairLimit(class taxonomy.SeverityClass, pair []float64) (Limit, error) {
	if len(pair) != 2 {
		return Limit{}, fmt.Errorf("%s limit has %d values, want [lower, upper]", class, len(pair))
	}
	l := Limit{Lower: pair[0], Upper: pair[1]}
	if math.IsNaN(l.Lower) || math.IsNaN(l.Upper) || l.Lower > l.Upper {
		return Limit{}, fmt.Errorf("%s limit [%g, %g] is not a valid band", class, l.Lower, l.Upper)
	}
	return l, nil
}

// severityMap starts from every environment severe and applies the listed
// protected and normal environments.
func severityMap(s severitySection) (taxonomy.SeverityMap, error) {
	m := make(taxonomy.SeverityMap, taxonomy.NumEnvironments)
	for e := taxonomy.GroundBenign; e <= taxonomy.CannonLaunch; e++ {
		m[e] = taxonomy.Severe
	}
	seen := make(map[taxonomy.Environment]bool)
	for _, group := range []struct {
		class taxonomy.SeverityClass
		ids   []int
	}{
		{taxonomy.Protected, s.Protected},
		{taxonomy.Normal, s.Normal},
	} {
		for _, id := range group.ids {
			env := taxonomy.Environment(id)
			if _, err := env.Index(); err != nil {
				return nil, fmt.Errorf("severity %s: %w", group.class, err)
			}
			if seen[env] {
				return nil, fmt.Errorf("severity: environment %s listed twice", env.Code())
			}
			seen[env] = true
			m[env] = group.class
		}
	}
	return m, nil
}

// Severity returns a copy of the environment to severity class map.
func (t *Table) Severity() taxonomy.SeverityMap {
	out := make(taxonomy.SeverityMap, len(t.severity))
	for e, c := range t.severity {
		out[e] = c
	}
	return out
}

// Classify returns the severity class of an active environment.
func (t *Table) Classify(env taxonomy.Environment) (taxonomy.SeverityClass, error) {
	return t.severity.Classify(env)
}

// Lookup merges every entry matching k into one set of limits. Entries are
// applied from the most general to the most specific, group outranking
// technology and technology outranking quality, and a later entry replaces
// the classes it defines for its kind.
func (t *Table) Lookup(k Key) map[StressKind]ClassLimits {
	out := make(map[StressKind]ClassLimits)
	for mask := 0; mask < 8; mask++ {
		candidate := Key{Category: k.Category}
		if mask&4 != 0 {
			candidate.Group = k.Group
		}
		if mask&2 != 0 {
			candidate.Technology = k.Technology
		}
		if mask&1 != 0 {
			candidate.Quality = k.Quality
		}
		// A zero field in k collapses the candidate onto a more general
		// one that was already applied.
		if mask != fieldsSet(candidate) {
			continue
		}
		for kind, classes := range t.entries[candidate] {
			merged, ok := out[kind]
			if !ok {
				merged = make(ClassLimits, len(classes))
				out[kind] = merged
			}
			for class, l := range classes {
				merged[class] = l
			}
		}
	}
	return out
}

func fieldsSet(k Key) int {
	mask := 0
	if k.Group != 0 {
		mask |= 4
	}
	if k.Technology != 0 {
		mask |= 2
	}
	if k.Quality != 0 {
		mask |= 1
	}
	return mask
}

// Len reports the number of distinct keys in the table.
func (t *Table) Len() int { return len(t.entries) }
