// Package derating checks a part's electrical and thermal stresses against
// the limits for its environment's severity class and explains every
// violation it finds.
package derating

import (
	"fmt"
	"strings"

	"hazard217/internal/component"
	"hazard217/internal/errs"
	"hazard217/internal/limits"
	"hazard217/internal/stress"
	"hazard217/internal/taxonomy"
)

// LimitCheck is the outcome of comparing one value against a band.
type LimitCheck struct {
	LowerViolated bool
	UpperViolated bool
}

// Violated reports whether either side of the band was crossed.
func (c LimitCheck) Violated() bool { return c.LowerViolated || c.UpperViolated }

// CheckLimit compares value against l. Values equal to a bound are within
// the limit.
func CheckLimit(value float64, l limits.Limit) LimitCheck {
	return LimitCheck{
		LowerViolated: value < l.Lower,
		UpperViolated: value > l.Upper,
	}
}

// Result collects the violations found for one part.
type Result struct {
	Overstress bool     `json:"overstress"`
	Reasons    []string `json:"reasons,omitempty"`
}

// Reason joins the individual violation messages.
func (r Result) Reason() string { return strings.Join(r.Reasons, " ") }

// Merge ORs the overstress flags and concatenates the reasons.
func (r Result) Merge(o Result) Result {
	out := Result{Overstress: r.Overstress || o.Overstress}
	out.Reasons = append(out.Reasons, r.Reasons...)
	out.Reasons = append(out.Reasons, o.Reasons...)
	return out
}

// Ratios are the operating to rated stress ratios of a part.
type Ratios struct {
	Current float64 `json:"current_ratio"`
	Power   float64 `json:"power_ratio"`
	Voltage float64 `json:"voltage_ratio"`
}

// StressRatios computes the current, power and voltage ratios. The voltage
// ratio uses the combined AC and DC operating voltage.
func StressRatios(c component.Component) (Ratios, error) {
	var r Ratios
	var err error
	if r.Current, err = c.CurrentRatio(); err != nil {
		return Ratios{}, err
	}
	if r.Power, err = c.PowerRatio(); err != nil {
		return Ratios{}, err
	}
	if r.Voltage, err = c.VoltageRatio(); err != nil {
		return Ratios{}, err
	}
	return r, nil
}

// Limit groups for integrated circuits and semiconductors. Every other
// category uses its subcategory as the group.
const (
	icLinear = iota + 1
	icLogic
	icMicroprocessor
	icMemory
	icGaAs
	icVHSIC
)

const (
	semiDiode = iota + 1
	semiTransistor
	semiThyristor
	semiOpto
)

// KeyFor returns the limit table key for c.
func KeyFor(c component.Component) limits.Key {
	k := limits.Key{Category: c.Category, Group: c.Subcategory, Quality: c.Quality}
	switch c.Category {
	case taxonomy.IntegratedCircuit:
		k.Group = icGroup(c.Subcategory)
		if p, ok := c.Part.(*component.IntegratedCircuit); ok {
			k.Technology = p.Technology
		}
	case taxonomy.Semiconductor:
		k.Group = semiconductorGroup(c.Subcategory)
	}
	return k
}

func icGroup(sub int) int {
	switch {
	case sub == 1:
		return icLinear
	case sub == 2 || sub == 3:
		return icLogic
	case sub == 4:
		return icMicroprocessor
	case sub >= 5 && sub <= 8:
		return icMemory
	case sub == 9:
		return icGaAs
	case sub == 10:
		return icVHSIC
	}
	return 0
}

func semiconductorGroup(sub int) int {
	switch {
	case sub == 1 || sub == 2:
		return semiDiode
	case sub >= 3 && sub <= 9:
		return semiTransistor
	case sub == 10:
		return semiThyristor
	case sub >= 11 && sub <= 13:
		return semiOpto
	}
	return 0
}

// OperatingTemperature is the temperature the thermal limits apply to:
// the junction for integrated circuits and semiconductors, the hot spot
// for inductive devices and the active ambient for everything else.
func OperatingTemperature(c component.Component) (float64, error) {
	switch p := c.Part.(type) {
	case *component.IntegratedCircuit:
		return p.TemperatureCase + p.ThetaJC*c.PowerOperating, nil
	case *component.Semiconductor:
		return p.TemperatureCase + p.ThetaJC*c.PowerOperating, nil
	case *component.Inductor:
		rise, err := stress.TemperatureRise(c)
		if err != nil {
			return 0, err
		}
		return stress.HotSpotTemperature(c.TemperatureActive, rise), nil
	}
	return c.TemperatureActive, nil
}

// CheckOverstress runs every limit the table defines for c's key in the
// severity class of its active environment.
func CheckOverstress(c component.Component, t *limits.Table) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	class, err := t.Classify(c.EnvironmentActive)
	if err != nil {
		return Result{}, err
	}
	set := t.Lookup(KeyFor(c))

	m := measure{c: c}
	var res Result
	for _, kind := range limits.Kinds() {
		l, ok := set[kind][class]
		if !ok {
			continue
		}
		value, err := m.value(kind)
		if err != nil {
			return Result{}, err
		}
		check := CheckLimit(value, l)
		if !check.Violated() {
			continue
		}
		res.Overstress = true
		res.Reasons = append(res.Reasons, message(kind, class, value, l, check))
	}
	return res, nil
}

// measure computes each stress value at most once.
type measure struct {
	c        component.Component
	temp     float64
	haveTemp bool
}

func (m *measure) temperature() (float64, error) {
	if !m.haveTemp {
		t, err := OperatingTemperature(m.c)
		if err != nil {
			return 0, err
		}
		m.temp, m.haveTemp = t, true
	}
	return m.temp, nil
}

func (m *measure) value(kind limits.StressKind) (float64, error) {
	switch kind {
	case limits.Current:
		return m.c.CurrentRatio()
	case limits.Power:
		return m.c.PowerRatio()
	case limits.Voltage:
		return m.c.VoltageRatio()
	case limits.Temperature:
		return m.temperature()
	case limits.TemperatureMargin:
		if m.c.TemperatureRatedMax <= 0 {
			return 0, errs.OutOfRange("temperature_rated_max", m.c.TemperatureRatedMax, 0, 1000)
		}
		t, err := m.temperature()
		if err != nil {
			return 0, err
		}
		return m.c.TemperatureRatedMax - t, nil
	}
	return 0, errs.MissingKey("stress kinds", kind)
}

var kindLabels = map[limits.StressKind]string{
	limits.Current:           "Current ratio",
	limits.Power:             "Power ratio",
	limits.Voltage:           "Voltage ratio",
	limits.Temperature:       "Temperature",
	limits.TemperatureMargin: "Temperature margin",
}

func message(kind limits.StressKind, class taxonomy.SeverityClass, value float64, l limits.Limit, check LimitCheck) string {
	format := func(v float64) string { return fmt.Sprintf("%.2f", v) }
	if kind == limits.Temperature || kind == limits.TemperatureMargin {
		format = func(v float64) string { return fmt.Sprintf("%.1f °C", v) }
	}
	if check.UpperViolated {
		return fmt.Sprintf("%s %s is greater than the %s environment upper limit of %s.",
			kindLabels[kind], format(value), class, format(l.Upper))
	}
	return fmt.Sprintf("%s %s is less than the %s environment lower limit of %s.",
		kindLabels[kind], format(value), class, format(l.Lower))
}
