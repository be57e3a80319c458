package stress

import (
	"hazard217/internal/component"
	"hazard217/internal/taxonomy"
)

// Model calculates the parts stress hazard rate for one part category.
// Add a category by registering another Model; the dispatcher stays the same.
type Model interface {
	Calculate(c component.Component) (WorkRecord, error)
	Category() taxonomy.Category
}

// WorkRecord accumulates everything one prediction computed. A fresh record
// is built per call and never shared.
type WorkRecord struct {
	Equation   string   `json:"equation"`
	LambdaB    float64  `json:"lambda_b"`
	Factors    []Factor `json:"factors"`
	Derived    []Factor `json:"derived,omitempty"`
	HazardRate float64  `json:"hazard_rate"`
}

// Factor is one named correction factor or derived quantity.
type Factor struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Description string  `json:"description,omitempty"`
}

func newRecord(equation string) *WorkRecord {
	return &WorkRecord{Equation: equation}
}

// factor records a correction factor and hands its value back so the
// caller can keep composing.
func (w *WorkRecord) factor(name, desc string, v float64) float64 {
	w.Factors = append(w.Factors, Factor{Name: name, Value: v, Description: desc})
	return v
}

// derive records an intermediate quantity such as a junction temperature.
func (w *WorkRecord) derive(name string, v float64) float64 {
	w.Derived = append(w.Derived, Factor{Name: name, Value: v})
	return v
}

// Lookup returns a factor or derived value by name. "lambda_b" and
// "hazard_rate" are answered from the record itself.
func (w WorkRecord) Lookup(name string) (float64, bool) {
	switch name {
	case "lambda_b":
		return w.LambdaB, true
	case "hazard_rate":
		return w.HazardRate, true
	}
	for _, f := range w.Factors {
		if f.Name == name {
			return f.Value, true
		}
	}
	for _, f := range w.Derived {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

// Product multiplies the base rate by every recorded factor.
func (w WorkRecord) Product() float64 {
	p := w.LambdaB
	for _, f := range w.Factors {
		p *= f.Value
	}
	return p
}
