package stress

import (
	"fmt"
	"math"

	"hazard217/internal/component"
	"hazard217/internal/errs"
	"hazard217/internal/tables"
)

// boltzmann is Boltzmann's constant in eV/K.
const boltzmann = 8.617e-5

func kelvin(celsius float64) float64 { return celsius + 273 }

// arrhenius is the temperature acceleration exp(-Ea/k (1/T - 1/Tref)) with
// T in °C and Tref in K.
func arrhenius(ea, celsius, tref float64) float64 {
	return math.Exp(-ea / boltzmann * (1/kelvin(celsius) - 1/tref))
}

// thermal is the handbook form exp(-θ (1/T - 1/298)) with T in kelvin,
// used by semiconductors and film networks, θ = Ea/k already folded in.
func thermal(theta, celsius float64) float64 {
	return math.Exp(-theta * (1/kelvin(celsius) - 1.0/298))
}

// partOf narrows the component's Part to the variant a model expects.
func partOf[T component.Part](c component.Component) (T, error) {
	p, ok := c.Part.(T)
	if !ok {
		var zero T
		return zero, &errs.TypeMismatchError{
			Field: "part",
			Want:  fmt.Sprintf("%T", zero),
			Got:   fmt.Sprintf("%T", c.Part),
		}
	}
	return p, nil
}

func listFor[K comparable](m map[K][]float64, key K, table string) ([]float64, error) {
	list, ok := m[key]
	if !ok {
		return nil, errs.MissingKey(table, key)
	}
	return list, nil
}

func valueFor[K comparable](m map[K]float64, key K, table string) (float64, error) {
	v, ok := m[key]
	if !ok {
		return 0, errs.MissingKey(table, key)
	}
	return v, nil
}

func rowFor[K comparable](m map[K]tables.Row, key K, table string) (tables.Row, error) {
	r, ok := m[key]
	if !ok {
		return tables.Row{}, errs.MissingKey(table, key)
	}
	return r, nil
}

// pick returns the 1-based entry id of list. Zero entries mark
// combinations the handbook leaves undefined.
func pick(list []float64, id int, field, table string) (float64, error) {
	v, err := tables.Pick(list, id, field)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errs.MissingKey(table, id)
	}
	return v, nil
}

func quality(list []float64, c component.Component) (float64, error) {
	return tables.Pick(list, c.Quality, "quality_id")
}

func environment(row tables.Row, table string, c component.Component) (float64, error) {
	return row.Value(table, c.EnvironmentActive)
}

// band returns values[i] where i counts the breakpoints strictly below x.
// values must hold one more entry than breaks.
func band(breaks, values []float64, x float64) float64 {
	i := 0
	for i < len(breaks) && x > breaks[i] {
		i++
	}
	return values[i]
}

// positive rejects non-positive physical inputs that a formula divides by
// or takes the logarithm of.
func positive(field string, v float64) error {
	if v <= 0 {
		return errs.OutOfRange(field, v, math.SmallestNonzeroFloat64, math.Inf(1))
	}
	return nil
}
