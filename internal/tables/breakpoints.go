package tables

import (
	"math"

	"hazard217/internal/errs"
)

var memoryBreakpoints = []float64{16000, 64000, 256000, 1000000}

// Element-count breakpoints for integrated circuits, keyed by subcategory
// and technology. Technology zero applies to every technology.
var elementBreakpoints = map[Key][]float64{
	{Subcategory: 1}:             {100, 300, 1000, 10000},
	{Subcategory: 2}:             {100, 1000, 3000, 10000, 30000, 60000},
	{Subcategory: 3, Variant: 1}: {200, 1000, 5000},
	{Subcategory: 3, Variant: 2}: memoryBreakpoints,
	{Subcategory: 4}:             {8, 16, 32},
	{Subcategory: 5}:             memoryBreakpoints,
	{Subcategory: 6}:             memoryBreakpoints,
	{Subcategory: 7}:             memoryBreakpoints,
	{Subcategory: 8}:             memoryBreakpoints,
	{Subcategory: 9, Variant: 1}: {10, 100},
	{Subcategory: 9, Variant: 2}: {1000, 10000},
}

// The GaAs MMIC die complexity factor uses wider bands than its parts
// count table.
var complexityBreakpoints = map[Key][]float64{
	{Subcategory: 9, Variant: 1}: {10, 1000},
}

// NearestIndex returns the 1-based position of the breakpoint closest to n.
// Ties resolve to the lower breakpoint.
func NearestIndex(breaks []float64, n float64) int {
	best := 0
	for i, b := range breaks {
		if math.Abs(b-n) < math.Abs(breaks[best]-n) {
			best = i
		}
	}
	return best + 1
}

func breakpointsFor(m map[Key][]float64, sub, technology int) ([]float64, bool) {
	if b, ok := m[Key{Subcategory: sub, Variant: technology}]; ok {
		return b, true
	}
	b, ok := m[Key{Subcategory: sub}]
	return b, ok
}

// ElementIndex maps an integrated circuit's element count to the 1-based
// complexity index used by the parts count table.
func ElementIndex(sub, technology int, elements float64) (int, error) {
	breaks, ok := breakpointsFor(elementBreakpoints, sub, technology)
	if !ok {
		return 0, errs.MissingKey("integrated circuit element breakpoints", sub, technology)
	}
	return NearestIndex(breaks, elements), nil
}

// ComplexityIndex maps an element count to the 1-based die complexity index
// used by the parts stress C1 table.
func ComplexityIndex(sub, technology int, elements float64) (int, error) {
	if breaks, ok := breakpointsFor(complexityBreakpoints, sub, technology); ok {
		return NearestIndex(breaks, elements), nil
	}
	return ElementIndex(sub, technology, elements)
}
