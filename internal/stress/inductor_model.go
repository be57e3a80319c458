package stress

import (
	"math"

	"hazard217/internal/component"
	"hazard217/internal/errs"
	"hazard217/internal/tables"
	"hazard217/internal/taxonomy"
)

// InductorModel covers transformers (subcategory 1) and coils (2).
type InductorModel struct{}

func (m *InductorModel) Category() taxonomy.Category { return taxonomy.Inductor }

// λb = K1·exp((Ths/Tref)^K2), by subcategory then insulation class.
var inductorLambdaFactors = map[int][][3]float64{
	1: {
		{0.0018, 329, 15.6},
		{0.002, 352, 14.0},
		{0.0018, 364, 8.7},
		{0.002, 400, 10.0},
		{0.00125, 398, 3.8},
		{0.00159, 477, 8.4},
	},
	2: {
		{0.000335, 329, 15.6},
		{0.000379, 352, 14.0},
		{0.000319, 364, 8.7},
		{0.00035, 409, 10.0},
		{0.0002, 398, 3.8},
		{0.000254, 477, 8.4},
	},
}

var inductorQuality = map[int][]float64{
	1: {1.5, 5.0},
	2: {0.03, 0.1, 0.3, 1.0, 4.0, 20.0},
}

var inductorEnvironment = map[int]tables.Row{
	1: {1, 6, 12, 5, 16, 6, 8, 7, 9, 24, 0.5, 13, 34, 610},
	2: {1, 4, 12, 5, 16, 5, 7, 6, 8, 24, 0.5, 13, 34, 610},
}

var inductorConstruction = []float64{1.0, 2.0}

// Typical temperature rise (°C) by MIL spec sheet page when no loss or
// geometry data is available.
var specSheetRise = map[int]float64{
	1: 15, 2: 15, 3: 15, 4: 35, 5: 15, 6: 35, 7: 15,
	8: 35, 9: 15, 10: 15, 11: 35, 12: 35, 13: 15, 14: 15,
}

// TemperatureRise estimates the winding temperature rise above ambient
// from the best data available on the part. Power loss needs a surface area
// or weight and input power needs a weight; a part with none of a rise,
// usable power data or a known spec sheet page has no rise to offer.
func TemperatureRise(c component.Component) (float64, error) {
	p, err := partOf[*component.Inductor](c)
	if err != nil {
		return 0, err
	}
	input := c.VoltageDCOperating * c.CurrentOperating
	switch {
	case p.TemperatureRise > 0:
		return p.TemperatureRise, nil
	case c.PowerOperating > 0 && p.Area <= 0 && p.Weight > 0:
		return RiseFromPowerWeight(c.PowerOperating, p.Weight)
	case c.PowerOperating > 0:
		return RiseFromPowerArea(c.PowerOperating, p.Area)
	case input > 0:
		return RiseFromInputPowerWeight(input, p.Weight)
	}
	if rise, ok := specSheetRise[p.SpecSheetPage]; ok {
		return rise, nil
	}
	return 0, errs.Required("temperature_rise")
}

// RiseFromPowerArea uses the power loss (W) and radiating surface (in²).
func RiseFromPowerArea(power, area float64) (float64, error) {
	if area <= 0 {
		return 0, errs.DivisionByZero("area")
	}
	return 125 * power / area, nil
}

// RiseFromPowerWeight uses the power loss (W) and weight (lb).
func RiseFromPowerWeight(power, weight float64) (float64, error) {
	if weight <= 0 {
		return 0, errs.DivisionByZero("weight")
	}
	return 11.5 * power / math.Pow(weight, 0.6766), nil
}

// RiseFromInputPowerWeight uses the input power (W) and weight (lb).
func RiseFromInputPowerWeight(input, weight float64) (float64, error) {
	if weight <= 0 {
		return 0, errs.DivisionByZero("weight")
	}
	return 2.1 * input / math.Pow(weight, 0.6766), nil
}

// HotSpotTemperature is the winding hot spot for an ambient and rise.
func HotSpotTemperature(ambient, rise float64) float64 {
	return ambient + 1.1*rise
}

func inductorLambdaB(sub, insulation int, hotSpot float64) (float64, error) {
	rows, ok := inductorLambdaFactors[sub]
	if !ok || insulation < 1 || insulation > len(rows) {
		return 0, errs.MissingKey("inductor base hazard rate", sub, insulation)
	}
	f := rows[insulation-1]
	return f[0] * math.Exp(math.Pow(kelvin(hotSpot)/f[1], f[2])), nil
}

func (m *InductorModel) Calculate(c component.Component) (WorkRecord, error) {
	p, err := partOf[*component.Inductor](c)
	if err != nil {
		return WorkRecord{}, err
	}
	rise, err := TemperatureRise(c)
	if err != nil {
		return WorkRecord{}, err
	}

	w := newRecord("lambdaB * piQ * piE * piC")
	w.derive("temperature_rise", rise)
	ths := w.derive("temperature_hot_spot", HotSpotTemperature(c.TemperatureActive, rise))

	if w.LambdaB, err = inductorLambdaB(c.Subcategory, p.Insulation, ths); err != nil {
		return WorkRecord{}, err
	}

	piQ, err := quality(inductorQuality[c.Subcategory], c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piQ", "quality", piQ)

	piE, err := environment(inductorEnvironment[c.Subcategory], "inductor environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piE", "environment", piE)

	piC, err := pick(inductorConstruction, p.Construction, "construction_id", "inductor construction factor")
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piC", "construction", piC)

	w.HazardRate = w.Product()
	return *w, nil
}
