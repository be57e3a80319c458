package stress

import (
	"math"

	"hazard217/internal/component"
	"hazard217/internal/errs"
	"hazard217/internal/tables"
	"hazard217/internal/taxonomy"
)

// ResistorModel covers fixed, network, thermistor and variable resistors.
type ResistorModel struct{}

func (m *ResistorModel) Category() taxonomy.Category { return taxonomy.Resistor }

// resistorKey selects per-specification constants; Spec is zero when the
// subcategory has a single set.
type resistorKey struct {
	Sub  int
	Spec int
}

// λb = f0·exp(f1·T/Tref)^f2 · exp(((S/f3)·(T/273)^f4)^f5), T in K.
var resistorLambdaFactors = map[resistorKey][6]float64{
	{Sub: 1}:          {4.5e-9, 12, 1, 0.6, 1, 1},
	{Sub: 2, Spec: 1}: {3.25e-4, 1, 3, 1, 1, 1},
	{Sub: 2, Spec: 2}: {3.25e-4, 1, 3, 1, 1, 1},
	{Sub: 2, Spec: 3}: {5e-5, 3.5, 1, 1, 1, 1},
	{Sub: 2, Spec: 4}: {5e-5, 3.5, 1, 1, 1, 1},
	{Sub: 3}:          {7.33e-3, 0.202, 2.6, 1.45, 0.89, 1.3},
	{Sub: 5}:          {0.0031, 1, 10, 1, 1, 1.5},
	{Sub: 6}:          {0.00148, 1, 2, 0.5, 1, 1},
	{Sub: 7}:          {0.00015, 2.64, 1, 0.466, 1, 1},
	{Sub: 9}:          {0.0062, 1, 5, 1, 1, 1},
	{Sub: 10}:         {0.0735, 1.03, 4.45, 2.74, 3.51, 1},
	{Sub: 11}:         {0.0398, 0.514, 5.28, 1.44, 4.46, 1},
	{Sub: 12}:         {0.0481, 0.334, 4.66, 1.47, 2.83, 1},
	{Sub: 13}:         {0.019, 0.445, 7.3, 2.69, 2.46, 1},
	{Sub: 14}:         {0.0246, 0.459, 9.3, 2.32, 5.3, 1},
	{Sub: 15}:         {0.018, 1, 7.4, 2.55, 3.6, 1},
}

var resistorRefTemperature = map[resistorKey]float64{
	{Sub: 1}:          343,
	{Sub: 2, Spec: 1}: 343,
	{Sub: 2, Spec: 2}: 343,
	{Sub: 2, Spec: 3}: 398,
	{Sub: 2, Spec: 4}: 398,
	{Sub: 3}:          298,
	{Sub: 5}:          398,
	{Sub: 6}:          298,
	{Sub: 7}:          298,
	{Sub: 9}:          358,
	{Sub: 10}:         358,
	{Sub: 11}:         313,
	{Sub: 12}:         298,
	{Sub: 13}:         358,
	{Sub: 14}:         343,
	{Sub: 15}:         343,
}

const resistorNetworkLambdaB = 0.00006

var thermistorLambdaB = []float64{0.021, 0.065, 0.105}

var resistorQuality = map[int][]float64{
	1:  {0.03, 0.1, 0.3, 1.0, 5.0, 15.0},
	2:  {0.03, 0.1, 0.3, 1.0, 5.0, 5.0, 15.0},
	3:  {1.0, 3.0},
	4:  {1.0, 3.0},
	5:  {0.03, 0.1, 0.3, 1.0, 5.0, 15.0},
	6:  {0.03, 0.1, 0.3, 1.0, 5.0, 15.0},
	7:  {0.03, 0.1, 0.3, 1.0, 5.0, 15.0},
	8:  {1.0, 15.0},
	9:  {0.02, 0.06, 0.2, 0.6, 3.0, 10.0},
	10: {2.5, 5.0},
	11: {2.0, 4.0},
	12: {2.0, 4.0},
	13: {0.02, 0.06, 0.2, 0.6, 3.0, 10.0},
	14: {2.5, 5.0},
	15: {2.0, 4.0},
}

var resistorEnvironment = map[int]tables.Row{
	1:  {1, 3, 8, 5, 13, 4, 5, 7, 11, 19, 0.5, 11, 27, 490},
	2:  {1, 2, 8, 4, 14, 4, 8, 10, 18, 19, 0.2, 10, 28, 510},
	3:  {1, 2, 10, 5, 17, 6, 8, 14, 18, 25, 0.5, 14, 36, 660},
	4:  {1, 2, 10, 5, 17, 6, 8, 14, 18, 25, 0.5, 14, 36, 660},
	5:  {1, 2, 11, 5, 18, 15, 18, 28, 35, 27, 0.8, 14, 38, 610},
	6:  {1, 2, 10, 5, 16, 4, 8, 9, 18, 23, 0.3, 13, 34, 610},
	7:  {1, 2, 10, 5, 16, 4, 8, 9, 18, 23, 0.5, 13, 34, 610},
	8:  {1, 5, 21, 11, 24, 11, 30, 16, 42, 37, 0.5, 20, 53, 950},
	9:  {1, 2, 12, 6, 20, 5, 8, 9, 15, 33, 0.5, 18, 48, 870},
	10: {1, 2, 18, 8, 30, 8, 12, 13, 18, 53, 0.5, 29, 76, 1400},
	11: {1, 2, 16, 7, 28, 8, 12, 0, 0, 38, 0.5, 0, 0, 0},
	12: {1, 3, 16, 7, 28, 8, 12, 0, 0, 38, 0.5, 0, 0, 0},
	13: {1, 3, 14, 6, 24, 5, 7, 12, 18, 39, 0.5, 22, 57, 1000},
	14: {1, 2, 19, 8, 29, 40, 65, 48, 78, 46, 0.5, 25, 66, 1200},
	15: {1, 3, 14, 7, 24, 6, 12, 20, 30, 39, 0.5, 22, 57, 1000},
}

// Resistance range breakpoints (ohms) and the piR value for each band.
var resistanceBreaks = map[int][]float64{
	1:  {1e5, 1e6, 1e7},
	2:  {1e5, 1e6, 1e7},
	3:  {100, 1e5, 1e6},
	5:  {1e4, 1e5, 1e6},
	7:  {500, 1e3, 5e3, 1e4, 2e4},
	9:  {2e3, 5e3},
	10: {1e4, 2e4, 5e4, 1e5, 2e5},
	11: {2e3, 5e3},
	12: {2e3, 5e3},
	13: {5e4, 1e5, 2e5, 5e5},
	14: {5e4, 1e5, 2e5, 5e5},
	15: {1e4, 5e4, 2e5, 1e6},
}

var resistanceFactor = map[int][]float64{
	1:  {1.0, 1.1, 1.6, 2.5},
	2:  {1.0, 1.1, 1.6, 2.5},
	3:  {1.0, 1.2, 1.3, 3.5},
	5:  {1.0, 1.7, 3.0, 5.0},
	9:  {1.0, 1.4, 2.0},
	10: {1.0, 1.1, 1.4, 2.0, 2.5, 3.5},
	11: {1.0, 1.4, 2.0},
	12: {1.0, 1.4, 2.0},
	13: {1.0, 1.1, 1.2, 1.4, 1.8},
	14: {1.0, 1.1, 1.2, 1.4, 1.8},
	15: {1.0, 1.1, 1.2, 1.4, 1.8},
}

// Wirewound power resistors (6) use per-specification breakpoints.
var wirewoundPowerBreaks = map[int][]float64{
	1: {500, 1e3, 5e3, 7.5e3, 1e4, 1.5e4, 2e4},
	2: {100, 1e3, 1e4, 1e5, 1.5e5, 2e5},
}

// Wirewound power piR by specification then family. A zero marks a
// resistance band the family is not built in.
var wirewoundPowerFactor = map[int][][]float64{
	1: {
		{1.0, 1.0, 1.2, 1.2, 1.6, 1.6, 1.6, 0.0},
		{1.0, 1.0, 1.0, 1.2, 1.6, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.0, 1.2, 1.2, 1.2, 1.6},
		{1.0, 1.2, 1.6, 1.6, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.6, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.6, 1.6, 0.0, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.1, 1.2, 1.2, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.4, 0.0, 0.0, 0.0, 0.0, 0.0},
	},
	2: {
		{1.0, 1.0, 1.0, 1.0, 1.2, 1.6, 0.0},
		{1.0, 1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.6, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 2.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 2.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 2.0, 0.0, 0.0, 0.0},
		{1.0, 1.2, 1.4, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.6, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 2.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.6, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.4, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.2, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.4, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.2, 1.6, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.4, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.4, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.4, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.4, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.5, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.6, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.4, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.4, 1.6, 2.0, 0.0},
		{1.0, 1.0, 1.0, 1.4, 1.6, 2.0, 0.0},
		{1.0, 1.0, 1.4, 2.4, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 2.6, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.2, 1.4, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.6, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.6, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.4, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.2, 1.5, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.2, 0.0, 0.0, 0.0, 0.0, 0.0},
	},
}

// Chassis mounted wirewound power piR by specification then family.
var chassisMountFactor = map[int][][]float64{
	1: {
		{1.0, 1.2, 1.2, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.2, 1.6, 0.0},
		{1.0, 1.0, 1.0, 1.1, 1.2, 1.6},
		{1.0, 1.0, 1.0, 1.0, 1.2, 1.6},
		{1.0, 1.0, 1.0, 1.0, 1.2, 1.6},
	},
	2: {
		{1.0, 1.2, 1.6, 0.0, 0.0, 0.0},
		{1.0, 1.2, 1.6, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.1, 1.2, 1.4, 0.0},
		{1.0, 1.0, 1.0, 1.2, 1.6, 0.0},
		{1.0, 1.0, 1.0, 1.1, 1.4, 0.0},
	},
}

// Voltage factor for variable resistors, by applied-to-rated voltage ratio.
var (
	voltageBreaksWirewound    = []float64{0.1, 0.2, 0.6, 0.7, 0.8, 0.9}
	voltageFactorWirewound    = []float64{1.1, 1.05, 1.0, 1.1, 1.22, 1.4, 2.0}
	voltageBreaksNonWirewound = []float64{0.8, 0.9}
	voltageFactorNonWirewound = []float64{1.0, 1.05, 1.2}
)

var potentiometerConstruction = map[int][]float64{
	10: {2.0, 1.0, 3.0, 1.5},
	12: {2.0, 1.0},
}

func (m *ResistorModel) Calculate(c component.Component) (WorkRecord, error) {
	p, err := partOf[*component.Resistor](c)
	if err != nil {
		return WorkRecord{}, err
	}
	s, err := c.PowerRatio()
	if err != nil {
		return WorkRecord{}, err
	}

	w := newRecord(resistorEquation(c.Subcategory))
	w.derive("power_ratio", s)

	if w.LambdaB, err = resistorLambdaB(c.Subcategory, p, c.TemperatureActive, s); err != nil {
		return WorkRecord{}, err
	}

	qList, err := listFor(resistorQuality, c.Subcategory, "resistor quality factor")
	if err != nil {
		return WorkRecord{}, err
	}
	piQ, err := quality(qList, c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piQ", "quality", piQ)

	row, err := rowFor(resistorEnvironment, c.Subcategory, "resistor environment factor")
	if err != nil {
		return WorkRecord{}, err
	}
	piE, err := environment(row, "resistor environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piE", "environment", piE)

	switch c.Subcategory {
	case 4:
		tc := w.derive("temperature_case", c.TemperatureActive+55*s)
		w.factor("piT", "temperature", thermal(4056, tc))
		if p.Elements < 1 {
			return WorkRecord{}, errs.OutOfRange("n_elements", p.Elements, 1, math.Inf(1))
		}
		w.factor("n", "resistors in network", p.Elements)
	case 8:
	case 9, 10, 11, 12, 13, 14, 15:
		w.factor("piTAPS", "potentiometer taps", math.Pow(p.Elements, 1.5)/25+0.792)
		if c.Subcategory == 10 || c.Subcategory == 12 {
			piC, err := pick(potentiometerConstruction[c.Subcategory], p.Construction, "construction_id", "resistor construction factor")
			if err != nil {
				return WorkRecord{}, err
			}
			w.factor("piC", "construction", piC)
		}
		piR, err := resistorRangeFactor(c.Subcategory, p)
		if err != nil {
			return WorkRecord{}, err
		}
		w.factor("piR", "resistance", piR)
		vr, err := c.VoltageRatio()
		if err != nil {
			return WorkRecord{}, err
		}
		w.derive("voltage_ratio", vr)
		w.factor("piV", "voltage", potentiometerVoltageFactor(c.Subcategory, vr))
	default:
		piR, err := resistorRangeFactor(c.Subcategory, p)
		if err != nil {
			return WorkRecord{}, err
		}
		w.factor("piR", "resistance", piR)
	}

	w.HazardRate = w.Product()
	return *w, nil
}

func resistorEquation(sub int) string {
	switch sub {
	case 4:
		return "lambdaB * piQ * piE * piT * n"
	case 8:
		return "lambdaB * piQ * piE"
	case 10, 12:
		return "lambdaB * piQ * piE * piTAPS * piC * piR * piV"
	case 9, 11, 13, 14, 15:
		return "lambdaB * piQ * piE * piTAPS * piR * piV"
	}
	return "lambdaB * piQ * piE * piR"
}

func resistorLambdaB(sub int, p *component.Resistor, temp, s float64) (float64, error) {
	switch sub {
	case 4:
		return resistorNetworkLambdaB, nil
	case 8:
		return pick(thermistorLambdaB, p.Type, "type_id", "thermistor base hazard rate")
	}

	key := resistorKey{Sub: sub}
	if sub == 2 {
		key.Spec = p.Specification
	}
	f, ok := resistorLambdaFactors[key]
	if !ok {
		return 0, errs.MissingKey("resistor base hazard rate", sub, p.Specification)
	}
	tref := resistorRefTemperature[key]
	t := kelvin(temp)
	return f[0] * math.Pow(math.Exp(f[1]*t/tref), f[2]) *
		math.Exp(math.Pow(s/f[3]*math.Pow(t/273, f[4]), f[5])), nil
}

func resistorRangeFactor(sub int, p *component.Resistor) (float64, error) {
	var breaks, values []float64
	switch sub {
	case 6:
		breaks = wirewoundPowerBreaks[p.Specification]
		families := wirewoundPowerFactor[p.Specification]
		if breaks == nil || p.Family < 1 || p.Family > len(families) {
			return 0, errs.MissingKey("wirewound power resistance factor", p.Specification, p.Family)
		}
		values = families[p.Family-1]
	case 7:
		breaks = resistanceBreaks[7]
		families := chassisMountFactor[p.Specification]
		if families == nil || p.Family < 1 || p.Family > len(families) {
			return 0, errs.MissingKey("chassis mount resistance factor", p.Specification, p.Family)
		}
		values = families[p.Family-1]
	default:
		breaks, values = resistanceBreaks[sub], resistanceFactor[sub]
		if breaks == nil {
			return 0, errs.MissingKey("resistance factor", sub)
		}
	}
	piR := band(breaks, values, p.Resistance)
	if piR == 0 {
		return 0, errs.MissingKey("resistance factor", sub, p.Family, p.Resistance)
	}
	return piR, nil
}

func potentiometerVoltageFactor(sub int, vr float64) float64 {
	if sub <= 12 {
		return band(voltageBreaksWirewound, voltageFactorWirewound, vr)
	}
	return band(voltageBreaksNonWirewound, voltageFactorNonWirewound, vr)
}
