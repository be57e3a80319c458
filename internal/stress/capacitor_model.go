package stress

import (
	"math"

	"hazard217/internal/component"
	"hazard217/internal/errs"
	"hazard217/internal/tables"
	"hazard217/internal/taxonomy"
)

// CapacitorModel covers the nineteen fixed and variable capacitor styles.
type CapacitorModel struct{}

func (m *CapacitorModel) Category() taxonomy.Category { return taxonomy.Capacitor }

// Reference temperature (K) by maximum rated temperature (°C).
var capacitorRefTemperature = map[float64]float64{
	65: 338, 70: 343, 85: 358, 105: 378, 125: 398,
	150: 423, 170: 443, 175: 448, 200: 473,
}

// λb = f0·((S/f1)^f2 + 1)·exp(f3·(T/Tref)^f4); piCV = cv0·C^cv1.
var capacitorFactors = map[int][7]float64{
	1:  {0.00086, 0.4, 5, 2.5, 1.8, 1.2, 0.095},
	2:  {0.00115, 0.4, 5, 2.5, 1.8, 1.4, 0.12},
	3:  {0.0005, 0.4, 5, 2.5, 1.8, 1.6, 0.13},
	4:  {0.00069, 0.4, 5, 2.5, 1.8, 1.2, 0.092},
	5:  {0.00099, 0.4, 5, 2.5, 1.8, 1.1, 0.085},
	6:  {0.00055, 0.4, 5, 2.5, 1.8, 1.2, 0.092},
	7:  {8.6e-10, 0.4, 3, 16, 1, 0.45, 0.14},
	8:  {0.0053, 0.4, 3, 1.2, 6.3, 0.31, 0.23},
	9:  {8.25e-10, 0.5, 4, 16, 1, 0.62, 0.14},
	10: {0.0003, 0.3, 3, 1, 1, 0.41, 0.11},
	11: {2.6e-9, 0.3, 3, 14.3, 1, 0.59, 0.12},
	12: {0.00375, 0.4, 3, 2.6, 9, 1, 0.12},
	13: {0.00165, 0.4, 3, 2.6, 9, 0.82, 0.066},
	14: {0.00254, 0.5, 3, 5.09, 5, 0.34, 0.18},
	15: {0.0028, 0.55, 3, 4.09, 5.9, 0.321, 0.19},
	16: {0.00224, 0.17, 3, 1.59, 10.1, 1, 0},
	17: {7.3e-7, 0.33, 3, 12.1, 1, 1, 0},
	18: {1.92e-6, 0.33, 3, 10.8, 1, 1, 0},
	19: {0.0112, 0.17, 3, 1.59, 10.1, 1, 0},
}

var capacitorQuality = map[int][]float64{
	1:  {3.0, 7.0},
	2:  {1.0, 3.0, 10.0},
	3:  {0.03, 0.1, 0.3, 1.0, 3.0, 10.0, 30.0},
	4:  {0.03, 0.1, 0.3, 1.0, 3.0, 7.0, 20.0},
	5:  {0.03, 0.1, 0.3, 1.0, 10.0},
	6:  {0.02, 0.1, 0.3, 1.0, 10.0},
	7:  {0.01, 0.03, 0.1, 0.3, 1.0, 1.5, 3.0, 6.0, 15.0},
	8:  {5.0, 15.0},
	9:  {0.03, 0.1, 0.3, 1.0, 3.0, 3.0, 10.0},
	10: {0.03, 0.1, 0.3, 1.0, 3.0, 3.0, 10.0},
	11: {0.03, 0.1, 0.3, 1.0, 3.0, 10.0},
	12: {0.001, 0.01, 0.03, 0.03, 0.1, 0.3, 1.0, 1.5, 10.0},
	13: {0.03, 0.1, 0.3, 1.0, 1.5, 3.0, 10.0},
	14: {0.03, 0.1, 0.3, 1.0, 3.0, 10.0},
	15: {3.0, 10.0},
	16: {4.0, 20.0},
	17: {3.0, 10.0},
	18: {5.0, 20.0},
	19: {3.0, 20.0},
}

var capacitorEnvironment = map[int]tables.Row{
	1:  {1, 2, 9, 5, 15, 6, 8, 17, 32, 22, 0.5, 12, 32, 570},
	2:  {1, 2, 9, 7, 15, 6, 8, 17, 28, 22, 0.5, 12, 32, 570},
	3:  {1, 2, 8, 5, 14, 4, 6, 11, 20, 20, 0.5, 11, 29, 530},
	4:  {1, 2, 8, 5, 14, 4, 6, 11, 20, 20, 0.5, 11, 29, 530},
	5:  {1, 2, 10, 5, 16, 6, 11, 18, 30, 23, 0.5, 13, 34, 610},
	6:  {1, 4, 8, 5, 14, 4, 6, 13, 20, 20, 0.5, 11, 29, 530},
	7:  {1, 2, 10, 6, 16, 5, 7, 22, 28, 23, 0.5, 13, 34, 610},
	8:  {1, 2, 10, 5, 16, 5, 7, 22, 28, 23, 0.5, 13, 34, 610},
	9:  {1, 2, 10, 6, 16, 5, 7, 22, 28, 23, 0.5, 13, 34, 610},
	10: {1, 2, 9, 5, 15, 4, 4, 8, 12, 20, 0.4, 13, 34, 610},
	11: {1, 2, 10, 5, 17, 4, 8, 16, 35, 24, 0.5, 13, 34, 610},
	12: {1, 2, 8, 5, 14, 4, 5, 12, 20, 24, 0.4, 11, 29, 530},
	13: {1, 2, 10, 6, 16, 4, 8, 14, 30, 23, 0.5, 13, 34, 610},
	14: {1, 2, 12, 6, 17, 10, 12, 28, 35, 27, 0.5, 14, 38, 690},
	15: {1, 2, 12, 6, 17, 10, 12, 28, 35, 27, 0.5, 18, 38, 690},
	16: {1, 3, 13, 8, 24, 6, 10, 37, 70, 36, 0.4, 20, 52, 950},
	17: {1, 3, 12, 7, 18, 3, 4, 20, 30, 32, 0.5, 18, 46, 830},
	18: {1, 3, 13, 8, 24, 6, 10, 37, 70, 36, 0.5, 20, 52, 950},
	19: {1, 3, 14, 8, 27, 10, 18, 70, 108, 40, 0.5, 0, 0, 0},
}

var (
	tantalumConstruction = map[int]float64{1: 0.3, 2: 1.0, 3: 2.0, 4: 2.5, 5: 3.0}
	vacuumConfig         = map[int]float64{1: 0.1, 2: 1.0}
)

const (
	solidTantalum    = 12
	nonSolidTantalum = 13
	vacuumCapacitor  = 19
)

func (m *CapacitorModel) Calculate(c component.Component) (WorkRecord, error) {
	p, err := partOf[*component.Capacitor](c)
	if err != nil {
		return WorkRecord{}, err
	}
	f, ok := capacitorFactors[c.Subcategory]
	if !ok {
		return WorkRecord{}, errs.MissingKey("capacitor base hazard rate", c.Subcategory)
	}
	tref, ok := capacitorRefTemperature[c.TemperatureRatedMax]
	if !ok {
		return WorkRecord{}, errs.MissingKey("capacitor reference temperature", c.TemperatureRatedMax)
	}
	s, err := c.VoltageRatio()
	if err != nil {
		return WorkRecord{}, err
	}

	w := newRecord(capacitorEquation(c.Subcategory))
	w.derive("voltage_ratio", s)
	w.derive("temperature_reference", tref)
	w.LambdaB = f[0] * (math.Pow(s/f[1], f[2]) + 1) *
		math.Exp(f[3]*math.Pow(kelvin(c.TemperatureActive)/tref, f[4]))

	if c.Subcategory < 16 {
		if err := positive("capacitance", p.Capacitance); err != nil {
			return WorkRecord{}, err
		}
		w.factor("piCV", "capacitance", f[5]*math.Pow(p.Capacitance, f[6]))
	}
	if c.Subcategory == vacuumCapacitor {
		piCF, err := valueFor(vacuumConfig, p.Configuration, "capacitor configuration factor")
		if err != nil {
			return WorkRecord{}, err
		}
		w.factor("piCF", "configuration", piCF)
	}

	qList, err := listFor(capacitorQuality, c.Subcategory, "capacitor quality factor")
	if err != nil {
		return WorkRecord{}, err
	}
	piQ, err := quality(qList, c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piQ", "quality", piQ)

	piE, err := environment(capacitorEnvironment[c.Subcategory], "capacitor environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piE", "environment", piE)

	switch c.Subcategory {
	case solidTantalum:
		v := c.VoltageOperating()
		if v == 0 {
			return WorkRecord{}, errs.DivisionByZero("operating voltage")
		}
		cr := w.derive("circuit_resistance", p.Resistance/v)
		w.factor("piSR", "series resistance", seriesResistanceFactor(cr))
	case nonSolidTantalum:
		piC, err := valueFor(tantalumConstruction, p.Construction, "capacitor construction factor")
		if err != nil {
			return WorkRecord{}, err
		}
		w.factor("piC", "construction", piC)
	}

	w.HazardRate = w.Product()
	return *w, nil
}

func capacitorEquation(sub int) string {
	switch {
	case sub == solidTantalum:
		return "lambdaB * piCV * piQ * piE * piSR"
	case sub == nonSolidTantalum:
		return "lambdaB * piCV * piQ * piE * piC"
	case sub == vacuumCapacitor:
		return "lambdaB * piCF * piQ * piE"
	case sub >= 16:
		return "lambdaB * piQ * piE"
	}
	return "lambdaB * piCV * piQ * piE"
}

// seriesResistanceFactor maps ohms per volt of circuit resistance to piSR.
func seriesResistanceFactor(cr float64) float64 {
	switch {
	case cr <= 0.1:
		return 0.33
	case cr <= 0.2:
		return 0.27
	case cr <= 0.4:
		return 0.2
	case cr <= 0.6:
		return 0.13
	case cr <= 0.8:
		return 0.1
	}
	return 0.066
}
