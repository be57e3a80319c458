package stress

import (
	"math"

	"hazard217/internal/component"
	"hazard217/internal/errs"
	"hazard217/internal/tables"
	"hazard217/internal/taxonomy"
)

// SemiconductorModel covers discrete diodes, transistors, thyristors and
// optoelectronic devices.
type SemiconductorModel struct{}

func (m *SemiconductorModel) Category() taxonomy.Category { return taxonomy.Semiconductor }

var semiconductorEnvironment = map[int]tables.Row{}

var (
	semiEnvLowFrequency = tables.Row{1, 6, 9, 9, 19, 13, 29, 20, 43, 24, 0.5, 14, 32, 320}
	semiEnvHighFreq     = tables.Row{1, 2, 5, 4, 11, 4, 5, 7, 12, 16, 0.5, 9, 24, 250}
	semiEnvGaAsFET      = tables.Row{1, 2, 5, 4, 11, 4, 5, 7, 12, 16, 0.5, 7.5, 24, 250}
	semiEnvOpto         = tables.Row{1, 2, 8, 5, 12, 4, 6, 6, 8, 17, 0.5, 9, 24, 450}
)

var (
	semiQualityLowFrequency = []float64{0.7, 1.0, 2.4, 5.5, 8.0}
	semiQualityMicrowave    = []float64{0.5, 1.0, 2.0, 5.0}
	semiQualityLaser        = []float64{1.0, 1.0, 3.3}
	semiQualityHighFreq     = []float64{0.5, 1.0, 5.0, 25.0, 50.0}
	semiQualitySchottky     = []float64{0.5, 1.0, 1.8, 2.5}
)

func init() {
	for _, sub := range []int{1, 3, 4, 5, 9, 10} {
		semiconductorEnvironment[sub] = semiEnvLowFrequency
	}
	for _, sub := range []int{2, 6, 7} {
		semiconductorEnvironment[sub] = semiEnvHighFreq
	}
	semiconductorEnvironment[8] = semiEnvGaAsFET
	for _, sub := range []int{11, 12, 13} {
		semiconductorEnvironment[sub] = semiEnvOpto
	}
}

// Base hazard rate by type, and the thermal constant θ = Ea/k by type, for
// subcategories that vary by type.
var (
	lowFreqDiodeLambdaB  = []float64{0.0038, 0.0010, 0.069, 0.003, 0.005, 0.0013, 0.0034, 0.002}
	lowFreqDiodeTheta    = []float64{3091, 3091, 3091, 3091, 3091, 3091, 1925, 1925}
	highFreqDiodeLambdaB = []float64{0.22, 0.18, 0.0023, 0.0081, 0.027, 0.0025, 0.0025}
	highFreqDiodeTheta   = []float64{5260, 2100, 2100, 2100, 2100, 2100, 2100}
	unijunctionLambdaB   = []float64{0.012, 0.0045}
	microwaveLambdaB     = []float64{0.06, 0.023}
	optoDetectorLambdaB  = []float64{0.0055, 0.004, 0.0025, 0.013, 0.013, 0.0064, 0.0033, 0.017, 0.017, 0.0086, 0.0013, 0.00023}
	laserDiodeLambdaB    = []float64{3.23, 5.65}
)

// Thermal constants for single-type subcategories.
var semiconductorTheta = map[int]float64{
	3: 2114, 4: 1925, 5: 2483, 6: 2114, 8: 4485, 9: 1925,
	10: 3082, 11: 2790, 12: 2790, 13: 4635,
}

var (
	lowFreqDiodeConstruction = []float64{1.0, 2.0}
	highFreqDiodeApplication = []float64{0.5, 2.5, 1.0}
	lowFreqBipolarAppl       = []float64{1.5, 0.7}
	lowFreqFETApplication    = []float64{1.5, 0.7, 2.0, 4.0, 8.0, 10.0}
	transistorMatching       = []float64{1.0, 2.0, 4.0}
	gaasFETApplication       = []float64{1.0, 4.0}
)

// High power microwave transistor metallization: θ, piT below the 0.4
// voltage ratio knee, slope above it.
var microwaveMetallization = map[int][3]float64{
	1: {2903, 0.1, 2.0},
	2: {5794, 0.38, 7.55},
}

func semiconductorQuality(sub, typ int) ([]float64, error) {
	switch sub {
	case 1, 3, 4, 5, 10, 11, 12:
		return semiQualityLowFrequency, nil
	case 6, 7, 8, 9:
		return semiQualityMicrowave, nil
	case 13:
		return semiQualityLaser, nil
	case 2:
		if typ == 5 {
			return semiQualitySchottky, nil
		}
		return semiQualityHighFreq, nil
	}
	return nil, errs.MissingKey("semiconductor quality factor", sub)
}

func (m *SemiconductorModel) Calculate(c component.Component) (WorkRecord, error) {
	p, err := partOf[*component.Semiconductor](c)
	if err != nil {
		return WorkRecord{}, err
	}
	qList, err := semiconductorQuality(c.Subcategory, p.Type)
	if err != nil {
		return WorkRecord{}, err
	}
	piQ, err := quality(qList, c)
	if err != nil {
		return WorkRecord{}, err
	}
	row, err := rowFor(semiconductorEnvironment, c.Subcategory, "semiconductor environment factor")
	if err != nil {
		return WorkRecord{}, err
	}
	piE, err := environment(row, "semiconductor environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}

	w := newRecord("lambdaB * piT * piQ * piE")
	tj := w.derive("temperature_junction", p.TemperatureCase+p.ThetaJC*c.PowerOperating)

	var theta float64
	switch c.Subcategory {
	case 1:
		w.LambdaB, err = pick(lowFreqDiodeLambdaB, p.Type, "type_id", "low frequency diode base hazard rate")
		if err == nil {
			theta, err = pick(lowFreqDiodeTheta, p.Type, "type_id", "low frequency diode thermal constant")
		}
	case 2:
		w.LambdaB, err = pick(highFreqDiodeLambdaB, p.Type, "type_id", "high frequency diode base hazard rate")
		if err == nil {
			theta, err = pick(highFreqDiodeTheta, p.Type, "type_id", "high frequency diode thermal constant")
		}
	case 7:
		mt, ok := microwaveMetallization[p.Type]
		if !ok {
			return WorkRecord{}, errs.MissingKey("microwave transistor metallization", p.Type)
		}
		w.LambdaB = 0.032 * math.Exp(0.354*p.Frequency+0.00558*c.PowerOperating)
		return highPowerMicrowave(w, c, p, mt, tj, piQ, piE)
	default:
		theta = semiconductorTheta[c.Subcategory]
		w.LambdaB, err = semiconductorLambdaB(c, p)
	}
	if err != nil {
		return WorkRecord{}, err
	}

	w.derive("theta", theta)
	w.factor("piT", "temperature", thermal(theta, tj))
	w.factor("piQ", "quality", piQ)
	w.factor("piE", "environment", piE)

	if err := semiconductorStress(w, c, p); err != nil {
		return WorkRecord{}, err
	}
	w.HazardRate = w.Product()
	return *w, nil
}

func semiconductorLambdaB(c component.Component, p *component.Semiconductor) (float64, error) {
	switch c.Subcategory {
	case 3:
		return 0.00074, nil
	case 4:
		return pick(unijunctionLambdaB, p.Type, "type_id", "low frequency FET base hazard rate")
	case 5:
		return 0.0083, nil
	case 6:
		return 0.18, nil
	case 8:
		if p.Frequency > 1 && p.Frequency <= 10 && c.PowerOperating < 0.1 {
			return 0.052, nil
		}
		return 0.0093 * math.Exp(0.429*p.Frequency+0.486*c.PowerOperating), nil
	case 9:
		return pick(microwaveLambdaB, p.Type, "type_id", "microwave transistor base hazard rate")
	case 10:
		return 0.0022, nil
	case 11:
		return pick(optoDetectorLambdaB, p.Type, "type_id", "optoelectronic base hazard rate")
	case 12:
		if p.Application == 1 || p.Application == 3 {
			return 0.00043*p.Elements + 0.000043, nil
		}
		return 0.00043 * p.Elements, nil
	case 13:
		return pick(laserDiodeLambdaB, p.Type, "type_id", "laser diode base hazard rate")
	}
	return 0, errs.MissingKey("semiconductor base hazard rate", c.Subcategory)
}

// semiconductorStress appends the application, rating, stress and
// construction factors for the subcategory.
func semiconductorStress(w *WorkRecord, c component.Component, p *component.Semiconductor) error {
	switch c.Subcategory {
	case 1:
		w.Equation += " * piS * piC"
		vr, err := c.VoltageRatio()
		if err != nil {
			return err
		}
		w.derive("voltage_ratio", vr)
		piS := 1.0
		switch {
		case p.Type > 5:
		case vr <= 0.3:
			piS = 0.054
		default:
			piS = math.Pow(vr, 2.43)
		}
		w.factor("piS", "electrical stress", piS)
		piC, err := pick(lowFreqDiodeConstruction, p.Construction, "construction_id", "diode contact construction factor")
		if err != nil {
			return err
		}
		w.factor("piC", "contact construction", piC)
	case 2:
		w.Equation += " * piA * piR"
		piA, err := pick(highFreqDiodeApplication, p.Application, "application_id", "high frequency diode application factor")
		if err != nil {
			return err
		}
		w.factor("piA", "application", piA)
		piR := 1.0
		if p.Type == 4 {
			if err := positive("power_rated", c.PowerRated); err != nil {
				return err
			}
			piR = 0.326*math.Log(c.PowerRated) - 0.25
		}
		w.factor("piR", "power rating", piR)
	case 3:
		w.Equation += " * piA * piR * piS"
		piA, err := pick(lowFreqBipolarAppl, p.Application, "application_id", "bipolar transistor application factor")
		if err != nil {
			return err
		}
		w.factor("piA", "application", piA)
		w.factor("piR", "power rating", bipolarPowerRating(c.PowerRated))
		if err := voltageStress(w, c, func(vr float64) float64 { return 0.045 * math.Exp(3.1*vr) }); err != nil {
			return err
		}
	case 4:
		w.Equation += " * piA"
		piA, err := pick(lowFreqFETApplication, p.Application, "application_id", "FET application factor")
		if err != nil {
			return err
		}
		w.factor("piA", "application", piA)
	case 6:
		w.Equation += " * piR * piS"
		w.factor("piR", "power rating", bipolarPowerRating(c.PowerRated))
		if err := voltageStress(w, c, func(vr float64) float64 { return 0.045 * math.Exp(3.1*vr) }); err != nil {
			return err
		}
	case 8:
		w.Equation += " * piA * piM"
		piA, err := pick(gaasFETApplication, p.Application, "application_id", "GaAs FET application factor")
		if err != nil {
			return err
		}
		w.factor("piA", "application", piA)
		piM, err := pick(transistorMatching, p.Matching, "matching_id", "matching network factor")
		if err != nil {
			return err
		}
		w.factor("piM", "matching network", piM)
	case 10:
		w.Equation += " * piR * piS"
		w.factor("piR", "current rating", math.Pow(c.CurrentRated, 0.4))
		if err := voltageStress(w, c, func(vr float64) float64 {
			if vr <= 0.3 {
				return 0.1
			}
			return math.Pow(vr, 1.9)
		}); err != nil {
			return err
		}
	case 13:
		w.Equation += " * piI * piA * piP"
		w.factor("piI", "forward current", math.Pow(c.CurrentOperating, 0.68))
		piA := 4.4
		if p.Application != 1 {
			piA = math.Sqrt(c.DutyCycle / 100)
		}
		w.factor("piA", "application", piA)
		pr, err := c.PowerRatio()
		if err != nil {
			return err
		}
		if pr >= 1 {
			return errs.OutOfRange("power_ratio", pr, 0, math.Nextafter(1, 0))
		}
		w.factor("piP", "power degradation", 1/(2*(1-pr)))
	}
	return nil
}

func bipolarPowerRating(rated float64) float64 {
	if rated < 0.1 {
		return 0.43
	}
	return math.Pow(rated, 0.37)
}

func voltageStress(w *WorkRecord, c component.Component, f func(float64) float64) error {
	vr, err := c.VoltageRatio()
	if err != nil {
		return err
	}
	w.derive("voltage_ratio", vr)
	w.factor("piS", "electrical stress", f(vr))
	return nil
}

// highPowerMicrowave folds the metallization and voltage ratio into piT.
func highPowerMicrowave(w *WorkRecord, c component.Component, p *component.Semiconductor, mt [3]float64, tj, piQ, piE float64) (WorkRecord, error) {
	vr, err := c.VoltageRatio()
	if err != nil {
		return WorkRecord{}, err
	}
	w.derive("voltage_ratio", vr)
	arr := math.Exp(-mt[0] * (1/kelvin(tj) - 1.0/298))
	piT := mt[1] * arr
	if vr > 0.4 {
		piT = mt[2] * (vr - 0.35) * arr
	}
	w.factor("piT", "temperature", piT)
	w.factor("piQ", "quality", piQ)
	w.factor("piE", "environment", piE)

	piA := 7.6
	if p.Application != 1 {
		piA = 0.06*(c.DutyCycle/100) + 0.4
	}
	w.factor("piA", "application", piA)
	piM, err := pick(transistorMatching, p.Matching, "matching_id", "matching network factor")
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piM", "matching network", piM)

	w.Equation = "lambdaB * piT * piQ * piE * piA * piM"
	w.HazardRate = w.Product()
	return *w, nil
}
