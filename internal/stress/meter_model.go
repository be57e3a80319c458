package stress

import (
	"hazard217/internal/component"
	"hazard217/internal/errs"
	"hazard217/internal/tables"
	"hazard217/internal/taxonomy"
)

// MeterModel covers elapsed time meters (subcategory 1) and panel meters (2).
type MeterModel struct{}

func (m *MeterModel) Category() taxonomy.Category { return taxonomy.Meter }

var (
	elapsedTimeLambdaB     = []float64{20, 30, 80}
	elapsedTimeEnvironment = tables.Row{1, 2, 12, 7, 18, 5, 8, 16, 25, 26, 0.5, 14, 38, 0}

	panelMeterApplication = []float64{1.0, 1.7}
	panelMeterFunction    = []float64{1.0, 1.0, 2.8}
	panelMeterQuality     = []float64{1.0, 3.4}
	panelMeterEnvironment = tables.Row{1, 4, 25, 12, 35, 28, 42, 58, 73, 60, 1.1, 60, 0, 0}
)

const panelMeterLambdaB = 0.09

// elapsedTimeTemperature is piT by the ratio of operating to rated
// temperature.
func elapsedTimeTemperature(ratio float64) float64 {
	switch {
	case ratio <= 0.5:
		return 0.5
	case ratio <= 0.6:
		return 0.6
	case ratio <= 0.8:
		return 0.8
	}
	return 1.0
}

func (m *MeterModel) Calculate(c component.Component) (WorkRecord, error) {
	p, err := partOf[*component.Meter](c)
	if err != nil {
		return WorkRecord{}, err
	}

	if c.Subcategory == 1 {
		w := newRecord("lambdaB * piT * piE")
		if w.LambdaB, err = pick(elapsedTimeLambdaB, p.Type, "type_id", "elapsed time meter base hazard rate"); err != nil {
			return WorkRecord{}, err
		}
		if c.TemperatureRatedMax == 0 {
			return WorkRecord{}, errs.DivisionByZero("rated maximum temperature")
		}
		ratio := w.derive("temperature_ratio", c.TemperatureActive/c.TemperatureRatedMax)
		w.factor("piT", "temperature stress", elapsedTimeTemperature(ratio))
		piE, err := environment(elapsedTimeEnvironment, "elapsed time meter environment factor", c)
		if err != nil {
			return WorkRecord{}, err
		}
		w.factor("piE", "environment", piE)
		w.HazardRate = w.Product()
		return *w, nil
	}

	w := newRecord("lambdaB * piA * piF * piQ * piE")
	w.LambdaB = panelMeterLambdaB
	piA, err := pick(panelMeterApplication, p.Application, "application_id", "panel meter application factor")
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piA", "application", piA)
	piF, err := pick(panelMeterFunction, p.Function, "function_id", "panel meter function factor")
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piF", "function", piF)
	piQ, err := quality(panelMeterQuality, c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piQ", "quality", piQ)
	piE, err := environment(panelMeterEnvironment, "panel meter environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piE", "environment", piE)
	w.HazardRate = w.Product()
	return *w, nil
}
