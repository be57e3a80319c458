package stress

import (
	"math"

	"hazard217/internal/component"
	"hazard217/internal/tables"
	"hazard217/internal/taxonomy"
)

// MiscModel covers crystals, filters, fuses and lamps.
type MiscModel struct{}

func (m *MiscModel) Category() taxonomy.Category { return taxonomy.Miscellaneous }

const (
	crystal = 1
	filter  = 2
	fuse    = 3
	lamp    = 4
)

var (
	crystalQuality     = []float64{1.0, 2.1}
	crystalEnvironment = tables.Row{1, 3, 10, 6, 16, 12, 17, 22, 28, 23, 0.5, 13, 32, 500}

	filterLambdaB     = []float64{0.022, 0.12, 0.27}
	filterQuality     = []float64{1.0, 2.9}
	filterEnvironment = tables.Row{1, 2, 6, 4, 9, 7, 9, 11, 13, 11, 0.8, 7, 15, 120}

	fuseEnvironment = tables.Row{1, 2, 8, 5, 11, 9, 12, 15, 18, 16, 0.9, 10, 21, 230}

	lampApplication = []float64{1.0, 3.3}
	lampEnvironment = tables.Row{1, 2, 3, 3, 4, 4, 4, 5, 6, 5, 0.7, 4, 6, 27}
)

const fuseLambdaB = 0.010

// lampUtilization is piU by the fraction of time the lamp is lit.
func lampUtilization(duty float64) float64 {
	switch {
	case duty < 0.1:
		return 0.1
	case duty <= 0.9:
		return 0.72
	}
	return 1.0
}

func (m *MiscModel) Calculate(c component.Component) (WorkRecord, error) {
	p, err := partOf[*component.Miscellaneous](c)
	if err != nil {
		return WorkRecord{}, err
	}

	var (
		w    *WorkRecord
		qual []float64
		env  tables.Row
	)
	switch c.Subcategory {
	case crystal:
		w = newRecord("lambdaB * piQ * piE")
		if err := positive("frequency_operating", p.Frequency); err != nil {
			return WorkRecord{}, err
		}
		w.LambdaB = 0.013 * math.Pow(p.Frequency, 0.23)
		qual, env = crystalQuality, crystalEnvironment
	case filter:
		w = newRecord("lambdaB * piQ * piE")
		if w.LambdaB, err = pick(filterLambdaB, p.Type, "type_id", "filter base hazard rate"); err != nil {
			return WorkRecord{}, err
		}
		qual, env = filterQuality, filterEnvironment
	case fuse:
		w = newRecord("lambdaB * piE")
		w.LambdaB = fuseLambdaB
		env = fuseEnvironment
	default:
		w = newRecord("lambdaB * piU * piA * piE")
		w.LambdaB = 0.074 * math.Pow(c.VoltageRated, 1.29)
		w.factor("piU", "utilization", lampUtilization(c.DutyCycle/100))
		piA, err := pick(lampApplication, p.Application, "application_id", "lamp application factor")
		if err != nil {
			return WorkRecord{}, err
		}
		w.factor("piA", "application", piA)
		env = lampEnvironment
	}

	if qual != nil {
		piQ, err := quality(qual, c)
		if err != nil {
			return WorkRecord{}, err
		}
		w.factor("piQ", "quality", piQ)
	}
	piE, err := environment(env, "miscellaneous environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piE", "environment", piE)

	w.HazardRate = w.Product()
	return *w, nil
}
