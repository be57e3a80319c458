package component

import "hazard217/internal/taxonomy"

// Default case temperatures (°C) by active environment.
var defaultCaseTemperature = [taxonomy.NumEnvironments]float64{
	35, 45, 50, 45, 50, 60, 60, 75, 75, 60, 35, 50, 60, 45,
}

// Default junction-to-case thermal resistance (°C/W) by semiconductor
// package id; ids past the table use 70.
var defaultThetaJC = []float64{
	70, 10, 70, 70, 70, 70, 70, 5, 70, 70, 10, 70, 70, 70, 5, 5, 5, 5, 5, 5,
	10, 70, 70, 5, 22, 70, 5, 70, 5, 5, 1, 10, 70, 70, 5, 5, 5, 10, 5, 5,
	10, 5, 10, 10, 10, 5, 70, 5, 70,
}

var defaultInductorRatedMax = map[int]float64{1: 130, 2: 125}

// ApplyDefaults returns a copy of c with unset (zero or negative) design
// values replaced by handbook defaults. The input is left untouched.
func ApplyDefaults(c Component) Component {
	c = c.Clone()

	caseTemp := func() float64 {
		if idx, err := c.EnvironmentActive.Index(); err == nil {
			return defaultCaseTemperature[idx]
		}
		return 0
	}

	switch p := c.Part.(type) {
	case *IntegratedCircuit:
		if p.TemperatureCase <= 0 {
			p.TemperatureCase = caseTemp()
		}
		if p.YearsInProduction <= 0 {
			p.YearsInProduction = 2
		}
	case *Semiconductor:
		if p.TemperatureCase <= 0 {
			p.TemperatureCase = caseTemp()
		}
		if p.ThetaJC <= 0 {
			p.ThetaJC = DefaultThetaJC(p.Package)
		}
	case *Inductor:
		if c.TemperatureRatedMax <= 0 {
			c.TemperatureRatedMax = defaultInductorRatedMax[c.Subcategory]
		}
		if p.TemperatureRise <= 0 && !p.riseEstimable(c) {
			p.TemperatureRise = defaultTemperatureRise(c.Subcategory, p.Family)
		}
	}
	return c
}

// DefaultThetaJC returns the handbook thermal resistance for a package id.
func DefaultThetaJC(pkg int) float64 {
	if pkg >= 1 && pkg <= len(defaultThetaJC) {
		return defaultThetaJC[pkg-1]
	}
	return 70
}

// DefaultCaseTemperature returns the handbook case temperature for env.
func DefaultCaseTemperature(env taxonomy.Environment) (float64, error) {
	idx, err := env.Index()
	if err != nil {
		return 0, err
	}
	return defaultCaseTemperature[idx], nil
}

// riseEstimable reports whether the winding temperature rise can be
// estimated from power loss and geometry or from the spec sheet page.
func (p *Inductor) riseEstimable(c Component) bool {
	switch {
	case c.PowerOperating > 0:
		return p.Area > 0 || p.Weight > 0
	case c.VoltageDCOperating*c.CurrentOperating > 0:
		return p.Weight > 0
	}
	return p.SpecSheetPage >= 1 && p.SpecSheetPage <= 14
}

// Power transformers (families 3 and 4) run hotter than signal parts.
func defaultTemperatureRise(sub, family int) float64 {
	if sub == 1 && family >= 3 {
		return 30
	}
	return 10
}
