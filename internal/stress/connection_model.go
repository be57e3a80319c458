package stress

import (
	"math"

	"hazard217/internal/component"
	"hazard217/internal/errs"
	"hazard217/internal/tables"
	"hazard217/internal/taxonomy"
)

// ConnectionModel covers connectors, IC sockets, plated through holes and
// other soldered or crimped connections.
type ConnectionModel struct{}

func (m *ConnectionModel) Category() taxonomy.Category { return taxonomy.Connection }

const (
	circularConnector = 1
	pcbConnector      = 2
	icSocket          = 3
	platedThroughHole = 4
	otherConnection   = 5
)

// Contact temperature rise constant by wire gauge (AWG).
var gaugeRiseFactor = map[int]float64{22: 0.989, 20: 0.640, 16: 0.274, 12: 0.100}

// Connector λb = f0·exp(-f1/To + (To/Tref)^f2) by insert material class.
var insertFactors = map[int][4]float64{
	1: {0.020, 1592, 473, 5.36},
	2: {0.431, 2073.6, 423, 4.66},
	3: {0.190, 1298, 373, 4.25},
	4: {0.770, 1528.8, 358, 4.72},
}

var connectorEnvironment = []tables.Row{
	{1, 1, 8, 5, 13, 3, 5, 8, 12, 19, 0.5, 10, 27, 490},
	{2, 5, 21, 10, 27, 12, 18, 17, 25, 37, 0.8, 20, 54, 970},
}

var (
	socketEnvironment = tables.Row{1, 3, 14, 6, 18, 8, 12, 11, 13, 25, 0.5, 14, 36, 650}
	pthEnvironment    = tables.Row{1, 2, 7, 5, 13, 5, 8, 16, 28, 19, 0.5, 10, 27, 500}
	solderEnvironment = tables.Row{1, 2, 7, 4, 11, 4, 6, 6, 8, 16, 0.5, 9, 24, 420}
	boardQuality      = []float64{1.0, 2.0}
	solderLambdaB     = []float64{0.0026, 0.00014, 0.00026, 0.00005, 0.0000035, 0.00012, 0.000069}
)

const (
	socketLambdaB = 0.00042
	pthLambdaB    = 0.000041
)

// ContactTemperatureRise is ΔT = K·I^1.85 for the contact gauge and
// current per contact.
func ContactTemperatureRise(gauge int, current float64) (float64, error) {
	k, err := valueFor(gaugeRiseFactor, gauge, "contact gauge temperature rise")
	if err != nil {
		return 0, err
	}
	return k * math.Pow(current, 1.85), nil
}

// MatingFactor is piK by mating/unmating cycles per 1000 hours.
func MatingFactor(cycles float64) float64 {
	switch {
	case cycles <= 0.05:
		return 1
	case cycles <= 0.5:
		return 1.5
	case cycles <= 5:
		return 2
	case cycles <= 50:
		return 3
	}
	return 4
}

// ActivePinsFactor is piP = exp(((N-1)/10)^0.51064); N must be at least 2.
func ActivePinsFactor(n float64) (float64, error) {
	if n < 2 {
		return 0, errs.OutOfRange("n_active_pins", n, 2, math.Inf(1))
	}
	return math.Exp(math.Pow((n-1)/10, 0.51064)), nil
}

func (m *ConnectionModel) Calculate(c component.Component) (WorkRecord, error) {
	p, err := partOf[*component.Connection](c)
	if err != nil {
		return WorkRecord{}, err
	}
	switch c.Subcategory {
	case circularConnector, pcbConnector:
		return connector(c, p)
	case icSocket:
		return socket(c, p)
	case platedThroughHole:
		return throughHole(c, p)
	}
	return solderedConnection(c, p)
}

func connector(c component.Component, p *component.Connection) (WorkRecord, error) {
	f, ok := insertFactors[p.Insert]
	if !ok {
		return WorkRecord{}, errs.MissingKey("connector insert material", p.Insert)
	}
	rise, err := ContactTemperatureRise(p.Gauge, c.CurrentOperating)
	if err != nil {
		return WorkRecord{}, err
	}

	w := newRecord("lambdaB * piE * piK * piP")
	w.derive("temperature_rise", rise)
	to := kelvin(w.derive("temperature_contact", c.TemperatureActive+rise))
	w.LambdaB = f[0] * math.Exp(-f[1]/to+math.Pow(to/f[2], f[3]))

	if c.Quality < 1 || c.Quality > len(connectorEnvironment) {
		return WorkRecord{}, errs.OutOfRange("quality_id", float64(c.Quality), 1, float64(len(connectorEnvironment)))
	}
	piE, err := environment(connectorEnvironment[c.Quality-1], "connector environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piE", "environment", piE)
	w.factor("piK", "mating cycles", MatingFactor(p.MatingCycles))

	piP, err := ActivePinsFactor(p.ActivePins)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piP", "active pins", piP)

	w.HazardRate = w.Product()
	return *w, nil
}

func socket(c component.Component, p *component.Connection) (WorkRecord, error) {
	w := newRecord("lambdaB * piP * piE")
	w.LambdaB = socketLambdaB
	piP, err := ActivePinsFactor(p.ActivePins)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piP", "active pins", piP)
	piE, err := environment(socketEnvironment, "IC socket environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piE", "environment", piE)
	w.HazardRate = w.Product()
	return *w, nil
}

// throughHole records the bracketed hole term as a single "holes" factor;
// piC is kept as a derived value.
func throughHole(c component.Component, p *component.Connection) (WorkRecord, error) {
	w := newRecord("lambdaB * (N1 * piC + N2 * (piC + 13)) * piQ * piE")
	w.LambdaB = pthLambdaB

	piC := 1.0
	if p.Layers > 2 {
		piC = 0.65 * math.Pow(p.Layers, 0.63)
	}
	w.derive("piC", piC)
	w.factor("holes", "weighted hole count", p.WaveSoldered*piC+p.HandSoldered*(piC+13))

	piQ, err := quality(boardQuality, c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piQ", "quality", piQ)
	piE, err := environment(pthEnvironment, "plated through hole environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piE", "environment", piE)
	w.HazardRate = w.Product()
	return *w, nil
}

func solderedConnection(c component.Component, p *component.Connection) (WorkRecord, error) {
	w := newRecord("lambdaB * piQ * piE")
	var err error
	if w.LambdaB, err = pick(solderLambdaB, p.Type, "type_id", "connection base hazard rate"); err != nil {
		return WorkRecord{}, err
	}
	piQ, err := quality(boardQuality, c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piQ", "quality", piQ)
	piE, err := environment(solderEnvironment, "connection environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piE", "environment", piE)
	w.HazardRate = w.Product()
	return *w, nil
}
