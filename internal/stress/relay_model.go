package stress

import (
	"math"

	"hazard217/internal/component"
	"hazard217/internal/errs"
	"hazard217/internal/tables"
	"hazard217/internal/taxonomy"
)

// RelayModel covers mechanical (subcategory 1) and solid state or time
// delay (2) relays.
type RelayModel struct{}

func (m *RelayModel) Category() taxonomy.Category { return taxonomy.Relay }

// relayLowerQuality is the quality id for non-MIL relays.
const relayLowerQuality = 7

// Mechanical relay λb = K1·exp((T/Tref)^K2) by rated temperature (°C).
var relayLambdaFactors = map[float64][3]float64{
	85:  {0.00555, 352, 15.7},
	125: {0.0054, 377, 10.4},
}

// Load stress denominators for resistive, inductive and lamp loads.
var loadStressDenominator = map[int]float64{1: 0.8, 2: 0.4, 3: 0.2}

var relayContactForm = []float64{1.0, 1.5, 1.75, 2.0, 2.5, 3.0, 4.25, 5.5, 8.0}

var relayQuality = []float64{0.1, 0.3, 0.45, 0.6, 1.0, 1.5, 3.0}

var (
	relayEnvironmentMIL   = tables.Row{1, 2, 15, 8, 27, 7, 9, 11, 12, 46, 0.5, 25, 66, 0}
	relayEnvironmentLower = tables.Row{2, 5, 44, 24, 78, 15, 20, 28, 38, 140, 1, 72, 200, 0}
)

// relayKey addresses the application and construction table.
type relayKey struct {
	Rating       int
	Application  int
	Construction int
}

// Application and construction factor as {MIL, lower quality}. Construction
// ids number the handbook rows within each rating and application.
var relayApplication = map[relayKey][2]float64{
	// signal current, dry circuit
	{1, 1, 1}: {4, 8},   // long armature
	{1, 1, 2}: {6, 18},  // dry reed
	{1, 1, 3}: {1, 3},   // mercury wetted
	{1, 1, 4}: {4, 8},   // magnetic latching
	{1, 1, 5}: {7, 14},  // balanced armature
	{1, 1, 6}: {7, 14},  // solenoid
	// 0 to 5 A
	{2, 1, 1}: {3, 6},
	{2, 1, 2}: {5, 10},
	{2, 1, 3}: {6, 12},
	{2, 2, 1}: {5, 10},
	{2, 2, 2}: {5, 10},
	{2, 2, 3}: {2, 6},
	{2, 2, 4}: {6, 12},
	{2, 2, 5}: {100, 100},
	{2, 2, 6}: {10, 20},
	{2, 3, 1}: {10, 20},
	{2, 3, 2}: {100, 100},
	{2, 4, 1}: {6, 12},
	{2, 4, 2}: {1, 3},
	{2, 5, 1}: {25, 0},
	{2, 5, 2}: {25, 0},
	{2, 5, 3}: {6, 0},
	{2, 6, 1}: {10, 20},
	{2, 7, 1}: {9, 12},
	{2, 8, 1}: {10, 20},
	{2, 8, 2}: {5, 10},
	{2, 8, 3}: {5, 10},
	// 5 to 20 A
	{3, 1, 1}: {20, 40},
	{3, 1, 2}: {5, 10},
	{3, 2, 1}: {3, 6},
	{3, 2, 2}: {3, 6},
	{3, 2, 3}: {1, 3},
	{3, 2, 4}: {2, 6},
	{3, 2, 5}: {3, 6},
	{3, 2, 6}: {2, 6},
	{3, 2, 7}: {2, 6},
	// 20 to 600 A contactors
	{4, 1, 1}: {7, 14},
	{4, 1, 2}: {12, 24},
	{4, 1, 3}: {10, 20},
	{4, 1, 4}: {5, 10},
}

var (
	solidStateRelayLambdaB = []float64{0.4, 0.5, 0.5}
	solidStateRelayQuality = []float64{1.0, 4.0}
	solidStateRelayEnv     = tables.Row{1, 3, 12, 6, 17, 12, 19, 21, 32, 23, 0.4, 12, 33, 590}
)

// LoadStressFactor is piL = exp((S/K)²) for a current ratio S and load type.
func LoadStressFactor(loadType int, s float64) (float64, error) {
	k, err := valueFor(loadStressDenominator, loadType, "load stress factor")
	if err != nil {
		return 0, err
	}
	return math.Exp(math.Pow(s/k, 2)), nil
}

func relayCycling(q int, cycles float64) float64 {
	if q < relayLowerQuality {
		return math.Max(cycles/10, 0.1)
	}
	switch {
	case cycles > 1000:
		return math.Pow(cycles/100, 2)
	case cycles >= 10:
		return cycles / 10
	}
	return 1
}

func (m *RelayModel) Calculate(c component.Component) (WorkRecord, error) {
	p, err := partOf[*component.Relay](c)
	if err != nil {
		return WorkRecord{}, err
	}
	if c.Subcategory == 2 {
		return solidStateRelay(c, p)
	}

	f, ok := relayLambdaFactors[c.TemperatureRatedMax]
	if !ok {
		return WorkRecord{}, errs.MissingKey("relay base hazard rate", c.TemperatureRatedMax)
	}
	s, err := c.CurrentRatio()
	if err != nil {
		return WorkRecord{}, err
	}

	w := newRecord("lambdaB * piL * piC * piCYC * piF * piQ * piE")
	w.derive("current_ratio", s)
	w.LambdaB = f[0] * math.Exp(math.Pow(kelvin(c.TemperatureActive)/f[1], f[2]))

	piL, err := LoadStressFactor(p.LoadType, s)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piL", "load stress", piL)

	piC, err := pick(relayContactForm, p.ContactForm, "contact_form_id", "relay contact form factor")
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piC", "contact form", piC)
	w.factor("piCYC", "cycling", relayCycling(c.Quality, p.CyclesPerHour))

	col := 0
	env := relayEnvironmentMIL
	if c.Quality >= relayLowerQuality {
		col, env = 1, relayEnvironmentLower
	}
	key := relayKey{p.ContactRating, p.Application, p.Construction}
	af, ok := relayApplication[key]
	if !ok || af[col] == 0 {
		return WorkRecord{}, errs.MissingKey("relay application and construction factor", key.Rating, key.Application, key.Construction)
	}
	w.factor("piF", "application and construction", af[col])

	piQ, err := quality(relayQuality, c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piQ", "quality", piQ)

	piE, err := environment(env, "relay environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piE", "environment", piE)

	w.HazardRate = w.Product()
	return *w, nil
}

func solidStateRelay(c component.Component, p *component.Relay) (WorkRecord, error) {
	w := newRecord("lambdaB * piQ * piE")
	var err error
	if w.LambdaB, err = pick(solidStateRelayLambdaB, p.Type, "type_id", "solid state relay base hazard rate"); err != nil {
		return WorkRecord{}, err
	}
	piQ, err := quality(solidStateRelayQuality, c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piQ", "quality", piQ)
	piE, err := environment(solidStateRelayEnv, "solid state relay environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piE", "environment", piE)
	w.HazardRate = w.Product()
	return *w, nil
}
