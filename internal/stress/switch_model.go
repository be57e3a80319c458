package stress

import (
	"hazard217/internal/component"
	"hazard217/internal/tables"
	"hazard217/internal/taxonomy"
)

// SwitchModel covers toggle, sensitive, rotary and thumbwheel switches and
// circuit breakers. Quality 1 is MIL-SPEC, 2 is lower quality; outside the
// breaker the quality selects the base rate rather than a piQ.
type SwitchModel struct{}

func (m *SwitchModel) Category() taxonomy.Category { return taxonomy.Switch }

const (
	toggleSwitch     = 1
	sensitiveSwitch  = 2
	rotarySwitch     = 3
	thumbwheelSwitch = 4
	circuitBreaker   = 5
)

// Toggle switch base rate by construction (1 snap action, 2 non-snap) then
// quality.
var toggleLambdaB = map[int][]float64{
	1: {0.00045, 0.034},
	2: {0.0027, 0.04},
}

// Per-quality base rates for the body (or first section) and for each
// contact (or additional section).
var (
	sensitiveBody    = []float64{0.1, 0.1}
	sensitiveContact = []float64{0.00045, 0.23}
	rotaryBody       = []float64{0.0067, 0.1}
	rotaryContact    = []float64{0.00003, 0.02}
	thumbwheelBody   = []float64{0.0067, 0.086}
	thumbwheelPerPos = []float64{0.062, 0.089}
)

var switchContactForm = []float64{1.0, 1.5, 1.7, 2.0, 2.5, 3.0, 4.2, 5.5, 8.0}

var (
	breakerLambdaB     = []float64{0.02, 0.038, 0.038}
	breakerContactForm = []float64{1.0, 2.0, 3.0, 4.0}
	breakerQuality     = []float64{1.0, 8.4}
	breakerEnvironment = tables.Row{1, 2, 15, 8, 27, 7, 9, 11, 12, 46, 0.5, 25, 66, 0}
	switchEnvironment  = tables.Row{1, 3, 18, 8, 29, 10, 18, 13, 22, 46, 0.5, 25, 67, 1200}
)

func (m *SwitchModel) Calculate(c component.Component) (WorkRecord, error) {
	p, err := partOf[*component.Switch](c)
	if err != nil {
		return WorkRecord{}, err
	}
	if c.Subcategory == circuitBreaker {
		return breaker(c, p)
	}

	w := newRecord("")
	switch c.Subcategory {
	case toggleSwitch:
		w.Equation = "lambdaB * piCYC * piL * piC * piE"
		list, err := listFor(toggleLambdaB, p.Construction, "toggle switch base hazard rate")
		if err != nil {
			return WorkRecord{}, err
		}
		w.LambdaB, err = quality(list, c)
		if err != nil {
			return WorkRecord{}, err
		}
	case sensitiveSwitch:
		w.Equation = "(lambdaBE + n * lambdaBC) * piCYC * piL * piE"
		w.LambdaB, err = sectionRate(w, c, sensitiveBody, sensitiveContact, p.Contacts)
	case rotarySwitch:
		w.Equation = "(lambdaBE + n * lambdaBF) * piCYC * piL * piE"
		w.LambdaB, err = sectionRate(w, c, rotaryBody, rotaryContact, p.Contacts)
	case thumbwheelSwitch:
		w.Equation = "(lambdaB1 + N * lambdaB2) * piCYC * piL * piE"
		w.LambdaB, err = sectionRate(w, c, thumbwheelBody, thumbwheelPerPos, p.Contacts)
	}
	if err != nil {
		return WorkRecord{}, err
	}

	piCYC := 1.0
	if p.CyclesPerHour > 1 {
		piCYC = p.CyclesPerHour
	}
	w.factor("piCYC", "cycling rate", piCYC)

	s, err := c.CurrentRatio()
	if err != nil {
		return WorkRecord{}, err
	}
	w.derive("current_ratio", s)
	piL, err := LoadStressFactor(p.LoadType, s)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piL", "load stress", piL)

	if c.Subcategory == toggleSwitch {
		piC, err := pick(switchContactForm, p.ContactForm, "contact_form_id", "switch contact form factor")
		if err != nil {
			return WorkRecord{}, err
		}
		w.factor("piC", "contact form", piC)
	}

	piE, err := environment(switchEnvironment, "switch environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piE", "environment", piE)

	w.HazardRate = w.Product()
	return *w, nil
}

func sectionRate(w *WorkRecord, c component.Component, body, each []float64, n float64) (float64, error) {
	be, err := quality(body, c)
	if err != nil {
		return 0, err
	}
	bc, err := quality(each, c)
	if err != nil {
		return 0, err
	}
	w.derive("lambda_body", be)
	w.derive("lambda_each", bc)
	w.derive("n_elements", n)
	return be + n*bc, nil
}

func breaker(c component.Component, p *component.Switch) (WorkRecord, error) {
	w := newRecord("lambdaB * piC * piU * piQ * piE")
	var err error
	if w.LambdaB, err = pick(breakerLambdaB, p.Construction, "construction_id", "circuit breaker base hazard rate"); err != nil {
		return WorkRecord{}, err
	}
	piC, err := pick(breakerContactForm, p.ContactForm, "contact_form_id", "circuit breaker configuration factor")
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piC", "configuration", piC)

	piU := 1.0
	if p.PowerSwitch == 1 {
		piU = 10
	}
	w.factor("piU", "use", piU)

	piQ, err := quality(breakerQuality, c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piQ", "quality", piQ)

	piE, err := environment(breakerEnvironment, "circuit breaker environment factor", c)
	if err != nil {
		return WorkRecord{}, err
	}
	w.factor("piE", "environment", piE)

	w.HazardRate = w.Product()
	return *w, nil
}
