// internal/stress/stress_test.go
package stress

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"hazard217/internal/component"
	"hazard217/internal/errs"
	"hazard217/internal/taxonomy"
)

// ── Shared test helpers ─────────────────────────────────────────────────────

func assertApprox(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %.8g, want ~%.8g (tolerance %.2g)", name, got, want, tolerance)
	}
}

// assertRel compares with a tolerance relative to want.
func assertRel(t *testing.T, name string, got, want float64) {
	t.Helper()
	assertApprox(t, name, got, want, math.Abs(want)*1e-6)
}

func mustCalculate(t *testing.T, c component.Component) WorkRecord {
	t.Helper()
	w, err := Calculate(c)
	if err != nil {
		t.Fatalf("Calculate(%s): %v", c, err)
	}
	return w
}

func factorOf(t *testing.T, w WorkRecord, name string) float64 {
	t.Helper()
	v, ok := w.Lookup(name)
	if !ok {
		t.Fatalf("work record has no %q", name)
	}
	return v
}

func compositionResistor() component.Component {
	c := component.New("R1", 1, &component.Resistor{Resistance: 1000})
	c.Quality = 4
	c.TemperatureActive = 30
	c.PowerOperating, c.PowerRated = 0.125, 0.25
	return c
}

func paperCapacitor() component.Component {
	c := component.New("C1", 1, &component.Capacitor{Capacitance: 0.1})
	c.TemperatureActive = 40
	c.TemperatureRatedMax = 125
	c.VoltageDCOperating, c.VoltageRated = 5, 10
	return c
}

func transformer() component.Component {
	c := component.New("T1", 1, &component.Inductor{Insulation: 4, Construction: 1, TemperatureRise: 38.7})
	c.TemperatureActive = 43.2
	return c
}

func circularConnectorPart() component.Component {
	c := component.New("J1", 1, &component.Connection{
		Insert:       2,
		Gauge:        20,
		ActivePins:   20,
		MatingCycles: 2,
	})
	c.Quality = 2
	c.EnvironmentActive = taxonomy.GroundMobile
	c.TemperatureActive = 32
	c.CurrentOperating = 2
	return c
}

func bipolarTransistor() component.Component {
	c := component.New("Q1", 3, &component.Semiconductor{
		Application:     1,
		TemperatureCase: 50,
		ThetaJC:         10,
	})
	c.Quality = 2
	c.PowerOperating, c.PowerRated = 0.5, 1
	c.VoltageDCOperating, c.VoltageRated = 5, 10
	return c
}

func mechanicalRelay() component.Component {
	c := component.New("K1", 1, &component.Relay{
		LoadType:      1,
		ContactForm:   1,
		ContactRating: 2,
		Application:   1,
		Construction:  1,
		CyclesPerHour: 10,
	})
	c.Quality = 5
	c.TemperatureActive = 40
	c.TemperatureRatedMax = 85
	c.CurrentOperating, c.CurrentRated = 1, 2
	return c
}

// ── Golden values ───────────────────────────────────────────────────────────

func TestResistor_CompositionGolden(t *testing.T) {
	w := mustCalculate(t, compositionResistor())
	assertRel(t, "lambda_b", w.LambdaB, 0.00045569040)
	assertRel(t, "piR", factorOf(t, w, "piR"), 1.0)
	assertRel(t, "hazard_rate", w.HazardRate, 0.00045569040)
}

func TestCapacitor_PaperGolden(t *testing.T) {
	w := mustCalculate(t, paperCapacitor())
	assertRel(t, "lambda_b", w.LambdaB, 0.017648038)
	assertRel(t, "piCV", factorOf(t, w, "piCV"), 0.96423135)
	assertRel(t, "piQ", factorOf(t, w, "piQ"), 3.0)
	assertRel(t, "hazard_rate", w.HazardRate, 0.051050375)
}

func TestInductor_TransformerGolden(t *testing.T) {
	w := mustCalculate(t, transformer())
	assertApprox(t, "temperature_hot_spot", factorOf(t, w, "temperature_hot_spot"), 85.77, 1e-9)
	assertApprox(t, "lambda_b", w.LambdaB, 0.00280133, 1e-8)
	assertRel(t, "hazard_rate", w.HazardRate, 0.0042019935)
}

func TestInductor_TemperatureRiseHelpers(t *testing.T) {
	rise, err := RiseFromPowerArea(0.387, 12.5)
	if err != nil {
		t.Fatal(err)
	}
	assertApprox(t, "power/area", rise, 3.87, 1e-9)

	rise, err = RiseFromPowerWeight(0.387, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	assertApprox(t, "power/weight", rise, 2.394211958, 1e-6)

	rise, err = RiseFromInputPowerWeight(0.387, 0.015)
	if err != nil {
		t.Fatal(err)
	}
	assertApprox(t, "input power/weight", rise, 13.93114825, 1e-5)

	assertApprox(t, "hot spot", HotSpotTemperature(43.2, 38.7), 85.77, 1e-9)
}

func TestConnection_CircularGolden(t *testing.T) {
	w := mustCalculate(t, circularConnectorPart())
	assertApprox(t, "temperature_rise", factorOf(t, w, "temperature_rise"), 2.3072012, 1e-6)
	assertRel(t, "lambda_b", w.LambdaB, 0.00063385485)
	assertRel(t, "piK", factorOf(t, w, "piK"), 2)
	assertRel(t, "piP", factorOf(t, w, "piP"), 4.0062301)
	assertRel(t, "piE", factorOf(t, w, "piE"), 21)
	assertApprox(t, "hazard_rate", w.HazardRate, 0.1066535, 1e-6)
}

func TestSemiconductor_BipolarTransistorGolden(t *testing.T) {
	w := mustCalculate(t, bipolarTransistor())
	assertApprox(t, "temperature_junction", factorOf(t, w, "temperature_junction"), 55, 1e-9)
	assertRel(t, "piT", factorOf(t, w, "piT"), 1.9133158)
	assertRel(t, "piS", factorOf(t, w, "piS"), 0.21201616)
	assertRel(t, "hazard_rate", w.HazardRate, 0.00045027580)
}

func TestIC_LinearGolden(t *testing.T) {
	c := component.New("U1", 1, &component.IntegratedCircuit{
		Technology:        1,
		Package:           1,
		Elements:          100,
		Pins:              14,
		YearsInProduction: 2,
		TemperatureCase:   50,
	})
	c.Quality = 2

	w := mustCalculate(t, c)
	assertRel(t, "C1", factorOf(t, w, "C1"), 0.01)
	assertRel(t, "C2", factorOf(t, w, "C2"), 0.0048414596)
	assertRel(t, "piT", factorOf(t, w, "piT"), 0.84168148)
	assertRel(t, "piL", factorOf(t, w, "piL"), 1.0458499)
	assertRel(t, "hazard_rate", w.HazardRate, 0.011334444)
}

func TestIC_EEPROMCycling(t *testing.T) {
	eeprom := func(construction int) WorkRecord {
		c := component.New("U2", 6, &component.IntegratedCircuit{
			Technology:        2,
			Type:              1,
			Package:           1,
			Construction:      construction,
			Elements:          16000,
			Pins:              28,
			Cycles:            100000,
			YearsInProduction: 2,
			TemperatureCase:   85,
		})
		c.Quality = 2
		return mustCalculate(t, c)
	}

	w := eeprom(1)
	assertRel(t, "B1 flotox", factorOf(t, w, "B1"), 1.4397887)
	assertRel(t, "lambda_cyc", factorOf(t, w, "lambda_cyc"), 0.98150396)

	w = eeprom(2)
	assertRel(t, "B1 textured poly", factorOf(t, w, "B1"), 0.39293997)
	assertRel(t, "B2 textured poly", factorOf(t, w, "B2"), 1.4311184)
}

func TestRelay_MechanicalGolden(t *testing.T) {
	w := mustCalculate(t, mechanicalRelay())
	assertRel(t, "lambda_b", w.LambdaB, 0.0065015563)
	assertRel(t, "piL", factorOf(t, w, "piL"), 1.4779042)
	assertRel(t, "piF", factorOf(t, w, "piF"), 3)
	assertRel(t, "hazard_rate", w.HazardRate, 0.028826032)
}

func TestMeter_ElapsedTime(t *testing.T) {
	c := component.New("M1", 1, &component.Meter{Type: 1})
	c.TemperatureActive, c.TemperatureRatedMax = 40, 100
	w := mustCalculate(t, c)
	assertApprox(t, "piT", factorOf(t, w, "piT"), 0.5, 1e-12)
	assertApprox(t, "hazard_rate", w.HazardRate, 10, 1e-9)
}

func TestMisc_Crystal(t *testing.T) {
	c := component.New("Y1", 1, &component.Miscellaneous{Frequency: 10})
	w := mustCalculate(t, c)
	assertRel(t, "hazard_rate", w.HazardRate, 0.022077167)
}

func TestSwitch_BreakerUsedAsPowerSwitch(t *testing.T) {
	c := component.New("CB1", 5, &component.Switch{Construction: 1, ContactForm: 2, PowerSwitch: 1})
	w := mustCalculate(t, c)
	// 0.02 · 2 · 10 · 1 · 1
	assertApprox(t, "hazard_rate", w.HazardRate, 0.4, 1e-12)
}

func TestResistor_BaseRateBySubcategory(t *testing.T) {
	cases := []struct {
		sub  int
		want float64
	}{
		{1, 0.00059453715},
		{2, 0.0083680087},
		{4, 6e-05},
		{8, 0.021},
	}
	for _, tc := range cases {
		got, err := resistorLambdaB(tc.sub, &component.Resistor{Specification: 1, Type: 1}, 39.5, 0.45)
		if err != nil {
			t.Fatalf("subcategory %d: %v", tc.sub, err)
		}
		assertRel(t, "lambda_b", got, tc.want)
	}
}

func TestResistor_NetworkAndPotentiometerFactors(t *testing.T) {
	assertApprox(t, "network piT", thermal(4056, 38.2+55*0.45), 4.653004187, 1e-6)
	assertApprox(t, "piTAPS(3)", math.Pow(3, 1.5)/25+0.792, 0.9998460969, 1e-9)
	assertApprox(t, "wirewound piV", potentiometerVoltageFactor(9, 0.85), 1.4, 1e-12)
	assertApprox(t, "non-wirewound piV", potentiometerVoltageFactor(13, 0.85), 1.05, 1e-12)

	piR, err := resistorRangeFactor(1, &component.Resistor{Resistance: 5e5})
	if err != nil {
		t.Fatal(err)
	}
	assertApprox(t, "composition piR", piR, 1.1, 1e-12)

	piR, err = resistorRangeFactor(3, &component.Resistor{Resistance: 5e3})
	if err != nil {
		t.Fatal(err)
	}
	assertApprox(t, "power film piR", piR, 1.2, 1e-12)
}

func TestRelay_BaseRateAt32C(t *testing.T) {
	c := component.New("K2", 1, &component.Relay{LoadType: 1, ContactForm: 1, ContactRating: 1, Application: 1, Construction: 1})
	c.TemperatureActive = 32
	c.TemperatureRatedMax = 85
	w := mustCalculate(t, c)
	assertRel(t, "lambda_b", w.LambdaB, 0.006166831)
}

func TestConnection_ContactTemperatureRise(t *testing.T) {
	rise, err := ContactTemperatureRise(20, 2.65)
	if err != nil {
		t.Fatal(err)
	}
	assertApprox(t, "temperature_rise", rise, 3.88315602448, 1e-9)

	if _, err := ContactTemperatureRise(18, 1); !errors.Is(err, errs.ErrMissingKey) {
		t.Errorf("gauge 18: got %v, want missing key", err)
	}
}

// ── Monotonicity ────────────────────────────────────────────────────────────

func TestResistor_IncreasesWithTemperatureAndStress(t *testing.T) {
	prev := 0.0
	for _, temp := range []float64{0, 25, 50, 75, 100} {
		c := compositionResistor()
		c.TemperatureActive = temp
		w := mustCalculate(t, c)
		if w.HazardRate <= prev {
			t.Errorf("T=%.0f: hazard rate %.6g did not increase from %.6g", temp, w.HazardRate, prev)
		}
		prev = w.HazardRate
	}

	prev = 0
	for _, p := range []float64{0.025, 0.05, 0.1, 0.2, 0.25} {
		c := compositionResistor()
		c.PowerOperating = p
		w := mustCalculate(t, c)
		if w.HazardRate <= prev {
			t.Errorf("P=%.3f: hazard rate %.6g did not increase from %.6g", p, w.HazardRate, prev)
		}
		prev = w.HazardRate
	}
}

func TestCapacitor_IncreasesWithTemperatureAndVoltage(t *testing.T) {
	prev := 0.0
	for _, temp := range []float64{20, 40, 60, 80, 100} {
		c := paperCapacitor()
		c.TemperatureActive = temp
		w := mustCalculate(t, c)
		if w.HazardRate <= prev {
			t.Errorf("T=%.0f: hazard rate %.6g did not increase from %.6g", temp, w.HazardRate, prev)
		}
		prev = w.HazardRate
	}

	prev = 0
	for _, v := range []float64{1, 3, 5, 7, 9} {
		c := paperCapacitor()
		c.VoltageDCOperating = v
		w := mustCalculate(t, c)
		if w.HazardRate <= prev {
			t.Errorf("V=%.0f: hazard rate %.6g did not increase from %.6g", v, w.HazardRate, prev)
		}
		prev = w.HazardRate
	}
}

func TestSemiconductor_IncreasesWithCaseTemperature(t *testing.T) {
	prev := 0.0
	for _, tc := range []float64{25, 50, 75, 100, 125} {
		c := component.New("D1", 1, &component.Semiconductor{Type: 1, Construction: 1, TemperatureCase: tc, ThetaJC: 20})
		c.PowerOperating = 0.2
		c.VoltageDCOperating, c.VoltageRated = 5, 10
		w := mustCalculate(t, c)
		if w.HazardRate <= prev {
			t.Errorf("Tc=%.0f: hazard rate %.6g did not increase from %.6g", tc, w.HazardRate, prev)
		}
		prev = w.HazardRate
	}
}

// increasing fails the test unless rate(x) strictly increases over xs.
func increasing(t *testing.T, name string, xs []float64, rate func(float64) component.Component) {
	t.Helper()
	prev := 0.0
	for _, x := range xs {
		w := mustCalculate(t, rate(x))
		if w.HazardRate <= prev {
			t.Errorf("%s=%g: hazard rate %.6g did not increase from %.6g", name, x, w.HazardRate, prev)
		}
		prev = w.HazardRate
	}
}

func TestSemiconductor_IncreasesWithVoltageAndPower(t *testing.T) {
	increasing(t, "voltage ratio", []float64{0.1, 0.3, 0.5, 0.7, 0.9}, func(vr float64) component.Component {
		c := bipolarTransistor()
		c.VoltageDCOperating = vr * c.VoltageRated
		return c
	})
	increasing(t, "power", []float64{0.1, 0.25, 0.5, 0.75, 1}, func(p float64) component.Component {
		c := bipolarTransistor()
		c.PowerOperating = p
		return c
	})
	increasing(t, "diode voltage ratio", []float64{0.4, 0.5, 0.7, 0.9}, func(vr float64) component.Component {
		c := component.New("D1", 1, &component.Semiconductor{Type: 1, Construction: 1, TemperatureCase: 40, ThetaJC: 20})
		c.PowerOperating = 0.2
		c.VoltageDCOperating, c.VoltageRated = vr*10, 10
		return c
	})
}

// The handbook curve steps down slightly at the 0.3 knee.
func TestSemiconductor_DiodeStressKnee(t *testing.T) {
	piS := func(vr float64) float64 {
		c := component.New("D1", 1, &component.Semiconductor{Type: 1, Construction: 1, TemperatureCase: 40, ThetaJC: 20})
		c.VoltageDCOperating, c.VoltageRated = vr, 1
		return factorOf(t, mustCalculate(t, c), "piS")
	}
	assertApprox(t, "piS(0.1)", piS(0.1), 0.054, 1e-12)
	assertApprox(t, "piS(0.3)", piS(0.3), 0.054, 1e-12)
	assertRel(t, "piS(0.31)", piS(0.31), math.Pow(0.31, 2.43))
	if below, above := piS(0.3), piS(0.3001); above >= below {
		t.Errorf("piS just above the knee = %.6g, want below %.6g", above, below)
	}
}

func TestRelay_IncreasesWithCurrentRatio(t *testing.T) {
	increasing(t, "current ratio", []float64{0.1, 0.3, 0.5, 0.7, 0.9}, func(s float64) component.Component {
		c := mechanicalRelay()
		c.CurrentOperating = s * c.CurrentRated
		return c
	})
}

func TestConnection_IncreasesWithContactCurrent(t *testing.T) {
	increasing(t, "current", []float64{0.5, 1, 2, 3, 5}, func(i float64) component.Component {
		c := circularConnectorPart()
		c.CurrentOperating = i
		return c
	})
}

func TestInductor_IncreasesWithPowerLoss(t *testing.T) {
	increasing(t, "power loss", []float64{0.5, 1, 2, 4, 8}, func(p float64) component.Component {
		c := component.New("T1", 1, &component.Inductor{Insulation: 4, Construction: 1, Area: 12.5})
		c.TemperatureActive = 40
		c.PowerOperating = p
		return c
	})
}

// ── Properties ──────────────────────────────────────────────────────────────

func TestCalculate_IsIdempotentAndLeavesInputAlone(t *testing.T) {
	c := circularConnectorPart()
	before := c.Clone()

	a := mustCalculate(t, c)
	b := mustCalculate(t, c)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated Calculate differs:\n%+v\n%+v", a, b)
	}
	if !reflect.DeepEqual(c, before) {
		t.Errorf("Calculate modified its input")
	}
}

func TestCalculate_ProductMatchesHazardRate(t *testing.T) {
	for _, c := range []component.Component{compositionResistor(), paperCapacitor(), transformer(), circularConnectorPart()} {
		w := mustCalculate(t, c)
		assertRel(t, c.ID+" product", w.Product(), w.HazardRate)
	}
}

func TestFor_EveryCategoryRegistered(t *testing.T) {
	for _, cat := range taxonomy.Categories() {
		m, ok := For(cat)
		if !ok {
			t.Errorf("no model for %s", cat)
			continue
		}
		if m.Category() != cat {
			t.Errorf("model for %s reports %s", cat, m.Category())
		}
	}
}

func TestBand(t *testing.T) {
	breaks := []float64{1e5, 1e6, 1e7}
	values := []float64{1, 1.1, 1.6, 2.5}
	cases := []struct {
		r    float64
		want float64
	}{
		{1000, 1},
		{1e5, 1},
		{1e5 + 1, 1.1},
		{5e6, 1.6},
		{2e7, 2.5},
	}
	for _, tc := range cases {
		if got := band(breaks, values, tc.r); got != tc.want {
			t.Errorf("band(%g) = %g, want %g", tc.r, got, tc.want)
		}
	}
}

// ── Errors ──────────────────────────────────────────────────────────────────

func TestErrors(t *testing.T) {
	t.Run("weight zero", func(t *testing.T) {
		_, err := RiseFromPowerWeight(1, 0)
		if !errors.Is(err, errs.ErrDivisionByZero) {
			t.Fatalf("got %v, want division by zero", err)
		}
		if errs.Field(err) != "weight" {
			t.Errorf("field = %q, want weight", errs.Field(err))
		}
	})

	t.Run("area zero", func(t *testing.T) {
		_, err := RiseFromPowerArea(1, 0)
		if !errors.Is(err, errs.ErrDivisionByZero) {
			t.Fatalf("got %v, want division by zero", err)
		}
	})

	t.Run("power loss without area or weight", func(t *testing.T) {
		c := component.New("T4", 1, &component.Inductor{Insulation: 1, Construction: 1})
		c.PowerOperating = 2
		_, err := Calculate(c)
		if !errors.Is(err, errs.ErrDivisionByZero) {
			t.Fatalf("got %v, want division by zero", err)
		}
		if errs.Field(err) != "area" {
			t.Errorf("field = %q, want area", errs.Field(err))
		}
	})

	t.Run("input power without weight", func(t *testing.T) {
		c := component.New("T5", 1, &component.Inductor{Insulation: 1, Construction: 1, Area: 4})
		c.VoltageDCOperating, c.CurrentOperating = 12, 0.5
		_, err := Calculate(c)
		if !errors.Is(err, errs.ErrDivisionByZero) {
			t.Fatalf("got %v, want division by zero", err)
		}
		if errs.Field(err) != "weight" {
			t.Errorf("field = %q, want weight", errs.Field(err))
		}
	})

	t.Run("no temperature rise source", func(t *testing.T) {
		c := component.New("T6", 1, &component.Inductor{Insulation: 1, Construction: 1})
		_, err := Calculate(c)
		if !errors.Is(err, errs.ErrMissingKey) {
			t.Fatalf("got %v, want missing key", err)
		}
		if errs.Field(err) != "temperature_rise" {
			t.Errorf("field = %q, want temperature_rise", errs.Field(err))
		}
	})

	t.Run("wrong part variant", func(t *testing.T) {
		c := component.New("X1", 1, &component.Capacitor{})
		_, err := (&ResistorModel{}).Calculate(c)
		var tm *errs.TypeMismatchError
		if !errors.As(err, &tm) {
			t.Fatalf("got %v, want type mismatch", err)
		}
		if tm.Field != "part" {
			t.Errorf("field = %q, want part", tm.Field)
		}
	})

	t.Run("unknown rated temperature", func(t *testing.T) {
		c := paperCapacitor()
		c.TemperatureRatedMax = 99
		_, err := Calculate(c)
		if !errors.Is(err, errs.ErrMissingKey) {
			t.Fatalf("got %v, want missing key", err)
		}
	})

	t.Run("environment not covered", func(t *testing.T) {
		c := component.New("R2", 11, &component.Resistor{Resistance: 1000})
		c.EnvironmentActive = taxonomy.AirborneUninhabitedCargo
		_, err := Calculate(c)
		if !errors.Is(err, errs.ErrMissingKey) {
			t.Fatalf("got %v, want missing key", err)
		}
	})

	t.Run("resistance outside family range", func(t *testing.T) {
		c := component.New("R3", 6, &component.Resistor{Specification: 1, Family: 5, Resistance: 5000})
		_, err := Calculate(c)
		if !errors.Is(err, errs.ErrMissingKey) {
			t.Fatalf("got %v, want missing key", err)
		}
	})

	t.Run("too few active pins", func(t *testing.T) {
		c := circularConnectorPart()
		c.Part.(*component.Connection).ActivePins = 1
		_, err := Calculate(c)
		if !errors.Is(err, errs.ErrOutOfRange) {
			t.Fatalf("got %v, want out of range", err)
		}
		if errs.Field(err) != "n_active_pins" {
			t.Errorf("field = %q, want n_active_pins", errs.Field(err))
		}
	})

	t.Run("quality outside list", func(t *testing.T) {
		c := paperCapacitor()
		c.Quality = 3
		_, err := Calculate(c)
		if !errors.Is(err, errs.ErrOutOfRange) {
			t.Fatalf("got %v, want out of range", err)
		}
	})

	t.Run("VHSIC feature size zero", func(t *testing.T) {
		c := component.New("U2", 10, &component.IntegratedCircuit{Package: 1, Pins: 100, Area: 1})
		_, err := Calculate(c)
		if !errors.Is(err, errs.ErrDivisionByZero) {
			t.Fatalf("got %v, want division by zero", err)
		}
	})
}
