package component

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hazard217/internal/errs"
	"hazard217/internal/taxonomy"
)

func resistorRecord() Record {
	return Record{
		"hardware_id":           "R1",
		"category_id":           3.0,
		"subcategory_id":        2.0,
		"environment_active_id": 1.0,
		"quality_id":            4.0,
		"specification_id":      1.0,
		"resistance":            3300.0,
		"power_operating":       0.05,
		"power_rated":           0.25,
	}
}

func TestFromRecordBuildsTypedComponent(t *testing.T) {
	c, err := FromRecord(resistorRecord())
	require.NoError(t, err)

	assert.Equal(t, "R1", c.ID)
	assert.Equal(t, taxonomy.Resistor, c.Category)
	assert.Equal(t, 2, c.Subcategory)
	assert.Equal(t, 4, c.Quality)
	assert.Equal(t, taxonomy.PartsCount, c.Method)
	assert.Equal(t, 100.0, c.DutyCycle)
	assert.Equal(t, 1, c.Quantity)
	assert.Equal(t, 1.0, c.MultAdj)

	r, ok := c.Part.(*Resistor)
	require.True(t, ok, "expected *Resistor, got %T", c.Part)
	assert.Equal(t, 1, r.Specification)
	assert.Equal(t, 3300.0, r.Resistance)
	assert.NoError(t, c.Validate())
}

func TestFromRecordMissingRequiredField(t *testing.T) {
	rec := resistorRecord()
	delete(rec, "subcategory_id")

	_, err := FromRecord(rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrMissingKey))

	var mk *errs.MissingKeyError
	require.True(t, errors.As(err, &mk))
	assert.Equal(t, "subcategory_id", mk.Key)
}

func TestFromRecordTypeMismatch(t *testing.T) {
	cases := map[string]any{
		"resistance":            "3300",
		"quality_id":            2.5,
		"environment_active_id": true,
		"hardware_id":           []string{"R1"},
	}
	for field, bad := range cases {
		t.Run(field, func(t *testing.T) {
			rec := resistorRecord()
			rec[field] = bad
			_, err := FromRecord(rec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrTypeMismatch), "got %v", err)
			assert.Equal(t, field, errs.Field(err))
		})
	}
}

func TestFromRecordUnknownCategory(t *testing.T) {
	rec := resistorRecord()
	rec["category_id"] = 11
	_, err := FromRecord(rec)
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))
}

func TestToRecordCarriesPartFields(t *testing.T) {
	c, err := FromRecord(resistorRecord())
	require.NoError(t, err)

	rec := ToRecord(c)
	assert.Equal(t, "R1", rec["hardware_id"])
	assert.Equal(t, 3, rec["category_id"])
	assert.Equal(t, 3300.0, rec["resistance"])
	assert.Equal(t, 1, rec["specification_id"])

	back, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestValidate(t *testing.T) {
	c := New("C1", 7, &Capacitor{})
	assert.NoError(t, c.Validate())

	c.Subcategory = 20
	assert.True(t, errors.Is(c.Validate(), errs.ErrMissingKey))

	c = New("C1", 7, &Capacitor{})
	c.Category = taxonomy.Resistor
	assert.True(t, errors.Is(c.Validate(), errs.ErrTypeMismatch))

	c = New("C1", 7, &Capacitor{})
	c.EnvironmentActive = 15
	assert.True(t, errors.Is(c.Validate(), errs.ErrOutOfRange))
}

func TestRatios(t *testing.T) {
	c := New("D1", 1, &Semiconductor{Type: 1})
	c.CurrentOperating, c.CurrentRated = 0.3, 1.0
	c.VoltageACOperating, c.VoltageDCOperating, c.VoltageRated = 2, 3, 10

	ir, err := c.CurrentRatio()
	require.NoError(t, err)
	assert.InDelta(t, 0.3, ir, 1e-12)

	vr, err := c.VoltageRatio()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, vr, 1e-12)

	pr, err := c.PowerRatio()
	require.NoError(t, err, "unloaded part with no rating is not an error")
	assert.Zero(t, pr)

	c.PowerOperating = 0.1
	_, err = c.PowerRatio()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDivisionByZero))
	assert.Equal(t, "rated power", errs.Field(err))
}

func TestCloneIsDeep(t *testing.T) {
	c := New("Q1", 3, &Semiconductor{ThetaJC: 5})
	cp := c.Clone()
	cp.Part.(*Semiconductor).ThetaJC = 50
	assert.Equal(t, 5.0, c.Part.(*Semiconductor).ThetaJC)
}

func TestApplyDefaults(t *testing.T) {
	c := New("Q1", 3, &Semiconductor{Package: 8})
	c.EnvironmentActive = taxonomy.AirborneUninhabitedCargo

	d := ApplyDefaults(c)
	s := d.Part.(*Semiconductor)
	assert.Equal(t, 75.0, s.TemperatureCase)
	assert.Equal(t, 5.0, s.ThetaJC)
	assert.Zero(t, c.Part.(*Semiconductor).TemperatureCase, "input must not change")

	l := New("T1", 1, &Inductor{Family: 3})
	dl := ApplyDefaults(l)
	assert.Equal(t, 130.0, dl.TemperatureRatedMax)
	assert.Equal(t, 30.0, dl.Part.(*Inductor).TemperatureRise)

	coil := New("L1", 2, &Inductor{Family: 1, Weight: 0.5})
	coil.PowerOperating = 0.2
	dc := ApplyDefaults(coil)
	assert.Equal(t, 125.0, dc.TemperatureRatedMax)
	assert.Zero(t, dc.Part.(*Inductor).TemperatureRise, "rise is computed from power and weight, not defaulted")

	coil.PowerOperating = 0
	dc = ApplyDefaults(coil)
	assert.Equal(t, 10.0, dc.Part.(*Inductor).TemperatureRise, "weight alone gives no rise")

	paged := New("T2", 1, &Inductor{Family: 1, SpecSheetPage: 4})
	assert.Zero(t, ApplyDefaults(paged).Part.(*Inductor).TemperatureRise)

	lossy := New("T3", 1, &Inductor{Family: 3})
	lossy.PowerOperating = 2
	assert.Equal(t, 30.0, ApplyDefaults(lossy).Part.(*Inductor).TemperatureRise, "power without geometry gives no rise")
}

// ── Required stress inputs ──────────────────────────────────────────────────

func stressRecord(rec Record) Record {
	rec["hazard_rate_method_id"] = 2.0
	return rec
}

func TestRequireInputsNamesFirstAbsentField(t *testing.T) {
	rec := stressRecord(Record{
		"hardware_id":           "R9",
		"category_id":           3.0,
		"subcategory_id":        1.0,
		"environment_active_id": 1.0,
		"quality_id":            4.0,
	})
	c, err := FromRecord(rec)
	require.NoError(t, err)

	err = RequireInputs(rec, c, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMissingKey)
	assert.Equal(t, "resistance", errs.Field(err))
	assert.Contains(t, err.Error(), "resistance is required")

	rec["resistance"] = 1000.0
	rec["power_operating"] = 0.1
	err = RequireInputs(rec, c, false)
	assert.Equal(t, "power_rated", errs.Field(err))

	rec["power_rated"] = 0.25
	err = RequireInputs(rec, c, false)
	assert.Equal(t, "temperature_active", errs.Field(err))

	rec["temperature_active"] = 40.0
	assert.NoError(t, RequireInputs(rec, c, false))
}

func TestRequireInputsSkipsPartsCountAndSpecifiedRates(t *testing.T) {
	rec := Record{"category_id": 3.0, "subcategory_id": 1.0, "environment_active_id": 1.0}
	c, err := FromRecord(rec)
	require.NoError(t, err)
	assert.NoError(t, RequireInputs(rec, c, false))

	c.Method = taxonomy.PartsStress
	c.HazardRateType = taxonomy.SpecifiedHazardRate
	assert.NoError(t, RequireInputs(rec, c, false))
}

func TestRequireInputsJunctionTemperatureDefaults(t *testing.T) {
	rec := stressRecord(Record{
		"hardware_id":           "Q1",
		"category_id":           2.0,
		"subcategory_id":        3.0,
		"environment_active_id": 1.0,
		"application_id":        1.0,
		"power_operating":       0.5,
		"power_rated":           1.0,
		"voltage_dc_operating":  5.0,
		"voltage_rated":         10.0,
	})
	c, err := FromRecord(rec)
	require.NoError(t, err)

	err = RequireInputs(rec, c, false)
	assert.ErrorIs(t, err, errs.ErrMissingKey)
	assert.Equal(t, "temperature_case", errs.Field(err))

	assert.NoError(t, RequireInputs(rec, c, true), "case temperature and θjc are defaulted")

	rec["temperature_case"] = 50.0
	err = RequireInputs(rec, c, false)
	assert.Equal(t, "theta_jc", errs.Field(err))
}

func TestRequireInputsAcceptsEitherVoltage(t *testing.T) {
	rec := stressRecord(Record{
		"category_id":           4.0,
		"subcategory_id":        1.0,
		"environment_active_id": 1.0,
		"capacitance":           0.1,
		"voltage_rated":         10.0,
		"temperature_active":    40.0,
		"temperature_rated_max": 125.0,
	})
	c, err := FromRecord(rec)
	require.NoError(t, err)

	err = RequireInputs(rec, c, false)
	assert.Equal(t, "voltage_dc_operating", errs.Field(err))

	rec["voltage_ac_operating"] = 3.0
	assert.NoError(t, RequireInputs(rec, c, false))

	rec["voltage_ac_operating"] = nil
	assert.Error(t, RequireInputs(rec, c, false), "null is absent")
}
