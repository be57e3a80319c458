package component

import (
	"hazard217/internal/errs"
	"hazard217/internal/taxonomy"
)

// input is one physical value a parts stress formula reads. Any of its
// alternatives being present satisfies it. Inputs marked defaultable are
// filled by ApplyDefaults and may be left out when defaults are applied.
type input struct {
	alternatives []string
	defaultable  bool
}

func need(keys ...string) input { return input{alternatives: keys} }

func needOrDefault(key string) input { return input{alternatives: []string{key}, defaultable: true} }

var (
	voltage        = need("voltage_dc_operating", "voltage_ac_operating")
	voltageRating  = []input{need("voltage_rated"), voltage}
	powerRating    = []input{need("power_operating"), need("power_rated")}
	currentRating  = []input{need("current_operating"), need("current_rated")}
	junctionInputs = []input{needOrDefault("temperature_case"), needOrDefault("theta_jc"), need("power_operating")}
)

func join(groups ...[]input) []input {
	var out []input
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// stressInputs lists the fields the parts stress model of c's category and
// subcategory reads, part fields first. Selector ids are left out: an
// unset id already fails its table lookup.
func stressInputs(c Component) []input {
	sub := c.Subcategory
	ambient := need("temperature_active")

	switch p := c.Part.(type) {
	case *Resistor:
		var part []input
		switch {
		case sub == 4:
			part = []input{need("n_elements")}
		case sub == 8:
		case sub >= 9:
			part = []input{need("resistance"), need("n_elements")}
			part = append(part, voltageRating...)
		default:
			part = []input{need("resistance")}
		}
		return join(part, powerRating, []input{ambient})

	case *Capacitor:
		var part []input
		if sub < 16 {
			part = append(part, need("capacitance"))
		}
		if sub == 12 {
			part = append(part, need("resistance"))
		}
		return join(part, voltageRating, []input{ambient, need("temperature_rated_max")})

	case *Semiconductor:
		in := junctionInputs
		switch sub {
		case 1:
			in = join(in, voltageRating)
		case 2:
			if p.Type == 4 {
				in = join(in, []input{need("power_rated")})
			}
		case 3, 6:
			in = join(in, []input{need("power_rated")}, voltageRating)
		case 7:
			in = join([]input{need("frequency_operating")}, in, voltageRating)
		case 8:
			in = join([]input{need("frequency_operating")}, in)
		case 10:
			in = join(in, []input{need("current_rated")}, voltageRating)
		case 12:
			in = join([]input{need("n_elements")}, in)
		case 13:
			in = join(in, []input{need("current_operating"), need("power_rated")})
		}
		return in

	case *IntegratedCircuit:
		junction := []input{needOrDefault("temperature_case"), need("theta_jc"), need("power_operating")}
		switch sub {
		case 10:
			return join([]input{need("feature_size"), need("area"), need("voltage_esd"), need("n_active_pins")}, junction)
		case 6:
			return join([]input{need("n_elements"), need("n_active_pins"), need("n_cycles"), needOrDefault("years_in_production")}, junction)
		}
		return join([]input{need("n_elements"), need("n_active_pins"), needOrDefault("years_in_production")}, junction)

	case *Inductor:
		// The winding rise has several sources; TemperatureRise reports
		// which one is missing.
		return []input{ambient}

	case *Relay:
		if sub == 2 {
			return nil
		}
		return join([]input{need("n_cycles")}, currentRating, []input{ambient, need("temperature_rated_max")})

	case *Switch:
		switch sub {
		case 5:
			return nil
		case 1:
			return join([]input{need("n_cycles")}, currentRating)
		}
		return join([]input{need("n_elements"), need("n_cycles")}, currentRating)

	case *Connection:
		switch sub {
		case 1, 2:
			return []input{need("contact_gauge"), need("n_active_pins"), need("n_cycles"), need("current_operating"), ambient}
		case 3:
			return []input{need("n_active_pins")}
		case 4:
			return []input{need("n_circuit_planes"), need("n_wave_soldered"), need("n_hand_soldered")}
		}
		return nil

	case *Meter:
		if sub == 1 {
			return []input{ambient, need("temperature_rated_max")}
		}
		return nil

	case *Miscellaneous:
		switch sub {
		case 1:
			return []input{need("frequency_operating")}
		case 4:
			return []input{need("voltage_rated")}
		}
	}
	return nil
}

// RequireInputs checks that rec carries every physical value the parts
// stress model of c reads, failing with a missing key naming the first
// absent field. Parts count and specified rates read none. With defaults
// set, values ApplyDefaults fills may be absent.
func RequireInputs(rec Record, c Component, defaults bool) error {
	if c.Method != taxonomy.PartsStress || c.HazardRateType != taxonomy.Assessed {
		return nil
	}
	for _, in := range stressInputs(c) {
		if defaults && in.defaultable {
			continue
		}
		if !rec.hasAny(in.alternatives) {
			return errs.Required(in.alternatives[0])
		}
	}
	return nil
}

func (r Record) hasAny(keys []string) bool {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return true
		}
	}
	return false
}
