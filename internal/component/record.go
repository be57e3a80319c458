package component

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	"hazard217/internal/errs"
	"hazard217/internal/taxonomy"
)

// Record is the string-keyed boundary form of a component, keyed by the
// handbook attribute names (category_id, temperature_active, ...).
type Record map[string]any

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// reader pulls typed values out of a Record and keeps the first error.
type reader struct {
	rec Record
	err error
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) number(key string) (float64, bool) {
	raw, ok := r.rec[key]
	if !ok || raw == nil {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			r.fail(errs.TypeMismatch(key, "number", raw))
			return 0, false
		}
		return f, true
	}
	r.fail(errs.TypeMismatch(key, "number", raw))
	return 0, false
}

func (r *reader) float(key string, fallback float64) float64 {
	if v, ok := r.number(key); ok {
		return v
	}
	return fallback
}

func (r *reader) int(key string, fallback int) int {
	v, ok := r.number(key)
	if !ok {
		return fallback
	}
	if v != math.Trunc(v) {
		r.fail(errs.TypeMismatch(key, "integer", r.rec[key]))
		return fallback
	}
	return int(v)
}

func (r *reader) requiredInt(key string) int {
	if _, ok := r.rec[key]; !ok {
		r.fail(errs.MissingKey("component record", key))
		return 0
	}
	return r.int(key, 0)
}

func (r *reader) id() string {
	raw, ok := r.rec["hardware_id"]
	if !ok {
		return ""
	}
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	}
	r.fail(errs.TypeMismatch("hardware_id", "string or integer", raw))
	return ""
}

// FromRecord converts a boundary record into a Component. Absent optional
// fields take the defaults of New; absent category, subcategory or active
// environment fail with a missing key.
func FromRecord(rec Record) (Component, error) {
	r := &reader{rec: rec}

	c := Component{
		ID:                  r.id(),
		Category:            taxonomy.Category(r.requiredInt("category_id")),
		Subcategory:         r.requiredInt("subcategory_id"),
		EnvironmentActive:   taxonomy.Environment(r.requiredInt("environment_active_id")),
		EnvironmentDormant:  taxonomy.DormantEnvironment(r.int("environment_dormant_id", int(taxonomy.DormantGround))),
		Quality:             r.int("quality_id", 1),
		Method:              taxonomy.Method(r.int("hazard_rate_method_id", int(taxonomy.PartsCount))),
		HazardRateType:      taxonomy.HazardRateType(r.int("hazard_rate_type_id", int(taxonomy.Assessed))),
		HazardRateSpecified: r.float("hazard_rate_specified", 0),
		MTBFSpecified:       r.float("mtbf_specified", 0),
		TemperatureActive:   r.float("temperature_active", 30),
		TemperatureRatedMax: r.float("temperature_rated_max", 0),
		CurrentOperating:    r.float("current_operating", 0),
		CurrentRated:        r.float("current_rated", 0),
		PowerOperating:      r.float("power_operating", 0),
		PowerRated:          r.float("power_rated", 0),
		VoltageACOperating:  r.float("voltage_ac_operating", 0),
		VoltageDCOperating:  r.float("voltage_dc_operating", 0),
		VoltageRated:        r.float("voltage_rated", 0),
		DutyCycle:           r.float("duty_cycle", 100),
		Quantity:            r.int("quantity", 1),
		MultAdj:             r.float("mult_adj_factor", 1),
		AddAdj:              r.float("add_adj_factor", 0),
		MissionTime:         r.float("mission_time", 0),
	}
	if r.err != nil {
		return Component{}, r.err
	}

	part, ok := NewPart(c.Category)
	if !ok {
		return Component{}, errs.OutOfRange("category_id", float64(c.Category), 1, 10)
	}
	decodePart(r, part)
	if r.err != nil {
		return Component{}, r.err
	}
	c.Part = part
	return c, nil
}

// decodePart fills the tagged int and float64 fields of a Part variant.
func decodePart(r *reader, part Part) {
	v := reflect.ValueOf(part).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("record")
		if key == "" {
			continue
		}
		f := v.Field(i)
		switch f.Kind() {
		case reflect.Int:
			f.SetInt(int64(r.int(key, 0)))
		case reflect.Float64:
			f.SetFloat(r.float(key, 0))
		}
	}
}

// ToRecord converts a Component back to its boundary form.
func ToRecord(c Component) Record {
	rec := Record{
		"hardware_id":            c.ID,
		"category_id":            int(c.Category),
		"subcategory_id":         c.Subcategory,
		"quality_id":             c.Quality,
		"hazard_rate_method_id":  int(c.Method),
		"hazard_rate_type_id":    int(c.HazardRateType),
		"hazard_rate_specified":  c.HazardRateSpecified,
		"mtbf_specified":         c.MTBFSpecified,
		"environment_active_id":  int(c.EnvironmentActive),
		"environment_dormant_id": int(c.EnvironmentDormant),
		"temperature_active":     c.TemperatureActive,
		"temperature_rated_max":  c.TemperatureRatedMax,
		"current_operating":      c.CurrentOperating,
		"current_rated":          c.CurrentRated,
		"power_operating":        c.PowerOperating,
		"power_rated":            c.PowerRated,
		"voltage_ac_operating":   c.VoltageACOperating,
		"voltage_dc_operating":   c.VoltageDCOperating,
		"voltage_rated":          c.VoltageRated,
		"duty_cycle":             c.DutyCycle,
		"quantity":               c.Quantity,
		"mult_adj_factor":        c.MultAdj,
		"add_adj_factor":         c.AddAdj,
		"mission_time":           c.MissionTime,
	}
	if c.Part == nil {
		return rec
	}
	v := reflect.ValueOf(c.Part).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if key := t.Field(i).Tag.Get("record"); key != "" {
			rec[key] = v.Field(i).Interface()
		}
	}
	return rec
}

// Clone returns a deep copy of c so callers can adjust it freely.
func (c Component) Clone() Component {
	if c.Part != nil {
		v := reflect.ValueOf(c.Part).Elem()
		cp := reflect.New(v.Type())
		cp.Elem().Set(v)
		c.Part = cp.Interface().(Part)
	}
	return c
}
