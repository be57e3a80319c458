// Package prediction turns a component into its predicted hazard rates. It
// selects the parts count tables or the parts stress models, applies the
// user adjustments, converts the active rate into a dormant rate and, when
// configured, checks the part against its derating limits.
package prediction

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"hazard217/internal/component"
	"hazard217/internal/derating"
	"hazard217/internal/errs"
	"hazard217/internal/limits"
	"hazard217/internal/stress"
	"hazard217/internal/tables"
	"hazard217/internal/taxonomy"
)

// hoursScale converts between hazard rates in failures per 10^6 hours and
// MTBF in hours.
const hoursScale = 1e6

// Mode decides what happens when a parts count lookup fails.
type Mode int

const (
	// Strict returns every error to the caller.
	Strict Mode = iota
	// WarnAndZero reports a parts count failure as a zero hazard rate
	// with a warning. Parts stress failures are returned in either mode.
	WarnAndZero
)

func (m Mode) String() string {
	if m == WarnAndZero {
		return "warn"
	}
	return "strict"
}

// ParseMode accepts "strict", "warn" or "warn-and-zero".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "strict":
		return Strict, nil
	case "warn", "warn-and-zero":
		return WarnAndZero, nil
	}
	return Strict, errs.MissingKey("prediction modes", s)
}

// Config controls an Engine.
type Config struct {
	Mode Mode
	// ApplyDefaults fills unset design values (case temperature, θjc,
	// years in production, temperature rise) before predicting.
	ApplyDefaults bool
	// Derate runs the overstress check after a successful prediction.
	Derate bool
	// Limits used when Derate is set; nil selects the built-in limits.
	Limits *limits.Table
}

// Result is the outcome of one prediction.
type Result struct {
	ComponentID string                  `json:"hardware_id"`
	Category    taxonomy.Category       `json:"category_id"`
	Subcategory int                     `json:"subcategory_id"`
	Method      taxonomy.Method         `json:"hazard_rate_method_id"`
	Type        taxonomy.HazardRateType `json:"hazard_rate_type_id"`
	Equation    string                  `json:"equation,omitempty"`
	LambdaB     float64                 `json:"lambda_b"`
	Factors     []stress.Factor         `json:"factors,omitempty"`
	Derived     []stress.Factor         `json:"derived,omitempty"`

	// HazardRateModel is the rate before adjustments.
	HazardRateModel     float64 `json:"hazard_rate_model"`
	HazardRateActive    float64 `json:"hazard_rate_active"`
	HazardRateDormant   float64 `json:"hazard_rate_dormant"`
	HazardRateLogistics float64 `json:"hazard_rate_logistics"`
	MTBFActive          float64 `json:"mtbf_active"`
	Reliability         float64 `json:"reliability"`

	Warnings   []string         `json:"warnings,omitempty"`
	Overstress *derating.Result `json:"overstress,omitempty"`

	// Zeroed marks a prediction that failed and was reported as zero
	// under WarnAndZero. Its rates are not a prediction.
	Zeroed bool `json:"zeroed,omitempty"`
}

// Engine predicts hazard rates. It holds no per-call state and may be used
// from many goroutines.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

// New builds an engine. When derating is enabled without a limits table the
// built-in limits are loaded.
func New(cfg Config, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Derate && cfg.Limits == nil {
		tbl, err := limits.Default()
		if err != nil {
			return nil, err
		}
		cfg.Limits = tbl
	}
	return &Engine{cfg: cfg, logger: logger.With("component", "prediction")}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Predict runs method selection, base rate, factors, combination and the
// optional derating check for c. The component is never modified.
func (e *Engine) Predict(ctx context.Context, c component.Component) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if e.cfg.ApplyDefaults {
		c = component.ApplyDefaults(c)
	}

	res := Result{
		ComponentID: c.ID,
		Category:    c.Category,
		Subcategory: c.Subcategory,
		Method:      c.Method,
		Type:        c.HazardRateType,
	}

	rate, err := e.modelRate(c, &res)
	if err != nil {
		if e.cfg.Mode == WarnAndZero && e.countMethod(c) {
			warning := fmt.Sprintf("%s: %v", c.ID, err)
			e.logger.Warn("parts count prediction zeroed", "hardware_id", c.ID, "error", err)
			res.Warnings = append(res.Warnings, warning)
			res.Zeroed = true
			res.Reliability = 1
			return res, nil
		}
		return Result{}, err
	}
	res.HazardRateModel = rate
	res.HazardRateActive = adjust(c, rate)

	if factor, ok := DormantFactor(c); ok {
		res.HazardRateDormant = res.HazardRateActive * factor
	} else {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"%s: no dormant conversion for %s in %s with dormant environment %d",
			c.ID, c.Category, c.EnvironmentActive.Code(), c.EnvironmentDormant))
	}
	res.HazardRateLogistics = res.HazardRateActive + res.HazardRateDormant
	if res.HazardRateActive > 0 {
		res.MTBFActive = hoursScale / res.HazardRateActive
	}
	res.Reliability = math.Exp(-res.HazardRateActive * c.MissionTime / hoursScale)

	if e.cfg.Derate {
		over, err := derating.CheckOverstress(c, e.cfg.Limits)
		if err != nil {
			return Result{}, fmt.Errorf("derating: %w", err)
		}
		res.Overstress = &over
	}

	e.logger.Debug("prediction complete",
		"hardware_id", c.ID,
		"method", c.Method,
		"hazard_rate_active", res.HazardRateActive)
	return res, nil
}

func (e *Engine) countMethod(c component.Component) bool {
	return c.HazardRateType == taxonomy.Assessed && c.Method == taxonomy.PartsCount
}

// modelRate returns the unadjusted hazard rate and records how it was
// obtained in res.
func (e *Engine) modelRate(c component.Component, res *Result) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	switch c.HazardRateType {
	case taxonomy.SpecifiedHazardRate:
		res.Equation = "specified"
		return c.HazardRateSpecified, nil
	case taxonomy.SpecifiedMTBF:
		if c.MTBFSpecified == 0 {
			return 0, errs.DivisionByZero("specified MTBF")
		}
		res.Equation = "1e6 / mtbf"
		return hoursScale / c.MTBFSpecified, nil
	case taxonomy.Assessed:
	default:
		return 0, errs.OutOfRange("hazard_rate_type_id", float64(c.HazardRateType), 1, 3)
	}

	switch c.Method {
	case taxonomy.PartsCount:
		return partsCount(c, res)
	case taxonomy.PartsStress:
		w, err := stress.Calculate(c)
		if err != nil {
			return 0, err
		}
		res.Equation = w.Equation
		res.LambdaB = w.LambdaB
		res.Factors = w.Factors
		res.Derived = w.Derived
		return w.HazardRate, nil
	}
	return 0, errs.OutOfRange("hazard_rate_method_id", float64(c.Method), 1, 2)
}

func partsCount(c component.Component, res *Result) (float64, error) {
	key, err := CountKey(c)
	if err != nil {
		return 0, err
	}
	lambdaB, err := tables.LambdaB(c.Category, key, c.EnvironmentActive)
	if err != nil {
		return 0, err
	}
	piQ, err := tables.QualityFactor(c.Category, key, c.Quality)
	if err != nil {
		return 0, err
	}
	res.Equation = "lambdaB * piQ"
	res.LambdaB = lambdaB
	res.Factors = []stress.Factor{{Name: "piQ", Value: piQ, Description: "quality"}}
	return lambdaB * piQ, nil
}

// CountKey builds the parts count table key for c: the subcategory, the
// variant the category's table is split by and, for integrated circuits,
// the complexity index.
func CountKey(c component.Component) (tables.Key, error) {
	k := tables.Key{Subcategory: c.Subcategory}
	switch p := c.Part.(type) {
	case *component.IntegratedCircuit:
		idx, err := tables.ElementIndex(c.Subcategory, p.Technology, p.Elements)
		if err != nil {
			return tables.Key{}, err
		}
		k.Variant, k.Index = p.Technology, idx
	case *component.Semiconductor:
		k.Variant = p.Type
	case *component.Resistor:
		k.Variant = p.Specification
	case *component.Capacitor:
		k.Variant = p.Specification
	case *component.Inductor:
		k.Variant = p.Family
	case *component.Relay:
		k.Variant = p.Type
	case *component.Connection:
		k.Variant = p.Type
	}
	return k, nil
}

// adjust applies the additive and multiplicative adjustments, the duty
// cycle and the quantity.
func adjust(c component.Component, rate float64) float64 {
	return (rate + c.AddAdj) * (c.DutyCycle / 100) * c.MultAdj * float64(c.Quantity)
}
