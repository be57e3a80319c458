package prediction

import (
	"context"
	"fmt"
	"strings"

	"hazard217/internal/component"
)

// PredictRecord is the boundary form of Predict. It returns a copy of rec
// with lambda_b, every factor and derived value by name,
// hazard_rate_active, hazard_rate_dormant, hazard_rate_logistics,
// mtbf_active, overstress and reason added. rec itself is not changed.
func (e *Engine) PredictRecord(rec component.Record) (component.Record, error) {
	c, err := e.Decode(rec)
	if err != nil {
		return nil, fmt.Errorf("component %v: %w", rec["hardware_id"], err)
	}
	res, err := e.Predict(context.Background(), c)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", c.ID, err)
	}
	return Augment(rec, res), nil
}

// Decode converts rec into a Component and checks that it carries every
// input the component's prediction method reads. Inputs the engine fills
// with defaults may be absent when ApplyDefaults is set.
func (e *Engine) Decode(rec component.Record) (component.Component, error) {
	c, err := component.FromRecord(rec)
	if err != nil {
		return component.Component{}, err
	}
	if err := component.RequireInputs(rec, c, e.cfg.ApplyDefaults); err != nil {
		return component.Component{}, err
	}
	return c, nil
}

// Augment copies rec and writes the outputs of res into the copy.
func Augment(rec component.Record, res Result) component.Record {
	out := rec.Clone()
	out["lambda_b"] = res.LambdaB
	for _, f := range res.Factors {
		out[f.Name] = f.Value
	}
	for _, f := range res.Derived {
		out[f.Name] = f.Value
	}
	out["hazard_rate_active"] = res.HazardRateActive
	out["hazard_rate_dormant"] = res.HazardRateDormant
	out["hazard_rate_logistics"] = res.HazardRateLogistics
	out["mtbf_active"] = res.MTBFActive

	overstress, reason := false, ""
	if res.Overstress != nil {
		overstress, reason = res.Overstress.Overstress, res.Overstress.Reason()
	}
	out["overstress"] = overstress
	out["reason"] = reason
	if len(res.Warnings) > 0 {
		out["warnings"] = strings.Join(res.Warnings, "\n")
	}
	return out
}
