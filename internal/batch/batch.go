// Package batch predicts many components concurrently. One component's
// failure never affects the others: it is reported as a Failure and its
// stored hazard rate, if any, is left as it was. A parts count prediction
// zeroed in warn mode is reported but not stored either.
package batch

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"hazard217/internal/component"
	"hazard217/internal/errs"
	"hazard217/internal/events"
	"hazard217/internal/prediction"
	"hazard217/internal/store"
)

// Failure is a component that could not be predicted.
type Failure struct {
	ComponentID string
	Field       string
	Err         error
}

func (f Failure) Error() string {
	if f.Field != "" {
		return fmt.Sprintf("component %s: field %s: %v", f.ComponentID, f.Field, f.Err)
	}
	return fmt.Sprintf("component %s: %v", f.ComponentID, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

func (f Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ComponentID string `json:"hardware_id"`
		Field       string `json:"field,omitempty"`
		Message     string `json:"message"`
	}{f.ComponentID, f.Field, f.Error()})
}

// Report summarises one run. Results and Failures keep the input order.
type Report struct {
	RunID      string              `json:"run_id"`
	Mode       string              `json:"mode"`
	Results    []prediction.Result `json:"results"`
	Records    []component.Record  `json:"records,omitempty"`
	Failures   []Failure           `json:"failures,omitempty"`
	StartedAt  time.Time           `json:"started_at"`
	FinishedAt time.Time           `json:"finished_at"`
}

func (r Report) Total() int { return len(r.Results) + len(r.Failures) }

// Overstressed returns the results whose derating check failed.
func (r Report) Overstressed() []prediction.Result {
	var out []prediction.Result
	for _, res := range r.Results {
		if res.Overstress != nil && res.Overstress.Overstress {
			out = append(out, res)
		}
	}
	return out
}

// Options configures a Runner. DB and Bus are optional.
type Options struct {
	Workers int
	DB      *sql.DB
	Bus     *events.Bus
}

// Runner fans predictions out over a bounded number of goroutines.
type Runner struct {
	engine  *prediction.Engine
	db      *sql.DB
	bus     *events.Bus
	workers int
	logger  *slog.Logger
}

// NewRunner returns a runner using engine. Workers <= 0 uses GOMAXPROCS.
func NewRunner(engine *prediction.Engine, opts Options, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{
		engine:  engine,
		db:      opts.DB,
		bus:     opts.Bus,
		workers: workers,
		logger:  logger.With("component", "batch"),
	}
}

type item struct {
	id     string
	comp   component.Component
	record component.Record
	err    error
}

type outcome struct {
	result  prediction.Result
	record  component.Record
	failure *Failure
}

// Run predicts every component.
func (r *Runner) Run(ctx context.Context, comps []component.Component) Report {
	items := make([]item, len(comps))
	for i, c := range comps {
		items[i] = item{id: c.ID, comp: c}
	}
	return r.run(ctx, items)
}

// RunRecords decodes each record and predicts it. A record that does not
// decode, including one missing an input its method reads, is reported as
// a failure like any other. Successful records are
// returned augmented with their outputs in Report.Records.
func (r *Runner) RunRecords(ctx context.Context, recs []component.Record) Report {
	items := make([]item, len(recs))
	for i, rec := range recs {
		c, err := r.engine.Decode(rec)
		items[i] = item{id: recordID(rec, i), comp: c, record: rec, err: err}
	}
	return r.run(ctx, items)
}

func recordID(rec component.Record, index int) string {
	if id, ok := rec["hardware_id"].(string); ok && id != "" {
		return id
	}
	if v, ok := rec["hardware_id"]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("#%d", index+1)
}

func (r *Runner) run(ctx context.Context, items []item) Report {
	report := Report{
		RunID:     uuid.NewString(),
		Mode:      r.engine.Config().Mode.String(),
		StartedAt: time.Now().UTC(),
	}
	logger := r.logger.With("run_id", report.RunID)
	logger.Info("run started", "components", len(items), "workers", r.workers)

	if r.db != nil {
		run := store.Run{ID: report.RunID, Mode: report.Mode, Total: len(items), StartedAt: report.StartedAt}
		if err := store.StartRun(r.db, run); err != nil {
			logger.Warn("could not record run", "error", err)
		}
	}
	r.publish(events.Event{
		Type:     events.RunStarted,
		Severity: events.SeverityInfo,
		RunID:    report.RunID,
		Message:  fmt.Sprintf("predicting %d components", len(items)),
	})

	outcomes := make([]outcome, len(items))
	var g errgroup.Group
	g.SetLimit(r.workers)
	for i := range items {
		g.Go(func() error {
			outcomes[i] = r.predict(ctx, report.RunID, items[i])
			return nil
		})
	}
	_ = g.Wait()

	for _, o := range outcomes {
		if o.failure != nil {
			report.Failures = append(report.Failures, *o.failure)
			continue
		}
		report.Results = append(report.Results, o.result)
		if o.record != nil {
			report.Records = append(report.Records, o.record)
		}
	}
	report.FinishedAt = time.Now().UTC()

	if r.db != nil {
		if err := store.FinishRun(r.db, report.RunID, len(report.Results), len(report.Failures)); err != nil {
			logger.Warn("could not finish run", "error", err)
		}
	}

	severity := events.SeverityInfo
	if len(report.Failures) > 0 {
		severity = events.SeverityWarning
	}
	r.publish(events.Event{
		Type:     events.RunComplete,
		Severity: severity,
		RunID:    report.RunID,
		Message:  fmt.Sprintf("%d predicted, %d failed", len(report.Results), len(report.Failures)),
		Metadata: map[string]string{
			"succeeded": fmt.Sprint(len(report.Results)),
			"failed":    fmt.Sprint(len(report.Failures)),
		},
	})
	logger.Info("run complete",
		"succeeded", len(report.Results),
		"failed", len(report.Failures),
		"duration", report.FinishedAt.Sub(report.StartedAt))
	return report
}

func (r *Runner) predict(ctx context.Context, runID string, it item) outcome {
	err := it.err
	var res prediction.Result
	if err == nil {
		res, err = r.engine.Predict(ctx, it.comp)
	}
	if err == nil && r.db != nil && !res.Zeroed {
		err = r.persist(runID, it.comp, res)
	}
	if err != nil {
		return outcome{failure: r.fail(runID, it.id, err)}
	}

	r.publish(events.Event{
		Type:       events.PredictionComplete,
		Severity:   events.SeverityInfo,
		RunID:      runID,
		HardwareID: it.id,
		Message:    fmt.Sprintf("hazard rate %g", res.HazardRateActive),
	})
	if res.Overstress != nil && res.Overstress.Overstress {
		r.publish(events.Event{
			Type:       events.Overstressed,
			Severity:   events.SeverityWarning,
			RunID:      runID,
			HardwareID: it.id,
			Message:    res.Overstress.Reason(),
		})
	}

	o := outcome{result: res}
	if it.record != nil {
		o.record = prediction.Augment(it.record, res)
	}
	return o
}

// persist stores the component and its new hazard rate together so a
// stored rate always matches the stored record.
func (r *Runner) persist(runID string, c component.Component, res prediction.Result) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer tx.Rollback()

	if err := store.SaveComponent(tx, c); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := store.SaveHazardRate(tx, runID, res); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	return nil
}

func (r *Runner) fail(runID, id string, err error) *Failure {
	f := &Failure{ComponentID: id, Field: errs.Field(err), Err: err}
	r.logger.Warn("prediction failed", "run_id", runID, "hardware_id", id, "field", f.Field, "error", err)

	if r.db != nil {
		rec := store.RunFailure{RunID: runID, HardwareID: id, Field: f.Field, Message: err.Error()}
		if serr := store.RecordFailure(r.db, rec); serr != nil {
			r.logger.Warn("could not record failure", "hardware_id", id, "error", serr)
		}
	}
	r.publish(events.Event{
		Type:       events.PredictionFailed,
		Severity:   events.SeverityWarning,
		RunID:      runID,
		HardwareID: id,
		Message:    f.Error(),
		Metadata:   map[string]string{"field": f.Field},
	})
	return f
}

func (r *Runner) publish(e events.Event) {
	if r.bus != nil {
		r.bus.Publish(e)
	}
}
