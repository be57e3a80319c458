// Package store persists component records, the last good hazard rate of
// each component and the history of prediction runs in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"hazard217/internal/component"
	"hazard217/internal/prediction"
)

// Open connects to the database at path, creating its directory and
// running migrations. ":memory:" opens a private in-memory database.
func Open(path string, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dsn := ":memory:"
	if path != ":memory:" {
		if err := ensureDirectory(path); err != nil {
			return nil, err
		}
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			logger.Warn("could not enable WAL mode", "error", err)
		}
	}
	if err := Migrate(db, logger); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Execer is satisfied by *sql.DB and *sql.Tx.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func ensureDirectory(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}
	return nil
}

// SaveComponent stores the boundary record of a component, replacing any
// earlier version.
func SaveComponent(db Execer, c component.Component) error {
	data, err := json.Marshal(component.ToRecord(c))
	if err != nil {
		return fmt.Errorf("failed to encode component %s: %w", c.ID, err)
	}
	_, err = db.Exec(`
		INSERT INTO components (hardware_id, category_id, subcategory_id, record_json, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(hardware_id) DO UPDATE SET
			category_id    = excluded.category_id,
			subcategory_id = excluded.subcategory_id,
			record_json    = excluded.record_json,
			updated_at     = excluded.updated_at
	`, c.ID, int(c.Category), c.Subcategory, string(data), nowString())
	if err != nil {
		return fmt.Errorf("failed to save component %s: %w", c.ID, err)
	}
	return nil
}

// GetComponent loads a stored component. It returns nil, nil when the
// component is unknown.
func GetComponent(db *sql.DB, hardwareID string) (*component.Component, error) {
	var data string
	err := db.QueryRow(`SELECT record_json FROM components WHERE hardware_id = ?`, hardwareID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec component.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode component %s: %w", hardwareID, err)
	}
	c, err := component.FromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("stored component %s: %w", hardwareID, err)
	}
	return &c, nil
}

// SaveHazardRate replaces the stored hazard rate of res's component. Only
// successful predictions are saved, so a failed run leaves the previous
// value in place.
func SaveHazardRate(db Execer, runID string, res prediction.Result) error {
	factors, err := json.Marshal(res.Factors)
	if err != nil {
		return fmt.Errorf("failed to encode factors for %s: %w", res.ComponentID, err)
	}
	overstress, reason := false, ""
	if res.Overstress != nil {
		overstress, reason = res.Overstress.Overstress, res.Overstress.Reason()
	}
	_, err = db.Exec(`
		INSERT INTO hazard_rates (hardware_id, run_id, method_id, equation, lambda_b,
			hazard_rate_active, hazard_rate_dormant, hazard_rate_logistics, mtbf_active,
			overstress, reason, factors_json, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(hardware_id) DO UPDATE SET
			run_id                = excluded.run_id,
			method_id             = excluded.method_id,
			equation              = excluded.equation,
			lambda_b              = excluded.lambda_b,
			hazard_rate_active    = excluded.hazard_rate_active,
			hazard_rate_dormant   = excluded.hazard_rate_dormant,
			hazard_rate_logistics = excluded.hazard_rate_logistics,
			mtbf_active           = excluded.mtbf_active,
			overstress            = excluded.overstress,
			reason                = excluded.reason,
			factors_json          = excluded.factors_json,
			updated_at            = excluded.updated_at
	`, res.ComponentID, runID, int(res.Method), res.Equation, res.LambdaB,
		res.HazardRateActive, res.HazardRateDormant, res.HazardRateLogistics, res.MTBFActive,
		overstress, reason, string(factors), nowString())
	if err != nil {
		return fmt.Errorf("failed to save hazard rate for %s: %w", res.ComponentID, err)
	}
	return nil
}

const hazardRateColumns = `hardware_id, run_id, method_id, COALESCE(equation, ''), lambda_b,
	hazard_rate_active, hazard_rate_dormant, hazard_rate_logistics, mtbf_active,
	overstress, COALESCE(reason, ''), COALESCE(factors_json, ''), updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanHazardRate(s scanner) (HazardRate, error) {
	var h HazardRate
	var ts string
	err := s.Scan(&h.HardwareID, &h.RunID, &h.MethodID, &h.Equation, &h.LambdaB,
		&h.HazardRateActive, &h.HazardRateDormant, &h.HazardRateLogistics, &h.MTBFActive,
		&h.Overstress, &h.Reason, &h.FactorsJSON, &ts)
	if err != nil {
		return HazardRate{}, err
	}
	h.UpdatedAt = parseTime(ts)
	return h, nil
}

// GetHazardRate returns the stored hazard rate of a component, or nil, nil
// when none has been saved.
func GetHazardRate(db *sql.DB, hardwareID string) (*HazardRate, error) {
	row := db.QueryRow(`SELECT `+hazardRateColumns+` FROM hazard_rates WHERE hardware_id = ?`, hardwareID)
	h, err := scanHazardRate(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListHazardRates returns every stored hazard rate, highest first.
func ListHazardRates(db *sql.DB) ([]HazardRate, error) {
	rows, err := db.Query(`SELECT ` + hazardRateColumns + ` FROM hazard_rates ORDER BY hazard_rate_active DESC, hardware_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query hazard rates: %w", err)
	}
	defer rows.Close()

	var out []HazardRate
	for rows.Next() {
		h, err := scanHazardRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hazard rate: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// StartRun records the start of a prediction run.
func StartRun(db *sql.DB, r Run) error {
	started := r.StartedAt
	if started.IsZero() {
		started = time.Now()
	}
	_, err := db.Exec(`
		INSERT INTO prediction_runs (id, mode, total, started_at)
		VALUES (?, ?, ?, ?)
	`, r.ID, r.Mode, r.Total, started.UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("failed to start run %s: %w", r.ID, err)
	}
	return nil
}

// FinishRun stores the outcome counts of a run.
func FinishRun(db *sql.DB, id string, succeeded, failed int) error {
	result, err := db.Exec(`
		UPDATE prediction_runs SET succeeded = ?, failed = ?, finished_at = ?
		WHERE id = ?
	`, succeeded, failed, nowString(), id)
	if err != nil {
		return fmt.Errorf("failed to finish run %s: %w", id, err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("run %s not found", id)
	}
	return nil
}

// GetRun returns a run, or nil, nil when it does not exist.
func GetRun(db *sql.DB, id string) (*Run, error) {
	var r Run
	var started string
	var finished sql.NullString
	err := db.QueryRow(`
		SELECT id, mode, total, succeeded, failed, started_at, finished_at
		FROM prediction_runs WHERE id = ?
	`, id).Scan(&r.ID, &r.Mode, &r.Total, &r.Succeeded, &r.Failed, &started, &finished)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.StartedAt = parseTime(started)
	if finished.Valid {
		t := parseTime(finished.String)
		r.FinishedAt = &t
	}
	return &r, nil
}

// RecordFailure stores one component failure of a run.
func RecordFailure(db *sql.DB, f RunFailure) error {
	_, err := db.Exec(`
		INSERT INTO run_failures (run_id, hardware_id, field, message)
		VALUES (?, ?, ?, ?)
	`, f.RunID, f.HardwareID, f.Field, f.Message)
	if err != nil {
		return fmt.Errorf("failed to record failure of %s: %w", f.HardwareID, err)
	}
	return nil
}

// ListFailures returns the failures recorded for a run in insertion order.
func ListFailures(db *sql.DB, runID string) ([]RunFailure, error) {
	rows, err := db.Query(`
		SELECT run_id, hardware_id, COALESCE(field, ''), message
		FROM run_failures WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query failures: %w", err)
	}
	defer rows.Close()

	var out []RunFailure
	for rows.Next() {
		var f RunFailure
		if err := rows.Scan(&f.RunID, &f.HardwareID, &f.Field, &f.Message); err != nil {
			return nil, fmt.Errorf("failed to scan failure: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// modernc returns DATETIME columns either as the stored text or in RFC 3339
// form depending on how they were written.
func parseTime(s string) time.Time {
	for _, layout := range []string{timeFormat, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
