package store

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Migrate creates the component, hazard rate and run history tables.
func Migrate(db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "store")
	logger.Debug("running migration", "name", "prediction tables")

	statements := []struct {
		label string
		sql   string
	}{
		{"components", `
			CREATE TABLE IF NOT EXISTS components (
				hardware_id    TEXT    PRIMARY KEY,
				category_id    INTEGER NOT NULL,
				subcategory_id INTEGER NOT NULL,
				record_json    TEXT    NOT NULL,
				updated_at     DATETIME DEFAULT CURRENT_TIMESTAMP
			);`},
		{"hazard_rates", `
			CREATE TABLE IF NOT EXISTS hazard_rates (
				hardware_id           TEXT PRIMARY KEY,
				run_id                TEXT NOT NULL,
				method_id             INTEGER NOT NULL,
				equation              TEXT,
				lambda_b              REAL NOT NULL,
				hazard_rate_active    REAL NOT NULL,
				hazard_rate_dormant   REAL NOT NULL,
				hazard_rate_logistics REAL NOT NULL,
				mtbf_active           REAL NOT NULL,
				overstress            INTEGER NOT NULL DEFAULT 0,
				reason                TEXT,
				factors_json          TEXT,
				updated_at            DATETIME DEFAULT CURRENT_TIMESTAMP
			);`},
		{"prediction_runs", `
			CREATE TABLE IF NOT EXISTS prediction_runs (
				id          TEXT PRIMARY KEY,
				mode        TEXT NOT NULL,
				total       INTEGER NOT NULL DEFAULT 0,
				succeeded   INTEGER NOT NULL DEFAULT 0,
				failed      INTEGER NOT NULL DEFAULT 0,
				started_at  DATETIME NOT NULL,
				finished_at DATETIME
			);`},
		{"run_failures", `
			CREATE TABLE IF NOT EXISTS run_failures (
				id          INTEGER PRIMARY KEY AUTOINCREMENT,
				run_id      TEXT NOT NULL REFERENCES prediction_runs(id) ON DELETE CASCADE,
				hardware_id TEXT NOT NULL,
				field       TEXT,
				message     TEXT NOT NULL
			);`},
		{"indexes", `
			CREATE INDEX IF NOT EXISTS idx_hazard_rates_run ON hazard_rates(run_id);
			CREATE INDEX IF NOT EXISTS idx_run_failures_run ON run_failures(run_id);`},
	}

	for _, s := range statements {
		if _, err := db.Exec(s.sql); err != nil {
			return fmt.Errorf("store migration failed at [%s]: %w", s.label, err)
		}
		logger.Debug("migration step", "label", s.label)
	}
	return nil
}
