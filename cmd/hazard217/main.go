package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hazard217/internal/batch"
	"hazard217/internal/component"
	"hazard217/internal/config"
	"hazard217/internal/events"
	"hazard217/internal/limits"
	"hazard217/internal/logging"
	"hazard217/internal/prediction"
	"hazard217/internal/store"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("hazard217 failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("hazard217", flag.ContinueOnError)
	in := fs.String("in", "-", "JSON file holding an array of component records (- for stdin)")
	limitsPath := fs.String("limits", cfg.LimitsPath, "TOML stress limit file overlaid on the built-in limits")
	dbPath := fs.String("db", cfg.DBPath, "SQLite database for results and run history (empty to disable)")
	mode := fs.String("mode", cfg.Mode, "parts count failure handling: strict or warn")
	derate := fs.Bool("derate", cfg.Derate, "check every part against its derating limits")
	defaults := fs.Bool("defaults", false, "fill unset design values before predicting")
	workers := fs.Int("workers", cfg.Workers, "concurrent predictions (0 for GOMAXPROCS)")
	logLevel := fs.String("log-level", cfg.LogLevel, "debug, info, warn or error")
	list := fs.Bool("list", false, "print the stored hazard rates instead of predicting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := logging.Init(logging.ParseLevel(*logLevel))

	var db *sql.DB
	if *dbPath != "" {
		if db, err = store.Open(*dbPath, logger); err != nil {
			return err
		}
		defer db.Close()
		logger.Debug("database opened", "path", *dbPath)
	}

	if *list {
		if db == nil {
			return errors.New("-list needs -db")
		}
		rates, err := store.ListHazardRates(db)
		if err != nil {
			return err
		}
		return writeJSON(stdout, rates)
	}

	engineCfg := prediction.Config{ApplyDefaults: *defaults, Derate: *derate}
	if engineCfg.Mode, err = prediction.ParseMode(*mode); err != nil {
		return err
	}
	if *derate && *limitsPath != "" {
		if engineCfg.Limits, err = limits.Load(*limitsPath); err != nil {
			return err
		}
		logger.Info("stress limits loaded", "path", *limitsPath, "entries", engineCfg.Limits.Len())
	}
	engine, err := prediction.New(engineCfg, logger)
	if err != nil {
		return err
	}

	recs, err := readRecords(*in, stdin)
	if err != nil {
		return err
	}

	bus := events.NewBus(logger)
	unsubscribe := bus.Subscribe(func(e events.Event) {
		logger.Warn("overstress", "hardware_id", e.HardwareID, "reason", e.Message)
	}, events.Overstressed)
	defer unsubscribe()

	runner := batch.NewRunner(engine, batch.Options{Workers: *workers, DB: db, Bus: bus}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report := runner.RunRecords(ctx, recs)
	if err := writeJSON(stdout, report); err != nil {
		return err
	}
	if n := len(report.Failures); n > 0 {
		return fmt.Errorf("%d of %d components failed", n, report.Total())
	}
	return nil
}

func readRecords(path string, stdin io.Reader) ([]component.Record, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var recs []component.Record
	if err := dec.Decode(&recs); err != nil {
		return nil, fmt.Errorf("failed to decode component records: %w", err)
	}
	return recs, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
