package store

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"hazard217/internal/component"
	"hazard217/internal/derating"
	"hazard217/internal/prediction"
	"hazard217/internal/stress"
	"hazard217/internal/taxonomy"
)

// ── Test DB setup ───────────────────────────────────────────────────────────

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db, nil))
	t.Cleanup(func() { db.Close() })
	return db
}

func testResult(id string, rate float64) prediction.Result {
	return prediction.Result{
		ComponentID:         id,
		Category:            taxonomy.Resistor,
		Subcategory:         1,
		Method:              taxonomy.PartsCount,
		Equation:            "lambdaB * piQ",
		LambdaB:             rate,
		Factors:             []stress.Factor{{Name: "piQ", Value: 1, Description: "quality"}},
		HazardRateActive:    rate,
		HazardRateDormant:   rate / 5,
		HazardRateLogistics: rate * 1.2,
		MTBFActive:          1e6 / rate,
	}
}

// ── Open ────────────────────────────────────────────────────────────────────

func TestOpenCreatesDirectoryAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hazard.db")
	db, err := Open(path, nil)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'hazard_rates'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, Migrate(db, nil))
}

// ── Components ──────────────────────────────────────────────────────────────

func TestSaveAndGetComponent(t *testing.T) {
	db := setupTestDB(t)

	c := component.New("R1", 1, &component.Resistor{Resistance: 3300, Specification: 1})
	c.Quality = 4
	require.NoError(t, SaveComponent(db, c))

	got, err := GetComponent(db, "R1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, taxonomy.Resistor, got.Category)
	assert.Equal(t, 4, got.Quality)
	assert.Equal(t, 3300.0, got.Part.(*component.Resistor).Resistance)

	c.Part.(*component.Resistor).Resistance = 4700
	require.NoError(t, SaveComponent(db, c))
	got, err = GetComponent(db, "R1")
	require.NoError(t, err)
	assert.Equal(t, 4700.0, got.Part.(*component.Resistor).Resistance)
}

func TestGetComponentMissing(t *testing.T) {
	got, err := GetComponent(setupTestDB(t), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

// ── Hazard rates ────────────────────────────────────────────────────────────

func TestSaveAndGetHazardRate(t *testing.T) {
	db := setupTestDB(t)

	res := testResult("R1", 0.0005)
	res.Overstress = &derating.Result{Overstress: true, Reasons: []string{"Power ratio 0.90 is greater than the severe environment upper limit of 0.50."}}
	require.NoError(t, SaveHazardRate(db, "run-1", res))

	got, err := GetHazardRate(db, "R1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, int(taxonomy.PartsCount), got.MethodID)
	assert.InDelta(t, 0.0005, got.HazardRateActive, 1e-15)
	assert.InDelta(t, 0.0001, got.HazardRateDormant, 1e-15)
	assert.True(t, got.Overstress)
	assert.Contains(t, got.Reason, "Power ratio")
	assert.Contains(t, got.FactorsJSON, `"piQ"`)
	assert.WithinDuration(t, time.Now(), got.UpdatedAt, time.Minute)
}

func TestSaveHazardRateReplacesPrevious(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SaveHazardRate(db, "run-1", testResult("R1", 0.0005)))
	require.NoError(t, SaveHazardRate(db, "run-2", testResult("R1", 0.002)))

	got, err := GetHazardRate(db, "R1")
	require.NoError(t, err)
	assert.Equal(t, "run-2", got.RunID)
	assert.InDelta(t, 0.002, got.HazardRateActive, 1e-15)
	assert.False(t, got.Overstress)
}

func TestGetHazardRateMissing(t *testing.T) {
	got, err := GetHazardRate(setupTestDB(t), "R1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestListHazardRatesOrdersByRate(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, SaveHazardRate(db, "run-1", testResult("R1", 0.001)))
	require.NoError(t, SaveHazardRate(db, "run-1", testResult("C1", 0.02)))
	require.NoError(t, SaveHazardRate(db, "run-1", testResult("U1", 0.005)))

	rates, err := ListHazardRates(db)
	require.NoError(t, err)
	require.Len(t, rates, 3)
	assert.Equal(t, []string{"C1", "U1", "R1"}, []string{rates[0].HardwareID, rates[1].HardwareID, rates[2].HardwareID})
}

// ── Runs ────────────────────────────────────────────────────────────────────

func TestRunLifecycle(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, StartRun(db, Run{ID: "run-1", Mode: "strict", Total: 3}))

	run, err := GetRun(db, "run-1")
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, 3, run.Total)
	assert.Nil(t, run.FinishedAt)

	require.NoError(t, RecordFailure(db, RunFailure{RunID: "run-1", HardwareID: "R9", Field: "temperature_active", Message: "bad"}))
	require.NoError(t, RecordFailure(db, RunFailure{RunID: "run-1", HardwareID: "C4", Message: "worse"}))
	require.NoError(t, FinishRun(db, "run-1", 1, 2))

	run, err = GetRun(db, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 1, run.Succeeded)
	assert.Equal(t, 2, run.Failed)
	require.NotNil(t, run.FinishedAt)

	failures, err := ListFailures(db, "run-1")
	require.NoError(t, err)
	require.Len(t, failures, 2)
	assert.Equal(t, "R9", failures[0].HardwareID)
	assert.Equal(t, "temperature_active", failures[0].Field)
	assert.Equal(t, "", failures[1].Field)
}

func TestFinishUnknownRun(t *testing.T) {
	assert.Error(t, FinishRun(setupTestDB(t), "missing", 0, 0))
}

func TestGetRunMissing(t *testing.T) {
	run, err := GetRun(setupTestDB(t), "missing")
	assert.NoError(t, err)
	assert.Nil(t, run)
}
