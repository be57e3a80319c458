package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const partsJSON = `[
	{"hardware_id": "R1", "category_id": 3, "subcategory_id": 1, "environment_active_id": 1, "quality_id": 4},
	{"hardware_id": "R9", "category_id": 3, "subcategory_id": 1, "environment_active_id": 1, "temperature_active": "hot"}
]`

func TestReadRecordsFromStdin(t *testing.T) {
	recs, err := readRecords("-", strings.NewReader(partsJSON))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "R1", recs[0]["hardware_id"])
	assert.Equal(t, json.Number("3"), recs[0]["category_id"])
}

func TestReadRecordsRejectsObject(t *testing.T) {
	_, err := readRecords("-", strings.NewReader(`{"hardware_id": "R1"}`))
	assert.ErrorContains(t, err, "failed to decode")
}

func TestRunPredictsAndPersists(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("parts.json", []byte(partsJSON), 0o600))
	dbPath := filepath.Join("data", "hazard.db")

	var out bytes.Buffer
	err := run([]string{"-in", "parts.json", "-db", dbPath, "-log-level", "error"}, nil, &out)
	assert.ErrorContains(t, err, "1 of 2 components failed")

	var report struct {
		RunID    string           `json:"run_id"`
		Records  []map[string]any `json:"records"`
		Failures []map[string]any `json:"failures"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Records, 1)
	assert.InDelta(t, 0.0005, report.Records[0]["hazard_rate_active"], 1e-15)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "R9", report.Failures[0]["hardware_id"])
	assert.Equal(t, "temperature_active", report.Failures[0]["field"])

	out.Reset()
	require.NoError(t, run([]string{"-db", dbPath, "-list", "-log-level", "error"}, nil, &out))
	var rates []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rates))
	require.Len(t, rates, 1)
	assert.Equal(t, "R1", rates[0]["hardware_id"])
	assert.Equal(t, report.RunID, rates[0]["run_id"])
}

func TestRunRejectsUnknownMode(t *testing.T) {
	t.Chdir(t.TempDir())
	err := run([]string{"-mode", "lenient", "-log-level", "error"}, strings.NewReader("[]"), &bytes.Buffer{})
	assert.ErrorContains(t, err, "lenient")
}

func TestListNeedsDatabase(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HAZARD217_DB_PATH", "")
	err := run([]string{"-list", "-log-level", "error"}, nil, &bytes.Buffer{})
	assert.ErrorContains(t, err, "-list needs -db")
}
