//go:build integration

// Package integration contains integration tests for orbweave.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
// Or use: make test-integration
package integration

import (
	"bytes"
	"encoding/csv"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/orbweave/orbweave/core/astro"
	"github.com/orbweave/orbweave/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPositionsVerification runs orbweave positions and verifies the CSV
// longitudes against the ephemeris package computed in-process.
func TestPositionsVerification(t *testing.T) {
	orbweavePath := getOrbweaveBinary()
	outFile := filepath.Join(t.TempDir(), "positions.csv")

	cmd := exec.Command(orbweavePath, "positions",
		"--date", "2026-08-30",
		"--output", "csv",
		"--output-file", outFile,
		"--precision", "6",
		"--cache-backend", "none")
	cmd.Dir = ".."
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "positions failed: %s", string(output))

	records := readCSV(t, outFile)
	require.NotEmpty(t, records)

	at := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	for _, rec := range records {
		body := schema.Body(rec["body"])
		t.Run(string(body), func(t *testing.T) {
			want, err := astro.PositionAt(body, at)
			require.NoError(t, err)

			got, err := strconv.ParseFloat(rec["longitude"], 64)
			require.NoError(t, err)
			assert.InDelta(t, want.Longitude, got, 1e-5)
		})
	}
}

// TestTimingCacheConsistency runs the same forecast cold and warm against a
// SQLite cache and expects byte-identical JSON output.
func TestTimingCacheConsistency(t *testing.T) {
	orbweavePath := getOrbweaveBinary()
	chartPath := writeChartFixture(t)

	runForecast := func(outFile string) []byte {
		cmd := exec.Command(orbweavePath, "timing", chartPath,
			"--from", "2026-09-01",
			"--lookahead", "30",
			"--output", "json",
			"--output-file", outFile,
			"--cache-backend", "sqlite")
		cmd.Dir = ".."
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "timing failed: %s", string(output))

		data, err := os.ReadFile(outFile)
		require.NoError(t, err)
		return data
	}

	cold := runForecast(filepath.Join(t.TempDir(), "cold.json"))
	warm := runForecast(filepath.Join(t.TempDir(), "warm.json"))
	assert.True(t, bytes.Equal(cold, warm), "cached forecast diverged from computed forecast")
}

// readCSV loads a CSV file into header-keyed row maps.
func readCSV(t *testing.T, path string) []map[string]string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(data))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	header := rows[0]
	var records []map[string]string
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, col := range header {
			rec[col] = row[i]
		}
		records = append(records, rec)
	}
	return records
}
