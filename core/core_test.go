package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testChartYAML = `
reference_date: 1990-03-15T00:00:00Z
baseline: 10.0
bodies:
  - name: sun
    longitude: 0.0
    speed: 0.9856
  - name: moon
    longitude: 140.0
    speed: 13.1764
  - name: mercury
    longitude: 65.0
    speed: 1.2
  - name: venus
    longitude: 200.0
    speed: 1.1
  - name: mars
    longitude: 280.0
    speed: 0.52
`

// writeTestChart writes a chart fixture and returns its path.
func writeTestChart(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testChartYAML), 0o644))
	return path
}

// testConfig builds a config that writes JSON into a temp file so executor
// tests never touch stdout.
func testConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		ChartFile:    writeTestChart(t),
		Date:         time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		From:         time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Lookahead:    5,
		Category:     schema.GeneralCategory,
		ResultLimit:  10,
		Workers:      2,
		Precision:    1,
		Output:       schema.JSONOut,
		OutputFile:   filepath.Join(t.TempDir(), "out.json"),
		Fallback:     schema.SkipFallback,
		CacheBackend: schema.NoneBackend,
	}
}

// TestExecuteAspects tests the main aspect analysis entry point.
func TestExecuteAspects(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, ExecuteAspects(context.Background(), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

// TestExecuteAspectsMissingChart ensures a bad chart path surfaces an error.
func TestExecuteAspectsMissingChart(t *testing.T) {
	cfg := testConfig(t)
	cfg.ChartFile = "/nonexistent/chart.yaml"
	assert.Error(t, ExecuteAspects(context.Background(), cfg))
}

// TestExecuteSynastry tests the cross-chart analysis entry point.
func TestExecuteSynastry(t *testing.T) {
	cfg := testConfig(t)
	cfg.ChartFileB = writeTestChart(t)
	require.NoError(t, ExecuteSynastry(context.Background(), cfg))

	t.Run("missing second chart", func(t *testing.T) {
		bad := testConfig(t)
		bad.ChartFileB = "/nonexistent/chart.yaml"
		assert.Error(t, ExecuteSynastry(context.Background(), bad))
	})
}

// TestExecutePatterns tests the configuration detection entry point.
func TestExecutePatterns(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, ExecutePatterns(context.Background(), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

// TestExecutePositions tests the ephemeris snapshot entry point.
func TestExecutePositions(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, ExecutePositions(context.Background(), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "longitude")
}

// TestExecuteTiming tests the forecast entry point end to end with the
// real periodic-term provider and no cache store behind it.
func TestExecuteTiming(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, ExecuteTiming(context.Background(), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "summary")
}

// TestPositionSourcePassthrough verifies the executor source works without
// an initialized cache manager.
func TestPositionSourcePassthrough(t *testing.T) {
	source := positionSource()
	pos, err := source.PositionAt(schema.Mars, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, schema.Mars, pos.Name)
}
