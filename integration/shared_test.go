//go:build integration || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedOrbweavePath holds the path to a shared orbweave binary built once for all tests.
	sharedOrbweavePath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// chartFixture is a small but aspect-rich chart used across integration tests.
const chartFixture = `
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

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getOrbweaveBinary returns the path to the orbweave binary, building it once if needed.
func getOrbweaveBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "orbweave-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		orbweavePath := filepath.Join(tempDir, "orbweave")
		buildCmd := exec.Command("go", "build", "-o", orbweavePath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build orbweave: %v", err))
		}

		sharedOrbweavePath = orbweavePath
	})

	return sharedOrbweavePath
}

// writeChartFixture writes the shared chart to a temp file and returns its path.
func writeChartFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	if err := os.WriteFile(path, []byte(chartFixture), 0o644); err != nil {
		t.Fatalf("failed to write chart fixture: %v", err)
	}
	return path
}
