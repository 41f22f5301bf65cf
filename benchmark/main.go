// Package main provides a performance benchmarking tool for the Orbweave CLI.
// It measures execution times across different chart files and command types,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - orbweave binary installed and available in PATH
// - Chart files present in the specified base directory
//
// Usage: go run benchmark/main.go [chart-base-dir]
//
//	chart-base-dir: Directory containing chart YAML files
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Chart       string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	ChartBase   string
	Timeout     time.Duration
	Workers     int
	NoCacheRuns int
	CacheRuns   int
	TestCharts  []string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [chart-base-dir]\n", os.Args[0])
		os.Exit(1)
	}
	chartBase := os.Args[1]

	config := BenchmarkConfig{
		ChartBase:   chartBase,
		Timeout:     5 * time.Minute,
		Workers:     8,
		NoCacheRuns: 3,
		CacheRuns:   4,
		TestCharts:  []string{"minimal.yaml", "standard.yaml", "full.yaml"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear the cache using orbweave cache clear
	fmt.Printf("Clearing cache...\n")
	clearCmd := exec.Command("orbweave", "cache", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Cache cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the orbweave binary and chart files exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if orbweave is available
	if _, err := exec.LookPath("orbweave"); err != nil {
		return fmt.Errorf("orbweave binary not found in PATH")
	}

	// Check if chart files exist
	for _, chart := range config.TestCharts {
		chartPath := filepath.Join(config.ChartBase, chart)
		if _, err := os.Stat(chartPath); os.IsNotExist(err) {
			return fmt.Errorf("chart %s not found at %s", chart, chartPath)
		}
	}

	return nil
}

// runBenchmarks executes all benchmark tests across configured chart files
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d charts, %v timeout, %d workers, no-cache: %d runs, cache: %d runs\n",
		len(config.TestCharts), config.Timeout, config.Workers, config.NoCacheRuns, config.CacheRuns)

	for _, chart := range config.TestCharts {
		fmt.Printf("Benchmarking %s\n", chart)

		chartPath := filepath.Join(config.ChartBase, chart)

		// Aspect analysis
		result := runBenchmarkSuite(config, chart, chartPath, "aspects", "aspect analysis", "")
		results = append(results, result)

		// Pattern detection
		result = runBenchmarkSuite(config, chart, chartPath, "patterns", "pattern detection", "")
		results = append(results, result)

		// Timing forecast over a full year, where the cache earns its keep
		result = runBenchmarkSuite(config, chart, chartPath, "timing", "timing forecast (365 days)", "--lookahead 365")
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, chart, chartPath, command, description, extraArgs string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, chart)

	// Helper to run a benchmark phase
	runPhase := func(cacheBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, chartPath, command, extraArgs, cacheBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Chart:       chart,
		Command:     command,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes an orbweave command multiple times with the specified cache backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, chartPath, command, extraArgs, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	// Prepare command arguments
	args := []string{command, chartPath, "--cache-backend", cacheBackend, "--workers", fmt.Sprint(config.Workers)}
	if extraArgs != "" {
		args = append(args, strings.Fields(extraArgs)...)
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("orbweave", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "completed in") &&
		strings.Contains(outputStr, "workers")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/orbweave_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"chart", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Chart, result.Command, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "aspects", "Aspect Analysis:")
	printCommandSummary(results, "patterns", "Pattern Detection:")
	printCommandSummary(results, "timing", "Timing Forecast:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-14s: No-cache: %s, Cold: %s, Warm: %s\n", result.Chart, result.NoCacheTime, result.ColdTime, result.WarmTime)
		}
	}
}
