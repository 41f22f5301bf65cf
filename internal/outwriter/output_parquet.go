package outwriter

import (
	"fmt"
	"os"

	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/internal/parquet"
	"github.com/orbweave/orbweave/schema"
)

// writeAspectParquet exports detected aspects to a Parquet file. Parquet is
// a binary format, so stdout is not an option.
func writeAspectParquet(aspects []schema.DetectedAspect, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if err := parquet.WriteAspectsParquet(parquet.AspectRecordsFrom(aspects), cfg.OutputFile); err != nil {
		return fmt.Errorf("error writing Parquet output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// writeForecastParquet exports the full per-date window list to a Parquet file.
func writeForecastParquet(forecast *schema.TimingForecast, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if err := parquet.WriteTimingWindowsParquet(parquet.TimingWindowRecordsFrom(forecast.Windows), cfg.OutputFile); err != nil {
		return fmt.Errorf("error writing Parquet output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}
