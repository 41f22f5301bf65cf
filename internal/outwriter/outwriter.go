// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAspects prints detected aspects using the configured output format.
func (ow *OutWriter) WriteAspects(aspects []schema.DetectedAspect, cfg *contract.Config, duration time.Duration) error {
	return WriteAspectResults(aspects, cfg, duration)
}

// WritePatterns prints detected configurations using the configured output format.
func (ow *OutWriter) WritePatterns(configs []schema.Configuration, cfg *contract.Config, duration time.Duration) error {
	return WritePatternResults(configs, cfg, duration)
}

// WritePositions prints computed positions using the configured output format.
func (ow *OutWriter) WritePositions(positions []schema.BodyPosition, cfg *contract.Config, duration time.Duration) error {
	return WritePositionResults(positions, cfg, duration)
}

// WriteForecast prints a timing forecast using the configured output format.
// The merged slice is the consecutive-day compaction used for table output;
// structured formats always carry the full per-date window list.
func (ow *OutWriter) WriteForecast(forecast *schema.TimingForecast, merged []schema.TimingWindow, cfg *contract.Config, duration time.Duration) error {
	return WriteForecastResults(forecast, merged, cfg, duration)
}
