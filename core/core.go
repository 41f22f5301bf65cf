// Package core has core logic for chart analysis, pattern detection and
// transit timing.
package core

import (
	"context"
	"time"

	"github.com/orbweave/orbweave/core/astro"
	"github.com/orbweave/orbweave/core/timing"
	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/internal/outwriter"
	"github.com/orbweave/orbweave/schema"
)

// ExecutorFunc defines the function signature for executing different analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// GetAspectResults detects and ranks aspects within one chart. It is shared
// by the CLI executor and the MCP tool handlers.
func GetAspectResults(_ context.Context, cfg *contract.Config) ([]schema.DetectedAspect, error) {
	chart, err := contract.LoadChart(cfg.ChartFile)
	if err != nil {
		return nil, err
	}

	aspects, err := astro.FindAllAspects(chart.Bodies, cfg.BuildRules())
	if err != nil {
		return nil, err
	}
	return rankAspects(aspects, cfg.ResultLimit), nil
}

// GetSynastryResults detects and ranks cross-chart aspects between two charts.
func GetSynastryResults(_ context.Context, cfg *contract.Config) ([]schema.DetectedAspect, error) {
	chartA, err := contract.LoadChart(cfg.ChartFile)
	if err != nil {
		return nil, err
	}
	chartB, err := contract.LoadChart(cfg.ChartFileB)
	if err != nil {
		return nil, err
	}

	aspects, err := astro.AspectsBetween(chartA.Bodies, chartB.Bodies, cfg.BuildRules())
	if err != nil {
		return nil, err
	}
	return rankAspects(aspects, cfg.ResultLimit), nil
}

// GetPatternResults detects and ranks multi-body configurations in one chart.
func GetPatternResults(_ context.Context, cfg *contract.Config) ([]schema.Configuration, error) {
	chart, err := contract.LoadChart(cfg.ChartFile)
	if err != nil {
		return nil, err
	}

	aspects, err := astro.FindAllAspects(chart.Bodies, cfg.BuildRules())
	if err != nil {
		return nil, err
	}

	configs := astro.DetectConfigurations(chart.Bodies, aspects)
	return rankConfigurations(configs, cfg.ResultLimit), nil
}

// GetPositionResults computes every supported body's position at the
// configured date.
func GetPositionResults(_ context.Context, cfg *contract.Config) ([]schema.BodyPosition, error) {
	source := positionSource()
	positions := make([]schema.BodyPosition, 0, len(schema.AllBodies))
	for _, body := range schema.AllBodies {
		pos, err := source.PositionAt(body, cfg.Date)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

// GetForecastResults runs the transit timing engine over the configured
// range. It returns the raw forecast plus the merged window view the table
// renderer shows.
func GetForecastResults(_ context.Context, cfg *contract.Config) (*schema.TimingForecast, []schema.TimingWindow, error) {
	chart, err := contract.LoadChart(cfg.ChartFile)
	if err != nil {
		return nil, nil, err
	}

	engine := timing.NewEngine(positionSource(), timing.Options{
		Rules:    cfg.BuildRules(),
		Workers:  cfg.Workers,
		Fallback: cfg.Fallback,
		Peaks:    cfg.ResultLimit,
	})

	forecast, err := engine.Predict(timing.Request{
		Chart:    chart,
		From:     cfg.From,
		Days:     cfg.Lookahead,
		Category: cfg.Category,
	})
	if err != nil {
		return nil, nil, err
	}
	return forecast, timing.MergeAdjacent(forecast.Windows), nil
}

// ExecuteAspects detects aspects within one chart and prints results.
// It serves as the main entry point for the 'aspects' mode.
func ExecuteAspects(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	ranked, err := GetAspectResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteAspects(ranked, cfg, time.Since(start))
}

// ExecuteSynastry detects cross-chart aspects between two charts and prints
// results. It serves as the main entry point for the 'synastry' mode.
func ExecuteSynastry(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	ranked, err := GetSynastryResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteAspects(ranked, cfg, time.Since(start))
}

// ExecutePatterns detects multi-body configurations in one chart and prints
// results. It serves as the main entry point for the 'patterns' mode.
func ExecutePatterns(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	ranked, err := GetPatternResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WritePatterns(ranked, cfg, time.Since(start))
}

// ExecutePositions computes every supported body's position at the
// configured date and prints results. It serves as the main entry point for
// the 'positions' mode.
func ExecutePositions(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	positions, err := GetPositionResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WritePositions(positions, cfg, time.Since(start))
}

// ExecuteTiming runs the transit timing engine over the configured range
// and prints the forecast. It serves as the main entry point for the
// 'timing' mode.
func ExecuteTiming(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	forecast, merged, err := GetForecastResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteForecast(forecast, merged, cfg, time.Since(start))
}
