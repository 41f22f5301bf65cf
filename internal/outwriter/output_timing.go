package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteForecastResults outputs a timing forecast, dispatching based on the
// output format configured. Table output shows the merged window view plus
// the period summary; structured formats carry every per-date window.
func WriteForecastResults(forecast *schema.TimingForecast, merged []schema.TimingWindow, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, forecast)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, windowCSVHeader, func(cw *csv.Writer) error {
				return writeCSVResultsForWindows(cw, forecast.Windows, fmtFloat)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeForecastParquet(forecast, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeForecastTable(forecast, merged, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeForecastTable generates and writes the human-readable forecast.
func writeForecastTable(forecast *schema.TimingForecast, merged []schema.TimingWindow, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	summary := forecast.Summary

	if _, err := fmt.Fprintln(writer, headerWithEmoji("🔮", "Timing forecast", cfg)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Category: %s | Range: %s to %s\n",
		summary.Category,
		summary.Start.Format(time.DateOnly),
		summary.End.Format(time.DateOnly)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Date", "Kind", "Strength", "Label", "Days", "Detail"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	detailWidth := GetMaxTableDetailWidth(cfg)
	var data [][]string
	for i, w := range merged {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			w.Date.Format(time.DateOnly),
			string(w.Kind),
			fmtFloat(w.Strength),
			strengthLabel(w.Strength, cfg),
			fmtFloat(w.DurationDays),
			truncateDetail(windowDetail(&w), detailWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d merged windows (%d raw). Mean strength: %s. Confidence: %s\n",
		len(merged), summary.WindowCount, fmtFloat(summary.MeanStrength), fmtFloat(summary.Confidence)); err != nil {
		return err
	}
	if len(summary.DominantAspects) > 0 {
		names := make([]string, len(summary.DominantAspects))
		for i, t := range summary.DominantAspects {
			names[i] = string(t)
		}
		if _, err := fmt.Fprintf(writer, "Dominant aspects: %s\n", strings.Join(names, ", ")); err != nil {
			return err
		}
	}
	for _, warning := range summary.Warnings {
		if _, err := fmt.Fprintf(writer, "Warning: %s\n", warning); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// windowDetail renders the most informative short text for a window.
func windowDetail(w *schema.TimingWindow) string {
	if w.Detail != "" {
		return w.Detail
	}
	if len(w.Bodies) > 0 {
		return schema.FormatBodies(w.Bodies)
	}
	return "-"
}

// windowCSVHeader is the CSV column layout for window exports.
var windowCSVHeader = []string{
	"rank",
	"date",
	"kind",
	"strength",
	"label",
	"duration_days",
	"aspect_count",
	"bodies",
	"detail",
}

// writeCSVResultsForWindows writes timing windows in CSV format.
func writeCSVResultsForWindows(w *csv.Writer, windows []schema.TimingWindow, fmtFloat func(float64) string) error {
	for i, win := range windows {
		bodies := make([]string, len(win.Bodies))
		for j, b := range win.Bodies {
			bodies[j] = string(b)
		}
		rec := []string{
			strconv.Itoa(i + 1),
			win.Date.Format(time.DateOnly),
			string(win.Kind),
			fmtFloat(win.Strength),
			contract.GetPlainLabel(win.Strength),
			fmtFloat(win.DurationDays),
			strconv.Itoa(len(win.Aspects)),
			strings.Join(bodies, "|"),
			win.Detail,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
