package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteAspectResults outputs detected aspects, dispatching based on the
// output format configured.
func WriteAspectResults(aspects []schema.DetectedAspect, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForAspects(w, aspects)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, aspectCSVHeader, func(cw *csv.Writer) error {
				return writeCSVResultsForAspects(cw, aspects, fmtFloat)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeAspectParquet(aspects, cfg)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAspectTable(aspects, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeAspectTable generates and writes the human-readable table.
func writeAspectTable(aspects []schema.DetectedAspect, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, headerWithEmoji("🪐", "Detected aspects", cfg)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Pair", "Type", "Separation", "Orb", "Strength", "Label", "Phase"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, a := range aspects {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			schema.FormatAspectPair(&a),
			string(a.Type),
			fmtFloat(a.Separation) + "°",
			fmtFloat(a.OrbUsed) + "°",
			fmtFloat(a.Strength),
			strengthLabel(a.Strength, cfg),
			aspectPhase(&a),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	applying := 0
	for _, a := range aspects {
		if a.Applying {
			applying++
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing %d aspects (%d applying)\n", len(aspects), applying); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// aspectPhase renders the applying/separating state, marking exact hits.
func aspectPhase(a *schema.DetectedAspect) string {
	if a.Exact {
		return "exact"
	}
	if a.Applying {
		return "applying"
	}
	return "separating"
}

// aspectCSVHeader is the CSV column layout for aspect exports.
var aspectCSVHeader = []string{
	"rank",
	"body_a",
	"body_b",
	"type",
	"angle",
	"separation",
	"orb_used",
	"strength",
	"label",
	"exact",
	"applying",
}

// writeCSVResultsForAspects writes detected aspects in CSV format.
func writeCSVResultsForAspects(w *csv.Writer, aspects []schema.DetectedAspect, fmtFloat func(float64) string) error {
	for i, a := range aspects {
		rec := []string{
			strconv.Itoa(i + 1),
			string(a.BodyA),
			string(a.BodyB),
			string(a.Type),
			fmtFloat(a.Angle),
			fmtFloat(a.Separation),
			fmtFloat(a.OrbUsed),
			fmtFloat(a.Strength),
			contract.GetPlainLabel(a.Strength),
			strconv.FormatBool(a.Exact),
			strconv.FormatBool(a.Applying),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForAspects writes detected aspects in JSON format.
func writeJSONResultsForAspects(w io.Writer, aspects []schema.DetectedAspect) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONAspectResult struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.DetectedAspect
	}

	output := make([]JSONAspectResult, len(aspects))
	for i, a := range aspects {
		output[i] = JSONAspectResult{
			Rank:           i + 1,
			Label:          contract.GetPlainLabel(a.Strength),
			DetectedAspect: a,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
