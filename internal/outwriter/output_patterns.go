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

// WritePatternResults outputs detected configurations, dispatching based on
// the output format configured.
func WritePatternResults(configs []schema.Configuration, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForPatterns(w, configs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, patternCSVHeader, func(cw *csv.Writer) error {
				return writeCSVResultsForPatterns(cw, configs, fmtFloat)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for patterns; use aspects or timing")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePatternTable(configs, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writePatternTable generates and writes the human-readable table.
func writePatternTable(configs []schema.Configuration, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, headerWithEmoji("🔺", "Detected configurations", cfg)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Kind", "Participants", "Quality", "Apex", "Strength", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, c := range configs {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			string(c.Kind),
			schema.FormatBodies(c.Participants),
			patternQuality(&c),
			patternApex(&c),
			fmtFloat(c.Strength),
			strengthLabel(c.Strength, cfg),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d configurations\n", len(configs)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// patternQuality renders the element or sign shared by the configuration.
func patternQuality(c *schema.Configuration) string {
	if c.Kind == schema.Stellium {
		return schema.DisplayName(c.Sign)
	}
	if c.Element == "" {
		return "mixed"
	}
	return schema.DisplayName(c.Element)
}

// patternApex renders the apex body for patterns that have one.
func patternApex(c *schema.Configuration) string {
	if c.Apex == "" {
		return "-"
	}
	return schema.DisplayName(c.Apex)
}

// patternCSVHeader is the CSV column layout for configuration exports.
var patternCSVHeader = []string{
	"rank",
	"kind",
	"participants",
	"element",
	"sign",
	"apex",
	"count",
	"strength",
	"label",
}

// writeCSVResultsForPatterns writes detected configurations in CSV format.
func writeCSVResultsForPatterns(w *csv.Writer, configs []schema.Configuration, fmtFloat func(float64) string) error {
	for i, c := range configs {
		rec := []string{
			strconv.Itoa(i + 1),
			string(c.Kind),
			schema.FormatBodies(c.Participants),
			string(c.Element),
			string(c.Sign),
			string(c.Apex),
			strconv.Itoa(c.Count),
			fmtFloat(c.Strength),
			contract.GetPlainLabel(c.Strength),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForPatterns writes detected configurations in JSON format.
func writeJSONResultsForPatterns(w io.Writer, configs []schema.Configuration) error {
	type JSONPatternResult struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.Configuration
	}

	output := make([]JSONPatternResult, len(configs))
	for i, c := range configs {
		output[i] = JSONPatternResult{
			Rank:          i + 1,
			Label:         contract.GetPlainLabel(c.Strength),
			Configuration: c,
		}
	}

	return writeJSON(w, output)
}
