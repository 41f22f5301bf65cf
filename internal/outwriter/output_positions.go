package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WritePositionResults outputs computed positions, dispatching based on the
// output format configured.
func WritePositionResults(positions []schema.BodyPosition, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, positions)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, positionCSVHeader, func(cw *csv.Writer) error {
				return writeCSVResultsForPositions(cw, positions, fmtFloat)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for positions; use aspects or timing")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePositionTable(positions, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writePositionTable generates and writes the human-readable table.
func writePositionTable(positions []schema.BodyPosition, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, headerWithEmoji("🌞", "Computed positions", cfg)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Body", "Position", "Longitude", "Speed", "Motion"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range positions {
		data = append(data, []string{
			schema.DisplayName(p.Name),
			schema.FormatLongitude(p.Longitude, cfg.Precision),
			fmtFloat(p.Longitude) + "°",
			fmtFloat(p.Speed) + "°/d",
			motionLabel(p.Speed),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d bodies\n", len(positions)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// motionLabel renders the direction of motion implied by the speed.
func motionLabel(speed float64) string {
	if speed < 0 {
		return "retrograde"
	}
	return "direct"
}

// positionCSVHeader is the CSV column layout for position exports.
var positionCSVHeader = []string{
	"body",
	"longitude",
	"degree_in_sign",
	"sign",
	"speed",
	"motion",
}

// writeCSVResultsForPositions writes computed positions in CSV format.
func writeCSVResultsForPositions(w *csv.Writer, positions []schema.BodyPosition, fmtFloat func(float64) string) error {
	for _, p := range positions {
		rec := []string{
			string(p.Name),
			fmtFloat(p.Longitude),
			fmtFloat(schema.DegreeInSign(p.Longitude)),
			string(p.Sign),
			fmtFloat(p.Speed),
			motionLabel(p.Speed),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
