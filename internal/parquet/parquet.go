// Package parquet provides data structures and functions for exporting
// orbweave results to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/orbweave/orbweave/schema"
	"github.com/parquet-go/parquet-go"
)

// AspectRecord represents a single detected aspect in a flat, columnar
// layout suitable for analytical queries.
type AspectRecord struct {
	// BodyA is the lexically-first body of the pair
	BodyA string `parquet:"body_a,snappy"`

	// BodyB is the lexically-second body of the pair
	BodyB string `parquet:"body_b,snappy"`

	// AspectType names the matched angular relationship
	AspectType string `parquet:"aspect_type,snappy"`

	// Angle is the rule's exact angle in degrees
	Angle float64 `parquet:"angle,snappy"`

	// Separation is the measured minimal separation in degrees
	Separation float64 `parquet:"separation,snappy"`

	// OrbUsed is the deviation from the exact angle in degrees
	OrbUsed float64 `parquet:"orb_used,snappy"`

	// Strength is the normalized closeness score in [0,1]
	Strength float64 `parquet:"strength,snappy"`

	// Exact marks a separation within rounding of the exact angle
	Exact bool `parquet:"exact,snappy"`

	// Applying marks a contact still tightening toward exactness
	Applying bool `parquet:"applying,snappy"`
}

// TimingWindowRecord represents a single timing window in a flat, columnar
// layout. Aspect lists are carried as a count plus a joined pair summary.
type TimingWindowRecord struct {
	// Kind is the window's origin: aspect, angle_activation or concentration
	Kind string `parquet:"kind,snappy"`

	// Date is the window's calendar date (stored as TIMESTAMP with nanosecond precision)
	Date time.Time `parquet:"date,snappy"`

	// Strength is the normalized window strength in [0,1]
	Strength float64 `parquet:"strength,snappy"`

	// DurationDays is the estimated span of influence in days
	DurationDays float64 `parquet:"duration_days,snappy"`

	// AspectCount is the number of contributing aspect contacts
	AspectCount int32 `parquet:"aspect_count,snappy"`

	// Bodies is the pipe-joined list of involved bodies (nullable)
	Bodies *string `parquet:"bodies,optional,snappy"`

	// Detail is the window's short human-readable tag (nullable)
	Detail *string `parquet:"detail,optional,snappy"`
}

// AspectRecordsFrom flattens detected aspects into parquet records.
func AspectRecordsFrom(aspects []schema.DetectedAspect) []AspectRecord {
	records := make([]AspectRecord, len(aspects))
	for i, a := range aspects {
		records[i] = AspectRecord{
			BodyA:      string(a.BodyA),
			BodyB:      string(a.BodyB),
			AspectType: string(a.Type),
			Angle:      a.Angle,
			Separation: a.Separation,
			OrbUsed:    a.OrbUsed,
			Strength:   a.Strength,
			Exact:      a.Exact,
			Applying:   a.Applying,
		}
	}
	return records
}

// TimingWindowRecordsFrom flattens timing windows into parquet records.
func TimingWindowRecordsFrom(windows []schema.TimingWindow) []TimingWindowRecord {
	records := make([]TimingWindowRecord, len(windows))
	for i, w := range windows {
		rec := TimingWindowRecord{
			Kind:         string(w.Kind),
			Date:         w.Date,
			Strength:     w.Strength,
			DurationDays: w.DurationDays,
			AspectCount:  int32(len(w.Aspects)),
		}
		if len(w.Bodies) > 0 {
			names := make([]string, len(w.Bodies))
			for j, b := range w.Bodies {
				names[j] = string(b)
			}
			joined := strings.Join(names, "|")
			rec.Bodies = &joined
		}
		if w.Detail != "" {
			detail := w.Detail
			rec.Detail = &detail
		}
		records[i] = rec
	}
	return records
}

// WriteAspectsParquet writes a slice of AspectRecord structs to a Parquet file.
func WriteAspectsParquet(data []AspectRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the AspectRecord struct tags
	writer := parquet.NewGenericWriter[AspectRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteTimingWindowsParquet writes a slice of TimingWindowRecord structs to a Parquet file.
func WriteTimingWindowsParquet(data []TimingWindowRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the TimingWindowRecord struct tags
	writer := parquet.NewGenericWriter[TimingWindowRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
