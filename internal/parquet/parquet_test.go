package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbweave/orbweave/schema"
)

func TestAspectRecordStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	pqSchema := parquet.SchemaOf(new(AspectRecord))
	require.NotNil(t, pqSchema)

	expectedColumns := []string{
		"body_a",
		"body_b",
		"aspect_type",
		"angle",
		"separation",
		"orb_used",
		"strength",
		"exact",
		"applying",
	}

	for _, colName := range expectedColumns {
		col, ok := pqSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestTimingWindowRecordStructTags(t *testing.T) {
	pqSchema := parquet.SchemaOf(new(TimingWindowRecord))
	require.NotNil(t, pqSchema)

	expectedColumns := []string{
		"kind",
		"date",
		"strength",
		"duration_days",
		"aspect_count",
		"bodies",
		"detail",
	}

	for _, colName := range expectedColumns {
		col, ok := pqSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestAspectRecordsFrom(t *testing.T) {
	aspects := []schema.DetectedAspect{
		{
			BodyA: schema.Jupiter, BodyB: schema.Sun, Type: schema.Trine,
			Angle: 120, Separation: 119, OrbUsed: 1, Strength: 0.8,
			Applying: true,
		},
	}

	records := AspectRecordsFrom(aspects)
	require.Len(t, records, 1)
	assert.Equal(t, "jupiter", records[0].BodyA)
	assert.Equal(t, "trine", records[0].AspectType)
	assert.Equal(t, 0.8, records[0].Strength)
	assert.True(t, records[0].Applying)
}

func TestTimingWindowRecordsFrom(t *testing.T) {
	windows := []schema.TimingWindow{
		{
			Kind: schema.ConcentrationWindow,
			Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Strength: 0.5, DurationDays: 7,
			Bodies: []schema.Body{schema.Mars, schema.Saturn},
			Detail: "2 bodies concentrated in Taurus",
		},
		{
			Kind: schema.AspectWindow,
			Date: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			Aspects: []schema.DetectedAspect{{BodyA: schema.Sun, BodyB: schema.Venus}},
		},
	}

	records := TimingWindowRecordsFrom(windows)
	require.Len(t, records, 2)

	require.NotNil(t, records[0].Bodies)
	assert.Equal(t, "mars|saturn", *records[0].Bodies)
	require.NotNil(t, records[0].Detail)

	assert.Equal(t, int32(1), records[1].AspectCount)
	assert.Nil(t, records[1].Bodies)
	assert.Nil(t, records[1].Detail)
}

func TestWriteAspectsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "aspects.parquet")

	records := AspectRecordsFrom([]schema.DetectedAspect{
		{BodyA: schema.Moon, BodyB: schema.Sun, Type: schema.Conjunction, Strength: 1},
		{BodyA: schema.Mars, BodyB: schema.Venus, Type: schema.Square, Strength: 0.4},
	})

	require.NoError(t, WriteAspectsParquet(records, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Read the file back and verify the row content survives the round trip.
	rows, err := parquet.ReadFile[AspectRecord](outputPath)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "moon", rows[0].BodyA)
	assert.Equal(t, "square", rows[1].AspectType)
}

func TestWriteTimingWindowsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "windows.parquet")

	records := TimingWindowRecordsFrom([]schema.TimingWindow{
		{Kind: schema.AspectWindow, Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), Strength: 0.7, DurationDays: 10},
	})

	require.NoError(t, WriteTimingWindowsParquet(records, outputPath))

	rows, err := parquet.ReadFile[TimingWindowRecord](outputPath)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "aspect", rows[0].Kind)
	assert.Equal(t, 0.7, rows[0].Strength)
}
