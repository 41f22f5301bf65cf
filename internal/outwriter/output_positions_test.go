package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbweave/orbweave/schema"
)

func samplePositions() []schema.BodyPosition {
	return []schema.BodyPosition{
		{Name: schema.Sun, Longitude: 44.3, Speed: 0.99, Sign: schema.Taurus},
		{Name: schema.Mercury, Longitude: 201.0, Speed: -0.5, Sign: schema.Libra},
	}
}

func TestWritePositionTable(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)

	err := writePositionTable(samplePositions(), tableConfig(), fmtFloat, time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "Taurus")
	assert.Contains(t, out, "retrograde")
	assert.Contains(t, out, "direct")
	assert.Contains(t, out, "Showing 2 bodies")
}

func TestWriteCSVResultsForPositions(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)

	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVResultsForPositions(w, samplePositions(), fmtFloat))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"sun", "44.3", "14.3", "taurus", "1.0", "direct"}, records[0])
	assert.Equal(t, "retrograde", records[1][5])
}

func TestMotionLabel(t *testing.T) {
	assert.Equal(t, "direct", motionLabel(0.5))
	assert.Equal(t, "direct", motionLabel(0))
	assert.Equal(t, "retrograde", motionLabel(-0.1))
}
