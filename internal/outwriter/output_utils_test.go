package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbweave/orbweave/internal/contract"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"answer": 42})
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 42, decoded["answer"])
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "2"})
	})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"a", "b"}, records[0])
	assert.Equal(t, []string{"1", "2"}, records[1])
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	assert.Equal(t, "3.14", fmtFloat(3.14159))
	assert.Equal(t, "%d", intFmt)

	fmtFloat, _ = createFormatters(0)
	assert.Equal(t, "3", fmtFloat(3.14159))
}

func TestStrengthLabel(t *testing.T) {
	plain := &contract.Config{UseColors: false}
	assert.Equal(t, contract.ExactValue, strengthLabel(0.95, plain))
	assert.Equal(t, contract.WeakValue, strengthLabel(0.1, plain))
}

func TestHeaderWithEmoji(t *testing.T) {
	with := &contract.Config{UseEmojis: true}
	without := &contract.Config{UseEmojis: false}
	assert.Equal(t, "🔮 Forecast", headerWithEmoji("🔮", "Forecast", with))
	assert.Equal(t, "Forecast", headerWithEmoji("🔮", "Forecast", without))
}

func TestTruncateDetail(t *testing.T) {
	assert.Equal(t, "short", truncateDetail("short", 20))
	assert.Equal(t, "a ver...", truncateDetail("a very long detail string", 8))
	// Tiny widths leave the text untouched to avoid slicing errors.
	assert.Equal(t, "abcdef", truncateDetail("abcdef", 3))
}

func TestGetMaxTableDetailWidth(t *testing.T) {
	// Width override is authoritative.
	assert.Equal(t, 45, GetMaxTableDetailWidth(&contract.Config{Width: 100}))
	assert.Equal(t, 60, GetMaxTableDetailWidth(&contract.Config{Width: 500}))
	assert.Equal(t, 12, GetMaxTableDetailWidth(&contract.Config{Width: 40}))
}
