package astro

import (
	"math"
	"testing"
	"time"

	"github.com/orbweave/orbweave/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLongitudeRange checks every supported body stays in [0,360) across a
// spread of time offsets.
func TestLongitudeRange(t *testing.T) {
	offsets := []float64{-1.0, -0.25, 0, 0.1, 0.5, 1.0, 2.5}

	for _, body := range schema.AllBodies {
		t.Run(string(body), func(t *testing.T) {
			for _, offset := range offsets {
				lon, err := Longitude(body, offset)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, lon, 0.0)
				assert.Less(t, lon, 360.0)
				assert.False(t, math.IsNaN(lon))
			}
		})
	}
}

// TestLongitudeDeterminism ensures identical inputs give identical outputs.
func TestLongitudeDeterminism(t *testing.T) {
	for _, body := range schema.AllBodies {
		first, err := Longitude(body, 0.2345)
		require.NoError(t, err)
		second, err := Longitude(body, 0.2345)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

// TestLongitudeUnsupportedBody checks the validation path. No silent
// fallback position is produced for unknown names.
func TestLongitudeUnsupportedBody(t *testing.T) {
	_, err := Longitude(schema.Body("ceres"), 0.1)
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "body", verr.Field)
}

// TestLongitudeNonFiniteOffset checks time offset validation.
func TestLongitudeNonFiniteOffset(t *testing.T) {
	var verr *schema.ValidationError
	_, err := Longitude(schema.Sun, math.NaN())
	require.ErrorAs(t, err, &verr)
	_, err = Longitude(schema.Sun, math.Inf(1))
	require.ErrorAs(t, err, &verr)
}

// TestSunRateRoughlyOneDegreePerDay sanity-checks the dominant polynomial
// term: the Sun should advance close to its mean motion over a day.
func TestSunRateRoughlyOneDegreePerDay(t *testing.T) {
	day := 1.0 / daysPerCentury
	l1, err := Longitude(schema.Sun, 0.1)
	require.NoError(t, err)
	l2, err := Longitude(schema.Sun, 0.1+day)
	require.NoError(t, err)

	advance := Separation(l1, l2)
	assert.InDelta(t, 0.9856, advance, 0.1)
}

// TestCenturiesSince checks epoch conversion.
func TestCenturiesSince(t *testing.T) {
	assert.Equal(t, 0.0, CenturiesSince(Epoch))

	oneCentury := Epoch.AddDate(0, 0, 36525)
	assert.InDelta(t, 1.0, CenturiesSince(oneCentury), 1e-9)
}

// TestPositionAt checks the derived speed and sign fields.
func TestPositionAt(t *testing.T) {
	at := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	pos, err := PositionAt(schema.Sun, at)
	require.NoError(t, err)
	assert.Equal(t, schema.Sun, pos.Name)
	assert.Equal(t, schema.SignForLongitude(pos.Longitude), pos.Sign)
	// The Sun never retrogrades and never strays far from its mean motion.
	assert.Greater(t, pos.Speed, 0.8)
	assert.Less(t, pos.Speed, 1.1)
}

// TestAllPositionsAt checks the classical set comes back complete.
func TestAllPositionsAt(t *testing.T) {
	positions, err := AllPositionsAt(time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, positions, len(schema.AllBodies))

	names := make(map[schema.Body]bool)
	for _, p := range positions {
		names[p.Name] = true
		assert.GreaterOrEqual(t, p.Longitude, 0.0)
		assert.Less(t, p.Longitude, 360.0)
	}
	assert.Len(t, names, len(schema.AllBodies))
}

// TestMeanDailyMotion checks the lookup and its validation path.
func TestMeanDailyMotion(t *testing.T) {
	motion, err := MeanDailyMotion(schema.Moon)
	require.NoError(t, err)
	assert.InDelta(t, 13.1764, motion, 1e-6)

	_, err = MeanDailyMotion(schema.Body("vesta"))
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
}
