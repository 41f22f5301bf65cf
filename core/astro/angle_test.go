package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalize tests range reduction and idempotency.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "zero", input: 0, expected: 0},
		{name: "in range", input: 123.45, expected: 123.45},
		{name: "exactly 360", input: 360, expected: 0},
		{name: "above 360", input: 370, expected: 10},
		{name: "multiple wraps", input: 1085, expected: 5},
		{name: "negative", input: -10, expected: 350},
		{name: "large negative", input: -730, expected: 350},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			assert.InDelta(t, tt.expected, result, 1e-9)
			assert.Equal(t, result, Normalize(result)) // idempotent
			assert.GreaterOrEqual(t, result, 0.0)
			assert.Less(t, result, 360.0)
		})
	}
}

// TestDistance tests symmetric minimal separation.
func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{name: "same point", a: 42, b: 42, expected: 0},
		{name: "quarter", a: 0, b: 90, expected: 90},
		{name: "opposition", a: 0, b: 180, expected: 180},
		{name: "wraps short way", a: 350, b: 10, expected: 20},
		{name: "never above 180", a: 0, b: 270, expected: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.expected, Distance(tt.b, tt.a), 1e-9) // symmetric
		})
	}
}

// TestSeparation tests the directional delta.
func TestSeparation(t *testing.T) {
	assert.InDelta(t, 90.0, Separation(0, 90), 1e-9)
	assert.InDelta(t, 270.0, Separation(90, 0), 1e-9)
	assert.InDelta(t, 20.0, Separation(350, 10), 1e-9)
	assert.InDelta(t, 0.0, Separation(123, 123), 1e-9)
}

// TestWithinOrb tests orb containment, including the inclusive boundary.
func TestWithinOrb(t *testing.T) {
	assert.True(t, WithinOrb(92, 90, 6))
	assert.True(t, WithinOrb(96, 90, 6)) // boundary is inclusive
	assert.False(t, WithinOrb(97, 90, 6))
	assert.True(t, WithinOrb(268, 270, 6))
}

// FuzzNormalize fuzzes range reduction over arbitrary finite inputs.
func FuzzNormalize(f *testing.F) {
	seeds := []float64{0, 359.999, 360, -0.001, 720, -1085.5, 1e9}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, deg float64) {
		result := Normalize(deg)
		if isFiniteInput(deg) {
			if result < 0 || result >= 360 {
				t.Errorf("Normalize(%v) = %v, outside [0,360)", deg, result)
			}
			if again := Normalize(result); again != result {
				t.Errorf("Normalize not idempotent for %v: %v != %v", deg, again, result)
			}
		}
	})
}

// FuzzDistance fuzzes minimal separation over arbitrary finite pairs.
func FuzzDistance(f *testing.F) {
	f.Add(0.0, 90.0)
	f.Add(350.0, 10.0)
	f.Add(-720.0, 720.0)

	f.Fuzz(func(t *testing.T, a, b float64) {
		if !isFiniteInput(a) || !isFiniteInput(b) {
			t.Skip()
		}
		d := Distance(a, b)
		if d < 0 || d > 180 {
			t.Errorf("Distance(%v, %v) = %v, outside [0,180]", a, b, d)
		}
		if Distance(b, a) != d {
			t.Errorf("Distance(%v, %v) not symmetric", a, b)
		}
	})
}

func isFiniteInput(v float64) bool {
	return v == v && v < 1e300 && v > -1e300
}
