package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultAspectRules ensures the default table is well formed and
// that minor aspects only appear when requested.
func TestDefaultAspectRules(t *testing.T) {
	majors := DefaultAspectRules(false)
	assert.Len(t, majors, 5)
	for _, r := range majors {
		assert.Greater(t, r.Orb, 0.0)
		assert.Greater(t, r.Weight, 0.0)
		assert.LessOrEqual(t, r.Weight, 1.0)
	}

	all := DefaultAspectRules(true)
	assert.Len(t, all, len(AllAspectTypes))

	// Returned slices are copies; mutating one must not leak into another.
	all[0].Orb = 99
	again := DefaultAspectRules(true)
	assert.NotEqual(t, 99.0, again[0].Orb)
}

// TestAspectOrder verifies enumeration order used for sorting tie-breaks.
func TestAspectOrder(t *testing.T) {
	assert.Equal(t, 0, AspectOrder(Conjunction))
	assert.Less(t, AspectOrder(Square), AspectOrder(Trine))
	assert.Equal(t, len(AllAspectTypes), AspectOrder(AspectType("bogus")))
}

// TestTriggerRuleFor checks the category fallback behavior.
func TestTriggerRuleFor(t *testing.T) {
	career := TriggerRuleFor(CareerCategory)
	assert.Contains(t, career.TransitBodies, Saturn)

	unknown := TriggerRuleFor(EventCategory("bogus"))
	assert.Equal(t, DefaultTriggerRules[GeneralCategory].Aspects, unknown.Aspects)
}

// TestChartBodyMap checks chart lookups.
func TestChartBodyMap(t *testing.T) {
	c := &Chart{Bodies: []BodyPosition{
		{Name: Sun, Longitude: 10},
		{Name: Moon, Longitude: 200},
	}}

	m := c.BodyMap()
	require.Len(t, m, 2)
	assert.Equal(t, 200.0, m[Moon].Longitude)

	pos, ok := c.Position(Sun)
	require.True(t, ok)
	assert.Equal(t, 10.0, pos.Longitude)

	_, ok = c.Position(Pluto)
	assert.False(t, ok)
}

// TestErrorTaxonomy ensures messages are descriptive yet data-free.
func TestErrorTaxonomy(t *testing.T) {
	verr := &ValidationError{Field: "longitude", Reason: "must be finite"}
	assert.Contains(t, verr.Error(), "longitude")
	assert.Contains(t, verr.Error(), "must be finite")

	cerr := &ConfigurationError{Field: "orb", Reason: "must be positive"}
	assert.Contains(t, cerr.Error(), "orb")

	calc := &CalculationError{Op: "ephemeris", Reason: "non-finite sum"}
	assert.Contains(t, calc.Error(), "ephemeris")
}
