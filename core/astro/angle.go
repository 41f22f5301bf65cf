// Package astro has the angular geometry, ephemeris, aspect and pattern
// logic at the heart of orbweave.
package astro

import "math"

// Normalize reduces any real degree value into [0,360). It is total over
// all finite inputs and idempotent.
func Normalize(deg float64) float64 {
	n := math.Mod(deg, 360.0)
	if n < 0 {
		n += 360.0
	}
	// A tiny negative remainder can round up to exactly 360.
	if n == 360.0 {
		n = 0
	}
	return n
}

// Distance returns the symmetric minimal separation between two longitudes,
// always in [0,180].
func Distance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360.0)
	if d > 180.0 {
		d = 360.0 - d
	}
	return d
}

// Separation returns the directional delta from one longitude to another,
// in [0,360).
func Separation(from, to float64) float64 {
	return Normalize(to - from)
}

// WithinOrb reports whether a measured separation falls within orb degrees
// of the target angle. Folding through Distance makes a single comparison
// cover both theta and 360-theta, so no dual-angle check is needed.
func WithinOrb(measured, target, orb float64) bool {
	return Distance(measured, target) <= orb
}
