package astro

import (
	"time"

	"github.com/orbweave/orbweave/schema"
)

// Provider exposes the periodic-term tables through method form so callers
// can depend on a position-source interface instead of this package.
type Provider struct{}

// NewProvider returns the table-backed position source.
func NewProvider() *Provider {
	return &Provider{}
}

// PositionAt computes one body's longitude, speed and sign at an instant.
func (*Provider) PositionAt(body schema.Body, at time.Time) (schema.BodyPosition, error) {
	return PositionAt(body, at)
}

// MeanDailyMotion returns the body's mean daily motion in degrees.
func (*Provider) MeanDailyMotion(body schema.Body) (float64, error) {
	return MeanDailyMotion(body)
}
