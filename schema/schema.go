// Package schema has configs, models and constant tables for all parts of orbweave.
package schema

import "time"

// BodyPosition represents a single celestial body on the ecliptic circle.
// Longitude is always normalized into [0,360). Speed is the signed daily
// motion in degrees per day; it is optional for plain detection but required
// for applying/separating judgements.
type BodyPosition struct {
	Name      Body       `json:"name" yaml:"name" validate:"required"`
	Longitude float64    `json:"longitude" yaml:"longitude" validate:"gte=0,lt=360"`
	Speed     float64    `json:"speed" yaml:"speed"`
	Sign      ZodiacSign `json:"sign,omitempty" yaml:"sign,omitempty"`
	House     int        `json:"house,omitempty" yaml:"house,omitempty" validate:"gte=0,lte=12"`
}

// Chart is a snapshot of body positions anchored to a reference date.
// The baseline longitude is the chart's primary angle (typically the
// ascendant) used for angle-activation checks; zero means "start of Aries".
type Chart struct {
	ReferenceDate time.Time      `json:"reference_date" yaml:"reference_date"`
	Baseline      float64        `json:"baseline" yaml:"baseline" validate:"gte=0,lt=360"`
	Bodies        []BodyPosition `json:"bodies" yaml:"bodies" validate:"required,min=1,dive"`
}

// BodyMap returns the chart's positions keyed by body name.
func (c *Chart) BodyMap() map[Body]BodyPosition {
	m := make(map[Body]BodyPosition, len(c.Bodies))
	for _, b := range c.Bodies {
		m[b.Name] = b
	}
	return m
}

// Position returns the chart position for the given body, if present.
func (c *Chart) Position(name Body) (BodyPosition, bool) {
	for _, b := range c.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return BodyPosition{}, false
}
