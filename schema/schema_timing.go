package schema

import "time"

// TimingWindow is one dated activation found by the transit engine.
type TimingWindow struct {
	Kind         WindowKind       `json:"kind"`
	Date         time.Time        `json:"date"`
	Strength     float64          `json:"strength"`
	DurationDays float64          `json:"duration_days"`
	Aspects      []DetectedAspect `json:"aspects,omitempty"` // aspect windows
	Bodies       []Body           `json:"bodies,omitempty"`  // angle/concentration windows
	Detail       string           `json:"detail,omitempty"`  // short human-readable tag
}

// PeriodSummary aggregates the windows found over a whole date range.
type PeriodSummary struct {
	Category        EventCategory  `json:"category"`
	Start           time.Time      `json:"start"`
	End             time.Time      `json:"end"`
	WindowCount     int            `json:"window_count"`
	MeanStrength    float64        `json:"mean_strength"`
	DominantAspects []AspectType   `json:"dominant_aspects"`
	Peaks           []TimingWindow `json:"peaks"`
	Confidence      float64        `json:"confidence"`
	Warnings        []string       `json:"warnings,omitempty"`
}

// TimingForecast is the full output of one timing request: every window
// found, date by date, plus the range-level summary.
type TimingForecast struct {
	Windows []TimingWindow `json:"windows"`
	Summary PeriodSummary  `json:"summary"`
}

// ProjectedPositions maps bodies to longitudes produced by one projection
// method at one elapsed-time offset. It is derived from a natal chart and
// owns no identity of its own.
type ProjectedPositions struct {
	Method    ProgressionMethod `json:"method"`
	Positions map[Body]float64  `json:"positions"`
}
