package schema

// AspectRule describes one angular relationship to search for. Rules are
// immutable configuration: the detector never mutates them at runtime.
type AspectRule struct {
	Type   AspectType `json:"type" yaml:"type" validate:"required"`
	Angle  float64    `json:"angle" yaml:"angle" validate:"gte=0,lte=180"`
	Orb    float64    `json:"orb" yaml:"orb" default:"3" validate:"gt=0"`
	Weight float64    `json:"weight" yaml:"weight" default:"0.5" validate:"gt=0,lte=1"`
}

// DetectedAspect is one matched angular relationship between two bodies.
// The body pair is unordered; BodyA always sorts lexically before BodyB so
// a pair is never reported twice for the same rule type.
type DetectedAspect struct {
	BodyA      Body       `json:"body_a"`
	BodyB      Body       `json:"body_b"`
	Type       AspectType `json:"type"`
	Angle      float64    `json:"angle"`      // the rule's exact angle
	Separation float64    `json:"separation"` // measured minimal separation [0,180]
	OrbUsed    float64    `json:"orb_used"`   // deviation from exact, always <= rule orb
	Strength   float64    `json:"strength"`   // 1.0 at exact, 0.0 at the orb boundary
	Exact      bool       `json:"exact"`
	Applying   bool       `json:"applying"`
}

// PairKey returns the canonical "a-b" identifier for the aspect's body pair.
func (d *DetectedAspect) PairKey() string {
	return string(d.BodyA) + "-" + string(d.BodyB)
}
