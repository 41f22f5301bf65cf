package astro

import (
	"math"
	"sort"

	"github.com/orbweave/orbweave/schema"
)

// ValidatePosition checks one body position at the public boundary.
func ValidatePosition(p schema.BodyPosition) error {
	if p.Name == "" {
		return &schema.ValidationError{Field: "name", Reason: "body name is required"}
	}
	if math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) {
		return &schema.ValidationError{Field: "longitude", Reason: "must be finite"}
	}
	if p.Longitude < 0 || p.Longitude >= 360 {
		return &schema.ValidationError{Field: "longitude", Reason: "must be in [0,360)"}
	}
	if math.IsNaN(p.Speed) || math.IsInf(p.Speed, 0) {
		return &schema.ValidationError{Field: "speed", Reason: "must be finite"}
	}
	return nil
}

// ValidateRules checks an aspect rule table at the public boundary.
func ValidateRules(rules []schema.AspectRule) error {
	for _, r := range rules {
		if _, known := schema.RuleForType(r.Type); !known {
			return &schema.ConfigurationError{Field: "type", Reason: "unknown aspect type"}
		}
		if r.Orb <= 0 {
			return &schema.ConfigurationError{Field: "orb", Reason: "must be positive"}
		}
	}
	return nil
}

// DetectAspects finds every rule the given pair matches. The measured
// separation is folded into [0,180] once, so each rule needs a single
// comparison against its exact angle.
func DetectAspects(a, b schema.BodyPosition, rules []schema.AspectRule) ([]schema.DetectedAspect, error) {
	if err := ValidatePosition(a); err != nil {
		return nil, err
	}
	if err := ValidatePosition(b); err != nil {
		return nil, err
	}
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	// Canonicalize the pair so the output never depends on argument order.
	if a.Name > b.Name {
		a, b = b, a
	}

	sep := Distance(a.Longitude, b.Longitude)
	dirSep := Separation(a.Longitude, b.Longitude)
	relSpeed := a.Speed - b.Speed

	var matches []schema.DetectedAspect
	for _, rule := range rules {
		diff := math.Abs(sep - rule.Angle)
		if diff > rule.Orb {
			continue
		}

		exact := diff == 0
		matches = append(matches, schema.DetectedAspect{
			BodyA:      a.Name,
			BodyB:      b.Name,
			Type:       rule.Type,
			Angle:      rule.Angle,
			Separation: sep,
			OrbUsed:    diff,
			Strength:   math.Max(0, (rule.Orb-diff)/rule.Orb),
			Exact:      exact,
			Applying:   isApplying(dirSep, relSpeed, exact),
		})
	}
	return matches, nil
}

// isApplying reports whether the gap between the pair is closing. An exact
// hit is always reported applying; the moment of perfection counts as the
// peak, not the decline.
func isApplying(dirSep, relSpeed float64, exact bool) bool {
	if exact {
		return true
	}
	if dirSep <= 180.0 {
		return relSpeed > 0
	}
	return relSpeed < 0
}

// FindAllAspects evaluates every unordered pair in the body set exactly once
// and returns all matches sorted by strength descending. Ties break on the
// lexical pair key, then on aspect enumeration order, so output is stable
// and byte-for-byte reproducible.
func FindAllAspects(bodies []schema.BodyPosition, rules []schema.AspectRule) ([]schema.DetectedAspect, error) {
	for _, b := range bodies {
		if err := ValidatePosition(b); err != nil {
			return nil, err
		}
	}
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	var all []schema.DetectedAspect
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			matches, err := DetectAspects(bodies[i], bodies[j], rules)
			if err != nil {
				return nil, err
			}
			all = append(all, matches...)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Strength != all[j].Strength {
			return all[i].Strength > all[j].Strength
		}
		if ki, kj := all[i].PairKey(), all[j].PairKey(); ki != kj {
			return ki < kj
		}
		return schema.AspectOrder(all[i].Type) < schema.AspectOrder(all[j].Type)
	})
	return all, nil
}

// AspectsBetween cross-detects aspects between two distinct body sets, e.g.
// a natal chart against transiting positions or another person's chart.
// Pairs are formed across the sets only, never within one set.
func AspectsBetween(setA, setB []schema.BodyPosition, rules []schema.AspectRule) ([]schema.DetectedAspect, error) {
	for _, b := range setA {
		if err := ValidatePosition(b); err != nil {
			return nil, err
		}
	}
	for _, b := range setB {
		if err := ValidatePosition(b); err != nil {
			return nil, err
		}
	}
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	var all []schema.DetectedAspect
	for _, a := range setA {
		for _, b := range setB {
			matches, err := DetectAspects(a, b, rules)
			if err != nil {
				return nil, err
			}
			all = append(all, matches...)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Strength != all[j].Strength {
			return all[i].Strength > all[j].Strength
		}
		if ki, kj := all[i].PairKey(), all[j].PairKey(); ki != kj {
			return ki < kj
		}
		return schema.AspectOrder(all[i].Type) < schema.AspectOrder(all[j].Type)
	})
	return all, nil
}
