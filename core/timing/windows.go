package timing

import (
	"fmt"
	"sort"
	"time"

	"github.com/orbweave/orbweave/core/astro"
	"github.com/orbweave/orbweave/schema"
)

// angleOrb is the fixed threshold for angle-activation checks, in degrees.
const angleOrb = 1.0

// concentrationMin is the pooled body count that makes a concentration.
const concentrationMin = 3

// analyzeDate computes every window for one date. Dates are independent of
// each other; this runs inside the worker pool.
func (e *Engine) analyzeDate(chart, natal *schema.Chart, trigger schema.TriggerRule, rules []schema.AspectRule, date time.Time) dateResult {
	result := dateResult{date: date}
	elapsedYears := date.Sub(chart.ReferenceDate).Hours() / 24.0 / daysPerYear

	// Projected positions for the key subset, both techniques.
	secondary, skipped, err := astro.SecondaryPositions(natal, elapsedYears)
	if err != nil {
		result.err = err
		return result
	}
	for _, body := range skipped {
		result.warnings = append(result.warnings, fmt.Sprintf("progression skipped unsupported body %q", body))
	}

	solar, err := astro.SolarArcPositions(natal, elapsedYears)
	if err != nil {
		result.err = err
		return result
	}

	secSet := projectionSet(secondary)
	solarSet := projectionSet(solar)

	// Real transiting positions for the category's movers. A single body
	// failing here follows the fallback policy instead of sinking the date.
	var transits []schema.BodyPosition
	for _, body := range trigger.TransitBodies {
		pos, err := e.source.PositionAt(body, date)
		if err != nil {
			if e.fallback == schema.PropagateFallback {
				result.err = err
				return result
			}
			result.warnings = append(result.warnings, fmt.Sprintf("transit position unavailable for %q", body))
			continue
		}
		transits = append(transits, pos)
	}

	// 1. Aspect windows: projected-to-projected and projected-to-transiting.
	var matches []schema.DetectedAspect
	for _, projected := range [][]schema.BodyPosition{secSet, solarSet} {
		within, err := astro.FindAllAspects(projected, rules)
		if err != nil {
			result.err = err
			return result
		}
		matches = append(matches, within...)

		crossed, err := astro.AspectsBetween(projected, transits, rules)
		if err != nil {
			result.err = err
			return result
		}
		matches = append(matches, crossed...)
	}
	if len(matches) > 0 {
		strength := weightedStrength(matches, rules)
		result.windows = append(result.windows, schema.TimingWindow{
			Kind:         schema.AspectWindow,
			Date:         date,
			Strength:     strength,
			DurationDays: durationDays(strength),
			Aspects:      matches,
			Detail:       schema.FormatAspectPair(&matches[0]),
		})
	}

	// 2. Angle-activation windows against the chart baseline.
	if w, ok := angleActivation(date, chart.Baseline, secSet, solarSet); ok {
		result.windows = append(result.windows, w)
	}

	// 3. Concentration windows over the pooled projected and transiting sets.
	result.windows = append(result.windows, concentrations(date, secSet, transits)...)

	return result
}

// projectionSet converts projected longitudes into positions. Progressed
// points crawl at their mean motion compressed by the day-for-a-year scale.
func projectionSet(projected schema.ProjectedPositions) []schema.BodyPosition {
	names := make([]schema.Body, 0, len(projected.Positions))
	for name := range projected.Positions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	set := make([]schema.BodyPosition, 0, len(names))
	for _, name := range names {
		lon := projected.Positions[name]
		speed := schema.MeanDailyMotions[name] / daysPerYear
		if projected.Method == schema.SolarArcProgression {
			speed = schema.MeanDailyMotions[schema.Sun] / daysPerYear
		}
		set = append(set, schema.BodyPosition{
			Name:      name,
			Longitude: lon,
			Speed:     speed,
			Sign:      schema.SignForLongitude(lon),
		})
	}
	return set
}

// weightedStrength folds per-match strengths through the rule weights, so a
// weak minor contact cannot outrank a tight major one.
func weightedStrength(matches []schema.DetectedAspect, rules []schema.AspectRule) float64 {
	weights := make(map[schema.AspectType]float64, len(rules))
	for _, r := range rules {
		weights[r.Type] = r.Weight
	}

	var sum, total float64
	for _, m := range matches {
		w := weights[m.Type]
		if w == 0 {
			w = 0.5
		}
		sum += m.Strength * w
		total += w
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// angleActivation reports projected bodies sitting within the fixed
// threshold of the canonical 0/90/180/270 offsets from the chart baseline.
func angleActivation(date time.Time, baseline float64, sets ...[]schema.BodyPosition) (schema.TimingWindow, bool) {
	var bodies []schema.Body
	var strengths []float64
	seen := make(map[schema.Body]bool)

	for _, set := range sets {
		for _, pos := range set {
			best := -1.0
			for quarter := range 4 {
				angle := astro.Normalize(baseline + float64(quarter)*90.0)
				if d := astro.Distance(pos.Longitude, angle); d <= angleOrb {
					if s := 1.0 - d/angleOrb; s > best {
						best = s
					}
				}
			}
			if best >= 0 && !seen[pos.Name] {
				seen[pos.Name] = true
				bodies = append(bodies, pos.Name)
				strengths = append(strengths, best)
			}
		}
	}

	if len(bodies) == 0 {
		return schema.TimingWindow{}, false
	}

	var sum float64
	for _, s := range strengths {
		sum += s
	}
	strength := sum / float64(len(strengths))

	return schema.TimingWindow{
		Kind:         schema.AngleWindow,
		Date:         date,
		Strength:     strength,
		DurationDays: durationDays(strength),
		Bodies:       bodies,
		Detail:       fmt.Sprintf("%d body(ies) on chart angles", len(bodies)),
	}, true
}

// concentrations groups the pooled secondary-projected and transiting
// positions by sign segment. The same body name may legitimately appear in
// both pools; the projected and transiting points are distinct.
func concentrations(date time.Time, projected, transits []schema.BodyPosition) []schema.TimingWindow {
	groups := make(map[schema.ZodiacSign][]schema.Body)
	for _, pool := range [][]schema.BodyPosition{projected, transits} {
		for _, pos := range pool {
			sign := schema.SignForLongitude(pos.Longitude)
			groups[sign] = append(groups[sign], pos.Name)
		}
	}

	signs := make([]schema.ZodiacSign, 0, len(groups))
	for sign := range groups {
		signs = append(signs, sign)
	}
	sort.Slice(signs, func(i, j int) bool { return signs[i] < signs[j] })

	var windows []schema.TimingWindow
	for _, sign := range signs {
		members := groups[sign]
		if len(members) < concentrationMin {
			continue
		}
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		strength := (float64(len(members)) - 2.0) / 3.0
		if strength > 1.0 {
			strength = 1.0
		}
		windows = append(windows, schema.TimingWindow{
			Kind:         schema.ConcentrationWindow,
			Date:         date,
			Strength:     strength,
			DurationDays: durationDays(strength),
			Bodies:       members,
			Detail:       fmt.Sprintf("%d bodies concentrated in %s", len(members), schema.DisplayName(sign)),
		})
	}
	return windows
}
