package timing

import (
	"sort"
	"time"

	"github.com/orbweave/orbweave/schema"
)

// daysToExactCap bounds how far from exactness still earns precision credit.
const daysToExactCap = 30.0

// dominantAspectCount is how many leading aspect types the summary reports.
const dominantAspectCount = 3

// durationDays maps a window's strength to an estimated span of influence.
// Stronger contacts hold together longer before the orb decays.
func durationDays(strength float64) float64 {
	switch {
	case strength >= 0.8:
		return 14
	case strength >= 0.6:
		return 10
	case strength >= 0.4:
		return 7
	case strength >= 0.2:
		return 4
	default:
		return 2
	}
}

// confidence scores a forecast from how much evidence it rests on: the
// number of windows, their mean strength, and how close the aspect contacts
// sit to exactness.
func confidence(windows []schema.TimingWindow) float64 {
	if len(windows) == 0 {
		return 0
	}

	count := float64(len(windows))
	if count > 5 {
		count = 5
	}

	var strengthSum float64
	var precisionSum float64
	var precisionN int
	for _, w := range windows {
		strengthSum += w.Strength
		for _, a := range w.Aspects {
			precisionSum += precision(a)
			precisionN++
		}
	}
	meanStrength := strengthSum / float64(len(windows))

	meanPrecision := 0.0
	if precisionN > 0 {
		meanPrecision = precisionSum / float64(precisionN)
	}

	return 0.4*(count/5.0) + 0.4*meanStrength + 0.2*meanPrecision
}

// precision converts one aspect's residual orb into a closeness score.
// The residual is divided by the faster body's mean motion to estimate days
// until the contact perfects.
func precision(a schema.DetectedAspect) float64 {
	faster := schema.MeanDailyMotions[a.BodyA]
	if m := schema.MeanDailyMotions[a.BodyB]; m > faster {
		faster = m
	}
	if faster <= 0 {
		return 0
	}
	days := a.OrbUsed / faster
	p := 1.0 - days/daysToExactCap
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// summarize folds the ordered window list into the range-level summary.
func (e *Engine) summarize(req Request, windows []schema.TimingWindow, warnings []string) schema.PeriodSummary {
	summary := schema.PeriodSummary{
		Category:    req.Category,
		Start:       req.From,
		End:         req.From.AddDate(0, 0, req.Days-1),
		WindowCount: len(windows),
		Warnings:    warnings,
	}
	if len(windows) == 0 {
		return summary
	}

	var sum float64
	for _, w := range windows {
		sum += w.Strength
	}
	summary.MeanStrength = sum / float64(len(windows))
	summary.DominantAspects = dominantAspects(windows)
	summary.Peaks = rankPeaks(windows, e.peaks)
	summary.Confidence = confidence(windows)
	return summary
}

// dominantAspects ranks aspect types by accumulated strength across every
// aspect window, keeping the top few. Ties break on enumeration order.
func dominantAspects(windows []schema.TimingWindow) []schema.AspectType {
	totals := make(map[schema.AspectType]float64)
	for _, w := range windows {
		for _, a := range w.Aspects {
			totals[a.Type] += a.Strength
		}
	}
	if len(totals) == 0 {
		return nil
	}

	types := make([]schema.AspectType, 0, len(totals))
	for t := range totals {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if totals[types[i]] != totals[types[j]] {
			return totals[types[i]] > totals[types[j]]
		}
		return schema.AspectOrder(types[i]) < schema.AspectOrder(types[j])
	})

	if len(types) > dominantAspectCount {
		types = types[:dominantAspectCount]
	}
	return types
}

// rankPeaks returns the strongest windows, at most limit of them. Ordering
// is strength descending, then date ascending, then kind, so repeated runs
// over the same input rank identically.
func rankPeaks(windows []schema.TimingWindow, limit int) []schema.TimingWindow {
	peaks := make([]schema.TimingWindow, len(windows))
	copy(peaks, windows)

	sort.Slice(peaks, func(i, j int) bool {
		if peaks[i].Strength != peaks[j].Strength {
			return peaks[i].Strength > peaks[j].Strength
		}
		if !peaks[i].Date.Equal(peaks[j].Date) {
			return peaks[i].Date.Before(peaks[j].Date)
		}
		return peaks[i].Kind < peaks[j].Kind
	})

	if len(peaks) > limit {
		peaks = peaks[:limit]
	}
	return peaks
}

// MergeAdjacent collapses same-kind windows on consecutive days into the
// single strongest representative, widening its duration to cover the run.
// Reporting uses this to keep long slow-transit stretches readable.
func MergeAdjacent(windows []schema.TimingWindow) []schema.TimingWindow {
	if len(windows) == 0 {
		return nil
	}

	grouped := make(map[schema.WindowKind][]schema.TimingWindow)
	for _, w := range windows {
		grouped[w.Kind] = append(grouped[w.Kind], w)
	}

	var out []schema.TimingWindow
	for _, kind := range []schema.WindowKind{schema.AspectWindow, schema.AngleWindow, schema.ConcentrationWindow} {
		run := grouped[kind]
		if len(run) == 0 {
			continue
		}
		sort.Slice(run, func(i, j int) bool { return run[i].Date.Before(run[j].Date) })

		current := run[0]
		last := current.Date
		runStart := current.Date
		for _, w := range run[1:] {
			if w.Date.Sub(last) <= 24*time.Hour {
				last = w.Date
				if w.Strength > current.Strength {
					current = w
				}
				if days := last.Sub(runStart).Hours()/24.0 + 1; days > current.DurationDays {
					current.DurationDays = days
				}
				continue
			}
			out = append(out, current)
			current = w
			last = w.Date
			runStart = w.Date
		}
		out = append(out, current)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}
