// Package timing has the transit engine that projects a chart across a date
// range and aggregates dated activation windows.
package timing

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/orbweave/orbweave/core/astro"
	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/schema"
)

// daysPerYear converts elapsed calendar time into progression years.
const daysPerYear = 365.25

// Engine cross-compares progressed and transiting positions over a date
// range. It holds only immutable configuration, so one engine may serve
// concurrent requests.
type Engine struct {
	source   contract.EphemerisSource
	rules    []schema.AspectRule
	triggers map[schema.EventCategory]schema.TriggerRule
	workers  int
	fallback schema.FallbackPolicy
	peaks    int
}

// Options tunes one engine instance.
type Options struct {
	Rules    []schema.AspectRule                         // full rule table; trigger filtering narrows it per request
	Triggers map[schema.EventCategory]schema.TriggerRule // per-category trigger table; nil uses the defaults
	Workers  int                                         // worker pool size for the per-date loop
	Fallback schema.FallbackPolicy                       // what a per-date body failure does
	Peaks    int                                         // how many peak windows the summary keeps
}

// NewEngine builds an engine over the given position source.
func NewEngine(source contract.EphemerisSource, opts Options) *Engine {
	rules := opts.Rules
	if len(rules) == 0 {
		rules = schema.DefaultAspectRules(false)
	}
	triggers := opts.Triggers
	if triggers == nil {
		triggers = schema.DefaultTriggerRules
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = contract.DefaultWorkers
	}
	fallback := opts.Fallback
	if fallback == "" {
		fallback = schema.SkipFallback
	}
	peaks := opts.Peaks
	if peaks <= 0 {
		peaks = contract.DefaultResultLimit
	}
	return &Engine{source: source, rules: rules, triggers: triggers, workers: workers, fallback: fallback, peaks: peaks}
}

// triggerFor resolves a category against the engine's trigger table. A
// category the table does not cover falls back to its general rule, then to
// the built-in defaults.
func (e *Engine) triggerFor(category schema.EventCategory) schema.TriggerRule {
	if r, ok := e.triggers[category]; ok {
		return r
	}
	if r, ok := e.triggers[schema.GeneralCategory]; ok {
		return r
	}
	return schema.TriggerRuleFor(category)
}

// Request describes one timing query.
type Request struct {
	Chart    *schema.Chart
	From     time.Time
	Days     int
	Category schema.EventCategory
}

// dateResult carries one date's findings back from the worker pool.
type dateResult struct {
	date     time.Time
	windows  []schema.TimingWindow
	warnings []string
	err      error
}

// Predict runs the full timing analysis: project, cross-compare, aggregate.
// An invalid chart or reference date aborts the whole request; a per-date
// body failure inside the loop follows the fallback policy instead.
func (e *Engine) Predict(req Request) (*schema.TimingForecast, error) {
	if err := e.validate(req); err != nil {
		return nil, err
	}

	trigger := e.triggerFor(req.Category)
	rules := filterRules(e.rules, trigger.Aspects)
	natal := keySubset(req.Chart, trigger.Bodies)

	// Fan the independent per-date computations out over the worker pool.
	dateCh := make(chan time.Time, req.Days)
	resultCh := make(chan dateResult, req.Days)
	var wg sync.WaitGroup

	for range e.workers {
		wg.Go(func() {
			for date := range dateCh {
				resultCh <- e.analyzeDate(req.Chart, natal, trigger, rules, date)
			}
		})
	}

	for i := range req.Days {
		dateCh <- req.From.AddDate(0, 0, i)
	}
	close(dateCh)

	wg.Wait()
	close(resultCh)

	// Reduction step: collect, order by date, then summarize. Errors are
	// surfaced only after the sort so the earliest failing date wins
	// regardless of worker scheduling.
	results := make([]dateResult, 0, req.Days)
	for r := range resultCh {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].date.Before(results[j].date) })
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
	}

	var windows []schema.TimingWindow
	var warnings []string
	for _, r := range results {
		windows = append(windows, r.windows...)
		warnings = append(warnings, r.warnings...)
	}

	summary := e.summarize(req, windows, dedupeWarnings(warnings))
	return &schema.TimingForecast{Windows: windows, Summary: summary}, nil
}

// validate rejects a request before any computation starts.
func (e *Engine) validate(req Request) error {
	if req.Chart == nil {
		return &schema.ValidationError{Field: "chart", Reason: "required"}
	}
	if req.Chart.ReferenceDate.IsZero() {
		return &schema.ValidationError{Field: "reference_date", Reason: "required"}
	}
	if req.From.IsZero() {
		return &schema.ValidationError{Field: "from", Reason: "required"}
	}
	if math.IsNaN(req.Chart.Baseline) || math.IsInf(req.Chart.Baseline, 0) {
		return &schema.ValidationError{Field: "baseline", Reason: "must be finite"}
	}
	if req.Chart.Baseline < 0 || req.Chart.Baseline >= 360 {
		return &schema.ValidationError{Field: "baseline", Reason: "must be in [0,360)"}
	}
	if req.Days <= 0 || req.Days > contract.MaxLookaheadDays {
		return &schema.ValidationError{Field: "days", Reason: "must be between 1 and the lookahead cap"}
	}
	for _, b := range req.Chart.Bodies {
		if err := astro.ValidatePosition(b); err != nil {
			return err
		}
	}
	return nil
}

// filterRules narrows the rule table to the trigger's aspect types.
func filterRules(rules []schema.AspectRule, types []schema.AspectType) []schema.AspectRule {
	allowed := make(map[schema.AspectType]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}
	var out []schema.AspectRule
	for _, r := range rules {
		if _, ok := allowed[r.Type]; ok {
			out = append(out, r)
		}
	}
	return out
}

// keySubset restricts a chart to the trigger's key bodies. Progressions are
// only run for this subset; the rest of the chart is still available for
// concentration checks through the original chart.
func keySubset(chart *schema.Chart, keys []schema.Body) *schema.Chart {
	sub := &schema.Chart{
		ReferenceDate: chart.ReferenceDate,
		Baseline:      chart.Baseline,
	}
	for _, key := range keys {
		if pos, ok := chart.Position(key); ok {
			sub.Bodies = append(sub.Bodies, pos)
		}
	}
	return sub
}

// dedupeWarnings sorts and uniques warning messages for stable summaries.
func dedupeWarnings(warnings []string) []string {
	if len(warnings) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(warnings))
	var out []string
	for _, w := range warnings {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
