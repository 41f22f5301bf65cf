package schema

// Default orbs and intensity weights for the classical aspect set. Majors
// get wide orbs; minors are tight and only consulted when opted in.
var defaultRules = []AspectRule{
	{Type: Conjunction, Angle: 0, Orb: 8, Weight: 1.00},
	{Type: SemiSextile, Angle: 30, Orb: 2, Weight: 0.30},
	{Type: SemiSquare, Angle: 45, Orb: 2, Weight: 0.35},
	{Type: Sextile, Angle: 60, Orb: 4, Weight: 0.60},
	{Type: Square, Angle: 90, Orb: 6, Weight: 0.85},
	{Type: Trine, Angle: 120, Orb: 6, Weight: 0.80},
	{Type: Sesquiquadrate, Angle: 135, Orb: 2, Weight: 0.35},
	{Type: Quincunx, Angle: 150, Orb: 3, Weight: 0.45},
	{Type: Opposition, Angle: 180, Orb: 8, Weight: 0.90},
}

// majorAspects is the default working set when minors are not requested.
var majorAspects = map[AspectType]struct{}{
	Conjunction: {},
	Sextile:     {},
	Square:      {},
	Trine:       {},
	Opposition:  {},
}

// DefaultAspectRules returns a fresh copy of the default rule table.
// Callers receive their own slice and may apply per-type orb overrides
// without affecting other callers.
func DefaultAspectRules(includeMinor bool) []AspectRule {
	rules := make([]AspectRule, 0, len(defaultRules))
	for _, r := range defaultRules {
		if !includeMinor {
			if _, ok := majorAspects[r.Type]; !ok {
				continue
			}
		}
		rules = append(rules, r)
	}
	return rules
}

// RuleForType returns the default rule for one aspect type.
func RuleForType(t AspectType) (AspectRule, bool) {
	for _, r := range defaultRules {
		if r.Type == t {
			return r, true
		}
	}
	return AspectRule{}, false
}

// TriggerRule restricts a timing query to the bodies and aspect types
// relevant to one event category. This is configuration data consumed by
// the transit engine, not something the engine computes.
type TriggerRule struct {
	Bodies  []Body       `json:"bodies" yaml:"bodies"`
	Aspects []AspectType `json:"aspects" yaml:"aspects"`
	// TransitBodies are the real-time movers cross-compared against the
	// projected set. Slow outer bodies dominate here: their stations mark
	// long-lived periods.
	TransitBodies []Body `json:"transit_bodies" yaml:"transit_bodies"`
}

// DefaultTriggerRules maps each event category to its trigger configuration.
var DefaultTriggerRules = map[EventCategory]TriggerRule{
	CareerCategory: {
		Bodies:        []Body{Sun, Mercury, Mars},
		TransitBodies: []Body{Jupiter, Saturn, Uranus, Pluto},
		Aspects:       []AspectType{Conjunction, Square, Trine, Opposition},
	},
	RelationshipCategory: {
		Bodies:        []Body{Moon, Venus, Mars},
		TransitBodies: []Body{Venus, Mars, Jupiter, Saturn, Neptune},
		Aspects:       []AspectType{Conjunction, Sextile, Square, Trine, Opposition},
	},
	FinanceCategory: {
		Bodies:        []Body{Sun, Venus, Jupiter},
		TransitBodies: []Body{Venus, Jupiter, Saturn, Uranus},
		Aspects:       []AspectType{Conjunction, Sextile, Trine, Square},
	},
	HealthCategory: {
		Bodies:        []Body{Sun, Moon, Mars},
		TransitBodies: []Body{Mars, Saturn, Neptune},
		Aspects:       []AspectType{Conjunction, Square, Opposition, Quincunx},
	},
	GeneralCategory: {
		Bodies:        KeyBodies,
		TransitBodies: []Body{Mars, Jupiter, Saturn, Uranus, Neptune, Pluto},
		Aspects:       []AspectType{Conjunction, Sextile, Square, Trine, Opposition},
	},
}

// TriggerRuleFor returns the trigger rule for a category, falling back to
// the general rule when the category is unknown.
func TriggerRuleFor(category EventCategory) TriggerRule {
	if r, ok := DefaultTriggerRules[category]; ok {
		return r
	}
	return DefaultTriggerRules[GeneralCategory]
}
