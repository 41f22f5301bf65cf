package schema

// Configuration is a multi-body geometric pattern found in one snapshot.
// Configurations are recomputed fresh per analysis call and never persisted.
type Configuration struct {
	Kind         PatternKind `json:"kind"`
	Participants []Body      `json:"participants"` // sorted for stable identity
	Element      Element     `json:"element,omitempty"`
	Sign         ZodiacSign  `json:"sign,omitempty"`
	Apex         Body        `json:"apex,omitempty"` // T-square only
	Strength     float64     `json:"strength"`
	Count        int         `json:"count,omitempty"` // stellium only
}
