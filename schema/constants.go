package schema

// Custom string types for type safety.
type (
	// Body identifies a celestial body.
	Body string

	// AspectType represents a named angular relationship between two bodies.
	AspectType string

	// PatternKind represents a multi-body geometric configuration.
	PatternKind string

	// WindowKind represents the origin of a timing window.
	WindowKind string

	// EventCategory represents the life area a timing query targets.
	EventCategory string

	// ProgressionMethod represents a forward-projection technique.
	ProgressionMethod string

	// ZodiacSign represents one 30-degree segment of the ecliptic.
	ZodiacSign string

	// Element represents the classical element of a zodiac sign.
	Element string

	// OutputMode represents the format of the output.
	OutputMode string

	// CacheBackend represents the database backend for position caching.
	CacheBackend string

	// FallbackPolicy controls how batch operations treat a single failing body.
	FallbackPolicy string
)

// All aspect types supported, in canonical enumeration order (ascending
// exact angle). This order is the final tie-break when sorting detections.
const (
	Conjunction    AspectType = "conjunction"    // 0
	SemiSextile    AspectType = "semisextile"    // 30
	SemiSquare     AspectType = "semisquare"     // 45
	Sextile        AspectType = "sextile"        // 60
	Square         AspectType = "square"         // 90
	Trine          AspectType = "trine"          // 120
	Sesquiquadrate AspectType = "sesquiquadrate" // 135
	Quincunx       AspectType = "quincunx"       // 150
	Opposition     AspectType = "opposition"     // 180
)

// AllAspectTypes lists every supported aspect type in enumeration order.
var AllAspectTypes = []AspectType{
	Conjunction, SemiSextile, SemiSquare, Sextile, Square,
	Trine, Sesquiquadrate, Quincunx, Opposition,
}

// All pattern kinds supported.
const (
	GrandTrine PatternKind = "grand_trine"
	TSquare    PatternKind = "t_square"
	Stellium   PatternKind = "stellium"
)

// All timing window kinds supported.
const (
	AspectWindow        WindowKind = "aspect"
	AngleWindow         WindowKind = "angle_activation"
	ConcentrationWindow WindowKind = "concentration"
)

// All event categories supported.
const (
	CareerCategory       EventCategory = "career"
	RelationshipCategory EventCategory = "relationship"
	FinanceCategory      EventCategory = "finance"
	HealthCategory       EventCategory = "health"
	GeneralCategory      EventCategory = "general" // default
)

// All progression methods supported.
const (
	SecondaryProgression ProgressionMethod = "secondary"
	SolarArcProgression  ProgressionMethod = "solar_arc"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     CacheBackend = "sqlite" // default
	MySQLBackend      CacheBackend = "mysql"
	PostgreSQLBackend CacheBackend = "postgresql"
	NoneBackend       CacheBackend = "none"
)

// All fallback policies supported. SkipFallback drops the failing body from
// the one affected item and records a warning; PropagateFallback aborts the
// whole request. There is no silent zero-degree default.
const (
	SkipFallback      FallbackPolicy = "skip" // default
	PropagateFallback FallbackPolicy = "propagate"
)

// AllEventCategories returns a list of all supported event categories.
var AllEventCategories = []EventCategory{
	CareerCategory, RelationshipCategory, FinanceCategory, HealthCategory, GeneralCategory,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidEventCategories lists all valid event categories.
var ValidEventCategories = map[EventCategory]struct{}{
	CareerCategory:       {},
	RelationshipCategory: {},
	FinanceCategory:      {},
	HealthCategory:       {},
	GeneralCategory:      {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[CacheBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidFallbackPolicies lists all valid fallback policies.
var ValidFallbackPolicies = map[FallbackPolicy]struct{}{
	SkipFallback:      {},
	PropagateFallback: {},
}

// AspectOrder returns the enumeration index of an aspect type, used as the
// final sorting tie-break. Unknown types sort last.
func AspectOrder(t AspectType) int {
	for i, a := range AllAspectTypes {
		if a == t {
			return i
		}
	}
	return len(AllAspectTypes)
}
