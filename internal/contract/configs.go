package contract

import (
	"fmt"
	"maps"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/orbweave/orbweave/schema"
)

// Default values for configuration.
const (
	DefaultLookaheadDays = 90
	MaxLookaheadDays     = 3650
	DefaultResultLimit   = 10
	MaxResultLimit       = 1000
	DefaultPrecision     = 1
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// dateOnlyFormat accepts plain calendar dates on the command line.
const dateOnlyFormat = "2006-01-02"

// Config holds the runtime configuration for an analysis.
// This struct is the "final, validated" config.
type Config struct {
	ChartFile  string
	ChartFileB string // second chart for synastry
	Date       time.Time
	From       time.Time
	Lookahead  int
	Category   schema.EventCategory

	IncludeMinor bool
	OrbOverrides map[schema.AspectType]float64
	CustomRules  []schema.AspectRule // replaces the default table when set

	ResultLimit int
	Workers     int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	Fallback schema.FallbackPolicy

	CacheBackend   schema.CacheBackend
	CacheDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// Clone creates a deep copy of the Config so per-request overrides never
// leak back into the shared base configuration.
func (c *Config) Clone() *Config {
	clone := *c
	if c.OrbOverrides != nil {
		clone.OrbOverrides = make(map[schema.AspectType]float64, len(c.OrbOverrides))
		maps.Copy(clone.OrbOverrides, c.OrbOverrides)
	}
	clone.CustomRules = slices.Clone(c.CustomRules)
	return &clone
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	DateStr      string `mapstructure:"date"`
	FromStr      string `mapstructure:"from"`
	Lookahead    int    `mapstructure:"lookahead"`
	Category     string `mapstructure:"category"`
	Minor        bool   `mapstructure:"minor"`
	OrbStr       string `mapstructure:"orb"`
	RulesFile    string `mapstructure:"rules"`
	ResultLimit  int    `mapstructure:"limit"`
	Workers      int    `mapstructure:"workers"`
	Precision    int    `mapstructure:"precision"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Width        int    `mapstructure:"width"`
	Fallback     string `mapstructure:"fallback"`
	CacheBackend string `mapstructure:"cache-backend"`
	CacheConnect string `mapstructure:"cache-db-connect"`
	Color        string `mapstructure:"color"`
}

// ProcessAndValidate performs all complex parsing and validation on the raw
// inputs and populates the final Config. It fails fast on the first invalid
// field so nothing downstream sees a half-built configuration.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, now time.Time) error {
	// --- 1. Result limit and workers ---
	if input.ResultLimit <= 0 || input.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.ResultLimit)
	}
	cfg.ResultLimit = input.ResultLimit

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 2. Precision ---
	if input.Precision < 0 || input.Precision > 6 {
		return fmt.Errorf("precision must be between 0 and 6 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 3. Output mode ---
	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output '%s'. must be text, csv, json or parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	// --- 4. Dates ---
	date, err := ParseDateInput(input.DateStr, now)
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}
	cfg.Date = date

	from, err := ParseDateInput(input.FromStr, now)
	if err != nil {
		return fmt.Errorf("invalid from date: %w", err)
	}
	cfg.From = from

	// --- 5. Lookahead window (the natural backpressure bound) ---
	if input.Lookahead <= 0 || input.Lookahead > MaxLookaheadDays {
		return fmt.Errorf("lookahead must be between 1 and %d days (received %d)", MaxLookaheadDays, input.Lookahead)
	}
	cfg.Lookahead = input.Lookahead

	// --- 6. Event category ---
	category := schema.EventCategory(strings.ToLower(input.Category))
	if _, ok := schema.ValidEventCategories[category]; !ok {
		return fmt.Errorf("invalid category '%s'. must be one of career, relationship, finance, health, general", input.Category)
	}
	cfg.Category = category

	// --- 7. Aspect rules ---
	cfg.IncludeMinor = input.Minor
	overrides, err := ParseOrbOverrides(input.OrbStr)
	if err != nil {
		return err
	}
	cfg.OrbOverrides = overrides

	if input.RulesFile != "" {
		rules, err := LoadRuleFile(input.RulesFile)
		if err != nil {
			return fmt.Errorf("invalid rules file: %w", err)
		}
		cfg.CustomRules = rules
	}

	// --- 8. Fallback policy ---
	fallback := schema.FallbackPolicy(strings.ToLower(input.Fallback))
	if _, ok := schema.ValidFallbackPolicies[fallback]; !ok {
		return fmt.Errorf("invalid fallback '%s'. must be skip or propagate", input.Fallback)
	}
	cfg.Fallback = fallback

	// --- 9. Cache backend ---
	backend := schema.CacheBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[backend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, or none", input.CacheBackend)
	}
	cfg.CacheBackend = backend
	cfg.CacheDBConnect = input.CacheConnect
	if backend != schema.SQLiteBackend && backend != schema.NoneBackend && cfg.CacheDBConnect == "" {
		return fmt.Errorf("cache backend '%s' requires a connection string", backend)
	}

	// --- 10. Display ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color flag: %w", err)
	}
	cfg.UseColors = useColors
	cfg.UseEmojis = useColors // emoji headers ride along with color output

	return nil
}

// ParseDateInput accepts RFC3339 or plain calendar dates; empty means now.
func ParseDateInput(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now.UTC(), nil
	}
	if t, err := time.Parse(DateTimeFormat, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnlyFormat, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("expected %s or %s, received %q", dateOnlyFormat, DateTimeFormat, s)
}

// ParseOrbOverrides parses per-type orb overrides from a flag value like
// "square=4,trine=5.5". Unknown types and non-positive orbs are rejected up
// front rather than surfacing later as detector configuration errors.
func ParseOrbOverrides(s string) (map[schema.AspectType]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	overrides := make(map[schema.AspectType]float64)
	for _, part := range strings.Split(s, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid orb override %q (format: 'square=4,trine=5.5')", part)
		}

		aspectType := schema.AspectType(strings.ToLower(strings.TrimSpace(kv[0])))
		if _, known := schema.RuleForType(aspectType); !known {
			return nil, fmt.Errorf("unknown aspect type %q in orb override", kv[0])
		}

		orb, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil || orb <= 0 {
			return nil, fmt.Errorf("orb for %s must be a positive number (received %q)", aspectType, kv[1])
		}
		overrides[aspectType] = orb
	}
	return overrides, nil
}

// BuildRules assembles the final rule table for this run: a custom table
// from --rules when supplied, otherwise the default table for the requested
// aspect set, with any per-type orb overrides applied on top.
func (cfg *Config) BuildRules() []schema.AspectRule {
	var rules []schema.AspectRule
	if len(cfg.CustomRules) > 0 {
		rules = slices.Clone(cfg.CustomRules)
	} else {
		rules = schema.DefaultAspectRules(cfg.IncludeMinor)
	}
	for i := range rules {
		if orb, ok := cfg.OrbOverrides[rules[i].Type]; ok {
			rules[i].Orb = orb
		}
	}
	return rules
}
