package contract

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/orbweave/orbweave/schema"
	"gopkg.in/yaml.v3"
)

// validate is shared across loads; the validator is safe for concurrent use.
var validate = validator.New()

// LoadChart reads and validates a chart file. The reference date is
// mandatory because every progression and timing computation is anchored to
// it. Missing signs are derived from longitudes so downstream pattern code
// never has to special-case them.
func LoadChart(path string) (*schema.Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read chart file: %w", err)
	}

	var chart schema.Chart
	if err := yaml.Unmarshal(data, &chart); err != nil {
		return nil, fmt.Errorf("cannot parse chart file: %w", err)
	}

	if err := validate.Struct(&chart); err != nil {
		return nil, fmt.Errorf("chart file failed validation: %w", err)
	}
	if chart.ReferenceDate.IsZero() {
		return nil, &schema.ValidationError{Field: "reference_date", Reason: "required"}
	}

	seen := make(map[schema.Body]bool, len(chart.Bodies))
	for i := range chart.Bodies {
		b := &chart.Bodies[i]
		if seen[b.Name] {
			return nil, &schema.ValidationError{Field: "bodies", Reason: "duplicate body name"}
		}
		seen[b.Name] = true
		if b.Sign == "" {
			b.Sign = schema.SignForLongitude(b.Longitude)
		}
	}
	return &chart, nil
}

// ruleFile is the YAML shape of a caller-supplied rule table.
type ruleFile struct {
	Rules []schema.AspectRule `yaml:"rules" validate:"required,min=1,dive"`
}

// LoadRuleFile reads a custom aspect rule table. Omitted orbs and weights
// pick up the struct defaults before validation runs.
func LoadRuleFile(path string) ([]schema.AspectRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read rule file: %w", err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("cannot parse rule file: %w", err)
	}

	for i := range file.Rules {
		if err := defaults.Set(&file.Rules[i]); err != nil {
			return nil, fmt.Errorf("cannot apply rule defaults: %w", err)
		}
	}
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("rule file failed validation: %w", err)
	}

	for _, r := range file.Rules {
		if _, known := schema.RuleForType(r.Type); !known {
			return nil, &schema.ConfigurationError{Field: "type", Reason: "unknown aspect type"}
		}
	}
	return file.Rules, nil
}
