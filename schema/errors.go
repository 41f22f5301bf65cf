package schema

import "fmt"

// The error taxonomy mirrors the three ways a computation can go wrong.
// Messages carry field names and reasons only, never chart or birth data,
// so they are always safe to log.

// ValidationError is malformed caller input: an out-of-range longitude,
// a non-finite numeric field, an unsupported body, a missing reference date.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// ConfigurationError is invalid rule data: a non-positive orb or an unknown
// aspect type requested by configuration.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Field, e.Reason)
}

// CalculationError is an internal numeric failure: a NaN or infinity
// produced mid-computation from otherwise valid inputs.
type CalculationError struct {
	Op     string
	Reason string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation failed in %s: %s", e.Op, e.Reason)
}
