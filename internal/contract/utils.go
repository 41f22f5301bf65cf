package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Strength label constants.
const (
	ExactValue    = "Exact"    // at or near perfection
	StrongValue   = "Strong"   // tight orb
	ModerateValue = "Moderate" // mid orb
	WeakValue     = "Weak"     // near the orb boundary
)

// Color variables for console output.
var (
	ExactColor    = color.New(color.FgRed, color.Bold)     // exactColor flags the peak of an activation.
	StrongColor   = color.New(color.FgMagenta, color.Bold) // strongColor marks a tight, dominant contact.
	ModerateColor = color.New(color.FgYellow)              // moderateColor marks mid-orb contacts, not bold.
	WeakColor     = color.New(color.FgCyan)                // weakColor marks boundary contacts, informational.
)

// GetPlainLabel returns a plain text label for a strength in [0,1]. This is
// the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(strength float64) string {
	switch {
	case strength >= 0.9:
		return ExactValue
	case strength >= 0.6:
		return StrongValue
	case strength >= 0.3:
		return ModerateValue
	default:
		return WeakValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(strength float64) string {
	text := GetPlainLabel(strength)

	switch text {
	case ExactValue:
		return ExactColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for position
// cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".orbweave_cache.db"
	}
	return filepath.Join(homeDir, ".orbweave_cache.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
