package schema

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// DisplayName formats a body or sign identifier for table output,
// e.g. "sun" -> "Sun".
func DisplayName[T ~string](v T) string {
	s := string(v)
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// DegreeInSign returns the degrees a longitude has travelled into its sign.
// The longitude must already be normalized into [0,360).
func DegreeInSign(lon float64) float64 {
	return math.Mod(lon, 30.0)
}

// FormatLongitude renders a longitude as "14.3° Taurus" with the requested
// decimal precision.
func FormatLongitude(lon float64, precision int) string {
	return fmt.Sprintf("%.*f° %s", precision, DegreeInSign(lon), DisplayName(SignForLongitude(lon)))
}

// FormatBodies joins body names for display, e.g. "Sun, Moon, Mars".
func FormatBodies(bodies []Body) string {
	names := make([]string, len(bodies))
	for i, b := range bodies {
		names[i] = DisplayName(b)
	}
	return strings.Join(names, ", ")
}

// FormatAspectPair renders "Sun square Mars" for a detected aspect.
func FormatAspectPair(d *DetectedAspect) string {
	return fmt.Sprintf("%s %s %s", DisplayName(d.BodyA), d.Type, DisplayName(d.BodyB))
}
