package astro

import (
	"math"
	"time"

	"github.com/orbweave/orbweave/schema"
)

// Epoch is the fixed reference instant (J2000.0) all time offsets count from.
var Epoch = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// daysPerCentury converts day offsets into Julian centuries.
const daysPerCentury = 36525.0

// speedStepDays is the half-step used for numeric speed differentiation.
const speedStepDays = 0.5

// periodicTerm is one truncated series term: amp * T^pow * cos(phase + freq*T),
// with phase and freq in degrees and degrees per century.
type periodicTerm struct {
	amp   float64
	phase float64
	freq  float64
	pow   int
}

// bodyTable holds the polynomial and periodic terms for one body. The
// polynomial part is the mean longitude; the periodic terms fold in the
// equation of center and the leading synodic wobble. This is a deliberate
// truncation: good enough for aspect work, not an almanac.
type bodyTable struct {
	l0    float64 // mean longitude at epoch, degrees
	rate  float64 // mean motion, degrees per century
	terms []periodicTerm
}

var bodyTables = map[schema.Body]bodyTable{
	schema.Sun: {
		l0: 280.460, rate: 36000.770,
		terms: []periodicTerm{
			{amp: 1.915, phase: 267.528, freq: 35999.050},
			{amp: 0.020, phase: 175.056, freq: 71998.100},
		},
	},
	schema.Moon: {
		l0: 218.316, rate: 481267.881,
		terms: []periodicTerm{
			{amp: 6.289, phase: 44.963, freq: 477198.868},
			{amp: 1.274, phase: 10.74, freq: 413335.35},
			{amp: 0.658, phase: 235.7, freq: 890534.22},
			{amp: 0.214, phase: 269.93, freq: 954397.74},
		},
	},
	schema.Mercury: {
		l0: 252.251, rate: 149472.675,
		terms: []periodicTerm{
			{amp: 23.440, phase: 84.50, freq: 113472.020},
			{amp: 2.980, phase: 259.1, freq: 226944.040},
		},
	},
	schema.Venus: {
		l0: 181.980, rate: 58517.816,
		terms: []periodicTerm{
			{amp: 0.776, phase: 140.8, freq: 58519.213},
			{amp: 3.100, phase: 63.2, freq: 22518.443},
		},
	},
	schema.Mars: {
		l0: 355.433, rate: 19140.299,
		terms: []periodicTerm{
			{amp: 10.691, phase: 109.5, freq: 19139.859},
			{amp: 0.623, phase: 219.0, freq: 38279.718},
			{amp: 4.800, phase: 296.1, freq: 16860.472},
		},
	},
	schema.Jupiter: {
		l0: 34.351, rate: 3034.906,
		terms: []periodicTerm{
			{amp: 5.555, phase: 290.6, freq: 3034.696},
			{amp: 0.168, phase: 221.2, freq: 6069.392},
			{amp: 11.100, phase: 44.3, freq: 32966.065},
		},
	},
	schema.Saturn: {
		l0: 50.077, rate: 1222.114,
		terms: []periodicTerm{
			{amp: 6.406, phase: 225.9, freq: 1221.555},
			{amp: 0.319, phase: 91.8, freq: 2443.110},
			{amp: 6.000, phase: 176.4, freq: 34777.560},
		},
	},
	schema.Uranus: {
		l0: 314.055, rate: 428.467,
		terms: []periodicTerm{
			{amp: 5.481, phase: 52.4, freq: 428.379},
			{amp: 2.600, phase: 304.9, freq: 35571.304},
		},
	},
	schema.Neptune: {
		l0: 304.349, rate: 218.486,
		terms: []periodicTerm{
			{amp: 1.019, phase: 176.0, freq: 218.462},
			{amp: 1.900, phase: 112.2, freq: 35781.284},
		},
	},
	schema.Pluto: {
		l0: 238.958, rate: 145.181,
		terms: []periodicTerm{
			{amp: 14.882, phase: 24.5, freq: 145.109},
			{amp: 1.700, phase: 201.8, freq: 35708.589},
		},
	},
}

// CenturiesSince converts an absolute time into the Julian-century offset
// from the reference epoch.
func CenturiesSince(t time.Time) float64 {
	return t.Sub(Epoch).Hours() / 24.0 / daysPerCentury
}

// Longitude computes a body's ecliptic longitude in [0,360) at the given
// offset in Julian centuries from the epoch. The result is a pure function
// of its inputs: identical calls always give identical output.
func Longitude(body schema.Body, t float64) (float64, error) {
	tbl, ok := bodyTables[body]
	if !ok {
		return 0, &schema.ValidationError{Field: "body", Reason: "unsupported body name"}
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, &schema.ValidationError{Field: "time", Reason: "time offset must be finite"}
	}

	sum := tbl.l0 + tbl.rate*t
	for _, term := range tbl.terms {
		scale := 1.0
		for range term.pow {
			scale *= t
		}
		sum += term.amp * scale * math.Cos(deg2rad(term.phase+term.freq*t))
	}

	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, &schema.CalculationError{Op: "ephemeris", Reason: "periodic sum is not finite"}
	}
	return Normalize(sum), nil
}

// MeanDailyMotion returns the long-term mean motion of a body in degrees
// per day, used by the progression projector.
func MeanDailyMotion(body schema.Body) (float64, error) {
	motion, ok := schema.MeanDailyMotions[body]
	if !ok {
		return 0, &schema.ValidationError{Field: "body", Reason: "unsupported body name"}
	}
	return motion, nil
}

// PositionAt computes the full position of a body at an absolute time,
// including the instantaneous speed from a central difference over one day.
func PositionAt(body schema.Body, at time.Time) (schema.BodyPosition, error) {
	t := CenturiesSince(at)
	lon, err := Longitude(body, t)
	if err != nil {
		return schema.BodyPosition{}, err
	}

	step := speedStepDays / daysPerCentury
	before, err := Longitude(body, t-step)
	if err != nil {
		return schema.BodyPosition{}, err
	}
	after, err := Longitude(body, t+step)
	if err != nil {
		return schema.BodyPosition{}, err
	}

	// Signed minimal arc from before to after, so a wrap at 0 Aries does
	// not read as a 360-degree jump.
	arc := Separation(before, after)
	if arc > 180.0 {
		arc -= 360.0
	}

	return schema.BodyPosition{
		Name:      body,
		Longitude: lon,
		Speed:     arc / (2 * speedStepDays),
		Sign:      schema.SignForLongitude(lon),
	}, nil
}

// AllPositionsAt computes positions for every classical body at one instant.
func AllPositionsAt(at time.Time) ([]schema.BodyPosition, error) {
	positions := make([]schema.BodyPosition, 0, len(schema.AllBodies))
	for _, body := range schema.AllBodies {
		pos, err := PositionAt(body, at)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
