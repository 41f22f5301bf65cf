package astro

import (
	"errors"
	"math"

	"github.com/orbweave/orbweave/schema"
)

// SecondaryLongitude projects a natal longitude forward under the
// day-for-a-year correspondence: each elapsed year contributes one mean day
// of the body's own motion. At zero elapsed years the natal value comes
// back unchanged.
func SecondaryLongitude(body schema.Body, natal, elapsedYears float64) (float64, error) {
	if math.IsNaN(natal) || math.IsInf(natal, 0) {
		return 0, &schema.ValidationError{Field: "longitude", Reason: "must be finite"}
	}
	if math.IsNaN(elapsedYears) || math.IsInf(elapsedYears, 0) {
		return 0, &schema.ValidationError{Field: "elapsed_years", Reason: "must be finite"}
	}
	motion, err := MeanDailyMotion(body)
	if err != nil {
		return 0, err
	}
	return Normalize(natal + motion*elapsedYears), nil
}

// SolarArc returns the Sun's secondary-progressed displacement after the
// given elapsed years. The same scalar arc is applied to every body.
func SolarArc(elapsedYears float64) (float64, error) {
	if math.IsNaN(elapsedYears) || math.IsInf(elapsedYears, 0) {
		return 0, &schema.ValidationError{Field: "elapsed_years", Reason: "must be finite"}
	}
	motion, err := MeanDailyMotion(schema.Sun)
	if err != nil {
		return 0, err
	}
	return motion * elapsedYears, nil
}

// SecondaryPositions projects every chart body by its own mean motion.
// Each body is independent, so a failure on one (an unsupported name in the
// chart) only omits that body; the skipped names come back for the caller
// to surface as warnings.
func SecondaryPositions(chart *schema.Chart, elapsedYears float64) (schema.ProjectedPositions, []schema.Body, error) {
	projected := schema.ProjectedPositions{
		Method:    schema.SecondaryProgression,
		Positions: make(map[schema.Body]float64, len(chart.Bodies)),
	}

	var skipped []schema.Body
	for _, b := range chart.Bodies {
		lon, err := SecondaryLongitude(b.Name, b.Longitude, elapsedYears)
		if err != nil {
			var verr *schema.ValidationError
			if errors.As(err, &verr) && verr.Field == "body" {
				skipped = append(skipped, b.Name)
				continue
			}
			return schema.ProjectedPositions{}, nil, err
		}
		projected.Positions[b.Name] = lon
	}
	return projected, skipped, nil
}

// SolarArcPositions applies the single solar arc uniformly to every body.
func SolarArcPositions(chart *schema.Chart, elapsedYears float64) (schema.ProjectedPositions, error) {
	arc, err := SolarArc(elapsedYears)
	if err != nil {
		return schema.ProjectedPositions{}, err
	}

	projected := schema.ProjectedPositions{
		Method:    schema.SolarArcProgression,
		Positions: make(map[schema.Body]float64, len(chart.Bodies)),
	}
	for _, b := range chart.Bodies {
		if math.IsNaN(b.Longitude) || math.IsInf(b.Longitude, 0) {
			return schema.ProjectedPositions{}, &schema.ValidationError{Field: "longitude", Reason: "must be finite"}
		}
		projected.Positions[b.Name] = Normalize(b.Longitude + arc)
	}
	return projected, nil
}
