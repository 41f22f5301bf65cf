package schema

// The ten classical bodies.
const (
	Sun     Body = "sun"
	Moon    Body = "moon"
	Mercury Body = "mercury"
	Venus   Body = "venus"
	Mars    Body = "mars"
	Jupiter Body = "jupiter"
	Saturn  Body = "saturn"
	Uranus  Body = "uranus"
	Neptune Body = "neptune"
	Pluto   Body = "pluto"
)

// AllBodies lists every supported body from fastest-known to slowest.
var AllBodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// KeyBodies is the subset progressed by the timing engine. Progressions are
// only meaningful for fast movers; the outer bodies barely move in a lifetime.
var KeyBodies = []Body{Sun, Moon, Mercury, Venus, Mars}

// MeanDailyMotions holds the long-term mean motion of each body in degrees
// per day. These drive progression arcs, not transiting positions.
var MeanDailyMotions = map[Body]float64{
	Sun:     0.9856,
	Moon:    13.1764,
	Mercury: 1.3833,
	Venus:   1.2009,
	Mars:    0.5240,
	Jupiter: 0.0831,
	Saturn:  0.0334,
	Uranus:  0.0117,
	Neptune: 0.0060,
	Pluto:   0.0040,
}

// The twelve zodiac signs in ecliptic order.
const (
	Aries       ZodiacSign = "aries"
	Taurus      ZodiacSign = "taurus"
	Gemini      ZodiacSign = "gemini"
	Cancer      ZodiacSign = "cancer"
	Leo         ZodiacSign = "leo"
	Virgo       ZodiacSign = "virgo"
	Libra       ZodiacSign = "libra"
	Scorpio     ZodiacSign = "scorpio"
	Sagittarius ZodiacSign = "sagittarius"
	Capricorn   ZodiacSign = "capricorn"
	Aquarius    ZodiacSign = "aquarius"
	Pisces      ZodiacSign = "pisces"
)

// AllSigns lists the signs in ecliptic order; index i covers [i*30, (i+1)*30).
var AllSigns = []ZodiacSign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// The four classical elements.
const (
	Fire  Element = "fire"
	Earth Element = "earth"
	Air   Element = "air"
	Water Element = "water"

	// MixedElement is reported when a configuration spans elements.
	MixedElement Element = "mixed"
)

// SignElements maps each sign to its element. The elements repeat in
// fire-earth-air-water order around the wheel.
var SignElements = map[ZodiacSign]Element{
	Aries:       Fire,
	Taurus:      Earth,
	Gemini:      Air,
	Cancer:      Water,
	Leo:         Fire,
	Virgo:       Earth,
	Libra:       Air,
	Scorpio:     Water,
	Sagittarius: Fire,
	Capricorn:   Earth,
	Aquarius:    Air,
	Pisces:      Water,
}

// SignForLongitude returns the zodiac sign containing the given longitude.
// The longitude must already be normalized into [0,360).
func SignForLongitude(lon float64) ZodiacSign {
	idx := int(lon / 30.0)
	if idx < 0 || idx >= len(AllSigns) {
		idx = 0
	}
	return AllSigns[idx]
}

// ElementForLongitude returns the element of the sign containing lon.
func ElementForLongitude(lon float64) Element {
	return SignElements[SignForLongitude(lon)]
}

// IsSupportedBody reports whether the given body is one of the classical ten.
func IsSupportedBody(b Body) bool {
	_, ok := MeanDailyMotions[b]
	return ok
}
