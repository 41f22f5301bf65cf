package astro

import (
	"sort"
	"strings"

	"github.com/orbweave/orbweave/schema"
)

// DetectConfigurations finds every multi-body pattern in one snapshot: grand
// trines, t-squares and stelliums. All matches are enumerated, and one body
// may participate in several configurations at once.
func DetectConfigurations(bodies []schema.BodyPosition, aspects []schema.DetectedAspect) []schema.Configuration {
	var configs []schema.Configuration
	configs = append(configs, detectGrandTrines(bodies, aspects)...)
	configs = append(configs, detectTSquares(aspects)...)
	configs = append(configs, detectStelliums(bodies)...)
	return configs
}

// detectGrandTrines enumerates triangles in the trine-only adjacency graph.
// Iterating edges with an ordered third vertex visits each triangle once,
// so no permutation dedup pass is needed afterwards.
func detectGrandTrines(bodies []schema.BodyPosition, aspects []schema.DetectedAspect) []schema.Configuration {
	adjacency := make(map[schema.Body]map[schema.Body]float64)
	addEdge := func(a, b schema.Body, strength float64) {
		if adjacency[a] == nil {
			adjacency[a] = make(map[schema.Body]float64)
		}
		adjacency[a][b] = strength
	}
	for _, asp := range aspects {
		if asp.Type != schema.Trine {
			continue
		}
		addEdge(asp.BodyA, asp.BodyB, asp.Strength)
		addEdge(asp.BodyB, asp.BodyA, asp.Strength)
	}

	names := make([]schema.Body, 0, len(adjacency))
	for name := range adjacency {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	elements := elementIndex(bodies)

	var configs []schema.Configuration
	for _, a := range names {
		for b, strengthAB := range adjacency[a] {
			if b <= a {
				continue
			}
			// Third vertex must close edges to both a and b.
			for c, strengthAC := range adjacency[a] {
				if c <= b {
					continue
				}
				strengthBC, ok := adjacency[b][c]
				if !ok {
					continue
				}
				configs = append(configs, schema.Configuration{
					Kind:         schema.GrandTrine,
					Participants: []schema.Body{a, b, c},
					Element:      sharedElement(elements, a, b, c),
					Strength:     (strengthAB + strengthAC + strengthBC) / 3.0,
				})
			}
		}
	}

	sortConfigs(configs)
	return configs
}

// detectTSquares finds an opposition pair bridged by a body squaring both
// ends. The bridging body is the apex.
func detectTSquares(aspects []schema.DetectedAspect) []schema.Configuration {
	type edge struct {
		other    schema.Body
		strength float64
	}
	squares := make(map[schema.Body][]edge)
	var oppositions []schema.DetectedAspect
	for _, asp := range aspects {
		switch asp.Type {
		case schema.Opposition:
			oppositions = append(oppositions, asp)
		case schema.Square:
			squares[asp.BodyA] = append(squares[asp.BodyA], edge{other: asp.BodyB, strength: asp.Strength})
			squares[asp.BodyB] = append(squares[asp.BodyB], edge{other: asp.BodyA, strength: asp.Strength})
		}
	}

	var configs []schema.Configuration
	for _, opp := range oppositions {
		for apex, edges := range squares {
			if apex == opp.BodyA || apex == opp.BodyB {
				continue
			}
			var toA, toB float64
			var hasA, hasB bool
			for _, e := range edges {
				if e.other == opp.BodyA {
					toA, hasA = e.strength, true
				}
				if e.other == opp.BodyB {
					toB, hasB = e.strength, true
				}
			}
			if !hasA || !hasB {
				continue
			}
			participants := []schema.Body{opp.BodyA, opp.BodyB, apex}
			sort.Slice(participants, func(i, j int) bool { return participants[i] < participants[j] })
			configs = append(configs, schema.Configuration{
				Kind:         schema.TSquare,
				Participants: participants,
				Apex:         apex,
				Strength:     (opp.Strength + toA + toB) / 3.0,
			})
		}
	}

	sortConfigs(configs)
	return configs
}

// detectStelliums groups bodies by sign segment and reports every group of
// three or more. Strength grows with the size of the cluster and saturates
// at five bodies.
func detectStelliums(bodies []schema.BodyPosition) []schema.Configuration {
	groups := make(map[schema.ZodiacSign][]schema.Body)
	for _, b := range bodies {
		groups[signOf(b)] = append(groups[signOf(b)], b.Name)
	}

	var configs []schema.Configuration
	for sign, members := range groups {
		if len(members) < 3 {
			continue
		}
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		strength := (float64(len(members)) - 2.0) / 3.0
		if strength > 1.0 {
			strength = 1.0
		}
		configs = append(configs, schema.Configuration{
			Kind:         schema.Stellium,
			Participants: members,
			Sign:         sign,
			Count:        len(members),
			Strength:     strength,
		})
	}

	sortConfigs(configs)
	return configs
}

// signOf prefers the sign supplied by the chart generator and derives it
// from the longitude otherwise.
func signOf(b schema.BodyPosition) schema.ZodiacSign {
	if b.Sign != "" {
		return b.Sign
	}
	return schema.SignForLongitude(b.Longitude)
}

// elementIndex maps each body to the element of its sign.
func elementIndex(bodies []schema.BodyPosition) map[schema.Body]schema.Element {
	elements := make(map[schema.Body]schema.Element, len(bodies))
	for _, b := range bodies {
		elements[b.Name] = schema.SignElements[signOf(b)]
	}
	return elements
}

// sharedElement reports the common element of three bodies, or mixed.
func sharedElement(elements map[schema.Body]schema.Element, a, b, c schema.Body) schema.Element {
	ea, eb, ec := elements[a], elements[b], elements[c]
	if ea != "" && ea == eb && eb == ec {
		return ea
	}
	return schema.MixedElement
}

// sortConfigs orders configurations by strength descending, breaking ties
// on the joined participant key for reproducible output.
func sortConfigs(configs []schema.Configuration) {
	sort.Slice(configs, func(i, j int) bool {
		if configs[i].Strength != configs[j].Strength {
			return configs[i].Strength > configs[j].Strength
		}
		return participantKey(configs[i]) < participantKey(configs[j])
	})
}

func participantKey(c schema.Configuration) string {
	parts := make([]string, len(c.Participants))
	for i, p := range c.Participants {
		parts[i] = string(p)
	}
	return strings.Join(parts, "-")
}
