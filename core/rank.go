package core

import (
	"sort"

	"github.com/orbweave/orbweave/schema"
)

// rankAspects sorts aspects by strength in descending order and returns the
// top 'limit' entries. Ties break on the canonical pair key, then on aspect
// enumeration order, so repeated runs rank identically.
func rankAspects(aspects []schema.DetectedAspect, limit int) []schema.DetectedAspect {
	sort.Slice(aspects, func(i, j int) bool {
		if aspects[i].Strength != aspects[j].Strength {
			return aspects[i].Strength > aspects[j].Strength
		}
		if ki, kj := aspects[i].PairKey(), aspects[j].PairKey(); ki != kj {
			return ki < kj
		}
		return schema.AspectOrder(aspects[i].Type) < schema.AspectOrder(aspects[j].Type)
	})
	if len(aspects) > limit {
		return aspects[:limit]
	}
	return aspects
}

// rankConfigurations sorts configurations by strength in descending order
// and returns the top 'limit' entries.
func rankConfigurations(configs []schema.Configuration, limit int) []schema.Configuration {
	sort.Slice(configs, func(i, j int) bool {
		if configs[i].Strength != configs[j].Strength {
			return configs[i].Strength > configs[j].Strength
		}
		return participantKey(configs[i]) < participantKey(configs[j])
	})
	if len(configs) > limit {
		return configs[:limit]
	}
	return configs
}

// participantKey builds a stable identity string for tie-breaking.
func participantKey(c schema.Configuration) string {
	key := string(c.Kind)
	for _, p := range c.Participants {
		key += ":" + string(p)
	}
	return key
}
