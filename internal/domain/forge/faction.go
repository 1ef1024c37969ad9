package forge

import (
	"fmt"
	"math"
	"sort"

	"worldforge/internal/domain/rng"
)

// Simulated faction counts. Independent of the bible's narrative name
// counts; the graph reuses bible names where available and generates
// fresh ones for the remainder.
func factionCount(c FactionComplexity) int {
	switch c {
	case ComplexityLow:
		return 4
	case ComplexityHigh:
		return 8
	default:
		return 6
	}
}

const (
	minPowerLevel = 10
	maxPowerLevel = 95
)

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// squash maps x through 2*clamp01(x)-1 into [-1,1].
func squash(x float64) float64 {
	return 2*clamp01(x) - 1
}

func alignmentFor(seed int64, idx int, tone ToneVector) MoralAlignment {
	jitter := func(axis string) float64 {
		return (rng.Float01(seed, fmt.Sprintf("faction.%d.align.%s", idx, axis)) - 0.5) * 0.6
	}
	return MoralAlignment{
		Order:    squash(0.5 + 0.35*(tone.Heroic-tone.Absurdity) + jitter("order")),
		Mercy:    squash(0.5 + 0.35*(tone.Cozy+tone.Heroic-tone.Brutality) + jitter("mercy")),
		Ambition: squash(0.5 + 0.35*(tone.Brutality+tone.Cosmic) + jitter("ambition")),
	}
}

func powerLevelFor(seed int64, idx int, tone ToneVector) int {
	base := 35 + rng.Int(seed, fmt.Sprintf("faction.%d.power", idx), 0, 50)
	shift := int(math.Round(12*tone.Darkness - 12*tone.Cozy))
	return clampInt(base+shift, minPowerLevel, maxPowerLevel)
}

func alignmentGap(a, b MoralAlignment) float64 {
	return math.Abs(a.Order-b.Order) + math.Abs(a.Mercy-b.Mercy) + math.Abs(a.Ambition-b.Ambition)
}

// relationScore is computed once per unordered pair; the matrix is
// filled symmetrically from it.
func relationScore(seed int64, a, b Faction) int {
	jitter := rng.Int(seed, fmt.Sprintf("faction.rel.%s.%s", a.ID, b.ID), -24, 24)
	score := int(math.Round(58-28*alignmentGap(a.Alignment, b.Alignment))) + jitter
	return clampInt(score, -100, 100)
}

const (
	tensionCutoff   = -25
	tensionSoftCap  = 8
	tensionHardCap  = 12
	tensionMinCount = 2
)

// GenerateFactionGraph instantiates the simulated factions, their
// symmetric relation matrix, and the ranked active tensions.
func GenerateFactionGraph(seed WorldSeed, bible WorldBible, biomes BiomeMap) FactionGraph {
	sn := seed.SeedNumber
	tone := seed.Tone

	namePool := make([]string, 0, len(bible.DominantFactionNames)+len(bible.MinorFactionNames))
	taken := map[string]struct{}{}
	for _, n := range append(append([]string{}, bible.DominantFactionNames...), bible.MinorFactionNames...) {
		if _, dup := taken[n]; dup {
			continue
		}
		taken[n] = struct{}{}
		namePool = append(namePool, n)
	}

	count := factionCount(seed.Input.FactionComplexity)
	if extra := count - len(namePool); extra > 0 {
		namePool = append(namePool, generateFactionNames(sn, "faction.extra_names", extra, taken)...)
	}

	factions := make([]Faction, 0, count)
	for i := 0; i < count; i++ {
		home := ""
		if len(biomes.Regions) > 0 {
			home = biomes.Regions[i%len(biomes.Regions)].ID
		}
		factions = append(factions, Faction{
			ID:           fmt.Sprintf("faction-%d", i+1),
			Name:         namePool[i],
			Ideology:     rng.Pick(sn, fmt.Sprintf("faction.%d.ideology", i), ideologyPool),
			Alignment:    alignmentFor(sn, i, tone),
			PowerLevel:   powerLevelFor(sn, i, tone),
			HomeRegionID: home,
			Goals:        pickUnique(sn, fmt.Sprintf("faction.%d.goals", i), factionGoalPool, 2),
		})
	}

	relations := make(map[string]map[string]int, count)
	for _, f := range factions {
		relations[f.ID] = make(map[string]int, count)
		relations[f.ID][f.ID] = 100
	}
	type scoredPair struct {
		a, b  Faction
		score int
	}
	pairs := make([]scoredPair, 0, count*(count-1)/2)
	for i := 0; i < len(factions); i++ {
		for j := i + 1; j < len(factions); j++ {
			score := relationScore(sn, factions[i], factions[j])
			relations[factions[i].ID][factions[j].ID] = score
			relations[factions[j].ID][factions[i].ID] = score
			pairs = append(pairs, scoredPair{a: factions[i], b: factions[j], score: score})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].score < pairs[j].score })

	tensions := make([]string, 0, tensionHardCap)
	tenseKeys := map[string]struct{}{}
	for _, p := range pairs {
		if p.score > tensionCutoff || len(tensions) >= tensionSoftCap {
			break
		}
		tensions = append(tensions, fmt.Sprintf(
			"%s and %s are one provocation from open conflict (standing %d).",
			p.a.Name, p.b.Name, p.score,
		))
		tenseKeys[p.a.ID+"|"+p.b.ID] = struct{}{}
	}

	// Backfill generic rivalries from the first available pairs so any
	// graph with at least two factions surfaces at least two tensions.
	if len(factions) >= 2 {
		for i := 0; i < len(factions) && len(tensions) < tensionMinCount; i++ {
			for j := i + 1; j < len(factions) && len(tensions) < tensionMinCount; j++ {
				key := factions[i].ID + "|" + factions[j].ID
				if _, dup := tenseKeys[key]; dup {
					continue
				}
				tenseKeys[key] = struct{}{}
				tensions = append(tensions, fmt.Sprintf(
					"%s and %s circle the same prize, and neither will blink first.",
					factions[i].Name, factions[j].Name,
				))
			}
		}
	}
	if len(tensions) > tensionHardCap {
		tensions = tensions[:tensionHardCap]
	}

	return FactionGraph{
		Factions:       factions,
		Relations:      relations,
		ActiveTensions: tensions,
	}
}
