package forge

import (
	"fmt"
	"sort"
	"strings"

	opensimplex "github.com/ojrac/opensimplex-go"

	"worldforge/internal/domain/rng"
)

func regionCount(seed int64, size WorldSize) int {
	switch size {
	case SizeSmall:
		return rng.Int(seed, "biome.region_count", 5, 7)
	case SizeLarge:
		return rng.Int(seed, "biome.region_count", 11, 14)
	default:
		return rng.Int(seed, "biome.region_count", 8, 10)
	}
}

// biomeWeights builds the weighted pool one region draws its dominant
// biome from: base weight 5 per biome, tone bonuses per category, and
// a flat +6 when the caller's starting-region hint names the biome.
func biomeWeights(tone ToneVector, hint string) []rng.Weighted[string] {
	hint = strings.ToLower(hint)
	darkBonus := (tone.Darkness + tone.Brutality) * 4
	cozyBonus := (tone.Cozy + tone.Whimsy) * 4
	exoticBonus := (tone.Cosmic + tone.Absurdity) * 4

	weights := make([]rng.Weighted[string], 0, len(biomePool))
	for _, b := range biomePool {
		w := 5.0
		switch b.category {
		case "dark":
			w += darkBonus
		case "cozy":
			w += cozyBonus
		case "exotic":
			w += exoticBonus
		}
		if hint != "" && strings.Contains(hint, strings.ToLower(b.name)) {
			w += 6
		}
		weights = append(weights, rng.Weighted[string]{Item: b.name, Weight: w})
	}
	return weights
}

func regionName(seed int64, idx int, biome string) string {
	adj := rng.Pick(seed, fmt.Sprintf("biome.region.%d.name_adj", idx), regionNameAdjectives)
	// "Upper Blighted Marsh" style; biome words title-cased.
	words := strings.Fields(biome)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return adj + " " + strings.Join(words, " ")
}

func townName(seed int64, label string) string {
	return rng.Pick(seed, label+".first", townSyllables.first) +
		rng.Pick(seed, label+".second", townSyllables.second)
}

const corruptionZoneCutoff = 0.55

// GenerateBiomeMap partitions the world into regions. The per-region
// noise terms come from a gradient noise field keyed off the seed
// number, so the whole map is a pure function of the world seed.
func GenerateBiomeMap(seed WorldSeed) BiomeMap {
	sn := seed.SeedNumber
	in := seed.Input
	tone := seed.Tone

	noise := opensimplex.NewNormalized(sn)
	weights := biomeWeights(tone, in.StartingRegionHint)
	corruptionLevel := 0
	if in.CorruptionLevel != nil {
		corruptionLevel = *in.CorruptionLevel
	}

	count := regionCount(sn, in.WorldSize)
	regions := make([]Region, 0, count)
	capitals := make([]string, 0, count)
	dungeonSum := 0.0

	for i := 0; i < count; i++ {
		biome := rng.WeightedPick(sn, fmt.Sprintf("biome.region.%d.biome", i), weights)
		x := float64(i) * 0.73

		corruption := clamp01(0.55*tone.Darkness + 0.06*float64(corruptionLevel) + 0.28*noise.Eval2(x, 1.37))
		dungeon := clamp01(0.18 + 0.35*tone.Darkness + 0.24*tone.Brutality - 0.20*tone.Cozy + (noise.Eval2(x, 4.91)-0.5)*0.2)
		town := clamp01(0.58 - 0.35*dungeon + 0.24*tone.Cozy + 0.14*tone.Heroic - 0.10*tone.Darkness)

		capital := townName(sn, fmt.Sprintf("biome.region.%d.capital", i))
		region := Region{
			ID:             fmt.Sprintf("region-%d", i+1),
			Name:           regionName(sn, i, biome),
			DominantBiome:  biome,
			Corruption:     corruption,
			DungeonDensity: dungeon,
			TownDensity:    town,
			CapitalTown:    capital,
			Tags:           regionTags(biome, corruption, town),
		}
		regions = append(regions, region)
		capitals = append(capitals, capital)
		dungeonSum += dungeon
	}

	return BiomeMap{
		WorldSize:          in.WorldSize,
		Regions:            regions,
		CorruptionZones:    corruptionZones(regions),
		CapitalTowns:       capitals,
		MeanDungeonDensity: dungeonSum / float64(len(regions)),
	}
}

func regionTags(biome string, corruption, town float64) []string {
	tags := []string{categoryOf(biome)}
	if corruption >= corruptionZoneCutoff {
		tags = append(tags, "corrupted")
	}
	if town >= 0.60 {
		tags = append(tags, "settled")
	} else if town <= 0.30 {
		tags = append(tags, "wilds")
	}
	return tags
}

func categoryOf(biome string) string {
	for _, b := range biomePool {
		if b.name == biome {
			return b.category
		}
	}
	return "neutral"
}

// corruptionZones keeps the top third (minimum one) of regions at or
// above the cutoff, most severe first. When no region reaches the
// cutoff, the single most-corrupted region is the zone.
func corruptionZones(regions []Region) []CorruptionZone {
	candidates := make([]CorruptionZone, 0, len(regions))
	for _, r := range regions {
		if r.Corruption >= corruptionZoneCutoff {
			candidates = append(candidates, CorruptionZone{
				RegionID:   r.ID,
				RegionName: r.Name,
				Severity:   r.Corruption,
			})
		}
	}
	if len(candidates) == 0 {
		worst := regions[0]
		for _, r := range regions[1:] {
			if r.Corruption > worst.Corruption {
				worst = r
			}
		}
		return []CorruptionZone{{
			RegionID:   worst.ID,
			RegionName: worst.Name,
			Severity:   worst.Corruption,
		}}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Severity > candidates[j].Severity
	})
	keep := len(regions) / 3
	if keep < 1 {
		keep = 1
	}
	if keep > len(candidates) {
		keep = len(candidates)
	}
	return candidates[:keep]
}
