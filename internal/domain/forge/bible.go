package forge

import (
	"fmt"
	"strings"

	"worldforge/internal/domain/rng"
)

func cosmologyRuleCount(size WorldSize) int {
	if size == SizeLarge {
		return 5
	}
	return 4
}

func coreConflictCount(c FactionComplexity) int {
	switch c {
	case ComplexityLow:
		return 3
	case ComplexityHigh:
		return 6
	default:
		return 4
	}
}

// Narrative faction name counts. These are deliberately independent of
// the simulated faction count in the graph generator; the graph reuses
// these names where available and invents the rest.
func factionNameCounts(c FactionComplexity) (dominant, minor int) {
	switch c {
	case ComplexityLow:
		return 3, 3
	case ComplexityHigh:
		return 6, 7
	default:
		return 4, 5
	}
}

func biomeDescriptionCount(size WorldSize) int {
	switch size {
	case SizeLarge:
		return 10
	case SizeSmall:
		return 6
	default:
		return 8
	}
}

// generateFactionNames composes n distinct adjective+noun names keyed
// off label, skipping any name already taken.
func generateFactionNames(seed int64, label string, n int, taken map[string]struct{}) []string {
	out := make([]string, 0, n)
	maxAttempts := 6 * len(factionNameNouns)
	for attempt := 0; attempt < maxAttempts && len(out) < n; attempt++ {
		adj := rng.Pick(seed, fmt.Sprintf("%s.adj.%d", label, attempt), factionNameAdjectives)
		noun := rng.Pick(seed, fmt.Sprintf("%s.noun.%d", label, attempt), factionNameNouns)
		name := "The " + adj + " " + noun
		if _, dup := taken[name]; dup {
			continue
		}
		taken[name] = struct{}{}
		out = append(out, name)
	}
	for i := 0; len(out) < n; i++ {
		name := fmt.Sprintf("The %s %s", factionNameAdjectives[i%len(factionNameAdjectives)], factionNameNouns[(i/len(factionNameAdjectives))%len(factionNameNouns)])
		if _, dup := taken[name]; dup {
			continue
		}
		taken[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func npcSpeechStyle(t ToneVector) string {
	switch {
	case t.Whimsy >= 0.62:
		return "Lilting and playful; NPCs talk around a point twice before landing on it, and bad news arrives wrapped in a joke."
	case t.Darkness >= 0.66:
		return "Clipped and wary; NPCs say less than they know, and what they do say costs them something."
	case t.Absurdity >= 0.60:
		return "Digressive and riddling; NPCs answer the question they wish had been asked."
	case t.Heroic >= 0.64:
		return "Formal and declarative; NPCs speak as if their words might be quoted in a chronicle."
	default:
		return "Plain and pragmatic; NPCs trade information like any other commodity."
	}
}

func moralClimate(t ToneVector) string {
	switch {
	case t.Darkness >= 0.70:
		return "Decency survives here the way fire survives rain: sheltered, tended, and never taken for granted."
	case t.Cozy >= 0.62:
		return "Most people are kind by habit, which makes the occasional cruelty land all the harder."
	case t.Heroic >= 0.66:
		return "People believe the right act matters, and that belief is the region's real currency."
	case t.Tragic >= 0.64:
		return "Everyone is paying for a choice somebody else made a generation ago."
	default:
		return "Folk look after their own first, their neighbors second, and strangers on credit."
	}
}

func magicFlavorSentence(seed int64, density MagicDensity, t ToneVector) string {
	style := "steady"
	switch density {
	case MagicWild:
		style = "feral"
	case MagicHigh:
		style = "abundant"
	case MagicLow:
		style = "scarce"
	}
	source := rng.Pick(seed, "bible.magic.source", []string{
		"old bargains", "buried ley-knots", "the attention of distant powers",
		"names spoken in the right order", "grief that never settled",
	})
	if t.Cosmic >= 0.6 {
		return fmt.Sprintf("Magic here is %s, drawn from %s, and it is watching back.", style, source)
	}
	return fmt.Sprintf("Magic here is %s, drawn from %s.", style, source)
}

const maxCreatureArchetypes = 14

// GenerateWorldBible derives the narrative reference material from a
// world seed. Pure: same seed, same bible.
func GenerateWorldBible(seed WorldSeed) WorldBible {
	sn := seed.SeedNumber
	in := seed.Input
	tone := seed.Tone

	worldName := rng.Pick(sn, "bible.name.prefix", worldNamePrefixes) +
		rng.Pick(sn, "bible.name.suffix", worldNameSuffixes)

	dominantCount, minorCount := factionNameCounts(in.FactionComplexity)
	taken := map[string]struct{}{}
	dominant := generateFactionNames(sn, "bible.factions.dominant", dominantCount, taken)
	minor := generateFactionNames(sn, "bible.factions.minor", minorCount, taken)

	biomes := pickUnique(sn, "bible.biomes", biomeNames(), biomeDescriptionCount(in.WorldSize))
	notes := make([]BiomeNote, 0, len(biomes))
	for i, biome := range biomes {
		phrase := rng.Pick(sn, fmt.Sprintf("bible.biome_flavor.%d", i), biomeFlavorPhrases)
		notes = append(notes, BiomeNote{Biome: biome, Description: biome + " " + phrase})
	}

	archetypes := make([]string, 0, maxCreatureArchetypes)
	seen := map[string]struct{}{}
	addArchetype := func(a string) {
		key := strings.ToLower(strings.TrimSpace(a))
		if key == "" || len(archetypes) >= maxCreatureArchetypes {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		archetypes = append(archetypes, a)
	}
	for _, a := range in.CreatureFocus {
		addArchetype(a)
	}
	for _, a := range pickUnique(sn, "bible.creatures", creatureArchetypePool, 7) {
		addArchetype(a)
	}

	return WorldBible{
		WorldName:            worldName,
		CosmologyRules:       pickUnique(sn, "bible.cosmology", cosmologyRulePool, cosmologyRuleCount(in.WorldSize)),
		MagicFlavor:          magicFlavorSentence(sn, in.MagicDensity, tone),
		CoreConflicts:        pickUnique(sn, "bible.conflicts", coreConflictPool, coreConflictCount(in.FactionComplexity)),
		DominantFactionNames: dominant,
		MinorFactionNames:    minor,
		BiomeDescriptions:    notes,
		CreatureArchetypes:   archetypes,
		NpcSpeechStyle:       npcSpeechStyle(tone),
		NamingRules: NamingRules{
			Style:    namingStyle(tone),
			Prefixes: pickUnique(sn, "bible.naming.prefixes", npcNameSyllables.first, 8),
			Suffixes: pickUnique(sn, "bible.naming.suffixes", npcNameSyllables.second, 6),
		},
		LootFlavors:  pickUnique(sn, "bible.loot", lootFlavorPool, 5),
		MoralClimate: moralClimate(tone),
	}
}

func namingStyle(t ToneVector) string {
	switch {
	case t.Cosmic >= 0.6:
		return "sonorous"
	case t.Cozy >= 0.6:
		return "homely"
	case t.Darkness >= 0.66:
		return "austere"
	default:
		return "plain"
	}
}

func biomeNames() []string {
	names := make([]string, 0, len(biomePool))
	for _, b := range biomePool {
		names = append(names, b.name)
	}
	return names
}
