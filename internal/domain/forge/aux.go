package forge

import (
	"fmt"

	"worldforge/internal/domain/rng"
)

// GenerateCreaturePools splits the bible's archetypes into threat
// bands. Band sizes lean on brutality: a harsher world promotes more
// of its roster into elite and boss slots.
func GenerateCreaturePools(seed WorldSeed, bible WorldBible) CreaturePools {
	sn := seed.SeedNumber
	archetypes := bible.CreatureArchetypes
	if len(archetypes) == 0 {
		archetypes = pickUnique(sn, "creatures.fallback", creatureArchetypePool, 6)
	}

	bossCount := 1
	if seed.Tone.Brutality >= 0.55 && len(archetypes) >= 5 {
		bossCount = 2
	}
	eliteCount := len(archetypes) / 3
	if eliteCount < 1 {
		eliteCount = 1
	}

	shuffled := pickUnique(sn, "creatures.order", archetypes, len(archetypes))
	boss := shuffled[:bossCount]
	elite := shuffled[bossCount:clampInt(bossCount+eliteCount, bossCount, len(shuffled))]
	common := shuffled[len(boss)+len(elite):]

	return CreaturePools{
		Common: append([]string{}, common...),
		Elite:  append([]string{}, elite...),
		Boss:   append([]string{}, boss...),
	}
}

// GenerateNpcStyleRules derives dialogue bias from the bible's speech
// style and tone.
func GenerateNpcStyleRules(seed WorldSeed, bible WorldBible) NpcStyleRules {
	sn := seed.SeedNumber
	tone := seed.Tone

	address := "by deed"
	switch {
	case tone.Heroic >= 0.64:
		address = "by title"
	case tone.Cozy >= 0.6:
		address = "by first name"
	case tone.Darkness >= 0.66:
		address = "not at all, if avoidable"
	}

	return NpcStyleRules{
		SpeechStyle:  bible.NpcSpeechStyle,
		Formality:    clamp01(0.3 + 0.4*tone.Heroic + 0.2*tone.Tragic - 0.3*tone.Whimsy),
		AddressStyle: address,
		SpeechTics:   pickUnique(sn, "npcstyle.tics", speechTicPool, 3),
	}
}

// GenerateLootFlavorProfile biases loot naming toward the bible's
// flavor pool.
func GenerateLootFlavorProfile(seed WorldSeed, bible WorldBible) LootFlavorProfile {
	pool := bible.LootFlavors
	if len(pool) == 0 {
		pool = pickUnique(seed.SeedNumber, "loot.fallback", lootFlavorPool, 5)
	}
	return LootFlavorProfile{
		FlavorPool:   append([]string{}, pool...),
		RarityBias:   clamp01(0.25 + 0.35*seed.Tone.Cosmic + 0.15*seed.Tone.Heroic),
		CursedChance: clamp01(0.05 + 0.25*seed.Tone.Darkness + 0.10*seed.Tone.Tragic),
	}
}

// GenerateMagicRules fixes how magic behaves, derived from the seed's
// density knob and tone.
func GenerateMagicRules(seed WorldSeed, bible WorldBible) MagicRules {
	sn := seed.SeedNumber
	density := seed.Input.MagicDensity

	cost := "fatigue"
	switch {
	case seed.Tone.Tragic >= 0.6:
		cost = "memory"
	case seed.Tone.Darkness >= 0.66:
		cost = "blood"
	case seed.Tone.Cosmic >= 0.6:
		cost = "attention of the powers"
	}

	schoolCount := 3
	if density == MagicHigh || density == MagicWild {
		schoolCount = 5
	}

	return MagicRules{
		Flavor:      bible.MagicFlavor,
		Density:     density,
		WildSurges:  density == MagicWild,
		CastingCost: cost,
		Schools:     pickUnique(sn, "magic.schools", magicSchoolPool, schoolCount),
	}
}

// GenerateDMBehaviorProfile maps tone into the bias vector consumed by
// narrative logic outside this engine. Pure function of tone alone.
func GenerateDMBehaviorProfile(tone ToneVector) DMBehaviorProfile {
	return DMBehaviorProfile{
		Aggression:       clamp01(0.20 + 0.45*tone.Brutality + 0.20*tone.Darkness - 0.25*tone.Cozy),
		Mercy:            clamp01(0.25 + 0.40*tone.Cozy + 0.25*tone.Heroic - 0.30*tone.Brutality),
		TwistFrequency:   clamp01(0.15 + 0.40*tone.Absurdity + 0.25*tone.Cosmic),
		PacingSpeed:      clamp01(0.35 + 0.30*tone.Brutality + 0.15*tone.Heroic - 0.20*tone.Cozy),
		DescriptionDepth: clamp01(0.30 + 0.30*tone.Tragic + 0.25*tone.Cosmic),
		ComedyBias:       clamp01(0.05 + 0.45*tone.Whimsy + 0.30*tone.Absurdity - 0.25*tone.Darkness),
	}
}

// dungeonName composes a ruin name for collapse events and region
// dressing.
func dungeonName(seed int64, label string) string {
	return fmt.Sprintf("The %s %s",
		rng.Pick(seed, label+".adj", dungeonNameParts.adjectives),
		rng.Pick(seed, label+".noun", dungeonNameParts.nouns),
	)
}
