package forge

import (
	"strconv"

	"worldforge/internal/domain/rng"
)

var lethalityTiers = []Lethality{LethalityLow, LethalityMedium, LethalityHigh, LethalityBrutal}
var magicDensities = []MagicDensity{MagicLow, MagicNormal, MagicHigh, MagicWild}
var techLevels = []TechLevel{TechPrimitive, TechMedieval, TechRenaissance, TechIndustrial, TechArcanotech}
var complexities = []FactionComplexity{ComplexityLow, ComplexityMedium, ComplexityHigh}
var worldSizes = []WorldSize{SizeSmall, SizeMedium, SizeLarge}

// primeSeed derives the seed used only to resolve unset fields. It is
// never the final world seed; the seed builder hashes the fully
// resolved input for that.
func primeSeed(in ForgeInput) int64 {
	digest := rng.StableHash(in.Title + "|" + in.Description + "|" + string(in.ManualSeed))
	v, err := strconv.ParseUint(digest[:8], 16, 64)
	if err != nil {
		v = 1
	}
	n := int64(v & 0x7fffffff)
	if n == 0 {
		n = 1
	}
	return n
}

func intPtr(v int) *int { return &v }

// ResolveInput validates a raw ForgeInput and returns a fully
// populated copy with no optional field left unset. The randomization
// mode decides how gaps are filled:
//
//   - fixed: static defaults.
//   - themeLockedRandom: unset fields drawn from their pools using the
//     prime seed (still input-deterministic).
//   - fullyRandom: every style field drawn regardless of caller values,
//     except title, description, and the manual seed override.
func ResolveInput(raw ForgeInput) (ForgeInput, error) {
	if err := ValidateForgeInput(raw); err != nil {
		return ForgeInput{}, err
	}

	in := raw
	in.BlendPresets = append([]string(nil), raw.BlendPresets...)
	in.CreatureFocus = append([]string(nil), raw.CreatureFocus...)
	in.PlayerToggles = make(map[string]bool, len(raw.PlayerToggles))
	for k, v := range raw.PlayerToggles {
		in.PlayerToggles[k] = v
	}

	if in.RandomizationMode == "" {
		in.RandomizationMode = ModeFixed
	}
	prime := primeSeed(raw)

	random := in.RandomizationMode != ModeFixed
	force := in.RandomizationMode == ModeFullyRandom

	if force || in.TonePreset == "" {
		if random {
			in.TonePreset = rng.Pick(prime, "resolve.tone_preset", presetIDs)
		} else {
			in.TonePreset = defaultPresetID
		}
	}
	if force {
		n := rng.Int(prime, "resolve.blend_count", 0, 2)
		in.BlendPresets = pickUnique(prime, "resolve.blend_presets", presetIDs, n)
	}
	if force || in.HumorLevel == nil {
		if random {
			in.HumorLevel = intPtr(rng.Int(prime, "resolve.humor", 0, 5))
		} else {
			in.HumorLevel = intPtr(2)
		}
	}
	if force || in.Lethality == "" {
		if random {
			in.Lethality = rng.Pick(prime, "resolve.lethality", lethalityTiers)
		} else {
			in.Lethality = LethalityMedium
		}
	}
	if force || in.MagicDensity == "" {
		if random {
			in.MagicDensity = rng.Pick(prime, "resolve.magic", magicDensities)
		} else {
			in.MagicDensity = MagicNormal
		}
	}
	if force || in.TechLevel == "" {
		if random {
			in.TechLevel = rng.Pick(prime, "resolve.tech", techLevels)
		} else {
			in.TechLevel = TechMedieval
		}
	}
	if force || in.FactionComplexity == "" {
		if random {
			in.FactionComplexity = rng.Pick(prime, "resolve.complexity", complexities)
		} else {
			in.FactionComplexity = ComplexityMedium
		}
	}
	if force || in.WorldSize == "" {
		if random {
			in.WorldSize = rng.Pick(prime, "resolve.size", worldSizes)
		} else {
			in.WorldSize = SizeMedium
		}
	}
	if force || in.CorruptionLevel == nil {
		if random {
			in.CorruptionLevel = intPtr(rng.Int(prime, "resolve.corruption", 0, 5))
		} else {
			in.CorruptionLevel = intPtr(1)
		}
	}
	if force || in.DivineInterference == nil {
		if random {
			in.DivineInterference = intPtr(rng.Int(prime, "resolve.divine", 0, 5))
		} else {
			in.DivineInterference = intPtr(1)
		}
	}
	if force || in.VillainArchetype == "" {
		if random {
			in.VillainArchetype = rng.Pick(prime, "resolve.villain", villainArchetypePool)
		} else {
			in.VillainArchetype = villainArchetypePool[0]
		}
	}

	in.CreatureFocus = resolveCreatureFocus(in, prime, force)
	return in, nil
}

// resolveCreatureFocus applies the priority order: explicit list, then
// a random draw from the global pool, then the selected preset's bias
// pool. fullyRandom ignores the explicit list.
func resolveCreatureFocus(in ForgeInput, prime int64, force bool) []string {
	if !force && len(in.CreatureFocus) > 0 {
		return in.CreatureFocus
	}
	if in.RandomizationMode != ModeFixed {
		n := rng.Int(prime, "resolve.creature_count", 2, 3)
		return pickUnique(prime, "resolve.creatures", creatureArchetypePool, n)
	}
	preset := tonePresets[in.TonePreset]
	return append([]string(nil), preset.CreatureBias...)
}
