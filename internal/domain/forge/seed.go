package forge

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"worldforge/internal/domain/rng"
)

// SeedVersion guards the canonical serialization format: bump it and
// every derived seed number changes.
const SeedVersion = 1

// canonicalInput serializes a resolved input into a stable,
// order-independent form. Field order is fixed, list order is
// preserved (it is meaningful for presets), and toggle keys are
// sorted, so two equal inputs always canonicalize identically.
func canonicalInput(in ForgeInput) string {
	var b strings.Builder
	write := func(key, val string) {
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(val)
		b.WriteByte(';')
	}
	write("title", in.Title)
	write("description", in.Description)
	write("tone_preset", in.TonePreset)
	write("blend_presets", strings.Join(in.BlendPresets, ","))
	if in.HumorLevel != nil {
		write("humor_level", strconv.Itoa(*in.HumorLevel))
	}
	write("lethality", string(in.Lethality))
	write("magic_density", string(in.MagicDensity))
	write("tech_level", string(in.TechLevel))
	write("faction_complexity", string(in.FactionComplexity))
	write("world_size", string(in.WorldSize))
	write("creature_focus", strings.Join(in.CreatureFocus, ","))
	write("starting_region_hint", in.StartingRegionHint)
	write("villain_archetype", in.VillainArchetype)
	if in.CorruptionLevel != nil {
		write("corruption_level", strconv.Itoa(*in.CorruptionLevel))
	}
	if in.DivineInterference != nil {
		write("divine_interference", strconv.Itoa(*in.DivineInterference))
	}
	write("randomization_mode", string(in.RandomizationMode))
	toggles := make([]string, 0, len(in.PlayerToggles))
	for k, v := range in.PlayerToggles {
		toggles = append(toggles, fmt.Sprintf("%s:%t", k, v))
	}
	sort.Strings(toggles)
	write("player_toggles", strings.Join(toggles, ","))
	write("manual_seed", string(in.ManualSeed))
	return b.String()
}

// BuildWorldSeed canonicalizes the resolved input, hashes it, and
// folds the first 8 hex digits into an integer seed in [1, 2^31-1].
// The seed string embeds the manual-seed token so inputs differing
// only by manual seed still diverge visibly.
func BuildWorldSeed(in ForgeInput, tone ToneVector) WorldSeed {
	digest := rng.StableHash(canonicalInput(in))
	v, err := strconv.ParseUint(digest[:8], 16, 64)
	if err != nil {
		v = 1
	}
	seedNumber := int64(v & 0x7fffffff)
	if seedNumber == 0 {
		seedNumber = 1
	}

	token := string(in.ManualSeed)
	if token == "" {
		token = "auto"
	}

	return WorldSeed{
		Version:     SeedVersion,
		SeedString:  fmt.Sprintf("wf%d:%s:%s", SeedVersion, token, digest),
		SeedNumber:  seedNumber,
		ThemeTags:   buildThemeTags(in, tone),
		Tone:        tone,
		PresetTrace: PresetTrace(in),
		Input:       in,
	}
}

const maxThemeTags = 36

// toneTagThresholds derive adjective tags when an axis crosses its
// fixed cutoff.
var toneTagThresholds = []struct {
	tag     string
	cutoff  float64
	axisVal func(ToneVector) float64
}{
	{"bleak", 0.72, func(t ToneVector) float64 { return t.Darkness }},
	{"cozy", 0.62, func(t ToneVector) float64 { return t.Cozy }},
	{"whimsical", 0.65, func(t ToneVector) float64 { return t.Whimsy }},
	{"savage", 0.66, func(t ToneVector) float64 { return t.Brutality }},
	{"absurd", 0.60, func(t ToneVector) float64 { return t.Absurdity }},
	{"cosmic", 0.60, func(t ToneVector) float64 { return t.Cosmic }},
	{"valiant", 0.68, func(t ToneVector) float64 { return t.Heroic }},
	{"tragic", 0.62, func(t ToneVector) float64 { return t.Tragic }},
}

func buildThemeTags(in ForgeInput, tone ToneVector) []string {
	raw := make([]string, 0, 24)
	raw = append(raw, PresetTrace(in)...)
	raw = append(raw,
		string(in.Lethality), string(in.MagicDensity), string(in.TechLevel),
		string(in.FactionComplexity), string(in.WorldSize), in.VillainArchetype,
	)
	raw = append(raw, in.CreatureFocus...)
	for _, tt := range toneTagThresholds {
		if tt.axisVal(tone) >= tt.cutoff {
			raw = append(raw, tt.tag)
		}
	}

	seen := map[string]struct{}{}
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
		if len(tags) == maxThemeTags {
			break
		}
	}
	return tags
}
