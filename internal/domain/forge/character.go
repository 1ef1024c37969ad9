package forge

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"worldforge/internal/domain/rng"
)

// characterSeed folds the character input into the world seed so two
// different characters in one world draw from different streams while
// the same input always reproduces the same character.
func characterSeed(ctx CampaignContext, in CharacterForgeInput) int64 {
	canonical := strings.Join([]string{
		in.Name, in.OriginRegion, in.Faction, in.Background,
		strings.Join(in.PersonalityTraits, ","),
	}, "|")
	digest := rng.StableHash(canonical)
	v, err := strconv.ParseUint(digest[:8], 16, 64)
	if err != nil {
		v = 1
	}
	return ctx.Seed.SeedNumber ^ int64(v&0x7fffffff)
}

// matchRegion resolves a caller reference against region ids and
// names, case-insensitive and substring-tolerant.
func matchRegion(regions []Region, ref string) (Region, bool) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return Region{}, false
	}
	for _, r := range regions {
		if strings.EqualFold(r.ID, ref) {
			return r, true
		}
	}
	for _, r := range regions {
		name := strings.ToLower(r.Name)
		if strings.Contains(name, ref) || strings.Contains(ref, name) {
			return r, true
		}
	}
	return Region{}, false
}

func matchFaction(factions []Faction, ref string) (Faction, bool) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return Faction{}, false
	}
	for _, f := range factions {
		if strings.EqualFold(f.ID, ref) {
			return f, true
		}
	}
	for _, f := range factions {
		name := strings.ToLower(f.Name)
		if strings.Contains(name, ref) || strings.Contains(ref, name) {
			return f, true
		}
	}
	return Faction{}, false
}

func npcName(seed int64, label string, rules NamingRules) string {
	first := rules.Prefixes
	second := rules.Suffixes
	if len(first) == 0 {
		first = npcNameSyllables.first
	}
	if len(second) == 0 {
		second = npcNameSyllables.second
	}
	return rng.Pick(seed, label+".first", first) + rng.Pick(seed, label+".second", second)
}

func moralBucket(leaning float64) string {
	switch {
	case leaning >= 0.4:
		return "principled"
	case leaning <= -0.4:
		return "ruthless"
	default:
		return "pragmatic"
	}
}

// ForgeCharacter binds a new character into an existing campaign.
// Pure: it never mutates the context, and identical inputs yield an
// identical binding.
func ForgeCharacter(ctx CampaignContext, in CharacterForgeInput) (CharacterForgeOutput, error) {
	if err := ValidateCharacterForgeInput(in); err != nil {
		return CharacterForgeOutput{}, err
	}
	regions := ctx.World.Biomes.Regions
	factions := ctx.World.Factions.Factions
	if len(regions) == 0 || len(factions) == 0 {
		return CharacterForgeOutput{}, fieldErr("campaign", "campaign has no regions or factions")
	}

	cs := characterSeed(ctx, in)
	tone := ctx.Seed.Tone

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = npcName(cs, "char.name", ctx.World.Bible.NamingRules)
	}

	origin, ok := matchRegion(regions, in.OriginRegion)
	if !ok {
		origin = regions[rng.Int(cs, "char.origin", 0, len(regions)-1)]
	}

	aligned, ok := matchFaction(factions, in.Faction)
	if !ok {
		for _, f := range factions {
			if f.HomeRegionID == origin.ID {
				aligned, ok = f, true
				break
			}
		}
	}
	if !ok {
		aligned = factions[rng.Int(cs, "char.faction", 0, len(factions)-1)]
	}

	background := in.Background
	if background == "" {
		pool := backgroundsByTech[ctx.Seed.Input.TechLevel]
		if len(pool) == 0 {
			pool = backgroundsByTech[TechMedieval]
		}
		background = rng.Pick(cs, "char.background", pool)
	}

	traits := in.PersonalityTraits
	if len(traits) < 2 {
		traits = pickUnique(cs, "char.traits", personalityTraitPool, 3)
	}

	var leaning float64
	if in.MoralLeaning != nil {
		leaning = *in.MoralLeaning
	} else {
		noise := (rng.Float01(cs, "char.moral_noise") - 0.5) * 0.4
		leaning = 0.5*((tone.Heroic+tone.Cozy)-(tone.Darkness+tone.Brutality)) + noise
	}
	if leaning < -1 {
		leaning = -1
	}
	if leaning > 1 {
		leaning = 1
	}

	styleBias := ctx.World.NpcStyle.Formality - 0.5
	relationships := make(map[string]int, 3)
	for i := 0; i < 3; i++ {
		label := fmt.Sprintf("char.npc.%d", i)
		name := npcName(cs, label, ctx.World.Bible.NamingRules)
		for taken := 0; taken < 8; taken++ {
			if _, dup := relationships[name]; !dup {
				break
			}
			name = npcName(cs, fmt.Sprintf("%s.retry%d", label, taken), ctx.World.Bible.NamingRules)
		}
		if _, dup := relationships[name]; dup {
			name = fmt.Sprintf("%s of %s", name, origin.Name)
		}
		score := int(math.Round(10+25*leaning+12*styleBias)) +
			rng.Int(cs, label+".jitter", -15, 15)
		relationships[name] = clampInt(score, -100, 100)
	}

	trust := make(map[string]int, len(factions))
	for _, f := range factions {
		base := -4.0
		if f.ID == aligned.ID {
			base = 22
		}
		score := base + 10*leaning*f.Alignment.Mercy - 6*f.Alignment.Ambition
		trust[f.ID] = clampInt(int(math.Round(score)), -100, 100)
	}

	rumors := make([]string, 0, 6)
	rumors = append(rumors, ctx.World.State.ActiveRumors...)
	rumors = append(rumors, ctx.World.Bible.CoreConflicts...)
	if len(rumors) > 5 {
		rumors = rumors[:5]
	}
	rumors = append(rumors, fmt.Sprintf(
		"They say %s has been asking after newcomers in %s.",
		aligned.Name, origin.Name,
	))

	flags := make([]string, 0, 10)
	flags = append(flags,
		"origin:"+origin.ID,
		"faction:"+aligned.ID,
		"background:"+flagToken(background),
		"moral:"+moralBucket(leaning),
	)
	for _, tr := range traits {
		if len(flags) >= 10 {
			break
		}
		flags = append(flags, "trait:"+flagToken(tr))
	}

	return CharacterForgeOutput{
		CharacterName:     name,
		OriginRegionID:    origin.ID,
		OriginRegionName:  origin.Name,
		FactionID:         aligned.ID,
		FactionName:       aligned.Name,
		Background:        background,
		PersonalityTraits: append([]string{}, traits...),
		MoralLeaning:      leaning,
		StartingTown:      origin.CapitalTown,
		NpcRelationships:  relationships,
		FactionTrust:      trust,
		StartingRumors:    rumors,
		StartingFlags:     flags,
	}, nil
}

func flagToken(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// MergeCharacter folds a character binding into the caller-owned
// runtime state bag. It reads and writes only the keys below and
// assumes nothing else about the bag's shape:
//
//	rumors            []string (deduplicated union)
//	flags             []string (deduplicated union)
//	faction_presence  []string (deduplicated union of faction ids)
//	npc_relationships map[string]int (character scores merged in)
//	discoveries       []map[string]any (one logged entry per binding)
//
// Merging the same output twice is a no-op the second time, so callers
// may retry safely.
func MergeCharacter(state RuntimeState, out CharacterForgeOutput) RuntimeState {
	next := make(RuntimeState, len(state)+5)
	for k, v := range state {
		next[k] = v
	}

	next["rumors"] = mergeStringSet(next["rumors"], out.StartingRumors)
	next["flags"] = mergeStringSet(next["flags"], out.StartingFlags)
	next["faction_presence"] = mergeStringSet(next["faction_presence"], []string{out.FactionID})

	rels := toIntMap(next["npc_relationships"])
	names := make([]string, 0, len(out.NpcRelationships))
	for name := range out.NpcRelationships {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rels[name] = out.NpcRelationships[name]
	}
	next["npc_relationships"] = rels

	discoveries := toAnySlice(next["discoveries"])
	entry := map[string]any{
		"kind":    "character_bound",
		"name":    out.CharacterName,
		"origin":  out.OriginRegionID,
		"faction": out.FactionID,
		"town":    out.StartingTown,
		"moral":   moralBucket(out.MoralLeaning),
		"rumors":  len(out.StartingRumors),
	}
	if !containsDiscovery(discoveries, entry) {
		discoveries = append(discoveries, entry)
	}
	next["discoveries"] = discoveries

	return next
}

func mergeStringSet(existing any, add []string) []string {
	out := toStringSlice(existing)
	seen := make(map[string]struct{}, len(out)+len(add))
	for _, s := range out {
		seen[s] = struct{}{}
	}
	for _, s := range add {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// toStringSlice tolerates both []string and the []any a JSON
// round-trip produces.
func toStringSlice(v any) []string {
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...)
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

func toIntMap(v any) map[string]int {
	out := map[string]int{}
	switch t := v.(type) {
	case map[string]int:
		for k, n := range t {
			out[k] = n
		}
	case map[string]any:
		for k, n := range t {
			switch num := n.(type) {
			case int:
				out[k] = num
			case float64:
				out[k] = int(num)
			}
		}
	}
	return out
}

func toAnySlice(v any) []any {
	if t, ok := v.([]any); ok {
		return append([]any{}, t...)
	}
	return []any{}
}

func containsDiscovery(list []any, entry map[string]any) bool {
	for _, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if m["kind"] == entry["kind"] && m["name"] == entry["name"] &&
			m["origin"] == entry["origin"] && m["faction"] == entry["faction"] {
			return true
		}
	}
	return false
}
