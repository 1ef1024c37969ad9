package forge

import (
	"encoding/json"
	"testing"

	"worldforge/internal/domain/rng"
)

func baseInput() ForgeInput {
	return ForgeInput{
		Title:       "The Ashen Crown",
		Description: "A fallen empire rots under a cursed regency.",
		TonePreset:  "grimdark",
	}
}

func mustForge(t *testing.T, in ForgeInput) CampaignContext {
	t.Helper()
	ctx, err := Forge(in)
	if err != nil {
		t.Fatalf("forge failed: %v", err)
	}
	return ctx
}

func TestForge_DeterministicForSameInput(t *testing.T) {
	a := mustForge(t, baseInput())
	b := mustForge(t, baseInput())

	ja, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal a: %v", err)
	}
	jb, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal b: %v", err)
	}
	if string(ja) != string(jb) {
		t.Fatalf("same input produced different contexts")
	}
}

func TestForge_TitleChangesSeed(t *testing.T) {
	a := mustForge(t, baseInput())

	in := baseInput()
	in.Title = "The Gilded Crown"
	b := mustForge(t, in)

	if a.Seed.SeedNumber == b.Seed.SeedNumber {
		t.Fatalf("expected different seed numbers for different titles")
	}
	if a.World.Bible.WorldName == b.World.Bible.WorldName &&
		a.Seed.SeedString == b.Seed.SeedString {
		t.Fatalf("expected worlds to diverge")
	}
}

func TestForge_SeedNumberRange(t *testing.T) {
	titles := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}
	for _, title := range titles {
		in := baseInput()
		in.Title = title
		ctx := mustForge(t, in)
		sn := ctx.Seed.SeedNumber
		if sn < 1 || sn > 1<<31-1 {
			t.Fatalf("seed number out of range for %q: %d", title, sn)
		}
	}
}

func TestForge_ToneAxesClamped(t *testing.T) {
	in := baseInput()
	in.TonePreset = "gonzo_chaos"
	in.HumorLevel = intPtr(5)
	in.Lethality = LethalityBrutal
	in.CorruptionLevel = intPtr(5)
	in.DivineInterference = intPtr(5)
	ctx := mustForge(t, in)

	tone := ctx.Seed.Tone
	axes := []float64{
		tone.Darkness, tone.Whimsy, tone.Brutality, tone.Absurdity,
		tone.Cosmic, tone.Heroic, tone.Tragic, tone.Cozy,
	}
	for i, v := range axes {
		if v < 0 || v > 1 {
			t.Fatalf("tone axis %d out of range: %v", i, v)
		}
	}
}

func TestForge_FactionCountFollowsComplexity(t *testing.T) {
	cases := []struct {
		complexity FactionComplexity
		want       int
	}{
		{ComplexityLow, 4},
		{ComplexityMedium, 6},
		{ComplexityHigh, 8},
	}
	for _, tc := range cases {
		in := baseInput()
		in.FactionComplexity = tc.complexity
		ctx := mustForge(t, in)
		if got := len(ctx.World.Factions.Factions); got != tc.want {
			t.Fatalf("complexity %s: got %d factions, want %d", tc.complexity, got, tc.want)
		}
	}
}

func TestForge_RegionCountFollowsWorldSize(t *testing.T) {
	cases := []struct {
		size     WorldSize
		min, max int
	}{
		{SizeSmall, 5, 7},
		{SizeMedium, 8, 10},
		{SizeLarge, 11, 14},
	}
	for _, tc := range cases {
		in := baseInput()
		in.WorldSize = tc.size
		ctx := mustForge(t, in)
		got := len(ctx.World.Biomes.Regions)
		if got < tc.min || got > tc.max {
			t.Fatalf("size %s: got %d regions, want %d..%d", tc.size, got, tc.min, tc.max)
		}
	}
}

func TestForge_RelationMatrixProperties(t *testing.T) {
	ctx := mustForge(t, baseInput())
	graph := ctx.World.Factions

	for _, a := range graph.Factions {
		row, ok := graph.Relations[a.ID]
		if !ok {
			t.Fatalf("missing relation row for %s", a.ID)
		}
		if row[a.ID] != 100 {
			t.Fatalf("self relation for %s: got %d, want 100", a.ID, row[a.ID])
		}
		for _, b := range graph.Factions {
			score := row[b.ID]
			if score < -100 || score > 100 {
				t.Fatalf("relation %s->%s out of range: %d", a.ID, b.ID, score)
			}
			if graph.Relations[b.ID][a.ID] != score {
				t.Fatalf("relation %s/%s not symmetric", a.ID, b.ID)
			}
		}
	}
}

func TestForge_TensionFloorAndCap(t *testing.T) {
	in := baseInput()
	in.TonePreset = "cozy_hearth"
	in.FactionComplexity = ComplexityLow
	ctx := mustForge(t, in)

	tensions := ctx.World.Factions.ActiveTensions
	if len(tensions) < 2 {
		t.Fatalf("expected at least 2 active tensions, got %d", len(tensions))
	}
	if len(tensions) > 12 {
		t.Fatalf("expected at most 12 active tensions, got %d", len(tensions))
	}
}

func TestForge_FactionPowerLevels(t *testing.T) {
	ctx := mustForge(t, baseInput())
	for _, f := range ctx.World.Factions.Factions {
		if f.PowerLevel < 10 || f.PowerLevel > 95 {
			t.Fatalf("faction %s power out of range: %d", f.ID, f.PowerLevel)
		}
	}
	for _, fs := range ctx.World.State.Factions {
		if fs.PowerLevel < 1 || fs.PowerLevel > 120 {
			t.Fatalf("state power out of range for %s: %d", fs.FactionID, fs.PowerLevel)
		}
	}
}

func TestForge_InitialWorldState(t *testing.T) {
	ctx := mustForge(t, baseInput())
	state := ctx.World.State

	if state.Tick != 0 {
		t.Fatalf("fresh world tick: got %d, want 0", state.Tick)
	}
	if len(state.ActiveRumors) != 0 || len(state.History) != 0 {
		t.Fatalf("fresh world should carry no rumors or history")
	}
	if state.VillainEscalation != 0 {
		t.Fatalf("fresh world escalation: got %d, want 0", state.VillainEscalation)
	}
	if len(state.ActiveTowns) != len(ctx.World.Biomes.CapitalTowns) {
		t.Fatalf("active towns should start as the capital towns")
	}
	if len(state.Factions) != len(ctx.World.Factions.Factions) {
		t.Fatalf("state should track every faction")
	}
}

func TestForge_MinimalQuietFrontier(t *testing.T) {
	in := ForgeInput{
		Title:             "Test Realm",
		Description:       "A quiet frontier for new wardens.",
		TonePreset:        "cozy_hearth",
		Lethality:         LethalityLow,
		WorldSize:         SizeSmall,
		FactionComplexity: ComplexityLow,
	}
	ctx := mustForge(t, in)

	if ctx.Version != ContextVersion {
		t.Fatalf("version: got %q, want %q", ctx.Version, ContextVersion)
	}
	if got := len(ctx.World.Biomes.Regions); got < 5 || got > 7 {
		t.Fatalf("small world region count: %d", got)
	}
	if got := len(ctx.World.Factions.Factions); got != 4 {
		t.Fatalf("low complexity faction count: %d", got)
	}
	if got := len(ctx.World.Bible.CoreConflicts); got != 3 {
		t.Fatalf("low complexity core conflicts: %d", got)
	}
	if ctx.World.Bible.WorldName == "" {
		t.Fatalf("expected a world name")
	}
	if len(ctx.DM.NarrativeDirectives) == 0 || len(ctx.DM.TacticalDirectives) == 0 {
		t.Fatalf("expected DM directives")
	}
}

func TestForge_ThemeTagsCappedAndDeduped(t *testing.T) {
	in := baseInput()
	in.BlendPresets = []string{"gothic_horror", "cosmic_mystery", "mythic_tragedy"}
	in.CreatureFocus = []string{
		"undead", "aberrations", "constructs", "fiends", "dragons",
		"beasts", "elementals", "fey", "giants", "oozes",
	}
	ctx := mustForge(t, in)

	tags := ctx.Seed.ThemeTags
	if len(tags) > 36 {
		t.Fatalf("theme tags over cap: %d", len(tags))
	}
	seen := map[string]bool{}
	for _, tag := range tags {
		if seen[tag] {
			t.Fatalf("duplicate theme tag %q", tag)
		}
		seen[tag] = true
	}
}

func TestForge_BibleNameCountsFollowComplexity(t *testing.T) {
	in := baseInput()
	in.FactionComplexity = ComplexityHigh
	ctx := mustForge(t, in)

	if got := len(ctx.World.Bible.DominantFactionNames); got != 6 {
		t.Fatalf("dominant names: got %d, want 6", got)
	}
	if got := len(ctx.World.Bible.MinorFactionNames); got != 7 {
		t.Fatalf("minor names: got %d, want 7", got)
	}
}

func TestForge_RegionsHaveTownsAndBiomes(t *testing.T) {
	ctx := mustForge(t, baseInput())
	biomes := ctx.World.Biomes

	if len(biomes.CapitalTowns) != len(biomes.Regions) {
		t.Fatalf("expected one capital town per region")
	}
	for _, r := range biomes.Regions {
		if r.Name == "" || r.DominantBiome == "" || r.CapitalTown == "" {
			t.Fatalf("region %s incomplete: %+v", r.ID, r)
		}
		if r.Corruption < 0 || r.Corruption > 1 {
			t.Fatalf("region %s corruption out of range: %v", r.ID, r.Corruption)
		}
	}
	if len(biomes.CorruptionZones) < 1 {
		t.Fatalf("expected at least one corruption zone")
	}
}

func TestCorruptionZones_FallbackWhenNoneReachCutoff(t *testing.T) {
	regions := []Region{
		{ID: "region-1", Name: "Upper Rolling Farmland", Corruption: 0.21},
		{ID: "region-2", Name: "Lower Blighted Marsh", Corruption: 0.54},
		{ID: "region-3", Name: "Old Ashen Wastes", Corruption: 0.33},
	}

	zones := corruptionZones(regions)
	if len(zones) != 1 {
		t.Fatalf("expected exactly one fallback zone, got %d", len(zones))
	}
	if zones[0].RegionID != "region-2" {
		t.Fatalf("expected most-corrupted region, got %q", zones[0].RegionID)
	}
	if zones[0].Severity != 0.54 {
		t.Fatalf("severity mismatch: got %v", zones[0].Severity)
	}
}

func TestCorruptionZones_KeepsTopThirdAboveCutoff(t *testing.T) {
	regions := []Region{
		{ID: "region-1", Corruption: 0.90},
		{ID: "region-2", Corruption: 0.60},
		{ID: "region-3", Corruption: 0.75},
		{ID: "region-4", Corruption: 0.10},
		{ID: "region-5", Corruption: 0.20},
		{ID: "region-6", Corruption: 0.30},
	}

	zones := corruptionZones(regions)
	if len(zones) != 2 {
		t.Fatalf("expected top third of six regions, got %d zones", len(zones))
	}
	if zones[0].RegionID != "region-1" || zones[1].RegionID != "region-3" {
		t.Fatalf("expected most severe zones first, got %v", zones)
	}
}

func TestBiomeWeights_HintBoostsNamedBiome(t *testing.T) {
	plain := biomeWeights(baselineTone, "")
	hinted := biomeWeights(baselineTone, "out in the ashen wastes")

	weightOf := func(weights []rng.Weighted[string], name string) float64 {
		for _, w := range weights {
			if w.Item == name {
				return w.Weight
			}
		}
		t.Fatalf("biome %q not in pool", name)
		return 0
	}
	if weightOf(hinted, "ashen wastes") != weightOf(plain, "ashen wastes")+6 {
		t.Fatalf("hint should add a flat bonus to the named biome")
	}
}

func TestForge_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		in   ForgeInput
	}{
		{"missing title", ForgeInput{Description: "d"}},
		{"missing description", ForgeInput{Title: "t"}},
		{"unknown preset", ForgeInput{Title: "t", Description: "d", TonePreset: "nope"}},
		{"humor out of range", ForgeInput{Title: "t", Description: "d", HumorLevel: intPtr(9)}},
		{"bad lethality", ForgeInput{Title: "t", Description: "d", Lethality: "apocalyptic"}},
	}
	for _, tc := range cases {
		if _, err := Forge(tc.in); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
