package forge

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestForgeCharacter_Deterministic(t *testing.T) {
	ctx := mustForge(t, baseInput())
	in := CharacterForgeInput{Name: "Ser Halvard"}

	a, err := ForgeCharacter(ctx, in)
	if err != nil {
		t.Fatalf("forge character: %v", err)
	}
	b, err := ForgeCharacter(ctx, in)
	if err != nil {
		t.Fatalf("forge character: %v", err)
	}

	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if string(ja) != string(jb) {
		t.Fatalf("same character input produced different bindings")
	}
}

func TestForgeCharacter_DifferentNamesDiverge(t *testing.T) {
	ctx := mustForge(t, baseInput())

	a, err := ForgeCharacter(ctx, CharacterForgeInput{Name: "Ser Halvard"})
	if err != nil {
		t.Fatalf("forge character: %v", err)
	}
	b, err := ForgeCharacter(ctx, CharacterForgeInput{Name: "Mirelle of the Reeds"})
	if err != nil {
		t.Fatalf("forge character: %v", err)
	}

	ja, _ := json.Marshal(a.NpcRelationships)
	jb, _ := json.Marshal(b.NpcRelationships)
	if a.CharacterName == b.CharacterName || string(ja) == string(jb) {
		t.Fatalf("two characters in one world should not share a binding")
	}
}

func TestForgeCharacter_BindingContract(t *testing.T) {
	ctx := mustForge(t, baseInput())
	out, err := ForgeCharacter(ctx, CharacterForgeInput{Name: "Ser Halvard"})
	if err != nil {
		t.Fatalf("forge character: %v", err)
	}

	regionOK := false
	for _, r := range ctx.World.Biomes.Regions {
		if r.ID == out.OriginRegionID {
			regionOK = true
			if out.StartingTown != r.CapitalTown {
				t.Fatalf("starting town should be the origin capital")
			}
		}
	}
	if !regionOK {
		t.Fatalf("origin region %q not in world", out.OriginRegionID)
	}

	factionOK := false
	for _, f := range ctx.World.Factions.Factions {
		if f.ID == out.FactionID {
			factionOK = true
		}
	}
	if !factionOK {
		t.Fatalf("faction %q not in world", out.FactionID)
	}

	if len(out.NpcRelationships) != 3 {
		t.Fatalf("npc relationships: got %d, want 3", len(out.NpcRelationships))
	}
	for name, score := range out.NpcRelationships {
		if name == "" || score < -100 || score > 100 {
			t.Fatalf("bad relationship %q=%d", name, score)
		}
	}

	if len(out.FactionTrust) != len(ctx.World.Factions.Factions) {
		t.Fatalf("trust map should cover every faction")
	}
	if out.FactionTrust[out.FactionID] <= out.FactionTrust[otherFactionID(ctx, out.FactionID)] {
		t.Fatalf("aligned faction should start with the highest trust")
	}

	if out.MoralLeaning < -1 || out.MoralLeaning > 1 {
		t.Fatalf("moral leaning out of range: %v", out.MoralLeaning)
	}
	if len(out.PersonalityTraits) != 3 {
		t.Fatalf("traits: got %d, want 3", len(out.PersonalityTraits))
	}
	if len(out.StartingRumors) == 0 || len(out.StartingRumors) > 6 {
		t.Fatalf("starting rumors: got %d, want 1..6", len(out.StartingRumors))
	}
	if len(out.StartingFlags) == 0 || len(out.StartingFlags) > 10 {
		t.Fatalf("starting flags: got %d, want 1..10", len(out.StartingFlags))
	}
}

func otherFactionID(ctx CampaignContext, not string) string {
	for _, f := range ctx.World.Factions.Factions {
		if f.ID != not {
			return f.ID
		}
	}
	return ""
}

func TestForgeCharacter_HonorsCallerChoices(t *testing.T) {
	ctx := mustForge(t, baseInput())
	region := ctx.World.Biomes.Regions[1]
	faction := ctx.World.Factions.Factions[2]
	leaning := -0.75

	out, err := ForgeCharacter(ctx, CharacterForgeInput{
		Name:              "Vex",
		OriginRegion:      strings.ToUpper(region.Name),
		Faction:           faction.Name,
		Background:        "disgraced toll collector",
		PersonalityTraits: []string{"wary", "meticulous"},
		MoralLeaning:      &leaning,
	})
	if err != nil {
		t.Fatalf("forge character: %v", err)
	}

	if out.OriginRegionID != region.ID {
		t.Fatalf("origin: got %q, want %q", out.OriginRegionID, region.ID)
	}
	if out.FactionID != faction.ID {
		t.Fatalf("faction: got %q, want %q", out.FactionID, faction.ID)
	}
	if out.Background != "disgraced toll collector" {
		t.Fatalf("background overridden: %q", out.Background)
	}
	if len(out.PersonalityTraits) != 2 || out.PersonalityTraits[0] != "wary" {
		t.Fatalf("traits overridden: %v", out.PersonalityTraits)
	}
	if out.MoralLeaning != leaning {
		t.Fatalf("moral leaning: got %v, want %v", out.MoralLeaning, leaning)
	}
}

func TestForgeCharacter_UnknownReferencesFallBack(t *testing.T) {
	ctx := mustForge(t, baseInput())
	out, err := ForgeCharacter(ctx, CharacterForgeInput{
		Name:         "Drift",
		OriginRegion: "the moon",
		Faction:      "the unheard-of syndicate",
	})
	if err != nil {
		t.Fatalf("forge character: %v", err)
	}
	if out.OriginRegionID == "" || out.FactionID == "" {
		t.Fatalf("fallback should still bind a region and faction")
	}
}

func TestForgeCharacter_RejectsBadLeaning(t *testing.T) {
	ctx := mustForge(t, baseInput())
	leaning := 2.0
	if _, err := ForgeCharacter(ctx, CharacterForgeInput{Name: "X", MoralLeaning: &leaning}); err == nil {
		t.Fatalf("expected validation error for out-of-range leaning")
	}
}

func TestMergeCharacter_IdempotentAndNonDestructive(t *testing.T) {
	ctx := mustForge(t, baseInput())
	out, err := ForgeCharacter(ctx, CharacterForgeInput{Name: "Ser Halvard"})
	if err != nil {
		t.Fatalf("forge character: %v", err)
	}

	state := RuntimeState{
		"rumors":    []string{"an old rumor survives"},
		"quest_log": []string{"find the regent's seal"},
		"gold_owed": 40,
	}

	once := MergeCharacter(state, out)
	twice := MergeCharacter(once, out)

	ja, _ := json.Marshal(once)
	jb, _ := json.Marshal(twice)
	if string(ja) != string(jb) {
		t.Fatalf("second merge of the same binding should be a no-op")
	}

	rumors := once["rumors"].([]string)
	if rumors[0] != "an old rumor survives" {
		t.Fatalf("existing rumors must survive the merge")
	}
	if len(rumors) < 2 {
		t.Fatalf("starting rumors should be folded in")
	}
	if once["gold_owed"] != 40 {
		t.Fatalf("unrelated keys must pass through untouched")
	}
	if _, ok := once["quest_log"]; !ok {
		t.Fatalf("unrelated keys must pass through untouched")
	}

	rels := once["npc_relationships"].(map[string]int)
	if len(rels) != len(out.NpcRelationships) {
		t.Fatalf("relationships not merged")
	}

	discoveries := once["discoveries"].([]any)
	if len(discoveries) != 1 {
		t.Fatalf("expected one discovery entry, got %d", len(discoveries))
	}
}

func TestMergeCharacter_ToleratesJSONShapedState(t *testing.T) {
	ctx := mustForge(t, baseInput())
	out, err := ForgeCharacter(ctx, CharacterForgeInput{Name: "Ser Halvard"})
	if err != nil {
		t.Fatalf("forge character: %v", err)
	}

	// State that went through a JSON round trip carries []any and
	// float64 values instead of the native types.
	state := RuntimeState{
		"rumors":            []any{"an old rumor survives"},
		"npc_relationships": map[string]any{"Old Maren": float64(12)},
	}
	merged := MergeCharacter(state, out)

	rumors := merged["rumors"].([]string)
	if rumors[0] != "an old rumor survives" {
		t.Fatalf("round-tripped rumors lost: %v", rumors)
	}
	rels := merged["npc_relationships"].(map[string]int)
	if rels["Old Maren"] != 12 {
		t.Fatalf("round-tripped relationship lost: %v", rels)
	}
}
