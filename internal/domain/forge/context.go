package forge

// NewWorldState builds the initial simulation snapshot for a freshly
// generated world: tick zero, capital towns active, no rumors or
// history yet, faction records seeded from the graph.
func NewWorldState(seed WorldSeed, bible WorldBible, biomes BiomeMap, graph FactionGraph) WorldState {
	factions := make([]FactionState, 0, len(graph.Factions))
	for _, f := range graph.Factions {
		factions = append(factions, FactionState{
			FactionID:      f.ID,
			PowerLevel:     clampInt(f.PowerLevel, minStatePower, maxStatePower),
			TrustDelta:     0,
			LastActionTick: 0,
		})
	}
	return WorldState{
		SeedNumber:        seed.SeedNumber,
		WorldName:         bible.WorldName,
		Tick:              0,
		ActiveTowns:       append([]string{}, biomes.CapitalTowns...),
		ActiveRumors:      []string{},
		CollapsedDungeons: []string{},
		VillainEscalation: 0,
		Factions:          factions,
		History:           []HistoryEntry{},
	}
}

// Forge is the primary generation entry point: it resolves and
// validates the raw input, then derives the full campaign context.
// Pure and deterministic: the same input always yields a structurally
// identical context.
func Forge(raw ForgeInput) (CampaignContext, error) {
	in, err := ResolveInput(raw)
	if err != nil {
		return CampaignContext{}, err
	}

	tone := BuildToneVector(in)
	seed := BuildWorldSeed(in, tone)
	bible := GenerateWorldBible(seed)
	biomes := GenerateBiomeMap(seed)
	graph := GenerateFactionGraph(seed, bible, biomes)

	world := WorldContext{
		Bible:      bible,
		Biomes:     biomes,
		Factions:   graph,
		Creatures:  GenerateCreaturePools(seed, bible),
		NpcStyle:   GenerateNpcStyleRules(seed, bible),
		LootFlavor: GenerateLootFlavorProfile(seed, bible),
		Magic:      GenerateMagicRules(seed, bible),
		State:      NewWorldState(seed, bible, biomes, graph),
	}

	return CampaignContext{
		Version:     ContextVersion,
		Title:       in.Title,
		Description: in.Description,
		Seed:        seed,
		World:       world,
		DM: DMContext{
			Seed:                seed,
			Behavior:            GenerateDMBehaviorProfile(tone),
			NarrativeDirectives: append([]string{}, narrativeDirectives...),
			TacticalDirectives:  append([]string{}, tacticalDirectives...),
		},
	}, nil
}

// AdvanceCampaign applies one player world action to a campaign,
// returning a new context with only the world state replaced. The
// input context is never mutated.
func AdvanceCampaign(ctx CampaignContext, action PlayerWorldAction) (CampaignContext, error) {
	if err := ValidatePlayerWorldAction(action); err != nil {
		return CampaignContext{}, err
	}
	next := ctx
	next.World.State = EvolveWorldState(ctx.World.State, action)
	return next, nil
}
