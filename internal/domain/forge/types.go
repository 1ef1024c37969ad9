package forge

// ContextVersion tags every generated campaign document.
const ContextVersion = "worldforge/1"

// ToneVector is the 8-axis aesthetic bias steering every downstream
// generator. Each axis stays in [0,1] after every derivation step.
type ToneVector struct {
	Darkness  float64 `json:"darkness"`
	Whimsy    float64 `json:"whimsy"`
	Brutality float64 `json:"brutality"`
	Absurdity float64 `json:"absurdity"`
	Cosmic    float64 `json:"cosmic"`
	Heroic    float64 `json:"heroic"`
	Tragic    float64 `json:"tragic"`
	Cozy      float64 `json:"cozy"`
}

// WorldSeed is the resolved, hashed, deterministic seed record.
// Immutable once built: identical inputs always yield an identical
// WorldSeed.
type WorldSeed struct {
	Version     int        `json:"version"`
	SeedString  string     `json:"seed_string"`
	SeedNumber  int64      `json:"seed_number"`
	ThemeTags   []string   `json:"theme_tags"`
	Tone        ToneVector `json:"tone"`
	PresetTrace []string   `json:"preset_trace"`
	Input       ForgeInput `json:"input"`
}

// BiomeNote pairs a biome with its narrative description.
type BiomeNote struct {
	Biome       string `json:"biome"`
	Description string `json:"description"`
}

// NamingRules are the seeded syllable pools downstream name generation
// draws from.
type NamingRules struct {
	Style    string   `json:"style"`
	Prefixes []string `json:"prefixes"`
	Suffixes []string `json:"suffixes"`
}

// WorldBible is the narrative reference material for a world.
type WorldBible struct {
	WorldName            string      `json:"world_name"`
	CosmologyRules       []string    `json:"cosmology_rules"`
	MagicFlavor          string      `json:"magic_flavor"`
	CoreConflicts        []string    `json:"core_conflicts"`
	DominantFactionNames []string    `json:"dominant_faction_names"`
	MinorFactionNames    []string    `json:"minor_faction_names"`
	BiomeDescriptions    []BiomeNote `json:"biome_descriptions"`
	CreatureArchetypes   []string    `json:"creature_archetypes"`
	NpcSpeechStyle       string      `json:"npc_speech_style"`
	NamingRules          NamingRules `json:"naming_rules"`
	LootFlavors          []string    `json:"loot_flavors"`
	MoralClimate         string      `json:"moral_climate"`
}

// Region is one partition of the world map.
type Region struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	DominantBiome  string   `json:"dominant_biome"`
	Corruption     float64  `json:"corruption"`
	DungeonDensity float64  `json:"dungeon_density"`
	TownDensity    float64  `json:"town_density"`
	CapitalTown    string   `json:"capital_town"`
	Tags           []string `json:"tags"`
}

// CorruptionZone marks a region hostile enough to surface narratively.
type CorruptionZone struct {
	RegionID   string  `json:"region_id"`
	RegionName string  `json:"region_name"`
	Severity   float64 `json:"severity"`
}

// BiomeMap is the spatial partition of the world.
type BiomeMap struct {
	WorldSize          WorldSize        `json:"world_size"`
	Regions            []Region         `json:"regions"`
	CorruptionZones    []CorruptionZone `json:"corruption_zones"`
	CapitalTowns       []string         `json:"capital_towns"`
	MeanDungeonDensity float64          `json:"mean_dungeon_density"`
}

// MoralAlignment is a faction's three-axis moral vector, each axis in
// [-1,1].
type MoralAlignment struct {
	Order    float64 `json:"order"`
	Mercy    float64 `json:"mercy"`
	Ambition float64 `json:"ambition"`
}

// Faction is one simulated political faction.
type Faction struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Ideology     string         `json:"ideology"`
	Alignment    MoralAlignment `json:"moral_alignment"`
	PowerLevel   int            `json:"power_level"`
	HomeRegionID string         `json:"home_region_id"`
	Goals        []string       `json:"goals"`
}

// FactionGraph holds the factions, their symmetric relation matrix
// (scores in [-100,100], self-relation 100), and the ranked active
// tensions.
type FactionGraph struct {
	Factions       []Faction                 `json:"factions"`
	Relations      map[string]map[string]int `json:"relations"`
	ActiveTensions []string                  `json:"active_tensions"`
}

// CreaturePools are the seeded creature rosters by threat band.
type CreaturePools struct {
	Common []string `json:"common"`
	Elite  []string `json:"elite"`
	Boss   []string `json:"boss"`
}

// NpcStyleRules bias NPC dialogue rendering outside this engine.
type NpcStyleRules struct {
	SpeechStyle  string   `json:"speech_style"`
	Formality    float64  `json:"formality"`
	AddressStyle string   `json:"address_style"`
	SpeechTics   []string `json:"speech_tics"`
}

// LootFlavorProfile biases loot naming and rarity outside this engine.
type LootFlavorProfile struct {
	FlavorPool   []string `json:"flavor_pool"`
	RarityBias   float64  `json:"rarity_bias"`
	CursedChance float64  `json:"cursed_chance"`
}

// MagicRules describe how magic behaves in the world.
type MagicRules struct {
	Flavor      string       `json:"flavor"`
	Density     MagicDensity `json:"density"`
	WildSurges  bool         `json:"wild_surges"`
	CastingCost string       `json:"casting_cost"`
	Schools     []string     `json:"schools"`
}

// DMBehaviorProfile is the bias vector consumed by narrative logic.
// Every axis is in [0,1].
type DMBehaviorProfile struct {
	Aggression       float64 `json:"aggression"`
	Mercy            float64 `json:"mercy"`
	TwistFrequency   float64 `json:"twist_frequency"`
	PacingSpeed      float64 `json:"pacing_speed"`
	DescriptionDepth float64 `json:"description_depth"`
	ComedyBias       float64 `json:"comedy_bias"`
}

// FactionState is the evolving per-faction simulation record.
type FactionState struct {
	FactionID      string `json:"faction_id"`
	PowerLevel     int    `json:"power_level"`
	TrustDelta     int    `json:"trust_delta"`
	LastActionTick int64  `json:"last_action_tick"`
}

// HistoryEntry records one applied world action.
type HistoryEntry struct {
	Tick       int64        `json:"tick"`
	ActionType string       `json:"action_type"`
	Summary    string       `json:"summary"`
	Impact     ActionImpact `json:"impact"`
}

// WorldState is the tick-advancing simulation snapshot. It is created
// once per campaign and replaced (never mutated) by evolution.
type WorldState struct {
	SeedNumber        int64          `json:"seed_number"`
	WorldName         string         `json:"world_name"`
	Tick              int64          `json:"tick"`
	ActiveTowns       []string       `json:"active_towns"`
	ActiveRumors      []string       `json:"active_rumors"`
	CollapsedDungeons []string       `json:"collapsed_dungeons"`
	VillainEscalation int            `json:"villain_escalation"`
	Factions          []FactionState `json:"factions"`
	History           []HistoryEntry `json:"history"`
}

// WorldContext groups everything generated about the world itself.
type WorldContext struct {
	Bible      WorldBible        `json:"bible"`
	Biomes     BiomeMap          `json:"biomes"`
	Factions   FactionGraph      `json:"factions"`
	Creatures  CreaturePools     `json:"creatures"`
	NpcStyle   NpcStyleRules     `json:"npc_style"`
	LootFlavor LootFlavorProfile `json:"loot_flavor"`
	Magic      MagicRules        `json:"magic"`
	State      WorldState        `json:"state"`
}

// DMContext groups what the game-master layer consumes.
type DMContext struct {
	Seed                WorldSeed         `json:"seed"`
	Behavior            DMBehaviorProfile `json:"behavior"`
	NarrativeDirectives []string          `json:"narrative_directives"`
	TacticalDirectives  []string          `json:"tactical_directives"`
}

// CampaignContext is the full aggregate returned by generation.
type CampaignContext struct {
	Version     string       `json:"version"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Seed        WorldSeed    `json:"seed"`
	World       WorldContext `json:"world"`
	DM          DMContext    `json:"dm"`
}

// CharacterForgeOutput is the binding of one new character into an
// existing world. The caller merges it into its own runtime state.
type CharacterForgeOutput struct {
	CharacterName     string         `json:"character_name"`
	OriginRegionID    string         `json:"origin_region_id"`
	OriginRegionName  string         `json:"origin_region_name"`
	FactionID         string         `json:"faction_alignment_id"`
	FactionName       string         `json:"faction_alignment_name"`
	Background        string         `json:"background"`
	PersonalityTraits []string       `json:"personality_traits"`
	MoralLeaning      float64        `json:"moral_leaning"`
	StartingTown      string         `json:"starting_town"`
	NpcRelationships  map[string]int `json:"starting_npc_relationships"`
	FactionTrust      map[string]int `json:"initial_faction_trust"`
	StartingRumors    []string       `json:"starting_rumors"`
	StartingFlags     []string       `json:"starting_flags"`
}

// RuntimeState is the loosely-typed narrative state bag owned by the
// UI/board layer. The merge helper reads and writes only the keys it
// documents and assumes nothing else about the shape.
type RuntimeState map[string]any
