package forge

import (
	"encoding/json"
	"strings"
)

type RandomizationMode string

const (
	ModeFixed             RandomizationMode = "fixed"
	ModeThemeLockedRandom RandomizationMode = "themeLockedRandom"
	ModeFullyRandom       RandomizationMode = "fullyRandom"
)

type Lethality string

const (
	LethalityLow    Lethality = "low"
	LethalityMedium Lethality = "medium"
	LethalityHigh   Lethality = "high"
	LethalityBrutal Lethality = "brutal"
)

type MagicDensity string

const (
	MagicLow    MagicDensity = "low"
	MagicNormal MagicDensity = "normal"
	MagicHigh   MagicDensity = "high"
	MagicWild   MagicDensity = "wild"
)

type TechLevel string

const (
	TechPrimitive   TechLevel = "primitive"
	TechMedieval    TechLevel = "medieval"
	TechRenaissance TechLevel = "renaissance"
	TechIndustrial  TechLevel = "industrial"
	TechArcanotech  TechLevel = "arcanotech"
)

type FactionComplexity string

const (
	ComplexityLow    FactionComplexity = "low"
	ComplexityMedium FactionComplexity = "medium"
	ComplexityHigh   FactionComplexity = "high"
)

type WorldSize string

const (
	SizeSmall  WorldSize = "small"
	SizeMedium WorldSize = "medium"
	SizeLarge  WorldSize = "large"
)

// SeedToken is a manual seed override. Callers may send it as either a
// JSON string or a JSON number; both normalize to the string form that
// feeds seed derivation.
type SeedToken string

func (s *SeedToken) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" {
		*s = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = SeedToken(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = SeedToken(n.String())
	return nil
}

// ForgeInput is the caller-supplied campaign seed. Title and
// description are required; every other field is a style knob the
// resolver fills in according to the randomization mode.
type ForgeInput struct {
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	TonePreset         string            `json:"tone_preset,omitempty"`
	BlendPresets       []string          `json:"blend_presets,omitempty"`
	HumorLevel         *int              `json:"humor_level,omitempty"`
	Lethality          Lethality         `json:"lethality,omitempty"`
	MagicDensity       MagicDensity      `json:"magic_density,omitempty"`
	TechLevel          TechLevel         `json:"tech_level,omitempty"`
	FactionComplexity  FactionComplexity `json:"faction_complexity,omitempty"`
	WorldSize          WorldSize         `json:"world_size,omitempty"`
	CreatureFocus      []string          `json:"creature_focus,omitempty"`
	StartingRegionHint string            `json:"starting_region_hint,omitempty"`
	VillainArchetype   string            `json:"villain_archetype,omitempty"`
	CorruptionLevel    *int              `json:"corruption_level,omitempty"`
	DivineInterference *int              `json:"divine_interference,omitempty"`
	RandomizationMode  RandomizationMode `json:"randomization_mode,omitempty"`
	PlayerToggles      map[string]bool   `json:"player_toggles,omitempty"`
	ManualSeed         SeedToken         `json:"manual_seed,omitempty"`
}

// ActionImpact carries the four impact scalars of a player world
// action. Callers are responsible for sane magnitudes; evolution only
// clamps results, never rejects impacts.
type ActionImpact struct {
	Moral      float64 `json:"moral"`
	Generosity float64 `json:"generosity"`
	Chaos      float64 `json:"chaos"`
	Brutality  float64 `json:"brutality"`
}

// PlayerWorldAction is one discrete player action driving a world tick.
type PlayerWorldAction struct {
	Type            string       `json:"type"`
	Summary         string       `json:"summary"`
	TargetFactionID string       `json:"target_faction_id,omitempty"`
	Tags            []string     `json:"tags,omitempty"`
	Impact          ActionImpact `json:"impact"`
}

// CharacterForgeInput binds a new character into an existing world.
// Every field is optional; unset fields resolve from the campaign seed.
type CharacterForgeInput struct {
	Name              string   `json:"name,omitempty"`
	OriginRegion      string   `json:"origin_region,omitempty"`
	Faction           string   `json:"faction,omitempty"`
	Background        string   `json:"background,omitempty"`
	PersonalityTraits []string `json:"personality_traits,omitempty"`
	MoralLeaning      *float64 `json:"moral_leaning,omitempty"`
}
