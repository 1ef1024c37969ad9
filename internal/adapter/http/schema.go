package httpadapter

import "github.com/santhosh-tekuri/jsonschema/v5"

// forgeInputSchema guards the campaign creation payload before it
// reaches the engine, so malformed shapes fail with a schema path
// instead of a decode error.
const forgeInputSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["title", "description"],
  "additionalProperties": false,
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "description": {"type": "string", "minLength": 1},
    "tone_preset": {"type": "string"},
    "blend_presets": {"type": "array", "items": {"type": "string"}, "maxItems": 8},
    "humor_level": {"type": "integer", "minimum": 0, "maximum": 5},
    "lethality": {"enum": ["low", "medium", "high", "brutal"]},
    "magic_density": {"enum": ["low", "normal", "high", "wild"]},
    "tech_level": {"enum": ["primitive", "medieval", "renaissance", "industrial", "arcanotech"]},
    "faction_complexity": {"enum": ["low", "medium", "high"]},
    "world_size": {"enum": ["small", "medium", "large"]},
    "creature_focus": {"type": "array", "items": {"type": "string"}, "maxItems": 24},
    "starting_region_hint": {"type": "string"},
    "villain_archetype": {"type": "string"},
    "corruption_level": {"type": "integer", "minimum": 0, "maximum": 5},
    "divine_interference": {"type": "integer", "minimum": 0, "maximum": 5},
    "randomization_mode": {"enum": ["fixed", "themeLockedRandom", "fullyRandom"]},
    "player_toggles": {"type": "object", "additionalProperties": {"type": "boolean"}},
    "manual_seed": {"type": ["string", "integer"]}
  }
}`

var compiledForgeInputSchema = jsonschema.MustCompileString("forge_input.json", forgeInputSchema)
