package forge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is the sentinel every ValidationError unwraps to.
var ErrValidation = errors.New("invalid forge input")

// ValidationError reports the first schema constraint a raw input
// violates, naming the offending field path.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func fieldErr(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func validLevel(v *int) bool {
	return v == nil || (*v >= 0 && *v <= 5)
}

// ValidateForgeInput checks a raw ForgeInput against its schema.
// Optional fields are only checked when set; the resolver fills the
// rest.
func ValidateForgeInput(in ForgeInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fieldErr("title", "required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return fieldErr("description", "required")
	}
	if in.TonePreset != "" {
		if _, ok := tonePresets[in.TonePreset]; !ok {
			return fieldErr("tone_preset", "unknown preset "+in.TonePreset)
		}
	}
	for i, p := range in.BlendPresets {
		if _, ok := tonePresets[p]; !ok {
			return fieldErr(fmt.Sprintf("blend_presets[%d]", i), "unknown preset "+p)
		}
	}
	if !validLevel(in.HumorLevel) {
		return fieldErr("humor_level", "must be in [0,5]")
	}
	if !validLevel(in.CorruptionLevel) {
		return fieldErr("corruption_level", "must be in [0,5]")
	}
	if !validLevel(in.DivineInterference) {
		return fieldErr("divine_interference", "must be in [0,5]")
	}
	switch in.Lethality {
	case "", LethalityLow, LethalityMedium, LethalityHigh, LethalityBrutal:
	default:
		return fieldErr("lethality", "unknown tier "+string(in.Lethality))
	}
	switch in.MagicDensity {
	case "", MagicLow, MagicNormal, MagicHigh, MagicWild:
	default:
		return fieldErr("magic_density", "unknown density "+string(in.MagicDensity))
	}
	switch in.TechLevel {
	case "", TechPrimitive, TechMedieval, TechRenaissance, TechIndustrial, TechArcanotech:
	default:
		return fieldErr("tech_level", "unknown level "+string(in.TechLevel))
	}
	switch in.FactionComplexity {
	case "", ComplexityLow, ComplexityMedium, ComplexityHigh:
	default:
		return fieldErr("faction_complexity", "unknown complexity "+string(in.FactionComplexity))
	}
	switch in.WorldSize {
	case "", SizeSmall, SizeMedium, SizeLarge:
	default:
		return fieldErr("world_size", "unknown size "+string(in.WorldSize))
	}
	switch in.RandomizationMode {
	case "", ModeFixed, ModeThemeLockedRandom, ModeFullyRandom:
	default:
		return fieldErr("randomization_mode", "unknown mode "+string(in.RandomizationMode))
	}
	for i, c := range in.CreatureFocus {
		if strings.TrimSpace(c) == "" {
			return fieldErr(fmt.Sprintf("creature_focus[%d]", i), "must not be blank")
		}
	}
	return nil
}

// ValidatePlayerWorldAction checks a raw action. Impact magnitudes are
// the caller's responsibility; evolution clamps, it never rejects.
func ValidatePlayerWorldAction(a PlayerWorldAction) error {
	if strings.TrimSpace(a.Type) == "" {
		return fieldErr("type", "required")
	}
	if strings.TrimSpace(a.Summary) == "" {
		return fieldErr("summary", "required")
	}
	return nil
}

// ValidateCharacterForgeInput checks a raw character input.
func ValidateCharacterForgeInput(in CharacterForgeInput) error {
	if in.MoralLeaning != nil && (*in.MoralLeaning < -1 || *in.MoralLeaning > 1) {
		return fieldErr("moral_leaning", "must be in [-1,1]")
	}
	for i, tr := range in.PersonalityTraits {
		if strings.TrimSpace(tr) == "" {
			return fieldErr(fmt.Sprintf("personality_traits[%d]", i), "must not be blank")
		}
	}
	return nil
}
