package forge

import (
	"sort"
	"strings"
)

// baselineTone is the fixed starting vector before any preset blending.
var baselineTone = ToneVector{
	Darkness: 0.40, Whimsy: 0.30, Brutality: 0.35, Absurdity: 0.25,
	Cosmic: 0.30, Heroic: 0.50, Tragic: 0.35, Cozy: 0.30,
}

const (
	blendOldWeight = 0.64
	blendNewWeight = 0.36
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampTone(t ToneVector) ToneVector {
	t.Darkness = clamp01(t.Darkness)
	t.Whimsy = clamp01(t.Whimsy)
	t.Brutality = clamp01(t.Brutality)
	t.Absurdity = clamp01(t.Absurdity)
	t.Cosmic = clamp01(t.Cosmic)
	t.Heroic = clamp01(t.Heroic)
	t.Tragic = clamp01(t.Tragic)
	t.Cozy = clamp01(t.Cozy)
	return t
}

func blendAxis(old, target float64) float64 {
	return blendOldWeight*old + blendNewWeight*target
}

func blendToward(t ToneVector, bias ToneVector) ToneVector {
	return ToneVector{
		Darkness:  blendAxis(t.Darkness, bias.Darkness),
		Whimsy:    blendAxis(t.Whimsy, bias.Whimsy),
		Brutality: blendAxis(t.Brutality, bias.Brutality),
		Absurdity: blendAxis(t.Absurdity, bias.Absurdity),
		Cosmic:    blendAxis(t.Cosmic, bias.Cosmic),
		Heroic:    blendAxis(t.Heroic, bias.Heroic),
		Tragic:    blendAxis(t.Tragic, bias.Tragic),
		Cozy:      blendAxis(t.Cozy, bias.Cozy),
	}
}

// PresetTrace returns the ordered, deduplicated list of presets a
// resolved input applies: the caller's tone preset always first, then
// the blend presets in caller order.
func PresetTrace(in ForgeInput) []string {
	trace := make([]string, 0, 1+len(in.BlendPresets))
	seen := map[string]struct{}{}
	add := func(id string) {
		if id == "" {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		if _, known := tonePresets[id]; !known {
			return
		}
		seen[id] = struct{}{}
		trace = append(trace, id)
	}
	add(in.TonePreset)
	for _, p := range in.BlendPresets {
		add(p)
	}
	return trace
}

// BuildToneVector blends the preset trace into the baseline, then
// applies toggle adjustments in a fixed order. Order matters for
// clamping edge cases, so adjustments always run: humor, lethality,
// magic density, tech level, corruption, divine interference, boolean
// toggles.
func BuildToneVector(in ForgeInput) ToneVector {
	t := baselineTone
	for _, id := range PresetTrace(in) {
		t = blendToward(t, tonePresets[id].Bias)
	}

	humor := 0.0
	if in.HumorLevel != nil {
		humor = float64(*in.HumorLevel) / 5.0
	}
	t.Whimsy += 0.30 * humor
	t.Absurdity += 0.22 * humor
	t.Darkness -= 0.18 * humor
	t.Cozy += 0.12 * humor

	switch in.Lethality {
	case LethalityLow:
		t.Brutality -= 0.12
		t.Darkness -= 0.06
		t.Cozy += 0.08
	case LethalityHigh:
		t.Brutality += 0.14
		t.Darkness += 0.08
		t.Cozy -= 0.06
	case LethalityBrutal:
		t.Brutality += 0.26
		t.Darkness += 0.16
		t.Cozy -= 0.12
	}

	switch in.MagicDensity {
	case MagicWild:
		t.Cosmic += 0.18
		t.Absurdity += 0.14
	case MagicHigh:
		t.Cosmic += 0.10
		t.Absurdity += 0.05
	case MagicLow:
		t.Cosmic -= 0.08
	}

	switch in.TechLevel {
	case TechPrimitive:
		t.Cozy -= 0.04
		t.Heroic += 0.04
	case TechMedieval:
		t.Cozy += 0.04
	case TechRenaissance:
		t.Heroic += 0.04
		t.Absurdity += 0.02
	case TechIndustrial:
		t.Cozy -= 0.06
		t.Cosmic += 0.04
	case TechArcanotech:
		t.Cosmic += 0.10
		t.Absurdity += 0.06
	}

	if in.CorruptionLevel != nil {
		c := float64(*in.CorruptionLevel)
		t.Darkness += 0.05 * c
		t.Tragic += 0.04 * c
		t.Cozy -= 0.03 * c
	}
	if in.DivineInterference != nil {
		d := float64(*in.DivineInterference)
		t.Cosmic += 0.05 * d
		t.Heroic += 0.03 * d
		t.Tragic += 0.02 * d
	}

	for _, key := range sortedToggleKeys(in.PlayerToggles) {
		if !in.PlayerToggles[key] {
			continue
		}
		token := strings.ToLower(key)
		if strings.Contains(token, "hard") || strings.Contains(token, "nightmare") {
			t.Darkness += 0.10
			t.Brutality += 0.08
		}
		if strings.Contains(token, "cozy") || strings.Contains(token, "relax") {
			t.Cozy += 0.12
			t.Darkness -= 0.08
		}
		if strings.Contains(token, "chaos") || strings.Contains(token, "wild") {
			t.Absurdity += 0.10
			t.Cosmic += 0.06
		}
		if strings.Contains(token, "hero") || strings.Contains(token, "story") {
			t.Heroic += 0.10
			t.Tragic += 0.04
		}
	}

	return clampTone(t)
}

func sortedToggleKeys(toggles map[string]bool) []string {
	keys := make([]string, 0, len(toggles))
	for k := range toggles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
