package forge

// tonePreset is one named aesthetic anchor. Blending pulls the working
// tone vector toward Bias axis by axis; CreatureBias seeds the
// creature focus when the caller leaves it unset.
type tonePreset struct {
	Bias         ToneVector
	CreatureBias []string
}

const defaultPresetID = "classic_fantasy"

var tonePresets = map[string]tonePreset{
	"classic_fantasy": {
		Bias:         ToneVector{Darkness: 0.35, Whimsy: 0.40, Brutality: 0.30, Absurdity: 0.25, Cosmic: 0.25, Heroic: 0.65, Tragic: 0.30, Cozy: 0.45},
		CreatureBias: []string{"dire wolf", "stone troll", "ember drake"},
	},
	"grimdark": {
		Bias:         ToneVector{Darkness: 0.85, Whimsy: 0.08, Brutality: 0.80, Absurdity: 0.12, Cosmic: 0.30, Heroic: 0.25, Tragic: 0.70, Cozy: 0.05},
		CreatureBias: []string{"carrion prince", "plague herald", "pale knight"},
	},
	"gothic_horror": {
		Bias:         ToneVector{Darkness: 0.80, Whimsy: 0.10, Brutality: 0.55, Absurdity: 0.15, Cosmic: 0.45, Heroic: 0.30, Tragic: 0.75, Cozy: 0.10},
		CreatureBias: []string{"gravewalker", "mirror wraith", "marsh hag"},
	},
	"whimsical_fae": {
		Bias:         ToneVector{Darkness: 0.20, Whimsy: 0.85, Brutality: 0.10, Absurdity: 0.60, Cosmic: 0.35, Heroic: 0.45, Tragic: 0.20, Cozy: 0.65},
		CreatureBias: []string{"fae courtier", "bog serpent", "deep chorus"},
	},
	"cosmic_mystery": {
		Bias:         ToneVector{Darkness: 0.55, Whimsy: 0.20, Brutality: 0.30, Absurdity: 0.45, Cosmic: 0.90, Heroic: 0.35, Tragic: 0.50, Cozy: 0.10},
		CreatureBias: []string{"deep chorus", "mirror wraith", "sky leviathan"},
	},
	"heroic_saga": {
		Bias:         ToneVector{Darkness: 0.30, Whimsy: 0.25, Brutality: 0.40, Absurdity: 0.15, Cosmic: 0.30, Heroic: 0.90, Tragic: 0.40, Cozy: 0.30},
		CreatureBias: []string{"ember drake", "stone troll", "sky leviathan"},
	},
	"cozy_hearth": {
		Bias:         ToneVector{Darkness: 0.10, Whimsy: 0.55, Brutality: 0.05, Absurdity: 0.30, Cosmic: 0.10, Heroic: 0.40, Tragic: 0.15, Cozy: 0.90},
		CreatureBias: []string{"fae courtier", "dire wolf", "bog serpent"},
	},
	"weird_west": {
		Bias:         ToneVector{Darkness: 0.55, Whimsy: 0.30, Brutality: 0.55, Absurdity: 0.50, Cosmic: 0.40, Heroic: 0.50, Tragic: 0.45, Cozy: 0.15},
		CreatureBias: []string{"rust beast", "hollow saint", "carrion prince"},
	},
	"mythic_tragedy": {
		Bias:         ToneVector{Darkness: 0.60, Whimsy: 0.15, Brutality: 0.45, Absurdity: 0.10, Cosmic: 0.55, Heroic: 0.60, Tragic: 0.90, Cozy: 0.12},
		CreatureBias: []string{"hollow saint", "pale knight", "sky leviathan"},
	},
	"gonzo_chaos": {
		Bias:         ToneVector{Darkness: 0.30, Whimsy: 0.65, Brutality: 0.35, Absurdity: 0.90, Cosmic: 0.50, Heroic: 0.35, Tragic: 0.20, Cozy: 0.25},
		CreatureBias: []string{"clockwork sentinel", "rust beast", "singing dunes mimic"},
	},
}

// presetIDs lists the preset identifiers in a fixed order so seeded
// draws over them are stable.
var presetIDs = []string{
	"classic_fantasy", "grimdark", "gothic_horror", "whimsical_fae",
	"cosmic_mystery", "heroic_saga", "cozy_hearth", "weird_west",
	"mythic_tragedy", "gonzo_chaos",
}

// templateToPreset maps narrative template identifiers used by outer
// collaborators to the tone preset that backs them.
var templateToPreset = map[string]string{
	"gothic_horror":    "gothic_horror",
	"haunted_manor":    "gothic_horror",
	"dark_fantasy":     "grimdark",
	"war_campaign":     "grimdark",
	"fairy_ring":       "whimsical_fae",
	"storybook":        "whimsical_fae",
	"eldritch_depths":  "cosmic_mystery",
	"stargazer":        "cosmic_mystery",
	"dragon_slayers":   "heroic_saga",
	"kingmaker":        "heroic_saga",
	"village_life":     "cozy_hearth",
	"inn_between":      "cozy_hearth",
	"frontier_justice": "weird_west",
	"rails_and_ruins":  "weird_west",
	"doomed_dynasty":   "mythic_tragedy",
	"last_voyage":      "mythic_tragedy",
	"carnival_of_why":  "gonzo_chaos",
	"many_doors":       "gonzo_chaos",
	"standard":         "classic_fantasy",
}

// PresetForTemplate resolves a narrative template identifier to its
// tone preset id. Collaborators that only know templates use this to
// address the engine.
func PresetForTemplate(template string) (string, bool) {
	id, ok := templateToPreset[template]
	return id, ok
}
