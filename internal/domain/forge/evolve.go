package forge

import (
	"fmt"
	"math"
	"strings"

	"worldforge/internal/domain/rng"
)

const (
	minStatePower = 1
	maxStatePower = 120

	maxVillainEscalation = 999
	maxActiveRumors      = 40
	maxCollapsedDungeons = 40
	maxHistoryEntries    = 120

	dungeonCollapseChance = 0.86
	townRenameChance      = 0.90
)

// EvolveWorldState advances the simulation by one player action. Pure
// and total: the input state is never mutated, valid input always
// produces output, and clamping absorbs any anomalous impact
// combination. Draw labels embed the new tick so consecutive ticks see
// independent streams from the same world seed.
func EvolveWorldState(state WorldState, action PlayerWorldAction) WorldState {
	sn := state.SeedNumber
	tick := state.Tick + 1
	impact := action.Impact

	next := state
	next.Tick = tick

	next.Factions = make([]FactionState, len(state.Factions))
	for i, f := range state.Factions {
		targeted := action.TargetFactionID != "" && f.FactionID == action.TargetFactionID

		targetPowerBonus, targetTrustBonus := 0.0, 0.0
		if targeted {
			targetPowerBonus, targetTrustBonus = 4, 3
		}

		powerDelta := rng.Int(sn, fmt.Sprintf("evolve.t%d.%s.power", tick, f.FactionID), -3, 3) +
			int(math.Round(targetPowerBonus+3*impact.Brutality+2*impact.Chaos-2*impact.Generosity))
		trustDelta := rng.Int(sn, fmt.Sprintf("evolve.t%d.%s.trust", tick, f.FactionID), -4, 4) +
			int(math.Round(targetTrustBonus+8*impact.Moral+6*impact.Generosity-7*impact.Brutality))

		next.Factions[i] = FactionState{
			FactionID:      f.FactionID,
			PowerLevel:     clampInt(f.PowerLevel+powerDelta, minStatePower, maxStatePower),
			TrustDelta:     clampInt(f.TrustDelta+trustDelta, -100, 100),
			LastActionTick: tick,
		}
	}

	pressure := math.Max(0, 8*impact.Brutality) + math.Max(0, 6*impact.Chaos) - math.Max(0, 4*impact.Generosity)
	escalation := int(math.Round(pressure)) + rng.Int(sn, fmt.Sprintf("evolve.t%d.escalation", tick), 0, 3)
	next.VillainEscalation = clampInt(state.VillainEscalation+escalation, 0, maxVillainEscalation)

	rumor := rng.Pick(sn, fmt.Sprintf("evolve.t%d.rumor_prefix", tick), rumorPrefixes) + " " + action.Summary
	next.ActiveRumors = appendCapped(state.ActiveRumors, rumor, maxActiveRumors)

	next.CollapsedDungeons = append([]string{}, state.CollapsedDungeons...)
	collapse := rng.Float01(sn, fmt.Sprintf("evolve.t%d.collapse", tick)) > dungeonCollapseChance
	if collapse || hasTag(action.Tags, "collapse") {
		name := dungeonName(sn, fmt.Sprintf("evolve.t%d.dungeon", tick))
		next.CollapsedDungeons = appendDeduped(next.CollapsedDungeons, name, maxCollapsedDungeons)
	}

	next.ActiveTowns = append([]string{}, state.ActiveTowns...)
	if len(next.ActiveTowns) > 0 &&
		rng.Float01(sn, fmt.Sprintf("evolve.t%d.rename", tick)) > townRenameChance {
		idx := rng.Int(sn, fmt.Sprintf("evolve.t%d.rename_town", tick), 0, len(next.ActiveTowns)-1)
		first := strings.Fields(next.ActiveTowns[idx])[0]
		suffix := rng.Pick(sn, fmt.Sprintf("evolve.t%d.rename_suffix", tick), townSyllables.second)
		next.ActiveTowns[idx] = trimTownSuffix(first) + suffix
	}

	next.History = appendHistoryCapped(state.History, HistoryEntry{
		Tick:       tick,
		ActionType: action.Type,
		Summary:    action.Summary,
		Impact:     impact,
	}, maxHistoryEntries)

	return next
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

// trimTownSuffix strips a known settlement suffix so renames do not
// stack suffixes forever.
func trimTownSuffix(name string) string {
	for _, s := range townSyllables.second {
		if len(name) > len(s) && strings.HasSuffix(name, s) {
			return name[:len(name)-len(s)]
		}
	}
	return name
}

func appendCapped(list []string, item string, limit int) []string {
	out := append(append([]string{}, list...), item)
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

func appendDeduped(list []string, item string, limit int) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return appendCapped(list, item, limit)
}

func appendHistoryCapped(list []HistoryEntry, entry HistoryEntry, limit int) []HistoryEntry {
	out := append(append([]HistoryEntry{}, list...), entry)
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}
