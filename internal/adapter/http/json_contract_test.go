package httpadapter

import (
	"encoding/json"
	"testing"
	"time"

	"worldforge/internal/app/ports"
	"worldforge/internal/app/replay"
	"worldforge/internal/domain/forge"
)

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	event := ports.DomainEvent{
		Type:       "world_advanced",
		OccurredAt: now,
		Payload:    map[string]any{"tick": 1},
	}
	record := ports.CampaignRecord{
		CampaignID: "c1",
		OwnerID:    "own_1",
		Context: forge.CampaignContext{
			Version: "wf1",
			Title:   "The Ashen Crown",
			Seed:    forge.WorldSeed{SeedNumber: 42, SeedString: "wf42:auto:grimdark"},
		},
		RuntimeState: forge.RuntimeState{"rumors": []string{"a rumor"}},
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name: "campaign",
			payload: campaignResponse{
				CampaignID:   record.CampaignID,
				Version:      record.Version,
				Context:      record.Context,
				RuntimeState: record.RuntimeState,
			},
			want:    []string{"campaign_id", "version", "context", "runtime_state"},
			notWant: []string{"CampaignID", "Context", "RuntimeState"},
		},
		{
			name:    "replay",
			payload: replay.Response{Events: []ports.DomainEvent{event}, LatestTick: 1, Escalation: 2},
			want:    []string{"events", "latest_tick", "escalation"},
			notWant: []string{"Events", "LatestTick", "Escalation"},
		},
		{
			name:    "event",
			payload: event,
			want:    []string{"type", "occurred_at", "payload"},
			notWant: []string{"Type", "OccurredAt", "Payload"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			for _, key := range tc.want {
				if _, ok := got[key]; !ok {
					t.Fatalf("expected key %q in %s", key, string(b))
				}
			}
			for _, key := range tc.notWant {
				if _, ok := got[key]; ok {
					t.Fatalf("unexpected key %q in %s", key, string(b))
				}
			}
			if tc.name == "campaign" {
				contextMap := asMap(got["context"])
				seedMap := asMap(contextMap["seed"])
				if _, ok := seedMap["seed_number"]; !ok {
					t.Fatalf("expected nested snake_case key context.seed.seed_number in %s", string(b))
				}
				if _, ok := seedMap["SeedNumber"]; ok {
					t.Fatalf("unexpected nested key context.seed.SeedNumber in %s", string(b))
				}
			}
		})
	}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
