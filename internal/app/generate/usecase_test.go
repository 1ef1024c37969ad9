package generate

import (
	"context"
	"errors"
	"testing"
	"time"

	"worldforge/internal/adapter/repo/memory"
	"worldforge/internal/app/ports"
	"worldforge/internal/domain/forge"
)

func testInput() forge.ForgeInput {
	return forge.ForgeInput{
		Title:       "The Ashen Crown",
		Description: "A fallen empire rots under a cursed regency.",
		TonePreset:  "grimdark",
	}
}

func newUseCase(store *memory.Store) UseCase {
	return UseCase{
		TxManager: memory.NewTxManager(store),
		Campaigns: memory.NewCampaignRepo(store),
		Events:    memory.NewEventRepo(store),
		NewID:     func() string { return "camp-1" },
		Now:       func() time.Time { return time.Unix(1700000000, 0) },
	}
}

func TestUseCase_ForgesAndPersistsCampaign(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)

	resp, err := uc.Execute(context.Background(), Request{OwnerID: "own_1", Input: testInput()})
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if resp.CampaignID != "camp-1" {
		t.Fatalf("campaign id: got %q", resp.CampaignID)
	}
	if resp.Context.Version != forge.ContextVersion {
		t.Fatalf("context version: got %q", resp.Context.Version)
	}

	record, err := memory.NewCampaignRepo(store).GetByID(context.Background(), "camp-1")
	if err != nil {
		t.Fatalf("load persisted campaign: %v", err)
	}
	if record.OwnerID != "own_1" || record.Version != 1 {
		t.Fatalf("persisted record: %+v", record)
	}
	if record.Context.Seed.SeedNumber != resp.Context.Seed.SeedNumber {
		t.Fatalf("persisted context differs from response")
	}

	events, err := memory.NewEventRepo(store).ListByCampaignID(context.Background(), "camp-1", 0)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 1 || events[0].Type != "campaign_forged" {
		t.Fatalf("expected one campaign_forged event, got %+v", events)
	}
}

func TestUseCase_SameInputSameWorldDifferentCampaigns(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)
	ids := []string{"camp-a", "camp-b"}
	uc.NewID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	a, err := uc.Execute(context.Background(), Request{OwnerID: "own_1", Input: testInput()})
	if err != nil {
		t.Fatalf("generate a: %v", err)
	}
	b, err := uc.Execute(context.Background(), Request{OwnerID: "own_1", Input: testInput()})
	if err != nil {
		t.Fatalf("generate b: %v", err)
	}

	if a.CampaignID == b.CampaignID {
		t.Fatalf("expected distinct campaign ids")
	}
	if a.Context.Seed.SeedNumber != b.Context.Seed.SeedNumber {
		t.Fatalf("identical input must forge the identical world")
	}
}

func TestUseCase_RejectsMissingOwner(t *testing.T) {
	uc := newUseCase(memory.NewStore())
	if _, err := uc.Execute(context.Background(), Request{Input: testInput()}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestUseCase_SurfacesValidationError(t *testing.T) {
	uc := newUseCase(memory.NewStore())
	_, err := uc.Execute(context.Background(), Request{OwnerID: "own_1", Input: forge.ForgeInput{Title: "t"}})
	if !errors.Is(err, forge.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUseCase_DuplicateIDConflicts(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)

	if _, err := uc.Execute(context.Background(), Request{OwnerID: "own_1", Input: testInput()}); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	_, err := uc.Execute(context.Background(), Request{OwnerID: "own_1", Input: testInput()})
	if !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on duplicate id, got %v", err)
	}
}
