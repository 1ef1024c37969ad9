package generate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"worldforge/internal/app/ports"
	"worldforge/internal/domain/forge"
)

var ErrInvalidRequest = errors.New("invalid generate request")

type Request struct {
	OwnerID string
	Input   forge.ForgeInput
}

type Response struct {
	CampaignID string
	Context    forge.CampaignContext
}

// UseCase forges a new campaign world and persists it under a fresh
// campaign id. Generation itself is pure; only the write goes through
// the transaction.
type UseCase struct {
	TxManager ports.TxManager
	Campaigns ports.CampaignRepository
	Events    ports.EventRepository
	Metrics   ports.ForgeMetrics
	NewID     func() string
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	if req.OwnerID == "" || u.Campaigns == nil || u.TxManager == nil {
		return Response{}, ErrInvalidRequest
	}
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	world, err := forge.Forge(req.Input)
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return Response{}, err
	}

	now := nowFn().UTC()
	campaignID := newID()
	record := ports.CampaignRecord{
		CampaignID:   campaignID,
		OwnerID:      req.OwnerID,
		Context:      world,
		RuntimeState: forge.RuntimeState{},
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.Campaigns.Create(txCtx, record); err != nil {
			return err
		}
		if u.Events == nil {
			return nil
		}
		return u.Events.Append(txCtx, campaignID, []ports.DomainEvent{{
			Type:       "campaign_forged",
			OccurredAt: now,
			Payload: map[string]any{
				"campaign_id":   campaignID,
				"owner_id":      req.OwnerID,
				"seed_number":   world.Seed.SeedNumber,
				"seed_string":   world.Seed.SeedString,
				"world_name":    world.World.Bible.WorldName,
				"region_count":  len(world.World.Biomes.Regions),
				"faction_count": len(world.World.Factions.Factions),
			},
		}})
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}

	if u.Metrics != nil {
		u.Metrics.RecordSuccess("forge")
	}
	return Response{CampaignID: campaignID, Context: world}, nil
}
