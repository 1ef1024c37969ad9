package characters

import (
	"context"
	"errors"
	"strings"
	"time"

	"worldforge/internal/app/ports"
	"worldforge/internal/domain/forge"
)

var ErrInvalidRequest = errors.New("invalid character request")

type Request struct {
	CampaignID string
	Input      forge.CharacterForgeInput
}

type Response struct {
	Binding      forge.CharacterForgeOutput
	RuntimeState forge.RuntimeState
}

// UseCase forges a character against a stored campaign and folds the
// binding into the campaign's runtime state. Re-binding the same
// character is safe: the merge is idempotent, so a retried request
// only bumps the version.
type UseCase struct {
	TxManager ports.TxManager
	Campaigns ports.CampaignRepository
	Events    ports.EventRepository
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.CampaignID = strings.TrimSpace(req.CampaignID)
	if req.CampaignID == "" {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		record, err := u.Campaigns.GetByID(txCtx, req.CampaignID)
		if err != nil {
			return err
		}

		binding, err := forge.ForgeCharacter(record.Context, req.Input)
		if err != nil {
			return err
		}

		now := nowFn().UTC()
		updated := record
		updated.RuntimeState = forge.MergeCharacter(record.RuntimeState, binding)
		updated.UpdatedAt = now
		updated.Version = record.Version + 1
		if err := u.Campaigns.SaveWithVersion(txCtx, updated, record.Version); err != nil {
			return err
		}

		if u.Events != nil {
			err = u.Events.Append(txCtx, req.CampaignID, []ports.DomainEvent{{
				Type:       "character_forged",
				OccurredAt: now,
				Payload: map[string]any{
					"campaign_id":    req.CampaignID,
					"character_name": binding.CharacterName,
					"origin_region":  binding.OriginRegionID,
					"faction_id":     binding.FactionID,
					"starting_town":  binding.StartingTown,
				},
			}})
			if err != nil {
				return err
			}
		}

		out = Response{Binding: binding, RuntimeState: updated.RuntimeState}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
