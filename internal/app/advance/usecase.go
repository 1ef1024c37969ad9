package advance

import (
	"context"
	"errors"
	"strings"
	"time"

	"worldforge/internal/app/ports"
	"worldforge/internal/domain/forge"
)

var ErrInvalidRequest = errors.New("invalid advance request")

type Request struct {
	CampaignID     string
	IdempotencyKey string
	Action         forge.PlayerWorldAction
}

type Response struct {
	UpdatedState forge.WorldState
	Events       []ports.DomainEvent
	Replayed     bool
}

// UseCase settles one player world action against a campaign. The
// whole settlement runs in a transaction: idempotency lookup, state
// evolution, versioned save, event append. A replayed idempotency key
// returns the recorded outcome without touching the world again.
type UseCase struct {
	TxManager ports.TxManager
	Campaigns ports.CampaignRepository
	Actions   ports.ActionExecutionRepository
	Events    ports.EventRepository
	Metrics   ports.ForgeMetrics
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.CampaignID = strings.TrimSpace(req.CampaignID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if req.CampaignID == "" || req.IdempotencyKey == "" {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		exec, err := u.Actions.GetByIdempotencyKey(txCtx, req.CampaignID, req.IdempotencyKey)
		if err == nil && exec != nil {
			out = Response{
				UpdatedState: exec.Result.UpdatedState,
				Events:       exec.Result.Events,
				Replayed:     true,
			}
			return nil
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		record, err := u.Campaigns.GetByID(txCtx, req.CampaignID)
		if err != nil {
			return err
		}

		next, err := forge.AdvanceCampaign(record.Context, req.Action)
		if err != nil {
			return err
		}
		state := next.World.State

		now := nowFn().UTC()
		events := []ports.DomainEvent{{
			Type:       "world_advanced",
			OccurredAt: now,
			Payload: map[string]any{
				"campaign_id":        req.CampaignID,
				"tick":               state.Tick,
				"action_type":        req.Action.Type,
				"summary":            req.Action.Summary,
				"target_faction_id":  req.Action.TargetFactionID,
				"villain_escalation": state.VillainEscalation,
				"active_rumors":      len(state.ActiveRumors),
			},
		}}

		updated := record
		updated.Context = next
		updated.UpdatedAt = now
		updated.Version = record.Version + 1
		if err := u.Campaigns.SaveWithVersion(txCtx, updated, record.Version); err != nil {
			return err
		}

		if err := u.Actions.SaveExecution(txCtx, ports.ActionExecutionRecord{
			CampaignID:     req.CampaignID,
			IdempotencyKey: req.IdempotencyKey,
			ActionType:     req.Action.Type,
			Tick:           state.Tick,
			Result:         ports.ActionResult{UpdatedState: state, Events: events},
			AppliedAt:      now,
		}); err != nil {
			return err
		}

		if u.Events != nil {
			if err := u.Events.Append(txCtx, req.CampaignID, events); err != nil {
				return err
			}
		}

		out = Response{UpdatedState: state, Events: events}
		return nil
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
		u.Metrics.RecordSuccess("advance")
	}
	return out, nil
}
