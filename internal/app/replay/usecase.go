package replay

import (
	"context"
	"errors"
	"strings"

	"worldforge/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid replay request")

// UseCase reads a campaign's event log and derives the latest observed
// tick and escalation from the advancement events. Events that carry
// no tick (registration, character bindings) pass through unfiltered
// metadata aside.
type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CampaignID) == "" {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.ListByCampaignID(ctx, req.CampaignID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTickWindow(events, req.TickFrom, req.TickTo)

	resp := Response{Events: events}
	for _, evt := range events {
		tick, ok := eventTick(evt)
		if !ok || tick < resp.LatestTick {
			continue
		}
		resp.LatestTick = tick
		if esc, ok := num(evt.Payload["villain_escalation"]); ok {
			resp.Escalation = int(esc)
		}
	}
	return resp, nil
}

func filterByTickWindow(events []ports.DomainEvent, from, to int64) []ports.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]ports.DomainEvent, 0, len(events))
	for _, evt := range events {
		tick, ok := eventTick(evt)
		if ok {
			if from > 0 && tick < from {
				continue
			}
			if to > 0 && tick > to {
				continue
			}
		}
		out = append(out, evt)
	}
	return out
}

func eventTick(evt ports.DomainEvent) (int64, bool) {
	v, ok := num(evt.Payload["tick"])
	if !ok {
		return 0, false
	}
	return int64(v), true
}

// num tolerates the numeric types a JSON round trip can produce.
func num(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
