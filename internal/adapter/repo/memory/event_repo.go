package memory

import (
	"context"

	"worldforge/internal/app/ports"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, campaignID string, events []ports.DomainEvent) error {
	r.store.events[campaignID] = append(r.store.events[campaignID], events...)
	return nil
}

func (r EventRepo) ListByCampaignID(_ context.Context, campaignID string, limit int) ([]ports.DomainEvent, error) {
	events := r.store.events[campaignID]
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	out := make([]ports.DomainEvent, len(events))
	copy(out, events)
	return out, nil
}
