package memory

import (
	"context"

	"worldforge/internal/app/ports"
)

type CampaignRepo struct {
	store *Store
}

func NewCampaignRepo(store *Store) CampaignRepo {
	return CampaignRepo{store: store}
}

func (r CampaignRepo) Create(_ context.Context, record ports.CampaignRecord) error {
	if _, exists := r.store.campaigns[record.CampaignID]; exists {
		return ports.ErrConflict
	}
	r.store.campaigns[record.CampaignID] = record
	return nil
}

func (r CampaignRepo) GetByID(_ context.Context, campaignID string) (ports.CampaignRecord, error) {
	record, ok := r.store.campaigns[campaignID]
	if !ok {
		return ports.CampaignRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r CampaignRepo) SaveWithVersion(_ context.Context, record ports.CampaignRecord, expectedVersion int64) error {
	current, ok := r.store.campaigns[record.CampaignID]
	if !ok {
		return ports.ErrNotFound
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.campaigns[record.CampaignID] = record
	return nil
}
