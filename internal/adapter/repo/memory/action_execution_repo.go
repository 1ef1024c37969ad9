package memory

import (
	"context"

	"worldforge/internal/app/ports"
)

type ActionExecutionRepo struct {
	store *Store
}

func NewActionExecutionRepo(store *Store) ActionExecutionRepo {
	return ActionExecutionRepo{store: store}
}

func (r ActionExecutionRepo) GetByIdempotencyKey(_ context.Context, campaignID, key string) (*ports.ActionExecutionRecord, error) {
	rec, ok := r.store.executions[execKey(campaignID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := rec
	return &copy, nil
}

func (r ActionExecutionRepo) SaveExecution(_ context.Context, execution ports.ActionExecutionRecord) error {
	k := execKey(execution.CampaignID, execution.IdempotencyKey)
	if _, exists := r.store.executions[k]; exists {
		return ports.ErrConflict
	}
	r.store.executions[k] = execution
	return nil
}
