package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"worldforge/internal/adapter/repo/gorm/model"
	"worldforge/internal/app/ports"
	"worldforge/internal/domain/forge"

	"gorm.io/gorm"
)

type ActionExecutionRepo struct {
	db *gorm.DB
}

func NewActionExecutionRepo(db *gorm.DB) ActionExecutionRepo {
	return ActionExecutionRepo{db: db}
}

func (r ActionExecutionRepo) GetByIdempotencyKey(ctx context.Context, campaignID, key string) (*ports.ActionExecutionRecord, error) {
	var m model.ActionExecution
	err := getDBFromCtx(ctx, r.db).
		Where(&model.ActionExecution{CampaignID: campaignID, IdempotencyKey: key}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &ports.ActionExecutionRecord{
		CampaignID:     m.CampaignID,
		IdempotencyKey: m.IdempotencyKey,
		ActionType:     m.ActionType,
		Tick:           m.Tick,
		Result:         decodeResult(m),
		AppliedAt:      m.AppliedAt,
	}, nil
}

func (r ActionExecutionRepo) SaveExecution(ctx context.Context, execution ports.ActionExecutionRecord) error {
	stateJSON, err := json.Marshal(execution.Result.UpdatedState)
	if err != nil {
		return err
	}
	eventsJSON, err := json.Marshal(execution.Result.Events)
	if err != nil {
		return err
	}
	m := model.ActionExecution{
		CampaignID:     execution.CampaignID,
		IdempotencyKey: execution.IdempotencyKey,
		ActionType:     execution.ActionType,
		Tick:           execution.Tick,
		UpdatedState:   stateJSON,
		Events:         eventsJSON,
		AppliedAt:      execution.AppliedAt,
	}
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func decodeResult(m model.ActionExecution) ports.ActionResult {
	var state forge.WorldState
	var events []ports.DomainEvent
	_ = json.Unmarshal(m.UpdatedState, &state)
	_ = json.Unmarshal(m.Events, &events)
	return ports.ActionResult{UpdatedState: state, Events: events}
}
