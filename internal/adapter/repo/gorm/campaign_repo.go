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

type CampaignRepo struct {
	db *gorm.DB
}

func NewCampaignRepo(db *gorm.DB) CampaignRepo {
	return CampaignRepo{db: db}
}

func (r CampaignRepo) Create(ctx context.Context, record ports.CampaignRecord) error {
	row, err := encodeCampaign(record)
	if err != nil {
		return err
	}
	if err := getDBFromCtx(ctx, r.db).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r CampaignRepo) GetByID(ctx context.Context, campaignID string) (ports.CampaignRecord, error) {
	var row model.Campaign
	err := getDBFromCtx(ctx, r.db).
		Where(&model.Campaign{CampaignID: campaignID}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CampaignRecord{}, ports.ErrNotFound
		}
		return ports.CampaignRecord{}, err
	}
	return decodeCampaign(row)
}

func (r CampaignRepo) SaveWithVersion(ctx context.Context, record ports.CampaignRecord, expectedVersion int64) error {
	row, err := encodeCampaign(record)
	if err != nil {
		return err
	}
	res := getDBFromCtx(ctx, r.db).Model(&model.Campaign{}).
		Where("campaign_id = ? AND version = ?", record.CampaignID, expectedVersion).
		Updates(map[string]any{
			"doc":           row.Doc,
			"runtime_state": row.RuntimeState,
			"version":       record.Version,
			"updated_at":    record.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func encodeCampaign(record ports.CampaignRecord) (model.Campaign, error) {
	doc, err := json.Marshal(record.Context)
	if err != nil {
		return model.Campaign{}, err
	}
	state, err := json.Marshal(record.RuntimeState)
	if err != nil {
		return model.Campaign{}, err
	}
	return model.Campaign{
		CampaignID:   record.CampaignID,
		OwnerID:      record.OwnerID,
		Doc:          doc,
		RuntimeState: state,
		Version:      record.Version,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}, nil
}

func decodeCampaign(row model.Campaign) (ports.CampaignRecord, error) {
	record := ports.CampaignRecord{
		CampaignID: row.CampaignID,
		OwnerID:    row.OwnerID,
		Version:    row.Version,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if err := json.Unmarshal(row.Doc, &record.Context); err != nil {
		return ports.CampaignRecord{}, err
	}
	record.RuntimeState = forge.RuntimeState{}
	if len(row.RuntimeState) > 0 {
		if err := json.Unmarshal(row.RuntimeState, &record.RuntimeState); err != nil {
			return ports.CampaignRecord{}, err
		}
	}
	return record, nil
}
