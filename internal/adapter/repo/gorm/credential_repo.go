package gormrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"worldforge/internal/adapter/repo/gorm/model"
	"worldforge/internal/app/ports"

	"gorm.io/gorm"
)

type OwnerCredentialRepo struct {
	db *gorm.DB
}

func NewOwnerCredentialRepo(db *gorm.DB) OwnerCredentialRepo {
	return OwnerCredentialRepo{db: db}
}

func (r OwnerCredentialRepo) Create(ctx context.Context, credential ports.OwnerCredentialRecord) error {
	row := model.OwnerCredential{
		OwnerID:   credential.OwnerID,
		KeySalt:   credential.KeySalt,
		KeyHash:   credential.KeyHash,
		Status:    credential.Status,
		CreatedAt: credential.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
	if err := getDBFromCtx(ctx, r.db).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r OwnerCredentialRepo) GetByOwnerID(ctx context.Context, ownerID string) (ports.OwnerCredentialRecord, error) {
	var row model.OwnerCredential
	if err := getDBFromCtx(ctx, r.db).Where(&model.OwnerCredential{OwnerID: ownerID}).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.OwnerCredentialRecord{}, ports.ErrNotFound
		}
		return ports.OwnerCredentialRecord{}, err
	}
	return ports.OwnerCredentialRecord{
		OwnerID:   row.OwnerID,
		KeySalt:   row.KeySalt,
		KeyHash:   row.KeyHash,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
