package ports

import (
	"context"
	"time"

	"worldforge/internal/domain/forge"
)

// DomainEvent is an append-only record of something the forge did to a
// campaign. Payloads are free-form JSON objects.
type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// CampaignRecord is the persisted campaign: the immutable generated
// context, the caller-owned runtime state bag, and an optimistic
// version for concurrent action settlement.
type CampaignRecord struct {
	CampaignID   string
	OwnerID      string
	Context      forge.CampaignContext
	RuntimeState forge.RuntimeState
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CampaignRepository interface {
	Create(ctx context.Context, record CampaignRecord) error
	GetByID(ctx context.Context, campaignID string) (CampaignRecord, error)
	SaveWithVersion(ctx context.Context, record CampaignRecord, expectedVersion int64) error
}

type ActionResult struct {
	UpdatedState forge.WorldState
	Events       []DomainEvent
}

type ActionExecutionRecord struct {
	CampaignID     string
	IdempotencyKey string
	ActionType     string
	Tick           int64
	Result         ActionResult
	AppliedAt      time.Time
}

type ActionExecutionRepository interface {
	GetByIdempotencyKey(ctx context.Context, campaignID, key string) (*ActionExecutionRecord, error)
	SaveExecution(ctx context.Context, execution ActionExecutionRecord) error
}

type EventRepository interface {
	Append(ctx context.Context, campaignID string, events []DomainEvent) error
	ListByCampaignID(ctx context.Context, campaignID string, limit int) ([]DomainEvent, error)
}

type OwnerCredentialRecord struct {
	OwnerID   string
	KeySalt   []byte
	KeyHash   []byte
	Status    string
	CreatedAt time.Time
}

type OwnerCredentialRepository interface {
	Create(ctx context.Context, credential OwnerCredentialRecord) error
	GetByOwnerID(ctx context.Context, ownerID string) (OwnerCredentialRecord, error)
}
