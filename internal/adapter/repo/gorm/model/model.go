package model

import "time"

// Campaign stores the generated context and runtime state as JSONB
// documents; the engine owns their shape, the database only versions
// them.
type Campaign struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CampaignID   string    `gorm:"column:campaign_id;uniqueIndex"`
	OwnerID      string    `gorm:"column:owner_id;index"`
	Doc          []byte    `gorm:"column:doc;type:jsonb"`
	RuntimeState []byte    `gorm:"column:runtime_state;type:jsonb"`
	Version      int64     `gorm:"column:version"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Campaign) TableName() string { return "campaigns" }

type ActionExecution struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CampaignID     string    `gorm:"column:campaign_id;uniqueIndex:idx_campaign_idem,priority:1"`
	IdempotencyKey string    `gorm:"column:idempotency_key;uniqueIndex:idx_campaign_idem,priority:2"`
	ActionType     string    `gorm:"column:action_type"`
	Tick           int64     `gorm:"column:tick"`
	UpdatedState   []byte    `gorm:"column:updated_state;type:jsonb"`
	Events         []byte    `gorm:"column:events;type:jsonb"`
	AppliedAt      time.Time `gorm:"column:applied_at"`
}

func (ActionExecution) TableName() string { return "action_executions" }

type DomainEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CampaignID string    `gorm:"column:campaign_id;index"`
	Type       string    `gorm:"column:type"`
	OccurredAt time.Time `gorm:"column:occurred_at;index"`
	Payload    []byte    `gorm:"column:payload;type:jsonb"`
}

func (DomainEvent) TableName() string { return "domain_events" }

type OwnerCredential struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OwnerID   string    `gorm:"column:owner_id;uniqueIndex"`
	KeySalt   []byte    `gorm:"column:key_salt"`
	KeyHash   []byte    `gorm:"column:key_hash"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (OwnerCredential) TableName() string { return "owner_credentials" }
