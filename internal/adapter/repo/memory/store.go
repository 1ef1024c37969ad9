package memory

import (
	"sync"

	"worldforge/internal/app/ports"
)

// Store backs the in-memory repositories used by tests and local runs.
// The TxManager serializes mutations through the store mutex, so the
// repos themselves skip locking.
type Store struct {
	mu          sync.RWMutex
	campaigns   map[string]ports.CampaignRecord
	executions  map[string]ports.ActionExecutionRecord
	events      map[string][]ports.DomainEvent
	credentials map[string]ports.OwnerCredentialRecord
}

func NewStore() *Store {
	return &Store{
		campaigns:   make(map[string]ports.CampaignRecord),
		executions:  make(map[string]ports.ActionExecutionRecord),
		events:      make(map[string][]ports.DomainEvent),
		credentials: make(map[string]ports.OwnerCredentialRecord),
	}
}

func execKey(campaignID, key string) string {
	return campaignID + "::" + key
}

func (s *Store) SeedCampaign(record ports.CampaignRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[record.CampaignID] = record
}
