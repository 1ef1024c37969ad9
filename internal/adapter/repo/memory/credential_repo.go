package memory

import (
	"context"

	"worldforge/internal/app/ports"
)

type OwnerCredentialRepo struct {
	store *Store
}

func NewOwnerCredentialRepo(store *Store) OwnerCredentialRepo {
	return OwnerCredentialRepo{store: store}
}

func (r OwnerCredentialRepo) Create(_ context.Context, credential ports.OwnerCredentialRecord) error {
	if _, exists := r.store.credentials[credential.OwnerID]; exists {
		return ports.ErrConflict
	}
	r.store.credentials[credential.OwnerID] = credential
	return nil
}

func (r OwnerCredentialRepo) GetByOwnerID(_ context.Context, ownerID string) (ports.OwnerCredentialRecord, error) {
	credential, ok := r.store.credentials[ownerID]
	if !ok {
		return ports.OwnerCredentialRecord{}, ports.ErrNotFound
	}
	return credential, nil
}
