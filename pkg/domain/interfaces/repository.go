package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// Repository defines the interface for the account cache store
type Repository interface {
	// GetAccountByExternalID returns the cache entry for an external ID,
	// or (nil, nil) when no entry exists
	GetAccountByExternalID(ctx context.Context, id types.AccountID) (*model.CachedAccount, error)
	PutAccount(ctx context.Context, account *model.CachedAccount) error
	ListAccounts(ctx context.Context) ([]*model.CachedAccount, error)

	// DeleteAccountsNotIn removes every cache entry whose external ID is
	// not in keep, returning the number of deleted entries
	DeleteAccountsNotIn(ctx context.Context, keep []types.AccountID) (int, error)

	// Sync status marker operations
	GetSyncStatus(ctx context.Context) (*model.SyncStatus, error)
	PutSyncStatus(ctx context.Context, status *model.SyncStatus) error

	// Close closes the repository connection
	Close() error
}
