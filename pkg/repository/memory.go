package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu       sync.RWMutex
	accounts map[types.AccountID]*model.CachedAccount
	status   *model.SyncStatus
}

// NewMemory creates a new memory repository
func NewMemory() *Memory {
	return &Memory{
		accounts: make(map[types.AccountID]*model.CachedAccount),
	}
}

// GetAccountByExternalID retrieves a cached account by external ID.
// Returns (nil, nil) when no entry exists.
func (m *Memory) GetAccountByExternalID(ctx context.Context, id types.AccountID) (*model.CachedAccount, error) {
	if id == "" {
		return nil, goerr.New("account external ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	account, exists := m.accounts[id]
	if !exists {
		return nil, nil
	}

	// Return a copy to prevent external modification
	accountCopy := *account
	return &accountCopy, nil
}

// PutAccount saves a cached account, keyed by external ID
func (m *Memory) PutAccount(ctx context.Context, account *model.CachedAccount) error {
	if account == nil {
		return goerr.New("account is nil")
	}
	if account.ID == "" {
		return goerr.New("account ID is empty")
	}
	if account.ExternalID == "" {
		return goerr.New("account external ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Deep copy to prevent external modifications
	accountCopy := *account
	m.accounts[account.ExternalID] = &accountCopy

	return nil
}

// ListAccounts retrieves all cached accounts
func (m *Memory) ListAccounts(ctx context.Context) ([]*model.CachedAccount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	accounts := make([]*model.CachedAccount, 0, len(m.accounts))
	for _, account := range m.accounts {
		accountCopy := *account
		accounts = append(accounts, &accountCopy)
	}

	// Sort by external ID for stable output
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].ExternalID < accounts[j].ExternalID
	})

	return accounts, nil
}

// DeleteAccountsNotIn removes every cache entry whose external ID is not
// in keep, returning the number of deleted entries
func (m *Memory) DeleteAccountsNotIn(ctx context.Context, keep []types.AccountID) (int, error) {
	keepSet := make(map[types.AccountID]bool, len(keep))
	for _, id := range keep {
		keepSet[id] = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	deleted := 0
	for id := range m.accounts {
		if !keepSet[id] {
			delete(m.accounts, id)
			deleted++
		}
	}

	return deleted, nil
}

// GetSyncStatus retrieves the sync status marker.
// Returns (nil, nil) when no sync has run yet.
func (m *Memory) GetSyncStatus(ctx context.Context) (*model.SyncStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.status == nil {
		return nil, nil
	}

	statusCopy := *m.status
	return &statusCopy, nil
}

// PutSyncStatus saves the sync status marker
func (m *Memory) PutSyncStatus(ctx context.Context, status *model.SyncStatus) error {
	if status == nil {
		return goerr.New("sync status is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	statusCopy := *status
	m.status = &statusCopy

	return nil
}

// Close does nothing for memory repository
func (m *Memory) Close() error {
	return nil
}

// Clear clears all data (useful for testing)
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = make(map[types.AccountID]*model.CachedAccount)
	m.status = nil
}

var _ interfaces.Repository = (*Memory)(nil) // Compile-time interface check
