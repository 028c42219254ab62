package model

import (
	"time"

	"github.com/secmon-lab/themis/pkg/domain/types"
)

// DirectoryAccount represents one resolved member of the target group.
// It is constructed transiently during a fetch and is the input unit to
// reconciliation; it is never persisted as its own entity.
type DirectoryAccount struct {
	ID          types.AccountID
	Email       string
	DisplayName string
}

// CachedAccount is the durable side-effect of synchronization
type CachedAccount struct {
	ID           types.CacheID   `json:"id"`
	ExternalID   types.AccountID `json:"external_id"`
	Email        string          `json:"email"`
	DisplayName  string          `json:"display_name"`
	LastSyncedAt time.Time       `json:"last_synced_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewCachedAccount creates a new cache entry for a directory account
func NewCachedAccount(account *DirectoryAccount) *CachedAccount {
	now := time.Now()
	return &CachedAccount{
		ID:           types.NewCacheID(),
		ExternalID:   account.ID,
		Email:        account.Email,
		DisplayName:  account.DisplayName,
		LastSyncedAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
