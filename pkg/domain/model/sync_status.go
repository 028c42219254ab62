package model

import "time"

// SyncStatus is the process-wide marker tracking the most recent sync
// attempt that reached the reconciliation phase. It is a single
// well-known record, updated unconditionally at the end of every such
// attempt even if some individual upserts failed.
type SyncStatus struct {
	LastSyncedAt time.Time `json:"last_synced_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewSyncStatus creates a marker stamped with the current time
func NewSyncStatus() *SyncStatus {
	now := time.Now()
	return &SyncStatus{
		LastSyncedAt: now,
		UpdatedAt:    now,
	}
}
