package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . SyncUseCase

import (
	"context"

	"github.com/secmon-lab/themis/pkg/domain/types"
)

// SyncUseCase defines the interface for directory sync operations
type SyncUseCase interface {
	// SyncGroup synchronizes the cached membership of a directory group
	// and returns the number of accounts successfully cached
	SyncGroup(ctx context.Context, groupID types.GroupID, fallbackToken types.AccessToken) (int, error)
}
