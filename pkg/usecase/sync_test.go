package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/themis/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/repository"
	"github.com/secmon-lab/themis/pkg/usecase"
)

func newCredentialMock(token types.AccessToken) *mocks.CredentialProviderMock {
	return &mocks.CredentialProviderMock{
		ServiceCredentialFunc: func(ctx context.Context) (types.AccessToken, error) {
			return token, nil
		},
	}
}

func newDirectoryMock(accounts []*model.DirectoryAccount) *mocks.DirectoryServiceMock {
	return &mocks.DirectoryServiceMock{
		GetGroupFunc: func(ctx context.Context, token types.AccessToken, groupID types.GroupID) (*model.DirectoryGroup, error) {
			return &model.DirectoryGroup{ID: groupID, DisplayName: "Test Group"}, nil
		},
		FetchGroupMembersFunc: func(ctx context.Context, token types.AccessToken, groupID types.GroupID) ([]*model.DirectoryAccount, error) {
			return accounts, nil
		},
	}
}

func TestSyncGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("SyncsFetchedAccounts", func(t *testing.T) {
		repo := repository.NewMemory()
		directory := newDirectoryMock([]*model.DirectoryAccount{
			{ID: "u1", Email: "u1@example.com", DisplayName: "User One"},
			{ID: "u2", Email: "u2@example.com", DisplayName: "User Two"},
		})

		sync := usecase.NewSync(repo, directory, newCredentialMock("service-token"))
		count, err := sync.SyncGroup(ctx, "g1", "")
		gt.NoError(t, err)
		gt.Equal(t, count, 2)

		cached, err := repo.ListAccounts(ctx)
		gt.NoError(t, err)
		gt.A(t, cached).Length(2)

		status, err := repo.GetSyncStatus(ctx)
		gt.NoError(t, err)
		gt.NotNil(t, status)
	})

	t.Run("EvictsStaleEntries", func(t *testing.T) {
		repo := repository.NewMemory()
		for _, id := range []types.AccountID{"old1", "old2", "old3"} {
			entry := model.NewCachedAccount(&model.DirectoryAccount{ID: id, Email: string(id) + "@example.com"})
			gt.NoError(t, repo.PutAccount(ctx, entry))
		}

		directory := newDirectoryMock([]*model.DirectoryAccount{
			{ID: "u1", Email: "u1@example.com"},
			{ID: "u2", Email: "u2@example.com"},
		})

		sync := usecase.NewSync(repo, directory, newCredentialMock("service-token"))
		count, err := sync.SyncGroup(ctx, "g1", "")
		gt.NoError(t, err)
		gt.Equal(t, count, 2)

		cached, err := repo.ListAccounts(ctx)
		gt.NoError(t, err)
		gt.A(t, cached).Length(2)
		for _, entry := range cached {
			gt.NotEqual(t, entry.ExternalID, types.AccountID("old1"))
			gt.NotEqual(t, entry.ExternalID, types.AccountID("old2"))
			gt.NotEqual(t, entry.ExternalID, types.AccountID("old3"))
		}
	})

	t.Run("UpsertPreservesCacheIDAndCreatedAt", func(t *testing.T) {
		repo := repository.NewMemory()
		original := model.NewCachedAccount(&model.DirectoryAccount{ID: "u1", Email: "old@example.com", DisplayName: "Old Name"})
		original.CreatedAt = time.Now().Add(-24 * time.Hour)
		gt.NoError(t, repo.PutAccount(ctx, original))

		directory := newDirectoryMock([]*model.DirectoryAccount{
			{ID: "u1", Email: "new@example.com", DisplayName: "New Name"},
		})

		sync := usecase.NewSync(repo, directory, newCredentialMock("service-token"))
		count, err := sync.SyncGroup(ctx, "g1", "")
		gt.NoError(t, err)
		gt.Equal(t, count, 1)

		updated, err := repo.GetAccountByExternalID(ctx, "u1")
		gt.NoError(t, err)
		gt.NotNil(t, updated)
		gt.Equal(t, updated.ID, original.ID)
		gt.Equal(t, updated.Email, "new@example.com")
		gt.Equal(t, updated.DisplayName, "New Name")
		gt.True(t, updated.CreatedAt.Equal(original.CreatedAt))
		gt.True(t, updated.UpdatedAt.After(original.CreatedAt))
	})

	t.Run("NoCredentialFailsBeforeNetwork", func(t *testing.T) {
		repo := repository.NewMemory()
		directory := newDirectoryMock(nil)

		sync := usecase.NewSync(repo, directory, newCredentialMock(""))
		_, err := sync.SyncGroup(ctx, "g1", "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrNoCredential))
		gt.S(t, err.Error()).Contains("THEMIS_DIRECTORY_TENANT_ID")
		gt.S(t, err.Error()).Contains("THEMIS_DIRECTORY_CLIENT_ID")
		gt.S(t, err.Error()).Contains("THEMIS_DIRECTORY_CLIENT_SECRET")

		// Neither the reachability check nor the fetch ran
		gt.A(t, directory.GetGroupCalls()).Length(0)
		gt.A(t, directory.FetchGroupMembersCalls()).Length(0)
	})

	t.Run("FallbackTokenIsUsed", func(t *testing.T) {
		repo := repository.NewMemory()
		var usedToken types.AccessToken
		directory := newDirectoryMock(nil)
		directory.GetGroupFunc = func(ctx context.Context, token types.AccessToken, groupID types.GroupID) (*model.DirectoryGroup, error) {
			usedToken = token
			return &model.DirectoryGroup{ID: groupID}, nil
		}

		sync := usecase.NewSync(repo, directory, newCredentialMock(""))
		count, err := sync.SyncGroup(ctx, "g1", "fallback-token")
		gt.NoError(t, err)
		gt.Equal(t, count, 0)
		gt.Equal(t, usedToken, types.AccessToken("fallback-token"))
	})

	t.Run("GroupNotFound", func(t *testing.T) {
		repo := repository.NewMemory()
		directory := newDirectoryMock(nil)
		directory.GetGroupFunc = func(ctx context.Context, token types.AccessToken, groupID types.GroupID) (*model.DirectoryGroup, error) {
			return nil, goerr.Wrap(model.ErrDirectoryNotFound, "no such group")
		}

		sync := usecase.NewSync(repo, directory, newCredentialMock("service-token"))
		_, err := sync.SyncGroup(ctx, "missing", "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDirectoryNotFound))
		gt.S(t, err.Error()).Contains("not found or not accessible")
		gt.A(t, directory.FetchGroupMembersCalls()).Length(0)
	})

	t.Run("GroupForbiddenNamesPermission", func(t *testing.T) {
		repo := repository.NewMemory()
		directory := newDirectoryMock(nil)
		directory.GetGroupFunc = func(ctx context.Context, token types.AccessToken, groupID types.GroupID) (*model.DirectoryGroup, error) {
			return nil, goerr.Wrap(model.ErrDirectoryForbidden, "no consent")
		}

		sync := usecase.NewSync(repo, directory, newCredentialMock("service-token"))
		_, err := sync.SyncGroup(ctx, "g1", "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDirectoryForbidden))
		gt.S(t, err.Error()).Contains("GroupMember.Read.All")

		// Fetcher never invoked on a failed reachability check
		gt.A(t, directory.FetchGroupMembersCalls()).Length(0)
	})

	t.Run("FetchErrorPropagatesUnmodified", func(t *testing.T) {
		repo := repository.NewMemory()
		directory := newDirectoryMock(nil)
		directory.FetchGroupMembersFunc = func(ctx context.Context, token types.AccessToken, groupID types.GroupID) ([]*model.DirectoryAccount, error) {
			return nil, goerr.Wrap(model.ErrTooManyRetries, "kept throttling")
		}

		sync := usecase.NewSync(repo, directory, newCredentialMock("service-token"))
		_, err := sync.SyncGroup(ctx, "g1", "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrTooManyRetries))
	})

	t.Run("UpsertFailureSkipsAccountOnly", func(t *testing.T) {
		memory := repository.NewMemory()
		repo := &mocks.RepositoryMock{
			GetAccountByExternalIDFunc: memory.GetAccountByExternalID,
			PutAccountFunc: func(ctx context.Context, account *model.CachedAccount) error {
				if account.ExternalID == "broken" {
					return goerr.New("storage rejected the record")
				}
				return memory.PutAccount(ctx, account)
			},
			DeleteAccountsNotInFunc: memory.DeleteAccountsNotIn,
			PutSyncStatusFunc:       memory.PutSyncStatus,
		}

		directory := newDirectoryMock([]*model.DirectoryAccount{
			{ID: "u1", Email: "u1@example.com"},
			{ID: "broken", Email: "broken@example.com"},
			{ID: "u2", Email: "u2@example.com"},
		})

		sync := usecase.NewSync(repo, directory, newCredentialMock("service-token"))
		count, err := sync.SyncGroup(ctx, "g1", "")
		gt.NoError(t, err)
		gt.Equal(t, count, 2)

		cached, err := memory.ListAccounts(ctx)
		gt.NoError(t, err)
		gt.A(t, cached).Length(2)

		// The run completed, so the marker advances even though one
		// upsert failed.
		status, err := memory.GetSyncStatus(ctx)
		gt.NoError(t, err)
		gt.NotNil(t, status)
	})

	t.Run("EmptyFetchEvictsEverything", func(t *testing.T) {
		repo := repository.NewMemory()
		entry := model.NewCachedAccount(&model.DirectoryAccount{ID: "u1", Email: "u1@example.com"})
		gt.NoError(t, repo.PutAccount(ctx, entry))

		sync := usecase.NewSync(repo, newDirectoryMock(nil), newCredentialMock("service-token"))
		count, err := sync.SyncGroup(ctx, "g1", "")
		gt.NoError(t, err)
		gt.Equal(t, count, 0)

		cached, err := repo.ListAccounts(ctx)
		gt.NoError(t, err)
		gt.A(t, cached).Length(0)
	})

	t.Run("NotifierReceivesResult", func(t *testing.T) {
		repo := repository.NewMemory()
		notifier := &mocks.NotifierMock{
			NotifySyncResultFunc: func(ctx context.Context, groupID types.GroupID, synced, deleted int) error {
				return nil
			},
		}

		directory := newDirectoryMock([]*model.DirectoryAccount{
			{ID: "u1", Email: "u1@example.com"},
		})

		sync := usecase.NewSync(repo, directory, newCredentialMock("service-token"), usecase.WithNotifier(notifier))
		count, err := sync.SyncGroup(ctx, "g1", "")
		gt.NoError(t, err)
		gt.Equal(t, count, 1)

		calls := notifier.NotifySyncResultCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].GroupID, types.GroupID("g1"))
		gt.Equal(t, calls[0].Synced, 1)
		gt.Equal(t, calls[0].Deleted, 0)
	})

	t.Run("NotifierFailureIsNonFatal", func(t *testing.T) {
		repo := repository.NewMemory()
		notifier := &mocks.NotifierMock{
			NotifySyncResultFunc: func(ctx context.Context, groupID types.GroupID, synced, deleted int) error {
				return goerr.New("slack is down")
			},
		}

		directory := newDirectoryMock([]*model.DirectoryAccount{
			{ID: "u1", Email: "u1@example.com"},
		})

		sync := usecase.NewSync(repo, directory, newCredentialMock("service-token"), usecase.WithNotifier(notifier))
		count, err := sync.SyncGroup(ctx, "g1", "")
		gt.NoError(t, err)
		gt.Equal(t, count, 1)
	})
}
