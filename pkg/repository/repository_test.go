package repository_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/repository"
)

func newAccount(externalID types.AccountID, email string) *model.CachedAccount {
	return model.NewCachedAccount(&model.DirectoryAccount{
		ID:          externalID,
		Email:       email,
		DisplayName: "Test Account",
	})
}

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("PutAccount", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		externalID := types.AccountID(fmt.Sprintf("acct-%d", time.Now().UnixNano()))
		account := newAccount(externalID, "alice@example.com")

		err := repo.PutAccount(ctx, account)
		gt.NoError(t, err)

		retrieved, err := repo.GetAccountByExternalID(ctx, externalID)
		gt.NoError(t, err)
		gt.NotNil(t, retrieved)
		gt.Equal(t, account.ID, retrieved.ID)
		gt.Equal(t, account.ExternalID, retrieved.ExternalID)
		gt.Equal(t, account.Email, retrieved.Email)
		gt.Equal(t, account.DisplayName, retrieved.DisplayName)
	})

	t.Run("PutAccount_OverwritesByExternalID", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		externalID := types.AccountID(fmt.Sprintf("acct-%d", time.Now().UnixNano()))

		first := newAccount(externalID, "before@example.com")
		gt.NoError(t, repo.PutAccount(ctx, first))

		updated := *first
		updated.Email = "after@example.com"
		updated.UpdatedAt = time.Now()
		gt.NoError(t, repo.PutAccount(ctx, &updated))

		retrieved, err := repo.GetAccountByExternalID(ctx, externalID)
		gt.NoError(t, err)
		gt.NotNil(t, retrieved)
		gt.Equal(t, "after@example.com", retrieved.Email)
	})

	t.Run("GetAccountByExternalID_Absent", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		retrieved, err := repo.GetAccountByExternalID(ctx, types.AccountID(fmt.Sprintf("missing-%d", time.Now().UnixNano())))
		gt.NoError(t, err)
		gt.V(t, retrieved).Nil()
	})

	t.Run("GetAccountByExternalID_EmptyID", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		_, err := repo.GetAccountByExternalID(ctx, "")
		gt.Error(t, err)
	})

	t.Run("DeleteAccountsNotIn", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		prefix := fmt.Sprintf("evict-%d", time.Now().UnixNano())
		var ids []types.AccountID
		for i := 0; i < 5; i++ {
			id := types.AccountID(fmt.Sprintf("%s-%d", prefix, i))
			ids = append(ids, id)
			gt.NoError(t, repo.PutAccount(ctx, newAccount(id, fmt.Sprintf("user%d@example.com", i))))
		}

		// Keep the first two, evict the rest
		deleted, err := repo.DeleteAccountsNotIn(ctx, ids[:2])
		gt.NoError(t, err)
		gt.Equal(t, 3, deleted)

		for _, id := range ids[:2] {
			retrieved, err := repo.GetAccountByExternalID(ctx, id)
			gt.NoError(t, err)
			gt.NotNil(t, retrieved)
		}
		for _, id := range ids[2:] {
			retrieved, err := repo.GetAccountByExternalID(ctx, id)
			gt.NoError(t, err)
			gt.V(t, retrieved).Nil()
		}
	})

	t.Run("DeleteAccountsNotIn_NothingToDelete", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		id := types.AccountID(fmt.Sprintf("keep-%d", time.Now().UnixNano()))
		gt.NoError(t, repo.PutAccount(ctx, newAccount(id, "keep@example.com")))

		deleted, err := repo.DeleteAccountsNotIn(ctx, []types.AccountID{id})
		gt.NoError(t, err)
		gt.Equal(t, 0, deleted)
	})

	t.Run("DeleteAccountsNotIn_EmptyKeepSetEvictsAll", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		id := types.AccountID(fmt.Sprintf("gone-%d", time.Now().UnixNano()))
		gt.NoError(t, repo.PutAccount(ctx, newAccount(id, "gone@example.com")))

		deleted, err := repo.DeleteAccountsNotIn(ctx, nil)
		gt.NoError(t, err)
		gt.True(t, deleted >= 1)

		retrieved, err := repo.GetAccountByExternalID(ctx, id)
		gt.NoError(t, err)
		gt.V(t, retrieved).Nil()
	})

	t.Run("ListAccounts", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		prefix := fmt.Sprintf("list-%d", time.Now().UnixNano())
		for i := 0; i < 3; i++ {
			id := types.AccountID(fmt.Sprintf("%s-%d", prefix, i))
			gt.NoError(t, repo.PutAccount(ctx, newAccount(id, fmt.Sprintf("list%d@example.com", i))))
		}

		accounts, err := repo.ListAccounts(ctx)
		gt.NoError(t, err)
		gt.True(t, len(accounts) >= 3)
	})

	t.Run("SyncStatus", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()

		status := model.NewSyncStatus()
		gt.NoError(t, repo.PutSyncStatus(ctx, status))

		retrieved, err := repo.GetSyncStatus(ctx)
		gt.NoError(t, err)
		gt.NotNil(t, retrieved)
		// Timestamp comparison with tolerance for storage precision
		gt.True(t, status.LastSyncedAt.Sub(retrieved.LastSyncedAt).Abs() < time.Second)
	})

	t.Run("PutSyncStatus_Nil", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		err := repo.PutSyncStatus(ctx, nil)
		gt.Error(t, err)
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})

	t.Run("GetSyncStatus_BeforeFirstSync", func(t *testing.T) {
		repo := repository.NewMemory()
		defer repo.Close()

		status, err := repo.GetSyncStatus(context.Background())
		gt.NoError(t, err)
		gt.V(t, status).Nil()
	})
}

func TestFirestoreRepository(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		repo, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err)
		return repo
	})
}
