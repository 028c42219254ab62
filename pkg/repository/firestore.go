package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	accountsCollection   = "cached_accounts"
	syncStatusCollection = "sync_status"

	// Document IDs
	syncStatusDocID = "directory"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Test connection by attempting to read from a collection.
	// This fails fast on an invalid project ID or missing permissions.
	_, err = client.Collection(accountsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		// For other errors (like NotFound for new projects), log but continue
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// GetAccountByExternalID retrieves a cached account by external ID.
// Returns (nil, nil) when no entry exists.
func (f *Firestore) GetAccountByExternalID(ctx context.Context, id types.AccountID) (*model.CachedAccount, error) {
	if id == "" {
		return nil, goerr.New("account external ID is empty")
	}

	iter := f.client.Collection(accountsCollection).
		Where("ExternalID", "==", id.String()).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query account by external ID")
	}

	var account model.CachedAccount
	if err := doc.DataTo(&account); err != nil {
		return nil, goerr.Wrap(err, "failed to decode account")
	}

	return &account, nil
}

// PutAccount saves a cached account
func (f *Firestore) PutAccount(ctx context.Context, account *model.CachedAccount) error {
	if account == nil {
		return goerr.New("account is nil")
	}
	if account.ID == "" {
		return goerr.New("account ID is empty")
	}
	if account.ExternalID == "" {
		return goerr.New("account external ID is empty")
	}

	_, err := f.client.Collection(accountsCollection).Doc(account.ID.String()).Set(ctx, account)
	if err != nil {
		return goerr.Wrap(err, "failed to save account to firestore",
			goerr.V("externalID", account.ExternalID))
	}

	return nil
}

// ListAccounts retrieves all cached accounts
func (f *Firestore) ListAccounts(ctx context.Context) ([]*model.CachedAccount, error) {
	iter := f.client.Collection(accountsCollection).Documents(ctx)
	defer iter.Stop()

	var accounts []*model.CachedAccount
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate accounts")
		}

		var account model.CachedAccount
		if err := doc.DataTo(&account); err != nil {
			return nil, goerr.Wrap(err, "failed to decode account")
		}

		accounts = append(accounts, &account)
	}

	return accounts, nil
}

// DeleteAccountsNotIn removes every cache entry whose external ID is not
// in keep, returning the number of deleted entries
func (f *Firestore) DeleteAccountsNotIn(ctx context.Context, keep []types.AccountID) (int, error) {
	keepSet := make(map[types.AccountID]bool, len(keep))
	for _, id := range keep {
		keepSet[id] = true
	}

	iter := f.client.Collection(accountsCollection).Documents(ctx)
	defer iter.Stop()

	deleted := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, goerr.Wrap(err, "failed to iterate accounts for eviction")
		}

		var account model.CachedAccount
		if err := doc.DataTo(&account); err != nil {
			return deleted, goerr.Wrap(err, "failed to decode account for eviction")
		}

		if keepSet[account.ExternalID] {
			continue
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, goerr.Wrap(err, "failed to delete stale account",
				goerr.V("externalID", account.ExternalID))
		}
		deleted++
	}

	return deleted, nil
}

// GetSyncStatus retrieves the sync status marker.
// Returns (nil, nil) when no sync has run yet.
func (f *Firestore) GetSyncStatus(ctx context.Context) (*model.SyncStatus, error) {
	doc, err := f.client.Collection(syncStatusCollection).Doc(syncStatusDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get sync status from firestore")
	}

	var syncStatus model.SyncStatus
	if err := doc.DataTo(&syncStatus); err != nil {
		return nil, goerr.Wrap(err, "failed to decode sync status")
	}

	return &syncStatus, nil
}

// PutSyncStatus saves the sync status marker
func (f *Firestore) PutSyncStatus(ctx context.Context, syncStatus *model.SyncStatus) error {
	if syncStatus == nil {
		return goerr.New("sync status is nil")
	}

	_, err := f.client.Collection(syncStatusCollection).Doc(syncStatusDocID).Set(ctx, syncStatus)
	if err != nil {
		return goerr.Wrap(err, "failed to save sync status to firestore")
	}

	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.Repository = (*Firestore)(nil) // Compile-time interface check
