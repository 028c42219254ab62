package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// Sync orchestrates a directory sync run: credential resolution, group
// reachability check, member fetch and cache reconciliation.
type Sync struct {
	repo       interfaces.Repository
	directory  interfaces.DirectoryService
	credential interfaces.CredentialProvider
	notifier   interfaces.Notifier
}

// SyncOption is a functional option for configuring Sync
type SyncOption func(*Sync)

// WithNotifier enables sync result notification
func WithNotifier(notifier interfaces.Notifier) SyncOption {
	return func(s *Sync) {
		s.notifier = notifier
	}
}

// NewSync creates a new Sync use case
func NewSync(repo interfaces.Repository, directory interfaces.DirectoryService, credential interfaces.CredentialProvider, opts ...SyncOption) *Sync {
	sync := &Sync{
		repo:       repo,
		directory:  directory,
		credential: credential,
	}
	for _, opt := range opts {
		opt(sync)
	}
	return sync
}

var _ interfaces.SyncUseCase = (*Sync)(nil)

// SyncGroup synchronizes the cached membership of a directory group and
// returns the number of accounts successfully cached. fallbackToken is
// used only when no service credential is configured.
func (u *Sync) SyncGroup(ctx context.Context, groupID types.GroupID, fallbackToken types.AccessToken) (int, error) {
	logger := ctxlog.From(ctx)

	token, err := u.resolveCredential(ctx, fallbackToken)
	if err != nil {
		return 0, err
	}

	group, err := u.directory.GetGroup(ctx, token, groupID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrDirectoryNotFound):
			return 0, goerr.Wrap(err, "group not found or not accessible",
				goerr.V("groupID", groupID),
			)
		case errors.Is(err, model.ErrDirectoryForbidden):
			return 0, goerr.Wrap(err, "access denied to group: verify the GroupMember.Read.All application permission is granted and admin-consented",
				goerr.V("groupID", groupID),
			)
		default:
			return 0, err
		}
	}

	logger.Info("Starting directory sync",
		"groupID", groupID.String(),
		"groupName", group.DisplayName,
	)

	accounts, err := u.directory.FetchGroupMembers(ctx, token, groupID)
	if err != nil {
		return 0, err
	}

	synced, deleted, err := u.reconcile(ctx, accounts)
	if err != nil {
		return 0, err
	}

	logger.Info("Directory sync completed",
		"groupID", groupID.String(),
		"fetched", len(accounts),
		"synced", synced,
		"deleted", deleted,
	)

	if u.notifier != nil {
		if err := u.notifier.NotifySyncResult(ctx, groupID, synced, deleted); err != nil {
			logger.Warn("Failed to send sync result notification",
				"groupID", groupID.String(),
				"error", err,
			)
		}
	}

	return synced, nil
}

// resolveCredential prefers the application-level service credential and
// falls back to the supplied token. Failing both is a configuration
// error that names the missing settings.
func (u *Sync) resolveCredential(ctx context.Context, fallbackToken types.AccessToken) (types.AccessToken, error) {
	token, err := u.credential.ServiceCredential(ctx)
	if err != nil {
		return "", err
	}
	if token.IsEmpty() {
		token = fallbackToken
	}
	if token.IsEmpty() {
		return "", goerr.Wrap(model.ErrNoCredential,
			"set THEMIS_DIRECTORY_TENANT_ID, THEMIS_DIRECTORY_CLIENT_ID and THEMIS_DIRECTORY_CLIENT_SECRET, or provide an explicit access token")
	}
	return token, nil
}

// reconcile replaces the cached membership with the fetched set. Upsert
// failures are logged and skipped without aborting the run; eviction
// removes every cached entry whose external ID was not part of the
// fetched set.
func (u *Sync) reconcile(ctx context.Context, accounts []*model.DirectoryAccount) (int, int, error) {
	logger := ctxlog.From(ctx)
	now := time.Now()

	synced := 0
	keep := make([]types.AccountID, 0, len(accounts))
	for _, account := range accounts {
		keep = append(keep, account.ID)

		if err := u.upsertAccount(ctx, account, now); err != nil {
			logger.Warn("Failed to cache account, skipping",
				"externalID", account.ID.String(),
				"email", account.Email,
				"error", err,
			)
			continue
		}
		synced++
	}

	deleted, err := u.repo.DeleteAccountsNotIn(ctx, keep)
	if err != nil {
		return synced, 0, goerr.Wrap(err, "failed to evict stale cached accounts")
	}
	if deleted > 0 {
		logger.Info("Evicted stale cached accounts", "count", deleted)
	}

	// The marker advances even when some upserts failed
	status := model.NewSyncStatus()
	if err := u.repo.PutSyncStatus(ctx, status); err != nil {
		logger.Warn("Failed to update sync status marker", "error", err)
	}

	return synced, deleted, nil
}

func (u *Sync) upsertAccount(ctx context.Context, account *model.DirectoryAccount, now time.Time) error {
	existing, err := u.repo.GetAccountByExternalID(ctx, account.ID)
	if err != nil {
		return goerr.Wrap(err, "failed to look up cached account")
	}

	var entry *model.CachedAccount
	if existing != nil {
		entry = existing
		entry.Email = account.Email
		entry.DisplayName = account.DisplayName
		entry.LastSyncedAt = now
		entry.UpdatedAt = now
	} else {
		entry = model.NewCachedAccount(account)
	}

	if err := u.repo.PutAccount(ctx, entry); err != nil {
		return goerr.Wrap(err, "failed to store cached account")
	}
	return nil
}
