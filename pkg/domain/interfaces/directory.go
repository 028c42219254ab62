package interfaces

//go:generate moq -out mocks/directory_mock.go -pkg mocks . DirectoryClient DirectoryService CredentialProvider Notifier

import (
	"context"

	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// DirectoryClient issues a single request to the directory API.
//
// resource is either a canonical relative path (e.g. "groups/{id}/members")
// or an opaque absolute continuation URL returned by a prior page; both are
// handled uniformly. selectFields requests a reduced property set and is
// applied only to relative paths. Continuation URLs already embed whatever
// the server decided and must not be modified.
//
// Errors are classified by status code: 404 wraps model.ErrDirectoryNotFound,
// 403 wraps model.ErrDirectoryForbidden, 429 returns *model.ThrottledError
// with the optional retry-after hint, anything else non-2xx is a generic
// error.
type DirectoryClient interface {
	Fetch(ctx context.Context, token types.AccessToken, resource string, selectFields []string) (*model.DirectoryPage, error)
}

// DirectoryService provides group-level directory operations
type DirectoryService interface {
	// GetGroup fetches the group's own metadata, used as a reachability check
	GetGroup(ctx context.Context, token types.AccessToken, groupID types.GroupID) (*model.DirectoryGroup, error)

	// FetchGroupMembers resolves the full member set of a group across
	// pagination and candidate endpoint variants
	FetchGroupMembers(ctx context.Context, token types.AccessToken, groupID types.GroupID) ([]*model.DirectoryAccount, error)
}

// CredentialProvider supplies the application-level directory credential.
// It must be safe to call repeatedly; an empty token with a nil error means
// no service credential is configured.
type CredentialProvider interface {
	ServiceCredential(ctx context.Context) (types.AccessToken, error)
}

// Notifier reports sync results to an external channel
type Notifier interface {
	NotifySyncResult(ctx context.Context, groupID types.GroupID, synced, deleted int) error
}
