package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

const (
	// maxPageRetries caps consecutive throttled retries on a single page
	maxPageRetries = 5
	baseRetryDelay = 500 * time.Millisecond
)

// memberSelectFields is the reduced property set requested on every
// non-cursor directory call.
var memberSelectFields = []string{"id", "mail", "userPrincipalName", "displayName", "givenName", "surname"}

// Service implements interfaces.DirectoryService on top of a DirectoryClient
type Service struct {
	client interfaces.DirectoryClient
	sleep  func(ctx context.Context, d time.Duration) error
}

// ServiceOption is a functional option for configuring Service
type ServiceOption func(*Service)

// WithSleepFunc replaces the backoff sleep, used to avoid real waits in tests
func WithSleepFunc(sleep func(ctx context.Context, d time.Duration) error) ServiceOption {
	return func(s *Service) {
		s.sleep = sleep
	}
}

// NewService creates a new directory service
func NewService(client interfaces.DirectoryClient, opts ...ServiceOption) *Service {
	svc := &Service{
		client: client,
		sleep:  sleepContext,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var _ interfaces.DirectoryService = (*Service)(nil)

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// GetGroup implements interfaces.DirectoryService
func (s *Service) GetGroup(ctx context.Context, token types.AccessToken, groupID types.GroupID) (*model.DirectoryGroup, error) {
	page, err := s.fetchPage(ctx, token, "groups/"+groupID.String(), nil)
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 {
		return nil, goerr.Wrap(model.ErrDirectoryNotFound, "group metadata is empty", goerr.V("groupID", groupID))
	}

	record := page.Items[0]
	return &model.DirectoryGroup{
		ID:          types.GroupID(record.ID),
		DisplayName: record.DisplayName,
	}, nil
}

// FetchGroupMembers implements interfaces.DirectoryService. Candidate
// endpoints are tried in priority order and the first one yielding at
// least one qualifying account wins. Direct membership comes first
// because it is cheaper; transitive membership covers backends that
// only materialize nested results there.
func (s *Service) FetchGroupMembers(ctx context.Context, token types.AccessToken, groupID types.GroupID) ([]*model.DirectoryAccount, error) {
	logger := ctxlog.From(ctx)

	endpoints := []string{
		fmt.Sprintf("groups/%s/members", groupID),
		fmt.Sprintf("groups/%s/transitiveMembers", groupID),
	}

	for i, endpoint := range endpoints {
		accounts, err := s.fetchFromEndpoint(ctx, token, endpoint)
		if err != nil {
			if errors.Is(err, model.ErrDirectoryNotFound) {
				// Missing membership endpoint is not an empty group
				logger.Debug("Membership endpoint not found, trying next candidate",
					"endpoint", endpoint,
				)
				continue
			}
			if i < len(endpoints)-1 {
				logger.Warn("Membership endpoint failed, trying next candidate",
					"endpoint", endpoint,
					"error", err,
				)
				continue
			}
			return nil, err
		}
		if len(accounts) > 0 {
			return accounts, nil
		}
	}

	logger.Warn("No members found on any membership endpoint",
		"groupID", groupID.String(),
	)
	return []*model.DirectoryAccount{}, nil
}

// fetchFromEndpoint drains one endpoint across pagination and normalizes
// the raw records into directory accounts.
func (s *Service) fetchFromEndpoint(ctx context.Context, token types.AccessToken, endpoint string) ([]*model.DirectoryAccount, error) {
	logger := ctxlog.From(ctx)

	var accounts []*model.DirectoryAccount
	detailFailures := 0

	resource := endpoint
	selectFields := memberSelectFields
	for {
		page, err := s.fetchPage(ctx, token, resource, selectFields)
		if err != nil {
			return nil, err
		}

		for i := range page.Items {
			record := page.Items[i]
			if !record.IsAccount() {
				continue
			}

			if record.BestEmail() == "" && record.BestDisplayName() == "" {
				detail, err := s.fetchPage(ctx, token, "users/"+record.ID, memberSelectFields)
				if err != nil {
					detailFailures++
					logger.Warn("Account detail lookup failed, continuing with partial record",
						"accountID", record.ID,
						"error", err,
					)
				} else if len(detail.Items) > 0 {
					record.Merge(&detail.Items[0])
				}
			}

			email := record.BestEmail()
			if email == "" {
				// No way to correlate this record to a local identity
				continue
			}

			accounts = append(accounts, &model.DirectoryAccount{
				ID:          types.AccountID(record.ID),
				Email:       email,
				DisplayName: record.BestDisplayName(),
			})
		}

		if page.NextCursor == "" {
			break
		}
		resource = page.NextCursor
		selectFields = nil
	}

	if detailFailures > 0 {
		logger.Warn("Some account detail lookups failed during fetch",
			"endpoint", endpoint,
			"failureCount", detailFailures,
		)
	}

	return accounts, nil
}

// fetchPage fetches a single page, retrying on throttling with the
// server hint when present or exponential backoff otherwise. The cursor
// never advances across retries.
func (s *Service) fetchPage(ctx context.Context, token types.AccessToken, resource string, selectFields []string) (*model.DirectoryPage, error) {
	for attempt := 0; ; attempt++ {
		page, err := s.client.Fetch(ctx, token, resource, selectFields)
		if err == nil {
			return page, nil
		}

		var throttled *model.ThrottledError
		if !errors.As(err, &throttled) {
			return nil, err
		}
		if attempt >= maxPageRetries {
			return nil, goerr.Wrap(model.ErrTooManyRetries, "page fetch kept being throttled",
				goerr.V("resource", resource),
				goerr.V("retries", attempt),
			)
		}

		delay := throttled.RetryAfter
		if delay <= 0 {
			delay = baseRetryDelay << attempt
		}
		ctxlog.From(ctx).Debug("Throttled by directory API, backing off",
			"resource", resource,
			"attempt", attempt+1,
			"delay", delay.String(),
		)
		if err := s.sleep(ctx, delay); err != nil {
			return nil, goerr.Wrap(err, "throttling backoff interrupted")
		}
	}
}
