package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/slack-go/slack"
)

// SlackPoster is the subset of the Slack API used by the notifier
type SlackPoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Slack posts sync results to a Slack channel
type Slack struct {
	client  SlackPoster
	channel string
}

// NewSlack creates a new Slack notifier
func NewSlack(token, channel string) *Slack {
	return &Slack{
		client:  slack.New(token),
		channel: channel,
	}
}

// NewSlackWithClient creates a notifier with an injected API client
func NewSlackWithClient(client SlackPoster, channel string) *Slack {
	return &Slack{
		client:  client,
		channel: channel,
	}
}

var _ interfaces.Notifier = (*Slack)(nil)

// NotifySyncResult implements interfaces.Notifier
func (s *Slack) NotifySyncResult(ctx context.Context, groupID types.GroupID, synced, deleted int) error {
	if s.channel == "" {
		return goerr.New("notification channel is required")
	}

	text := fmt.Sprintf("Directory sync completed for group `%s`: %d account(s) synced, %d stale entry(ies) removed",
		groupID.String(), synced, deleted)

	_, _, err := s.client.PostMessageContext(ctx, s.channel,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post sync result to Slack",
			goerr.V("channel", s.channel),
			goerr.V("groupID", groupID),
		)
	}
	return nil
}
