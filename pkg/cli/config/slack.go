package config

import (
	"log/slog"

	"github.com/secmon-lab/themis/pkg/service/notify"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack notification configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for posting sync results",
			Category:    "Slack",
			Sources:     cli.EnvVars("THEMIS_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID for sync result notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("THEMIS_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// ConfigureOptional creates a Slack notifier if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) *notify.Slack {
	if !s.IsConfigured() {
		logger.Warn("Slack not configured - sync results will not be notified")
		return nil
	}

	logger.Info("Configuring Slack notifier", "channel", s.Channel)
	return notify.NewSlack(s.OAuthToken, s.Channel)
}

// IsConfigured checks if Slack notification is properly configured
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
