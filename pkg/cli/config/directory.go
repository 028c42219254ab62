package config

import (
	"log/slog"

	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/service/directory"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"
)

// Directory holds directory API configuration
type Directory struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	AccessToken  string
	BaseURL      string
	RateLimit    float64
}

// Flags returns CLI flags for Directory configuration
func (d *Directory) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "directory-tenant-id",
			Usage:       "Directory tenant ID for the client credentials grant",
			Category:    "Directory",
			Sources:     cli.EnvVars("THEMIS_DIRECTORY_TENANT_ID"),
			Destination: &d.TenantID,
		},
		&cli.StringFlag{
			Name:        "directory-client-id",
			Usage:       "Directory application (client) ID",
			Category:    "Directory",
			Sources:     cli.EnvVars("THEMIS_DIRECTORY_CLIENT_ID"),
			Destination: &d.ClientID,
		},
		&cli.StringFlag{
			Name:        "directory-client-secret",
			Usage:       "Directory application client secret",
			Category:    "Directory",
			Sources:     cli.EnvVars("THEMIS_DIRECTORY_CLIENT_SECRET"),
			Destination: &d.ClientSecret,
		},
		&cli.StringFlag{
			Name:        "directory-access-token",
			Usage:       "Static directory access token, used when no client credentials are configured",
			Category:    "Directory",
			Sources:     cli.EnvVars("THEMIS_DIRECTORY_ACCESS_TOKEN"),
			Destination: &d.AccessToken,
		},
		&cli.StringFlag{
			Name:        "directory-base-url",
			Usage:       "Directory API base URL",
			Category:    "Directory",
			Value:       directory.DefaultBaseURL,
			Sources:     cli.EnvVars("THEMIS_DIRECTORY_BASE_URL"),
			Destination: &d.BaseURL,
		},
		&cli.FloatFlag{
			Name:        "directory-rate-limit",
			Usage:       "Maximum directory API requests per second (0 disables pacing)",
			Category:    "Directory",
			Value:       4,
			Sources:     cli.EnvVars("THEMIS_DIRECTORY_RATE_LIMIT"),
			Destination: &d.RateLimit,
		},
	}
}

// ConfigureClient creates a directory API client
func (d *Directory) ConfigureClient() *directory.Client {
	opts := []directory.ClientOption{}
	if d.BaseURL != "" {
		opts = append(opts, directory.WithBaseURL(d.BaseURL))
	}
	if d.RateLimit > 0 {
		opts = append(opts, directory.WithRateLimiter(rate.NewLimiter(rate.Limit(d.RateLimit), 1)))
	}
	return directory.NewClient(opts...)
}

// ConfigureCredential creates the credential provider. An unconfigured
// provider is valid and yields an empty token.
func (d *Directory) ConfigureCredential() *directory.Credential {
	return directory.NewCredential(d.TenantID, d.ClientID, d.ClientSecret)
}

// FallbackToken returns the static access token, empty when unset
func (d *Directory) FallbackToken() types.AccessToken {
	return types.AccessToken(d.AccessToken)
}

// IsConfigured checks if the client credentials grant is fully configured
func (d *Directory) IsConfigured() bool {
	return d.TenantID != "" && d.ClientID != "" && d.ClientSecret != ""
}

// LogValue returns structured log value
func (d Directory) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_tenant_id", d.TenantID != ""),
		slog.Bool("has_client_id", d.ClientID != ""),
		slog.Bool("has_client_secret", d.ClientSecret != ""),
		slog.Bool("has_access_token", d.AccessToken != ""),
		slog.String("base_url", d.BaseURL),
		slog.Float64("rate_limit", d.RateLimit),
	)
}
