package directory

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultTokenScope = "https://graph.microsoft.com/.default"

// Credential obtains application-level directory tokens via the OAuth2
// client credentials grant. A provider built from incomplete settings is
// valid and reports no credential rather than erroring, so callers can
// fall through to other credential sources.
type Credential struct {
	config *clientcredentials.Config
}

// CredentialOption is a functional option for configuring Credential
type CredentialOption func(*Credential)

// WithTokenURL overrides the token endpoint, used in tests
func WithTokenURL(tokenURL string) CredentialOption {
	return func(c *Credential) {
		if c.config != nil {
			c.config.TokenURL = tokenURL
		}
	}
}

// NewCredential creates a credential provider for the given tenant. When
// any of the three settings is empty the provider is unconfigured.
func NewCredential(tenantID, clientID, clientSecret string, opts ...CredentialOption) *Credential {
	cred := &Credential{}
	if tenantID != "" && clientID != "" && clientSecret != "" {
		cred.config = &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", tenantID),
			Scopes:       []string{defaultTokenScope},
			AuthStyle:    oauth2.AuthStyleInParams,
		}
	}
	for _, opt := range opts {
		opt(cred)
	}
	return cred
}

var _ interfaces.CredentialProvider = (*Credential)(nil)

// ServiceCredential implements interfaces.CredentialProvider
func (c *Credential) ServiceCredential(ctx context.Context) (types.AccessToken, error) {
	if c.config == nil {
		return "", nil
	}

	token, err := c.config.Token(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to obtain service credential")
	}
	return types.AccessToken(token.AccessToken), nil
}
