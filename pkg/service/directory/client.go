package directory

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the directory API root used when no override is given
const DefaultBaseURL = "https://graph.microsoft.com/v1.0"

// Client is an HTTP implementation of interfaces.DirectoryClient
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOption is a functional option for configuring Client
type ClientOption func(*Client)

// WithBaseURL overrides the directory API root URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRateLimiter paces outgoing requests with the given limiter
func WithRateLimiter(limiter *rate.Limiter) ClientOption {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// NewClient creates a new directory API client
func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

var _ interfaces.DirectoryClient = (*Client)(nil)

// Fetch implements interfaces.DirectoryClient
func (c *Client) Fetch(ctx context.Context, token types.AccessToken, resource string, selectFields []string) (*model.DirectoryPage, error) {
	if token.IsEmpty() {
		return nil, goerr.Wrap(model.ErrNoCredential, "fetch requires a credential", goerr.V("resource", resource))
	}

	requestURL, err := c.buildURL(resource, selectFields)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, goerr.Wrap(err, "rate limiter wait interrupted")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build directory request", goerr.V("url", requestURL))
	}
	req.Header.Set("Authorization", "Bearer "+token.String())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "directory request failed", goerr.V("url", requestURL))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read directory response", goerr.V("url", requestURL))
	}

	if err := classifyStatus(resp, resource); err != nil {
		return nil, err
	}

	return decodePage(body, resource)
}

// buildURL joins a relative resource path with the base URL and attaches
// the field selection. Absolute continuation URLs are used verbatim.
func (c *Client) buildURL(resource string, selectFields []string) (string, error) {
	if strings.HasPrefix(resource, "http://") || strings.HasPrefix(resource, "https://") {
		return resource, nil
	}

	requestURL := c.baseURL + "/" + strings.TrimLeft(resource, "/")
	if len(selectFields) == 0 {
		return requestURL, nil
	}

	parsed, err := url.Parse(requestURL)
	if err != nil {
		return "", goerr.Wrap(err, "invalid directory resource", goerr.V("resource", resource))
	}
	query := parsed.Query()
	query.Set("$select", strings.Join(selectFields, ","))
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func classifyStatus(resp *http.Response, resource string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return goerr.Wrap(model.ErrDirectoryNotFound, "directory returned 404", goerr.V("resource", resource))
	case http.StatusForbidden:
		return goerr.Wrap(model.ErrDirectoryForbidden, "directory returned 403", goerr.V("resource", resource))
	case http.StatusTooManyRequests:
		return &model.ThrottledError{RetryAfter: retryAfterHint(resp)}
	default:
		return goerr.New("unexpected directory response",
			goerr.V("resource", resource),
			goerr.V("status", resp.StatusCode),
		)
	}
}

// retryAfterHint parses the Retry-After header as a second count,
// returning zero when absent or malformed.
func retryAfterHint(resp *http.Response) time.Duration {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func decodePage(body []byte, resource string) (*model.DirectoryPage, error) {
	var envelope struct {
		Value    json.RawMessage `json:"value"`
		NextLink string          `json:"@odata.nextLink"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, goerr.Wrap(err, "failed to decode directory response", goerr.V("resource", resource))
	}

	page := &model.DirectoryPage{NextCursor: envelope.NextLink}

	if envelope.Value != nil {
		if err := json.Unmarshal(envelope.Value, &page.Items); err != nil {
			return nil, goerr.Wrap(err, "failed to decode directory records", goerr.V("resource", resource))
		}
		return page, nil
	}

	// An object without a value array is a single-entity response
	var record model.DirectoryRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode directory record", goerr.V("resource", resource))
	}
	if record.ID != "" {
		page.Items = []model.DirectoryRecord{record}
	}
	return page, nil
}
