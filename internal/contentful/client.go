package contentful

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/runtimeconfig"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// ErrNotConfigured indicates the client is missing space or token credentials.
var ErrNotConfigured = errors.New("contentful: client is not configured")

// APIError reports a non-success response from the content API. The preview
// service passes the upstream status through to its own clients.
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("contentful: unexpected status %d from %s", e.StatusCode, e.URL)
}

// Query parameterizes a list request against the content API.
type Query struct {
	ContentType string
	Order       string
	Locale      string
	Slug        string
	ID          string
	Include     int
	Limit       int
}

// Source is the read-only content query contract consumed by the generator
// and the preview service. Client is the production implementation; tests
// substitute fixtures.
type Source interface {
	GetEntries(ctx context.Context, q Query) (*Collection, error)
}

// Client fetches entry collections from the headless content API. There is
// no retry policy and no deadline beyond the caller's context; each
// generation run is a full re-fetch.
type Client struct {
	cfg     runtimeconfig.ContentfulConfig
	http    *http.Client
	logger  interfaces.Logger
	preview bool
}

// ClientOption customises client construction.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger attaches a logger to the client.
func WithLogger(logger interfaces.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPreview switches the client to the preview host and token so draft
// entries are included in responses.
func WithPreview(enabled bool) ClientOption {
	return func(c *Client) {
		c.preview = enabled
	}
}

// NewClient constructs a content API client from the supplied configuration.
func NewClient(cfg runtimeconfig.ContentfulConfig, opts ...ClientOption) *Client {
	c := &Client{
		cfg:    cfg,
		http:   http.DefaultClient,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// GetEntries performs one list query and decodes the items plus the includes
// index. Non-2xx responses surface as *APIError.
func (c *Client) GetEntries(ctx context.Context, q Query) (*Collection, error) {
	if c == nil || !c.configured() {
		return nil, ErrNotConfigured
	}
	if ctx == nil {
		ctx = context.Background()
	}

	endpoint := c.entriesURL(q)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("contentful: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token())
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("contentful.entries.fetch",
		"content_type", q.ContentType,
		"include", q.Include,
		"preview", c.preview)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contentful: entries query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			URL:        redactURL(endpoint),
			Body:       string(body),
		}
		c.logger.Error("contentful.entries.failed",
			"status", resp.StatusCode,
			"content_type", q.ContentType)
		return nil, apiErr
	}

	var collection Collection
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		return nil, fmt.Errorf("contentful: decode entries response: %w", err)
	}

	c.logger.Debug("contentful.entries.ok",
		"content_type", q.ContentType,
		"items", len(collection.Items),
		"included_entries", len(collection.Includes.Entry),
		"included_assets", len(collection.Includes.Asset))

	return &collection, nil
}

func (c *Client) configured() bool {
	if c.preview {
		return c.cfg.PreviewConfigured()
	}
	return c.cfg.Configured()
}

func (c *Client) token() string {
	if c.preview {
		return c.cfg.PreviewToken
	}
	return c.cfg.AccessToken
}

func (c *Client) host() string {
	host := c.cfg.Host
	if c.preview {
		host = c.cfg.PreviewHost
	}
	host = strings.TrimSpace(host)
	if host == "" {
		if c.preview {
			return "preview.contentful.com"
		}
		return "cdn.contentful.com"
	}
	return host
}

func (c *Client) entriesURL(q Query) string {
	host := c.host()
	base := host
	if !strings.Contains(host, "://") {
		base = "https://" + host
	}
	environment := strings.TrimSpace(c.cfg.Environment)
	if environment == "" {
		environment = "master"
	}

	params := url.Values{}
	if q.ContentType != "" {
		params.Set("content_type", q.ContentType)
	}
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	locale := q.Locale
	if locale == "" {
		locale = c.cfg.Locale
	}
	if locale != "" {
		params.Set("locale", locale)
	}
	include := q.Include
	if include <= 0 {
		include = c.cfg.IncludeDepth
	}
	if include > 0 {
		params.Set("include", strconv.Itoa(include))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Slug != "" {
		params.Set("fields.slug", q.Slug)
	}
	if q.ID != "" {
		params.Set("sys.id", q.ID)
	}

	return fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		strings.TrimRight(base, "/"),
		url.PathEscape(c.cfg.SpaceID),
		url.PathEscape(environment),
		params.Encode())
}

// redactURL strips query parameters before an endpoint lands in an error
// message or a log entry.
func redactURL(endpoint string) string {
	if idx := strings.IndexByte(endpoint, '?'); idx >= 0 {
		return endpoint[:idx]
	}
	return endpoint
}
