package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/tokenkit/tokenkit/tokens"
)

// DefaultFetchTimeout bounds a single catalog request.
const DefaultFetchTimeout = 10 * time.Second

// Client fetches a remote model catalog. Transport failures and server
// errors are retried with exponential backoff; client errors are not.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a catalog client for the given feed URL.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:        url,
		httpClient: &http.Client{Timeout: DefaultFetchTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves and validates the catalog feed.
func (c *Client) Fetch(ctx context.Context) (Payload, error) {
	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Warn("catalog fetch failed", zap.String("url", c.url), zap.Error(err))
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			c.logger.Warn("catalog fetch retryable status",
				zap.String("url", c.url), zap.Int("status", resp.StatusCode))
			return fmt.Errorf("catalog fetch: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("catalog fetch: status %d", resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return nil
	}

	strategy := backoff.NewExponentialBackOff()
	if err := backoff.Retry(operation, backoff.WithContext(strategy, ctx)); err != nil {
		return Payload{}, err
	}

	p, err := ParsePayload(body)
	if err != nil {
		return Payload{}, err
	}
	c.logger.Debug("catalog fetched", zap.String("url", c.url), zap.Int("models", len(p.Data)))
	return p, nil
}

// FetchTokenMap fetches the feed and normalizes it into a token table.
func (c *Client) FetchTokenMap(ctx context.Context) (*tokens.TokenMap, error) {
	p, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Normalize(p)
}
