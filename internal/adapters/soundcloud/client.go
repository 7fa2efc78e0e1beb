// Package soundcloud implements the catalog port against the SoundCloud API.
package soundcloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
	"github.com/wvaughn-dev/setforge/internal/core/ports"
)

const defaultBaseURL = "https://api.soundcloud.com"

// Client is an HTTP client for the SoundCloud catalog.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxRetries  int
	baseBackoff time.Duration
	logger      zerolog.Logger
}

// compile-time interface assertion
var _ ports.CatalogProvider = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithRetryPolicy overrides the default retry count and base backoff.
func WithRetryPolicy(maxRetries int, baseBackoff time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.baseBackoff = baseBackoff
	}
}

// WithBaseURL points the client at a different API root, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// NewClient constructs a SoundCloud client. The http.Client should carry the
// OAuth token source from NewAuthenticatedClient.
func NewClient(httpClient *http.Client, logger zerolog.Logger, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		httpClient:  httpClient,
		baseURL:     defaultBaseURL,
		maxRetries:  defaultMaxRetries,
		baseBackoff: defaultBackoff,
		logger:      logger.With().Str("component", "soundcloud").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResolveTrack fetches track metadata for a permalink URL or a numeric
// catalog ID.
func (c *Client) ResolveTrack(ctx context.Context, ref string) (domain.Track, error) {
	var endpoint string
	if _, err := strconv.ParseInt(ref, 10, 64); err == nil {
		endpoint = fmt.Sprintf("%s/tracks/%s", c.baseURL, ref)
	} else {
		endpoint = fmt.Sprintf("%s/resolve?url=%s", c.baseURL, url.QueryEscape(ref))
	}

	var raw soundcloudTrack
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return domain.Track{}, err
	}
	return raw.toDomain(), nil
}

// RelatedTracks fetches the catalog's related tracks for a track ID.
func (c *Client) RelatedTracks(ctx context.Context, trackID string, limit int) ([]domain.Track, error) {
	endpoint := fmt.Sprintf("%s/tracks/%s/related?limit=%d", c.baseURL, url.PathEscape(trackID), limit)

	var raw []soundcloudTrack
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, err
	}
	return tracksToDomain(raw), nil
}

// SearchTracks runs a free-text track search.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	endpoint := fmt.Sprintf("%s/tracks?q=%s&limit=%d", c.baseURL, url.QueryEscape(query), limit)

	var raw []soundcloudTrack
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, err
	}
	return tracksToDomain(raw), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("soundcloud adapter: %w", err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("soundcloud adapter: %w: %w", ports.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("soundcloud adapter: %w", domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("soundcloud adapter: status %d: %w", resp.StatusCode, ports.ErrCatalogUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("soundcloud adapter: decode response: %w", err)
	}
	return nil
}
