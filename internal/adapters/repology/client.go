// Package repology implements the LookupService port against a
// Repology-compatible package metadata API.
package repology

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/crossgrade/crossgrade/internal/core/domain"
	"github.com/crossgrade/crossgrade/internal/core/ports"
	"github.com/jonboulle/clockwork"
	"resty.dev/v3"
)

const (
	searchPath  = "/api/v1/projects/"
	projectPath = "/api/v1/project/"

	// maxAttempts bounds one logical lookup, first try included.
	maxAttempts = 3

	// initialBackoff is the delay before the second attempt. It doubles
	// before the third.
	initialBackoff = 2 * time.Second

	// attemptTimeout caps each individual attempt.
	attemptTimeout = 10 * time.Second
)

// Config carries the client's construction parameters.
type Config struct {
	// BaseURL of the lookup service. Defaults to the public instance.
	BaseURL string

	// UserAgent identifies this tool to the service, which requires clients
	// to be identifiable. See UserAgent.
	UserAgent string

	// Transport overrides the HTTP transport, used by tests.
	Transport http.RoundTripper
}

// Client implements ports.LookupService. It owns pacing and retries:
// callers see either candidates, an empty list (including after the service
// failed every attempt) or a context error, nothing else.
type Client struct {
	resty  *resty.Client
	pacer  ports.Pacer
	clock  clockwork.Clock
	logger ports.Logger
}

// New creates a lookup client for the service at cfg.BaseURL.
func New(cfg Config, pacer ports.Pacer, clock clockwork.Clock, logger ports.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = domain.DefaultLookupBaseURL
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(attemptTimeout).
		SetHeader("User-Agent", cfg.UserAgent)
	if cfg.Transport != nil {
		rc.SetTransport(cfg.Transport)
	}

	return &Client{
		resty:  rc,
		pacer:  pacer,
		clock:  clock,
		logger: logger,
	}
}

// UserAgent builds the identifying User-Agent string sent on every request.
func UserAgent(version, contact string) string {
	if contact == "" {
		return fmt.Sprintf("crossgrade/%s", version)
	}
	return fmt.Sprintf("crossgrade/%s (%s)", version, contact)
}

// SearchExact queries the exact-name project search, returning candidates in
// response order.
func (c *Client) SearchExact(ctx context.Context, name string) ([]domain.Candidate, error) {
	query := url.Values{}
	query.Set("search", name)
	query.Set("exact", "1")

	body, err := c.fetch(ctx, searchPath+"?"+query.Encode())
	if err != nil {
		return nil, err
	}

	return extractSearch(body), nil
}

// FetchProject retrieves one project's package records by ID, returning
// candidates in response order.
func (c *Client) FetchProject(ctx context.Context, id string) ([]domain.Candidate, error) {
	body, err := c.fetch(ctx, projectPath+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	return extractProject(body), nil
}

// fetch runs the paced, retried request cycle for one logical lookup.
// Exhausting every attempt returns a nil body and nil error: an unreachable
// service means "no candidates", never a failed batch. The only errors
// escaping are context cancellation and deadline expiry.
func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	backoff := initialBackoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		body, status, err := c.attempt(ctx, path)
		if err == nil {
			switch {
			case status >= 200 && status < 300:
				return body, nil
			case status == http.StatusNotFound:
				// Authoritative absence, not worth retrying.
				return nil, nil
			default:
				err = fmt.Errorf("unexpected status %d", status)
			}
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		c.logger.Warn(fmt.Sprintf("lookup attempt %d/%d failed for %s: %v", attempt, maxAttempts, path, err))

		if attempt < maxAttempts {
			select {
			case <-c.clock.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff *= 2
		}
	}

	return nil, nil
}

func (c *Client) attempt(ctx context.Context, path string) ([]byte, int, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(path)
	if err != nil {
		return nil, 0, err
	}

	raw := resp.RawResponse
	defer func() { _ = raw.Body.Close() }()

	body, err := io.ReadAll(raw.Body)
	if err != nil {
		return nil, 0, err
	}

	return body, raw.StatusCode, nil
}
