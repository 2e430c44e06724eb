// Package server implements the fetch ports against a SonarQube compatible web API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	defaultTimeout = 30 * time.Second
	defaultRetries = 3
	// maxErrorBody bounds how much of a failed response is kept in the error.
	maxErrorBody = 512
)

// Client talks to the server. It is safe for concurrent use.
// A client without a server URL is valid; every request then fails with
// domain.ErrMissingServerURL so offline commands can still be wired.
type Client struct {
	baseURL      *url.URL
	organization string
	token        string
	userAgent    string
	httpClient   *http.Client
	maxTries     uint
	newBackOff   func() backoff.BackOff
}

// NewClient creates a Client for the configured server.
func NewClient(cfg domain.ServerConfig, userAgent string) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return newClientWithHTTP(cfg, userAgent, &http.Client{Timeout: timeout})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(cfg domain.ServerConfig, userAgent string, httpClient *http.Client) (*Client, error) {
	var base *url.URL
	if cfg.URL != "" {
		var err error
		base, err = url.Parse(cfg.URL)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "server_url", cfg.URL)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
	}

	// Retries counts the attempts after the first one.
	retries := cfg.Retries
	if retries == 0 {
		retries = defaultRetries
	}

	return &Client{
		baseURL:      base,
		organization: cfg.Organization,
		token:        cfg.Token,
		userAgent:    userAgent,
		httpClient:   httpClient,
		maxTries:     retries + 1,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}, nil
}

// UserAgent returns the identity sent with every request.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// statusError is returned for non 2xx responses.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("unexpected status %d", e.code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.code, e.body)
}

func retryable(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// open performs a GET with retries and returns the response of the first
// successful attempt. The caller closes the body. Transport errors, 429 and 5xx
// are retried; other statuses fail immediately.
func (c *Client) open(ctx context.Context, path string, query []string) (*http.Response, error) {
	if c.baseURL == nil {
		return nil, domain.ErrMissingServerURL
	}
	target := c.baseURL.JoinPath(path)
	target.RawQuery = strings.Join(query, "&")
	endpoint := target.String()

	resp, err := backoff.Retry(ctx, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json, application/x-protobuf")
		if c.token != "" {
			req.SetBasicAuth(c.token, "")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = resp.Body.Close()
		statusErr := &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(body))}
		if retryable(resp.StatusCode) {
			return nil, statusErr
		}
		return nil, backoff.Permanent(statusErr)
	}, backoff.WithBackOff(c.newBackOff()), backoff.WithMaxTries(c.maxTries))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrServerRequestFailed.Error()), "url", endpoint)
	}
	return resp, nil
}

// get performs a GET and reads the whole body.
func (c *Client) get(ctx context.Context, path string, query []string) ([]byte, error) {
	resp, err := c.open(ctx, path, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrServerRequestFailed.Error()), "path", path)
	}
	return data, nil
}

// param formats one escaped query parameter.
func param(key, value string) string {
	return key + "=" + url.QueryEscape(value)
}

// withOrganization appends the organization parameter when one is configured.
func (c *Client) withOrganization(query []string) []string {
	if c.organization == "" {
		return query
	}
	return append(query, param("organization", c.organization))
}

// isNotFound reports whether err carries a 404 status.
func isNotFound(err error) bool {
	var se *statusError
	return errors.As(err, &se) && se.code == http.StatusNotFound
}
