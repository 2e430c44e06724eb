package server

import (
	"net/http"

	"github.com/cenkalti/backoff/v5"
	"go.trai.ch/lintsync/internal/core/domain"
)

// NewClientWithHTTP exposes the transport seam and disables retry delays.
func NewClientWithHTTP(cfg domain.ServerConfig, userAgent string, httpClient *http.Client) (*Client, error) {
	c, err := newClientWithHTTP(cfg, userAgent, httpClient)
	if err != nil {
		return nil, err
	}
	c.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return c, nil
}
