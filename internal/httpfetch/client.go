// Package httpfetch is the A3 transport the analyzer orchestrator drives:
// retrying GETs with backoff, provider auth headers, redirect caps, and
// context-aware cancellation.
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Client wraps a retryablehttp.Client configured to spec §7's backoff
// contract: base 500ms, cap 8s, retrying transport errors and 5xx, never
// 401/403/404 (those are resolver/auth failures, not transient).
type Client struct {
	rc *retryablehttp.Client
}

// Config carries the HTTP knobs from core.AnalyzeOptions relevant to
// transport (the rest — timeout, retry count — are applied here).
type Config struct {
	Timeout            time.Duration
	MaxRedirects       int
	RetryCount         int
	UserAgent          string
	AcceptInvalidCerts bool
	UseCompression     bool
	Proxy              string
	Headers            map[string]string
}

// New builds a Client from cfg.
func New(cfg Config) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 8 * time.Second
	rc.RetryMax = cfg.RetryCount
	rc.CheckRetry = checkRetry

	hc := &http.Client{Timeout: cfg.Timeout}
	transport, _ := http.DefaultTransport.(*http.Transport)
	if transport != nil {
		clone := transport.Clone()
		clone.TLSClientConfig = tlsConfigFor(cfg.AcceptInvalidCerts, clone.TLSClientConfig)
		if cfg.Proxy != "" {
			if proxyFunc, err := proxyFuncFor(cfg.Proxy); err == nil {
				clone.Proxy = proxyFunc
			}
		}
		hc.Transport = clone
	}
	hc.CheckRedirect = redirectPolicy(cfg.MaxRedirects)
	rc.HTTPClient = hc

	return &Client{rc: rc}
}

// checkRetry retries on transport errors and 5xx, but treats 401/403/404 as
// terminal: those mean "try the next candidate" or "auth failed", not
// "retry the same one".
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	if resp == nil {
		return true, nil
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return false, nil
	}
	if resp.StatusCode >= 500 {
		return true, nil
	}
	return false, nil
}

// Get issues a GET with the given headers attached, honoring ctx for
// cancellation/timeout. Returns the response body (caller closes it) and
// the HTTP status code.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string, useCompression bool) (io.ReadCloser, int, int64, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("building request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if useCompression {
		req.Header.Set("Accept-Encoding", "gzip")
	}

	resp, err := c.rc.Do(req)
	if err != nil {
		return nil, 0, 0, err
	}
	return resp.Body, resp.StatusCode, resp.ContentLength, nil
}
