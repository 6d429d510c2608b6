// Package upstream issues authorized JSON calls to third-party AI providers.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/novel2image/proxy/internal/apperror"
	"github.com/novel2image/proxy/internal/metrics"
)

// Result is a completed HTTP exchange with an upstream, whatever its status.
type Result struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// OK reports whether the upstream accepted the request.
func (r *Result) OK() bool {
	return r.StatusCode < http.StatusBadRequest
}

// Client posts JSON to a single upstream endpoint with a bearer token.
type Client struct {
	name    string
	url     string
	apiKey  string
	http    *http.Client
	metrics *metrics.Collector
}

// New creates a Client for the upstream at url. timeout bounds every call.
func New(name, url, apiKey string, timeout time.Duration, m *metrics.Collector) *Client {
	return &Client{
		name:    name,
		url:     url,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		metrics: m,
	}
}

// HasKey reports whether an API key is configured.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

// PostJSON marshals payload and posts it to the upstream. Any HTTP answer is
// returned as a Result; only transport failures produce an error.
func (c *Client) PostJSON(ctx context.Context, payload any) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.Unknown(fmt.Errorf("encode %s request: %w", c.name, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.Unknown(fmt.Errorf("build %s request: %w", c.name, err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(c.name, 0, time.Since(start))
		log.Printf("upstream %s: request failed after %s: %v", c.name, time.Since(start), err)
		return nil, apperror.Unknown(fmt.Errorf("call %s: %w", c.name, err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.metrics.ObserveUpstream(c.name, resp.StatusCode, elapsed)
	if err != nil {
		return nil, apperror.Unknown(fmt.Errorf("read %s response: %w", c.name, err))
	}

	log.Printf("upstream %s: POST %s %d %s", c.name, c.url, resp.StatusCode, elapsed)

	return &Result{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

// Forward posts payload and converts a non-success answer into an upstream
// error that keeps the original status and body.
func (c *Client) Forward(ctx context.Context, payload any) (*Result, error) {
	res, err := c.PostJSON(ctx, payload)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, apperror.Upstream(res.StatusCode, res.Body)
	}
	return res, nil
}
