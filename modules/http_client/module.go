// Package http_client provides a stateful, shareable HTTP client component
// backed by resty.
package http_client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/registry"
	"resty.dev/v3"
)

const defaultTimeout = 30 * time.Second

// ErrNotOpen is returned when the client is used outside its scope.
var ErrNotOpen = errors.New("http client is not open")

// Module implements the registry.Module interface. It registers the
// http_client kind.
type Module struct{}

// Input defines the arguments for creating an http_client component.
type Input struct {
	Timeout string            `hcl:"timeout,optional"`
	BaseURL string            `hcl:"base_url,optional"`
	Headers map[string]string `hcl:"headers,optional"`
}

// Client owns a resty client for the lifetime of its scope.
type Client struct {
	timeout time.Duration
	input   *Input

	mu sync.RWMutex
	rc *resty.Client
}

func newClient(_ context.Context, input *Input, _ component.Deps) (any, error) {
	timeout := defaultTimeout
	if input.Timeout != "" {
		d, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", input.Timeout, err)
		}
		timeout = d
	}
	return &Client{timeout: timeout, input: input}, nil
}

// Open builds the underlying connection pool.
func (c *Client) Open(ctx context.Context) (any, error) {
	hc := &http.Client{
		Timeout: c.timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	rc := resty.NewWithClient(hc)
	if c.input.BaseURL != "" {
		rc.SetBaseURL(c.input.BaseURL)
	}
	if len(c.input.Headers) > 0 {
		rc.SetHeaders(c.input.Headers)
	}

	c.mu.Lock()
	c.rc = rc
	c.mu.Unlock()

	ctxlog.FromContext(ctx).Debug("HTTP client ready.", "timeout", c.timeout.String(), "base_url", c.input.BaseURL)
	return c, nil
}

// Close releases idle connections.
func (c *Client) Close(context.Context) error {
	c.mu.Lock()
	rc := c.rc
	c.rc = nil
	c.mu.Unlock()

	if rc == nil {
		return nil
	}
	return rc.Close()
}

// Resty returns the live client. It fails before Open and after Close.
func (c *Client) Resty() (*resty.Client, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.rc == nil {
		return nil, ErrNotOpen
	}
	return c.rc, nil
}

func (c *Client) String() string {
	return fmt.Sprintf("http_client(timeout=%s)", c.timeout)
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(registry.NewKind("http_client", "Shared HTTP client with pooled connections.", newClient))
}
