package http_request

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/registry"
	"resty.dev/v3"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the 'arguments' HCL block.
type Input struct {
	URL          string            `hcl:"url"`
	Method       string            `hcl:"method,optional"`
	Body         string            `hcl:"body,optional"`
	Headers      map[string]string `hcl:"headers,optional"`
	ExpectStatus int               `hcl:"expect_status,optional"`
}

// ClientProvider is satisfied by the http_client component.
type ClientProvider interface {
	Resty() (*resty.Client, error)
}

// Request performs one HTTP call when run and keeps the response.
type Request struct {
	input  *Input
	client ClientProvider

	StatusCode int
	Body       string
}

func newRequest(_ context.Context, input *Input, deps component.Deps) (any, error) {
	client, err := component.Get[ClientProvider](deps, "client")
	if err != nil {
		return nil, err
	}
	if input.Method == "" {
		input.Method = "GET"
	}
	input.Method = strings.ToUpper(input.Method)
	return &Request{input: input, client: client}, nil
}

// Run executes the request.
func (r *Request) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Making HTTP request", "method", r.input.Method, "url", r.input.URL)

	rc, err := r.client.Resty()
	if err != nil {
		return err
	}

	req := rc.R().SetContext(ctx)
	for k, v := range r.input.Headers {
		req.SetHeader(k, v)
	}
	if r.input.Body != "" {
		req.SetBody(r.input.Body)
	}

	res, err := req.Execute(r.input.Method, r.input.URL)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}

	r.StatusCode = res.StatusCode()
	r.Body = res.String()
	logger.Info("Received HTTP response", "status", res.Status())

	if r.input.ExpectStatus != 0 && r.StatusCode != r.input.ExpectStatus {
		return fmt.Errorf("unexpected status %d for %s %s, want %d", r.StatusCode, r.input.Method, r.input.URL, r.input.ExpectStatus)
	}
	return nil
}

func (r *Request) String() string {
	return fmt.Sprintf("%s %s -> %d", r.input.Method, r.input.URL, r.StatusCode)
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(registry.NewKind("http_request", "Performs one HTTP request through an http_client.", newRequest))
}
