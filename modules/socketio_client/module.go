package socketio_client

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/registry"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

const defaultConnectTimeout = 15 * time.Second

// ErrNotConnected is returned when the socket is used outside its scope.
var ErrNotConnected = errors.New("socket.io client is not connected")

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for creating a socketio_client component.
type Input struct {
	URL                string `hcl:"url"`
	Namespace          string `hcl:"namespace,optional"`
	InsecureSkipVerify bool   `hcl:"insecure_skip_verify,optional"`
	ConnectTimeout     string `hcl:"connect_timeout,optional"`
}

// Client holds one socket.io connection for the lifetime of its scope.
type Client struct {
	input   *Input
	baseURL string
	path    string
	timeout time.Duration

	mu   sync.RWMutex
	sock *socket.Socket
}

func newClient(_ context.Context, input *Input, _ component.Deps) (any, error) {
	parsedURL, err := url.Parse(input.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("socket.io URL %q must be absolute", input.URL)
	}

	timeout := defaultConnectTimeout
	if input.ConnectTimeout != "" {
		timeout, err = time.ParseDuration(input.ConnectTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid connect_timeout %q: %w", input.ConnectTimeout, err)
		}
	}

	return &Client{
		input:   input,
		baseURL: fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host),
		path:    parsedURL.Path,
		timeout: timeout,
	}, nil
}

// Open connects and waits for the server to acknowledge.
func (c *Client) Open(ctx context.Context) (any, error) {
	logger := ctxlog.FromContext(ctx).With("url", c.input.URL)

	opts := socket.DefaultOptions()
	if c.path != "" {
		opts.SetPath(c.path)
	}
	if c.input.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	manager := socket.NewManager(c.baseURL, opts)
	io := manager.Socket(c.input.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Successfully connected", "sid", io.Id())
		signal(connectChan, nil)
	})

	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err, ok := errs[0].(error)
		if !ok {
			err = fmt.Errorf("%v", errs[0])
		}
		logger.Debug("Connection error event fired", "error", err)
		signal(connectChan, err)
	})

	logger.Debug("Initiating connection...")
	io.Connect()

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-timer.C:
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", c.timeout)
	}

	c.mu.Lock()
	c.sock = io
	c.mu.Unlock()
	return c, nil
}

// signal delivers the first connection outcome and drops later ones.
func signal(ch chan<- error, err error) {
	select {
	case ch <- err:
	default:
	}
}

// Close disconnects the socket.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	sock := c.sock
	c.sock = nil
	c.mu.Unlock()

	if sock == nil {
		return nil
	}
	ctxlog.FromContext(ctx).Info("Disconnecting socket.io client", "sid", sock.Id())
	sock.Disconnect()
	return nil
}

// Socket returns the connected socket.
func (c *Client) Socket() (*socket.Socket, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.sock == nil || !c.sock.Connected() {
		return nil, ErrNotConnected
	}
	return c.sock, nil
}

func (c *Client) String() string {
	return fmt.Sprintf("socketio_client(%s)", c.input.URL)
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(registry.NewKind("socketio_client", "Persistent socket.io connection.", newClient))
}
