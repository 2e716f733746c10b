// Package healthcheck serves a liveness endpoint for as long as its
// component is open.
package healthcheck

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/registry"
)

const shutdownTimeout = 5 * time.Second

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the healthcheck kind.
type Input struct {
	// Port 0 picks a free port.
	Port int    `hcl:"port,optional"`
	Path string `hcl:"path,optional"`
}

// Server is an HTTP server answering OK on a single path.
type Server struct {
	input *Input

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	served   chan struct{}
}

func newServer(_ context.Context, input *Input, _ component.Deps) (any, error) {
	if input.Port < 0 || input.Port > 65535 {
		return nil, fmt.Errorf("invalid healthcheck port %d", input.Port)
	}
	if input.Path == "" {
		input.Path = "/health"
	}
	if !strings.HasPrefix(input.Path, "/") {
		return nil, fmt.Errorf("invalid healthcheck path %q: must start with /", input.Path)
	}
	return &Server{input: input}, nil
}

// Open binds the port and starts serving in the background. Binding errors
// are returned here rather than logged later.
func (s *Server) Open(ctx context.Context) (any, error) {
	logger := ctxlog.FromContext(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc(s.input.Path, func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	})

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.input.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to bind health check port: %w", err)
	}

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	served := make(chan struct{})

	go func() {
		defer close(served)
		logger.Info("🩺 Health check server starting", "address", fmt.Sprintf("http://%s%s", ln.Addr(), s.input.Path))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Health check server failed unexpectedly", "error", err)
		}
	}()

	s.mu.Lock()
	s.srv, s.listener, s.served = srv, ln, served
	s.mu.Unlock()
	return s, nil
}

// Close shuts the server down gracefully.
func (s *Server) Close(ctx context.Context) error {
	s.mu.Lock()
	srv, served := s.srv, s.served
	s.srv, s.listener, s.served = nil, nil, nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	logger := ctxlog.FromContext(ctx)
	logger.Info("🩺 Shutting down health check server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("health check server shutdown failed: %w", err)
	}
	<-served

	logger.Debug("Health check server shut down gracefully.")
	return nil
}

// Addr returns the bound address while open, or "".
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) String() string {
	return fmt.Sprintf("healthcheck(port=%d path=%s)", s.input.Port, s.input.Path)
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(registry.NewKind("healthcheck", "HTTP liveness endpoint.", newServer))
}
