package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"golang.org/x/net/netutil"

	"github.com/stradahq/strada/web"
)

// ErrMissingAddress is returned when the configured listen address is empty.
var ErrMissingAddress = errors.New("server address is required")

// ErrServerAlreadyRunning is returned when Run is called on a server that
// is already serving.
var ErrServerAlreadyRunning = errors.New("server is already running")

// Server runs an application behind an http.Server with graceful shutdown.
// Safe for concurrent use.
type Server struct {
	mu       sync.Mutex
	cfg      Config
	logger   *slog.Logger
	server   *http.Server
	listener net.Listener
	running  bool
}

// Option configures server behavior.
type Option func(*Server)

// WithLogger sets a custom logger for server lifecycle events.
// Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a server from the given configuration.
func New(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddress
	}

	s := &Server{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Addr returns the address the server is listening on. Useful when the
// configured address uses port 0. Returns the configured address until the
// listener is bound.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.cfg.Addr
}

// Run serves the application until the context is canceled or the listener
// fails. On cancellation the server is shut down gracefully within the
// configured shutdown timeout, and Run returns nil.
//
// When MaxConns is set, the listener is wrapped so that at most that many
// connections are accepted simultaneously; further connections block in
// the accept queue until a slot frees up. When MaxBodyBytes is set,
// request bodies are capped with http.MaxBytesHandler and oversized
// requests fail with 413 Content Too Large.
func (s *Server) Run(ctx context.Context, app *web.App) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}
	s.running = true

	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		s.running = false
		s.mu.Unlock()
		return err
	}

	if s.cfg.MaxConns > 0 {
		listener = netutil.LimitListener(listener, s.cfg.MaxConns)
	}

	handler := Handler(app)
	if s.cfg.MaxBodyBytes > 0 {
		handler = http.MaxBytesHandler(handler, s.cfg.MaxBodyBytes)
	}

	s.listener = listener
	s.server = &http.Server{
		Handler:        handler,
		ReadTimeout:    s.cfg.ReadTimeout,
		WriteTimeout:   s.cfg.WriteTimeout,
		IdleTimeout:    s.cfg.IdleTimeout,
		MaxHeaderBytes: s.cfg.MaxHeaderBytes,
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "starting server", "addr", listener.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		s.finish()
		return err
	case <-ctx.Done():
		shutdownErr := s.shutdown()
		<-errCh
		s.finish()
		return shutdownErr
	}
}

// shutdown gracefully stops the server within the configured timeout.
func (s *Server) shutdown() error {
	s.mu.Lock()
	server := s.server
	timeout := s.cfg.ShutdownTimeout
	s.mu.Unlock()

	if server == nil {
		return nil
	}

	s.logger.Info("shutting down server gracefully", "timeout", timeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server shutdown error", "error", err)
		return err
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// finish resets the running state after Serve has returned.
func (s *Server) finish() {
	s.mu.Lock()
	s.running = false
	s.listener = nil
	s.mu.Unlock()
}

// Run is a convenience function that loads configuration from the
// environment and serves the application until the context is canceled.
func Run(ctx context.Context, app *web.App, opts ...Option) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	server, err := New(cfg, opts...)
	if err != nil {
		return err
	}

	return server.Run(ctx, app)
}
