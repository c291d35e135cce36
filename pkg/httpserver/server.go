package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/nubz/gds-validation/pkg/logger"
)

// Server runs one http.Server at a time.
type Server struct {
	opts options

	mu      sync.Mutex
	running bool
	addr    net.Addr
	ready   chan struct{}
}

// New returns a Server; nothing listens until Run.
func New(opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}
	return &Server{opts: o, ready: make(chan struct{})}
}

// Ready is closed once the server is accepting connections.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the address being served, or nil before Run has bound it.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run serves handler until ctx is cancelled or the process receives SIGINT
// or SIGTERM, then shuts down gracefully. A Server can be run once.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.mu.Unlock()

	if handler == nil {
		handler = http.NotFoundHandler()
	}
	log := s.opts.logger.With(logger.Component("httpserver"))

	ln := s.opts.listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", s.opts.addr); err != nil {
			return errors.Join(ErrStart, err)
		}
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  s.opts.readTimeout,
		WriteTimeout: s.opts.writeTimeout,
		IdleTimeout:  s.opts.idleTimeout,
		ErrorLog:     slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	close(s.ready)
	log.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		return errors.Join(ErrStart, err)
	case <-sigCtx.Done():
	}

	if ctx.Err() == nil {
		log.InfoContext(ctx, "shutdown signal received")
	}
	return s.shutdown(srv, errCh, log)
}

func (s *Server) shutdown(srv *http.Server, errCh <-chan error, log *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	if serveErr := <-errCh; !errors.Is(serveErr, http.ErrServerClosed) && err == nil {
		err = serveErr
	}
	for _, fn := range s.opts.onShutdown {
		fn(ctx)
	}

	if err != nil {
		log.ErrorContext(ctx, "http server shutdown failed", logger.Error(err))
		return fmt.Errorf("%w: %w", ErrShutdown, err)
	}
	log.InfoContext(ctx, "http server stopped")
	return nil
}
