package app

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// WriteTimeout stays 0: job event streams stay open until the job finishes,
// and the other handlers are bounded by the request timeout middleware.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
	maxHeaderBytes    = 1 << 20
)

// Server is the API's http.Server with graceful shutdown.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func NewServer(handler http.Handler, port string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			IdleTimeout:       idleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
			ErrorLog:          stdlog.New(log.Logger, "", 0),
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Run binds the port, then serves until ctx ends or serving fails. A bind
// error is returned before anything is served. Open connections, event
// streams included, get shutdownTimeout to finish.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("Server listening")

	served := make(chan error, 1)
	go func() { served <- s.httpServer.Serve(ln) }()

	select {
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		log.Info().Msg("Shutdown requested, draining connections")
	}
	return s.Shutdown()
}

// Shutdown stops accepting connections and waits up to shutdownTimeout for
// in-flight requests.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("Server stopped gracefully")
	return nil
}
