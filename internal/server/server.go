package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fluxrouter-backend/internal/config"
	"github.com/MKhiriev/fluxrouter-backend/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandlerIsProvided
	}

	logger.Info().Msg("creating new server...")
	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down
// gracefully.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done or the listener fails.
func (s *server) run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	// finish started server
	s.Shutdown()
	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
