package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/countries-api/internal/config"
	"github.com/deppfellow/countries-api/internal/dataset"
	"github.com/deppfellow/countries-api/internal/handler"
	"github.com/deppfellow/countries-api/internal/logger"
	"github.com/deppfellow/countries-api/internal/middleware"
	"github.com/deppfellow/countries-api/internal/router"
	"github.com/deppfellow/countries-api/internal/server"
	"github.com/deppfellow/countries-api/internal/service"
	"github.com/rs/zerolog"
)

// shutdownTimeout bounds how long graceful shutdown waits for in-flight
// requests.
const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		// Config failed before the logger exists; use a bare console logger.
		bootstrap := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		bootstrap.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg)

	if err := run(context.Background(), cfg, &log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

// run wires the application together and drives its lifecycle: load the
// dataset, build the server, serve until a shutdown signal, then drain.
func run(ctx context.Context, cfg *config.Config, log *zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A service that cannot load its reference data must not start serving.
	store, err := dataset.Load()
	if err != nil {
		return err
	}

	log.Info().
		Int("countries", store.Len()).
		Int("regions", len(store.Regions())).
		Msg("country dataset loaded")

	srv := server.New(cfg, log, store)
	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)
	e := router.New(handlers, middlewares)

	srv.SetupHTTPServer(e)

	serverErrors := make(chan error, 1)
	go func() {
		// ListenAndServe always returns a non-nil error; ErrServerClosed is
		// the expected one on graceful shutdown.
		if err := srv.Start(); !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("server stopped gracefully")
	return nil
}
