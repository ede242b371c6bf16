// Package server defines the core Server struct that composes the app's main
// dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - the country dataset store
//   - http.Server
//
// and provides the start/shutdown logic to run the application cleanly.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/countries-api/internal/config"
	"github.com/deppfellow/countries-api/internal/dataset"
	"github.com/rs/zerolog"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself; it carries the config, the logger, and
// the dataset store, plus an internal *http.Server used to listen and serve
// requests.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// Store is the immutable country dataset, loaded once at startup.
	Store *dataset.Store

	// httpServer is configured in SetupHTTPServer and started in Start.
	httpServer *http.Server
}

// New constructs a Server from its already-initialized dependencies.
//
// The dataset store is loaded by the caller (main) before the server is
// built: a failed load is a fatal startup error, and keeping the load out of
// this constructor keeps that decision at the entrypoint.
func New(cfg *config.Config, logger *zerolog.Logger, store *dataset.Store) *Server {
	return &Server{
		Config: cfg,
		Logger: logger,
		Store:  store,
	}
}

// SetupHTTPServer configures the internal net/http server with the given
// handler (the Echo router) and the timeouts from config.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Timeouts protect against slow clients and resource exhaustion.
		// Config stores int values interpreted as seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer to be called first
// and blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Int("countries", s.Store.Len()).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server: it stops accepting new
// connections and waits for in-flight requests until the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
