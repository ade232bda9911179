// Package server defines the core Server struct that composes the app's
// main dependencies.
//
// It contains the initialization logic to spin up the HTTP server and
// handles graceful shutdowns.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - redis client
//   - the rest.API backend façade
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	nrredis "github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/chainfolio/chainfolio/internal/assets"
	"github.com/chainfolio/chainfolio/internal/chain/ethereum"
	"github.com/chainfolio/chainfolio/internal/config"
	loggerPkg "github.com/chainfolio/chainfolio/internal/logger"
	"github.com/chainfolio/chainfolio/internal/rest"
)

// Server is the application container that holds shared resources. It is
// not the HTTP server itself; it holds the config, loggers, the redis
// connection, the backend façade and an internal *http.Server used to
// listen and serve requests.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	LoggerService *loggerPkg.LoggerService

	// Redis backs the price cache.
	Redis *redis.Client

	// API is the backend façade every handler dispatches into.
	API *rest.API

	// httpServer is configured in SetupHTTPServer and started in Start.
	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies. It does not
// start the HTTP server; that is done in SetupHTTPServer + Start.
//
// Redis connection failure does not block startup: the price cache then
// reports misses only.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService, resolver ethereum.Resolver, oracle rest.PriceOracle) (*Server, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	// New Relic hooks instrument redis commands so they show up in
	// distributed traces.
	if loggerService != nil && loggerService.GetApplication() != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Msg("Failed to connect to Redis, continuing without Redis")
		redisClient = nil
	}

	registry := assets.NewRegistry()
	api, err := rest.New(*logger, registry, redisClient, resolver, oracle)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize the backend: %w", err)
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		Redis:         redisClient,
		API:           api,
	}, nil
}

// SetupHTTPServer configures the internal net/http server. The router is
// passed in as handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// These timeouts protect against slow clients and resource
		// exhaustion. Config stores seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer to be called
// first and blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and its dependencies: the HTTP
// server finishes inflight requests until the ctx deadline, async tasks get
// cancelled and waited for, and the redis client is closed.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.API.Stop()

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			return fmt.Errorf("failed to close redis connection: %w", err)
		}
	}

	return nil
}
