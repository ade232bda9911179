// Command chainfolio runs the portfolio tracking REST API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/chainfolio/chainfolio/internal/chain/ethereum"
	"github.com/chainfolio/chainfolio/internal/config"
	"github.com/chainfolio/chainfolio/internal/handler"
	"github.com/chainfolio/chainfolio/internal/logger"
	"github.com/chainfolio/chainfolio/internal/middleware"
	"github.com/chainfolio/chainfolio/internal/rest"
	"github.com/chainfolio/chainfolio/internal/router"
	"github.com/chainfolio/chainfolio/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()
		fallback.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	// Without a connected ethereum node or price source the offline
	// implementations keep the API functional: ENS resolution fails with a
	// clear message and prices report zero with a queued error.
	srv, err := server.New(cfg, &log, loggerService, ethereum.OfflineResolver{}, rest.OfflineOracle{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	middlewares := middleware.NewMiddlewares(srv)
	handlers := handler.NewHandlers(srv)

	e, err := router.New(middlewares, handlers)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build router")
	}
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
	if loggerService != nil {
		loggerService.Shutdown(5 * time.Second)
	}
}
