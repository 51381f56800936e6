package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/project-showcase-api/internal/config"
	"github.com/yukikurage/project-showcase-api/internal/database"
	"github.com/yukikurage/project-showcase-api/internal/logger"
	"github.com/yukikurage/project-showcase-api/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

// run serves until ctx is cancelled or the listener fails. The database is
// closed on every return path.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Connect to database
	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close database")
		}
	}()

	// Run migrations
	if err := database.MigrateDatabase(db, log); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	srv := server.New(cfg, db, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-errCh
}
