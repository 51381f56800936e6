package main

import (
	"os"

	"github.com/yukikurage/project-showcase-api/internal/config"
	"github.com/yukikurage/project-showcase-api/internal/database"
	"github.com/yukikurage/project-showcase-api/internal/logger"
	"github.com/yukikurage/project-showcase-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(logger.Config{Level: cfg.Logging.Level, Pretty: true, Output: os.Stderr})

	// set up DB
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// start CLI
	cli := newCommandLine(server.NewServices(cfg, db, log), db, log, os.Stdout)
	err = cli.run(os.Args)
	if closeErr := database.Close(db); closeErr != nil {
		log.Error().Err(closeErr).Msg("failed to close database")
	}
	if err != nil {
		if err != errHelp {
			log.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}
