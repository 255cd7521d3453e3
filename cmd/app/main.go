package main

import (
	"eventzone/config"
	"eventzone/di"
	_ "eventzone/docs"
	"eventzone/helper"
	"eventzone/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title eventzone API
// @version 1.0
// @description Profiles and events stored as absolute instants and rendered in each viewer's timezone.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
