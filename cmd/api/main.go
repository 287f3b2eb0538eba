package main

import (
	"github.com/joho/godotenv"

	"github.com/afyalink/health-system-api/internal/api"
	"github.com/afyalink/health-system-api/internal/infrastructure/config"
	"github.com/afyalink/health-system-api/internal/infrastructure/db/gormdb"
	"github.com/afyalink/health-system-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	db, err := gormdb.Connect(gormdb.Config{Driver: cfg.DB.Driver, DSN: cfg.DB.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Str("driver", cfg.DB.Driver).Msg("database connected and migrated")

	e := api.NewRouter(db, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
