package main

import (
	"college-portal/config"
	"college-portal/internal/database"
	"college-portal/internal/logger"
	"college-portal/internal/server"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	logger.Configure(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	gin.SetMode(cfg.GinMode)

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error().Err(err).Msg("Failed to close database")
		}
	}()

	if err := database.Initialize(db); err != nil {
		logger.Fatal().Err(err).Msg("Unable to start server")
	}

	srv, err := server.New(cfg, db)
	if err != nil {
		logger.Fatal().Err(err).Msg("Unable to start server")
	}

	logger.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server stopped with error")
	}
}
