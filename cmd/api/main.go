package main

import (
	"os"

	"github.com/yigit/schoolregistry/internal/pkg/logger"
	"github.com/yigit/schoolregistry/internal/server"
)

// @title School Registry API
// @version 1.0
// @description Student and employee registry with shared phone numbers
// @BasePath /api/v1

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
