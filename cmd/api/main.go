package main

import (
	"context"
	"os"

	"github.com/yigit/uniportal/internal/pkg/logger"
	"github.com/yigit/uniportal/internal/server"
)

// @title University Content API
// @version 1.0
// @description Public read API for departments, courses and news, plus visitor inquiries

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
