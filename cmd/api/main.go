package main

import (
	"os"

	"github.com/mert/facesmash/internal/pkg/logger"
	"github.com/mert/facesmash/internal/server"
)

// @title Facesmash API
// @version 1.0
// @description Pairwise comparison voting API for students

// @contact.name API Support
// @contact.email support@facesmash.app

// @host localhost:8080
// @BasePath /api
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
