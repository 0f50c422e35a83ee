package main

import (
	"os"

	"github.com/rafaelbarros/gestao-cursos/internal/pkg/logger"
	"github.com/rafaelbarros/gestao-cursos/internal/server"
)

// @title Gestao de Cursos API
// @version 1.0
// @description API for managing students, courses, professors and class offerings

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
