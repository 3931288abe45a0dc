package main

import (
	"time"

	"github.com/Stephan2025u/FMS-NEW/internal/config"
	"github.com/Stephan2025u/FMS-NEW/internal/database"
	logger "github.com/Stephan2025u/FMS-NEW/internal/logging"
	"github.com/Stephan2025u/FMS-NEW/internal/models"
	"github.com/Stephan2025u/FMS-NEW/internal/repository"
	"github.com/Stephan2025u/FMS-NEW/internal/router"

	"go.uber.org/zap"
)

func main() {
	projectRoot := "."

	// Load configuration under a console-only logger, then build the full
	// logger from the logging settings.
	bootLog := logger.Bootstrap()
	if err := config.Init(projectRoot, bootLog); err != nil {
		bootLog.Fatal("Failed to load configuration", zap.Error(err))
	}

	log, err := logger.Init(projectRoot, config.Conf.Logging)
	if err != nil {
		bootLog.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer log.Sync()

	// Initialize Database
	database.Init(log)

	// Load the exercise catalog at startup; the server cannot run without it
	catalog, err := models.LoadCatalog()
	if err != nil {
		log.Fatal("Failed to load exercise catalog", zap.Error(err))
	}

	// In-memory store for in-progress assessment sessions
	ttl := time.Duration(config.Conf.Assessment.SessionTTLMinutes) * time.Minute
	store := repository.NewSessionStore(log, ttl)
	store.StartSweeper()

	// Setup router
	r := router.Setup(log, catalog, store)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
