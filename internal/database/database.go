package database

import (
	"fmt"

	"github.com/Stephan2025u/FMS-NEW/internal/config"
	logging "github.com/Stephan2025u/FMS-NEW/internal/logging"
	"github.com/Stephan2025u/FMS-NEW/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	// Route GORM's own logging through zap
	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = logger.Info

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate creates tables, columns, and foreign keys. The
	// scores column lands as jsonb via datatypes.JSONType.
	err := DB.AutoMigrate(
		&models.Client{},
		&models.TestResult{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	// Test results are listed per client, most recent first.
	resultsIndex := `CREATE INDEX IF NOT EXISTS idx_test_results_client_date ON test_results (client_id, test_date DESC);`
	if err := DB.Exec(resultsIndex).Error; err != nil {
		log.Fatal("Failed to create custom index on test results table", zap.Error(err))
	}
	log.Info("Custom indexes ensured successfully.")
}
