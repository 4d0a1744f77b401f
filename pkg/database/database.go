package database

import (
	"fmt"
	"tenant-ledger/internal/model"
	"tenant-ledger/pkg/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB opens the SQLite database file and runs migrations. Safe to call on
// every process start; AutoMigrate only creates what is missing.
func InitDB(config *config.Config) error {
	var err error

	// Configure GORM logger
	logLevel := logger.Error
	if config.Server.Env == "development" {
		logLevel = logger.Info
	}

	// Open connection
	db, err = gorm.Open(sqlite.Open(config.DB.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", config.DB.Path, err)
	}

	// Run migrations
	if err := db.AutoMigrate(
		&model.Tenant{},
		&model.Property{},
		&model.RentPayment{},
		&model.Document{},
	); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}
