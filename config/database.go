package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Govind-619/PaymentRecords/models"
	"github.com/Govind-619/PaymentRecords/utils"
)

// InitDB opens the postgres connection, applies pool limits and migrates the schema.
func InitDB(cfg *Config) (*gorm.DB, error) {
	utils.LogInfo("Connecting to postgres at %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	utils.LogInfo("Database ready")
	return db, nil
}

// Migrate creates or updates the tables for every payment record model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.PaymentSession{},
		&models.RefundSession{},
		&models.CaptureSession{},
		&models.VoidSession{},
		&models.Configuration{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
