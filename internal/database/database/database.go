// Package database provides database connection management for PostgreSQL.
package database

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbConfig "github.com/collabx/backend/internal/database/config"
	"github.com/collabx/backend/pkg/retry"
)

// New creates a new database connection using environment variables.
func New() (*gorm.DB, error) {
	cfg := dbConfig.LoadConfigFromEnv()
	return NewWithConfig(cfg)
}

// NewWithConfig creates a new database connection with custom configuration.
func NewWithConfig(cfg dbConfig.Config) (*gorm.DB, error) {
	dsn := dbConfig.BuildDSN(cfg)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, dbConfig.SanitizeError(err, cfg)
	}
	return db, nil
}

// NewWithRetry creates a database connection, retrying transient failures
// with exponential backoff. Useful when the database starts alongside the app.
func NewWithRetry(ctx context.Context, cfg dbConfig.Config, retryCfg retry.Config) (*gorm.DB, error) {
	return retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		return NewWithConfig(cfg)
	})
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
