package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"k8s.io/klog/v2"
	"photo-portfolio-backend/internal/config"
	"photo-portfolio-backend/internal/models"
)

// Open connects to the configured metadata store and brings its schema up to
// date. Postgres is reached through lib/pq and migrated with the embedded SQL
// files; sqlite is migrated by gorm.
func Open(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.DSN())
	case config.DriverPostgres:
		return openPostgres(ctx, cfg.DSN(), cfg.DBConnectRetries, cfg.DBConnectRetryDelay)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}

func openPostgres(ctx context.Context, dsn string, retries int, delay time.Duration) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := pingWithRetry(ctx, sqlDB, retries, delay); err != nil {
		sqlDB.Close()
		return nil, err
	}

	sqlDB.SetMaxOpenConns(15)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := NewMigrator(sqlDB).Run(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: utcNow,
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}
	return db, nil
}

// OpenSQLite opens an embedded database. ":memory:" is supported; the pool is
// pinned to one connection so every caller sees the same database.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: utcNow,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Folder{}, &models.Photo{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}
	return db, nil
}

func pingWithRetry(ctx context.Context, db *sql.DB, retries int, delay time.Duration) error {
	if retries < 1 {
		retries = 1
	}
	var err error
	for attempt := 1; attempt <= retries; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		klog.Warningf("Database ping failed (attempt %d/%d): %v", attempt, retries, err)
		if attempt < retries {
			select {
			case <-ctx.Done():
				return fmt.Errorf("database ping interrupted: %w", ctx.Err())
			case <-time.After(delay):
			}
		}
	}
	return fmt.Errorf("failed to ping database after %d attempts: %w", retries, err)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
