package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/tinysteps/backend/internal/config"
)

type Database struct {
	*sqlx.DB
}

func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Hour)

	return &Database{DB: db}, nil
}

func (d *Database) Ping(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}

func (d *Database) Close() error {
	return d.DB.Close()
}

// RunMigrations creates the three logical namespaces: day-bucketed quota
// counters, cached decomposition results, and durable device records.
func (d *Database) RunMigrations() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS rate_limits (
			device_id VARCHAR(64) NOT NULL,
			day VARCHAR(10) NOT NULL,
			count INTEGER NOT NULL DEFAULT 0,
			expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
			PRIMARY KEY (device_id, day)
		)`,
		`CREATE TABLE IF NOT EXISTS decompose_cache (
			style VARCHAR(20) NOT NULL,
			task_key VARCHAR(120) NOT NULL,
			result JSONB NOT NULL,
			expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
			PRIMARY KEY (style, task_key)
		)`,
		`CREATE TABLE IF NOT EXISTS devices (
			id UUID PRIMARY KEY,
			device_id VARCHAR(64) UNIQUE NOT NULL,
			is_premium BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			last_seen TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rate_limits_expires ON rate_limits(expires_at)`,
		`CREATE INDEX IF NOT EXISTS idx_decompose_cache_expires ON decompose_cache(expires_at)`,
		`CREATE INDEX IF NOT EXISTS idx_devices_device_id ON devices(device_id)`,
	}

	for _, migration := range migrations {
		if _, err := d.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
