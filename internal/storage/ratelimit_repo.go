package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type RateLimitRepository struct {
	db *Database
}

func NewRateLimitRepository(db *Database) *RateLimitRepository {
	return &RateLimitRepository{db: db}
}

// Count returns the number of billable calls recorded for the device on the
// given UTC day. A missing or expired row counts as zero.
func (r *RateLimitRepository) Count(ctx context.Context, deviceID, day string) (int, error) {
	var count int
	query := `SELECT count FROM rate_limits WHERE device_id = $1 AND day = $2 AND expires_at > NOW()`
	err := r.db.GetContext(ctx, &count, query, deviceID, day)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read rate limit: %w", err)
	}
	return count, nil
}

// Increment bumps the day's counter atomically. The upsert avoids the lost
// updates a plain read-then-write would allow under concurrent requests.
func (r *RateLimitRepository) Increment(ctx context.Context, deviceID, day string, ttl time.Duration) error {
	query := `
		INSERT INTO rate_limits (device_id, day, count, expires_at)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (device_id, day)
		DO UPDATE SET count = rate_limits.count + 1, expires_at = EXCLUDED.expires_at
	`
	_, err := r.db.ExecContext(ctx, query, deviceID, day, time.Now().Add(ttl))
	if err != nil {
		return fmt.Errorf("failed to increment rate limit: %w", err)
	}
	return nil
}

// CleanExpired removes counters past their TTL.
func (r *RateLimitRepository) CleanExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rate_limits WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to clean rate limits: %w", err)
	}
	return result.RowsAffected()
}
