package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type CacheRepository struct {
	db *Database
}

func NewCacheRepository(db *Database) *CacheRepository {
	return &CacheRepository{db: db}
}

// Get returns the stored result bytes for a style + normalized-task key, or
// ok=false on a miss. Expired rows are misses even before the sweeper runs.
func (r *CacheRepository) Get(ctx context.Context, style, taskKey string) ([]byte, bool, error) {
	var result []byte
	query := `SELECT result FROM decompose_cache WHERE style = $1 AND task_key = $2 AND expires_at > NOW()`
	err := r.db.GetContext(ctx, &result, query, style, taskKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}
	return result, true, nil
}

// Put stores result bytes under the key, replacing any previous entry.
func (r *CacheRepository) Put(ctx context.Context, style, taskKey string, result []byte, ttl time.Duration) error {
	query := `
		INSERT INTO decompose_cache (style, task_key, result, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (style, task_key)
		DO UPDATE SET result = EXCLUDED.result, expires_at = EXCLUDED.expires_at
	`
	_, err := r.db.ExecContext(ctx, query, style, taskKey, result, time.Now().Add(ttl))
	if err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// CleanExpired removes entries past their TTL.
func (r *CacheRepository) CleanExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM decompose_cache WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to clean cache: %w", err)
	}
	return result.RowsAffected()
}
