package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tinysteps/backend/internal/model"
)

type DeviceRepository struct {
	db *Database
}

func NewDeviceRepository(db *Database) *DeviceRepository {
	return &DeviceRepository{db: db}
}

// Register inserts a durable record for a freshly generated device identity.
func (r *DeviceRepository) Register(ctx context.Context, deviceID string) (*model.Device, error) {
	var device model.Device
	query := `
		INSERT INTO devices (id, device_id, is_premium)
		VALUES ($1, $2, false)
		RETURNING id, device_id, is_premium, created_at, last_seen
	`
	err := r.db.QueryRowxContext(ctx, query, uuid.NewString(), deviceID).StructScan(&device)
	if err != nil {
		return nil, fmt.Errorf("failed to register device: %w", err)
	}
	return &device, nil
}

// SetPremium records a subscription change. Upserts so a webhook arriving for
// a device registered before this table existed still lands.
func (r *DeviceRepository) SetPremium(ctx context.Context, deviceID string, premium bool) error {
	query := `
		INSERT INTO devices (id, device_id, is_premium)
		VALUES ($1, $2, $3)
		ON CONFLICT (device_id)
		DO UPDATE SET is_premium = EXCLUDED.is_premium, last_seen = CURRENT_TIMESTAMP
	`
	_, err := r.db.ExecContext(ctx, query, uuid.NewString(), deviceID, premium)
	if err != nil {
		return fmt.Errorf("failed to update device premium status: %w", err)
	}
	return nil
}

func (r *DeviceRepository) FindByDeviceID(ctx context.Context, deviceID string) (*model.Device, error) {
	var device model.Device
	query := `SELECT id, device_id, is_premium, created_at, last_seen FROM devices WHERE device_id = $1`
	err := r.db.GetContext(ctx, &device, query, deviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find device: %w", err)
	}
	return &device, nil
}
