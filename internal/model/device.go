package model

import "time"

// Device is the durable per-installation record. Nothing in the request flow
// reads it yet; it exists so subscription state can eventually outlive tokens.
type Device struct {
	ID        string    `json:"id" db:"id"`
	DeviceID  string    `json:"deviceId" db:"device_id"`
	IsPremium bool      `json:"isPremium" db:"is_premium"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	LastSeen  time.Time `json:"lastSeen" db:"last_seen"`
}
