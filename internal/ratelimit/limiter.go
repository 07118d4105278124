package ratelimit

import (
	"context"
	"time"

	"github.com/tinysteps/backend/internal/config"
	"github.com/tinysteps/backend/internal/model"
)

// UnlimitedLimit is the sentinel reported for premium devices.
const UnlimitedLimit = -1

// CounterStore persists day-bucketed usage counters. Increment must be
// atomic with respect to concurrent calls for the same (device, day).
type CounterStore interface {
	Count(ctx context.Context, deviceID, day string) (int, error)
	Increment(ctx context.Context, deviceID, day string, ttl time.Duration) error
}

type Status struct {
	Allowed  bool
	Used     int
	Limit    int
	ResetsAt string
}

// Limiter enforces the free-tier daily quota. The bucket is a UTC calendar
// day, not a rolling window: quota resets at UTC midnight no matter when the
// device's first call of the day happened.
type Limiter struct {
	store CounterStore
	cfg   config.RateLimitConfig
}

func NewLimiter(store CounterStore, cfg config.RateLimitConfig) *Limiter {
	return &Limiter{store: store, cfg: cfg}
}

// Check reports whether the device may make another billable call. Check and
// Increment are separate operations, so two in-flight requests can both pass
// Check at the boundary; the quota only needs to hold approximately.
func (l *Limiter) Check(ctx context.Context, deviceID string, isPremium bool) (Status, error) {
	if isPremium {
		return Status{Allowed: true, Used: 0, Limit: UnlimitedLimit, ResetsAt: ""}, nil
	}

	used, err := l.store.Count(ctx, deviceID, DayKey(time.Now()))
	if err != nil {
		return Status{}, err
	}

	return Status{
		Allowed:  used < l.cfg.FreeDailyLimit,
		Used:     used,
		Limit:    l.cfg.FreeDailyLimit,
		ResetsAt: NextReset(time.Now()),
	}, nil
}

// Increment records one billable call against today's bucket.
func (l *Limiter) Increment(ctx context.Context, deviceID string) error {
	return l.store.Increment(ctx, deviceID, DayKey(time.Now()), l.cfg.EntryTTL)
}

// Stats is the usage projection returned by the usage endpoint.
func (l *Limiter) Stats(ctx context.Context, deviceID string, isPremium bool) (*model.UsageResponse, error) {
	status, err := l.Check(ctx, deviceID, isPremium)
	if err != nil {
		return nil, err
	}
	return &model.UsageResponse{
		Used:      status.Used,
		Limit:     status.Limit,
		ResetsAt:  status.ResetsAt,
		IsPremium: isPremium,
	}, nil
}

// DayKey returns the UTC calendar day bucket for t.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// NextReset returns the next UTC midnight after t in RFC3339.
func NextReset(t time.Time) string {
	midnight := t.UTC().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	return midnight.Format(time.RFC3339)
}
