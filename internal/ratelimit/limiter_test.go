package ratelimit

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tinysteps/backend/internal/config"
)

type memoryCounters struct {
	counts  map[string]int
	lastTTL time.Duration
}

func newMemoryCounters() *memoryCounters {
	return &memoryCounters{counts: make(map[string]int)}
}

func (m *memoryCounters) Count(ctx context.Context, deviceID, day string) (int, error) {
	return m.counts[deviceID+":"+day], nil
}

func (m *memoryCounters) Increment(ctx context.Context, deviceID, day string, ttl time.Duration) error {
	m.counts[deviceID+":"+day]++
	m.lastTTL = ttl
	return nil
}

func newTestLimiter(limit int) (*Limiter, *memoryCounters) {
	store := newMemoryCounters()
	return NewLimiter(store, config.RateLimitConfig{FreeDailyLimit: limit, EntryTTL: 25 * time.Hour}), store
}

func TestCheckFreshDevice(t *testing.T) {
	limiter, _ := newTestLimiter(3)

	status, err := limiter.Check(context.Background(), "device-1", false)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !status.Allowed {
		t.Fatalf("expected a fresh device to be allowed")
	}
	if status.Used != 0 || status.Limit != 3 {
		t.Fatalf("expected used=0 limit=3, got used=%d limit=%d", status.Used, status.Limit)
	}
	if status.ResetsAt == "" {
		t.Fatalf("expected a reset time for free devices")
	}
}

func TestCheckExhausted(t *testing.T) {
	limiter, _ := newTestLimiter(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := limiter.Increment(ctx, "device-1"); err != nil {
			t.Fatalf("Increment failed: %v", err)
		}
		status, err := limiter.Check(ctx, "device-1", false)
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		wantAllowed := i < 2
		if status.Allowed != wantAllowed {
			t.Fatalf("after %d increments: allowed=%v, want %v", i+1, status.Allowed, wantAllowed)
		}
	}

	status, _ := limiter.Check(ctx, "device-1", false)
	if status.Allowed || status.Used != 3 {
		t.Fatalf("expected used=3 and not allowed, got %+v", status)
	}
}

func TestCheckPremiumBypass(t *testing.T) {
	limiter, _ := newTestLimiter(3)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if err := limiter.Increment(ctx, "device-1"); err != nil {
			t.Fatalf("Increment failed: %v", err)
		}
	}

	status, err := limiter.Check(ctx, "device-1", true)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !status.Allowed {
		t.Fatalf("premium device must always be allowed")
	}
	if status.Used != 0 || status.Limit != UnlimitedLimit || status.ResetsAt != "" {
		t.Fatalf("premium status should report used=0 limit=%d resetsAt empty, got %+v", UnlimitedLimit, status)
	}
}

func TestIncrementTTL(t *testing.T) {
	limiter, store := newTestLimiter(3)

	if err := limiter.Increment(context.Background(), "device-1"); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if store.lastTTL != 25*time.Hour {
		t.Fatalf("expected the configured 25h TTL, got %v", store.lastTTL)
	}
}

func TestStats(t *testing.T) {
	limiter, _ := newTestLimiter(3)
	ctx := context.Background()

	if err := limiter.Increment(ctx, "device-1"); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	stats, err := limiter.Stats(ctx, "device-1", false)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Used != 1 || stats.Limit != 3 || stats.IsPremium {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestDayKey(t *testing.T) {
	at := time.Date(2024, 3, 10, 23, 30, 0, 0, time.FixedZone("UTC+2", 2*3600))
	if got := DayKey(at); got != "2024-03-10" {
		t.Fatalf("expected UTC day 2024-03-10, got %q", got)
	}
}

func TestNextReset(t *testing.T) {
	at := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	got := NextReset(at)
	if got != "2024-03-11T00:00:00Z" {
		t.Fatalf("expected next UTC midnight, got %q", got)
	}
	if !strings.HasSuffix(got, "T00:00:00Z") {
		t.Fatalf("reset time must land on midnight, got %q", got)
	}
}
