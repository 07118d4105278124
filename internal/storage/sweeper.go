package storage

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper periodically deletes expired rate-limit and cache rows. Postgres
// has no native key TTL, so this stands in for the KV store's self-expiry.
type Sweeper struct {
	cron      *cron.Cron
	rateLimit *RateLimitRepository
	cache     *CacheRepository
}

func NewSweeper(rateLimit *RateLimitRepository, cache *CacheRepository) *Sweeper {
	return &Sweeper{
		cron:      cron.New(),
		rateLimit: rateLimit,
		cache:     cache,
	}
}

func (s *Sweeper) Start() error {
	_, err := s.cron.AddFunc("@hourly", s.sweep)
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if n, err := s.rateLimit.CleanExpired(ctx); err != nil {
		log.Printf("Sweeper: failed to clean rate limits: %v", err)
	} else if n > 0 {
		log.Printf("Sweeper: removed %d expired rate-limit entries", n)
	}

	if n, err := s.cache.CleanExpired(ctx); err != nil {
		log.Printf("Sweeper: failed to clean cache: %v", err)
	} else if n > 0 {
		log.Printf("Sweeper: removed %d expired cache entries", n)
	}
}
