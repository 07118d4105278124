package cache

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/tinysteps/backend/internal/config"
	"github.com/tinysteps/backend/internal/model"
	"github.com/tinysteps/backend/internal/pkg/json"
)

const maxKeyLength = 100

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeTask canonicalizes free-text task input into a cache key fragment:
// case-folded, punctuation-stripped, whitespace-collapsed, truncated to 100
// characters. The canonicalization is lossy; distinct tasks that collide
// after it share a cache entry intentionally.
func NormalizeTask(task string) string {
	s := strings.TrimSpace(strings.ToLower(task))
	s = nonWordPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	if len(s) > maxKeyLength {
		s = s[:maxKeyLength]
	}
	return s
}

// ResultStore persists serialized decomposition results with a TTL.
type ResultStore interface {
	Get(ctx context.Context, style, taskKey string) ([]byte, bool, error)
	Put(ctx context.Context, style, taskKey string, result []byte, ttl time.Duration) error
}

// Cache fronts the decomposition client with normalized-key lookups.
type Cache struct {
	store ResultStore
	ttl   time.Duration
}

func New(store ResultStore, cfg config.CacheConfig) *Cache {
	return &Cache{store: store, ttl: cfg.TTL}
}

// Get returns a previously stored result with cached forced to true, or
// ok=false on a miss.
func (c *Cache) Get(ctx context.Context, task string, style model.TaskStyle) (*model.DecomposeResponse, bool, error) {
	data, ok, err := c.store.Get(ctx, string(style), NormalizeTask(task))
	if err != nil || !ok {
		return nil, false, err
	}

	var resp model.DecomposeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, false, err
	}
	resp.Cached = true
	return &resp, true, nil
}

// Put stores a successful result under the normalized key. The stored copy
// always carries cached=false; Get flips it on the way out.
func (c *Cache) Put(ctx context.Context, task string, style model.TaskStyle, resp *model.DecomposeResponse) error {
	stored := *resp
	stored.Cached = false

	data, err := json.Marshal(&stored)
	if err != nil {
		return err
	}
	return c.store.Put(ctx, string(style), NormalizeTask(task), data, c.ttl)
}
