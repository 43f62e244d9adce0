package forecaststore

import (
	"context"
	"sort"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yanqian/outdoor-scheduler/internal/domain/forecast"
)

// MemoryStore is an in-process forecast cache for tests and single-node
// deployments without Valkey.
type MemoryStore struct {
	cache *gocache.Cache

	mu      sync.Mutex
	savedAt map[string]time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	if defaultTTL <= 0 {
		defaultTTL = 30 * time.Minute
	}
	return &MemoryStore{
		cache:   gocache.New(defaultTTL, 10*time.Minute),
		savedAt: make(map[string]time.Time),
	}
}

// Get implements forecast.Store.
func (s *MemoryStore) Get(_ context.Context, areaCode string) ([]forecast.DailyForecast, bool, error) {
	if areaCode == "" {
		return nil, false, nil
	}
	value, ok := s.cache.Get(areaCode)
	if !ok {
		return nil, false, nil
	}
	days, ok := value.([]forecast.DailyForecast)
	if !ok {
		return nil, false, nil
	}
	return days, true, nil
}

// Save caches a forecast set and records the area as recently used.
func (s *MemoryStore) Save(_ context.Context, areaCode string, days []forecast.DailyForecast, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	s.cache.Set(areaCode, days, ttl)

	s.mu.Lock()
	s.savedAt[areaCode] = time.Now()
	s.mu.Unlock()
	return nil
}

// Keys lists recently saved area codes, newest first.
func (s *MemoryStore) Keys(_ context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}

	type saved struct {
		area string
		at   time.Time
	}

	s.mu.Lock()
	entries := make([]saved, 0, len(s.savedAt))
	for area, at := range s.savedAt {
		entries = append(entries, saved{area: area, at: at})
	}
	s.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].at.Equal(entries[j].at) {
			return entries[i].area < entries[j].area
		}
		return entries[i].at.After(entries[j].at)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.area)
	}
	return keys, nil
}

var _ forecast.Store = (*MemoryStore)(nil)
