package activityrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/yanqian/outdoor-scheduler/internal/domain/activity"
)

// MemoryRepository provides an in-memory activity store for tests/dev.
type MemoryRepository struct {
	mu         sync.RWMutex
	activities map[uuid.UUID]activity.Activity
	order      []uuid.UUID
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		activities: make(map[uuid.UUID]activity.Activity),
	}
}

// Create stores the activity.
func (r *MemoryRepository) Create(_ context.Context, act activity.Activity) (activity.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities[act.ID] = act
	r.order = append(r.order, act.ID)
	return act, nil
}

// GetByID fetches by primary key.
func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (activity.Activity, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	act, ok := r.activities[id]
	return act, ok, nil
}

// ListByUser pages through a user's activities, newest first.
func (r *MemoryRepository) ListByUser(_ context.Context, userID int64, limit, offset int) ([]activity.Activity, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := make([]activity.Activity, 0)
	for _, id := range r.order {
		if act, ok := r.activities[id]; ok && act.UserID == userID {
			owned = append(owned, act)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	total := int64(len(owned))
	if offset >= len(owned) {
		return []activity.Activity{}, total, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], total, nil
}

// Update replaces the stored activity.
func (r *MemoryRepository) Update(_ context.Context, act activity.Activity) (activity.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities[act.ID] = act
	return act, nil
}

// Delete removes the activity.
func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.activities, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// RecentLocations lists distinct location pairs, most recently created
// first.
func (r *MemoryRepository) RecentLocations(_ context.Context, userID int64, limit int) ([]activity.RecentLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := make([]activity.Activity, 0)
	for _, id := range r.order {
		if act, ok := r.activities[id]; ok && act.UserID == userID {
			owned = append(owned, act)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	seen := make(map[activity.RecentLocation]struct{})
	out := make([]activity.RecentLocation, 0, limit)
	for _, act := range owned {
		loc := activity.RecentLocation{Location: act.Location, Subdistrict: act.Subdistrict}
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		out = append(out, loc)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

var _ activity.Repository = (*MemoryRepository)(nil)
