package activityrepo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/outdoor-scheduler/internal/domain/activity"
)

func newActivity(userID int64, name, location string, createdAt time.Time) activity.Activity {
	return activity.Activity{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Location:      location,
		Subdistrict:   "Menteng",
		PreferredDate: "2026-03-10",
		Status:        activity.StatusPending,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestMemoryRepositoryListByUserPagination(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, newActivity(1, "run", "Jakarta", base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, newActivity(2, "hike", "Bandung", base))
	require.NoError(t, err)

	items, total, err := repo.ListByUser(ctx, 1, 3, 0)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, items, 3)
	// Newest first.
	require.True(t, items[0].CreatedAt.After(items[1].CreatedAt))

	rest, _, err := repo.ListByUser(ctx, 1, 3, 3)
	require.NoError(t, err)
	require.Len(t, rest, 2)
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	act, err := repo.Create(ctx, newActivity(1, "run", "Jakarta", time.Now()))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, act.ID))

	_, found, err := repo.GetByID(ctx, act.ID)
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryRepositoryRecentLocations(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, newActivity(1, "run", "Jakarta", base))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newActivity(1, "walk", "Bandung", base.Add(time.Hour)))
	require.NoError(t, err)
	// Duplicate pair, newer; must not produce a second entry.
	_, err = repo.Create(ctx, newActivity(1, "jog", "Jakarta", base.Add(2*time.Hour)))
	require.NoError(t, err)

	locations, err := repo.RecentLocations(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	require.Equal(t, "Jakarta", locations[0].Location)
	require.Equal(t, "Bandung", locations[1].Location)
}
