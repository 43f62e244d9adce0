package activity

import (
	"context"

	"github.com/google/uuid"
)

// Repository abstracts activity persistence.
type Repository interface {
	Create(ctx context.Context, act Activity) (Activity, error)
	GetByID(ctx context.Context, id uuid.UUID) (Activity, bool, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]Activity, int64, error)
	Update(ctx context.Context, act Activity) (Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RecentLocations(ctx context.Context, userID int64, limit int) ([]RecentLocation, error)
}
