package activityrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/outdoor-scheduler/internal/domain/activity"
	"github.com/yanqian/outdoor-scheduler/internal/domain/forecast"
)

// PostgresRepository persists activities in Postgres. Forecast and
// suggestion snapshots are stored as JSONB.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const activityColumns = `
	id, user_id, name, location, subdistrict, preferred_date,
	weather_data, suggested_slots, selected_slot, status, created_at, updated_at
`

// Create inserts a new activity row.
func (r *PostgresRepository) Create(ctx context.Context, act activity.Activity) (activity.Activity, error) {
	weather, slots, err := marshalSnapshots(act)
	if err != nil {
		return activity.Activity{}, err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO activities (id, user_id, name, location, subdistrict, preferred_date,
			weather_data, suggested_slots, selected_slot, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+activityColumns, act.ID, act.UserID, act.Name, act.Location, act.Subdistrict,
		act.PreferredDate, weather, slots, act.SelectedSlot, act.Status, act.CreatedAt, act.UpdatedAt)
	return scanActivity(row)
}

// GetByID fetches one activity.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (activity.Activity, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+activityColumns+`
		FROM activities
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return activity.Activity{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return activity.Activity{}, false, rows.Err()
	}
	act, err := scanActivity(rows)
	if err != nil {
		return activity.Activity{}, false, err
	}
	return act, true, rows.Err()
}

// ListByUser returns one page of a user's activities, newest first,
// plus the total row count.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]activity.Activity, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM activities WHERE user_id = $1
	`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+activityColumns+`
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]activity.Activity, 0, limit)
	for rows.Next() {
		act, err := scanActivity(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, act)
	}
	return items, total, rows.Err()
}

// Update rewrites all mutable columns.
func (r *PostgresRepository) Update(ctx context.Context, act activity.Activity) (activity.Activity, error) {
	weather, slots, err := marshalSnapshots(act)
	if err != nil {
		return activity.Activity{}, err
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE activities
		SET name = $2, location = $3, subdistrict = $4, preferred_date = $5,
			weather_data = $6, suggested_slots = $7, selected_slot = $8,
			status = $9, updated_at = $10
		WHERE id = $1
		RETURNING `+activityColumns, act.ID, act.Name, act.Location, act.Subdistrict,
		act.PreferredDate, weather, slots, act.SelectedSlot, act.Status, act.UpdatedAt)
	return scanActivity(row)
}

// Delete removes an activity row.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	return err
}

// RecentLocations lists distinct location pairs from the user's
// activities, most recently used first.
func (r *PostgresRepository) RecentLocations(ctx context.Context, userID int64, limit int) ([]activity.RecentLocation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT location, subdistrict
		FROM activities
		WHERE user_id = $1
		GROUP BY location, subdistrict
		ORDER BY MAX(created_at) DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]activity.RecentLocation, 0, limit)
	for rows.Next() {
		var loc activity.RecentLocation
		if err := rows.Scan(&loc.Location, &loc.Subdistrict); err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	return out, rows.Err()
}

func marshalSnapshots(act activity.Activity) ([]byte, []byte, error) {
	weather, err := json.Marshal(act.WeatherData)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal weather snapshot: %w", err)
	}
	slots, err := json.Marshal(act.SuggestedSlots)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal slot snapshot: %w", err)
	}
	return weather, slots, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (activity.Activity, error) {
	var (
		act     activity.Activity
		weather []byte
		slots   []byte
		created time.Time
		updated time.Time
	)
	if err := row.Scan(&act.ID, &act.UserID, &act.Name, &act.Location, &act.Subdistrict,
		&act.PreferredDate, &weather, &slots, &act.SelectedSlot, &act.Status, &created, &updated); err != nil {
		return activity.Activity{}, err
	}
	if len(weather) > 0 {
		var days []forecast.DailyForecast
		if err := json.Unmarshal(weather, &days); err != nil {
			return activity.Activity{}, fmt.Errorf("decode weather snapshot: %w", err)
		}
		act.WeatherData = days
	}
	if len(slots) > 0 {
		var suggestions []forecast.Suggestion
		if err := json.Unmarshal(slots, &suggestions); err != nil {
			return activity.Activity{}, fmt.Errorf("decode slot snapshot: %w", err)
		}
		act.SuggestedSlots = suggestions
	}
	act.CreatedAt = created.UTC()
	act.UpdatedAt = updated.UTC()
	return act, nil
}

var _ activity.Repository = (*PostgresRepository)(nil)
