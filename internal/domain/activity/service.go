package activity

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/outdoor-scheduler/internal/domain/forecast"
	apperrors "github.com/yanqian/outdoor-scheduler/pkg/errors"
)

// Service exposes the activity lifecycle. Every operation is scoped to
// the owning user; touching someone else's activity yields a forbidden
// error, never the record.
type Service interface {
	Create(ctx context.Context, userID int64, req CreateRequest) (Activity, error)
	List(ctx context.Context, userID int64, page int) (ListResult, error)
	Get(ctx context.Context, userID int64, id uuid.UUID) (Activity, error)
	Update(ctx context.Context, userID int64, id uuid.UUID, req UpdateRequest) (Activity, error)
	Delete(ctx context.Context, userID int64, id uuid.UUID) error
	RecentLocations(ctx context.Context, userID int64) ([]RecentLocation, error)
}

const (
	pageSize            = 10
	recentLocationLimit = 5
)

type service struct {
	repo      Repository
	forecasts forecast.Service
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires up the activity domain.
func NewService(repo Repository, forecasts forecast.Service, logger *slog.Logger) Service {
	return &service{
		repo:      repo,
		forecasts: forecasts,
		logger:    logger.With("component", "activity.service"),
		now:       time.Now,
	}
}

func (s *service) Create(ctx context.Context, userID int64, req CreateRequest) (Activity, error) {
	name := strings.TrimSpace(req.Name)
	location := strings.TrimSpace(req.Location)
	subdistrict := strings.TrimSpace(req.Subdistrict)
	if name == "" || location == "" || subdistrict == "" {
		return Activity{}, apperrors.Wrap("invalid_input", "name, location and subdistrict are required", nil)
	}
	if err := s.validatePreferredDate(req.PreferredDate); err != nil {
		return Activity{}, err
	}

	result, err := s.forecasts.Suggest(ctx, location, subdistrict, req.PreferredDate)
	if err != nil {
		return Activity{}, err
	}

	now := s.now().UTC()
	act := Activity{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Location:       location,
		Subdistrict:    subdistrict,
		PreferredDate:  req.PreferredDate,
		WeatherData:    result.Days,
		SuggestedSlots: result.Suggestions,
		Status:         StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, act)
	if err != nil {
		return Activity{}, apperrors.Wrap("activity_error", "failed to store activity", err)
	}
	s.logger.Info("activity created", "activityId", created.ID, "userId", userID, "suggestions", len(created.SuggestedSlots))
	return created, nil
}

func (s *service) List(ctx context.Context, userID int64, page int) (ListResult, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.repo.ListByUser(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return ListResult{}, apperrors.Wrap("activity_error", "failed to list activities", err)
	}
	return ListResult{Items: items, Total: total, Page: page, PerPage: pageSize}, nil
}

func (s *service) Get(ctx context.Context, userID int64, id uuid.UUID) (Activity, error) {
	return s.ownedActivity(ctx, userID, id)
}

func (s *service) Update(ctx context.Context, userID int64, id uuid.UUID, req UpdateRequest) (Activity, error) {
	act, err := s.ownedActivity(ctx, userID, id)
	if err != nil {
		return Activity{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return Activity{}, apperrors.Wrap("invalid_input", "name cannot be empty", nil)
		}
		act.Name = name
	}
	if req.Status != nil {
		status := Status(strings.TrimSpace(*req.Status))
		if !ValidStatus(status) {
			return Activity{}, apperrors.Wrap("invalid_input", "status must be one of pending, scheduled, completed, cancelled", nil)
		}
		act.Status = status
	}
	if req.SelectedSlot != nil {
		act.SelectedSlot = strings.TrimSpace(*req.SelectedSlot)
	}

	refetch := false
	if req.Location != nil {
		location := strings.TrimSpace(*req.Location)
		if location == "" {
			return Activity{}, apperrors.Wrap("invalid_input", "location cannot be empty", nil)
		}
		act.Location = location
		refetch = true
	}
	if req.Subdistrict != nil {
		subdistrict := strings.TrimSpace(*req.Subdistrict)
		if subdistrict == "" {
			return Activity{}, apperrors.Wrap("invalid_input", "subdistrict cannot be empty", nil)
		}
		act.Subdistrict = subdistrict
		refetch = true
	}
	if req.PreferredDate != nil {
		if err := s.validatePreferredDate(*req.PreferredDate); err != nil {
			return Activity{}, err
		}
		act.PreferredDate = *req.PreferredDate
		refetch = true
	}

	// Editing where or when invalidates the captured snapshot.
	if refetch {
		result, err := s.forecasts.Suggest(ctx, act.Location, act.Subdistrict, act.PreferredDate)
		if err != nil {
			return Activity{}, err
		}
		act.WeatherData = result.Days
		act.SuggestedSlots = result.Suggestions
	}

	act.UpdatedAt = s.now().UTC()
	updated, err := s.repo.Update(ctx, act)
	if err != nil {
		return Activity{}, apperrors.Wrap("activity_error", "failed to update activity", err)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	if _, err := s.ownedActivity(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Wrap("activity_error", "failed to delete activity", err)
	}
	s.logger.Info("activity deleted", "activityId", id, "userId", userID)
	return nil
}

func (s *service) RecentLocations(ctx context.Context, userID int64) ([]RecentLocation, error) {
	locations, err := s.repo.RecentLocations(ctx, userID, recentLocationLimit)
	if err != nil {
		return nil, apperrors.Wrap("activity_error", "failed to load recent locations", err)
	}
	return locations, nil
}

func (s *service) ownedActivity(ctx context.Context, userID int64, id uuid.UUID) (Activity, error) {
	act, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Activity{}, apperrors.Wrap("activity_error", "failed to load activity", err)
	}
	if !found {
		return Activity{}, apperrors.Wrap("not_found", "activity not found", nil)
	}
	if act.UserID != userID {
		return Activity{}, apperrors.Wrap("forbidden", "activity belongs to another user", nil)
	}
	return act, nil
}

func (s *service) validatePreferredDate(value string) error {
	date, err := time.ParseInLocation(forecast.DateLayout, value, forecast.WIB)
	if err != nil {
		return apperrors.Wrap("invalid_input", "preferred date must be formatted as YYYY-MM-DD", err)
	}
	today := s.now().In(forecast.WIB)
	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, forecast.WIB)
	if date.Before(todayMidnight) {
		return apperrors.Wrap("invalid_input", "preferred date cannot be in the past", nil)
	}
	return nil
}
