package activity

import (
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/outdoor-scheduler/internal/domain/forecast"
)

// Status is the closed activity lifecycle set.
type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Activity is a user-owned outdoor plan. The weather and suggestion
// fields are snapshots captured at create/edit time, never refreshed on
// read.
type Activity struct {
	ID             uuid.UUID                `json:"id"`
	UserID         int64                    `json:"userId"`
	Name           string                   `json:"name"`
	Location       string                   `json:"location"`
	Subdistrict    string                   `json:"subdistrict"`
	PreferredDate  string                   `json:"preferredDate"`
	WeatherData    []forecast.DailyForecast `json:"weatherData"`
	SuggestedSlots []forecast.Suggestion    `json:"suggestedSlots"`
	SelectedSlot   string                   `json:"selectedSlot,omitempty"`
	Status         Status                   `json:"status"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}

// CreateRequest captures the submission payload.
type CreateRequest struct {
	Name          string `json:"name" binding:"required"`
	Location      string `json:"location" binding:"required"`
	Subdistrict   string `json:"subdistrict" binding:"required"`
	PreferredDate string `json:"preferredDate" binding:"required"`
}

// UpdateRequest carries a partial edit; nil fields stay untouched.
type UpdateRequest struct {
	Name          *string `json:"name"`
	Location      *string `json:"location"`
	Subdistrict   *string `json:"subdistrict"`
	PreferredDate *string `json:"preferredDate"`
	SelectedSlot  *string `json:"selectedSlot"`
	Status        *string `json:"status"`
}

// ListResult is one page of a user's activities, newest first.
type ListResult struct {
	Items   []Activity `json:"items"`
	Total   int64      `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"perPage"`
}

// RecentLocation is a distinct location pair drawn from the caller's
// own activities, used for quick re-entry in clients.
type RecentLocation struct {
	Location    string `json:"location"`
	Subdistrict string `json:"subdistrict"`
}
