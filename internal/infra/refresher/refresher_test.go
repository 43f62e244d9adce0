package refresher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outdoor-scheduler/internal/domain/forecast"
)

type stubProvider struct {
	readings map[string][]forecast.Reading
	err      error
}

func (s *stubProvider) Fetch(_ context.Context, areaCode string) ([]forecast.Reading, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.readings[areaCode], nil
}

type stubStore struct {
	keys  []string
	saved map[string][]forecast.DailyForecast
}

func (s *stubStore) Get(_ context.Context, _ string) ([]forecast.DailyForecast, bool, error) {
	return nil, false, nil
}

func (s *stubStore) Save(_ context.Context, areaCode string, days []forecast.DailyForecast, _ time.Duration) error {
	if s.saved == nil {
		s.saved = make(map[string][]forecast.DailyForecast)
	}
	s.saved[areaCode] = days
	return nil
}

func (s *stubStore) Keys(_ context.Context, limit int) ([]string, error) {
	if len(s.keys) > limit {
		return s.keys[:limit], nil
	}
	return s.keys, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func reading(hour int) forecast.Reading {
	return forecast.Reading{
		LocalTime:    time.Date(2026, 3, 10, hour, 0, 0, 0, forecast.WIB),
		LocalDesc:    "Cerah",
		EnglishDesc:  "Sunny",
		TemperatureC: 27,
		HumidityPct:  60,
		WindSpeedKph: 8,
	}
}

func TestRefreshSavesNormalizedForecasts(t *testing.T) {
	provider := &stubProvider{readings: map[string][]forecast.Reading{
		"3171040001": {reading(6)},
	}}
	store := &stubStore{keys: []string{"3171040001"}}

	r := New(provider, store, time.Minute, 30*time.Minute, 10, testLogger())
	r.refresh()

	require.Contains(t, store.saved, "3171040001")
	require.Len(t, store.saved["3171040001"], forecast.ForecastDays)
}

func TestRefreshSkipsEmptyReadings(t *testing.T) {
	provider := &stubProvider{readings: map[string][]forecast.Reading{}}
	store := &stubStore{keys: []string{"3171040001"}}

	r := New(provider, store, time.Minute, 30*time.Minute, 10, testLogger())
	r.refresh()

	require.Empty(t, store.saved)
}

func TestRefreshToleratesProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream down")}
	store := &stubStore{keys: []string{"a", "b"}}

	r := New(provider, store, time.Minute, 30*time.Minute, 10, testLogger())
	r.refresh()

	require.Empty(t, store.saved)
}
