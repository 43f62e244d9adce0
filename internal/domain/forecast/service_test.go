package forecast

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	readings []Reading
	err      error
	calls    int
}

func (s *stubProvider) Fetch(_ context.Context, _ string) ([]Reading, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.readings, nil
}

type stubResolver struct {
	code string
	ok   bool
}

func (s *stubResolver) Resolve(_, _ string) (string, bool) {
	return s.code, s.ok
}

type stubStore struct {
	cached    []DailyForecast
	saved     map[string][]DailyForecast
	savedTTL  time.Duration
	getErr    error
	saveErr   error
	saveCalls int
}

func (s *stubStore) Get(_ context.Context, _ string) ([]DailyForecast, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	return s.cached, s.cached != nil, nil
}

func (s *stubStore) Save(_ context.Context, areaCode string, days []DailyForecast, ttl time.Duration) error {
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	if s.saved == nil {
		s.saved = make(map[string][]DailyForecast)
	}
	s.saved[areaCode] = days
	s.savedTTL = ttl
	return nil
}

func (s *stubStore) Keys(_ context.Context, _ int) ([]string, error) {
	return nil, nil
}

func newTestService(t *testing.T, provider *stubProvider, resolver *stubResolver, store *stubStore) *service {
	t.Helper()
	return &service{
		cfg:      Config{CacheTTL: 30 * time.Minute},
		provider: provider,
		resolver: resolver,
		store:    store,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      func() time.Time { return wibTime(t, "2025-03-10 05:00") },
		pick:     pickMin,
	}
}

func TestForecastNormalizesAndCaches(t *testing.T) {
	provider := &stubProvider{readings: []Reading{
		{LocalTime: wibTime(t, "2025-03-10 06:00"), EnglishDesc: "Clear Sky", TemperatureC: 27, HumidityPct: 55, WindSpeedKph: 8},
		{LocalTime: wibTime(t, "2025-03-11 06:00"), EnglishDesc: "Light Rain", TemperatureC: 25, HumidityPct: 88, WindSpeedKph: 12},
		{LocalTime: wibTime(t, "2025-03-12 06:00"), EnglishDesc: "Cloudy", TemperatureC: 26, HumidityPct: 70, WindSpeedKph: 9},
	}}
	store := &stubStore{}
	svc := newTestService(t, provider, &stubResolver{code: "3171040001", ok: true}, store)

	days, err := svc.Forecast(context.Background(), "Jakarta", "Menteng")
	require.NoError(t, err)
	require.Len(t, days, ForecastDays)
	require.Equal(t, ConditionSunny, days[0].Condition)
	require.Equal(t, days, store.saved["3171040001"])
	require.Equal(t, 30*time.Minute, store.savedTTL)
}

func TestForecastServesCachedSet(t *testing.T) {
	cached := Normalize(nil, wibTime(t, "2025-03-10 05:00"), pickMin)
	provider := &stubProvider{}
	svc := newTestService(t, provider, &stubResolver{code: "3171040001", ok: true}, &stubStore{cached: cached})

	days, err := svc.Forecast(context.Background(), "Jakarta", "Menteng")
	require.NoError(t, err)
	require.Equal(t, cached, days)
	require.Zero(t, provider.calls)
}

func TestForecastDegradesOnProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream timeout")}
	store := &stubStore{}
	svc := newTestService(t, provider, &stubResolver{code: "3171040001", ok: true}, store)

	days, err := svc.Forecast(context.Background(), "Jakarta", "Menteng")
	require.NoError(t, err)
	require.Len(t, days, ForecastDays)
	// Synthetic fallback is not cached.
	require.Zero(t, store.saveCalls)
}

func TestForecastDegradesOnEmptyPayload(t *testing.T) {
	svc := newTestService(t, &stubProvider{}, &stubResolver{code: "3171040001", ok: true}, &stubStore{})

	days, err := svc.Forecast(context.Background(), "Jakarta", "Menteng")
	require.NoError(t, err)
	require.Len(t, days, ForecastDays)
}

func TestForecastDegradesOnUnresolvedArea(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(t, provider, &stubResolver{code: "3171040001", ok: false}, &stubStore{})

	days, err := svc.Forecast(context.Background(), "Atlantis", "")
	require.NoError(t, err)
	require.Len(t, days, ForecastDays)
	require.Zero(t, provider.calls)
}

func TestSuggestReturnsForecastAndSlots(t *testing.T) {
	provider := &stubProvider{readings: []Reading{
		{LocalTime: wibTime(t, "2025-03-10 06:00"), EnglishDesc: "Clear Sky", TemperatureC: 27, HumidityPct: 55, WindSpeedKph: 8},
	}}
	svc := newTestService(t, provider, &stubResolver{code: "3171040001", ok: true}, &stubStore{})

	result, err := svc.Suggest(context.Background(), "Jakarta", "Menteng", "2025-03-10")
	require.NoError(t, err)
	require.Len(t, result.Days, ForecastDays)
	require.NotEmpty(t, result.Suggestions)
	require.LessOrEqual(t, len(result.Suggestions), 8)
}

func TestSuggestRejectsInvalidDate(t *testing.T) {
	svc := newTestService(t, &stubProvider{}, &stubResolver{code: "3171040001", ok: true}, &stubStore{})

	_, err := svc.Suggest(context.Background(), "Jakarta", "Menteng", "next tuesday")
	require.Error(t, err)
}
