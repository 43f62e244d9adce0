package forecast

import (
	"context"
	"log/slog"
	"time"
)

// Service exposes forecast retrieval and slot suggestion.
type Service interface {
	Forecast(ctx context.Context, location, subdistrict string) ([]DailyForecast, error)
	Suggest(ctx context.Context, location, subdistrict, preferredDate string) (SuggestResult, error)
}

// SuggestResult bundles the ranked slots with the forecast set they
// were derived from, so callers can snapshot both.
type SuggestResult struct {
	Days        []DailyForecast `json:"weatherData"`
	Suggestions []Suggestion    `json:"suggestedSlots"`
}

// ProviderClient fetches raw readings for a resolved area code.
type ProviderClient interface {
	Fetch(ctx context.Context, areaCode string) ([]Reading, error)
}

// AreaResolver maps a location/subdistrict pair to a provider area
// code. ok is false when no city matched and the returned code is the
// fixed fallback.
type AreaResolver interface {
	Resolve(location, subdistrict string) (code string, ok bool)
}

// Store caches normalized forecast sets keyed by area code.
type Store interface {
	Get(ctx context.Context, areaCode string) ([]DailyForecast, bool, error)
	Save(ctx context.Context, areaCode string, days []DailyForecast, ttl time.Duration) error
	// Keys lists recently saved area codes, newest first, for cache warming.
	Keys(ctx context.Context, limit int) ([]string, error)
}

// Config tunes the forecast service.
type Config struct {
	CacheTTL time.Duration
}

type service struct {
	cfg      Config
	provider ProviderClient
	resolver AreaResolver
	store    Store
	logger   *slog.Logger
	now      func() time.Time
	pick     RandFn
}

// NewService wires up the forecast domain.
func NewService(cfg Config, provider ProviderClient, resolver AreaResolver, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		provider: provider,
		resolver: resolver,
		store:    store,
		logger:   logger.With("component", "forecast.service"),
		now:      time.Now,
		pick:     DefaultRand,
	}
}

// Forecast returns the three-day set for a location. Upstream failure,
// an unresolved area, or a short payload all degrade to synthetic days;
// callers never see an error for those paths.
func (s *service) Forecast(ctx context.Context, location, subdistrict string) ([]DailyForecast, error) {
	area, ok := s.resolver.Resolve(location, subdistrict)
	if !ok {
		s.logger.Warn("area code not resolved, serving synthetic forecast", "location", location, "subdistrict", subdistrict)
		return Normalize(nil, s.now(), s.pick), nil
	}

	if cached, found, err := s.store.Get(ctx, area); err != nil {
		s.logger.Warn("forecast cache read failed", "area", area, "error", err)
	} else if found {
		return cached, nil
	}

	readings, err := s.provider.Fetch(ctx, area)
	if err != nil {
		s.logger.Error("weather provider fetch failed, serving synthetic forecast", "area", area, "error", err)
		return Normalize(nil, s.now(), s.pick), nil
	}
	if len(readings) == 0 {
		s.logger.Warn("weather provider returned no readings, serving synthetic forecast", "area", area)
		return Normalize(nil, s.now(), s.pick), nil
	}

	days := Normalize(readings, s.now(), s.pick)
	if err := s.store.Save(ctx, area, days, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("forecast cache write failed", "area", area, "error", err)
	}
	return days, nil
}

// Suggest fetches the forecast and ranks time slots around the
// preferred date. Only an unparseable date is an error.
func (s *service) Suggest(ctx context.Context, location, subdistrict, preferredDate string) (SuggestResult, error) {
	days, err := s.Forecast(ctx, location, subdistrict)
	if err != nil {
		return SuggestResult{}, err
	}
	suggestions, err := SuggestSlots(days, preferredDate, s.now())
	if err != nil {
		return SuggestResult{}, err
	}
	return SuggestResult{Days: days, Suggestions: suggestions}, nil
}
