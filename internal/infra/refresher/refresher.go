package refresher

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/yanqian/outdoor-scheduler/internal/domain/forecast"
)

const fetchTimeout = 30 * time.Second

// Refresher periodically re-warms the forecast cache for recently
// requested areas so interactive requests rarely hit the provider.
type Refresher struct {
	scheduler *gocron.Scheduler
	provider  forecast.ProviderClient
	store     forecast.Store
	logger    *slog.Logger
	interval  time.Duration
	cacheTTL  time.Duration
	maxAreas  int
}

// New creates a refresher. It does nothing until Start is called.
func New(provider forecast.ProviderClient, store forecast.Store, interval, cacheTTL time.Duration, maxAreas int, logger *slog.Logger) *Refresher {
	if maxAreas <= 0 {
		maxAreas = 10
	}
	return &Refresher{
		scheduler: gocron.NewScheduler(forecast.WIB),
		provider:  provider,
		store:     store,
		logger:    logger.With("component", "forecast.refresher"),
		interval:  interval,
		cacheTTL:  cacheTTL,
		maxAreas:  maxAreas,
	}
}

// Start schedules the periodic refresh job.
func (r *Refresher) Start() error {
	minutes := int(r.interval.Minutes())
	if minutes <= 0 {
		minutes = 20
	}

	_, err := r.scheduler.Every(minutes).Minutes().Do(r.refresh)
	if err != nil {
		return err
	}

	r.scheduler.StartAsync()
	return nil
}

// Stop halts the scheduler and cancels future runs.
func (r *Refresher) Stop() {
	if r.scheduler != nil {
		r.scheduler.Stop()
	}
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	areas, err := r.store.Keys(ctx, r.maxAreas)
	if err != nil {
		r.logger.Warn("failed to list cached areas", "error", err)
		return
	}
	if len(areas) == 0 {
		return
	}

	refreshed := 0
	for _, area := range areas {
		if err := r.refreshArea(area); err != nil {
			r.logger.Warn("forecast refresh failed", "area", area, "error", err)
			continue
		}
		refreshed++
	}
	r.logger.Info("forecast cache refreshed", "areas", refreshed, "total", len(areas))
}

func (r *Refresher) refreshArea(area string) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	readings, err := r.provider.Fetch(ctx, area)
	if err != nil {
		return err
	}
	if len(readings) == 0 {
		// Nothing usable; keep whatever is cached.
		return nil
	}

	days := forecast.Normalize(readings, time.Now(), forecast.DefaultRand)
	return r.store.Save(ctx, area, days, r.cacheTTL)
}
