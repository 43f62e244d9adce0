package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/outdoor-scheduler/internal/domain/activity"
	"github.com/yanqian/outdoor-scheduler/internal/domain/auth"
	"github.com/yanqian/outdoor-scheduler/internal/domain/forecast"
	"github.com/yanqian/outdoor-scheduler/internal/domain/location"
	"github.com/yanqian/outdoor-scheduler/internal/infra/activityrepo"
	"github.com/yanqian/outdoor-scheduler/internal/infra/config"
	"github.com/yanqian/outdoor-scheduler/internal/infra/forecaststore"
	"github.com/yanqian/outdoor-scheduler/internal/infra/location/nominatim"
	"github.com/yanqian/outdoor-scheduler/internal/infra/location/wilayah"
	"github.com/yanqian/outdoor-scheduler/internal/infra/refresher"
	"github.com/yanqian/outdoor-scheduler/internal/infra/userrepo"
	"github.com/yanqian/outdoor-scheduler/internal/infra/weather/areacode"
	"github.com/yanqian/outdoor-scheduler/internal/infra/weather/bmkg"
)

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:          cfg.Auth.Secret,
		TokenTTL:        cfg.Auth.TokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
	}
}

func provideForecastConfig(cfg *config.Config) forecast.Config {
	return forecast.Config{
		CacheTTL: cfg.Weather.CacheTTL,
	}
}

func provideWeatherClient(cfg *config.Config, logger *slog.Logger) *bmkg.Client {
	return bmkg.NewClient(cfg.Weather.BaseURL, cfg.Weather.Timeout, logger)
}

func provideAreaResolver() *areacode.Resolver {
	return areacode.NewResolver()
}

func provideWilayahClient(cfg *config.Config) *wilayah.Client {
	return wilayah.NewClient(cfg.Location.WilayahBaseURL, cfg.Location.DirectoryTTL)
}

func provideNominatimClient(cfg *config.Config) *nominatim.Client {
	return nominatim.NewClient(cfg.Location.NominatimBaseURL, cfg.Location.GeocodeTTL)
}

func provideForecastStore(cfg *config.Config, logger *slog.Logger) forecast.Store {
	if cfg.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return forecaststore.NewMemoryStore(cfg.Weather.CacheTTL)
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return forecaststore.NewMemoryStore(cfg.Weather.CacheTTL)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("valkey forecast store enabled", "addr", cfg.Valkey.Addr)
			return forecaststore.NewValkeyStore(client, "forecast")
		}
	}
	return forecaststore.NewMemoryStore(cfg.Weather.CacheTTL)
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func providePostgresPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres repositories enabled")
	return pool
}

func provideUserRepository(pool *pgxpool.Pool) auth.Repository {
	if pool == nil {
		return userrepo.NewMemoryRepository()
	}
	return userrepo.NewPostgresRepository(pool)
}

func provideActivityRepository(pool *pgxpool.Pool) activity.Repository {
	if pool == nil {
		return activityrepo.NewMemoryRepository()
	}
	return activityrepo.NewPostgresRepository(pool)
}

func provideRefresher(cfg *config.Config, client *bmkg.Client, store forecast.Store, logger *slog.Logger) *refresher.Refresher {
	return refresher.New(client, store, cfg.Weather.RefreshInterval, cfg.Weather.CacheTTL, cfg.Weather.RefreshAreas, logger)
}

func provideLocationService(wilayahClient *wilayah.Client, nominatimClient *nominatim.Client, logger *slog.Logger) location.Service {
	return location.NewService(wilayahClient, nominatimClient, logger)
}
