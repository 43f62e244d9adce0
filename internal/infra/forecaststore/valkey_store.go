package forecaststore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/outdoor-scheduler/internal/domain/forecast"
)

// ValkeyStore caches forecast sets in a Valkey-compatible database. A
// sorted set tracks recently saved area codes so the refresher can
// re-warm them.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "forecast"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, areaCode string) ([]forecast.DailyForecast, bool, error) {
	if areaCode == "" {
		return nil, false, nil
	}
	cmd := s.client.B().Get().Key(s.areaKey(areaCode)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var days []forecast.DailyForecast
	if err := json.Unmarshal([]byte(payload), &days); err != nil {
		return nil, false, err
	}
	return days, true, nil
}

func (s *ValkeyStore) Save(ctx context.Context, areaCode string, days []forecast.DailyForecast, ttl time.Duration) error {
	payload, err := json.Marshal(days)
	if err != nil {
		return err
	}
	if err := s.setString(ctx, s.areaKey(areaCode), string(payload), ttl); err != nil {
		return err
	}
	score := float64(time.Now().Unix())
	return s.client.Do(ctx, s.client.B().Zadd().Key(s.recentKey()).ScoreMember().ScoreMember(score, areaCode).Build()).Error()
}

func (s *ValkeyStore) Keys(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.recentKey()).Start(0).Stop(int64(limit-1)).Build())
	members, err := resp.AsStrSlice()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	return members, nil
}

func (s *ValkeyStore) setString(ctx context.Context, key, value string, ttl time.Duration) error {
	builder := s.client.B().Set().Key(key).Value(value)
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) areaKey(areaCode string) string {
	return fmt.Sprintf("%s:area:%s", s.prefix, areaCode)
}

func (s *ValkeyStore) recentKey() string {
	return fmt.Sprintf("%s:recent", s.prefix)
}

var _ forecast.Store = (*ValkeyStore)(nil)
