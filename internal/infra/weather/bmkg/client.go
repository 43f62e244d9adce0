package bmkg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/yanqian/outdoor-scheduler/internal/domain/forecast"
)

const (
	defaultBaseURL = "https://api.bmkg.go.id/publik/prakiraan-cuaca"
	userAgent      = "Outdoor-Scheduler/1.0"

	timestampLayout = "2006-01-02 15:04:05"
)

// Client fetches weather forecasts from the BMKG public API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient builds an API client. The circuit breaker opens after
// repeated failures so a broken upstream does not stall every request.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	log := logger.With("component", "bmkg_client")

	settings := gobreaker.Settings{
		Name:        "bmkg",
		MaxRequests: 1,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("circuit breaker state changed", "from", from.String(), "to", to.String())
		},
	}

	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  log,
	}
}

// Fetch retrieves raw forecast readings for an administrative area code.
func (c *Client) Fetch(ctx context.Context, areaCode string) ([]forecast.Reading, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, areaCode)
	})
	if err != nil {
		return nil, err
	}
	return result.([]forecast.Reading), nil
}

func (c *Client) fetch(ctx context.Context, areaCode string) ([]forecast.Reading, error) {
	endpoint := fmt.Sprintf("%s?adm4=%s", c.baseURL, url.QueryEscape(areaCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("forecast request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read forecast response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}

	readings := normalizeItems(raw.Data)
	c.logger.Debug("fetched forecast readings", "areaCode", areaCode, "count", len(readings))
	return readings, nil
}

type apiResponse struct {
	Data []item `json:"data"`
}

type item struct {
	LocalDatetime string  `json:"local_datetime"`
	WeatherDesc   string  `json:"weather_desc"`
	WeatherDescEN string  `json:"weather_desc_en"`
	Temperature   float64 `json:"t"`
	Humidity      float64 `json:"hu"`
	WindSpeed     float64 `json:"ws"`
	WindDirection string  `json:"wd"`
	CloudCover    float64 `json:"tcc"`
	Visibility    string  `json:"vs_text"`
}

func normalizeItems(items []item) []forecast.Reading {
	readings := make([]forecast.Reading, 0, len(items))
	for _, it := range items {
		ts, err := time.ParseInLocation(timestampLayout, it.LocalDatetime, forecast.WIB)
		if err != nil {
			continue
		}
		readings = append(readings, forecast.Reading{
			LocalTime:      ts,
			LocalDesc:      it.WeatherDesc,
			EnglishDesc:    it.WeatherDescEN,
			TemperatureC:   it.Temperature,
			HumidityPct:    it.Humidity,
			WindSpeedKph:   it.WindSpeed,
			WindDirection:  it.WindDirection,
			CloudCoverPct:  it.CloudCover,
			VisibilityText: it.Visibility,
		})
	}
	return readings
}
