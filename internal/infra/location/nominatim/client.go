package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yanqian/outdoor-scheduler/internal/domain/location"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	userAgent      = "Outdoor-Scheduler/1.0 (contact@example.com)"
)

// Client reverse geocodes coordinates via Nominatim. Lookups are cached
// per rounded coordinate pair to respect the upstream usage policy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
	ttl        time.Duration
}

// NewClient builds a geocoding client.
func NewClient(baseURL string, ttl time.Duration) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: gocache.New(ttl, 30*time.Minute),
		ttl:   ttl,
	}
}

// Reverse implements location.GeocodeClient.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (location.Place, error) {
	key := fmt.Sprintf("%.4f,%.4f", lat, lng)
	if cached, ok := c.cache.Get(key); ok {
		if place, ok := cached.(location.Place); ok {
			return place, nil
		}
	}

	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", fmt.Sprintf("%v", lat))
	query.Set("lon", fmt.Sprintf("%v", lng))
	query.Set("addressdetails", "1")
	query.Set("accept-language", "id,en")
	query.Set("zoom", "10")

	endpoint := fmt.Sprintf("%s/reverse?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return location.Place{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return location.Place{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return location.Place{}, fmt.Errorf("geocode request error: status=%d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return location.Place{}, fmt.Errorf("read geocode response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return location.Place{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if raw.Address == nil {
		return location.Place{}, fmt.Errorf("no address data found")
	}

	place := location.Place{
		Regency:     firstNonEmpty(raw.Address.City, raw.Address.Town, raw.Address.County, raw.Address.StateDistrict),
		Subdistrict: firstNonEmpty(raw.Address.Suburb, raw.Address.Village, raw.Address.Neighbourhood, raw.Address.Hamlet, raw.Address.Quarter),
		Province:    raw.Address.State,
		DisplayName: raw.DisplayName,
	}

	c.cache.Set(key, place, c.ttl)
	return place, nil
}

type apiResponse struct {
	DisplayName string      `json:"display_name"`
	Address     *apiAddress `json:"address"`
}

type apiAddress struct {
	City          string `json:"city"`
	Town          string `json:"town"`
	County        string `json:"county"`
	StateDistrict string `json:"state_district"`
	Suburb        string `json:"suburb"`
	Village       string `json:"village"`
	Neighbourhood string `json:"neighbourhood"`
	Hamlet        string `json:"hamlet"`
	Quarter       string `json:"quarter"`
	State         string `json:"state"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

var _ location.GeocodeClient = (*Client)(nil)
