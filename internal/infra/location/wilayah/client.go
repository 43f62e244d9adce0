package wilayah

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yanqian/outdoor-scheduler/internal/domain/location"
)

const defaultBaseURL = "https://wilayah.id/api"

// Client fetches the Indonesian administrative directory from
// wilayah.id. Responses are cached in-process since the dataset
// changes rarely.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
	ttl        time.Duration
}

// NewClient builds a directory client with response caching.
func NewClient(baseURL string, ttl time.Duration) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache: gocache.New(ttl, time.Hour),
		ttl:   ttl,
	}
}

// List implements location.DirectoryClient.
func (c *Client) List(ctx context.Context, level location.Level, parentCode string) ([]location.Entry, error) {
	endpoint, err := c.endpoint(level, parentCode)
	if err != nil {
		return nil, err
	}

	if cached, ok := c.cache.Get(endpoint); ok {
		if entries, ok := cached.([]location.Entry); ok {
			return entries, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("directory request error: status=%d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read directory response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode directory response: %w", err)
	}

	entries := make([]location.Entry, 0, len(raw.Data))
	for _, item := range raw.Data {
		entries = append(entries, location.Entry{
			Code:       item.Code,
			Name:       item.Name,
			FullName:   item.Name,
			Level:      level,
			ParentCode: parentCode,
		})
	}

	c.cache.Set(endpoint, entries, c.ttl)
	return entries, nil
}

func (c *Client) endpoint(level location.Level, parentCode string) (string, error) {
	switch level {
	case location.LevelProvince:
		return c.baseURL + "/provinces.json", nil
	case location.LevelRegency:
		if parentCode == "" {
			return "", fmt.Errorf("parent code required for regencies")
		}
		return fmt.Sprintf("%s/regencies/%s.json", c.baseURL, parentCode), nil
	case location.LevelDistrict:
		if parentCode == "" {
			return "", fmt.Errorf("parent code required for districts")
		}
		return fmt.Sprintf("%s/districts/%s.json", c.baseURL, parentCode), nil
	case location.LevelVillage:
		if parentCode == "" {
			return "", fmt.Errorf("parent code required for villages")
		}
		return fmt.Sprintf("%s/villages/%s.json", c.baseURL, parentCode), nil
	}
	return "", fmt.Errorf("unknown location level %q", level)
}

type apiResponse struct {
	Data []apiEntry `json:"data"`
}

type apiEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var _ location.DirectoryClient = (*Client)(nil)
