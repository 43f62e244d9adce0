package wilayah

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outdoor-scheduler/internal/domain/location"
)

func TestListProvinces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/provinces.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"code":"31","name":"DKI Jakarta"},{"code":"32","name":"Jawa Barat"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Minute)
	entries, err := client.List(context.Background(), location.LevelProvince, "")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "31", entries[0].Code)
	require.Equal(t, "DKI Jakarta", entries[0].Name)
	require.Equal(t, location.LevelProvince, entries[0].Level)
}

func TestListCachesResponses(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"data":[{"code":"31.71","name":"Jakarta Pusat"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Minute)
	ctx := context.Background()

	_, err := client.List(ctx, location.LevelRegency, "31")
	require.NoError(t, err)
	_, err = client.List(ctx, location.LevelRegency, "31")
	require.NoError(t, err)

	require.EqualValues(t, 1, calls.Load())
}

func TestListRequiresParentCode(t *testing.T) {
	client := NewClient("http://unused", time.Minute)

	_, err := client.List(context.Background(), location.LevelDistrict, "")
	require.Error(t, err)
}
