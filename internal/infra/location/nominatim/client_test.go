package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReverseParsesAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reverse", r.URL.Path)
		require.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		_, _ = w.Write([]byte(`{
			"display_name": "Menteng, Jakarta Pusat, DKI Jakarta, Indonesia",
			"address": {
				"city": "Kota Administrasi Jakarta Pusat",
				"suburb": "Menteng",
				"state": "DKI Jakarta"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Minute)
	place, err := client.Reverse(context.Background(), -6.19, 106.83)

	require.NoError(t, err)
	require.Equal(t, "Kota Administrasi Jakarta Pusat", place.Regency)
	require.Equal(t, "Menteng", place.Subdistrict)
	require.Equal(t, "DKI Jakarta", place.Province)
}

func TestReverseFallsBackThroughAddressKeys(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"display_name": "Somewhere",
			"address": {"town": "Cianjur", "village": "Cugenang", "state": "Jawa Barat"}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Minute)
	place, err := client.Reverse(context.Background(), -6.8, 107.1)

	require.NoError(t, err)
	require.Equal(t, "Cianjur", place.Regency)
	require.Equal(t, "Cugenang", place.Subdistrict)
}

func TestReverseErrorsWithoutAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"display_name": "Ocean"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Minute)
	_, err := client.Reverse(context.Background(), 0, 0)
	require.Error(t, err)
}

func TestReverseCachesByRoundedCoordinates(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"display_name": "X", "address": {"city": "Jakarta"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Minute)
	ctx := context.Background()

	_, err := client.Reverse(ctx, -6.19001, 106.83001)
	require.NoError(t, err)
	_, err = client.Reverse(ctx, -6.19004, 106.83004)
	require.NoError(t, err)

	require.EqualValues(t, 1, calls.Load())
}
