package areacode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCityDefault(t *testing.T) {
	r := NewResolver()

	code, ok := r.Resolve("Jakarta Pusat", "")
	require.True(t, ok)
	require.Equal(t, "3171040001", code)
}

func TestResolveSubdistrictMatch(t *testing.T) {
	r := NewResolver()

	code, ok := r.Resolve("Jakarta", "Kecamatan Tanah Abang")
	require.True(t, ok)
	require.Equal(t, "3171030001", code)
}

func TestResolveUnknownSubdistrictFallsBackToCityDefault(t *testing.T) {
	r := NewResolver()

	code, ok := r.Resolve("Bandung", "Cihampelas")
	require.True(t, ok)
	require.Equal(t, "3273040001", code)
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	r := NewResolver()

	code, ok := r.Resolve("SURABAYA", "GENTENG")
	require.True(t, ok)
	require.Equal(t, "3578010001", code)
}

func TestResolveUnknownCity(t *testing.T) {
	r := NewResolver()

	code, ok := r.Resolve("Denpasar", "")
	require.False(t, ok)
	require.Equal(t, DefaultCode, code)
}
