package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/outdoor-scheduler/pkg/errors"
)

type stubDirectory struct {
	provinces []Entry
	regencies map[string][]Entry
	err       error
}

func (s *stubDirectory) List(_ context.Context, level Level, parentCode string) ([]Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	switch level {
	case LevelProvince:
		return s.provinces, nil
	case LevelRegency:
		return s.regencies[parentCode], nil
	}
	return nil, nil
}

type stubGeocoder struct {
	place Place
	err   error
}

func (s *stubGeocoder) Reverse(_ context.Context, _, _ float64) (Place, error) {
	if s.err != nil {
		return Place{}, s.err
	}
	return s.place, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(dir *stubDirectory, geo *stubGeocoder) Service {
	return NewService(dir, geo, testLogger())
}

func TestCodesRequiresParentBelowProvince(t *testing.T) {
	svc := newTestService(&stubDirectory{}, &stubGeocoder{})

	_, err := svc.Codes(context.Background(), LevelRegency, "")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestCodesRejectsUnknownLevel(t *testing.T) {
	svc := newTestService(&stubDirectory{}, &stubGeocoder{})

	_, err := svc.Codes(context.Background(), Level("city"), "")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestSearchShortQueryReturnsEmpty(t *testing.T) {
	svc := newTestService(&stubDirectory{err: errors.New("should not be called")}, &stubGeocoder{})

	results, err := svc.Search(context.Background(), "j", LevelRegency)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestSearchRanksPrefixMatchesFirst(t *testing.T) {
	dir := &stubDirectory{
		provinces: []Entry{{Code: "31", Name: "DKI Jakarta"}},
		regencies: map[string][]Entry{
			"31": {
				{Code: "31.71", Name: "Kota Jakarta Pusat"},
				{Code: "31.75", Name: "Jakarta Timur"},
				{Code: "31.74", Name: "Jakarta Selatan"},
			},
		},
	}
	svc := newTestService(dir, &stubGeocoder{})

	results, err := svc.Search(context.Background(), "jakarta", LevelRegency)
	require.NoError(t, err)
	require.Len(t, results, 3)
	// Prefix matches come first, original order kept within each group.
	require.Equal(t, "Jakarta Timur", results[0].Name)
	require.Equal(t, "Jakarta Selatan", results[1].Name)
	require.Equal(t, "Kota Jakarta Pusat", results[2].Name)
	require.Equal(t, LevelRegency, results[0].Type)
}

func TestSearchCapsResults(t *testing.T) {
	regencies := make([]Entry, 0, 30)
	for i := 0; i < 30; i++ {
		regencies = append(regencies, Entry{Code: "31.1", Name: "Jakarta"})
	}
	dir := &stubDirectory{
		provinces: []Entry{{Code: "31", Name: "DKI Jakarta"}},
		regencies: map[string][]Entry{"31": regencies},
	}
	svc := newTestService(dir, &stubGeocoder{})

	results, err := svc.Search(context.Background(), "jakarta", LevelRegency)
	require.NoError(t, err)
	require.Len(t, results, 20)
}

func TestReverseGeocodeStripsIndonesianPrefixes(t *testing.T) {
	dir := &stubDirectory{
		provinces: []Entry{{Code: "31", Name: "DKI Jakarta"}},
		regencies: map[string][]Entry{
			"31": {{Code: "31.71", Name: "Jakarta Pusat"}},
		},
	}
	geo := &stubGeocoder{place: Place{
		Regency:     "Kota Administrasi Jakarta Pusat",
		Subdistrict: "Kecamatan Menteng",
		Province:    "DKI Jakarta",
		DisplayName: "Menteng, Jakarta Pusat, Indonesia",
	}}
	svc := newTestService(dir, geo)

	result, err := svc.ReverseGeocode(context.Background(), -6.19, 106.83)
	require.NoError(t, err)
	require.Equal(t, "Jakarta Pusat", result.Location)
	require.Equal(t, "Menteng", result.Subdistrict)
	require.Equal(t, "31.71", result.LocationCode)
	require.Equal(t, "Menteng, Jakarta Pusat, Indonesia", result.FullAddress)
}

func TestReverseGeocodeDegradesOnFailure(t *testing.T) {
	svc := newTestService(&stubDirectory{}, &stubGeocoder{err: errors.New("upstream down")})

	result, err := svc.ReverseGeocode(context.Background(), -6.19, 106.83)
	require.NoError(t, err)
	require.Equal(t, "Unknown Location", result.Location)
	require.Equal(t, "Unknown Subdistrict", result.Subdistrict)
	require.Equal(t, Coordinates{Lat: -6.19, Lng: 106.83}, result.Coordinates)
}
