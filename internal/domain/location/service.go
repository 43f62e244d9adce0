package location

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	apperrors "github.com/yanqian/outdoor-scheduler/pkg/errors"
)

const (
	minQueryLength    = 2
	maxSearchResults  = 20
	searchProvinceCap = 8
)

// Service exposes the location directory and reverse geocoding.
type Service interface {
	Codes(ctx context.Context, level Level, parentCode string) ([]Entry, error)
	Search(ctx context.Context, query string, level Level) ([]Entry, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (GeocodeResult, error)
}

// DirectoryClient lists administrative areas from wilayah.id.
type DirectoryClient interface {
	List(ctx context.Context, level Level, parentCode string) ([]Entry, error)
}

// GeocodeClient resolves coordinates to a raw address.
type GeocodeClient interface {
	Reverse(ctx context.Context, lat, lng float64) (Place, error)
}

type service struct {
	directory DirectoryClient
	geocoder  GeocodeClient
	logger    *slog.Logger
}

// NewService wires up the location domain.
func NewService(directory DirectoryClient, geocoder GeocodeClient, logger *slog.Logger) Service {
	return &service{
		directory: directory,
		geocoder:  geocoder,
		logger:    logger.With("component", "location.service"),
	}
}

// Codes lists areas at one level. Every level below province requires a
// parent code.
func (s *service) Codes(ctx context.Context, level Level, parentCode string) ([]Entry, error) {
	if !ValidLevel(level) {
		return nil, apperrors.Wrap("invalid_input", fmt.Sprintf("unknown location level %q", level), nil)
	}
	if level != LevelProvince && strings.TrimSpace(parentCode) == "" {
		return nil, apperrors.Wrap("invalid_input", "parent code is required for this level", nil)
	}
	entries, err := s.directory.List(ctx, level, parentCode)
	if err != nil {
		return nil, apperrors.Wrap("location_unavailable", "failed to fetch location data", err)
	}
	return entries, nil
}

// Search filters areas by a case-insensitive substring. Regency search
// scans the first provinces of the directory; prefix matches rank
// before inner matches.
func (s *service) Search(ctx context.Context, query string, level Level) ([]Entry, error) {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		return []Entry{}, nil
	}
	if !ValidLevel(level) {
		return nil, apperrors.Wrap("invalid_input", fmt.Sprintf("unknown location level %q", level), nil)
	}

	var (
		entries []Entry
		err     error
	)
	if level == LevelRegency {
		entries, err = s.allRegencies(ctx)
	} else {
		entries, err = s.directory.List(ctx, level, "")
	}
	if err != nil {
		return nil, apperrors.Wrap("location_unavailable", "location search failed", err)
	}

	lower := strings.ToLower(query)
	matched := make([]Entry, 0)
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), lower) {
			entry.Type = level
			matched = append(matched, entry)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		iPrefix := strings.HasPrefix(strings.ToLower(matched[i].Name), lower)
		jPrefix := strings.HasPrefix(strings.ToLower(matched[j].Name), lower)
		return iPrefix && !jPrefix
	})

	if len(matched) > maxSearchResults {
		matched = matched[:maxSearchResults]
	}
	return matched, nil
}

func (s *service) allRegencies(ctx context.Context) ([]Entry, error) {
	provinces, err := s.directory.List(ctx, LevelProvince, "")
	if err != nil {
		return nil, err
	}
	if len(provinces) > searchProvinceCap {
		provinces = provinces[:searchProvinceCap]
	}

	all := make([]Entry, 0)
	for _, province := range provinces {
		regencies, err := s.directory.List(ctx, LevelRegency, province.Code)
		if err != nil {
			s.logger.Warn("failed to fetch regencies", "province", province.Code, "error", err)
			continue
		}
		all = append(all, regencies...)
	}
	return all, nil
}

var regencyPrefixes = []string{"Kota Administrasi ", "Kabupaten ", "Kab. ", "Kota "}

var subdistrictPrefixes = []string{"Kecamatan ", "Kec. "}

// ReverseGeocode maps coordinates to a normalized location. Upstream
// failures degrade to placeholder values instead of an error.
func (s *service) ReverseGeocode(ctx context.Context, lat, lng float64) (GeocodeResult, error) {
	fallback := GeocodeResult{
		Location:    "Unknown Location",
		Subdistrict: "Unknown Subdistrict",
		FullAddress: fmt.Sprintf("Coordinates: %v, %v", lat, lng),
		Coordinates: Coordinates{Lat: lat, Lng: lng},
	}

	place, err := s.geocoder.Reverse(ctx, lat, lng)
	if err != nil {
		s.logger.Warn("reverse geocode failed", "lat", lat, "lng", lng, "error", err)
		return fallback, nil
	}

	regency := stripPrefixes(place.Regency, regencyPrefixes)
	subdistrict := stripPrefixes(place.Subdistrict, subdistrictPrefixes)

	result := fallback
	if regency != "" {
		result.Location = regency
	}
	if subdistrict != "" {
		result.Subdistrict = subdistrict
	}
	result.Province = place.Province
	if place.DisplayName != "" {
		result.FullAddress = place.DisplayName
	}
	if regency != "" {
		result.LocationCode = s.lookupRegencyCode(ctx, place.Province, regency)
	}
	return result, nil
}

// lookupRegencyCode best-effort matches the geocoded regency against
// the directory. Failures just leave the code empty.
func (s *service) lookupRegencyCode(ctx context.Context, province, regency string) string {
	provinces, err := s.directory.List(ctx, LevelProvince, "")
	if err != nil {
		return ""
	}
	var provinceCode string
	for _, p := range provinces {
		if province != "" && strings.Contains(strings.ToLower(p.Name), strings.ToLower(province)) {
			provinceCode = p.Code
			break
		}
	}
	if provinceCode == "" {
		return ""
	}
	regencies, err := s.directory.List(ctx, LevelRegency, provinceCode)
	if err != nil {
		return ""
	}
	lower := strings.ToLower(regency)
	for _, r := range regencies {
		name := strings.ToLower(r.Name)
		if strings.Contains(name, lower) || strings.Contains(lower, name) {
			return r.Code
		}
	}
	return ""
}

func stripPrefixes(value string, prefixes []string) string {
	value = strings.TrimSpace(value)
	for _, prefix := range prefixes {
		value = strings.ReplaceAll(value, prefix, "")
	}
	return strings.TrimSpace(value)
}
