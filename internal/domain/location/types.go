package location

// Level is an administrative level in the Indonesian location
// hierarchy.
type Level string

const (
	LevelProvince Level = "province"
	LevelRegency  Level = "regency"
	LevelDistrict Level = "district"
	LevelVillage  Level = "village"
)

// ValidLevel reports whether l is a known administrative level.
func ValidLevel(l Level) bool {
	switch l {
	case LevelProvince, LevelRegency, LevelDistrict, LevelVillage:
		return true
	}
	return false
}

// Entry is one administrative area returned by the directory.
type Entry struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	FullName   string `json:"full_name"`
	Level      Level  `json:"level"`
	ParentCode string `json:"parent_code"`
	Type       Level  `json:"type,omitempty"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeResult is the normalized answer for a reverse geocode lookup.
// Location and Subdistrict carry placeholder text when the upstream
// gave no usable address.
type GeocodeResult struct {
	Location     string      `json:"location"`
	Subdistrict  string      `json:"subdistrict"`
	Province     string      `json:"province"`
	LocationCode string      `json:"location_code,omitempty"`
	FullAddress  string      `json:"full_address"`
	Coordinates  Coordinates `json:"coordinates"`
}

// Place is a raw reverse-geocoded address before Indonesian prefix
// normalization.
type Place struct {
	Regency     string
	Subdistrict string
	Province    string
	DisplayName string
}
