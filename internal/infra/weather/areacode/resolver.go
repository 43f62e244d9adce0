package areacode

import "strings"

// DefaultCode is the fallback adm4 code (Menteng, Central Jakarta) used
// when nothing in the table matches.
const DefaultCode = "3171040001"

// cityTable maps city keywords to subdistrict adm4 codes from
// kodewilayah.id. Each city carries a default code used when no
// subdistrict matches.
type cityEntry struct {
	defaultCode  string
	subdistricts map[string]string
}

var cityTable = map[string]cityEntry{
	"jakarta": {
		defaultCode: "3171040001",
		subdistricts: map[string]string{
			"menteng":       "3171040001",
			"tanah abang":   "3171030001",
			"gambir":        "3171010001",
			"sawah besar":   "3171020001",
			"kemayoran":     "3171050001",
			"senen":         "3171060001",
			"cempaka putih": "3171070001",
			"johar baru":    "3171080001",
		},
	},
	"bandung": {
		defaultCode: "3273040001",
		subdistricts: map[string]string{
			"coblong":       "3273040001",
			"bandung wetan": "3273020001",
			"sumur bandung": "3273010001",
			"andir":         "3273030001",
		},
	},
	"surabaya": {
		defaultCode: "3578010001",
		subdistricts: map[string]string{
			"genteng":   "3578010001",
			"bubutan":   "3578020001",
			"simokerto": "3578030001",
		},
	},
	"yogyakarta": {
		defaultCode: "3471030001",
		subdistricts: map[string]string{
			"gondokusuman": "3471030001",
			"jetis":        "3471010001",
			"tegalrejo":    "3471020001",
		},
	},
	"semarang": {
		defaultCode: "3374010001",
		subdistricts: map[string]string{
			"semarang tengah": "3374010001",
			"semarang utara":  "3374020001",
			"semarang timur":  "3374030001",
		},
	},
	"bekasi": {
		defaultCode: "3275010001",
		subdistricts: map[string]string{
			"bekasi timur":   "3275010001",
			"bekasi selatan": "3275020001",
			"bekasi barat":   "3275030001",
		},
	},
	"tangerang": {
		defaultCode: "3671010001",
		subdistricts: map[string]string{
			"tangerang": "3671010001",
			"batuceper": "3671020001",
		},
	},
	"medan": {
		defaultCode: "1271010001",
		subdistricts: map[string]string{
			"medan kota": "1271010001",
			"medan baru": "1271020001",
		},
	},
	"makassar": {
		defaultCode: "7371010001",
		subdistricts: map[string]string{
			"makassar": "7371010001",
			"wajo":     "7371020001",
		},
	},
	"palembang": {
		defaultCode: "1671010001",
		subdistricts: map[string]string{
			"bukit kecil": "1671010001",
			"gandus":      "1671020001",
		},
	},
}

// cityOrder fixes lookup order so locations naming several cities
// resolve deterministically.
var cityOrder = []string{
	"jakarta", "bandung", "surabaya", "yogyakarta", "semarang",
	"bekasi", "tangerang", "medan", "makassar", "palembang",
}

// Resolver maps free-text locations to BMKG adm4 area codes using a
// static table of supported cities.
type Resolver struct{}

// NewResolver builds a static resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the adm4 code for a location. The second return is
// false when the location matches no supported city; callers then fall
// back to synthetic forecasts instead of querying the provider with the
// default code.
func (r *Resolver) Resolve(location, subdistrict string) (string, bool) {
	loc := strings.ToLower(strings.TrimSpace(location))
	sub := strings.ToLower(strings.TrimSpace(subdistrict))

	for _, city := range cityOrder {
		if !strings.Contains(loc, city) {
			continue
		}
		entry := cityTable[city]
		if sub != "" {
			for district, code := range entry.subdistricts {
				if strings.Contains(sub, district) {
					return code, true
				}
			}
		}
		return entry.defaultCode, true
	}

	return DefaultCode, false
}
