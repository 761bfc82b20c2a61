package region

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/i474232898/weather-dashboard/internal/common"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// minSearchLen is the shortest trimmed query that is actually filtered.
// Anything shorter returns the whole catalog so pickers can list every option.
const minSearchLen = 2

var (
	// ErrEmptyCatalog is returned when an index is built without regions.
	ErrEmptyCatalog = errors.New("region: catalog is empty")
)

// Index is a read-only catalog of regions. It is safe for concurrent use.
type Index struct {
	regions []Region
	byID    map[string]int
	aliases map[string][]string
}

// NewIndex builds an index over regions, kept in the given order.
// aliases maps region IDs to localized labels and may be nil.
func NewIndex(regions []Region, aliases map[string][]string) (*Index, error) {
	if len(regions) == 0 {
		return nil, ErrEmptyCatalog
	}

	idx := &Index{
		regions: append([]Region(nil), regions...),
		byID:    make(map[string]int, len(regions)),
		aliases: make(map[string][]string, len(aliases)),
	}
	for i, r := range idx.regions {
		if _, dup := idx.byID[r.ID]; !dup {
			idx.byID[r.ID] = i
		}
	}
	for id, labels := range aliases {
		idx.aliases[id] = append([]string(nil), labels...)
	}
	return idx, nil
}

// DefaultIndex returns an index over the bundled Korean catalog.
func DefaultIndex() *Index {
	idx, err := NewIndex(KoreanRegions, KoreanAliases)
	if err != nil {
		panic(err)
	}
	return idx
}

// All returns every region in catalog order.
func (x *Index) All() []Region {
	return append([]Region(nil), x.regions...)
}

// FindByID returns the region with the given id.
func (x *Index) FindByID(id string) (Region, bool) {
	i, ok := x.byID[id]
	if !ok {
		return Region{}, false
	}
	return x.regions[i], true
}

// Search returns the regions matching query, in catalog order.
//
// An empty query matches nothing and a one-character query matches
// everything. Otherwise a region matches when its name or full name contains
// the query case-insensitively, or when one of its aliases contains the raw
// query.
func (x *Index) Search(query string) []Region {
	q := strings.TrimSpace(query)
	if q == "" {
		return []Region{}
	}
	if utf8.RuneCountInString(q) < minSearchLen {
		return x.All()
	}

	out := []Region{}
	for _, r := range x.regions {
		if common.ContainsFold(r.Name, q) || common.ContainsFold(r.FullName, q) ||
			common.AnyContains(query, x.aliases[r.ID]...) {
			out = append(out, r)
		}
	}
	return out
}

// FindNearest returns the region closest to c by great-circle distance.
// Ties go to the region listed first.
func (x *Index) FindNearest(c Coordinates) Region {
	nearest := x.regions[0]
	best := math.MaxFloat64
	for _, r := range x.regions {
		if d := Distance(c, r.Coordinates); d < best {
			best = d
			nearest = r
		}
	}
	return nearest
}

// Distance returns the haversine distance between a and b in kilometres.
func Distance(a, b Coordinates) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
