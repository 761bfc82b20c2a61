package region

// Level is the administrative level of a region.
type Level string

const (
	// LevelProvince is a first-level country subdivision (province or metropolitan city).
	LevelProvince Level = "province"
	// LevelCity is a city or district; the bundled catalog has none.
	LevelCity Level = "city"
)

// Coordinates is a point in degrees. Values are not range-checked.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Region is a named point in the catalog.
type Region struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	FullName    string      `json:"fullName"`
	Level       Level       `json:"level"`
	Coordinates Coordinates `json:"coordinates"`
}
