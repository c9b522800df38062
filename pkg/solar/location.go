package solar

import "fmt"

// Location is an observer's position.
type Location struct {
	Latitude  float64 `json:"latitude"`  // degrees, north positive, [-90, 90]
	Longitude float64 `json:"longitude"` // degrees WEST positive, [0, 360]
}

// NewLocation validates and returns a Location.
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{Latitude: latitude, Longitude: longitude}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// Validate reports a *RangeError for the first coordinate out of range.
func (l Location) Validate() error {
	if err := validateLatitude(l.Latitude); err != nil {
		return err
	}
	return validateLongitude(l.Longitude)
}

func (l Location) String() string {
	return fmt.Sprintf("(lat=%g, long=%g W)", l.Latitude, l.Longitude)
}

func validateLatitude(lat float64) error {
	return checkRange("latitude", lat, -90, 90)
}

func validateLongitude(lon float64) error {
	return checkRange("longitude", lon, 0, 360)
}
