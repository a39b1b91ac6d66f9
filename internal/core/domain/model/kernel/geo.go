package kernel

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const (
	// GeoPointMinLon is the minimum valid longitude in degrees.
	GeoPointMinLon float64 = -180
	// GeoPointMaxLon is the maximum valid longitude in degrees.
	GeoPointMaxLon float64 = 180
	// GeoPointMinLat is the minimum valid latitude in degrees.
	GeoPointMinLat float64 = -90
	// GeoPointMaxLat is the maximum valid latitude in degrees.
	GeoPointMaxLat float64 = 90
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an
// improperly initialized GeoPoint. GeoPoints must be created through
// NewGeoPoint to ensure their coordinates are within bounds.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a delivery position as a longitude/latitude pair in
// degrees. GeoPoint is an immutable value object; the zero value is invalid
// and fails validation.
//
// Example:
//
//	pos, err := kernel.NewGeoPoint(2.3522, 48.8566)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(pos) // Output: GeoPoint(2.3522,48.8566)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lon   float64
	lat   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given longitude and latitude.
// Longitude must be within [-180, 180] and latitude within [-90, 90],
// both inclusive. Returns an error if either coordinate is out of bounds.
func NewGeoPoint(lon float64, lat float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLon(lon), p.setLat(lat)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks if the GeoPoint was properly constructed. The zero value
// fails with ErrGeoPointIsNotConstructed.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lon returns the longitude in degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// IsEqual compares two GeoPoints by their coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lon == other.lon && p.lat == other.lat
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%v,%v)", p.lon, p.lat)
}

func (p *GeoPoint) setLon(lon float64) error {
	if lon < GeoPointMinLon || lon > GeoPointMaxLon {
		return errs.NewValueIsOutOfRangeError("longitude", lon, GeoPointMinLon, GeoPointMaxLon)
	}
	p.lon = lon
	return nil
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < GeoPointMinLat || lat > GeoPointMaxLat {
		return errs.NewValueIsOutOfRangeError("latitude", lat, GeoPointMinLat, GeoPointMaxLat)
	}
	p.lat = lat
	return nil
}
