package kernel

import (
	"errors"
	"fmt"

	"hatbazar/internal/pkg/errs"
	"hatbazar/internal/pkg/guard"
)

const (
	// GeoMinLatitude is the minimum valid latitude in decimal degrees.
	GeoMinLatitude float64 = -90
	// GeoMaxLatitude is the maximum valid latitude in decimal degrees.
	GeoMaxLatitude float64 = 90
	// GeoMinLongitude is the minimum valid longitude in decimal degrees.
	GeoMinLongitude float64 = -180
	// GeoMaxLongitude is the maximum valid longitude in decimal degrees.
	GeoMaxLongitude float64 = 180

	// geoDisplayPrecision is the number of decimal places used when a
	// coordinate pair is rendered for alerts and API responses.
	geoDisplayPrecision = 4
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a WGS-84 coordinate pair with validated bounds.
// GeoPoint is an immutable value object; the zero value is invalid and will
// fail validation - use NewGeoPoint to create instances.
//
// Example:
//
//	pt, err := kernel.NewGeoPoint(23.8103, 90.4125)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(pt) // Output: 23.8103, 90.4125
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in decimal
// degrees. Latitude must be within [-90, 90] and longitude within
// [-180, 180]; an error describing every violated bound is returned otherwise.
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	pt := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(pt.setLat(lat), pt.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return pt, nil
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual compares two geo points by exact coordinate values.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// String renders the coordinate pair rounded to a fixed display precision,
// e.g. "23.8103, 90.4125". Alerts carry this representation so notification
// text stays stable regardless of the precision the source reported.
func (p GeoPoint) String() string {
	return fmt.Sprintf("%.*f, %.*f", geoDisplayPrecision, p.lat, geoDisplayPrecision, p.lng)
}

// Validate checks that the GeoPoint was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < GeoMinLatitude || lat > GeoMaxLatitude {
		return errs.NewValueIsInvalidErrorWithCause("latitude",
			fmt.Errorf("%v is not within [%v, %v]", lat, GeoMinLatitude, GeoMaxLatitude))
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < GeoMinLongitude || lng > GeoMaxLongitude {
		return errs.NewValueIsInvalidErrorWithCause("longitude",
			fmt.Errorf("%v is not within [%v, %v]", lng, GeoMinLongitude, GeoMaxLongitude))
	}
	p.lng = lng
	return nil
}
