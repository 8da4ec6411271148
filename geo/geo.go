// Package geo computes great-circle distances and travel times on a
// spherical earth. All functions are pure and safe for concurrent use.
package geo

import (
	"errors"
	"math"

	"github.com/travel-utils/travel/common"
)

// mean earth radius (km), spherical approximation
const EARTH_RADIUS_KM = 6371.0

// returned when a travel time is requested at a non-positive speed
var ErrInvalidSpeed = errors.New("speed must be positive")

// convert decimal degrees to radians
func rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine returns the great-circle distance in kilometers between two
// points given in decimal degrees. Out-of-range coordinates are not
// rejected; they feed through the formula like any other angle.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := rad(lat2 - lat1)
	dlon := rad(lon2 - lon1)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dlon/2)*math.Sin(dlon/2)

	// float noise at antipodal points can push a past 1, outside asin's domain
	a = math.Min(math.Max(a, 0), 1)

	c := 2 * math.Asin(math.Sqrt(a))
	return c * EARTH_RADIUS_KM
}

// TravelTimeS returns the time in seconds to cover distKm at speedKmh.
// Fails with ErrInvalidSpeed when speedKmh <= 0; the distance is not
// validated, a negative distance yields a negative time.
func TravelTimeS(distKm, speedKmh float64) (float64, error) {
	if speedKmh <= 0 {
		return 0, ErrInvalidSpeed
	}
	return distKm / speedKmh * 3600, nil
}

// DistanceAndTime returns the great-circle distance in kilometers between
// two points and the time in seconds to cover it at speedKmh.
func DistanceAndTime(lat1, lon1, lat2, lon2, speedKmh float64) (float64, float64, error) {
	dist := Haversine(lat1, lon1, lat2, lon2)
	time, err := TravelTimeS(dist, speedKmh)
	if err != nil {
		return 0, 0, err
	}
	return dist, time, nil
}

// Distance is Haversine over a pair of Locations.
func Distance(src, dst common.Location) float64 {
	return Haversine(src.Latitude, src.Longitude, dst.Latitude, dst.Longitude)
}

// TravelTime returns distance (km) and travel time (s) between two
// locations at a cruise speed (km/h).
func TravelTime(src, dst common.Location, speedKmh float64) (float64, float64, error) {
	return DistanceAndTime(
		src.Latitude,
		src.Longitude,
		dst.Latitude,
		dst.Longitude,
		speedKmh,
	)
}

// InRadius reports whether dst lies within radiusKm of src.
func InRadius(src, dst common.Location, radiusKm float64) bool {
	return Distance(src, dst) <= radiusKm
}

// Bearing returns the initial great-circle bearing from src to dst,
// in degrees [0, 360).
func Bearing(src, dst common.Location) float64 {
	lat1 := rad(src.Latitude)
	lat2 := rad(dst.Latitude)
	dlon := rad(dst.Longitude - src.Longitude)

	y := math.Sin(dlon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dlon)
	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}
