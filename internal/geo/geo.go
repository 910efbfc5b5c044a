package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371000.0

// ErrInvalidCoordinate is returned for out-of-range or NaN positions.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a position in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Validate checks the coordinate ranges.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return fmt.Errorf("%w: NaN component", ErrInvalidCoordinate)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %.6f out of range", ErrInvalidCoordinate, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %.6f out of range", ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Latitude, c.Longitude)
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

// DistanceMeters returns the great-circle distance between a and b using
// the haversine formula.
func DistanceMeters(a, b Coordinate) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)
	lat1 := toRad(a.Latitude)
	lat2 := toRad(b.Latitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return EarthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// BearingDegrees returns the initial compass bearing from a to b.
// Result is in [0, 360), where 0=north, increasing clockwise.
func BearingDegrees(a, b Coordinate) float64 {
	lat1 := toRad(a.Latitude)
	lat2 := toRad(b.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	deg := math.Mod(toDeg(math.Atan2(y, x))+360, 360)
	if deg >= 360 {
		// Mod of a value a hair below 360 can round back up.
		deg = 0
	}
	return deg
}

// MaxSteps caps step counts; unmeasurable distances report it.
const MaxSteps = math.MaxInt32

// Steps converts meters to whole steps of stepLength meters.
// Never negative. NaN and infinite distances count as MaxSteps.
func Steps(meters, stepLength float64) int {
	if math.IsNaN(meters) || math.IsInf(meters, 1) {
		return MaxSteps
	}
	if meters <= 0 || stepLength <= 0 || math.IsNaN(stepLength) {
		return 0
	}
	q := math.Floor(meters / stepLength)
	if q >= MaxSteps {
		return MaxSteps
	}
	return int(q)
}
