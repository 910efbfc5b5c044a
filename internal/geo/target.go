package geo

import (
	"math"
	"math/rand"
)

// GenerateTarget places a point a random distance in [minRadius, maxRadius)
// and a random direction away from origin. The offset uses an equirectangular
// approximation, which is accurate at the few-meter scale of a hunt.
func GenerateTarget(r *rand.Rand, origin Coordinate, minRadius, maxRadius float64) Coordinate {
	dist := minRadius + r.Float64()*(maxRadius-minRadius)
	angle := r.Float64() * 2 * math.Pi

	dLat := (dist / EarthRadius) * math.Cos(angle)
	dLon := (dist / (EarthRadius * math.Cos(toRad(origin.Latitude)))) * math.Sin(angle)

	return Coordinate{
		Latitude:  origin.Latitude + toDeg(dLat),
		Longitude: origin.Longitude + toDeg(dLon),
	}
}

// Offset moves c by north/east meters using the same approximation.
func Offset(c Coordinate, north, east float64) Coordinate {
	dLat := north / EarthRadius
	dLon := east / (EarthRadius * math.Cos(toRad(c.Latitude)))
	return Coordinate{
		Latitude:  c.Latitude + toDeg(dLat),
		Longitude: c.Longitude + toDeg(dLon),
	}
}
