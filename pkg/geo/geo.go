// Package geo provides the great-circle math used by the consolidation
// pipeline. Restaurant-scale distances never cross the antimeridian or the
// poles, so plain Haversine is enough.
package geo

import "math"

const earthRadiusMeters = 6371000.0

// DistanceMeters returns the Haversine distance between two coordinates.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// BoundingBox is a latitude/longitude window around a point, used to
// pre-filter match candidates in SQL before running exact distance checks.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// BoxAround returns a bounding box extending radiusMeters from the point in
// every direction. The longitude span widens with latitude; near the poles
// the box degenerates to the full longitude range, which only costs extra
// candidates, never correctness.
func BoxAround(lat, lon, radiusMeters float64) BoundingBox {
	latDelta := radiusMeters / earthRadiusMeters * 180 / math.Pi

	lonDelta := 180.0
	if cos := math.Cos(lat * math.Pi / 180); cos > 1e-6 {
		lonDelta = latDelta / cos
	}

	return BoundingBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLon: lon - lonDelta,
		MaxLon: lon + lonDelta,
	}
}
