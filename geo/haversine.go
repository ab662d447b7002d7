// SPDX-License-Identifier: MIT

// Package geo provides great-circle distance helpers over orb.Point values.
//
// Distances use the Haversine formula on a sphere of radius EarthRadiusKm.
// orb's own geo.DistanceHaversine uses the WGS84 equatorial radius in
// meters; route metrics are defined on the 6371 km mean radius instead,
// hence the local implementation.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used for all route distances.
const EarthRadiusKm = 6371.0

// degToRad converts decimal degrees to radians.
func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

// Haversine returns the great-circle distance in kilometers between a and b.
// Points are orb.Point{lon, lat}.
// Complexity: O(1).
func Haversine(a, b orb.Point) float64 {
	dLat := degToRad(b.Lat() - a.Lat())
	dLon := degToRad(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(a.Lat()))*math.Cos(degToRad(b.Lat()))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	// Rounding near antipodes can push h past 1; Sqrt(1-h) would be NaN.
	h = math.Min(1, math.Max(0, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Bound returns the bounding box of the given points.
// An empty input yields the zero orb.Bound.
func Bound(points []orb.Point) orb.Bound {
	if len(points) == 0 {
		return orb.Bound{}
	}

	return orb.MultiPoint(points).Bound()
}
