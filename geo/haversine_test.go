package geo_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/airroute/geo"
)

func TestHaversine(t *testing.T) {
	oneDegree := geo.EarthRadiusKm * math.Pi / 180

	cases := []struct {
		name string
		a, b orb.Point
		want float64
	}{
		{"same point", orb.Point{77.1, 28.5}, orb.Point{77.1, 28.5}, 0},
		{"one degree of latitude", orb.Point{0, 0}, orb.Point{0, 1}, oneDegree},
		{"one degree of longitude on equator", orb.Point{0, 0}, orb.Point{1, 0}, oneDegree},
		{"antipodal on equator", orb.Point{0, 0}, orb.Point{180, 0}, math.Pi * geo.EarthRadiusKm},
		{"pole to pole", orb.Point{0, 90}, orb.Point{0, -90}, math.Pi * geo.EarthRadiusKm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, geo.Haversine(tc.a, tc.b), 1e-6)
		})
	}
}

func TestHaversineNearAntipodes(t *testing.T) {
	half := math.Pi * geo.EarthRadiusKm
	for lat := -89.0; lat <= 89.0; lat += 0.37 {
		for lon := -179.0; lon <= 0; lon += 1.3 {
			d := geo.Haversine(orb.Point{lon, lat}, orb.Point{lon + 180, -lat})
			if !assert.Falsef(t, math.IsNaN(d), "lat=%v lon=%v", lat, lon) {
				return
			}
			assert.InDelta(t, half, d, 1e-3)
		}
	}
	assert.InDelta(t, half, geo.Haversine(orb.Point{-179, -86.78}, orb.Point{1, 86.78}), 1e-3)
}

func TestHaversineIsSymmetric(t *testing.T) {
	del := orb.Point{77.1031, 28.5665}
	bom := orb.Point{72.8679, 19.0887}
	assert.InDelta(t, geo.Haversine(del, bom), geo.Haversine(bom, del), 1e-9)
	// Delhi–Mumbai is roughly 1150 km.
	assert.InDelta(t, 1150, geo.Haversine(del, bom), 30)
}

func TestBound(t *testing.T) {
	b := geo.Bound([]orb.Point{{72.8, 19.0}, {77.1, 28.5}, {77.7, 12.9}})
	assert.Equal(t, orb.Point{72.8, 12.9}, b.Min)
	assert.Equal(t, orb.Point{77.7, 28.5}, b.Max)
	assert.Equal(t, orb.Bound{}, geo.Bound(nil))
}
