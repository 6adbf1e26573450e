package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gastromap/gastromap-backend/pkg/geo"
)

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	assert.InDelta(t, 0, geo.DistanceMeters(41.311081, 69.240562, 41.311081, 69.240562), 0.001)
}

func TestDistanceMeters_IsSymmetric(t *testing.T) {
	d1 := geo.DistanceMeters(41.311081, 69.240562, 41.326546, 69.228807)
	d2 := geo.DistanceMeters(41.326546, 69.228807, 41.311081, 69.240562)

	assert.InDelta(t, d1, d2, 0.0001)
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	// One degree of latitude is roughly 111.2 km.
	assert.InDelta(t, 111195, geo.DistanceMeters(41.0, 69.0, 42.0, 69.0), 100)

	// Two points ~15m apart on the same street.
	assert.InDelta(t, 15, geo.DistanceMeters(41.31108, 69.24056, 41.31118, 69.24066), 3)
}

func TestBoxAround_ContainsNearbyPoints(t *testing.T) {
	box := geo.BoxAround(41.311081, 69.240562, 100)

	assert.Less(t, box.MinLat, 41.311081)
	assert.Greater(t, box.MaxLat, 41.311081)
	assert.Less(t, box.MinLon, 69.240562)
	assert.Greater(t, box.MaxLon, 69.240562)

	// A point 50m north must fall inside a 100m box.
	assert.InDelta(t, 41.31153, (box.MinLat+box.MaxLat)/2+0.00045, 0.001)
	assert.Greater(t, box.MaxLat, 41.31153)
}
