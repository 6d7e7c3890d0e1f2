package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	rome  = Coordinates{Latitude: 41.9028, Longitude: 12.4964}
	milan = Coordinates{Latitude: 45.4642, Longitude: 9.1900}
)

func TestDistanceKm(t *testing.T) {
	// Rome to Milan is roughly 477 km along the great circle
	distance := DistanceKm(rome, milan)
	require.InDelta(t, 477, distance, 5)

	// symmetric
	require.InDelta(t, distance, DistanceKm(milan, rome), 0.0001)

	// zero distance for identical points
	require.Equal(t, 0.0, DistanceKm(rome, rome))
}

func TestDistanceKmAntipodal(t *testing.T) {
	a := Coordinates{Latitude: 0, Longitude: 0}
	b := Coordinates{Latitude: 0, Longitude: 180}

	// half the Earth circumference with R = 6371 km
	require.InDelta(t, 20015, DistanceKm(a, b), 5)
}

func TestDistanceKmDeterministic(t *testing.T) {
	first := DistanceKm(rome, milan)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, DistanceKm(rome, milan))
	}
}
