package qibla

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBearingKnownCities covers §8 scenario 6.
func TestBearingKnownCities(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		want     float64
	}{
		{"New York", 40.7128, -74.006, 58.48},
		{"Sydney", -33.8688, 151.2093, 277.50},
		{"London", 51.5074, -0.1278, 118.99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bearing(tt.lat, tt.lng)
			assert.InDelta(t, tt.want, got, 1.5)
		})
	}
}

func TestBearingNormalizedRange(t *testing.T) {
	got := Bearing(-10, 170)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, 360.0)
}

func TestBearingDeterministic(t *testing.T) {
	a := Bearing(33.3, 44.4)
	b := Bearing(33.3, 44.4)
	assert.Equal(t, a, b)
}
