package prayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSunnahTimes(t *testing.T) {
	sunset := 1_000_000.0
	nextFajr := sunset + 36_000_000.0 // 10-hour night

	got := ComputeSunnahTimes(sunset, nextFajr)

	assert.Equal(t, sunset+18_000_000.0, got.MiddleOfNightMs)
	assert.Equal(t, sunset+24_000_000.0, got.LastThirdMs)
	assert.Less(t, got.MiddleOfNightMs, got.LastThirdMs)
}
