package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arafathusayn/masjiduna-waqt/internal/prayer"
)

func TestFallbackName(t *testing.T) {
	assert.Equal(t, "none", fallbackName(prayer.FallbackNone))
	assert.Equal(t, "twilight_angle", fallbackName(prayer.FallbackTwilightAngle))
}

func TestGradientColorIsValidHex(t *testing.T) {
	c := gradientColor(3, 1, 40, 6)
	assert.Len(t, c, 7)
	assert.Equal(t, byte('#'), c[0])
}

func TestFormatClockRoundTrips(t *testing.T) {
	loc := time.UTC
	ms := float64(time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC).UnixMilli())
	assert.Equal(t, "14:30", formatClock(ms, loc))
}

func TestTodayUTCMidnightMsIsMidnight(t *testing.T) {
	ms := todayUTCMidnightMs()
	tm := time.UnixMilli(int64(ms)).UTC()
	assert.Equal(t, 0, tm.Hour())
	assert.Equal(t, 0, tm.Minute())
}
