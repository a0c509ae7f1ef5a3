package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arafathusayn/masjiduna-waqt/internal/shafaq"
)

func TestParseShafaqVariant(t *testing.T) {
	v, ok := parseShafaqVariant("Ahmer")
	assert.True(t, ok)
	assert.Equal(t, shafaq.Ahmer, v)

	_, ok = parseShafaqVariant("bogus")
	assert.False(t, ok)
}

func TestDaysSinceDecemberSolsticeWrapsAcrossYearBoundary(t *testing.T) {
	beforeSolstice := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	got := daysSinceDecemberSolstice(beforeSolstice)
	assert.Equal(t, 15.0, got)

	afterSolstice := time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC)
	got = daysSinceDecemberSolstice(afterSolstice)
	assert.Equal(t, 4.0, got)
}
