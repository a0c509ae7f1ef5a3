package main

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arafathusayn/masjiduna-waqt/internal/prayer"
)

func TestParseMadhab(t *testing.T) {
	assert.Equal(t, prayer.MadhabHanafi, parseMadhab("Hanafi"))
	assert.Equal(t, prayer.MadhabStandard, parseMadhab("standard"))
	assert.Equal(t, prayer.MadhabStandard, parseMadhab(""))
}

func TestParseHighLatRule(t *testing.T) {
	assert.Equal(t, prayer.HighLatTwilightAngle, parseHighLatRule("twilight_angle"))
	assert.Equal(t, prayer.HighLatNone, parseHighLatRule("bogus"))
}

func TestResolveDateMsParsesCivilDate(t *testing.T) {
	ms, err := resolveDateMs("2026-03-05", time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, float64(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC).UnixMilli()), ms)
}

func TestResolveDateMsRejectsGarbage(t *testing.T) {
	_, err := resolveDateMs("not-a-date", time.UTC)
	assert.Error(t, err)
}

func TestPresetNamesIsSortedAndNonEmpty(t *testing.T) {
	names := presetNames()
	assert.Contains(t, names, "mwl")
	assert.Contains(t, names, "karachi")
	assert.True(t, sort.StringsAreSorted(strings.Split(names, ", ")))
}
