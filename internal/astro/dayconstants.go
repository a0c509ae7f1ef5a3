package astro

// dayConstantsCacheSize matches the solar-position cache (§4.E, "same hash
// as §4.D").
const dayConstantsCacheSize = solarCacheSize

// DayConstants holds the per-Julian-Date, location-independent quantities
// the compute kernel needs for every event on a given civil day (§3, "Day
// constants (derived, per Julian Date, location-independent)").
type DayConstants struct {
	JulianDate             float64
	GreenwichSiderealDeg   float64 // Theta_app for today
	RightAscensionTodayDeg float64
	DeclinationTodayDeg    float64
	RAInterp               InterpolationConstants
	DeclInterp             InterpolationConstants
	SinDeclToday           float64
	CosDeclToday           float64
	EqtMinutes             float64
	UTCMidnightMs          float64
}

// DayConstantsCache is a fixed-size, integer-Julian-Date-keyed ring of
// DayConstants, mirroring SolarPositionCache (§4.E, "512-slot ring, same
// hash as §4.D").
type DayConstantsCache struct {
	slots [dayConstantsCacheSize]dayConstantsSlot
}

type dayConstantsSlot struct {
	occupied bool
	jd       float64
	value    DayConstants
}

// NewDayConstantsCache returns an empty cache.
func NewDayConstantsCache() *DayConstantsCache {
	return &DayConstantsCache{}
}

// Get returns the cached DayConstants for jd and whether it was a hit, with
// the same collision-replaces-no-eviction discipline as SolarPositionCache.
func (c *DayConstantsCache) Get(jd float64) (DayConstants, bool) {
	slot := &c.slots[solarCacheHash(JulianDateKey(jd))]
	if slot.occupied && slot.jd == jd {
		return slot.value, true
	}
	return DayConstants{}, false
}

// Put stores a DayConstants value under jd's hash slot.
func (c *DayConstantsCache) Put(jd float64, v DayConstants) {
	slot := &c.slots[solarCacheHash(JulianDateKey(jd))]
	slot.occupied = true
	slot.jd = jd
	slot.value = v
}

// Clear empties every slot.
func (c *DayConstantsCache) Clear() {
	for i := range c.slots {
		c.slots[i] = dayConstantsSlot{}
	}
}

// DayConstantsFor returns the DayConstants for jd, consulting dayCache and
// populating it (and, transitively, solarCache for the three solar
// positions it needs) on a miss (§4.E: "On miss: fetch solar position for
// JD-1, JD, JD+1; compute the seven interpolation constants, trig of
// today's declination, eqt, and utc_midnight_ms").
func DayConstantsFor(dayCache *DayConstantsCache, solarCache *SolarPositionCache, jd float64) DayConstants {
	if dayCache != nil {
		if dc, ok := dayCache.Get(jd); ok {
			return dc
		}
	}

	yesterday := SolarPositionFor(solarCache, jd-1)
	today := SolarPositionFor(solarCache, jd)
	tomorrow := SolarPositionFor(solarCache, jd+1)

	dc := DayConstants{
		JulianDate:             jd,
		GreenwichSiderealDeg:   today.ApparentSiderealDeg,
		RightAscensionTodayDeg: today.RightAscensionDeg,
		DeclinationTodayDeg:    today.DeclinationDeg,
		RAInterp:               RAInterpolationConstants(yesterday.RightAscensionDeg, today.RightAscensionDeg, tomorrow.RightAscensionDeg),
		DeclInterp:             DeclInterpolationConstants(yesterday.DeclinationDeg, today.DeclinationDeg, tomorrow.DeclinationDeg),
		SinDeclToday:           SinDeg(today.DeclinationDeg),
		CosDeclToday:           CosDeg(today.DeclinationDeg),
		EqtMinutes:             today.EqtMinutes,
		UTCMidnightMs:          UnixMsFromJulianDate(jd),
	}

	if dayCache != nil {
		dayCache.Put(jd, dc)
	}
	return dc
}
