package prayer

import (
	"math"

	"github.com/arafathusayn/masjiduna-waqt/internal/astro"
)

// derivedConstants are the location/method-dependent quantities §4.F
// recomputes only when the governing Config fields change: "sin phi, cos
// phi, Lw, 360*cos phi, horizon altitude and its sin, equivalents for fajr
// and isha, millisecond forms of all six adjustments, and the shadow
// factor." Of that list, 360*cos phi and the zenith distances are not
// cached here. sinHorizonAlt is the one value evaluateEvent can take straight
// from the cache instead of re-deriving from the lookup table on every
// sunrise/sunset call; fajrAltDeg and ishaAltDeg are cached as raw degrees
// only, since each feeds exactly one evaluateEvent call per Compute.
type derivedConstants struct {
	sinLat, cosLat float64
	lwDeg          float64 // west-positive longitude, Lw = -longitude

	horizonAltDeg float64
	sinHorizonAlt float64

	fajrAltDeg float64
	ishaAltDeg float64

	adjFajrMs, adjSunriseMs, adjDhuhrMs, adjAsrMs, adjMaghribMs, adjIshaMs float64

	shadowFactor float64
}

// configCacheKey is the subset of Config that §4.F's cache compares field
// by field to decide whether derived constants must be recomputed. It
// excludes DateMs, which varies every call by design (§4.F, §4.J).
type configCacheKey struct {
	latitude, longitude, elevation float64
	fajrAngle, ishaAngle, ishaInterval, maghribAngle float64
	madhab                                           Madhab
	adjustments                                      Adjustments
}

func keyOf(c Config) configCacheKey {
	return configCacheKey{
		latitude:     c.LatitudeDeg,
		longitude:    c.LongitudeDeg,
		elevation:    c.ElevationM,
		fajrAngle:    c.Method.FajrAngle,
		ishaAngle:    c.Method.IshaAngle,
		ishaInterval: c.Method.IshaIntervalMinutes,
		maghribAngle: c.Method.MaghribAngle,
		madhab:       c.Madhab,
		adjustments:  c.Adjustments,
	}
}

// Engine owns the three caches the compute kernel relies on: the
// astro-level solar-position and day-constants caches, and this package's
// own config cache (§4.F). A caller controls sharing by how many Engines it
// creates.
//
// An Engine is not safe for concurrent use: Compute mutates all three
// caches without internal locking. Confine an Engine to one goroutine, or
// guard it with an external mutex if you must share one.
type Engine struct {
	solarCache *astro.SolarPositionCache
	dayCache   *astro.DayConstantsCache

	haveKey bool
	key     configCacheKey
	derived derivedConstants
}

// NewEngine returns an Engine with empty caches.
func NewEngine() *Engine {
	return &Engine{
		solarCache: astro.NewSolarPositionCache(),
		dayCache:   astro.NewDayConstantsCache(),
	}
}

// Clear empties all three caches (§6, "clear_solar_cache() — empties all
// three caches"). There is no ring index to reset: each astro cache owns a
// fixed slot array and Clear empties every slot directly.
func (e *Engine) Clear() {
	e.solarCache.Clear()
	e.dayCache.Clear()
	e.haveKey = false
	e.derived = derivedConstants{}
}

// refreshDerivedIfNeeded implements §4.F's config-cache check: compare each
// governing field with strict equality (NaN included — an Engine that was
// just Clear()'d has haveKey false so the very first call always
// recomputes, a canary-value pattern) and recompute only on a difference.
func (e *Engine) refreshDerivedIfNeeded(c Config) {
	k := keyOf(c)
	if e.haveKey && k == e.key {
		return
	}

	var d derivedConstants
	d.sinLat = astro.SinDeg(c.LatitudeDeg)
	d.cosLat = astro.CosDeg(c.LatitudeDeg)
	d.lwDeg = -c.LongitudeDeg

	elevation := c.ElevationM
	if elevation < 0 {
		elevation = 0
	}
	d.horizonAltDeg = -(0.8333 + 0.0347*math.Sqrt(elevation))
	d.sinHorizonAlt = astro.TableSinDeg(d.horizonAltDeg)

	d.fajrAltDeg = -c.Method.FajrAngle
	d.ishaAltDeg = -c.Method.IshaAngle // unused when Method.usesIshaInterval()

	d.adjFajrMs = c.Adjustments.Fajr * 60000
	d.adjSunriseMs = c.Adjustments.Sunrise * 60000
	d.adjDhuhrMs = c.Adjustments.Dhuhr * 60000
	d.adjAsrMs = c.Adjustments.Asr * 60000
	d.adjMaghribMs = c.Adjustments.Maghrib * 60000
	d.adjIshaMs = c.Adjustments.Isha * 60000

	d.shadowFactor = c.Madhab.ShadowFactor()

	e.key = k
	e.derived = d
	e.haveKey = true
}
