package prayer

import (
	"math"

	"github.com/arafathusayn/masjiduna-waqt/internal/astro"
)

// Compute runs the full §4.G protocol for one (Config, date) pair: refresh
// derived constants if needed, fetch day constants, find solar noon, derive
// the asr target altitude, evaluate the five hour-angle events, assemble
// dhuhr and maghrib, apply the isha-interval rule, and finally the
// high-latitude fallback. It never returns an error — every failure mode
// surfaces as an undefined eventSlot (§7, "the kernel never raises").
func (e *Engine) Compute(c Config) Times {
	e.refreshDerivedIfNeeded(c)

	jd := astro.JulianDateFromUnixMs(c.DateMs)
	dc := astro.DayConstantsFor(e.dayCache, e.solarCache, jd)

	m0 := astro.ApproxTransitFraction(dc.RightAscensionTodayDeg, e.derived.lwDeg, dc.GreenwichSiderealDeg)
	transit := astro.RefineTransit(dc.GreenwichSiderealDeg, dc.RightAscensionTodayDeg, e.derived.lwDeg, dc.RAInterp, m0)
	mCorrected := m0 - transit.H/360
	solarNoonMs := dc.UTCMidnightMs + mCorrected*24*3_600_000

	declAtTransit := astro.InterpolateAtFraction(dc.DeclinationTodayDeg, dc.DeclInterp, mCorrected)
	asrAltDeg := astro.AsrTargetAltitude(c.LatitudeDeg, declAtTransit, e.derived.shadowFactor)

	fajr := e.evaluateEvent(dc, c, e.derived.fajrAltDeg, false, m0)
	sunrise := e.evaluateEvent(dc, c, e.derived.horizonAltDeg, false, m0)
	asr := e.evaluateEvent(dc, c, asrAltDeg, true, m0)
	sunset := e.evaluateEvent(dc, c, e.derived.horizonAltDeg, true, m0)

	if fajr.DefinedFlag {
		fajr.Ms += e.derived.adjFajrMs
	}
	if sunrise.DefinedFlag {
		sunrise.Ms += e.derived.adjSunriseMs
	}
	if asr.DefinedFlag {
		asr.Ms += e.derived.adjAsrMs
	}
	// Sunset itself carries no adjustment — it is the raw night-division
	// anchor (§4.G step 8, §9 "adjustment and night anchor contract").

	maghrib := sunset
	if sunset.DefinedFlag {
		maghrib.Ms = sunset.Ms + e.derived.adjMaghribMs
	}

	isha := e.computeIsha(c, maghrib, dc, m0)

	dhuhr := eventSlot{DefinedFlag: true, Ms: solarNoonMs + e.derived.adjDhuhrMs, CosOmega: math.NaN()}

	t := Times{
		Fajr:           fajr,
		Sunrise:        sunrise,
		Dhuhr:          dhuhr,
		Asr:            asr,
		Sunset:         sunset,
		Maghrib:        maghrib,
		Isha:           isha,
		SunsetRawMs:    sunset.Ms,
		DeclinationDeg: dc.DeclinationTodayDeg,
		EqtMinutes:     dc.EqtMinutes,
		SolarNoonMs:    solarNoonMs,
		JulianDate:     jd,
	}

	e.applyHighLatFallback(&t, c)
	return t
}

// computeIsha implements §4.G step 9: the interval rule takes priority over
// the angle-based hour-angle evaluation whenever the method specifies one.
func (e *Engine) computeIsha(c Config, maghrib eventSlot, dc astro.DayConstants, m0 float64) eventSlot {
	if c.Method.usesIshaInterval() {
		if !maghrib.DefinedFlag {
			return eventSlot{CosOmega: math.NaN(), FallbackUsed: FallbackInterval}
		}
		return eventSlot{
			DefinedFlag:  true,
			Ms:           maghrib.Ms + c.Method.IshaIntervalMinutes*60_000 + e.derived.adjIshaMs,
			CosOmega:     math.NaN(),
			FallbackUsed: FallbackInterval,
		}
	}

	isha := e.evaluateEvent(dc, c, e.derived.ishaAltDeg, true, m0)
	if isha.DefinedFlag {
		isha.Ms += e.derived.adjIshaMs
	}
	return isha
}

// evaluateEvent runs §4.G step 7 for a single target altitude: compute
// cos(H0) against today's declination, apply the epsilon-clamp policy, and
// on success run the one Meeus refinement step. pm selects the post-noon
// trial direction (m0 + H0/360) over the pre-noon one (m0 - H0/360).
//
// The cos(H0)/acos pair uses the lookup tables (§4.D); the refinement step
// itself uses native trig, since the one-shot quadratic correction needs
// sub-table precision to stay inside the overall 1-second precision budget.
func (e *Engine) evaluateEvent(dc astro.DayConstants, c Config, targetAltDeg float64, pm bool, m0 float64) eventSlot {
	sinTargetAlt := e.derived.sinHorizonAlt
	if targetAltDeg != e.derived.horizonAltDeg {
		sinTargetAlt = astro.TableSinDeg(targetAltDeg)
	}

	sinLatSinDecl := e.derived.sinLat * dc.SinDeclToday
	cosLatCosDecl := e.derived.cosLat * dc.CosDeclToday
	cosH0 := (sinTargetAlt - sinLatSinDecl) / cosLatCosDecl

	clamped, isClamped, defined := astro.ClampCosHourAngle(cosH0)
	if !defined {
		return eventSlot{CosOmega: cosH0, TargetAltitudeDeg: targetAltDeg}
	}

	h0 := astro.TableAcos(clamped)
	var m float64
	if pm {
		m = m0 + h0/360
	} else {
		m = m0 - h0/360
	}

	refine := astro.RefineHourAngleEvent(
		dc.GreenwichSiderealDeg, dc.RightAscensionTodayDeg, dc.DeclinationTodayDeg,
		e.derived.lwDeg, c.LatitudeDeg, targetAltDeg,
		dc.RAInterp, dc.DeclInterp, m,
	)

	return eventSlot{
		DefinedFlag:       true,
		Ms:                dc.UTCMidnightMs + refine.Hours*3_600_000,
		CosOmega:          cosH0,
		Clamped:           isClamped,
		TargetAltitudeDeg: targetAltDeg,
	}
}
