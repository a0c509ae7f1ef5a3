package astro

import "math"

// HourAngleEpsilon is the tolerance used to distinguish a geometrically
// impossible target altitude from floating-point noise at the edge of
// [-1, 1] (§4.C, "Epsilon-clamp policy"). Tuned against the 14,600-sample
// regression described in §4.D; do not change without re-running it.
const HourAngleEpsilon = 1e-6

// HourAngleResult is the outcome of evaluating cos(H0) for a target
// altitude (§4.C, §9 "Discriminated unions everywhere" — this is the
// HourAngleResult sum type, expressed as a Go struct with a Defined flag
// rather than an interface, since every caller needs the raw cosine for
// diagnostics even when the angle itself is undefined).
type HourAngleResult struct {
	Defined   bool    // false: geometrically impossible, sun never reaches this altitude today
	Clamped   bool    // true: |cosH0| was in (1, 1+epsilon] and was snapped to +/-1
	CosH0     float64 // raw cosine, preserved even when Defined is false
	HourAngle float64 // H0 in degrees, valid only when Defined is true
}

// CosHourAngle evaluates cos(H0) = (sin(alt) - sin(phi)*sin(decl)) /
// (cos(phi)*cos(decl)) for a target altitude, given latitude and
// declination in degrees (§4.C, "Core formula").
func CosHourAngle(targetAltDeg, latDeg, declDeg float64) float64 {
	return (SinDeg(targetAltDeg) - SinDeg(latDeg)*SinDeg(declDeg)) /
		(CosDeg(latDeg) * CosDeg(declDeg))
}

// ClampCosHourAngle applies the epsilon-clamp policy (§4.C) to a raw cos(H0)
// value, returning the value acos should actually be applied to, whether
// clamping occurred, and whether the angle is defined at all. Factored out
// of EvaluateHourAngle so the compute kernel's hot path can pair it with the
// table-based acos instead of the native one.
func ClampCosHourAngle(cosH0 float64) (clamped float64, isClamped, defined bool) {
	if cosH0 < -(1+HourAngleEpsilon) || cosH0 > 1+HourAngleEpsilon {
		return 0, false, false // undefined: geometrically impossible today
	}
	if cosH0 > 1 {
		return 1, true, true
	}
	if cosH0 < -1 {
		return -1, true, true
	}
	return cosH0, false, true
}

// EvaluateHourAngle applies the epsilon-clamp policy (§4.C) to a raw
// cos(H0) value and, when defined, returns H0 = acos(cosH0) in degrees.
func EvaluateHourAngle(cosH0 float64) HourAngleResult {
	clamped, isClamped, defined := ClampCosHourAngle(cosH0)
	r := HourAngleResult{CosH0: cosH0, Clamped: isClamped, Defined: defined}
	if !defined {
		return r
	}
	r.HourAngle = AcosDeg(clamped)
	return r
}

// QuadraticInterpolate applies the three-point quadratic interpolation used
// throughout Meeus ch.15 to refine transit and hour-angle events (§4.C,
// "Quadratic interpolation contract"). y1, y2, y3 are samples at n = -1, 0,
// +1 respectively; n here is the fractional offset from the middle sample,
// in [0, 1] per the contract (callers needing n in [-1, 0] negate and swap
// y1/y3 is not required — the formula is symmetric in that sense already).
func QuadraticInterpolate(y1, y2, y3, n float64) float64 {
	a := y2 - y1
	b := y3 - y2
	c := b - a
	return y2 + (n/2)*(a+b+n*c)
}

// QuadraticInterpolateAngle is the angle-aware variant of
// QuadraticInterpolate: it normalizes the first differences through
// [0, 360) before interpolating, so a quantity like right ascension that
// wraps through 0/360 every solar day does not produce a spurious jump
// (§4.C).
func QuadraticInterpolateAngle(y1, y2, y3, n float64) float64 {
	a := Normalize360(y2 - y1)
	if a > 180 {
		a -= 360
	}
	b := Normalize360(y3 - y2)
	if b > 180 {
		b -= 360
	}
	c := b - a
	return y2 + (n/2)*(a+b+n*c)
}

// InterpolationConstants are the day-pair sums/differences §3 and §4.E
// define for a Julian Date: the two adjacent-day deltas, pre-combined into
// the sum and difference the quadratic formula actually consumes.
type InterpolationConstants struct {
	Sum  float64 // Delta- + Delta+
	Diff float64 // Delta+ - Delta-
}

// RAInterpolationConstants computes the right-ascension interpolation sum
// and difference from three consecutive days' right ascension (§3:
// "Delta- is normalize(RA_today - RA_yesterday), Delta+ is
// normalize(RA_tomorrow - RA_today)").
func RAInterpolationConstants(raYesterday, raToday, raTomorrow float64) InterpolationConstants {
	deltaMinus := normalizeSignedDelta(raToday - raYesterday)
	deltaPlus := normalizeSignedDelta(raTomorrow - raToday)
	return InterpolationConstants{Sum: deltaMinus + deltaPlus, Diff: deltaPlus - deltaMinus}
}

// DeclInterpolationConstants computes the declination interpolation sum and
// difference; declination does not wrap, so these are plain subtractions.
func DeclInterpolationConstants(declYesterday, declToday, declTomorrow float64) InterpolationConstants {
	deltaMinus := declToday - declYesterday
	deltaPlus := declTomorrow - declToday
	return InterpolationConstants{Sum: deltaMinus + deltaPlus, Diff: deltaPlus - deltaMinus}
}

func normalizeSignedDelta(d float64) float64 {
	d = Normalize360(d)
	if d > 180 {
		d -= 360
	}
	return d
}

// InterpolateAtFraction evaluates the quadratic-interpolation formula
// directly from precomputed sum/diff constants, at fractional offset n from
// today's value — the same formula QuadraticInterpolate evaluates from raw
// y1/y2/y3, specialized to the day-constants cache's storage shape
// (§4.E: "ra_interp_sum", "ra_interp_diff").
func InterpolateAtFraction(valueToday float64, interp InterpolationConstants, n float64) float64 {
	return valueToday + 0.5*n*(interp.Sum+n*interp.Diff)
}

// ApproxTransitFraction computes m0, the approximate fraction of a day (UTC)
// at which the sun reaches the given target right ascension / hour angle
// condition, per §4.C "Approximate transit": m0 = frac((alpha + Lw - Theta)
// / 360), with Lw the west-positive longitude convention. The result is
// folded into [0, 1), so the transit falls on the UTC day being computed.
func ApproxTransitFraction(alphaDeg, lwDeg, thetaAppDeg float64) float64 {
	m0 := Frac((alphaDeg + lwDeg - thetaAppDeg) / 360)
	if m0 < 0 {
		m0++
	}
	return m0
}

// TransitRefinement holds the intermediate quantities of one Meeus ch.15
// refinement step around an approximate transit fraction m0 (§4.C,
// "Corrected transit" and "Corrected hour-angle").
type TransitRefinement struct {
	ThetaM float64 // advanced apparent sidereal time at m0
	AlphaM float64 // right ascension interpolated to m0
	DeclM  float64 // declination interpolated to m0 (hour-angle refinement only)
	H      float64 // local hour angle, shifted to [-180, 180]
}

// RefineTransit advances sidereal time to m0 and interpolates right
// ascension there, returning the local hour angle used to correct m0 toward
// the true transit (§4.G step 5: "one refinement using a normalize-free
// fast-path"). raInterp carries the precomputed RA sum/diff for the day.
func RefineTransit(thetaAppDeg, raTodayDeg, lwDeg float64, raInterp InterpolationConstants, m0 float64) TransitRefinement {
	thetaM := thetaAppDeg + 360.985647*m0
	// Two bounded subtractions/additions, never a modulo (§4.G tie-break).
	for thetaM >= 360 {
		thetaM -= 360
	}
	for thetaM < 0 {
		thetaM += 360
	}

	alphaM := InterpolateAtFraction(raTodayDeg, raInterp, m0)
	if alphaM < 0 {
		alphaM += 360
	} else if alphaM >= 360 {
		alphaM -= 360
	}

	h := QuadrantShift(thetaM - lwDeg - alphaM)

	return TransitRefinement{ThetaM: thetaM, AlphaM: alphaM, H: h}
}

// CorrectedTransitHours runs the approximate-transit-plus-refinement
// pipeline and returns solar noon as a UTC hour-of-day (§4.C, "Corrected
// transit").
func CorrectedTransitHours(thetaAppDeg, raTodayDeg, lwDeg float64, raInterp InterpolationConstants, approxAlphaDeg float64) (hours float64, refinement TransitRefinement) {
	m0 := ApproxTransitFraction(approxAlphaDeg, lwDeg, thetaAppDeg)
	ref := RefineTransit(thetaAppDeg, raTodayDeg, lwDeg, raInterp, m0)
	mCorrected := m0 - ref.H/360
	return mCorrected * 24, ref
}

// HourAngleRefinement is the result of the single Meeus ch.15 refinement
// step for a rise/set/twilight event (§4.C, "Corrected hour-angle" steps
// 4-5). It returns the final UTC time fraction for the event, in hours.
type HourAngleRefinement struct {
	Hours       float64 // final event time, UTC hours
	ThetaM      float64
	AlphaM      float64
	DeclM       float64
	LocalHourDg float64 // Theta_m - Lw - alpha_m, before the asin step
}

// RefineHourAngleEvent performs the one-step Meeus refinement for a
// rise/set/fajr/isha/asr event whose approximate time fraction is m
// (§4.C, steps 4-5). raInterp/declInterp are the day's interpolation
// constants; targetAltDeg is the altitude the event targets; latDeg is the
// observer latitude; lwDeg is the west-positive longitude.
func RefineHourAngleEvent(thetaAppDeg, raTodayDeg, declTodayDeg, lwDeg, latDeg, targetAltDeg float64, raInterp, declInterp InterpolationConstants, m float64) HourAngleRefinement {
	thetaM := Normalize360(thetaAppDeg + 360.985647*m)

	// alpha_m / decl_m interpolated to fraction m using the same quadratic
	// formula the day-constants cache precomputed sums/diffs for.
	alphaM := InterpolateAtFraction(raTodayDeg, raInterp, m)
	if alphaM < 0 {
		alphaM += 360
	} else if alphaM >= 360 {
		alphaM -= 360
	}
	declM := InterpolateAtFraction(declTodayDeg, declInterp, m)

	localHour := thetaM - lwDeg - alphaM

	h := AsinDeg(SinDeg(latDeg)*SinDeg(declM) + CosDeg(latDeg)*CosDeg(declM)*CosDeg(localHour))

	sinHLocal := SinDeg(localHour)
	denom := 360 * CosDeg(declM) * CosDeg(latDeg) * sinHLocal
	var dm float64
	if denom != 0 {
		dm = (h - targetAltDeg) / denom
	}

	return HourAngleRefinement{
		Hours:       (m + dm) * 24,
		ThetaM:      thetaM,
		AlphaM:      alphaM,
		DeclM:       declM,
		LocalHourDg: localHour,
	}
}

// AsrTargetAltitude computes the target altitude for the asr prayer from
// the shadow factor rule (§4.C, "Asr altitude"). declAtTransit is the
// declination quadratically interpolated to solar noon's day fraction.
// shadowFactor is 1 for the standard (Shafi'i/Maliki/Hanbali) madhab, 2 for
// Hanafi (§GLOSSARY "Shadow factor").
func AsrTargetAltitude(latDeg, declAtTransit, shadowFactor float64) float64 {
	m := latDeg - declAtTransit
	return AtanDeg(1 / (shadowFactor + TanDeg(math.Abs(m))))
}
