package astro

import "math"

// J2000 is the Julian Date of the J2000.0 epoch.
const J2000 = 2451545.0

// UnixEpochJD is the Julian Date of the POSIX epoch (1970-01-01T00:00:00Z).
const UnixEpochJD = 2440587.5

// msPerDay is the number of milliseconds in a civil day.
const msPerDay = 86400000.0

// JulianDateFromUnixMs converts absolute time, expressed as milliseconds
// since the POSIX epoch (UTC), to a Julian Date (§4.B).
func JulianDateFromUnixMs(ms float64) float64 {
	return ms/msPerDay + UnixEpochJD
}

// UnixMsFromJulianDate is the inverse of JulianDateFromUnixMs, used to turn
// a day's Julian Date back into the UTC-midnight anchor for that civil day
// (§4.E, utc_midnight_ms).
func UnixMsFromJulianDate(jd float64) float64 {
	return (jd - UnixEpochJD) * msPerDay
}

// JulianDateFromCivil computes the Julian Date for a civil calendar date
// (year, month, fractional day), per the algorithm in Meeus Astronomical
// Algorithms ch.7 and spec.md §4.B. Month is 1-12; day may carry a
// fractional part for the time of day.
func JulianDateFromCivil(year, month int, day float64) float64 {
	y := float64(year)
	m := float64(month)
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + day + b - 1524.5
}

// JulianCentury returns the number of Julian centuries since J2000.0 for a
// given Julian Date — the independent variable of every term in the Meeus
// series below.
func JulianCentury(jd float64) float64 {
	return (jd - J2000) / 36525.0
}

// SolarPosition holds the Meeus-series solar coordinates for one Julian
// Date (§3, "Solar position (derived, per Julian Date)"). It is a plain
// value; its identity is the Julian Date it was computed for.
type SolarPosition struct {
	JulianDate          float64
	DeclinationDeg      float64 // δ
	EqtMinutes          float64 // equation of time, minutes
	EclipticLongitude   float64 // apparent longitude λ, degrees
	ObliquityDeg        float64 // corrected obliquity ε, degrees
	RightAscensionDeg   float64 // α, normalized to [0, 360)
	ApparentSiderealDeg float64 // Θapp, Greenwich apparent sidereal time, degrees
}

// ComputeSolarPosition evaluates the full Meeus low-precision solar series
// for the given Julian Date (§4.B, items 1-11). sin M, sin 2M, and the
// sin/cos of ε and λ are computed once and shared between outputs; sin 2L0
// and cos 2L0 are evaluated separately for ΔΨ/Δε and for EoT.
func ComputeSolarPosition(jd float64) SolarPosition {
	T := JulianCentury(jd)
	T2 := T * T
	T3 := T2 * T

	// 1. Mean solar longitude.
	L0 := Normalize360(280.4664567 + 36000.76983*T + 0.0003032*T2)

	// 2. Mean solar anomaly.
	M := Normalize360(357.52911 + 35999.05029*T - 0.0001537*T2)
	sinM := SinDeg(M)
	sin2M := SinDeg(2 * M)
	sin3M := SinDeg(3 * M)

	// 3. Orbital eccentricity.
	e := 0.016708634 - 0.000042037*T - 0.0000001267*T2

	// 4. Equation of the center.
	C := (1.914602-0.004817*T-0.000014*T2)*sinM +
		(0.019993-0.000101*T)*sin2M +
		0.000289*sin3M

	// 5. True and apparent longitude.
	LTrue := Normalize360(L0 + C)
	omega := 125.04 - 1934.136*T
	lambda := LTrue - 0.00569 - 0.00478*SinDeg(omega)

	// 6. Mean obliquity.
	eps0 := 23.439291 - 0.013004167*T - 1.639e-7*T2 + 5.036e-7*T3

	// 7. Low-precision nutation.
	Lprime := 218.3165 + 481267.8813*T
	omegaPrime := 125.04452 - 1934.136261*T + 0.0020708*T2 + T3/450000.0
	dPsi := -(17.2/3600)*SinDeg(omegaPrime) -
		(1.32/3600)*SinDeg(2*L0) -
		(0.23/3600)*SinDeg(2*Lprime) +
		(0.21/3600)*SinDeg(2*omegaPrime)
	dEps := (9.2/3600)*CosDeg(omegaPrime) +
		(0.57/3600)*CosDeg(2*L0) +
		(0.10/3600)*CosDeg(2*Lprime) -
		(0.09/3600)*CosDeg(2*omegaPrime)

	// 8. Corrected obliquity.
	eps := eps0 + dEps

	sinEps := SinDeg(eps)
	cosEps := CosDeg(eps)
	sinLambda := SinDeg(lambda)
	cosLambda := CosDeg(lambda)

	// 9. Declination and right ascension.
	decl := AsinDeg(sinEps * sinLambda)
	ra := Normalize360(Atan2Deg(cosEps*sinLambda, cosLambda))

	// 10. Mean and apparent sidereal time.
	theta0 := Normalize360(280.46061837 + 360.98564736629*(jd-J2000) + 0.000387933*T2 - T3/38710000.0)
	thetaApp := theta0 + dPsi*cosEps

	// 11. Equation of time, via y = tan^2(eps/2).
	halfEps := DegToRad(eps) / 2
	y := math.Tan(halfEps) * math.Tan(halfEps)
	eot := y*SinDeg(2*L0) - 2*e*sinM + 4*e*y*sinM*CosDeg(2*L0) -
		0.5*y*y*SinDeg(4*L0) - 1.25*e*e*sin2M
	eotMinutes := RadToDeg(eot) * 4 // 229.18 minutes/radian == 4 min/deg

	return SolarPosition{
		JulianDate:          jd,
		DeclinationDeg:      decl,
		EqtMinutes:          eotMinutes,
		EclipticLongitude:   lambda,
		ObliquityDeg:        eps,
		RightAscensionDeg:   ra,
		ApparentSiderealDeg: Normalize360(thetaApp),
	}
}
