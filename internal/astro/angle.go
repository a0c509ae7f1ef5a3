// Package astro implements the low-level astronomical math that backs the
// prayer time kernel: degree-indexed trig primitives, the Meeus solar
// series, the hour-angle equation with its epsilon-clamp policy, and the
// lookup tables and caches that keep the kernel on its microsecond budget.
//
// Every exported function in this package is pure and allocation-free.
// Nothing here does I/O, touches the clock, or retains caller state except
// the explicit caches in tables.go and dayconstants.go.
package astro

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Normalize360 maps any real angle in degrees to [0, 360). A fast
// two-branch check handles the common case (one wrap past the range) before
// falling back to a full modulo for inputs far outside [0, 360).
func Normalize360(deg float64) float64 {
	if deg >= 0 && deg < 360 {
		return deg
	}
	if deg >= 360 && deg < 720 {
		return deg - 360
	}
	if deg < 0 && deg >= -360 {
		return deg + 360
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Frac returns the fractional part of x, matching the sign of x. The
// approximate-transit fraction (§4.C) is built on it; ApproxTransitFraction
// folds a negative result into [0, 1).
func Frac(x float64) float64 {
	return x - math.Trunc(x)
}

// SinDeg, CosDeg, TanDeg are native-precision degree-domain trig. The
// lookup-table variants in tables.go trade a small, budgeted amount of this
// precision for speed on the hot path; these exist for the few call sites
// (Meeus series terms) that need the reference precision.
func SinDeg(deg float64) float64 { return math.Sin(DegToRad(deg)) }
func CosDeg(deg float64) float64 { return math.Cos(DegToRad(deg)) }
func TanDeg(deg float64) float64 { return math.Tan(DegToRad(deg)) }

// AsinDeg, AcosDeg, Atan2Deg return degrees from native radian inverse trig.
func AsinDeg(x float64) float64         { return RadToDeg(math.Asin(x)) }
func AcosDeg(x float64) float64         { return RadToDeg(math.Acos(x)) }
func Atan2Deg(y, x float64) float64     { return RadToDeg(math.Atan2(y, x)) }
func AtanDeg(x float64) float64         { return RadToDeg(math.Atan(x)) }

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// QuadrantShift folds an hour angle into [-180, 180] the way Meeus's
// transit refinement does: a subtract-by-multiples-of-360 using round(), not
// a modulo, since H is already bounded to a few multiples of 360 by
// construction (§4.G, "never a modulo").
func QuadrantShift(h float64) float64 {
	if h < -180 || h > 180 {
		return h - 360*math.Round(h/360)
	}
	return h
}
