package astro

import (
	"math"
	"testing"
)

func TestJulianDateFromCivilMatchesKnownEpoch(t *testing.T) {
	// J2000.0 is 2000-01-01 12:00 UTC by definition.
	jd := JulianDateFromCivil(2000, 1, 1.5)
	if math.Abs(jd-J2000) > 1e-6 {
		t.Fatalf("JulianDateFromCivil(2000,1,1.5) = %v, want %v", jd, J2000)
	}
}

func TestJulianDateFromUnixMsRoundTrip(t *testing.T) {
	ms := 1_700_000_000_000.0
	jd := JulianDateFromUnixMs(ms)
	back := UnixMsFromJulianDate(jd)
	// A float64 Julian Date near 2.46e6 resolves about 0.04 ms, so the
	// round trip can drift by up to half of that.
	if math.Abs(back-ms) > 0.05 {
		t.Fatalf("round trip drift: got %v, want %v", back, ms)
	}
}

func TestComputeSolarPositionSpringEquinox2024(t *testing.T) {
	// 2024-03-20 12:00 UTC, near the spring equinox: sun near 0h RA, ~0 dec.
	jd := JulianDateFromCivil(2024, 3, 20.5)
	pos := ComputeSolarPosition(jd)

	if pos.DeclinationDeg < -2 || pos.DeclinationDeg > 2 {
		t.Errorf("equinox declination out of range: %v", pos.DeclinationDeg)
	}
	ra := pos.RightAscensionDeg
	if !(ra < 3 || ra > 357) {
		t.Errorf("equinox RA out of range: %v", ra)
	}
}

func TestComputeSolarPositionSummerSolstice2024(t *testing.T) {
	jd := JulianDateFromCivil(2024, 6, 21.5)
	pos := ComputeSolarPosition(jd)

	if pos.DeclinationDeg < 23 || pos.DeclinationDeg > 23.6 {
		t.Errorf("solstice declination out of range: %v", pos.DeclinationDeg)
	}
	if pos.RightAscensionDeg < 88 || pos.RightAscensionDeg > 92 {
		t.Errorf("solstice RA out of range: %v", pos.RightAscensionDeg)
	}
}

func TestComputeSolarPositionDeclinationBounded(t *testing.T) {
	// §8 property 12: |declination| <= 23.5 for any day of the year.
	for day := 0; day < 366; day++ {
		jd := J2000 + float64(day)
		pos := ComputeSolarPosition(jd)
		if math.Abs(pos.DeclinationDeg) > 23.5 {
			t.Fatalf("day %d: |declination| = %v exceeds 23.5", day, math.Abs(pos.DeclinationDeg))
		}
	}
}

func TestComputeSolarPositionEqtBounded(t *testing.T) {
	// §8 property 12: |eqt_minutes| < 17.
	for day := 0; day < 366; day++ {
		jd := J2000 + float64(day)
		pos := ComputeSolarPosition(jd)
		if math.Abs(pos.EqtMinutes) >= 17 {
			t.Fatalf("day %d: |eqt_minutes| = %v >= 17", day, math.Abs(pos.EqtMinutes))
		}
	}
}

func TestComputeSolarPositionDeterministic(t *testing.T) {
	jd := JulianDateFromCivil(2026, 2, 25.0)
	a := ComputeSolarPosition(jd)
	b := ComputeSolarPosition(jd)
	if a != b {
		t.Fatalf("ComputeSolarPosition is not deterministic: %+v vs %+v", a, b)
	}
}

func TestRightAscensionNormalized(t *testing.T) {
	for day := 0; day < 366; day++ {
		jd := J2000 + float64(day)*1.3
		pos := ComputeSolarPosition(jd)
		if pos.RightAscensionDeg < 0 || pos.RightAscensionDeg >= 360 {
			t.Fatalf("RA out of [0,360): %v", pos.RightAscensionDeg)
		}
	}
}
