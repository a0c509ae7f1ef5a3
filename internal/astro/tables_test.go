package astro

import (
	"math"
	"testing"
)

func TestTableSinDegAgainstNative(t *testing.T) {
	for deg := -500.0; deg <= 600; deg += 1.7 {
		got := TableSinDeg(deg)
		want := math.Sin(DegToRad(deg))
		if math.Abs(got-want) > 1e-3 {
			t.Errorf("TableSinDeg(%v) = %v, want ~%v", deg, got, want)
		}
	}
}

func TestTableCosDegAgainstNative(t *testing.T) {
	for deg := -500.0; deg <= 600; deg += 2.3 {
		got := TableCosDeg(deg)
		want := math.Cos(DegToRad(deg))
		if math.Abs(got-want) > 1e-3 {
			t.Errorf("TableCosDeg(%v) = %v, want ~%v", deg, got, want)
		}
	}
}

func TestTableSinDegFallsBackOutsideRange(t *testing.T) {
	got := TableSinDeg(10000)
	want := math.Sin(DegToRad(10000))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("fallback TableSinDeg(10000) = %v, want %v", got, want)
	}
}

func TestTableAcosAgainstNative(t *testing.T) {
	for x := -1.0; x <= 1.0; x += 0.013 {
		got := TableAcos(x)
		want := RadToDeg(math.Acos(x))
		if math.Abs(got-want) > 1e-3 {
			t.Errorf("TableAcos(%v) = %v, want ~%v", x, got, want)
		}
	}
}

func TestTableAtanAgainstNative(t *testing.T) {
	for x := -1.0; x <= 1.0; x += 0.013 {
		got := TableAtan(x)
		want := RadToDeg(math.Atan(x))
		if math.Abs(got-want) > 1e-3 {
			t.Errorf("TableAtan(%v) = %v, want ~%v", x, got, want)
		}
	}
}

func TestSolarPositionCacheHitMatchesCompute(t *testing.T) {
	cache := NewSolarPositionCache()
	jd := JulianDateFromCivil(2026, 2, 25.5)

	miss := SolarPositionFor(cache, jd)
	hit := SolarPositionFor(cache, jd)

	if miss != hit {
		t.Fatalf("cache hit diverged from miss: %+v vs %+v", miss, hit)
	}
}

func TestSolarPositionCacheClear(t *testing.T) {
	cache := NewSolarPositionCache()
	jd := JulianDateFromCivil(2026, 2, 25.5)

	SolarPositionFor(cache, jd)
	if _, ok := cache.Get(jd); !ok {
		t.Fatal("expected cache hit before Clear")
	}

	cache.Clear()
	if _, ok := cache.Get(jd); ok {
		t.Fatal("expected cache miss after Clear")
	}
}

func TestSolarPositionCacheCollisionReplaces(t *testing.T) {
	cache := NewSolarPositionCache()
	jd1 := 2451545.5
	jd2 := jd1 + solarCacheSize // same hash bucket, different JD

	SolarPositionFor(cache, jd1)
	if _, ok := cache.Get(jd1); !ok {
		t.Fatal("expected hit for jd1")
	}

	SolarPositionFor(cache, jd2)
	if _, ok := cache.Get(jd1); ok {
		t.Error("jd1 should have been evicted by the colliding jd2 write")
	}
	if _, ok := cache.Get(jd2); !ok {
		t.Error("expected hit for jd2 after its own write")
	}
}

func TestJulianDateKey(t *testing.T) {
	if JulianDateKey(2451545.0) != 2451545 {
		t.Errorf("JulianDateKey(2451545.0) = %v, want 2451545", JulianDateKey(2451545.0))
	}
	if JulianDateKey(2451545.5) != 2451546 {
		t.Errorf("JulianDateKey(2451545.5) = %v, want 2451546", JulianDateKey(2451545.5))
	}
}

func TestDayConstantsForPopulatesAndCaches(t *testing.T) {
	solarCache := NewSolarPositionCache()
	dayCache := NewDayConstantsCache()
	jd := JulianDateFromCivil(2026, 2, 25.5)

	dc1 := DayConstantsFor(dayCache, solarCache, jd)
	dc2 := DayConstantsFor(dayCache, solarCache, jd)

	if dc1 != dc2 {
		t.Fatalf("DayConstantsFor cache hit diverged from miss: %+v vs %+v", dc1, dc2)
	}
	if dc1.UTCMidnightMs == 0 {
		t.Error("expected non-zero UTCMidnightMs")
	}
}
