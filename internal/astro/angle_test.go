package astro

import (
	"math"
	"testing"
)

func TestNormalize360(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.999, 359.999},
		{360, 0},
		{-1, 359},
		{720.5, 0.5},
		{-720, 0},
		{1000000.25, math.Mod(1000000.25, 360)},
	}
	for _, tt := range tests {
		got := Normalize360(tt.in)
		want := math.Mod(tt.want, 360)
		if want < 0 {
			want += 360
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Normalize360(%v) = %v, want %v", tt.in, got, want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("Normalize360(%v) = %v, out of [0,360)", tt.in, got)
		}
	}
}

func TestQuadrantShift(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, -180},
		{181, -179},
		{-181, 179},
		{360, 0},
		{720, 0},
	}
	for _, tt := range tests {
		got := QuadrantShift(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("QuadrantShift(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFrac(t *testing.T) {
	if got := Frac(1.75); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("Frac(1.75) = %v, want 0.75", got)
	}
	if got := Frac(-1.75); math.Abs(got-(-0.75)) > 1e-12 {
		t.Errorf("Frac(-1.75) = %v, want -0.75", got)
	}
}

func TestTrigRoundTrip(t *testing.T) {
	for deg := -720.0; deg <= 720; deg += 37.5 {
		s := SinDeg(deg)
		c := CosDeg(deg)
		if math.Abs(s*s+c*c-1) > 1e-9 {
			t.Errorf("sin^2+cos^2 != 1 at %v deg", deg)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should pass through in-range values")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Error("Clamp should floor at lo")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should ceil at hi")
	}
}
