// Package prayer implements the prayer-time compute kernel: given an
// observer's location, a calculation method, and a single calendar date, it
// produces up to eleven moments in that day (§3-§4 of the design doc this
// package follows). The package owns three caches (solar position,
// day constants, resolved configuration) and is not safe for concurrent
// use without external synchronization — see Engine's doc comment.
package prayer

import "fmt"

// Madhab selects the shadow-factor rule used for the asr target altitude
// (§GLOSSARY "Shadow factor").
type Madhab int

const (
	MadhabStandard Madhab = iota // shadow factor 1 (Shafi'i/Maliki/Hanbali)
	MadhabHanafi                 // shadow factor 2
)

// ShadowFactor returns the asr shadow-length multiplier for the madhab.
func (m Madhab) ShadowFactor() float64 {
	if m == MadhabHanafi {
		return 2
	}
	return 1
}

// HighLatRule selects the fallback strategy applied when fajr or isha is
// geometrically undefined at high latitude (§4.I).
type HighLatRule int

const (
	HighLatNone HighLatRule = iota
	HighLatMiddleOfNight
	HighLatSeventhOfNight
	HighLatTwilightAngle
)

// PolarRule is accepted on Config but neither Validate nor the kernel reads
// it: every value, PolarRuleUnresolved included, leaves the computation
// unchanged. The two aqrab values are reserved hooks for an external
// collaborator.
type PolarRule int

const (
	PolarRuleUnresolved PolarRule = iota
	PolarRuleAqrabBalad
	PolarRuleAqrabYaum
)

// MidnightMode has a single defined value today (§3); the type exists so a
// second mode can be added without breaking the Config shape.
type MidnightMode int

const (
	MidnightStandard MidnightMode = iota
)

// Method carries the angles (or interval) that define fajr and isha, plus
// an optional maghrib angle (§3).
type Method struct {
	FajrAngle           float64
	IshaAngle           float64
	IshaIntervalMinutes float64 // when nonzero, isha = maghrib + interval (§3)
	MaghribAngle        float64 // stored only; the kernel always uses sunset for maghrib, whatever this holds
}

// usesIshaInterval reports whether this method's isha is interval-based
// rather than angle-based (§3: "Exactly one of isha_angle or
// isha_interval_minutes governs isha; when the interval is present and
// nonzero, isha = maghrib + interval").
func (m Method) usesIshaInterval() bool {
	return m.IshaIntervalMinutes != 0
}

// Adjustments are signed per-prayer minute offsets applied after astronomy
// (§3).
type Adjustments struct {
	Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha float64
}

// Config is the full input to a single compute call (§3, "Configuration").
// It is constructed by the caller and never mutated during a compute call.
type Config struct {
	LatitudeDeg  float64
	LongitudeDeg float64
	ElevationM   float64
	DateMs       float64 // absolute ms, interpreted as UTC midnight of the civil date
	Method       Method
	Madhab       Madhab
	HighLatRule  HighLatRule
	PolarRule    PolarRule
	MidnightMode MidnightMode
	Adjustments  Adjustments
}

// ErrInvalidArgument is the sentinel boundary-validation error (§7, "Input
// out of range... fails with invalid_argument at the boundary validator").
// Wrap it with fmt.Errorf("%w: ...", ErrInvalidArgument, detail) so callers
// can still match it with errors.Is.
var ErrInvalidArgument = fmt.Errorf("prayer: invalid argument")

// Validate checks the boundary constraints §3 places on a Config:
// latitude in [-90, 90], longitude in [-180, 180], elevation >= 0. The
// kernel itself never validates — per §7, "Programs are expected to
// validate once at input ingestion" — so callers that skip this and pass
// out-of-range values get times computed from those values rather than an
// error (a negative elevation is treated as 0), and a NaN input propagates
// into the outputs (§4, "Failure semantics").
func (c Config) Validate() error {
	if c.LatitudeDeg < -90 || c.LatitudeDeg > 90 {
		return fmt.Errorf("%w: latitude %v out of [-90, 90]", ErrInvalidArgument, c.LatitudeDeg)
	}
	if c.LongitudeDeg < -180 || c.LongitudeDeg > 180 {
		return fmt.Errorf("%w: longitude %v out of [-180, 180]", ErrInvalidArgument, c.LongitudeDeg)
	}
	if c.ElevationM < 0 {
		return fmt.Errorf("%w: elevation %v is negative", ErrInvalidArgument, c.ElevationM)
	}
	return nil
}
