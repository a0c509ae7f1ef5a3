package prayer

import "math"

// FallbackKind identifies which substitution rule produced an event's time
// when the direct hour-angle computation could not (§3, "packed diagnostic
// flags" — re-expressed per §9 as "a small enum plus a boolean" rather than
// a bitfield, since memory density is explicitly not load-bearing here).
type FallbackKind int

const (
	FallbackNone FallbackKind = iota
	FallbackInterval
	FallbackMiddleOfNight
	FallbackSeventhOfNight
	FallbackTwilightAngle
)

// Diagnostics carries the per-event auxiliary values every accessor must
// expose regardless of whether the event itself is valid (§3, §6
// "Diagnostics"). CosOmega is nil when no hour-angle cosine applies to this
// event (dhuhr, or an isha interval fallback) — the option-type replacement
// §9 calls for in place of a "cos_omega = NaN means not applicable"
// sentinel. A high-latitude fallback keeps the raw cosine of the event it
// replaced.
type Diagnostics struct {
	CosOmega          *float64
	Clamped           bool
	FallbackUsed      FallbackKind
	TargetAltitudeDeg float64
}

// eventSlot is the kernel's internal per-event record — the struct-of-arrays
// replacement for one lane group of a slab slot (§9,
// "struct-of-arrays layout returned by value"). CosOmega uses NaN as its own
// internal not-applicable sentinel; Diagnostics.CosOmega converts that to a
// nil pointer at the output boundary.
type eventSlot struct {
	DefinedFlag       bool
	Ms                float64
	CosOmega          float64
	Clamped           bool
	FallbackUsed      FallbackKind
	TargetAltitudeDeg float64
}

func (s eventSlot) diagnostics() Diagnostics {
	d := Diagnostics{Clamped: s.Clamped, FallbackUsed: s.FallbackUsed, TargetAltitudeDeg: s.TargetAltitudeDeg}
	if !math.IsNaN(s.CosOmega) {
		v := s.CosOmega
		d.CosOmega = &v
	}
	return d
}

// PrayerResult is the tagged union §3 describes: either a valid millisecond
// time or an undefined reason, both carrying diagnostics.
type PrayerResult struct {
	Valid       bool
	Ms          float64
	Reason      string
	Diagnostics Diagnostics
}

func validResult(s eventSlot) PrayerResult {
	return PrayerResult{Valid: true, Ms: s.Ms, Diagnostics: s.diagnostics()}
}

func undefinedResult(s eventSlot, reason string) PrayerResult {
	return PrayerResult{Reason: reason, Diagnostics: s.diagnostics()}
}

func resultFromSlot(s eventSlot, undefinedReason string) PrayerResult {
	if !s.DefinedFlag {
		return undefinedResult(s, undefinedReason)
	}
	return validResult(s)
}

// Metadata is the per-compute-call auxiliary information §6 lists outside
// the eleven prayer keys.
type Metadata struct {
	DeclinationDeg float64
	EqtMinutes     float64
	SolarNoonMs    float64
	JulianDate     float64
}

// Times is the value-type result one kernel Compute call produces — the
// redesign §9 calls for in place of a slab slot referenced by offset into a
// ring buffer: "prefer a single struct-of-arrays layout returned by value
// from the kernel, with accessors that project into tagged enums."
type Times struct {
	Fajr, Sunrise, Dhuhr, Asr, Sunset, Maghrib, Isha eventSlot

	// SunsetRawMs anchors night-division derivations; it is never adjusted
	// and must not be confused with Maghrib.Ms (§4.H, §9 "adjustment and
	// night anchor contract").
	SunsetRawMs float64

	DeclinationDeg float64
	EqtMinutes     float64
	SolarNoonMs    float64
	JulianDate     float64
}

// View projects a Times value into the eleven named accessors §4.H and §6
// describe. Rather than a lazy pointer into a shared slab, a View
// simply holds the Times value itself — there is no offset, no ring, and no
// danger of the accessor racing a later compute call that wraps the ring
// past this slot.
type View struct {
	times Times
}

// NewView wraps a kernel-produced Times value for accessor use.
func NewView(t Times) View {
	return View{times: t}
}

func (v View) Fajr() PrayerResult    { return resultFromSlot(v.times.Fajr, "fajr is undefined") }
func (v View) Sunrise() PrayerResult { return resultFromSlot(v.times.Sunrise, "sunset or sunrise undefined") }
func (v View) Asr() PrayerResult     { return resultFromSlot(v.times.Asr, "asr is undefined") }
func (v View) Sunset() PrayerResult  { return resultFromSlot(v.times.Sunset, "sunset or sunrise undefined") }
func (v View) Maghrib() PrayerResult { return resultFromSlot(v.times.Maghrib, "sunset or sunrise undefined") }
func (v View) Isha() PrayerResult    { return resultFromSlot(v.times.Isha, "isha is undefined") }

// Dhuhr is always defined (§3, "Dhuhr is always defined").
func (v View) Dhuhr() PrayerResult { return validResult(v.times.Dhuhr) }

// nextDaySunriseMs approximates tomorrow's sunrise as today's sunrise plus
// one day, per §4.H's literal definition — the view never re-runs the
// kernel for a second civil date.
func (v View) nextDaySunriseMs() (float64, bool) {
	if !v.times.Sunrise.DefinedFlag {
		return 0, false
	}
	return v.times.Sunrise.Ms + 86_400_000, true
}

// Midnight is the night's midpoint, anchored to raw sunset (§4.H).
func (v View) Midnight() PrayerResult {
	nextSunrise, ok := v.nextDaySunriseMs()
	if !ok || !v.times.Sunset.DefinedFlag {
		return PrayerResult{Reason: "sunset or sunrise undefined"}
	}
	return PrayerResult{Valid: true, Ms: (v.times.SunsetRawMs + nextSunrise) / 2}
}

// Imsak is ten minutes before fajr exactly (§4.H, §8 property 4).
func (v View) Imsak() PrayerResult {
	if !v.times.Fajr.DefinedFlag {
		return PrayerResult{Reason: "fajr is undefined"}
	}
	return PrayerResult{Valid: true, Ms: v.times.Fajr.Ms - 600_000}
}

// FirstThird is one third of the way through the night from raw sunset.
func (v View) FirstThird() PrayerResult {
	nextSunrise, ok := v.nextDaySunriseMs()
	if !ok || !v.times.Sunset.DefinedFlag {
		return PrayerResult{Reason: "sunset or sunrise undefined"}
	}
	night := nextSunrise - v.times.SunsetRawMs
	return PrayerResult{Valid: true, Ms: v.times.SunsetRawMs + night/3}
}

// LastThird is two thirds of the way through the night from raw sunset.
func (v View) LastThird() PrayerResult {
	nextSunrise, ok := v.nextDaySunriseMs()
	if !ok || !v.times.Sunset.DefinedFlag {
		return PrayerResult{Reason: "sunset or sunrise undefined"}
	}
	night := nextSunrise - v.times.SunsetRawMs
	return PrayerResult{Valid: true, Ms: v.times.SunsetRawMs + 2*night/3}
}

// Metadata returns the per-call auxiliary values (§6).
func (v View) Metadata() Metadata {
	return Metadata{
		DeclinationDeg: v.times.DeclinationDeg,
		EqtMinutes:     v.times.EqtMinutes,
		SolarNoonMs:    v.times.SolarNoonMs,
		JulianDate:     v.times.JulianDate,
	}
}
