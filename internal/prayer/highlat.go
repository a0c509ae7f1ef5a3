package prayer

// applyHighLatFallback implements §4.I: once all events are computed, if a
// fallback rule is selected and the preconditions hold, rewrite whichever
// of fajr/isha is still undefined. It runs after Compute's main event loop
// and before the Times value is handed to a View.
func (e *Engine) applyHighLatFallback(t *Times, c Config) {
	if c.HighLatRule == HighLatNone {
		return
	}
	if !t.Sunrise.DefinedFlag || !t.Sunset.DefinedFlag {
		return
	}

	nextSunrise := t.Sunrise.Ms + 86_400_000
	night := nextSunrise - t.SunsetRawMs
	if night <= 0 {
		return
	}

	kind := fallbackKindFor(c.HighLatRule)

	if !t.Fajr.DefinedFlag {
		var raw float64
		switch c.HighLatRule {
		case HighLatMiddleOfNight:
			raw = t.SunsetRawMs + night/2
		case HighLatSeventhOfNight:
			raw = nextSunrise - night/7
		case HighLatTwilightAngle:
			raw = nextSunrise - (c.Method.FajrAngle/60)*night
		}
		t.Fajr = eventSlot{
			DefinedFlag:       true,
			Ms:                raw + e.derived.adjFajrMs,
			CosOmega:          t.Fajr.CosOmega,
			FallbackUsed:      kind,
			TargetAltitudeDeg: e.derived.fajrAltDeg,
		}
	}

	if !t.Isha.DefinedFlag {
		var raw float64
		switch c.HighLatRule {
		case HighLatMiddleOfNight:
			raw = t.SunsetRawMs + night/2
		case HighLatSeventhOfNight:
			raw = t.SunsetRawMs + night/7
		case HighLatTwilightAngle:
			raw = t.SunsetRawMs + (c.Method.IshaAngle/60)*night
		}
		t.Isha = eventSlot{
			DefinedFlag:       true,
			Ms:                raw + e.derived.adjIshaMs,
			CosOmega:          t.Isha.CosOmega,
			FallbackUsed:      kind,
			TargetAltitudeDeg: e.derived.ishaAltDeg,
		}
	}
}

func fallbackKindFor(rule HighLatRule) FallbackKind {
	switch rule {
	case HighLatMiddleOfNight:
		return FallbackMiddleOfNight
	case HighLatSeventhOfNight:
		return FallbackSeventhOfNight
	case HighLatTwilightAngle:
		return FallbackTwilightAngle
	default:
		return FallbackNone
	}
}
