package prayer

// SunnahTimes holds the two night-division points derived from a single
// sunset/next-fajr pair (§4.K, §GLOSSARY "Sunnah times").
type SunnahTimes struct {
	MiddleOfNightMs float64
	LastThirdMs     float64
}

// ComputeSunnahTimes implements §4.K/§6's "compute_sunnah_times": pure
// arithmetic over an explicit sunset and the following day's fajr, with no
// caching and no dependency on an Engine or Context.
func ComputeSunnahTimes(sunsetMs, nextFajrMs float64) SunnahTimes {
	n := nextFajrMs - sunsetMs
	return SunnahTimes{
		MiddleOfNightMs: sunsetMs + n/2,
		LastThirdMs:     sunsetMs + 2*n/3,
	}
}
