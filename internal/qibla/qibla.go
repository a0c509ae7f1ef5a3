// Package qibla computes the great-circle bearing from an observer to the
// Kaaba (§4.L, §GLOSSARY "Qibla"). It is one of the "external collaborators"
// §1/§6 name as out of the core kernel's scope, but — unlike the terminal
// front-end or the fixture-download harness — it is trivial enough that §6
// specifies it directly as a named accessory.
package qibla

import "github.com/arafathusayn/masjiduna-waqt/internal/astro"

// KaabaLatitudeDeg and KaabaLongitudeDeg are the fixed destination
// coordinates §4.L specifies.
const (
	KaabaLatitudeDeg  = 21.4225241
	KaabaLongitudeDeg = 39.8261818
)

// Bearing computes the great-circle bearing in degrees, normalized to
// [0, 360), from (latDeg, lngDeg) to the Kaaba (§4.L):
//
//	bearing = normalize(atan2(sin(dLng), cos(lat)*tan(kaabaLat) - sin(lat)*cos(dLng)))
func Bearing(latDeg, lngDeg float64) float64 {
	dLng := KaabaLongitudeDeg - lngDeg
	y := astro.SinDeg(dLng)
	x := astro.CosDeg(latDeg)*astro.TanDeg(KaabaLatitudeDeg) - astro.SinDeg(latDeg)*astro.CosDeg(dLng)
	return astro.Normalize360(astro.Atan2Deg(y, x))
}
