package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/arafathusayn/masjiduna-waqt/internal/prayer"
	"github.com/arafathusayn/masjiduna-waqt/internal/shafaq"
)

// jsonResult mirrors a PrayerResult at the display boundary: either a
// formatted clock string or an undefined reason, plus the raw millisecond
// value for machine consumers that want it.
type jsonResult struct {
	Time   string  `json:"time,omitempty"`
	Ms     float64 `json:"ms,omitempty"`
	Valid  bool    `json:"valid"`
	Reason string  `json:"reason,omitempty"`
}

type jsonOutput struct {
	Date        string     `json:"date"`
	Imsak       jsonResult `json:"imsak"`
	Fajr        jsonResult `json:"fajr"`
	Sunrise     jsonResult `json:"sunrise"`
	Dhuhr       jsonResult `json:"dhuhr"`
	Asr         jsonResult `json:"asr"`
	Sunset      jsonResult `json:"sunset"`
	Maghrib     jsonResult `json:"maghrib"`
	Isha        jsonResult `json:"isha"`
	Midnight    jsonResult `json:"midnight"`
	FirstThird  jsonResult `json:"first_third"`
	LastThird   jsonResult `json:"last_third"`
	Declination float64    `json:"declination_deg"`
	EqtMinutes  float64    `json:"equation_of_time_minutes"`
	JulianDate  float64    `json:"julian_date"`
	Shafaq      *shafaqOut `json:"shafaq,omitempty"`
}

type shafaqOut struct {
	Variant string `json:"variant"`
	Fajr    string `json:"fajr"`
	Isha    string `json:"isha"`
}

func parseShafaqVariant(s string) (shafaq.Variant, bool) {
	switch strings.ToLower(s) {
	case "general":
		return shafaq.General, true
	case "ahmer":
		return shafaq.Ahmer, true
	case "abyad":
		return shafaq.Abyad, true
	default:
		return 0, false
	}
}

// daysSinceDecemberSolstice approximates days elapsed since the most recent
// December 21st, the anchor shafaq.seasonFactor measures its triangular wave
// from.
func daysSinceDecemberSolstice(t time.Time) float64 {
	solstice := time.Date(t.Year(), time.December, 21, 0, 0, 0, 0, time.UTC)
	if t.Before(solstice) {
		solstice = time.Date(t.Year()-1, time.December, 21, 0, 0, 0, 0, time.UTC)
	}
	return math.Floor(t.Sub(solstice).Hours() / 24)
}

func toJSONResult(r prayer.PrayerResult, loc *time.Location) jsonResult {
	if !r.Valid {
		return jsonResult{Valid: false, Reason: r.Reason}
	}
	return jsonResult{
		Valid: true,
		Ms:    r.Ms,
		Time:  time.UnixMilli(int64(r.Ms)).In(loc).Format("15:04"),
	}
}

// runHeadless prints one day's computed times as a text summary or as JSON,
// without starting the Bubble Tea program. shafaqVariant, when non-empty,
// prints the opt-in moonsighting-committee estimate alongside the angle-
// based kernel output (never in place of it — the kernel is still the
// source of truth for the summary/JSON rows themselves).
func runHeadless(ctx *prayer.Context, dateMs float64, loc *time.Location, asJSON bool, shafaqVariant string, latDeg float64) {
	view := ctx.Compute(dateMs)
	meta := view.Metadata()

	var shafaqResult *shafaqOut
	if shafaqVariant != "" {
		variant, ok := parseShafaqVariant(shafaqVariant)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown shafaq variant %q (choices: general, ahmer, abyad)\n", shafaqVariant)
			os.Exit(1)
		}
		reference := time.UnixMilli(int64(dateMs)).UTC()
		days := daysSinceDecemberSolstice(reference)
		sunrise, sunset := view.Sunrise(), view.Sunset()
		if sunrise.Valid && sunset.Valid {
			fajrMs := shafaq.FajrMs(variant, latDeg, days, sunrise.Ms)
			ishaMs := shafaq.IshaMs(variant, latDeg, days, sunset.Ms)
			shafaqResult = &shafaqOut{
				Variant: shafaqVariant,
				Fajr:    time.UnixMilli(int64(fajrMs)).In(loc).Format("15:04"),
				Isha:    time.UnixMilli(int64(ishaMs)).In(loc).Format("15:04"),
			}
		}
	}

	if asJSON {
		out := jsonOutput{
			Date:        time.UnixMilli(int64(dateMs)).In(loc).Format("2006-01-02"),
			Imsak:       toJSONResult(view.Imsak(), loc),
			Fajr:        toJSONResult(view.Fajr(), loc),
			Sunrise:     toJSONResult(view.Sunrise(), loc),
			Dhuhr:       toJSONResult(view.Dhuhr(), loc),
			Asr:         toJSONResult(view.Asr(), loc),
			Sunset:      toJSONResult(view.Sunset(), loc),
			Maghrib:     toJSONResult(view.Maghrib(), loc),
			Isha:        toJSONResult(view.Isha(), loc),
			Midnight:    toJSONResult(view.Midnight(), loc),
			FirstThird:  toJSONResult(view.FirstThird(), loc),
			LastThird:   toJSONResult(view.LastThird(), loc),
			Declination: meta.DeclinationDeg,
			EqtMinutes:  meta.EqtMinutes,
			JulianDate:  meta.JulianDate,
			Shafaq:      shafaqResult,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "encode JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}

	row := func(label string, r prayer.PrayerResult) {
		if r.Valid {
			fmt.Printf("%-12s %s\n", label, time.UnixMilli(int64(r.Ms)).In(loc).Format("15:04"))
		} else {
			fmt.Printf("%-12s %s\n", label, r.Reason)
		}
	}

	fmt.Printf("Prayer times for %s\n\n", time.UnixMilli(int64(dateMs)).In(loc).Format("Mon, 02 Jan 2006"))
	row("Imsak", view.Imsak())
	row("Fajr", view.Fajr())
	row("Sunrise", view.Sunrise())
	row("Dhuhr", view.Dhuhr())
	row("Asr", view.Asr())
	row("Sunset", view.Sunset())
	row("Maghrib", view.Maghrib())
	row("Isha", view.Isha())
	row("Midnight", view.Midnight())
	row("First third", view.FirstThird())
	row("Last third", view.LastThird())

	if shafaqResult != nil {
		fmt.Printf("\nshafaq (%s)  fajr %s  isha %s\n", shafaqResult.Variant, shafaqResult.Fajr, shafaqResult.Isha)
	}
}
