// Command waqt-compare fetches the Al Adhan API's prayer times for a
// location and date and prints how far this module's own internal/prayer
// computation diverges from it, prayer by prayer. It is a standalone
// comparison tool: the core kernel has no knowledge of this command, it is
// not exercised by go test, and it requires network access.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/arafathusayn/masjiduna-waqt/internal/prayer"
)

// response mirrors the Al Adhan API's JSON shape.
type response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   data   `json:"data"`
}

type data struct {
	Timings timings  `json:"timings"`
	Date    dateInfo `json:"date"`
	Meta    meta     `json:"meta"`
}

// timings holds all prayer and event times as HH:MM strings. The API may
// append a timezone abbreviation like " (BST)", stripped during parsing.
type timings struct {
	Fajr       string `json:"Fajr"`
	Sunrise    string `json:"Sunrise"`
	Dhuhr      string `json:"Dhuhr"`
	Asr        string `json:"Asr"`
	Sunset     string `json:"Sunset"`
	Maghrib    string `json:"Maghrib"`
	Isha       string `json:"Isha"`
	Imsak      string `json:"Imsak"`
	Midnight   string `json:"Midnight"`
	Firstthird string `json:"Firstthird"`
	Lastthird  string `json:"Lastthird"`
}

type dateInfo struct {
	Readable  string `json:"readable"`
	Timestamp string `json:"timestamp"`
}

type meta struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timezone  string     `json:"timezone"`
	Method    methodInfo `json:"method"`
	School    string     `json:"school"`
}

type methodInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func main() {
	lat := flag.Float64("lat", 23.8103, "observer latitude in degrees")
	lng := flag.Float64("lng", 90.4125, "observer longitude in degrees")
	aladhanMethod := flag.Int("aladhan-method", 1, "Al Adhan numeric method ID (see their /methods endpoint)")
	fajrAngle := flag.Float64("fajr-angle", 18, "this module's fajr angle, for the local computation")
	ishaAngle := flag.Float64("isha-angle", 18, "this module's isha angle, for the local computation")
	tzName := flag.String("tz", "UTC", "IANA timezone for display on both sides")
	flag.Parse()

	loc, err := time.LoadLocation(*tzName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid timezone %q: %v\n", *tzName, err)
		os.Exit(1)
	}

	now := time.Now().In(loc)
	resp, err := fetchAlAdhan(*lat, *lng, *aladhanMethod, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch Al Adhan: %v\n", err)
		os.Exit(1)
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	cfg := prayer.Config{
		LatitudeDeg:  *lat,
		LongitudeDeg: *lng,
		DateMs:       float64(midnight.UnixMilli()),
		Method:       prayer.Method{FajrAngle: *fajrAngle, IshaAngle: *ishaAngle},
	}
	view, err := prayer.ComputePrayerTimes(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Al Adhan method: %s (id %d), %s\n\n", resp.Data.Meta.Method.Name, resp.Data.Meta.Method.ID, resp.Data.Date.Readable)
	fmt.Printf("%-10s %-8s %-8s %s\n", "prayer", "aladhan", "local", "diff")

	compareRow("fajr", resp.Data.Timings.Fajr, view.Fajr(), now, loc)
	compareRow("sunrise", resp.Data.Timings.Sunrise, view.Sunrise(), now, loc)
	compareRow("dhuhr", resp.Data.Timings.Dhuhr, view.Dhuhr(), now, loc)
	compareRow("asr", resp.Data.Timings.Asr, view.Asr(), now, loc)
	compareRow("maghrib", resp.Data.Timings.Maghrib, view.Maghrib(), now, loc)
	compareRow("isha", resp.Data.Timings.Isha, view.Isha(), now, loc)
}

func fetchAlAdhan(lat, lng float64, method int, when time.Time) (*response, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("method", strconv.Itoa(method))

	endpoint := fmt.Sprintf("https://api.aladhan.com/v1/timings/%d?%s", when.Unix(), q.Encode())

	httpResp, err := http.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", httpResp.Status)
	}

	var out response
	if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// parseTiming parses an Al Adhan "HH:MM" or "HH:MM (ZZZ)" string into an
// absolute instant on the same civil date as reference, in loc.
func parseTiming(s string, reference time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(strings.SplitN(s, " ", 2)[0])
	clock, err := time.ParseInLocation("15:04", s, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(reference.Year(), reference.Month(), reference.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

func compareRow(label, aladhanRaw string, local prayer.PrayerResult, reference time.Time, loc *time.Location) {
	aladhanTime, err := parseTiming(aladhanRaw, reference, loc)
	if err != nil {
		fmt.Printf("%-10s %-8s %-8s parse error: %v\n", label, aladhanRaw, "-", err)
		return
	}

	if !local.Valid {
		fmt.Printf("%-10s %-8s %-8s local undefined: %s\n", label, aladhanTime.Format("15:04"), "-", local.Reason)
		return
	}

	localTime := time.UnixMilli(int64(local.Ms)).In(loc)
	diff := localTime.Sub(aladhanTime)
	fmt.Printf("%-10s %-8s %-8s %+dm\n", label, aladhanTime.Format("15:04"), localTime.Format("15:04"), int(diff.Minutes()))
}
