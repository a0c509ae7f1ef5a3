// Command waqt is a terminal UI and headless CLI for computing prayer times.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/arafathusayn/masjiduna-waqt/internal/logging"
	"github.com/arafathusayn/masjiduna-waqt/internal/prayer"
	"github.com/arafathusayn/masjiduna-waqt/internal/ui"
)

// methodPresets are well-known published angle sets. Not part of the
// kernel's contract (§3 takes a raw Method) — a CLI convenience only.
var methodPresets = map[string]prayer.Method{
	"mwl":     {FajrAngle: 18, IshaAngle: 17},
	"isna":    {FajrAngle: 15, IshaAngle: 15},
	"egypt":   {FajrAngle: 19.5, IshaAngle: 17.5},
	"karachi": {FajrAngle: 18, IshaAngle: 18},
	"makkah":  {FajrAngle: 18.5, IshaIntervalMinutes: 90},
	"tehran":  {FajrAngle: 17.7, IshaAngle: 14, MaghribAngle: 4.5},
	"jafari":  {FajrAngle: 16, IshaAngle: 14, MaghribAngle: 4},
}

func presetNames() string {
	names := make([]string, 0, len(methodPresets))
	for k := range methodPresets {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func main() {
	lat := flag.Float64("lat", 23.8103, "observer latitude in degrees")
	lng := flag.Float64("lng", 90.4125, "observer longitude in degrees")
	elev := flag.Float64("elevation", 0, "observer elevation in meters")
	tzName := flag.String("tz", "UTC", "IANA timezone for display")
	method := flag.String("method", "karachi", "calculation method preset ("+presetNames()+")")
	madhab := flag.String("madhab", "standard", "asr madhab: standard or hanafi")
	highlat := flag.String("highlat", "none", "high-latitude fallback rule: none, middle_of_night, seventh_of_night, twilight_angle")
	dateStr := flag.String("date", "", "civil date YYYY-MM-DD (default: today in --tz)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	summaryMode := flag.Bool("summary", false, "print a text summary instead of the TUI")
	jsonMode := flag.Bool("json", false, "print the computed times as JSON instead of the TUI")
	qiblaMode := flag.Bool("qibla", false, "print the qibla bearing and exit")
	benchYears := flag.Int("bench", 0, "run the batch-benchmark demo over N years instead of the TUI")
	shafaqVariant := flag.String("shafaq", "", "print season-adjusted fajr/isha from a shafaq variant alongside the summary (general, ahmer, abyad); headless modes only")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	loc, err := time.LoadLocation(*tzName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid timezone %q: %v\n", *tzName, err)
		os.Exit(1)
	}

	preset, ok := methodPresets[*method]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown method preset %q (choices: %s)\n", *method, presetNames())
		os.Exit(1)
	}

	cfg := prayer.Config{
		LatitudeDeg:  *lat,
		LongitudeDeg: *lng,
		ElevationM:   *elev,
		Method:       preset,
		Madhab:       parseMadhab(*madhab),
		HighLatRule:  parseHighLatRule(*highlat),
	}

	if *qiblaMode {
		fmt.Println(ui.QiblaLine(*lat, *lng))
		return
	}

	if *benchYears > 0 {
		runBench(cfg, *benchYears, logger)
		return
	}

	dateMs, err := resolveDateMs(*dateStr, loc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid date %q: %v\n", *dateStr, err)
		os.Exit(1)
	}
	cfg.DateMs = dateMs

	ctx, err := prayer.NewContext(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if *summaryMode || *jsonMode {
		runHeadless(ctx, dateMs, loc, *jsonMode, *shafaqVariant, *lat)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Debug("stdout is not a terminal, falling back to text summary")
		runHeadless(ctx, dateMs, loc, false, *shafaqVariant, *lat)
		return
	}

	sigCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Debug("signal received, shutting down")
		cancel()
	}()

	model := ui.New(ctx, dateMs, loc)
	p := tea.NewProgram(model, tea.WithAltScreen())
	go func() {
		<-sigCtx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func parseMadhab(s string) prayer.Madhab {
	if strings.EqualFold(s, "hanafi") {
		return prayer.MadhabHanafi
	}
	return prayer.MadhabStandard
}

func parseHighLatRule(s string) prayer.HighLatRule {
	switch strings.ToLower(s) {
	case "middle_of_night":
		return prayer.HighLatMiddleOfNight
	case "seventh_of_night":
		return prayer.HighLatSeventhOfNight
	case "twilight_angle":
		return prayer.HighLatTwilightAngle
	default:
		return prayer.HighLatNone
	}
}

// resolveDateMs parses a YYYY-MM-DD civil date in loc into UTC midnight
// milliseconds, the kernel's DateMs convention (§3). An empty dateStr
// resolves to today in loc.
func resolveDateMs(dateStr string, loc *time.Location) (float64, error) {
	if dateStr == "" {
		now := time.Now().In(loc)
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return float64(midnight.UnixMilli()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return 0, err
	}
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return float64(midnight.UnixMilli()), nil
}
