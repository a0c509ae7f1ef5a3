package main

import (
	"fmt"
	"time"

	"github.com/arafathusayn/masjiduna-waqt/internal/logging"
	"github.com/arafathusayn/masjiduna-waqt/internal/prayer"
)

// runBench drives the context façade (§4.J) across years*365 consecutive
// civil dates for one location, so the config-derived-constants cache
// (§4.F) and the day-constants/solar-position caches (§4.D/E) all see the
// same traffic pattern a long-running service would: a single Context held
// across repeated Compute calls with a slowly varying date and a fixed
// configuration.
func runBench(cfg prayer.Config, years int, logger *logging.Logger) {
	ctx, err := prayer.NewContext(cfg)
	if err != nil {
		logger.Error("invalid configuration: %v", err)
		return
	}

	days := years * 365
	start := todayUTCMidnightMs()

	logger.Info("running %d days of compute through one context", days)
	t0 := time.Now()

	defined := 0
	for i := 0; i < days; i++ {
		dateMs := start + float64(i)*86_400_000
		view := ctx.Compute(dateMs)
		if view.Fajr().Valid {
			defined++
		}
	}

	elapsed := time.Since(t0)
	perCompute := elapsed / time.Duration(days)

	fmt.Printf("computed %d days in %v (%v/compute, %d with a defined fajr)\n",
		days, elapsed, perCompute, defined)
}

func todayUTCMidnightMs() float64 {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return float64(midnight.UnixMilli())
}
