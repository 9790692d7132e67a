package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// Period is a half-open date interval [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod turns a preset or an explicit date pair into a half-open
// interval. A preset always wins over explicit dates. Supported presets are
// this_month, last_month, ytd and year_<N>.
func ResolvePeriod(start, end *time.Time, preset string) (Period, error) {
	return resolvePeriodAt(start, end, preset, time.Now().UTC())
}

func resolvePeriodAt(start, end *time.Time, preset string, now time.Time) (Period, error) {
	if preset != "" {
		return resolvePreset(preset, now)
	}

	if start == nil || end == nil {
		return Period{}, taxonomy.Validationf("provide either a period preset or both start and end dates")
	}
	if !end.After(*start) {
		return Period{}, taxonomy.Validationf("end must be after start")
	}
	return Period{Start: *start, End: *end}, nil
}

func resolvePreset(preset string, now time.Time) (Period, error) {
	p := strings.ToLower(strings.TrimSpace(preset))

	switch {
	case p == "this_month":
		start := firstOfMonth(now)
		return Period{Start: start, End: start.AddDate(0, 1, 0)}, nil

	case p == "last_month":
		end := firstOfMonth(now)
		return Period{Start: end.AddDate(0, -1, 0), End: end}, nil

	case p == "ytd":
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return Period{Start: start, End: start.AddDate(1, 0, 0)}, nil

	case strings.HasPrefix(p, "year_"):
		year, err := strconv.Atoi(strings.TrimPrefix(p, "year_"))
		if err != nil {
			return Period{}, taxonomy.Validationf("unknown period preset: %q", preset)
		}
		start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		return Period{Start: start, End: start.AddDate(1, 0, 0)}, nil
	}

	return Period{}, taxonomy.Validationf("unknown period preset: %q", preset)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
