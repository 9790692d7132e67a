// Package analytics exposes counting endpoints over classified transactions.
package analytics

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

const dateLayout = "2006-01-02"

type taxonomyCounter interface {
	CountByTaxonomy(ctx context.Context, group, category string, period service.Period) (int, error)
	UncategorizedCount(ctx context.Context, year int) (int, error)
}

// parsePeriod resolves start/end/period query params into a half-open
// interval.
func parsePeriod(start, end, preset string) (service.Period, error) {
	var startTime, endTime *time.Time

	if start != "" {
		parsed, err := time.Parse(dateLayout, start)
		if err != nil {
			return service.Period{}, taxonomy.Validationf("invalid start date: %q", start)
		}
		startTime = &parsed
	}
	if end != "" {
		parsed, err := time.Parse(dateLayout, end)
		if err != nil {
			return service.Period{}, taxonomy.Validationf("invalid end date: %q", end)
		}
		endTime = &parsed
	}

	return service.ResolvePeriod(startTime, endTime, preset)
}
