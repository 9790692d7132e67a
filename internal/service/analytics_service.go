package service

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// AnalyticsService answers counting questions over classified transactions.
type AnalyticsService struct {
	storage *storage.Storage
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store *storage.Storage) *AnalyticsService {
	return &AnalyticsService{storage: store}
}

// CountByTaxonomy counts the transactions assigned to the named group and
// category within the half-open period.
func (s *AnalyticsService) CountByTaxonomy(ctx context.Context, group, category string, period Period) (int, error) {
	if group == "" || category == "" {
		return 0, taxonomy.Validationf("both group and category are required")
	}

	count, err := s.storage.Transactions.CountByTaxonomy(ctx, group, category, period.Start, period.End)
	if err != nil {
		return 0, fmt.Errorf("counting by taxonomy: %w", err)
	}
	return count, nil
}

// UncategorizedCount counts the transactions still on the Uncategorized
// sentinel for one calendar year.
func (s *AnalyticsService) UncategorizedCount(ctx context.Context, year int) (int, error) {
	if year < 1900 || year > 9999 {
		return 0, taxonomy.Validationf("year out of range: %d", year)
	}

	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	count, err := s.storage.Transactions.CountByTaxonomy(ctx,
		taxonomy.ReservedGroupName, taxonomy.UncategorizedName, start, start.AddDate(1, 0, 0))
	if err != nil {
		return 0, fmt.Errorf("counting uncategorized: %w", err)
	}
	return count, nil
}
