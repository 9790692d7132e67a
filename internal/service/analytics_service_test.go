package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

func TestCountByTaxonomy(t *testing.T) {
	store, _, _, transactions, _, _ := newTestStorage()
	svc := NewAnalyticsService(store)

	start := date(2025, time.March, 1)
	end := date(2025, time.April, 1)
	transactions.On("CountByTaxonomy", mock.Anything, "Equipment", "Gadgets", start, end).
		Return(7, nil)

	count, err := svc.CountByTaxonomy(context.Background(), "Equipment", "Gadgets", Period{Start: start, End: end})

	assert.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestCountByTaxonomy_RequiresBothNames(t *testing.T) {
	store, _, _, _, _, _ := newTestStorage()
	svc := NewAnalyticsService(store)

	_, err := svc.CountByTaxonomy(context.Background(), "Equipment", "", Period{})

	assert.True(t, taxonomy.IsKind(err, taxonomy.KindValidation))
}

func TestUncategorizedCount_UsesSentinelNames(t *testing.T) {
	store, _, _, transactions, _, _ := newTestStorage()
	svc := NewAnalyticsService(store)

	transactions.On("CountByTaxonomy", mock.Anything,
		taxonomy.ReservedGroupName, taxonomy.UncategorizedName,
		date(2024, time.January, 1), date(2025, time.January, 1)).
		Return(42, nil)

	count, err := svc.UncategorizedCount(context.Background(), 2024)

	assert.NoError(t, err)
	assert.Equal(t, 42, count)
	transactions.AssertExpectations(t)
}

func TestUncategorizedCount_YearOutOfRange(t *testing.T) {
	store, _, _, _, _, _ := newTestStorage()
	svc := NewAnalyticsService(store)

	_, err := svc.UncategorizedCount(context.Background(), 123)

	assert.True(t, taxonomy.IsKind(err, taxonomy.KindValidation))
}
