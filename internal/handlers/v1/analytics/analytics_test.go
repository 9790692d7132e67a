package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

type mockAnalytics struct {
	mock.Mock
}

func (m *mockAnalytics) CountByTaxonomy(ctx context.Context, group, category string, period service.Period) (int, error) {
	args := m.Called(ctx, group, category, period)
	return args.Int(0), args.Error(1)
}

func (m *mockAnalytics) UncategorizedCount(ctx context.Context, year int) (int, error) {
	args := m.Called(ctx, year)
	return args.Int(0), args.Error(1)
}

func TestHTTP_TaxonomyCount_ExplicitDates(t *testing.T) {
	mockSvc := new(mockAnalytics)
	mockSvc.On("CountByTaxonomy", mock.Anything, "Equipment", "Gadgets",
		mock.MatchedBy(func(p service.Period) bool {
			return p.Start.Format("2006-01-02") == "2025-03-01" &&
				p.End.Format("2006-01-02") == "2025-04-01"
		})).Return(7, nil)

	_, api := humatest.New(t)
	NewTaxonomyCountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/analytics/taxonomy-count?group=Equipment&category=Gadgets&start=2025-03-01&end=2025-04-01")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body TaxonomyCountResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 7, body.Count)
	assert.Equal(t, "2025-03-01", body.Start)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_TaxonomyCount_YearPreset(t *testing.T) {
	mockSvc := new(mockAnalytics)
	mockSvc.On("CountByTaxonomy", mock.Anything, "Equipment", "Gadgets",
		mock.MatchedBy(func(p service.Period) bool {
			return p.Start.Year() == 2024 && p.End.Year() == 2025
		})).Return(31, nil)

	_, api := humatest.New(t)
	NewTaxonomyCountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/analytics/taxonomy-count?group=Equipment&category=Gadgets&period=year_2024")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_TaxonomyCount_MalformedStartDate(t *testing.T) {
	mockSvc := new(mockAnalytics)

	_, api := humatest.New(t)
	NewTaxonomyCountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/analytics/taxonomy-count?group=Equipment&category=Gadgets&start=not-a-date&end=2025-04-01")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "invalid start date")
	mockSvc.AssertNotCalled(t, "CountByTaxonomy")
}

func TestHTTP_TaxonomyCount_MalformedEndDate(t *testing.T) {
	mockSvc := new(mockAnalytics)

	_, api := humatest.New(t)
	NewTaxonomyCountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/analytics/taxonomy-count?group=Equipment&category=Gadgets&start=2025-03-01&end=2025-13-99")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "invalid end date")
	mockSvc.AssertNotCalled(t, "CountByTaxonomy")
}

func TestHTTP_TaxonomyCount_MissingPeriod(t *testing.T) {
	mockSvc := new(mockAnalytics)

	_, api := humatest.New(t)
	NewTaxonomyCountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/analytics/taxonomy-count?group=Equipment&category=Gadgets")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CountByTaxonomy")
}

func TestHTTP_UncategorizedCount(t *testing.T) {
	mockSvc := new(mockAnalytics)
	mockSvc.On("UncategorizedCount", mock.Anything, 2024).Return(42, nil)

	_, api := humatest.New(t)
	NewUncategorizedCountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/analytics/uncategorized-count?year=2024")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body UncategorizedCountResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 42, body.Count)
	assert.Equal(t, 2024, body.Year)
}

func TestHTTP_UncategorizedCount_BadYear(t *testing.T) {
	mockSvc := new(mockAnalytics)
	mockSvc.On("UncategorizedCount", mock.Anything, 99).
		Return(0, taxonomy.Validationf("year out of range: 99"))

	_, api := humatest.New(t)
	NewUncategorizedCountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/analytics/uncategorized-count?year=99")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
