package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
)

// TaxonomyCountInput is the Huma input for counting by taxonomy.
type TaxonomyCountInput struct {
	Group    string `query:"group" required:"true" doc:"Group name"`
	Category string `query:"category" required:"true" doc:"Category name"`
	Start    string `query:"start" doc:"Start date (inclusive), YYYY-MM-DD"`
	End      string `query:"end" doc:"End date (exclusive), YYYY-MM-DD"`
	Period   string `query:"period" doc:"Preset period: this_month, last_month, ytd or year_<N>; wins over start/end"`
}

// TaxonomyCountResponseBody is the response body for counting by taxonomy.
type TaxonomyCountResponseBody struct {
	Group    string `json:"group" doc:"Group name"`
	Category string `json:"category" doc:"Category name"`
	Start    string `json:"start" doc:"Resolved start date (inclusive)"`
	End      string `json:"end" doc:"Resolved end date (exclusive)"`
	Count    int    `json:"count" doc:"Number of matching transactions"`
}

// TaxonomyCountOutput is the Huma output for counting by taxonomy.
type TaxonomyCountOutput struct {
	Body TaxonomyCountResponseBody
}

// TaxonomyCountHandler handles GET /v1/analytics/taxonomy-count.
type TaxonomyCountHandler struct {
	AnalyticsService taxonomyCounter
}

// NewTaxonomyCountHandler creates a new TaxonomyCountHandler.
func NewTaxonomyCountHandler(svc taxonomyCounter) *TaxonomyCountHandler {
	return &TaxonomyCountHandler{AnalyticsService: svc}
}

// Register registers the taxonomy count endpoint with the Huma API.
func (h *TaxonomyCountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "taxonomy-count",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/taxonomy-count",
		Summary:     "Count by taxonomy",
		Description: "Counts transactions assigned to a group and category within a period.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *TaxonomyCountHandler) handle(ctx context.Context, input *TaxonomyCountInput) (*TaxonomyCountOutput, error) {
	period, err := parsePeriod(input.Start, input.End, input.Period)
	if err != nil {
		return nil, apierror.Map(err, "failed to resolve period")
	}

	count, err := h.AnalyticsService.CountByTaxonomy(ctx, input.Group, input.Category, period)
	if err != nil {
		return nil, apierror.Map(err, "failed to count by taxonomy")
	}

	return &TaxonomyCountOutput{
		Body: TaxonomyCountResponseBody{
			Group:    input.Group,
			Category: input.Category,
			Start:    period.Start.Format(dateLayout),
			End:      period.End.Format(dateLayout),
			Count:    count,
		},
	}, nil
}
