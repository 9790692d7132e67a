package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
)

// UncategorizedCountInput is the Huma input for counting uncategorized
// transactions.
type UncategorizedCountInput struct {
	Year int `query:"year" required:"true" doc:"Calendar year"`
}

// UncategorizedCountResponseBody is the response body for the
// uncategorized count.
type UncategorizedCountResponseBody struct {
	Year  int `json:"year" doc:"Calendar year"`
	Count int `json:"count" doc:"Transactions still on the Uncategorized sentinel"`
}

// UncategorizedCountOutput is the Huma output for the uncategorized count.
type UncategorizedCountOutput struct {
	Body UncategorizedCountResponseBody
}

// UncategorizedCountHandler handles GET /v1/analytics/uncategorized-count.
type UncategorizedCountHandler struct {
	AnalyticsService taxonomyCounter
}

// NewUncategorizedCountHandler creates a new UncategorizedCountHandler.
func NewUncategorizedCountHandler(svc taxonomyCounter) *UncategorizedCountHandler {
	return &UncategorizedCountHandler{AnalyticsService: svc}
}

// Register registers the uncategorized count endpoint with the Huma API.
func (h *UncategorizedCountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "uncategorized-count",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/uncategorized-count",
		Summary:     "Count uncategorized",
		Description: "Counts transactions still on the Uncategorized sentinel for one year.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *UncategorizedCountHandler) handle(ctx context.Context, input *UncategorizedCountInput) (*UncategorizedCountOutput, error) {
	count, err := h.AnalyticsService.UncategorizedCount(ctx, input.Year)
	if err != nil {
		return nil, apierror.Map(err, "failed to count uncategorized transactions")
	}

	return &UncategorizedCountOutput{
		Body: UncategorizedCountResponseBody{Year: input.Year, Count: count},
	}, nil
}
