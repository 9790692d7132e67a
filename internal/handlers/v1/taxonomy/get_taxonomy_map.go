package taxonomy

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// GetTaxonomyMapInput is the Huma input for reading the taxonomy map.
type GetTaxonomyMapInput struct{}

// GetTaxonomyMapResponseBody is the response body for the taxonomy map.
type GetTaxonomyMapResponseBody struct {
	Groups []Group `json:"groups" doc:"All groups with their categories, in display order"`
}

// GetTaxonomyMapOutput is the Huma output for reading the taxonomy map.
type GetTaxonomyMapOutput struct {
	Body GetTaxonomyMapResponseBody
}

type taxonomyMapper interface {
	TaxonomyMap(ctx context.Context) ([]service.GroupEntry, error)
}

// GetTaxonomyMapHandler handles GET /v1/taxonomy/map.
type GetTaxonomyMapHandler struct {
	TaxonomyService taxonomyMapper
}

// NewGetTaxonomyMapHandler creates a new GetTaxonomyMapHandler.
func NewGetTaxonomyMapHandler(svc taxonomyMapper) *GetTaxonomyMapHandler {
	return &GetTaxonomyMapHandler{TaxonomyService: svc}
}

// Register registers the taxonomy map endpoint with the Huma API.
func (h *GetTaxonomyMapHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-taxonomy-map",
		Method:      http.MethodGet,
		Path:        "/v1/taxonomy/map",
		Summary:     "Get taxonomy map",
		Description: "Returns every group with its categories in display order.",
		Tags:        []string{"Taxonomy"},
	}, h.handle)
}

func (h *GetTaxonomyMapHandler) handle(ctx context.Context, _ *GetTaxonomyMapInput) (*GetTaxonomyMapOutput, error) {
	entries, err := h.TaxonomyService.TaxonomyMap(ctx)
	if err != nil {
		return nil, apierror.Map(err, "failed to load taxonomy map")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("groupCount", len(entries))
	}

	groups := make([]Group, len(entries))
	for i, entry := range entries {
		categories := make([]CategoryBrief, len(entry.Categories))
		for j, cat := range entry.Categories {
			categories[j] = CategoryBrief{
				ID:          cat.ID,
				Name:        cat.Name,
				SortOrder:   cat.SortOrder,
				ReportClass: cat.ReportClass,
			}
		}
		groups[i] = Group{
			ID:         entry.ID,
			Name:       entry.Name,
			SortOrder:  entry.SortOrder,
			Categories: categories,
		}
	}

	return &GetTaxonomyMapOutput{Body: GetTaxonomyMapResponseBody{Groups: groups}}, nil
}
