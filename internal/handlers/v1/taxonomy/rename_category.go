package taxonomy

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// RenameCategoryBody is the request body for renaming a category.
type RenameCategoryBody struct {
	Name string `json:"name" required:"true" minLength:"1" maxLength:"80" doc:"New category name"`
}

// RenameCategoryInput is the Huma input for renaming a category.
type RenameCategoryInput struct {
	CategoryID int64 `path:"categoryID" doc:"Category ID"`
	Body       RenameCategoryBody
}

// RenameCategoryResponseBody is the response body for renaming a category.
type RenameCategoryResponseBody struct {
	Category Category `json:"category" doc:"The category after the rename"`
	Changed  bool     `json:"changed" doc:"False when the name was already set"`
}

// RenameCategoryOutput is the Huma output for renaming a category.
type RenameCategoryOutput struct {
	Body RenameCategoryResponseBody
}

// RenameCategoryHandler handles PATCH /v1/taxonomy/category/{categoryID}/name.
type RenameCategoryHandler struct {
	Operator actionProcessor
}

// NewRenameCategoryHandler creates a new RenameCategoryHandler.
func NewRenameCategoryHandler(op actionProcessor) *RenameCategoryHandler {
	return &RenameCategoryHandler{Operator: op}
}

// Register registers the rename category endpoint with the Huma API.
func (h *RenameCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "rename-category",
		Method:      http.MethodPatch,
		Path:        "/v1/taxonomy/category/{categoryID}/name",
		Summary:     "Rename category",
		Description: "Renames a category. Sentinel categories cannot be renamed.",
		Tags:        []string{"Taxonomy"},
	}, h.handle)
}

func (h *RenameCategoryHandler) handle(ctx context.Context, input *RenameCategoryInput) (*RenameCategoryOutput, error) {
	action := &actions.RenameCategory{
		CategoryID: input.CategoryID,
		NewName:    input.Body.Name,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.Map(err, "failed to rename category")
	}

	return &RenameCategoryOutput{
		Body: RenameCategoryResponseBody{
			Category: toCategory(action.Category),
			Changed:  action.Changed,
		},
	}, nil
}
