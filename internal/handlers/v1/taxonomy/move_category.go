package taxonomy

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// MoveCategoryBody is the request body for moving a category.
type MoveCategoryBody struct {
	GroupID   int64 `json:"groupID" required:"true" doc:"Target group ID"`
	SortOrder *int  `json:"sortOrder,omitempty" doc:"Position in the target group, defaults to the end"`
}

// MoveCategoryInput is the Huma input for moving a category.
type MoveCategoryInput struct {
	CategoryID int64 `path:"categoryID" doc:"Category ID"`
	Body       MoveCategoryBody
}

// MoveCategoryResponseBody is the response body for moving a category.
type MoveCategoryResponseBody struct {
	Category Category `json:"category" doc:"The category after the move"`
	Changed  bool     `json:"changed" doc:"False when the category was already in the target group"`
}

// MoveCategoryOutput is the Huma output for moving a category.
type MoveCategoryOutput struct {
	Body MoveCategoryResponseBody
}

// MoveCategoryHandler handles PATCH /v1/taxonomy/category/{categoryID}/group.
type MoveCategoryHandler struct {
	Operator actionProcessor
}

// NewMoveCategoryHandler creates a new MoveCategoryHandler.
func NewMoveCategoryHandler(op actionProcessor) *MoveCategoryHandler {
	return &MoveCategoryHandler{Operator: op}
}

// Register registers the move category endpoint with the Huma API.
func (h *MoveCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "move-category",
		Method:      http.MethodPatch,
		Path:        "/v1/taxonomy/category/{categoryID}/group",
		Summary:     "Move category",
		Description: "Moves a category to another group. Sentinel categories cannot be moved.",
		Tags:        []string{"Taxonomy"},
	}, h.handle)
}

func (h *MoveCategoryHandler) handle(ctx context.Context, input *MoveCategoryInput) (*MoveCategoryOutput, error) {
	action := &actions.MoveCategory{
		CategoryID:    input.CategoryID,
		TargetGroupID: input.Body.GroupID,
	}
	if input.Body.SortOrder != nil {
		action.SortOrder = omit.From(*input.Body.SortOrder)
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.Map(err, "failed to move category")
	}

	return &MoveCategoryOutput{
		Body: MoveCategoryResponseBody{
			Category: toCategory(action.Category),
			Changed:  action.Changed,
		},
	}, nil
}
