package taxonomy

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name        string `json:"name" required:"true" minLength:"1" maxLength:"80" doc:"Category name"`
	SortOrder   *int   `json:"sortOrder,omitempty" doc:"Position within the group, defaults to the end"`
	ReportClass string `json:"reportClass,omitempty" doc:"Reporting treatment, defaults to auto"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	GroupID int64 `path:"groupID" doc:"Owning group ID"`
	Body    CreateCategoryBody
}

// CreateCategoryResponseBody is the response body for creating a category.
type CreateCategoryResponseBody struct {
	Category Category `json:"category" doc:"The created or already existing category"`
	Created  bool     `json:"created" doc:"False when the name already existed in the group"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponseBody
}

// CreateCategoryHandler handles POST /v1/taxonomy/group/{groupID}/category.
type CreateCategoryHandler struct {
	Operator actionProcessor
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(op actionProcessor) *CreateCategoryHandler {
	return &CreateCategoryHandler{Operator: op}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/taxonomy/group/{groupID}/category",
		Summary:     "Create category",
		Description: "Creates a category in an existing group. Re-posting the same name in the same group returns the existing category.",
		Tags:        []string{"Taxonomy"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	reportClass := input.Body.ReportClass
	if reportClass == "" {
		reportClass = "auto"
	}

	action := &actions.CreateCategory{
		GroupID:     input.GroupID,
		Name:        input.Body.Name,
		ReportClass: reportClass,
	}
	if input.Body.SortOrder != nil {
		action.SortOrder = omit.From(*input.Body.SortOrder)
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.Map(err, "failed to create category")
	}

	status := http.StatusCreated
	if !action.Created {
		status = http.StatusOK
	}

	return &CreateCategoryOutput{
		Status: status,
		Body: CreateCategoryResponseBody{
			Category: toCategory(action.Category),
			Created:  action.Created,
		},
	}, nil
}
