// Package classification exposes the transaction-to-category overlay.
package classification

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// AssignCategoryBody is the request body for assigning a category.
type AssignCategoryBody struct {
	CategoryID int64 `json:"categoryID" required:"true" doc:"Category to assign"`
}

// AssignCategoryInput is the Huma input for assigning a category.
type AssignCategoryInput struct {
	TxnID int64 `path:"txnID" doc:"Transaction ID"`
	Body  AssignCategoryBody
}

// AssignCategoryResponseBody is the response body for assigning a category.
type AssignCategoryResponseBody struct {
	TxnID      int64  `json:"txnID" doc:"Transaction ID"`
	CategoryID int64  `json:"categoryID" doc:"Assigned category ID"`
	AssignedAt string `json:"assignedAt" format:"date-time" doc:"When the assignment was written"`
	Created    bool   `json:"created" doc:"True when the assignment row was missing and got created"`
}

// AssignCategoryOutput is the Huma output for assigning a category.
type AssignCategoryOutput struct {
	Status int
	Body   AssignCategoryResponseBody
}

// AssignCategoryHandler handles PUT /v1/transaction/{txnID}/category.
type AssignCategoryHandler struct {
	Operator actionProcessor
}

// NewAssignCategoryHandler creates a new AssignCategoryHandler.
func NewAssignCategoryHandler(op actionProcessor) *AssignCategoryHandler {
	return &AssignCategoryHandler{Operator: op}
}

// Register registers the assign category endpoint with the Huma API.
func (h *AssignCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "assign-category",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{txnID}/category",
		Summary:     "Assign category",
		Description: "Sets the single category of a transaction. Sentinel categories cannot be assigned manually.",
		Tags:        []string{"Classification"},
	}, h.handle)
}

func (h *AssignCategoryHandler) handle(ctx context.Context, input *AssignCategoryInput) (*AssignCategoryOutput, error) {
	action := &actions.AssignCategory{
		TxnID:      input.TxnID,
		CategoryID: input.Body.CategoryID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.Map(err, "failed to assign category")
	}

	status := http.StatusOK
	if action.Created {
		status = http.StatusCreated
	}

	return &AssignCategoryOutput{
		Status: status,
		Body: AssignCategoryResponseBody{
			TxnID:      input.TxnID,
			CategoryID: input.Body.CategoryID,
			AssignedAt: action.AssignedAt.Format(time.RFC3339),
			Created:    action.Created,
		},
	}, nil
}
