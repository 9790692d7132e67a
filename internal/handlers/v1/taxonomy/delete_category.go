package taxonomy

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	CategoryID int64 `path:"categoryID" doc:"Category ID"`
}

// DeleteCategoryResponseBody is the response body for deleting a category.
type DeleteCategoryResponseBody struct {
	DeletedName            string `json:"deletedName" doc:"Name of the deleted category"`
	SentinelID             int64  `json:"sentinelID" doc:"Category its transactions were reassigned to"`
	ReassignedTransactions int    `json:"reassignedTransactions" doc:"Number of transactions reassigned"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Body DeleteCategoryResponseBody
}

// DeleteCategoryHandler handles DELETE /v1/taxonomy/category/{categoryID}.
type DeleteCategoryHandler struct {
	Operator actionProcessor
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(op actionProcessor) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{Operator: op}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/taxonomy/category/{categoryID}",
		Summary:     "Delete category",
		Description: "Deletes a category. Its transactions are reassigned to the Deleted Category sentinel in the same transaction.",
		Tags:        []string{"Taxonomy"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	action := &actions.DeleteCategory{CategoryID: input.CategoryID}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.Map(err, "failed to delete category")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("reassignedTransactions", action.ReassignedTransactions)
	}

	return &DeleteCategoryOutput{
		Body: DeleteCategoryResponseBody{
			DeletedName:            action.DeletedName,
			SentinelID:             action.SentinelID,
			ReassignedTransactions: action.ReassignedTransactions,
		},
	}, nil
}
