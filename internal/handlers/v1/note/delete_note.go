package note

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// DeleteNoteInput is the Huma input for deleting a note.
type DeleteNoteInput struct {
	TxnID int64 `path:"txnID" doc:"Transaction ID"`
}

// DeleteNoteOutput is the Huma output for deleting a note.
type DeleteNoteOutput struct {
	Status int
}

// DeleteNoteHandler handles DELETE /v1/transaction/{txnID}/note.
type DeleteNoteHandler struct {
	Operator actionProcessor
}

// NewDeleteNoteHandler creates a new DeleteNoteHandler.
func NewDeleteNoteHandler(op actionProcessor) *DeleteNoteHandler {
	return &DeleteNoteHandler{Operator: op}
}

// Register registers the delete note endpoint with the Huma API.
func (h *DeleteNoteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-note",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{txnID}/note",
		Summary:     "Delete note",
		Description: "Removes the note on a transaction.",
		Tags:        []string{"Notes"},
	}, h.handle)
}

func (h *DeleteNoteHandler) handle(ctx context.Context, input *DeleteNoteInput) (*DeleteNoteOutput, error) {
	action := &actions.DeleteNote{TxnID: input.TxnID}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.Map(err, "failed to delete note")
	}

	return &DeleteNoteOutput{Status: http.StatusNoContent}, nil
}
