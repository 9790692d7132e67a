package note

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// UpsertNoteBody is the request body for writing a note.
type UpsertNoteBody struct {
	Note string `json:"note" required:"true" maxLength:"2000" doc:"Free-form note text"`
}

// UpsertNoteInput is the Huma input for writing a note.
type UpsertNoteInput struct {
	TxnID int64 `path:"txnID" doc:"Transaction ID"`
	Body  UpsertNoteBody
}

// UpsertNoteOutput is the Huma output for writing a note.
type UpsertNoteOutput struct {
	Status int
	Body   Note
}

// UpsertNoteHandler handles PUT /v1/transaction/{txnID}/note.
type UpsertNoteHandler struct {
	Operator actionProcessor
}

// NewUpsertNoteHandler creates a new UpsertNoteHandler.
func NewUpsertNoteHandler(op actionProcessor) *UpsertNoteHandler {
	return &UpsertNoteHandler{Operator: op}
}

// Register registers the upsert note endpoint with the Huma API.
func (h *UpsertNoteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-note",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{txnID}/note",
		Summary:     "Write note",
		Description: "Creates or replaces the note on a transaction.",
		Tags:        []string{"Notes"},
	}, h.handle)
}

func (h *UpsertNoteHandler) handle(ctx context.Context, input *UpsertNoteInput) (*UpsertNoteOutput, error) {
	action := &actions.UpsertNote{
		TxnID: input.TxnID,
		Note:  input.Body.Note,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.Map(err, "failed to write note")
	}

	status := http.StatusOK
	if action.Created {
		status = http.StatusCreated
	}

	return &UpsertNoteOutput{
		Status: status,
		Body: Note{
			TxnID:     action.Result.TxnID,
			Note:      action.Result.Note,
			UpdatedAt: action.Result.UpdatedAt.Format(time.RFC3339),
		},
	}, nil
}
