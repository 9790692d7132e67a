package note

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	storagenote "github.com/carson-networks/ledger-server/internal/storage/note"
)

// GetNoteInput is the Huma input for reading a note.
type GetNoteInput struct {
	TxnID int64 `path:"txnID" doc:"Transaction ID"`
}

// GetNoteOutput is the Huma output for reading a note.
type GetNoteOutput struct {
	Body Note
}

type noteGetter interface {
	GetNote(ctx context.Context, txnID int64) (*storagenote.Note, error)
}

// GetNoteHandler handles GET /v1/transaction/{txnID}/note.
type GetNoteHandler struct {
	LedgerService noteGetter
}

// NewGetNoteHandler creates a new GetNoteHandler.
func NewGetNoteHandler(svc noteGetter) *GetNoteHandler {
	return &GetNoteHandler{LedgerService: svc}
}

// Register registers the get note endpoint with the Huma API.
func (h *GetNoteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-note",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{txnID}/note",
		Summary:     "Get note",
		Description: "Returns the note on a transaction.",
		Tags:        []string{"Notes"},
	}, h.handle)
}

func (h *GetNoteHandler) handle(ctx context.Context, input *GetNoteInput) (*GetNoteOutput, error) {
	row, err := h.LedgerService.GetNote(ctx, input.TxnID)
	if err != nil {
		return nil, apierror.Map(err, "failed to read note")
	}

	return &GetNoteOutput{Body: Note{
		TxnID:     row.TxnID,
		Note:      row.Note,
		UpdatedAt: row.UpdatedAt.Format(time.RFC3339),
	}}, nil
}
