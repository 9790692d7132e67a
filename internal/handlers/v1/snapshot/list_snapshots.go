// Package snapshot exposes the read-only ledger snapshot listing.
package snapshot

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	storagesnapshot "github.com/carson-networks/ledger-server/internal/storage/snapshot"
)

const dateLayout = "2006-01-02"

// Snapshot is the API response model for an imported ledger snapshot.
type Snapshot struct {
	ID             int64  `json:"id" doc:"Snapshot ID"`
	Account        string `json:"account" doc:"Account name"`
	LedgerFilename string `json:"ledgerFilename" doc:"Imported file name"`
	LedgerSHA256   string `json:"ledgerSHA256" doc:"SHA-256 of the imported file"`
	TxMinDate      string `json:"txMinDate" doc:"Earliest transaction date in the file"`
	TxMaxDate      string `json:"txMaxDate" doc:"Latest transaction date in the file"`
	CreatedAt      string `json:"createdAt" format:"date-time" doc:"When the snapshot was imported"`
}

// ListSnapshotsInput is the Huma input for listing snapshots.
type ListSnapshotsInput struct {
	Account string `query:"account" doc:"Account name, e.g. checking or credit"`
}

// ListSnapshotsResponseBody is the response body for listing snapshots.
type ListSnapshotsResponseBody struct {
	Snapshots []Snapshot `json:"snapshots" doc:"Snapshots, newest first"`
}

// ListSnapshotsOutput is the Huma output for listing snapshots.
type ListSnapshotsOutput struct {
	Body ListSnapshotsResponseBody
}

type snapshotLister interface {
	ListSnapshots(ctx context.Context, account string) ([]*storagesnapshot.Snapshot, error)
}

// ListSnapshotsHandler handles GET /v1/snapshot.
type ListSnapshotsHandler struct {
	LedgerService snapshotLister
}

// NewListSnapshotsHandler creates a new ListSnapshotsHandler.
func NewListSnapshotsHandler(svc snapshotLister) *ListSnapshotsHandler {
	return &ListSnapshotsHandler{LedgerService: svc}
}

// Register registers the list snapshots endpoint with the Huma API.
func (h *ListSnapshotsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-snapshots",
		Method:      http.MethodGet,
		Path:        "/v1/snapshot",
		Summary:     "List snapshots",
		Description: "Returns imported ledger snapshots, newest first.",
		Tags:        []string{"Snapshots"},
	}, h.handle)
}

func (h *ListSnapshotsHandler) handle(ctx context.Context, input *ListSnapshotsInput) (*ListSnapshotsOutput, error) {
	rows, err := h.LedgerService.ListSnapshots(ctx, input.Account)
	if err != nil {
		return nil, apierror.Map(err, "failed to list snapshots")
	}

	resp := ListSnapshotsResponseBody{Snapshots: make([]Snapshot, len(rows))}
	for i, row := range rows {
		resp.Snapshots[i] = Snapshot{
			ID:             row.ID,
			Account:        row.Account,
			LedgerFilename: row.LedgerFilename,
			LedgerSHA256:   row.LedgerSHA256,
			TxMinDate:      row.TxMinDate.Format(dateLayout),
			TxMaxDate:      row.TxMaxDate.Format(dateLayout),
			CreatedAt:      row.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListSnapshotsOutput{Body: resp}, nil
}
