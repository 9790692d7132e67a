// Package note exposes per-transaction notes.
package note

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// Note is the API response model for a transaction note.
type Note struct {
	TxnID     int64  `json:"txnID" doc:"Transaction ID"`
	Note      string `json:"note" doc:"Free-form note text"`
	UpdatedAt string `json:"updatedAt" format:"date-time" doc:"When the note was last written"`
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
