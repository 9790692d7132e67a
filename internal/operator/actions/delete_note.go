package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// DeleteNote removes the note of one transaction, if any.
type DeleteNote struct {
	TxnID int64
}

func (a *DeleteNote) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Notes.Delete(ctx, a.TxnID)
	if err != nil {
		return err
	}
	if !deleted {
		return taxonomy.NotFoundf("note does not exist for transaction: %d", a.TxnID)
	}
	return nil
}
