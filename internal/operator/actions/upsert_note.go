package actions

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/note"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// UpsertNote writes the single free-form note of one transaction.
type UpsertNote struct {
	TxnID int64
	Note  string

	// Populated by Perform.
	Result  *note.Note
	Created bool
}

func (a *UpsertNote) Perform(ctx context.Context, writer *storage.Writer) error {
	txnExists, err := writer.Transactions.Exists(ctx, a.TxnID)
	if err != nil {
		return err
	}
	if !txnExists {
		return taxonomy.NotFoundf("transaction does not exist: %d", a.TxnID)
	}

	existing, err := writer.Notes.FindByTxn(ctx, a.TxnID)
	if err != nil {
		return err
	}

	updatedAt := time.Now().UTC()

	if existing == nil {
		if err := writer.Notes.Insert(ctx, a.TxnID, a.Note, updatedAt); err != nil {
			return err
		}
		a.Created = true
	} else {
		if err := writer.Notes.Update(ctx, a.TxnID, a.Note, updatedAt); err != nil {
			return err
		}
		a.Created = false
	}

	a.Result = &note.Note{TxnID: a.TxnID, Note: a.Note, UpdatedAt: updatedAt}
	return nil
}
