package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/assignment"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/group"
	"github.com/carson-networks/ledger-server/internal/storage/note"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Writer bundles the per-entity writers of one storage transaction.
// Mutating operations receive a Writer, never the raw DB handle, so all of
// their row changes share the transaction's fate.
type Writer struct {
	tx bob.Tx

	Groups       group.IGroupWriter
	Categories   category.ICategoryWriter
	Assignments  assignment.IAssignmentWriter
	Notes        note.INoteWriter
	Transactions transaction.ITransactionReader
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:           tx,
		Groups:       group.NewWriter(tx),
		Categories:   category.NewWriter(tx),
		Assignments:  assignment.NewWriter(tx),
		Notes:        note.NewWriter(tx),
		Transactions: transaction.NewReader(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
