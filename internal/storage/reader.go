package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/group"
	"github.com/carson-networks/ledger-server/internal/storage/note"
	"github.com/carson-networks/ledger-server/internal/storage/snapshot"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type Reader struct {
	Groups       group.IGroupReader
	Categories   category.ICategoryReader
	Transactions transaction.ITransactionReader
	Snapshots    snapshot.ISnapshotReader
	Notes        note.INoteReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Groups:       group.NewReader(exec),
		Categories:   category.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Snapshots:    snapshot.NewReader(exec),
		Notes:        note.NewReader(exec),
	}
}
