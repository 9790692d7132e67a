package snapshot

import (
	"context"
	"time"
)

// Snapshot is one imported ledger file, joined with its account name.
// Snapshots belong to the ingestion collaborator; this core only reads them.
type Snapshot struct {
	ID             int64     `db:"id"`
	Account        string    `db:"account"`
	LedgerFilename string    `db:"ledger_filename"`
	LedgerSHA256   string    `db:"ledger_sha256"`
	TxMinDate      time.Time `db:"tx_min_date"`
	TxMaxDate      time.Time `db:"tx_max_date"`
	CreatedAt      time.Time `db:"created_at"`
}

// ISnapshotReader defines the read-only snapshot surface.
type ISnapshotReader interface {
	List(ctx context.Context, accountName *string) ([]*Snapshot, error)
}
