package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/note"
	"github.com/carson-networks/ledger-server/internal/storage/snapshot"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// LedgerService reads the fact-store surfaces owned by the ingestion side,
// plus per-transaction notes.
type LedgerService struct {
	storage *storage.Storage
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store *storage.Storage) *LedgerService {
	return &LedgerService{storage: store}
}

// ListSnapshots returns imported ledger snapshots, newest first, optionally
// narrowed to one account.
func (s *LedgerService) ListSnapshots(ctx context.Context, account string) ([]*snapshot.Snapshot, error) {
	var accountName *string
	if account != "" {
		accountName = &account
	}

	snapshots, err := s.storage.Snapshots.List(ctx, accountName)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	return snapshots, nil
}

// GetNote returns the note on one transaction, or NotFound when there is
// none.
func (s *LedgerService) GetNote(ctx context.Context, txnID int64) (*note.Note, error) {
	row, err := s.storage.Notes.FindByTxn(ctx, txnID)
	if err != nil {
		return nil, fmt.Errorf("finding note: %w", err)
	}
	if row == nil {
		return nil, taxonomy.NotFoundf("note does not exist for transaction: %d", txnID)
	}
	return row, nil
}
