package actions

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// DeleteCategory deletes a non-sentinel category. Every assignment still
// referencing it is repointed to the "Deleted Category" sentinel first, in
// the same transaction, so no transaction is ever left unclassified.
type DeleteCategory struct {
	CategoryID int64

	// Populated by Perform.
	DeletedName            string
	SentinelID             int64
	ReassignedTransactions int
}

func (a *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	cat, err := writer.Categories.FindByID(ctx, a.CategoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return taxonomy.NotFoundf("category does not exist: %d", a.CategoryID)
	}

	if err := ensureNotProtected(ctx, writer.Categories, a.CategoryID, "deleted"); err != nil {
		return err
	}

	sentinelID, err := writer.Categories.DeletedSentinelID(ctx)
	if err != nil {
		return err
	}

	reassigned, err := writer.Assignments.RepointCategory(ctx, cat.ID, sentinelID, time.Now().UTC())
	if err != nil {
		return err
	}

	if err := writer.Categories.Delete(ctx, cat.ID); err != nil {
		return err
	}

	a.DeletedName = cat.Name
	a.SentinelID = sentinelID
	a.ReassignedTransactions = reassigned
	return nil
}
