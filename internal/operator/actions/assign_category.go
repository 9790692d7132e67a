package actions

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// AssignCategory sets the single classification of one transaction.
// Sentinel categories are reachable only through automatic defaulting and
// delete-reassignment, never through this call. The assignment row should
// already exist for every transaction; a missing row is repaired by
// inserting one.
type AssignCategory struct {
	TxnID      int64
	CategoryID int64

	// Populated by Perform.
	Created    bool
	AssignedAt time.Time
}

func (a *AssignCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	txnExists, err := writer.Transactions.Exists(ctx, a.TxnID)
	if err != nil {
		return err
	}
	if !txnExists {
		return taxonomy.NotFoundf("transaction does not exist: %d", a.TxnID)
	}

	cat, err := writer.Categories.FindByID(ctx, a.CategoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return taxonomy.NotFoundf("category does not exist: %d", a.CategoryID)
	}

	protected, err := writer.Categories.IsProtected(ctx, a.CategoryID)
	if err != nil {
		return err
	}
	if protected {
		return taxonomy.Validationf("protected categories cannot be assigned manually: %d", a.CategoryID)
	}

	existing, err := writer.Assignments.FindByTxn(ctx, a.TxnID)
	if err != nil {
		return err
	}

	assignedAt := time.Now().UTC()

	if existing == nil {
		if err := writer.Assignments.Insert(ctx, a.TxnID, cat.ID, assignedAt); err != nil {
			if storage.IsUniqueViolation(err) {
				return taxonomy.Conflictf("category assignment conflict for transaction: %d", a.TxnID)
			}
			return err
		}
		a.Created = true
	} else {
		if err := writer.Assignments.Update(ctx, a.TxnID, cat.ID, assignedAt); err != nil {
			return err
		}
		a.Created = false
	}

	a.AssignedAt = assignedAt
	return nil
}
