package assignment

import (
	"context"
	"time"
)

// Assignment is the single classification link between a transaction and a
// category. txn_id is the primary key, so at most one row exists per
// transaction.
type Assignment struct {
	TxnID      int64     `db:"txn_id"`
	CategoryID int64     `db:"category_id"`
	AssignedAt time.Time `db:"assigned_at"`
}

// IAssignmentReader defines read operations over the assignment overlay.
type IAssignmentReader interface {
	FindByTxn(ctx context.Context, txnID int64) (*Assignment, error)
}

// IAssignmentWriter defines mutations over the assignment overlay.
// Assignments are repointed, never deleted; their lifetime is tied to the
// transaction's.
type IAssignmentWriter interface {
	IAssignmentReader
	Insert(ctx context.Context, txnID, categoryID int64, assignedAt time.Time) error
	Update(ctx context.Context, txnID, categoryID int64, assignedAt time.Time) error
	RepointCategory(ctx context.Context, fromCategoryID, toCategoryID int64, assignedAt time.Time) (int, error)
}
