package assignment

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
)

type Writer struct {
	tx bob.Executor
	Reader
}

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) Insert(ctx context.Context, txnID, categoryID int64, assignedAt time.Time) error {
	q := psql.Insert(
		im.Into("transaction_assignments", "txn_id", "category_id", "assigned_at"),
		im.Values(psql.Arg(txnID, categoryID, assignedAt)),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *Writer) Update(ctx context.Context, txnID, categoryID int64, assignedAt time.Time) error {
	q := psql.Update(
		um.Table("transaction_assignments"),
		um.SetCol("category_id").ToArg(categoryID),
		um.SetCol("assigned_at").ToArg(assignedAt),
		um.Where(psql.Quote("txn_id").EQ(psql.Arg(txnID))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

// RepointCategory moves every assignment off fromCategoryID onto
// toCategoryID, refreshing assigned_at, and returns how many rows moved.
// Used by category deletion to redirect onto the deleted-category sentinel.
func (w *Writer) RepointCategory(ctx context.Context, fromCategoryID, toCategoryID int64, assignedAt time.Time) (int, error) {
	q := psql.Update(
		um.Table("transaction_assignments"),
		um.SetCol("category_id").ToArg(toCategoryID),
		um.SetCol("assigned_at").ToArg(assignedAt),
		um.Where(psql.Quote("category_id").EQ(psql.Arg(fromCategoryID))),
	)
	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return 0, err
	}
	moved, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(moved), nil
}
