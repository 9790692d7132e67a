package note

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
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

func (w *Writer) Insert(ctx context.Context, txnID int64, text string, updatedAt time.Time) error {
	q := psql.Insert(
		im.Into("transaction_notes", "txn_id", "note", "updated_at"),
		im.Values(psql.Arg(txnID, text, updatedAt)),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *Writer) Update(ctx context.Context, txnID int64, text string, updatedAt time.Time) error {
	q := psql.Update(
		um.Table("transaction_notes"),
		um.SetCol("note").ToArg(text),
		um.SetCol("updated_at").ToArg(updatedAt),
		um.Where(psql.Quote("txn_id").EQ(psql.Arg(txnID))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *Writer) Delete(ctx context.Context, txnID int64) (bool, error) {
	q := psql.Delete(
		dm.From("transaction_notes"),
		dm.Where(psql.Quote("txn_id").EQ(psql.Arg(txnID))),
	)
	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return false, err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}
