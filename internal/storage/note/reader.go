package note

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByTxn(ctx context.Context, txnID int64) (*Note, error) {
	q := psql.Select(
		sm.Columns("txn_id", "note", "updated_at"),
		sm.From("transaction_notes"),
		sm.Where(psql.Quote("txn_id").EQ(psql.Arg(txnID))),
		sm.Limit(1),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[*Note]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}
