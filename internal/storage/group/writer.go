package group

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
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

func (w *Writer) Insert(ctx context.Context, create *GroupCreate) (int64, error) {
	q := psql.Insert(
		im.Into("groups", "name", "sort_order"),
		im.Values(psql.Arg(create.Name, create.SortOrder)),
		im.Returning("id"),
	)
	return bob.One(ctx, w.tx, q, scan.SingleColumnMapper[int64])
}

func (w *Writer) UpdateSortOrder(ctx context.Context, id int64, sortOrder int) error {
	q := psql.Update(
		um.Table("groups"),
		um.SetCol("sort_order").ToArg(sortOrder),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
