package category

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
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

func (w *Writer) Insert(ctx context.Context, create *CategoryCreate) (int64, error) {
	q := psql.Insert(
		im.Into("categories", "group_id", "name", "sort_order", "report_class"),
		im.Values(psql.Arg(create.GroupID, create.Name, create.SortOrder, create.ReportClass)),
		im.Returning("id"),
	)
	return bob.One(ctx, w.tx, q, scan.SingleColumnMapper[int64])
}

func (w *Writer) UpdateName(ctx context.Context, id int64, name string) error {
	q := psql.Update(
		um.Table("categories"),
		um.SetCol("name").ToArg(name),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *Writer) UpdateGroup(ctx context.Context, id int64, groupID int64, sortOrder int) error {
	q := psql.Update(
		um.Table("categories"),
		um.SetCol("group_id").ToArg(groupID),
		um.SetCol("sort_order").ToArg(sortOrder),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	q := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
