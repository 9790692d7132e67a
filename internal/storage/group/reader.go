package group

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

func (r *Reader) FindByID(ctx context.Context, id int64) (*Group, error) {
	q := psql.Select(
		sm.Columns("id", "name", "sort_order"),
		sm.From("groups"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Limit(1),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[*Group]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// FindByName matches the normalized name case-insensitively.
func (r *Reader) FindByName(ctx context.Context, name string) (*Group, error) {
	q := psql.Select(
		sm.Columns("id", "name", "sort_order"),
		sm.From("groups"),
		sm.Where(psql.Raw("lower(name) = lower(?)", name)),
		sm.Limit(1),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[*Group]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// List returns all groups ordered by (sort_order asc, name asc). The
// name tie-break is part of the taxonomy map's published ordering.
func (r *Reader) List(ctx context.Context) ([]*Group, error) {
	q := psql.Select(
		sm.Columns("id", "name", "sort_order"),
		sm.From("groups"),
		sm.OrderBy("sort_order").Asc(),
		sm.OrderBy("name").Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*Group]())
}
