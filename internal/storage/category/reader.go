package category

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*Category, error) {
	q := psql.Select(
		sm.Columns("id", "group_id", "name", "sort_order", "report_class"),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Limit(1),
	)
	return r.one(ctx, q)
}

// FindByName matches the normalized name case-insensitively across all
// groups. This backs the service-level global uniqueness rule, which is
// stricter than the group-scoped storage constraint.
func (r *Reader) FindByName(ctx context.Context, name string) (*Category, error) {
	q := psql.Select(
		sm.Columns("id", "group_id", "name", "sort_order", "report_class"),
		sm.From("categories"),
		sm.Where(psql.Raw("lower(name) = lower(?)", name)),
		sm.Limit(1),
	)
	return r.one(ctx, q)
}

// FindInGroupByName matches the normalized name case-insensitively within
// one group.
func (r *Reader) FindInGroupByName(ctx context.Context, groupID int64, name string) (*Category, error) {
	q := psql.Select(
		sm.Columns("id", "group_id", "name", "sort_order", "report_class"),
		sm.From("categories"),
		sm.Where(psql.Quote("group_id").EQ(psql.Arg(groupID))),
		sm.Where(psql.Raw("lower(name) = lower(?)", name)),
		sm.Limit(1),
	)
	return r.one(ctx, q)
}

// MaxSortOrder returns the highest sort_order in a group, 0 for an empty
// group.
func (r *Reader) MaxSortOrder(ctx context.Context, groupID int64) (int, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("coalesce(max(sort_order), 0)")),
		sm.From("categories"),
		sm.Where(psql.Quote("group_id").EQ(psql.Arg(groupID))),
	)
	return bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int])
}

// IsProtected reports whether the category is one of the sentinels: it
// belongs to the reserved group and carries a sentinel name.
func (r *Reader) IsProtected(ctx context.Context, id int64) (bool, error) {
	q := psql.Select(
		sm.Columns("categories.id"),
		sm.From("categories"),
		sm.InnerJoin("groups").On(
			psql.Quote("groups", "id").EQ(psql.Quote("categories", "group_id")),
		),
		sm.Where(psql.Quote("categories", "id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("groups", "name").EQ(psql.Arg(taxonomy.ReservedGroupName))),
		sm.Where(psql.Quote("categories", "name").In(
			psql.Arg(taxonomy.UncategorizedName),
			psql.Arg(taxonomy.DeletedCategoryName),
		)),
		sm.Limit(1),
	)
	ids, err := bob.All(ctx, r.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// DeletedSentinelID resolves the "Deleted Category" sentinel. Its absence
// means the bootstrap that seeds sentinels never ran or the taxonomy was
// corrupted; that is fatal, not recoverable.
func (r *Reader) DeletedSentinelID(ctx context.Context) (int64, error) {
	q := psql.Select(
		sm.Columns("categories.id"),
		sm.From("categories"),
		sm.InnerJoin("groups").On(
			psql.Quote("groups", "id").EQ(psql.Quote("categories", "group_id")),
		),
		sm.Where(psql.Quote("groups", "name").EQ(psql.Arg(taxonomy.ReservedGroupName))),
		sm.Where(psql.Quote("categories", "name").EQ(psql.Arg(taxonomy.DeletedCategoryName))),
		sm.Limit(1),
	)
	ids, err := bob.All(ctx, r.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, taxonomy.FatalInvariantf(
			"missing sentinel category: %s -> %q",
			taxonomy.ReservedGroupName, taxonomy.DeletedCategoryName,
		)
	}
	return ids[0], nil
}

// ListAll returns every category ordered by (group_id, sort_order asc,
// name asc), ready to be grouped into the taxonomy map.
func (r *Reader) ListAll(ctx context.Context) ([]*Category, error) {
	q := psql.Select(
		sm.Columns("id", "group_id", "name", "sort_order", "report_class"),
		sm.From("categories"),
		sm.OrderBy("group_id").Asc(),
		sm.OrderBy("sort_order").Asc(),
		sm.OrderBy("name").Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*Category]())
}

func (r *Reader) one(ctx context.Context, q bob.Query) (*Category, error) {
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[*Category]())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}
