package transaction

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) Exists(ctx context.Context, id int64) (bool, error) {
	q := psql.Select(
		sm.Columns("id"),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Limit(1),
	)
	ids, err := bob.All(ctx, r.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// List joins transactions -> accounts -> assignments -> categories -> groups
// and applies the filter. The classification side uses left joins so
// unassigned transactions do not disappear from the listing.
func (r *Reader) List(ctx context.Context, filter *Filter) ([]*Row, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			"transactions.id AS id",
			"transactions.account_id AS account_id",
			"accounts.name AS account",
			"transactions.ledger_snapshot_id AS ledger_snapshot_id",
			"transactions.date AS date",
			"transactions.description AS description",
			"transactions.amount AS amount",
			"transactions.source_table AS source_table",
			"transactions.source_file AS source_file",
			"transactions.source_row AS source_row",
			"groups.id AS group_id",
			"groups.name AS group_name",
			"categories.id AS category_id",
			"categories.name AS category_name",
			"categories.report_class AS report_class",
			"transaction_assignments.assigned_at AS assigned_at",
		),
		sm.From("transactions"),
		sm.InnerJoin("accounts").On(
			psql.Quote("accounts", "id").EQ(psql.Quote("transactions", "account_id")),
		),
		sm.LeftJoin("transaction_assignments").On(
			psql.Quote("transaction_assignments", "txn_id").EQ(psql.Quote("transactions", "id")),
		),
		sm.LeftJoin("categories").On(
			psql.Quote("categories", "id").EQ(psql.Quote("transaction_assignments", "category_id")),
		),
		sm.LeftJoin("groups").On(
			psql.Quote("groups", "id").EQ(psql.Quote("categories", "group_id")),
		),
	}

	queryMods = append(queryMods, filterMods(filter)...)

	if filter.SortDesc {
		queryMods = append(queryMods,
			sm.OrderBy("transactions.date").Desc(),
			sm.OrderBy("transactions.id").Desc(),
		)
	} else {
		queryMods = append(queryMods,
			sm.OrderBy("transactions.date").Asc(),
			sm.OrderBy("transactions.id").Asc(),
		)
	}

	queryMods = append(queryMods, sm.Limit(filter.Limit), sm.Offset(filter.Offset))

	q := psql.Select(queryMods...)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*Row]())
}

func filterMods(filter *Filter) []bob.Mod[*dialect.SelectQuery] {
	var mods []bob.Mod[*dialect.SelectQuery]

	if filter.Start != nil {
		mods = append(mods, sm.Where(psql.Quote("transactions", "date").GTE(psql.Arg(*filter.Start))))
	}
	if filter.End != nil {
		mods = append(mods, sm.Where(psql.Quote("transactions", "date").LTE(psql.Arg(*filter.End))))
	}
	if filter.Account != nil {
		mods = append(mods, sm.Where(psql.Quote("accounts", "name").EQ(psql.Arg(*filter.Account))))
	}
	if filter.SourceTable != nil {
		mods = append(mods, sm.Where(psql.Quote("transactions", "source_table").EQ(psql.Arg(*filter.SourceTable))))
	}
	if filter.DescriptionContains != nil {
		mods = append(mods, sm.Where(psql.Raw(
			"lower(transactions.description) LIKE '%' || lower(?) || '%'",
			*filter.DescriptionContains,
		)))
	}
	if filter.Amount != nil {
		mods = append(mods, sm.Where(psql.Quote("transactions", "amount").EQ(psql.Arg(*filter.Amount))))
	}
	if filter.AmountMin != nil {
		mods = append(mods, sm.Where(psql.Quote("transactions", "amount").GTE(psql.Arg(*filter.AmountMin))))
	}
	if filter.AmountMax != nil {
		mods = append(mods, sm.Where(psql.Quote("transactions", "amount").LTE(psql.Arg(*filter.AmountMax))))
	}
	if filter.GroupID != nil {
		mods = append(mods, sm.Where(psql.Quote("groups", "id").EQ(psql.Arg(*filter.GroupID))))
	}
	if filter.GroupName != nil {
		mods = append(mods, sm.Where(psql.Quote("groups", "name").EQ(psql.Arg(*filter.GroupName))))
	}
	if filter.CategoryID != nil {
		mods = append(mods, sm.Where(psql.Quote("categories", "id").EQ(psql.Arg(*filter.CategoryID))))
	}
	if filter.CategoryName != nil {
		mods = append(mods, sm.Where(psql.Quote("categories", "name").EQ(psql.Arg(*filter.CategoryName))))
	}

	return mods
}

// CountByTaxonomy counts assigned transactions for one (group, category)
// pair within the half-open interval [start, end).
func (r *Reader) CountByTaxonomy(ctx context.Context, groupName, categoryName string, start, end time.Time) (int, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("transactions"),
		sm.InnerJoin("transaction_assignments").On(
			psql.Quote("transaction_assignments", "txn_id").EQ(psql.Quote("transactions", "id")),
		),
		sm.InnerJoin("categories").On(
			psql.Quote("categories", "id").EQ(psql.Quote("transaction_assignments", "category_id")),
		),
		sm.InnerJoin("groups").On(
			psql.Quote("groups", "id").EQ(psql.Quote("categories", "group_id")),
		),
		sm.Where(psql.Quote("groups", "name").EQ(psql.Arg(groupName))),
		sm.Where(psql.Quote("categories", "name").EQ(psql.Arg(categoryName))),
		sm.Where(psql.Quote("transactions", "date").GTE(psql.Arg(start))),
		sm.Where(psql.Quote("transactions", "date").LT(psql.Arg(end))),
	)
	return bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int])
}
