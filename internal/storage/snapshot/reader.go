package snapshot

import (
	"context"

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

// List returns snapshots newest first, optionally narrowed to one account.
func (r *Reader) List(ctx context.Context, accountName *string) ([]*Snapshot, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			"ledger_snapshots.id AS id",
			"accounts.name AS account",
			"ledger_snapshots.ledger_filename AS ledger_filename",
			"ledger_snapshots.ledger_sha256 AS ledger_sha256",
			"ledger_snapshots.tx_min_date AS tx_min_date",
			"ledger_snapshots.tx_max_date AS tx_max_date",
			"ledger_snapshots.created_at AS created_at",
		),
		sm.From("ledger_snapshots"),
		sm.InnerJoin("accounts").On(
			psql.Quote("accounts", "id").EQ(psql.Quote("ledger_snapshots", "account_id")),
		),
	}

	if accountName != nil {
		queryMods = append(queryMods,
			sm.Where(psql.Quote("accounts", "name").EQ(psql.Arg(*accountName))))
	}

	queryMods = append(queryMods, sm.OrderBy("ledger_snapshots.created_at").Desc())

	q := psql.Select(queryMods...)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*Snapshot]())
}
