package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Row is a transaction fact joined against its classification. The
// classification side is outer-joined: a transaction missing an assignment
// (a transient state) still surfaces, with nil category fields.
type Row struct {
	ID               int64           `db:"id"`
	AccountID        int64           `db:"account_id"`
	Account          string          `db:"account"`
	LedgerSnapshotID int64           `db:"ledger_snapshot_id"`
	Date             time.Time       `db:"date"`
	Description      string          `db:"description"`
	Amount           decimal.Decimal `db:"amount"`
	SourceTable      string          `db:"source_table"`
	SourceFile       string          `db:"source_file"`
	SourceRow        int             `db:"source_row"`

	GroupID      *int64     `db:"group_id"`
	GroupName    *string    `db:"group_name"`
	CategoryID   *int64     `db:"category_id"`
	CategoryName *string    `db:"category_name"`
	ReportClass  *string    `db:"report_class"`
	AssignedAt   *time.Time `db:"assigned_at"`
}

// Filter narrows the transaction listing. All set fields are AND-combined.
// Validation of mutually exclusive fields happens in the service layer,
// before any query executes.
type Filter struct {
	Start               *time.Time // inclusive
	End                 *time.Time // inclusive, matching the legacy read path
	Account             *string
	SourceTable         *string
	DescriptionContains *string
	Amount              *decimal.Decimal
	AmountMin           *decimal.Decimal
	AmountMax           *decimal.Decimal
	GroupID             *int64
	GroupName           *string
	CategoryID          *int64
	CategoryName        *string
	SortDesc            bool
	Limit               int
	Offset              int
}

// ITransactionReader defines the read-only surface over the immutable
// transaction facts. This core never writes to the fact store.
type ITransactionReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter *Filter) ([]*Row, error)
	CountByTaxonomy(ctx context.Context, groupName, categoryName string, start, end time.Time) (int, error)
}
