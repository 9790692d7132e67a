package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one immutable ledger fact joined with its current
// classification. Classification fields are nil while the overlay row is
// missing, which only happens transiently between ingest and init.
type Transaction struct {
	ID               int64
	AccountID        int64
	Account          string
	LedgerSnapshotID int64
	Date             time.Time
	Description      string
	Amount           decimal.Decimal
	SourceTable      string
	SourceFile       string
	SourceRow        int

	GroupID      *int64
	GroupName    *string
	CategoryID   *int64
	CategoryName *string
	ReportClass  *string
	AssignedAt   *time.Time
}

// TransactionQuery carries the raw listing parameters. Amount fields stay
// strings until validated, so a malformed value is rejected before any
// query runs rather than silently coerced.
type TransactionQuery struct {
	Start               *time.Time
	End                 *time.Time
	Account             string
	SourceTable         string
	DescriptionContains string
	Amount              string
	AmountMin           string
	AmountMax           string
	GroupID             *int64
	GroupName           string
	CategoryID          *int64
	CategoryName        string
	SortBy              string
	SortDir             string
	Limit               int
	Offset              int
}
