package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

const (
	defaultTransactionLimit = 200
	maxTransactionLimit     = 5000
)

// TransactionService handles the read-only query surface over transaction
// facts. Classification mutations go through the operator, never here.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions validates the query and returns matching transactions
// joined with their classification. Group and category filters are mutually
// exclusive; providing both is ambiguous and rejected outright.
func (s *TransactionService) ListTransactions(ctx context.Context, query TransactionQuery) ([]Transaction, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = Transaction{
			ID:               row.ID,
			AccountID:        row.AccountID,
			Account:          row.Account,
			LedgerSnapshotID: row.LedgerSnapshotID,
			Date:             row.Date,
			Description:      row.Description,
			Amount:           row.Amount,
			SourceTable:      row.SourceTable,
			SourceFile:       row.SourceFile,
			SourceRow:        row.SourceRow,
			GroupID:          row.GroupID,
			GroupName:        row.GroupName,
			CategoryID:       row.CategoryID,
			CategoryName:     row.CategoryName,
			ReportClass:      row.ReportClass,
			AssignedAt:       row.AssignedAt,
		}
	}
	return converted, nil
}

func buildFilter(query TransactionQuery) (*transaction.Filter, error) {
	groupSet := query.GroupID != nil || query.GroupName != ""
	categorySet := query.CategoryID != nil || query.CategoryName != ""
	if groupSet && categorySet {
		return nil, taxonomy.Validationf("provide either a group filter or a category filter, not both")
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "date"
	}
	if sortBy != "date" {
		return nil, taxonomy.Validationf("sortBy must be 'date'")
	}

	sortDir := query.SortDir
	if sortDir == "" {
		sortDir = "asc"
	}
	if sortDir != "asc" && sortDir != "desc" {
		return nil, taxonomy.Validationf("sortDir must be 'asc' or 'desc'")
	}

	limit := query.Limit
	if limit == 0 {
		limit = defaultTransactionLimit
	}
	if limit < 1 || limit > maxTransactionLimit {
		return nil, taxonomy.Validationf("limit must be between 1 and %d", maxTransactionLimit)
	}
	if query.Offset < 0 {
		return nil, taxonomy.Validationf("offset must not be negative")
	}

	filter := &transaction.Filter{
		Start:    query.Start,
		End:      query.End,
		GroupID:  query.GroupID,
		SortDesc: sortDir == "desc",
		Limit:    limit,
		Offset:   query.Offset,
	}

	if query.Account != "" {
		filter.Account = &query.Account
	}
	if query.SourceTable != "" {
		filter.SourceTable = &query.SourceTable
	}
	if query.DescriptionContains != "" {
		filter.DescriptionContains = &query.DescriptionContains
	}
	if query.GroupName != "" {
		filter.GroupName = &query.GroupName
	}
	if query.CategoryID != nil {
		filter.CategoryID = query.CategoryID
	}
	if query.CategoryName != "" {
		filter.CategoryName = &query.CategoryName
	}

	var err error
	if filter.Amount, err = parseAmount(query.Amount); err != nil {
		return nil, err
	}
	if filter.AmountMin, err = parseAmount(query.AmountMin); err != nil {
		return nil, err
	}
	if filter.AmountMax, err = parseAmount(query.AmountMax); err != nil {
		return nil, err
	}

	return filter, nil
}

func parseAmount(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return nil, taxonomy.Validationf("invalid decimal amount: %q", raw)
	}
	return &amount, nil
}
