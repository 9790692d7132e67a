package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

const dateLayout = "2006-01-02"

// ListTransactionsInput is the Huma input for listing transactions. All
// filters are optional and AND-combined.
type ListTransactionsInput struct {
	Start               string `query:"start" doc:"Start date (inclusive), YYYY-MM-DD"`
	End                 string `query:"end" doc:"End date (inclusive), YYYY-MM-DD"`
	Account             string `query:"account" doc:"Account name"`
	SourceTable         string `query:"sourceTable" doc:"Origin table in the import"`
	DescriptionContains string `query:"descriptionContains" doc:"Case-insensitive description substring"`
	Amount              string `query:"amount" doc:"Exact amount match, e.g. -19.99"`
	AmountMin           string `query:"amountMin" doc:"Minimum amount (inclusive)"`
	AmountMax           string `query:"amountMax" doc:"Maximum amount (inclusive)"`
	GroupID             *int64 `query:"groupID" doc:"Assigned group ID, exclusive with category filters"`
	GroupName           string `query:"groupName" doc:"Assigned group name, exclusive with category filters"`
	CategoryID          *int64 `query:"categoryID" doc:"Assigned category ID, exclusive with group filters"`
	CategoryName        string `query:"categoryName" doc:"Assigned category name, exclusive with group filters"`
	SortBy              string `query:"sortBy" doc:"Sort key, only 'date'"`
	SortDir             string `query:"sortDir" doc:"Sort direction, 'asc' or 'desc'"`
	Limit               int    `query:"limit" doc:"Page size, 1 to 5000, defaults to 200"`
	Offset              int    `query:"offset" doc:"Rows to skip"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

type transactionLister interface {
	ListTransactions(ctx context.Context, query service.TransactionQuery) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Returns transactions joined with their classification, filtered and ordered by date.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput converts the raw query into a service query.
// Amount strings pass through untouched; the service validates them.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionQuery, error) {
	query := service.TransactionQuery{
		Account:             input.Account,
		SourceTable:         input.SourceTable,
		DescriptionContains: input.DescriptionContains,
		Amount:              input.Amount,
		AmountMin:           input.AmountMin,
		AmountMax:           input.AmountMax,
		GroupID:             input.GroupID,
		GroupName:           input.GroupName,
		CategoryID:          input.CategoryID,
		CategoryName:        input.CategoryName,
		SortBy:              input.SortBy,
		SortDir:             input.SortDir,
		Limit:               input.Limit,
		Offset:              input.Offset,
	}

	if input.Start != "" {
		start, err := time.Parse(dateLayout, input.Start)
		if err != nil {
			return query, huma.NewError(http.StatusBadRequest, "invalid start date", err)
		}
		query.Start = &start
	}
	if input.End != "" {
		end, err := time.Parse(dateLayout, input.End)
		if err != nil {
			return query, huma.NewError(http.StatusBadRequest, "invalid end date", err)
		}
		query.End = &end
	}

	return query, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	query, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		converted := Transaction{
			ID:               tx.ID,
			AccountID:        tx.AccountID,
			Account:          tx.Account,
			LedgerSnapshotID: tx.LedgerSnapshotID,
			Date:             tx.Date.Format(dateLayout),
			Description:      tx.Description,
			Amount:           tx.Amount.String(),
			SourceTable:      tx.SourceTable,
			SourceFile:       tx.SourceFile,
			SourceRow:        tx.SourceRow,
			GroupID:          tx.GroupID,
			GroupName:        tx.GroupName,
			CategoryID:       tx.CategoryID,
			CategoryName:     tx.CategoryName,
			ReportClass:      tx.ReportClass,
		}
		if tx.AssignedAt != nil {
			assignedAt := tx.AssignedAt.Format(time.RFC3339)
			converted.AssignedAt = &assignedAt
		}
		resp.Transactions[i] = converted
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
