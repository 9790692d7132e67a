// Package transaction exposes the read-only transaction listing.
package transaction

// Transaction is the API response model for a transaction joined with its
// classification. Classification fields are omitted while unassigned.
type Transaction struct {
	ID               int64  `json:"id" doc:"Transaction ID"`
	AccountID        int64  `json:"accountID" doc:"Account ID"`
	Account          string `json:"account" doc:"Account name"`
	LedgerSnapshotID int64  `json:"ledgerSnapshotID" doc:"Snapshot the fact was imported from"`
	Date             string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	Description      string `json:"description" doc:"Raw transaction description"`
	Amount           string `json:"amount" doc:"Signed decimal amount"`
	SourceTable      string `json:"sourceTable" doc:"Origin table in the import"`
	SourceFile       string `json:"sourceFile" doc:"Origin file of the import"`
	SourceRow        int    `json:"sourceRow" doc:"Row within the origin file"`

	GroupID      *int64  `json:"groupID,omitempty" doc:"Assigned group ID"`
	GroupName    *string `json:"groupName,omitempty" doc:"Assigned group name"`
	CategoryID   *int64  `json:"categoryID,omitempty" doc:"Assigned category ID"`
	CategoryName *string `json:"categoryName,omitempty" doc:"Assigned category name"`
	ReportClass  *string `json:"reportClass,omitempty" doc:"Reporting treatment of the category"`
	AssignedAt   *string `json:"assignedAt,omitempty" format:"date-time" doc:"When the assignment was last written"`
}
