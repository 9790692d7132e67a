// Package taxonomy exposes the taxonomy map and category mutations.
package taxonomy

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/category"
)

// Category is the API response model for a category.
type Category struct {
	ID          int64  `json:"id" doc:"Category ID"`
	GroupID     int64  `json:"groupID" doc:"Owning group ID"`
	Name        string `json:"name" doc:"Category name"`
	SortOrder   int    `json:"sortOrder" doc:"Position within the group"`
	ReportClass string `json:"reportClass" enum:"auto,transfer" doc:"Reporting treatment"`
}

// CategoryBrief is a category as it appears inside the taxonomy map.
type CategoryBrief struct {
	ID          int64  `json:"id" doc:"Category ID"`
	Name        string `json:"name" doc:"Category name"`
	SortOrder   int    `json:"sortOrder" doc:"Position within the group"`
	ReportClass string `json:"reportClass" doc:"Reporting treatment"`
}

// Group is a group with its ordered categories.
type Group struct {
	ID         int64           `json:"id" doc:"Group ID"`
	Name       string          `json:"name" doc:"Group name"`
	SortOrder  int             `json:"sortOrder" doc:"Position among groups"`
	Categories []CategoryBrief `json:"categories" doc:"Categories in display order"`
}

// actionProcessor runs one action in its own storage transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func toCategory(cat *category.Category) Category {
	return Category{
		ID:          cat.ID,
		GroupID:     cat.GroupID,
		Name:        cat.Name,
		SortOrder:   cat.SortOrder,
		ReportClass: cat.ReportClass,
	}
}
