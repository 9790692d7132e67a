package actions

import (
	"context"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// CreateCategory creates a category inside an existing group. Creation is
// idempotent within the group: a normalized-name hit returns the existing
// row with Created=false. The same name in any other group is a conflict
// (global uniqueness, enforced here at the service level).
type CreateCategory struct {
	GroupID     int64
	Name        string
	SortOrder   omit.Val[int]
	ReportClass string

	// Populated by Perform.
	Category *category.Category
	Created  bool
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	name := taxonomy.NormalizeName(a.Name)
	if name == "" {
		return taxonomy.Validationf("category name cannot be empty")
	}
	if sortOrder, ok := a.SortOrder.Get(); ok && sortOrder < 0 {
		return taxonomy.Validationf("sort_order must be >= 0")
	}
	reportClass, err := taxonomy.ParseReportClass(a.ReportClass)
	if err != nil {
		return err
	}

	grp, err := writer.Groups.FindByID(ctx, a.GroupID)
	if err != nil {
		return err
	}
	if grp == nil {
		return taxonomy.NotFoundf("group does not exist: %d", a.GroupID)
	}

	existing, err := writer.Categories.FindInGroupByName(ctx, grp.ID, name)
	if err != nil {
		return err
	}
	if existing != nil {
		a.Category = existing
		a.Created = false
		return nil
	}

	other, err := writer.Categories.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if other != nil {
		otherGroup, err := writer.Groups.FindByID(ctx, other.GroupID)
		if err != nil {
			return err
		}
		otherGroupName := ""
		if otherGroup != nil {
			otherGroupName = otherGroup.Name
		}
		return taxonomy.Conflictf("category name already exists: %s (group: %s)", name, otherGroupName)
	}

	sortOrder, ok := a.SortOrder.Get()
	if !ok {
		sortOrder, err = nextSortOrder(ctx, writer.Categories, grp.ID)
		if err != nil {
			return err
		}
	}

	id, err := writer.Categories.Insert(ctx, &category.CategoryCreate{
		GroupID:     grp.ID,
		Name:        name,
		SortOrder:   sortOrder,
		ReportClass: string(reportClass),
	})
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return taxonomy.Conflictf("category name already exists: %s", name)
		}
		return err
	}

	a.Category = &category.Category{
		ID:          id,
		GroupID:     grp.ID,
		Name:        name,
		SortOrder:   sortOrder,
		ReportClass: string(reportClass),
	}
	a.Created = true
	return nil
}
