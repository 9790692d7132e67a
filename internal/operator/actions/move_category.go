package actions

import (
	"context"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// MoveCategory moves a non-sentinel category to another group. Moving to
// the current group is a no-op with Changed=false. Without an explicit
// sort order the category lands at the end of the target group.
type MoveCategory struct {
	CategoryID    int64
	TargetGroupID int64
	SortOrder     omit.Val[int]

	// Populated by Perform.
	Category *category.Category
	Changed  bool
}

func (a *MoveCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	cat, err := writer.Categories.FindByID(ctx, a.CategoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return taxonomy.NotFoundf("category does not exist: %d", a.CategoryID)
	}

	if err := ensureNotProtected(ctx, writer.Categories, a.CategoryID, "moved"); err != nil {
		return err
	}

	target, err := writer.Groups.FindByID(ctx, a.TargetGroupID)
	if err != nil {
		return err
	}
	if target == nil {
		return taxonomy.NotFoundf("group does not exist: %d", a.TargetGroupID)
	}

	if cat.GroupID == target.ID {
		a.Category = cat
		a.Changed = false
		return nil
	}

	sortOrder, ok := a.SortOrder.Get()
	if !ok {
		sortOrder, err = nextSortOrder(ctx, writer.Categories, target.ID)
		if err != nil {
			return err
		}
	}

	if err := writer.Categories.UpdateGroup(ctx, cat.ID, target.ID, sortOrder); err != nil {
		if storage.IsUniqueViolation(err) {
			return taxonomy.Conflictf("category name already exists in group: %s", cat.Name)
		}
		return err
	}

	cat.GroupID = target.ID
	cat.SortOrder = sortOrder
	a.Category = cat
	a.Changed = true
	return nil
}
