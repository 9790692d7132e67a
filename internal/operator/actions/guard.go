package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// ensureNotProtected rejects any mutation targeting a sentinel category.
// verb names the attempted mutation for the error message.
func ensureNotProtected(ctx context.Context, categories category.ICategoryReader, categoryID int64, verb string) error {
	protected, err := categories.IsProtected(ctx, categoryID)
	if err != nil {
		return err
	}
	if protected {
		return taxonomy.Protectedf("category is protected and cannot be %s: %d", verb, categoryID)
	}
	return nil
}

// nextSortOrder computes the default sort order for a new or moved
// category: one past the group's current maximum, 1 for an empty group.
func nextSortOrder(ctx context.Context, categories category.ICategoryReader, groupID int64) (int, error) {
	maxSort, err := categories.MaxSortOrder(ctx, groupID)
	if err != nil {
		return 0, err
	}
	return maxSort + 1, nil
}
