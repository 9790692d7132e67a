package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// RenameCategory renames a non-sentinel category, keeping the global
// normalized-name uniqueness rule. Renaming to the current name (any case)
// is a no-op with Changed=false.
type RenameCategory struct {
	CategoryID int64
	NewName    string

	// Populated by Perform.
	Category *category.Category
	Changed  bool
}

func (a *RenameCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	name := taxonomy.NormalizeName(a.NewName)
	if name == "" {
		return taxonomy.Validationf("category name cannot be empty")
	}

	cat, err := writer.Categories.FindByID(ctx, a.CategoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return taxonomy.NotFoundf("category does not exist: %d", a.CategoryID)
	}

	if err := ensureNotProtected(ctx, writer.Categories, a.CategoryID, "renamed"); err != nil {
		return err
	}

	if taxonomy.NamesEqual(cat.Name, name) {
		a.Category = cat
		a.Changed = false
		return nil
	}

	conflict, err := writer.Categories.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if conflict != nil && conflict.ID != cat.ID {
		return taxonomy.Conflictf("category name already exists: %s", name)
	}

	if err := writer.Categories.UpdateName(ctx, cat.ID, name); err != nil {
		if storage.IsUniqueViolation(err) {
			return taxonomy.Conflictf("category name already exists: %s", name)
		}
		return err
	}

	cat.Name = name
	a.Category = cat
	a.Changed = true
	return nil
}
