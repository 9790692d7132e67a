// Seeds the taxonomy with the standard group and category set. Safe to run
// repeatedly: existing rows are left alone, only missing ones are created.
// The Unclassified group and its sentinels come first so every other part
// of the system can rely on them existing.
package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/group"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

type groupSeed struct {
	name       string
	categories []string
}

var seeds = []groupSeed{
	{taxonomy.ReservedGroupName, []string{taxonomy.UncategorizedName, taxonomy.DeletedCategoryName}},
	{"Income", []string{"Wages", "Freelance income"}},
	{"Housing", []string{"Rent", "Mortgage interest"}},
	{"Utilities", []string{"Electricity", "Natural gas", "Water", "Trash service"}},
	{"Equipment", []string{"Appliance", "Computer hardware", "Software license"}},
	{"Household", []string{"Cleaning supplies", "Paper goods"}},
	{"Personal & Lifestyle", []string{"Clothing", "Haircut"}},
	{"Entertainment", []string{"Streaming subscription", "Live event ticket"}},
	{"Education", []string{"Online course", "Books"}},
	{"Food", []string{"Groceries", "Restaurant", "Coffee"}},
	{"Health", []string{"Doctor visit", "Prescription medication"}},
	{"Transportation", []string{"Fuel", "Public transit", "Vehicle maintenance"}},
	{"Debt", []string{"Credit card interest", "Loan principal payment"}},
	{"Transfers & Savings", []string{"Account transfer", "Credit Card Payment"}},
	{"Investments", []string{"Brokerage contribution"}},
	{"Taxation", []string{"Income tax payment"}},
	{"Legal & Penalties", []string{"Fine", "Legal fee"}},
}

func main() {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	ctx := context.Background()
	store := storage.NewStorage(env)

	writer, err := store.Write(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("storage.Write")
		return
	}

	createdGroups := 0
	createdCategories := 0

	for groupIdx, seed := range seeds {
		groupID, created, err := ensureGroup(ctx, writer.Groups, seed.name, groupIdx+1)
		if err != nil {
			_ = writer.Rollback()
			logrus.WithError(err).WithField("group", seed.name).Fatal("ensureGroup")
			return
		}
		if created {
			createdGroups++
		}

		reportClass := string(taxonomy.ReportClassAuto)
		if seed.name == "Transfers & Savings" {
			reportClass = string(taxonomy.ReportClassTransfer)
		}

		for catIdx, name := range seed.categories {
			created, err := ensureCategory(ctx, writer.Categories, groupID, name, catIdx+1, reportClass)
			if err != nil {
				_ = writer.Rollback()
				logrus.WithError(err).WithField("category", name).Fatal("ensureCategory")
				return
			}
			if created {
				createdCategories++
			}
		}
	}

	if err := writer.Commit(); err != nil {
		logrus.WithError(err).Fatal("writer.Commit")
		return
	}

	logrus.WithFields(logrus.Fields{
		"createdGroups":     createdGroups,
		"createdCategories": createdCategories,
	}).Info("Taxonomy seeded")
}

func ensureGroup(ctx context.Context, groups group.IGroupWriter, name string, sortOrder int) (int64, bool, error) {
	existing, err := groups.FindByName(ctx, name)
	if err != nil {
		return 0, false, err
	}
	if existing != nil {
		// Nudge the order only when it was never set, to avoid
		// clobbering curated edits.
		if existing.SortOrder == 0 && sortOrder != 0 {
			if err := groups.UpdateSortOrder(ctx, existing.ID, sortOrder); err != nil {
				return 0, false, err
			}
		}
		return existing.ID, false, nil
	}

	id, err := groups.Insert(ctx, &group.GroupCreate{Name: name, SortOrder: sortOrder})
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func ensureCategory(ctx context.Context, categories category.ICategoryWriter, groupID int64, name string, sortOrder int, reportClass string) (bool, error) {
	existing, err := categories.FindInGroupByName(ctx, groupID, name)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	_, err = categories.Insert(ctx, &category.CategoryCreate{
		GroupID:     groupID,
		Name:        name,
		SortOrder:   sortOrder,
		ReportClass: reportClass,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
