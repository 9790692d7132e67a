package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/group"
)

func TestTaxonomyMap_GroupsCategoriesInStorageOrder(t *testing.T) {
	store, groups, categories, _, _, _ := newTestStorage()
	svc := NewTaxonomyService(store)

	groups.On("List", mock.Anything).Return([]*group.Group{
		{ID: 1, Name: "Unclassified", SortOrder: 0},
		{ID: 3, Name: "Equipment", SortOrder: 2},
		{ID: 4, Name: "Household", SortOrder: 2},
	}, nil)
	categories.On("ListAll", mock.Anything).Return([]*category.Category{
		{ID: 1, GroupID: 1, Name: "Uncategorized", SortOrder: 0, ReportClass: "auto"},
		{ID: 2, GroupID: 1, Name: "Deleted Category", SortOrder: 1, ReportClass: "auto"},
		{ID: 17, GroupID: 3, Name: "Gadgets", SortOrder: 3, ReportClass: "auto"},
	}, nil)

	entries, err := svc.TaxonomyMap(context.Background())

	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, "Unclassified", entries[0].Name)
	assert.Equal(t, []CategoryEntry{
		{ID: 1, Name: "Uncategorized", SortOrder: 0, ReportClass: "auto"},
		{ID: 2, Name: "Deleted Category", SortOrder: 1, ReportClass: "auto"},
	}, entries[0].Categories)
	assert.Equal(t, "Gadgets", entries[1].Categories[0].Name)
}

func TestTaxonomyMap_EmptyGroupGetsEmptySlice(t *testing.T) {
	store, groups, categories, _, _, _ := newTestStorage()
	svc := NewTaxonomyService(store)

	groups.On("List", mock.Anything).Return([]*group.Group{
		{ID: 9, Name: "Travel", SortOrder: 5},
	}, nil)
	categories.On("ListAll", mock.Anything).Return([]*category.Category{}, nil)

	entries, err := svc.TaxonomyMap(context.Background())

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.NotNil(t, entries[0].Categories)
	assert.Empty(t, entries[0].Categories)
}
