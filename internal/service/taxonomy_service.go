package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// TaxonomyService serves the read side of the taxonomy. Mutations run as
// operator actions so each one lands in its own transaction.
type TaxonomyService struct {
	storage *storage.Storage
}

// NewTaxonomyService creates a new TaxonomyService.
func NewTaxonomyService(store *storage.Storage) *TaxonomyService {
	return &TaxonomyService{storage: store}
}

// TaxonomyMap returns every group with its categories. Groups are ordered
// by sort order then name, and categories within a group the same way; ties
// on sort order always break alphabetically. A group with no categories
// still appears, with an empty list.
func (s *TaxonomyService) TaxonomyMap(ctx context.Context) ([]GroupEntry, error) {
	groups, err := s.storage.Groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	categories, err := s.storage.Categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	byGroup := make(map[int64][]CategoryEntry, len(groups))
	for _, cat := range categories {
		byGroup[cat.GroupID] = append(byGroup[cat.GroupID], CategoryEntry{
			ID:          cat.ID,
			Name:        cat.Name,
			SortOrder:   cat.SortOrder,
			ReportClass: cat.ReportClass,
		})
	}

	entries := make([]GroupEntry, len(groups))
	for i, grp := range groups {
		cats := byGroup[grp.ID]
		if cats == nil {
			cats = []CategoryEntry{}
		}
		entries[i] = GroupEntry{
			ID:         grp.ID,
			Name:       grp.Name,
			SortOrder:  grp.SortOrder,
			Categories: cats,
		}
	}
	return entries, nil
}
